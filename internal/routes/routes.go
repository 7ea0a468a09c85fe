package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barbertime/internal/audit"
	"barbertime/internal/cache"
	"barbertime/internal/clock"
	"barbertime/internal/config"
	"barbertime/internal/handlers"
	infraRepo "barbertime/internal/infra/repository"
	ucAppointment "barbertime/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	slotCache := cache.NewSlotCache(cfg.RedisAddr, cfg.SlotCacheTTL)
	clk := clock.System()

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		slotCache,
		clk,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
		slotCache,
		clk,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		appointmentRepo,
		auditDispatcher,
		slotCache,
	)

	getSlotsUC := ucAppointment.NewGetAvailableSlots(
		appointmentRepo,
		slotCache,
	)

	availableBarbersUC := ucAppointment.NewListAvailableBarbers(
		appointmentRepo,
	)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		rescheduleAppointmentUC,
		updateStatusUC,
		listByDateUC,
	)

	barberHandler := handlers.NewBarberHandler(
		db,
		getSlotsUC,
		availableBarbersUC,
	)

	customerHandler := handlers.NewCustomerHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		barbers := api.Group("/barbers")
		{
			barbers.GET("", barberHandler.List)
			barbers.POST("", barberHandler.Create)
			barbers.GET("/available/:date", barberHandler.Available)
			barbers.GET("/:id", barberHandler.Get)
			barbers.PUT("/:id", barberHandler.Update)
			barbers.PUT("/:id/schedule", barberHandler.UpdateSchedule)
			barbers.GET("/:id/slots/:date", barberHandler.Slots)
			barbers.DELETE("/:id", barberHandler.Delete)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", customerHandler.List)
			customers.POST("", customerHandler.Create)
			customers.GET("/search/:term", customerHandler.Search)
			customers.GET("/:id", customerHandler.Get)
			customers.PUT("/:id", customerHandler.Update)
			customers.DELETE("/:id", customerHandler.Delete)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("", appointmentHandler.List)
			appointments.POST("", appointmentHandler.Create)
			appointments.GET("/today", appointmentHandler.Today)
			appointments.GET("/upcoming", appointmentHandler.Upcoming)
			appointments.GET("/barber/:barberId", appointmentHandler.ListByBarber)
			appointments.GET("/:id", appointmentHandler.Get)
			appointments.PUT("/:id", appointmentHandler.Reschedule)
			appointments.PUT("/:id/status", appointmentHandler.UpdateStatus)
			appointments.DELETE("/:id", appointmentHandler.Delete)
		}
	}
}
