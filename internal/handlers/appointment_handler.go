package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "barbertime/internal/domain/appointment"
	"barbertime/internal/httperr"
	"barbertime/internal/httpresp"
	"barbertime/internal/models"
	"barbertime/internal/timezone"
	ucAppointment "barbertime/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db         *gorm.DB
	create     *ucAppointment.CreateAppointment
	reschedule *ucAppointment.RescheduleAppointment
	status     *ucAppointment.UpdateAppointmentStatus
	listByDate *ucAppointment.ListAppointmentsByDate
}

func NewAppointmentHandler(
	db *gorm.DB,
	create *ucAppointment.CreateAppointment,
	reschedule *ucAppointment.RescheduleAppointment,
	status *ucAppointment.UpdateAppointmentStatus,
	listByDate *ucAppointment.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:         db,
		create:     create,
		reschedule: reschedule,
		status:     status,
		listByDate: listByDate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerID  uuid.UUID `json:"customer_id" binding:"required"`
	BarberID    uuid.UUID `json:"barber_id" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	ServiceType string    `json:"service_type" binding:"required"`
	Notes       string    `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	Notes     *string   `json:"notes,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerID:  req.CustomerID,
		BarberID:    req.BarberID,
		StartTime:   req.StartTime.In(timezone.Location()),
		ServiceType: req.ServiceType,
		Notes:       req.Notes,
	})
	if err != nil {
		if respondBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Could not create appointment.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var aps []models.Appointment
	if err := h.db.
		Preload("Customer").
		Preload("Barber.WeeklySchedule").
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.
		Preload("Customer").
		Preload("Barber").
		First(&ap, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListByBarber(c *gin.Context) {
	barberID, ok := parseID(c, "barberId")
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}

		out, err := h.listByDate.Execute(c.Request.Context(), barberID, date)
		if err != nil {
			httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
			return
		}
		httpresp.List(c, out)
		return
	}

	var aps []models.Appointment
	if err := h.db.
		Preload("Customer").
		Preload("Barber").
		Where("barber_id = ?", barberID).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Today(c *gin.Context) {
	now := timezone.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	var aps []models.Appointment
	if err := h.db.
		Preload("Customer").
		Preload("Barber").
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	var aps []models.Appointment
	if err := h.db.
		Preload("Customer").
		Preload("Barber").
		Where("start_time > ? AND status = ?", timezone.Now(), string(domain.StatusBooked)).
		Order("start_time ASC").
		Limit(20).
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.reschedule.Execute(
		c.Request.Context(),
		id,
		req.StartTime.In(timezone.Location()),
		req.Notes,
	)
	if err != nil {
		if respondBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Could not update appointment.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.status.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		if respondBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_status", "Could not update status.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Could not delete appointment.")
		return
	}

	c.Status(204)
}
