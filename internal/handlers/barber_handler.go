package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "barbertime/internal/domain/appointment"
	"barbertime/internal/httperr"
	"barbertime/internal/httpresp"
	"barbertime/internal/models"
	"barbertime/internal/timezone"
	"barbertime/internal/validators"
	ucAppointment "barbertime/internal/usecase/appointment"
)

type BarberHandler struct {
	db               *gorm.DB
	slots            *ucAppointment.GetAvailableSlots
	availableBarbers *ucAppointment.ListAvailableBarbers
}

func NewBarberHandler(
	db *gorm.DB,
	slots *ucAppointment.GetAvailableSlots,
	availableBarbers *ucAppointment.ListAvailableBarbers,
) *BarberHandler {
	return &BarberHandler{
		db:               db,
		slots:            slots,
		availableBarbers: availableBarbers,
	}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,max=255"`
	Phone       string `json:"phone" binding:"max=20"`
	Specialties string `json:"specialties" binding:"max=500"`
}

type ScheduleEntryRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Working   bool   `json:"is_working"`
}

type UpdateScheduleRequest struct {
	WeeklySchedule []ScheduleEntryRequest `json:"weekly_schedule" binding:"required"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Preload("WeeklySchedule").
		Where("active").
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.
		Preload("WeeklySchedule").
		First(&barber, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailFormatValid(email) || !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email", "Email address is not valid.")
		return
	}

	var count int64
	h.db.Model(&models.Barber{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "duplicate_email", "Email already exists.")
		return
	}

	barber := models.Barber{
		Name:        req.Name,
		Email:       email,
		Phone:       req.Phone,
		Specialties: req.Specialties,
		Active:      true,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&barber).Error; err != nil {
			return err
		}

		schedule := defaultWeeklySchedule(barber)
		return tx.Create(&schedule).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Could not create barber.")
		return
	}

	h.db.Preload("WeeklySchedule").First(&barber, "id = ?", barber.ID)
	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Barber{}).
		Where("email = ? AND id <> ?", email, id).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "duplicate_email", "Email already exists.")
		return
	}

	barber.Name = req.Name
	barber.Email = email
	barber.Phone = req.Phone
	barber.Specialties = req.Specialties

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Could not update barber.")
		return
	}

	httpresp.OK(c, barber)
}

// UpdateSchedule replaces the whole week in one shot; partial edits
// are done client-side.
func (h *BarberHandler) UpdateSchedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	seen := map[int]bool{}
	for _, d := range req.WeeklySchedule {
		if seen[d.Weekday] {
			httperr.BadRequest(c, "duplicate_weekday", "At most one entry per weekday.")
			return
		}
		seen[d.Weekday] = true
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barber.ID).
			Delete(&models.ScheduleEntry{}).Error; err != nil {
			return err
		}

		if len(req.WeeklySchedule) == 0 {
			return nil
		}

		entries := make([]models.ScheduleEntry, 0, len(req.WeeklySchedule))
		for _, d := range req.WeeklySchedule {
			entries = append(entries, models.ScheduleEntry{
				BarberID:  barber.ID,
				Weekday:   d.Weekday,
				StartTime: d.StartTime,
				EndTime:   d.EndTime,
				Working:   d.Working,
			})
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_schedule", "Could not update schedule.")
		return
	}

	c.Status(204)
}

// Available lists active barbers working on the given date's weekday.
func (h *BarberHandler) Available(c *gin.Context) {
	date, err := parseDate(c.Param("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	barbers, err := h.availableBarbers.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	httpresp.List(c, barbers)
}

// Slots enumerates bookable 30-minute start times for one barber/date.
func (h *BarberHandler) Slots(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	date, err := parseDate(c.Param("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), id, date)
	if err != nil {
		if respondBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_list_slots", "Could not compute slots.")
		return
	}

	httpresp.List(c, slots)
}

// Delete deactivates; barbers are never hard-deleted once they have
// future bookings on the books.
func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	var future int64
	h.db.Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND start_time > ? AND status = ?",
			id, timezone.Now(), string(domain.StatusBooked),
		).
		Count(&future)
	if future > 0 {
		httperr.BadRequest(c, "barber_has_appointments", "Cannot delete barber with future appointments.")
		return
	}

	barber.Active = false
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Could not deactivate barber.")
		return
	}

	c.Status(204)
}

func defaultWeeklySchedule(barber models.Barber) []models.ScheduleEntry {
	entries := make([]models.ScheduleEntry, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		weekend := day == time.Saturday || day == time.Sunday
		entries = append(entries, models.ScheduleEntry{
			BarberID:  barber.ID,
			Weekday:   int(day),
			StartTime: "09:00",
			EndTime:   "17:00",
			Working:   !weekend,
		})
	}
	return entries
}
