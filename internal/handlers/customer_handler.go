package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barbertime/internal/httperr"
	"barbertime/internal/httpresp"
	"barbertime/internal/models"
	"barbertime/internal/validators"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// --------- Requests / responses ---------

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,max=255"`
	Phone string `json:"phone" binding:"max=20"`
}

type AppointmentSummary struct {
	ID          uuid.UUID `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	ServiceType string    `json:"service_type"`
	Status      string    `json:"status"`
	BarberName  string    `json:"barber_name"`
}

type CustomerWithAppointments struct {
	models.Customer
	AppointmentHistory []AppointmentSummary `json:"appointments"`
}

// --------- Handlers ---------

func (h *CustomerHandler) List(c *gin.Context) {
	var customers []models.Customer
	if err := h.db.
		Order("name ASC").
		Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Could not list customers.")
		return
	}

	httpresp.List(c, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.db.
		Preload("Appointments", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Preload("Appointments.Barber").
		First(&customer, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
		return
	}

	out := CustomerWithAppointments{Customer: customer}
	for _, ap := range customer.Appointments {
		out.AppointmentHistory = append(out.AppointmentHistory, AppointmentSummary{
			ID:          ap.ID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			ServiceType: ap.ServiceType,
			Status:      ap.Status,
			BarberName:  ap.Barber.Name,
		})
	}

	httpresp.OK(c, out)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailFormatValid(email) {
		httperr.BadRequest(c, "invalid_email", "Email address is not valid.")
		return
	}

	var count int64
	h.db.Model(&models.Customer{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "duplicate_email", "Email already exists.")
		return
	}

	customer := models.Customer{
		Name:  req.Name,
		Email: email,
		Phone: req.Phone,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Could not create customer.")
		return
	}

	httpresp.Created(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
		return
	}

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Customer{}).
		Where("email = ? AND id <> ?", email, id).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "duplicate_email", "Email already exists.")
		return
	}

	customer.Name = req.Name
	customer.Email = email
	customer.Phone = req.Phone

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "Could not update customer.")
		return
	}

	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Search(c *gin.Context) {
	term := strings.ToLower(strings.TrimSpace(c.Param("term")))

	like := "%" + term + "%"

	var customers []models.Customer
	if err := h.db.
		Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			like, like, like,
		).
		Order("name ASC").
		Limit(10).
		Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_search_customers", "Could not search customers.")
		return
	}

	httpresp.List(c, customers)
}

// Delete removes the customer; their appointments go with them
// (cascade), unlike barbers which are only ever deactivated.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
		return
	}

	if err := h.db.Select("Appointments").Delete(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_customer", "Could not delete customer.")
		return
	}

	c.Status(204)
}
