package handlers

import (
	"github.com/gin-gonic/gin"

	"barbertime/internal/httperr"
)

var businessMessages = map[string]string{
	"customer_not_found":    "Customer not found.",
	"barber_not_found":      "Barber not found.",
	"barber_inactive":       "Barber is not active.",
	"appointment_not_found": "Appointment not found.",
	"invalid_time":          "Appointment must be scheduled for a future date and time.",
	"outside_working_days":  "Barber is not working on this day.",
	"outside_working_hours": "Appointment time is outside barber's working hours.",
	"slot_unavailable":      "Time slot is not available.",
	"duplicate_email":       "Email already exists.",
	"cannot_modify_past":    "Cannot modify past or current appointments.",
	"invalid_status":        "Unknown appointment status.",
}

var notFoundCodes = map[string]bool{
	"customer_not_found":    true,
	"barber_not_found":      true,
	"appointment_not_found": true,
}

// respondBusiness writes a business error and reports whether err was
// one. Non-business errors fall through to the caller's 500.
func respondBusiness(c *gin.Context, err error) bool {
	code := httperr.BusinessCode(err)
	if code == "" {
		return false
	}

	msg, ok := businessMessages[code]
	if !ok {
		msg = "Request rejected."
	}

	if notFoundCodes[code] {
		httperr.NotFound(c, code, msg)
	} else {
		httperr.BadRequest(c, code, msg)
	}
	return true
}
