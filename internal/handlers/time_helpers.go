package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"barbertime/internal/httperr"
	"barbertime/internal/timezone"
)

// Dates in paths and query strings are plain "YYYY-MM-DD" and resolve
// in the shop's timezone.
func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location())
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a UUID.")
		return uuid.Nil, false
	}
	return id, true
}
