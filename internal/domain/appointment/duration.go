package appointment

import (
	"strings"
	"time"
)

// Service durations are a fixed lookup by category, never user-supplied.
const (
	DefaultDurationMin  = 30
	CombinedDurationMin = 60
)

// ServiceDuration returns the booking duration for a service type.
// The combined category ("both": haircut + beard) takes a full hour,
// everything else takes half an hour.
func ServiceDuration(serviceType string) time.Duration {
	if strings.EqualFold(strings.TrimSpace(serviceType), "both") {
		return CombinedDurationMin * time.Minute
	}
	return DefaultDurationMin * time.Minute
}
