package timezone

import (
	"sync"
	"time"
)

// The shop runs in a single local zone; all date parsing and "today"
// boundaries use it.
const DefaultTimezone = "America/Sao_Paulo"

var (
	mu  sync.RWMutex
	loc = mustLoad(DefaultTimezone)
)

func mustLoad(tz string) *time.Location {
	l, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return l
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Configure switches the shop timezone. Invalid names keep the default.
func Configure(tz string) {
	if !IsValid(tz) {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	loc = mustLoad(tz)
}

func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
