package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbertime/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Booked", "Completed", "Cancelled", "NoShow"} {
		st, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(st))
	}

	for _, invalid := range []string{"", "booked", "BOOKED", "Done", "no_show"} {
		_, err := ParseStatus(invalid)
		assert.True(t, httperr.IsBusiness(err, "invalid_status"), "%q must be rejected", invalid)
	}
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, StatusBooked.Blocks())
	assert.False(t, StatusCompleted.Blocks())
	assert.False(t, StatusCancelled.Blocks())
	assert.False(t, StatusNoShow.Blocks())
}

func TestServiceDuration(t *testing.T) {
	tests := []struct {
		serviceType string
		expected    time.Duration
	}{
		{"both", 60 * time.Minute},
		{"Both", 60 * time.Minute},
		{"BOTH", 60 * time.Minute},
		{" both ", 60 * time.Minute},
		{"Haircut", 30 * time.Minute},
		{"Beard", 30 * time.Minute},
		{"", 30 * time.Minute},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ServiceDuration(tt.serviceType), "service type %q", tt.serviceType)
	}
}
