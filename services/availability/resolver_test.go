package availability

import (
	"testing"
	"time"

	"carelink/models"

	"github.com/stretchr/testify/assert"
)

func TestTimeUntilAvailable(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		provider models.Provider
		want     time.Duration
	}{
		{
			name:     "available now has zero wait",
			provider: models.Provider{Available: true, NextAvailable: now.Add(2 * time.Hour)},
			want:     0,
		},
		{
			name:     "future slot yields positive wait",
			provider: models.Provider{Available: false, NextAvailable: now.Add(20 * time.Minute)},
			want:     20 * time.Minute,
		},
		{
			name:     "stale past timestamp clamps to zero",
			provider: models.Provider{Available: false, NextAvailable: now.Add(-45 * time.Minute)},
			want:     0,
		},
		{
			name:     "next slot exactly now",
			provider: models.Provider{Available: false, NextAvailable: now},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeUntilAvailable(tt.provider, now))
		})
	}
}

func TestFormatWait(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0m"},
		{"under an hour", 20 * time.Minute, "20m"},
		{"exactly one hour", time.Hour, "1h 0m"},
		{"hours and minutes", 11*time.Hour + 30*time.Minute, "11h 30m"},
		{"sub-minute precision floors", 90 * time.Second, "1m"},
		{"59m59s stays under the hour", 59*time.Minute + 59*time.Second, "59m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWait(tt.d))
		})
	}
}

func TestOfferedSlotsReturnsCopy(t *testing.T) {
	p := models.Provider{OfferedTimes: []string{"09:30", "12:00", "16:00"}}

	slots := OfferedSlots(p, "2026-03-10")
	assert.Equal(t, []string{"09:30", "12:00", "16:00"}, slots)

	slots[0] = "00:00"
	assert.Equal(t, []string{"09:30", "12:00", "16:00"}, p.OfferedTimes)
}

func TestIsAvailableNow(t *testing.T) {
	assert.True(t, IsAvailableNow(models.Provider{Available: true}))
	assert.False(t, IsAvailableNow(models.Provider{Available: false}))
}
