package businesshours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, iso string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, iso)
	require.NoError(t, err)
	return parsed
}

func TestElapsedExcludesWeekend(t *testing.T) {
	cal := Default()

	// Saturday 10:00 local; 48 hours later is Monday 10:00 local. Only
	// Monday 08:00-10:00 counts.
	start := "2025-06-14T10:00:00-06:00"
	now := mustParse(t, "2025-06-16T10:00:00-06:00")

	assert.InDelta(t, 2.0, cal.Elapsed(start, now), 1e-9)
}

func TestElapsedReachesThresholdAcrossDays(t *testing.T) {
	cal := Default()

	// Tuesday 09:00 local leaves 8h in that day's window; Wednesday 10:00
	// local adds 2h more.
	start := "2025-06-17T09:00:00-06:00"
	now := mustParse(t, "2025-06-18T10:00:00-06:00")

	assert.InDelta(t, 10.0, cal.Elapsed(start, now), 1e-9)
}

func TestElapsedClipsToWindowEnd(t *testing.T) {
	cal := Default()

	// Past 17:00 local nothing more accrues that day.
	start := "2025-06-17T09:00:00-06:00"
	now := mustParse(t, "2025-06-18T19:00:00-06:00")

	assert.InDelta(t, 17.0, cal.Elapsed(start, now), 1e-9)
}

func TestElapsedSameDayFraction(t *testing.T) {
	cal := Default()

	start := "2025-06-17T10:00:00-06:00"
	now := mustParse(t, "2025-06-17T12:30:00-06:00")

	assert.InDelta(t, 2.5, cal.Elapsed(start, now), 1e-9)
}

func TestElapsedStartBeforeWindowOpens(t *testing.T) {
	cal := Default()

	start := "2025-06-17T06:00:00-06:00"
	now := mustParse(t, "2025-06-17T09:00:00-06:00")

	assert.InDelta(t, 1.0, cal.Elapsed(start, now), 1e-9)
}

func TestElapsedStartAfterWindowClosesResumesNextDay(t *testing.T) {
	cal := Default()

	start := "2025-06-17T18:00:00-06:00"
	now := mustParse(t, "2025-06-18T09:00:00-06:00")

	assert.InDelta(t, 1.0, cal.Elapsed(start, now), 1e-9)
}

func TestElapsedZeroCases(t *testing.T) {
	cal := Default()
	now := mustParse(t, "2025-06-17T12:00:00-06:00")

	tests := []struct {
		name  string
		start string
	}{
		{"empty start", ""},
		{"unparsable start", "yesterday at noon"},
		{"start after now", "2025-06-18T12:00:00-06:00"},
		{"start equals now", "2025-06-17T12:00:00-06:00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Zero(t, cal.Elapsed(tc.start, now))
		})
	}
}

func TestElapsedZeroWithinWeekend(t *testing.T) {
	cal := Default()

	start := "2025-06-14T09:00:00-06:00"
	now := mustParse(t, "2025-06-15T20:00:00-06:00")

	assert.Zero(t, cal.Elapsed(start, now))
}

func TestElapsedHandlesUTCInstants(t *testing.T) {
	cal := Default()

	// 2025-06-17T15:00:00Z is Tuesday 09:00 in Costa Rica.
	start := "2025-06-17T15:00:00Z"
	now := mustParse(t, "2025-06-17T18:00:00Z")

	assert.InDelta(t, 3.0, cal.Elapsed(start, now), 1e-9)
}
