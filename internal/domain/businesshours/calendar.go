package businesshours

import "time"

const (
	// Costa Rica keeps UTC-6 year-round; there is no daylight saving to model.
	CostaRicaOffsetMinutes = -6 * 60

	DefaultStartHour = 8
	DefaultEndHour   = 17
)

// Calendar computes elapsed working hours under a fixed UTC offset and a
// contiguous daily window. Saturdays and Sundays contribute nothing.
type Calendar struct {
	OffsetMinutes int // fixed UTC offset of the business timezone, in minutes
	StartHour     int // window opens at StartHour:00 local time
	EndHour       int // window closes at EndHour:00 local time
}

// Default returns the calendar the reminder job runs on: Costa Rica local
// time, 08:00-17:00, weekdays only.
func Default() Calendar {
	return Calendar{
		OffsetMinutes: CostaRicaOffsetMinutes,
		StartHour:     DefaultStartHour,
		EndHour:       DefaultEndHour,
	}
}

// Elapsed returns the business hours between startISO and now, as a real
// number. An empty or unparsable start yields 0, as does now <= start.
// The walk visits every calendar day the interval touches and adds the
// overlap between [cursor, now) and that day's working window.
func (c Calendar) Elapsed(startISO string, now time.Time) float64 {
	if startISO == "" {
		return 0
	}
	start, err := time.Parse(time.RFC3339, startISO)
	if err != nil {
		return 0
	}

	offset := time.Duration(c.OffsetMinutes) * time.Minute
	startLocal := start.UTC().Add(offset)
	nowLocal := now.UTC().Add(offset)
	if !nowLocal.After(startLocal) {
		return 0
	}

	var hours float64
	cursor := startLocal
	for cursor.Before(nowLocal) {
		dayStart := time.Date(cursor.Year(), cursor.Month(), cursor.Day(), 0, 0, 0, 0, time.UTC)
		if wd := dayStart.Weekday(); wd != time.Saturday && wd != time.Sunday {
			windowOpen := dayStart.Add(time.Duration(c.StartHour) * time.Hour)
			windowClose := dayStart.Add(time.Duration(c.EndHour) * time.Hour)

			from := cursor
			if windowOpen.After(from) {
				from = windowOpen
			}
			to := nowLocal
			if windowClose.Before(to) {
				to = windowClose
			}
			if to.After(from) {
				hours += to.Sub(from).Hours()
			}
		}
		cursor = dayStart.Add(24 * time.Hour)
	}

	return hours
}
