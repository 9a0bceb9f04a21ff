package restaurant

import (
	"errors"
	"strings"
)

var (
	ErrInvalidWeekday   = errors.New("invalid weekday in schedule")
	ErrInvalidHourRange = errors.New("opening hours must be in HH:MM-HH:MM form")
)

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// Schedule maps lowercase weekday names to opening-hour ranges,
// e.g. {"monday": "11:30-22:00"}. A missing day means closed.
type Schedule map[string]string

func NewSchedule(raw map[string]string) (Schedule, error) {
	s := make(Schedule, len(raw))
	for day, hours := range raw {
		day = strings.ToLower(strings.TrimSpace(day))
		if !weekdays[day] {
			return nil, ErrInvalidWeekday
		}
		hours = strings.TrimSpace(hours)
		if !validHourRange(hours) {
			return nil, ErrInvalidHourRange
		}
		s[day] = hours
	}
	return s, nil
}

func validHourRange(s string) bool {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return false
	}
	for _, p := range parts {
		hm := strings.Split(p, ":")
		if len(hm) != 2 || len(hm[0]) != 2 || len(hm[1]) != 2 {
			return false
		}
	}
	return true
}
