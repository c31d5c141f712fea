package study

import "time"

// DayStart returns the start of the current day in the user's timezone, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	userNow := now.In(tz)
	dayStart := time.Date(userNow.Year(), userNow.Month(), userNow.Day(), 0, 0, 0, 0, tz)
	return dayStart.UTC()
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
