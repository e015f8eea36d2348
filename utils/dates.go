package utils

import "time"

// unixEpochOrdinal is the ordinal of 1970-01-01 when 0001-01-01 is day 1.
const unixEpochOrdinal = 719163

const secondsPerDay = 24 * 60 * 60

// DayOrdinal returns the proleptic Gregorian ordinal of t's calendar date
// in t's own location. 0001-01-01 is 1.
func DayOrdinal(t time.Time) int64 {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return floorDiv(midnight.Unix(), secondsPerDay) + unixEpochOrdinal
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
