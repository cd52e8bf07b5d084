package trxmgr

import "time"

// julianDay returns the Julian day number of t's calendar date.
func julianDay(t time.Time) int64 {
	y, m, d := t.Date()

	a := (14 - int64(m)) / 12
	yy := int64(y) + 4800 - a
	mm := int64(m) + 12*a - 3

	return int64(d) + (153*mm+2)/5 + 365*yy + yy/4 - yy/100 + yy/400 - 32045
}

func dayDistance(a, b time.Time) int64 {
	diff := julianDay(a) - julianDay(b)
	if diff < 0 {
		return -diff
	}
	return diff
}
