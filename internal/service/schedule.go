package service

import "time"

// dueOn reports whether an action last done at last, repeated every
// frequencyDays, is due on today. Only UTC calendar dates are compared.
func dueOn(last time.Time, frequencyDays int, today time.Time) bool {
	next := truncateToDate(last).AddDate(0, 0, frequencyDays)
	return !next.After(truncateToDate(today))
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
