package utils

import "time"

// timestampLayout renders timestamps for display, e.g. "2024-03-01 18:04:05 UTC".
const timestampLayout = "2006-01-02 15:04:05 UTC"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// HoursFromNow returns a UTC timestamp n hours from now.
func HoursFromNow(n int) time.Time {
	return time.Now().UTC().Add(time.Duration(n) * time.Hour)
}

// DaysFromNow returns a UTC timestamp n days from now.
func DaysFromNow(n int) time.Time {
	return time.Now().UTC().AddDate(0, 0, n)
}

// FormatTimestamp renders a timestamp for display.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// IsPast reports whether t is before the current time.
func IsPast(t time.Time) bool {
	return t.Before(time.Now())
}

// IsFuture reports whether t is after the current time.
func IsFuture(t time.Time) bool {
	return t.After(time.Now())
}
