package repository

import (
	"time"
)

// timeLayout is the storage format for timestamps. Nanosecond precision
// keeps events written within the same second in order.
const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// nowUTC returns the current UTC time in storage format.
func nowUTC() string {
	return formatTime(time.Now())
}
