package display

import "time"

// ValueFunc produces the four-digit value shown by a surface.
type ValueFunc func(t time.Time) int

// Compose packs two two-digit fields into one four-digit value.
func Compose(a, b int) int {
	return a*100 + b
}

// DateValue shows the day of month followed by the month.
func DateValue(t time.Time) int {
	return Compose(t.Day(), int(t.Month()))
}

// TimeValue shows the hour (24h) followed by the minute.
func TimeValue(t time.Time) int {
	return Compose(t.Hour(), t.Minute())
}
