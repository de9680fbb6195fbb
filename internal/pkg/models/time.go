package models

import (
	"fmt"
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// DayBucket formats t as the daily report bucket
func DayBucket(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekBucket formats t as its ISO week, e.g. 2024-W07
func WeekBucket(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthBucket formats t as the monthly report bucket
func MonthBucket(t time.Time) string {
	return t.Format("2006-01")
}
