// Package dateutil holds the calendar arithmetic shared by the store and the
// views. Months are zero-based (0 = January) wherever an index is used,
// matching the persisted watermark format.
package dateutil

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

var monthNames = [12]string{
	"一月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "十一月", "十二月",
}

var weekdayNames = [7]string{"日", "一", "二", "三", "四", "五", "六"}

// DayString formats t as a zero-padded "YYYY-MM-DD" calendar day.
func DayString(t time.Time) string {
	return t.Format(dayLayout)
}

// ParseDay parses a "YYYY-MM-DD" day string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("dateutil: parse day %q: %w", s, err)
	}
	return t, nil
}

// MonthKey encodes t's year and zero-based month as "YYYY-M", the summary
// watermark format.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%d-%d", t.Year(), int(t.Month())-1)
}

// PrevMonth returns the year and zero-based month of the calendar month
// before t.
func PrevMonth(t time.Time) (year int, month0 int) {
	prev := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, -1, 0)
	return prev.Year(), int(prev.Month()) - 1
}

// DaysInMonth returns the day count of the given zero-based month.
func DaysInMonth(year int, month0 int) int {
	first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// FirstWeekday returns the weekday of the first day of the given zero-based
// month, 0 for Sunday through 6 for Saturday.
func FirstWeekday(year int, month0 int) int {
	first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
	return int(first.Weekday())
}

// MonthName returns the localized name for a zero-based month index.
func MonthName(month0 int) string {
	if month0 < 0 || month0 > 11 {
		return ""
	}
	return monthNames[month0]
}

// WeekdayName returns the localized single-character weekday header,
// 0 for Sunday.
func WeekdayName(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return weekdayNames[weekday]
}
