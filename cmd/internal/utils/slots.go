package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	SlotMinutes  = 30
	MaxSlot      = 47
	DayKeyLayout = "2006-01-02"
)

func SlotToMinutes(slot int) int {
	return slot * SlotMinutes
}

func HMToSlot(h, m int) int {
	return (h*60 + m) / SlotMinutes
}

// FormatHM renders minutes past midnight as HH:MM. The hour is not wrapped,
// so a time pushed past midnight reads as 24:10.
func FormatHM(minutes int) string {
	h := minutes / 60
	m := ((minutes % 60) + 60) % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// ParseHM parses HH:MM into minutes past midnight.
func ParseHM(hm string) (int, error) {
	parts := strings.Split(hm, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", hm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", hm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q", hm)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", hm)
	}
	return h*60 + m, nil
}

// ParseDayKey reads a YYYY-MM-DD key as local noon, which keeps the weekday
// stable across timezone offsets.
func ParseDayKey(dayKey string) (time.Time, error) {
	d, err := time.ParseInLocation(DayKeyLayout, dayKey, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(12 * time.Hour), nil
}

// YearMonthKey formats the YYYY-MM key used for perks and month prefixes.
func YearMonthKey(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// ParseYearMonth takes "YYYY-MM" (e.g., "2025-08").
func ParseYearMonth(ym string) (int, int, error) {
	t, err := time.Parse("2006-01", ym)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", ym)
	}
	return t.Year(), int(t.Month()), nil
}
