package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// NormalizeKickoff applies a fixed minute offset to an upstream (date, time) pair
// and rolls the date across day, month and year boundaries as needed.
//
// An empty or unparseable time leaves the date untouched and yields an empty
// time. An unparseable date is an error.
func NormalizeKickoff(date, rawTime string, offsetMinutes int) (string, string, error) {
	day, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(date), time.UTC)
	if err != nil {
		return "", "", fmt.Errorf("parse event date %q: %w", date, err)
	}

	minutes, ok := parseClock(rawTime)
	if !ok {
		return day.Format(time.DateOnly), "", nil
	}

	total := minutes + offsetMinutes
	for total >= minutesPerDay {
		total -= minutesPerDay
		day = day.AddDate(0, 0, 1)
	}
	for total < 0 {
		total += minutesPerDay
		day = day.AddDate(0, 0, -1)
	}

	return day.Format(time.DateOnly), fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// parseClock reads "HH:MM" and ignores anything after the fifth character, so
// "HH:MM:SS" and "HH:MM:SS+00:00" are accepted.
func parseClock(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) > 5 {
		raw = raw[:5]
	}
	hh, mm, found := strings.Cut(raw, ":")
	if !found {
		return 0, false
	}
	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 || len(mm) != 2 {
		return 0, false
	}
	return hours*60 + minutes, true
}
