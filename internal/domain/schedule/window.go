package schedule

import "time"

const DefaultWindowDays = 14

// SelectWindow returns the days in [today, today+size-1]. When that range is
// empty it returns the first size days on or after today, and when nothing is
// upcoming it returns the first size days overall. days must be sorted by date.
func SelectWindow(days []Day, today time.Time, size int) []Day {
	if size <= 0 {
		size = DefaultWindowDays
	}
	start := today.Format(time.DateOnly)
	end := today.AddDate(0, 0, size-1).Format(time.DateOnly)

	inRange := make([]Day, 0, size)
	for _, d := range days {
		if d.Date >= start && d.Date <= end {
			inRange = append(inRange, d)
		}
	}
	if len(inRange) > 0 {
		return inRange
	}

	upcoming := make([]Day, 0, size)
	for _, d := range days {
		if d.Date >= start {
			upcoming = append(upcoming, d)
			if len(upcoming) == size {
				break
			}
		}
	}
	if len(upcoming) > 0 {
		return upcoming
	}

	return days[:min(size, len(days))]
}

// Today is the calendar date of now in the fixed-offset zone, at midnight.
func Today(now time.Time, offsetMinutes int) time.Time {
	local := now.In(FixedZone(offsetMinutes))
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
