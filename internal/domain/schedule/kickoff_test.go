package schedule

import (
	"fmt"
	"testing"
	"time"
)

func TestNormalizeKickoff(t *testing.T) {
	cases := []struct {
		name     string
		date     string
		time     string
		offset   int
		wantDate string
		wantTime string
	}{
		{"forward rollover", "2024-01-01", "23:30", 60, "2024-01-02", "00:30"},
		{"backward rollover on leap day", "2024-03-01", "00:10", -60, "2024-02-29", "23:10"},
		{"year rollover", "2025-12-31", "23:15", 60, "2026-01-01", "00:15"},
		{"multi-day forward", "2024-01-30", "12:00", 3 * 1440, "2024-02-02", "12:00"},
		{"multi-day backward", "2024-01-02", "01:00", -2*1440 - 120, "2023-12-30", "23:00"},
		{"seconds are truncated", "2024-05-05", "18:45:00", 60, "2024-05-05", "19:45"},
		{"zero offset", "2024-05-05", "07:05", 0, "2024-05-05", "07:05"},
		{"empty time keeps date", "2024-05-05", "", 60, "2024-05-05", ""},
		{"garbage time is unknown", "2024-05-05", "TBD", 60, "2024-05-05", ""},
		{"out of range time is unknown", "2024-05-05", "25:00", 60, "2024-05-05", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotDate, gotTime, err := NormalizeKickoff(tc.date, tc.time, tc.offset)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotDate != tc.wantDate || gotTime != tc.wantTime {
				t.Fatalf("got (%s, %q) want (%s, %q)", gotDate, gotTime, tc.wantDate, tc.wantTime)
			}
		})
	}
}

func TestNormalizeKickoff_InvalidDate(t *testing.T) {
	for _, date := range []string{"", "2024-13-01", "01/02/2024"} {
		if _, _, err := NormalizeKickoff(date, "12:00", 60); err == nil {
			t.Fatalf("expected error for date %q", date)
		}
	}
}

func TestNormalizeKickoff_RoundTrip(t *testing.T) {
	dates := []string{"2024-01-01", "2024-02-29", "2023-12-31", "2025-03-30"}
	offsets := []int{1, 60, -60, 719, -1439, 1441, 4000}

	for _, date := range dates {
		for minute := 0; minute < minutesPerDay; minute += 7 {
			clock := fmt.Sprintf("%02d:%02d", minute/60, minute%60)
			for _, offset := range offsets {
				d1, t1, err := NormalizeKickoff(date, clock, offset)
				if err != nil {
					t.Fatalf("forward: %v", err)
				}
				d2, t2, err := NormalizeKickoff(d1, t1, -offset)
				if err != nil {
					t.Fatalf("backward: %v", err)
				}
				if d2 != date || t2 != clock {
					t.Fatalf("round trip %s %s offset %d: got %s %s", date, clock, offset, d2, t2)
				}
			}
		}
	}
}

func TestToday_UsesFixedZone(t *testing.T) {
	now := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	if got := Today(now, 60).Format(time.DateOnly); got != "2024-01-02" {
		t.Fatalf("expected next calendar day in +60 zone, got %s", got)
	}
	if got := Today(now, 0).Format(time.DateOnly); got != "2024-01-01" {
		t.Fatalf("expected same day without offset, got %s", got)
	}
}
