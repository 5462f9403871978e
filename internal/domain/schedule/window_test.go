package schedule

import (
	"testing"
	"time"
)

func daysFrom(start string, n int) []Day {
	first, _ := time.Parse(time.DateOnly, start)
	out := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Day{Date: first.AddDate(0, 0, i).Format(time.DateOnly)})
	}
	return out
}

func mustDate(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, v)
	if err != nil {
		t.Fatalf("parse %q: %v", v, err)
	}
	return d
}

func TestSelectWindow_InRange(t *testing.T) {
	days := daysFrom("2026-02-25", 30)
	got := SelectWindow(days, mustDate(t, "2026-03-01"), 14)

	if len(got) != 14 {
		t.Fatalf("expected 14 days, got %d", len(got))
	}
	if got[0].Date != "2026-03-01" || got[13].Date != "2026-03-14" {
		t.Fatalf("unexpected bounds: %s..%s", got[0].Date, got[13].Date)
	}
}

func TestSelectWindow_SparseRangeIsNotPadded(t *testing.T) {
	days := []Day{{Date: "2026-02-01"}, {Date: "2026-03-03"}, {Date: "2026-03-20"}}
	got := SelectWindow(days, mustDate(t, "2026-03-01"), 14)

	if len(got) != 1 || got[0].Date != "2026-03-03" {
		t.Fatalf("unexpected window: %+v", got)
	}
}

func TestSelectWindow_FallsBackToUpcoming(t *testing.T) {
	days := append([]Day{{Date: "2026-01-01"}}, daysFrom("2026-05-01", 20)...)
	got := SelectWindow(days, mustDate(t, "2026-03-01"), 14)

	if len(got) != 14 {
		t.Fatalf("expected 14 upcoming days, got %d", len(got))
	}
	if got[0].Date != "2026-05-01" {
		t.Fatalf("expected first upcoming day, got %s", got[0].Date)
	}
}

func TestSelectWindow_FallsBackToFirstDaysOverall(t *testing.T) {
	days := daysFrom("2025-06-01", 20)
	got := SelectWindow(days, mustDate(t, "2026-03-01"), 14)

	if len(got) != 14 {
		t.Fatalf("expected 14 stale days, got %d", len(got))
	}
	for i := range got {
		if got[i].Date != days[i].Date {
			t.Fatalf("index %d: got %s want %s", i, got[i].Date, days[i].Date)
		}
	}
}

func TestSelectWindow_Empty(t *testing.T) {
	if got := SelectWindow(nil, mustDate(t, "2026-03-01"), 14); len(got) != 0 {
		t.Fatalf("expected empty window, got %+v", got)
	}
}
