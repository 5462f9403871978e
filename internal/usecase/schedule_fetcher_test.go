package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/matchday-schedule/internal/domain/league"
	"github.com/riskibarqy/matchday-schedule/internal/domain/schedule"
	usecasemock "github.com/riskibarqy/matchday-schedule/internal/mocks/usecase"
	"github.com/stretchr/testify/mock"
)

var fetchNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestScheduleFetcher_UsesCurrentSeasonWhenNotEmpty(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewEventSource(t)
	pl := league.League{ID: "4328", Name: "Premier League", SeasonType: league.SeasonRange}

	source.
		On("FetchSeasonEvents", mock.Anything, "4328", "2025-2026").
		Return([]schedule.RawEvent{{ID: "1", Date: "2026-03-02"}}, nil).
		Once()

	fetcher := NewScheduleFetcher(source, ScheduleFetcherConfig{LeagueTimeout: time.Second}, nil)
	got, err := fetcher.FetchAll(context.Background(), []league.League{pl}, fetchNow)
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if len(got) != 1 || got[0].FellBack || got[0].Season != "2025-2026" || len(got[0].Events) != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestScheduleFetcher_FallsBackToPreviousSeasonWhenEmpty(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewEventSource(t)
	dart := league.League{ID: "4554", Name: "Dart", SeasonType: league.SeasonSingle}

	source.On("FetchSeasonEvents", mock.Anything, "4554", "2026").Return([]schedule.RawEvent{}, nil).Once()
	source.
		On("FetchSeasonEvents", mock.Anything, "4554", "2025").
		Return([]schedule.RawEvent{{ID: "9", Date: "2026-03-04"}}, nil).
		Once()

	fetcher := NewScheduleFetcher(source, ScheduleFetcherConfig{}, nil)
	got, err := fetcher.FetchAll(context.Background(), []league.League{dart}, fetchNow)
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if !got[0].FellBack || got[0].Season != "2025" {
		t.Fatalf("expected fallback to 2025, got %+v", got[0])
	}
	if len(got[0].Events) != 1 || got[0].Events[0].ID != "9" {
		t.Fatalf("expected fallback events only, got %+v", got[0].Events)
	}
}

func TestScheduleFetcher_FailureDegradesToZeroEvents(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewEventSource(t)
	shl := league.League{ID: "4419", Name: "SHL", SeasonType: league.SeasonRange}
	f1 := league.League{ID: "4370", Name: "F1", SeasonType: league.SeasonSingle}
	upstreamErr := errors.New("connection reset")

	source.On("FetchSeasonEvents", mock.Anything, "4419", "2025-2026").Return(nil, upstreamErr).Once()
	source.
		On("FetchSeasonEvents", mock.Anything, "4370", "2026").
		Return([]schedule.RawEvent{{ID: "77", Date: "2026-03-08"}}, nil).
		Once()

	fetcher := NewScheduleFetcher(source, ScheduleFetcherConfig{MaxWorkers: 1}, nil)
	got, err := fetcher.FetchAll(context.Background(), []league.League{shl, f1}, fetchNow)
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected two league results, got %d", len(got))
	}
	if !errors.Is(got[0].Err, upstreamErr) || len(got[0].Events) != 0 || got[0].FellBack {
		t.Fatalf("failed league must yield zero events without fallback: %+v", got[0])
	}
	if got[1].Err != nil || len(got[1].Events) != 1 {
		t.Fatalf("sibling league must be unaffected: %+v", got[1])
	}
}

func TestScheduleFetcher_PanicIsCapturedPerLeague(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewEventSource(t)
	indy := league.League{ID: "4373", Name: "IndyCar", SeasonType: league.SeasonSingle}
	cl := league.League{ID: "4480", Name: "Champions League", SeasonType: league.SeasonRange}

	source.On("FetchSeasonEvents", mock.Anything, "4373", "2026").Panic("decoder exploded").Once()
	source.
		On("FetchSeasonEvents", mock.Anything, "4480", "2025-2026").
		Return([]schedule.RawEvent{{ID: "5", Date: "2026-03-10"}}, nil).
		Once()

	fetcher := NewScheduleFetcher(source, ScheduleFetcherConfig{}, nil)
	got, err := fetcher.FetchAll(context.Background(), []league.League{indy, cl}, fetchNow)
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if got[0].Err == nil || len(got[0].Events) != 0 {
		t.Fatalf("panicking league must be captured as an error value: %+v", got[0])
	}
	if got[1].Err != nil || len(got[1].Events) != 1 {
		t.Fatalf("sibling league must be unaffected: %+v", got[1])
	}
}

func TestScheduleFetcher_AppliesLeagueTimeout(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewEventSource(t)
	slow := league.League{ID: "4347", Name: "Allsvenskan", SeasonType: league.SeasonSingle}

	source.
		On("FetchSeasonEvents", mock.Anything, "4347", "2026").
		Return(func(ctx context.Context, _, _ string) ([]schedule.RawEvent, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).
		Once()

	fetcher := NewScheduleFetcher(source, ScheduleFetcherConfig{LeagueTimeout: 20 * time.Millisecond}, nil)
	got, err := fetcher.FetchAll(context.Background(), []league.League{slow}, fetchNow)
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if !errors.Is(got[0].Err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", got[0].Err)
	}
}

func TestScheduleFetcher_NoLeagues(t *testing.T) {
	t.Parallel()

	fetcher := NewScheduleFetcher(usecasemock.NewEventSource(t), ScheduleFetcherConfig{}, nil)
	got, err := fetcher.FetchAll(context.Background(), nil, fetchNow)
	if err != nil || len(got) != 0 {
		t.Fatalf("unexpected result: %+v %v", got, err)
	}
}
