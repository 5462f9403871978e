package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/panics"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/matchday-schedule/internal/domain/league"
	"github.com/riskibarqy/matchday-schedule/internal/domain/schedule"
	"github.com/riskibarqy/matchday-schedule/internal/platform/logging"
)

// EventSource returns the raw events of one league season. An empty slice with
// a nil error means the season has no events.
type EventSource interface {
	FetchSeasonEvents(ctx context.Context, leagueID, season string) ([]schedule.RawEvent, error)
}

const defaultLeagueFetchTimeout = 10 * time.Second

type ScheduleFetcherConfig struct {
	// LeagueTimeout bounds the current and fallback request of one league together.
	LeagueTimeout time.Duration
	// MaxWorkers caps the pool size; zero means one worker per league.
	MaxWorkers int
}

// ScheduleFetcher fans one fetch per league out on a worker pool and joins them.
// A failing or panicking league yields zero events and never affects its siblings.
type ScheduleFetcher struct {
	source EventSource
	cfg    ScheduleFetcherConfig
	logger *logging.Logger
}

func NewScheduleFetcher(source EventSource, cfg ScheduleFetcherConfig, logger *logging.Logger) *ScheduleFetcher {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.LeagueTimeout <= 0 {
		cfg.LeagueTimeout = defaultLeagueFetchTimeout
	}
	if cfg.MaxWorkers < 0 {
		cfg.MaxWorkers = 0
	}
	return &ScheduleFetcher{
		source: source,
		cfg:    cfg,
		logger: logger.Named("schedule_fetcher"),
	}
}

// FetchAll returns one entry per league, in the order of leagues.
func (f *ScheduleFetcher) FetchAll(ctx context.Context, leagues []league.League, now time.Time) ([]schedule.LeagueEvents, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleFetcher.FetchAll")
	defer span.End()

	results := make([]schedule.LeagueEvents, len(leagues))
	if len(leagues) == 0 {
		return results, nil
	}

	pool, err := ants.NewPool(f.workerCount(len(leagues)))
	if err != nil {
		return nil, fmt.Errorf("create fetch worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, item := range leagues {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results[i] = f.runTask(ctx, item, now)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit fetch task for league %s: %w", item.ID, err)
		}
	}
	workers.Wait()

	return results, nil
}

func (f *ScheduleFetcher) workerCount(leagues int) int {
	if f.cfg.MaxWorkers > 0 && f.cfg.MaxWorkers < leagues {
		return f.cfg.MaxWorkers
	}
	return leagues
}

func (f *ScheduleFetcher) runTask(ctx context.Context, item league.League, now time.Time) schedule.LeagueEvents {
	var out schedule.LeagueEvents
	var catcher panics.Catcher
	catcher.Try(func() {
		out = f.fetchLeague(ctx, item, now)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		f.logger.ErrorContext(ctx, "league fetch panicked",
			"league_id", item.ID,
			"league", item.Name,
			"error", recovered.AsError(),
		)
		return schedule.LeagueEvents{
			League: item,
			Season: item.CurrentSeason(now),
			Events: []schedule.RawEvent{},
			Err:    recovered.AsError(),
		}
	}
	return out
}

// fetchLeague requests the current season and, only when it is empty, the
// previous one. A failed request ends the league with zero events.
func (f *ScheduleFetcher) fetchLeague(ctx context.Context, item league.League, now time.Time) schedule.LeagueEvents {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleFetcher.fetchLeague")
	defer span.End()
	ctx, cancel := context.WithTimeout(ctx, f.cfg.LeagueTimeout)
	defer cancel()

	season := item.CurrentSeason(now)
	out := schedule.LeagueEvents{League: item, Season: season, Events: []schedule.RawEvent{}}
	span.SetAttributes(attribute.String("league.id", item.ID), attribute.String("league.season", season))

	events, err := f.source.FetchSeasonEvents(ctx, item.ID, season)
	if err != nil {
		f.logger.WarnContext(ctx, "league fetch failed, continuing without it",
			"league_id", item.ID,
			"league", item.Name,
			"season", season,
			"error", err,
		)
		out.Err = err
		return out
	}
	if len(events) > 0 {
		out.Events = events
		return out
	}

	previous := item.PreviousSeason(season)
	events, err = f.source.FetchSeasonEvents(ctx, item.ID, previous)
	out.Season = previous
	out.FellBack = true
	span.SetAttributes(attribute.String("league.fallback_season", previous))
	if err != nil {
		f.logger.WarnContext(ctx, "league fallback fetch failed, continuing without it",
			"league_id", item.ID,
			"league", item.Name,
			"season", previous,
			"error", err,
		)
		out.Err = err
		return out
	}

	f.logger.DebugContext(ctx, "league used previous season",
		"league_id", item.ID,
		"season", previous,
		"events", len(events),
	)
	if events != nil {
		out.Events = events
	}
	return out
}
