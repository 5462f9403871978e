package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/matchday-schedule/internal/domain/channel"
	"github.com/riskibarqy/matchday-schedule/internal/domain/league"
	"github.com/riskibarqy/matchday-schedule/internal/domain/priority"
	"github.com/riskibarqy/matchday-schedule/internal/domain/schedule"
	"github.com/riskibarqy/matchday-schedule/internal/platform/logging"
)

type ScheduleConfig struct {
	OffsetMinutes int
	MatchDuration time.Duration
	WindowDays    int
}

// LeagueSeason is a configured league with its resolved seasons at a point in time.
type LeagueSeason struct {
	League         league.League
	CurrentSeason  string
	PreviousSeason string
}

type ScheduleService struct {
	leagueRepo league.Repository
	ruleRepo   channel.RuleRepository
	fetcher    *ScheduleFetcher
	priorities priority.Reader
	cfg        ScheduleConfig
	logger     *logging.Logger
	now        func() time.Time
}

func NewScheduleService(
	leagueRepo league.Repository,
	ruleRepo channel.RuleRepository,
	fetcher *ScheduleFetcher,
	priorities priority.Reader,
	cfg ScheduleConfig,
	logger *logging.Logger,
) *ScheduleService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.MatchDuration <= 0 {
		cfg.MatchDuration = schedule.DefaultMatchDuration
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = schedule.DefaultWindowDays
	}
	return &ScheduleService{
		leagueRepo: leagueRepo,
		ruleRepo:   ruleRepo,
		fetcher:    fetcher,
		priorities: priorities,
		cfg:        cfg,
		logger:     logger.Named("schedule_service"),
		now:        time.Now,
	}
}

// Aggregate runs one full aggregation: fetch every league, normalize, overlay,
// bucket by day and cut the forward window. Per-league failures are absorbed;
// only catalog or pool failures surface as errors.
func (s *ScheduleService) Aggregate(ctx context.Context) (schedule.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Aggregate")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return schedule.Result{}, fmt.Errorf("list leagues: %w", err)
	}
	rules, err := s.ruleRepo.Rules(ctx)
	if err != nil {
		return schedule.Result{}, fmt.Errorf("list channel rules: %w", err)
	}

	now := s.now()
	fetched, err := s.fetcher.FetchAll(ctx, leagues, now)
	if err != nil {
		return schedule.Result{}, fmt.Errorf("fetch league events: %w", err)
	}

	aggregator := schedule.Aggregator{
		OffsetMinutes: s.cfg.OffsetMinutes,
		MatchDuration: s.cfg.MatchDuration,
		Channels:      channel.NewResolver(rules),
		Priorities:    s.priorities,
	}
	days := aggregator.Aggregate(now, fetched)
	window := schedule.SelectWindow(days, schedule.Today(now, s.cfg.OffsetMinutes), s.cfg.WindowDays)

	failed := 0
	for _, item := range fetched {
		if item.Err != nil {
			failed++
		}
	}
	s.logger.InfoContext(ctx, "schedule aggregated",
		"leagues", len(leagues),
		"failed_leagues", failed,
		"days", len(days),
		"window_days", len(window),
	)

	return schedule.Result{GeneratedAt: now.UTC(), Days: window}, nil
}

func (s *ScheduleService) ListLeagues(ctx context.Context) ([]LeagueSeason, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	now := s.now()
	out := make([]LeagueSeason, 0, len(leagues))
	for _, item := range leagues {
		current := item.CurrentSeason(now)
		out = append(out, LeagueSeason{
			League:         item,
			CurrentSeason:  current,
			PreviousSeason: item.PreviousSeason(current),
		})
	}
	return out, nil
}
