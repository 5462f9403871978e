package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/matchday-schedule/external/thesportsdb"
	"github.com/riskibarqy/matchday-schedule/internal/config"
	"github.com/riskibarqy/matchday-schedule/internal/infrastructure/catalog"
	"github.com/riskibarqy/matchday-schedule/internal/infrastructure/repository/file"
	"github.com/riskibarqy/matchday-schedule/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchday-schedule/internal/platform/logging"
	"github.com/riskibarqy/matchday-schedule/internal/platform/resilience"
	"github.com/riskibarqy/matchday-schedule/internal/usecase"
)

// App is the assembled service: the HTTP server plus the background work that
// runs beside it.
type App struct {
	Server *http.Server

	catalog      *catalog.Store
	catalogWatch bool
	logger       *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	catalogStore, err := catalog.NewStore(cfg.CatalogPath, logger)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	sportsDB := thesportsdb.NewClient(thesportsdb.ClientConfig{
		BaseURL:       cfg.TheSportsDBBaseURL,
		APIKey:        cfg.TheSportsDBKey,
		Timeout:       cfg.TheSportsDBTimeout,
		RatePerSecond: cfg.TheSportsDBRatePerSec,
		Logger:        logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.TheSportsDBCircuitEnabled,
			FailureThreshold: cfg.TheSportsDBCircuitFailureCount,
			OpenTimeout:      cfg.TheSportsDBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.TheSportsDBCircuitHalfOpenMaxReq,
		},
	})

	priorityStore := file.NewPriorityStore(cfg.PrioritiesPath, logger)

	scheduleSvc := usecase.NewScheduleService(
		catalogStore,
		catalogStore,
		usecase.NewScheduleFetcher(sportsDB, usecase.ScheduleFetcherConfig{
			LeagueTimeout: cfg.TheSportsDBTimeout,
			MaxWorkers:    cfg.ScheduleFetchWorkers,
		}, logger),
		priorityStore,
		usecase.ScheduleConfig{
			OffsetMinutes: cfg.ScheduleTimeOffsetMinutes,
			MatchDuration: cfg.ScheduleMatchDuration,
			WindowDays:    cfg.ScheduleWindowDays,
		},
		logger,
	)
	prioritySvc := usecase.NewPriorityService(priorityStore)
	checklistSvc := usecase.NewChecklistService(
		file.NewChecklistTemplateRepository(cfg.ChecklistTemplatePath, logger),
		file.NewChecklistRepository(cfg.ChecklistSubmissionsPath, logger),
	)

	handler := httpapi.NewHandler(scheduleSvc, prioritySvc, checklistSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		StaticDir:          cfg.StaticDir,
	})

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		catalog:      catalogStore,
		catalogWatch: cfg.CatalogWatch,
		logger:       logger,
	}, nil
}

// RunBackground starts the catalog watcher when enabled. It returns once ctx
// is done and the watcher has stopped.
func (a *App) RunBackground(ctx context.Context) {
	if !a.catalogWatch {
		<-ctx.Done()
		return
	}
	if err := a.catalog.Watch(ctx); err != nil {
		a.logger.Error("catalog watcher stopped", "error", err)
	}
}
