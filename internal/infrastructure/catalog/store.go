package catalog

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/riskibarqy/matchday-schedule/internal/domain/channel"
	"github.com/riskibarqy/matchday-schedule/internal/domain/league"
	"github.com/riskibarqy/matchday-schedule/internal/platform/logging"
)

const (
	reloadDebounce     = 250 * time.Millisecond
	restartBackoffBase = 250 * time.Millisecond
	restartBackoffMax  = 5 * time.Second
)

type snapshot struct {
	leagues []league.League
	rules   []channel.Rule
}

// Store serves the league list and channel rules. Readers always see one whole
// snapshot; reloads swap it atomically.
type Store struct {
	path    string
	logger  *logging.Logger
	current atomic.Pointer[snapshot]
}

var (
	_ league.Repository      = (*Store)(nil)
	_ channel.RuleRepository = (*Store)(nil)
)

// NewStore builds a catalog from path, or from the built-in defaults when path
// is empty. A configured file that cannot be loaded is an error at startup.
func NewStore(path string, logger *logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Store{
		path:   strings.TrimSpace(path),
		logger: logger.Named("catalog"),
	}
	s.current.Store(&snapshot{leagues: SeedLeagues(), rules: SeedChannelRules()})

	if s.path == "" {
		return s, nil
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) List(_ context.Context) ([]league.League, error) {
	return slices.Clone(s.current.Load().leagues), nil
}

func (s *Store) Rules(_ context.Context) ([]channel.Rule, error) {
	return slices.Clone(s.current.Load().rules), nil
}

// Reload parses the catalog file and swaps it in. On error the previous
// snapshot stays active.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", s.path, err)
	}
	next, err := parseFile(data)
	if err != nil {
		return fmt.Errorf("load catalog %s: %w", s.path, err)
	}
	s.current.Store(&next)
	s.logger.Info("catalog loaded", "path", s.path, "leagues", len(next.leagues), "channel_rules", len(next.rules))
	return nil
}

// Watch reloads the catalog when its file changes, until ctx is done. Bursts
// of events are debounced and a broken watcher is recreated with backoff.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}
	dir := filepath.Dir(s.path)
	file := filepath.Base(s.path)

	var (
		timerMu sync.Mutex
		timer   *time.Timer
	)
	debounce := func() {
		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(reloadDebounce, func() {
			if ctx.Err() != nil {
				return
			}
			if err := s.Reload(); err != nil {
				s.logger.Warn("catalog reload rejected, keeping previous snapshot", "path", s.path, "error", err)
			}
		})
	}
	defer func() {
		timerMu.Lock()
		if timer != nil {
			timer.Stop()
		}
		timerMu.Unlock()
	}()

	backoff := restartBackoffBase
	wait := func() bool {
		delay := backoff + rand.N(backoff/2+1)
		backoff = min(backoff*2, restartBackoffMax)
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
			return true
		}
	}

	for ctx.Err() == nil {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			s.logger.Warn("catalog watch init failed", "dir", dir, "error", err)
			if !wait() {
				return nil
			}
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			s.logger.Warn("catalog watch add failed", "dir", dir, "error", err)
			if !wait() {
				return nil
			}
			continue
		}

		backoff = restartBackoffBase
		s.logger.Debug("catalog watcher started", "dir", dir, "file", file)

		broken := false
		for !broken {
			select {
			case <-ctx.Done():
				_ = w.Close()
				return nil
			case ev, ok := <-w.Events:
				if !ok {
					broken = true
					break
				}
				if strings.EqualFold(filepath.Base(ev.Name), file) &&
					ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					debounce()
				}
			case err, ok := <-w.Errors:
				if !ok {
					broken = true
					break
				}
				if err == fsnotify.ErrEventOverflow {
					s.logger.Warn("catalog watch overflow, forcing reload", "dir", dir)
					debounce()
					continue
				}
				s.logger.Warn("catalog watch error", "dir", dir, "error", err)
			}
		}

		_ = w.Close()
		s.logger.Warn("catalog watcher stopped, restarting", "dir", dir)
		if !wait() {
			return nil
		}
	}
	return nil
}
