package file

import (
	"context"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/matchday-schedule/internal/domain/priority"
	"github.com/riskibarqy/matchday-schedule/internal/platform/logging"
)

// PriorityStore keeps the priority overlay in memory and mirrors it to a JSON
// file. A toggle holds the write lock across read, modify and persist, and the
// in-memory state only changes after the file was replaced.
type PriorityStore struct {
	path   string
	logger *logging.Logger
	write  writeFunc

	mu    sync.RWMutex
	state priority.State
}

var _ priority.Store = (*PriorityStore)(nil)

// NewPriorityStore loads path. A missing or unreadable document starts empty.
func NewPriorityStore(path string, logger *logging.Logger) *PriorityStore {
	if logger == nil {
		logger = logging.Default()
	}
	store := &PriorityStore{
		path:   path,
		logger: logger.Named("priority_store"),
		write:  writeFileAtomic,
		state:  priority.NewState(),
	}
	store.state = store.load()
	return store
}

func (s *PriorityStore) load() priority.State {
	raw, ok, err := readFileIfExists(s.path)
	if err != nil {
		s.logger.Warn("priority file unreadable, starting empty", "path", s.path, "error", err)
		return priority.NewState()
	}
	if !ok {
		return priority.NewState()
	}

	var model priorityFileModel
	if err := sonic.Unmarshal(raw, &model); err != nil {
		s.logger.Warn("priority file corrupt, starting empty", "path", s.path, "error", err)
		return priority.NewState()
	}
	return model.toDomain()
}

func (s *PriorityStore) IsPriority(eventID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsPriority(eventID)
}

func (s *PriorityStore) TagsFor(eventID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TagsFor(eventID)
}

func (s *PriorityStore) State(_ context.Context) (priority.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone(), nil
}

func (s *PriorityStore) TogglePriority(ctx context.Context, eventID string) ([]string, error) {
	var out []string
	err := s.mutate(ctx, func(next *priority.State) {
		out = next.TogglePriority(eventID)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PriorityStore) ToggleTag(ctx context.Context, eventID, tag string) ([]string, error) {
	var out []string
	err := s.mutate(ctx, func(next *priority.State) {
		out = next.ToggleTag(eventID, tag)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PriorityStore) mutate(ctx context.Context, apply func(next *priority.State)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	apply(&next)

	payload, err := encodeJSON(priorityModelFromDomain(next))
	if err != nil {
		return err
	}
	if err := s.write(s.path, payload); err != nil {
		s.logger.ErrorContext(ctx, "persist priority state failed", "path", s.path, "error", err)
		return crerr.Wrap(err, "persist priority state")
	}

	s.state = next
	return nil
}
