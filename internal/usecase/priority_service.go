package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/matchday-schedule/internal/domain/priority"
)

const maxTagLength = 64

type PriorityToggleResult struct {
	ID       string
	Priority bool
	EventIDs []string
}

type TagToggleResult struct {
	ID   string
	Tags []string
}

type PriorityService struct {
	store priority.Store
}

func NewPriorityService(store priority.Store) *PriorityService {
	return &PriorityService{store: store}
}

func (s *PriorityService) State(ctx context.Context) (priority.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PriorityService.State")
	defer span.End()

	state, err := s.store.State(ctx)
	if err != nil {
		return priority.State{}, fmt.Errorf("load priority state: %w", err)
	}
	return state, nil
}

func (s *PriorityService) TogglePriority(ctx context.Context, eventID string) (PriorityToggleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PriorityService.TogglePriority")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return PriorityToggleResult{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	ids, err := s.store.TogglePriority(ctx, eventID)
	if err != nil {
		return PriorityToggleResult{}, storeError(err, "toggle priority", eventID)
	}

	return PriorityToggleResult{
		ID:       eventID,
		Priority: slices.Contains(ids, eventID),
		EventIDs: ids,
	}, nil
}

func (s *PriorityService) ToggleTag(ctx context.Context, eventID, tag string) (TagToggleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PriorityService.ToggleTag")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	tag = strings.TrimSpace(tag)
	if eventID == "" {
		return TagToggleResult{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if tag == "" {
		return TagToggleResult{}, fmt.Errorf("%w: tag is required", ErrInvalidInput)
	}
	if len(tag) > maxTagLength {
		return TagToggleResult{}, fmt.Errorf("%w: tag exceeds %d characters", ErrInvalidInput, maxTagLength)
	}

	tags, err := s.store.ToggleTag(ctx, eventID, tag)
	if err != nil {
		return TagToggleResult{}, storeError(err, "toggle tag", eventID)
	}

	return TagToggleResult{ID: eventID, Tags: tags}, nil
}

// storeError classifies a store failure. Context errors pass through without
// ErrPersistence so a cancelled request is not reported as a storage fault.
func storeError(err error, op, eventID string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s for event=%s: %w", op, eventID, err)
	}
	return fmt.Errorf("%w: %s for event=%s: %w", ErrPersistence, op, eventID, err)
}
