package priority

import "context"

// Reader is the read side consulted during aggregation.
type Reader interface {
	IsPriority(eventID string) bool
	TagsFor(eventID string) []string
}

// Store persists the priority overlay. Toggles must be durable before they return
// and are serialized with respect to each other.
type Store interface {
	Reader
	State(ctx context.Context) (State, error)
	TogglePriority(ctx context.Context, eventID string) ([]string, error)
	ToggleTag(ctx context.Context, eventID, tag string) ([]string, error)
}
