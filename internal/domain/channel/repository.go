package channel

import "context"

// RuleRepository exposes the ordered channel rules currently in effect.
type RuleRepository interface {
	Rules(ctx context.Context) ([]Rule, error)
}
