package channel

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule maps a case-insensitive pattern to a broadcast channel label.
type Rule struct {
	Pattern string
	Channel string

	re *regexp.Regexp
}

func NewRule(pattern, channel string) (Rule, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return Rule{}, fmt.Errorf("channel rule pattern is required")
	}
	if strings.TrimSpace(channel) == "" {
		return Rule{}, fmt.Errorf("channel rule %q: channel label is required", pattern)
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("channel rule %q: %w", pattern, err)
	}
	return Rule{Pattern: pattern, Channel: channel, re: re}, nil
}

func MustRule(pattern, channel string) Rule {
	rule, err := NewRule(pattern, channel)
	if err != nil {
		panic(err)
	}
	return rule
}

func (r Rule) Matches(text string) bool {
	if r.re == nil {
		return false
	}
	return r.re.MatchString(text)
}

// Resolver evaluates rules top to bottom; the first match wins. Rules are never
// reordered, so overlapping patterns are disambiguated by declaration order.
type Resolver struct {
	rules []Rule
}

func NewResolver(rules []Rule) *Resolver {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return &Resolver{rules: out}
}

// Resolve returns the channel for a competition plus free text, or "" when nothing matches.
func (r *Resolver) Resolve(competition, text string) string {
	if r == nil {
		return ""
	}

	combined := strings.ToLower(competition + " " + text)
	for _, rule := range r.rules {
		if rule.Matches(combined) {
			return rule.Channel
		}
	}
	return ""
}

func (r *Resolver) Rules() []Rule {
	if r == nil {
		return nil
	}
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}
