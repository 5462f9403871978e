package catalog

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/riskibarqy/matchday-schedule/internal/domain/channel"
	"github.com/riskibarqy/matchday-schedule/internal/domain/league"
)

type fileModel struct {
	Leagues  []leagueModel  `yaml:"leagues"`
	Channels []channelModel `yaml:"channels"`
}

type leagueModel struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	SeasonType string `yaml:"season_type"`
}

type channelModel struct {
	Pattern string `yaml:"pattern"`
	Channel string `yaml:"channel"`
}

// parseFile decodes a catalog document. Omitted sections keep the built-in
// defaults; a present but invalid section rejects the whole document.
func parseFile(data []byte) (snapshot, error) {
	var model fileModel
	if err := yaml.Unmarshal(data, &model); err != nil {
		return snapshot{}, fmt.Errorf("decode catalog yaml: %w", err)
	}

	out := snapshot{leagues: SeedLeagues(), rules: SeedChannelRules()}

	if model.Leagues != nil {
		leagues := make([]league.League, 0, len(model.Leagues))
		seen := make(map[string]struct{}, len(model.Leagues))
		for i, item := range model.Leagues {
			seasonType, err := league.ParseSeasonType(item.SeasonType)
			if err != nil {
				return snapshot{}, fmt.Errorf("leagues[%d]: %w", i, err)
			}
			l := league.League{
				ID:         strings.TrimSpace(item.ID),
				Name:       strings.TrimSpace(item.Name),
				SeasonType: seasonType,
			}
			if err := l.Validate(); err != nil {
				return snapshot{}, fmt.Errorf("leagues[%d]: %w", i, err)
			}
			if _, dup := seen[l.ID]; dup {
				return snapshot{}, fmt.Errorf("leagues[%d]: duplicate league id %s", i, l.ID)
			}
			seen[l.ID] = struct{}{}
			leagues = append(leagues, l)
		}
		out.leagues = leagues
	}

	if model.Channels != nil {
		rules := make([]channel.Rule, 0, len(model.Channels))
		for i, item := range model.Channels {
			rule, err := channel.NewRule(item.Pattern, item.Channel)
			if err != nil {
				return snapshot{}, fmt.Errorf("channels[%d]: %w", i, err)
			}
			rules = append(rules, rule)
		}
		out.rules = rules
	}

	return out, nil
}
