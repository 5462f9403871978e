package catalog

import (
	"github.com/riskibarqy/matchday-schedule/internal/domain/channel"
	"github.com/riskibarqy/matchday-schedule/internal/domain/league"
)

const (
	LeagueIDAllsvenskan       = "4347"
	LeagueIDPremierLeague     = "4328"
	LeagueIDChampionsLeague   = "4480"
	LeagueIDEFLCup            = "4570"
	LeagueIDFotbollsVM        = "4429"
	LeagueIDSHL               = "4419"
	LeagueIDHockeyallsvenskan = "5162"
	LeagueIDF1                = "4370"
	LeagueIDIndyCar           = "4373"
	LeagueIDDart              = "4554"
)

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDAllsvenskan, Name: "Allsvenskan", SeasonType: league.SeasonSingle},
		{ID: LeagueIDPremierLeague, Name: "Premier League", SeasonType: league.SeasonRange},
		{ID: LeagueIDChampionsLeague, Name: "Champions League", SeasonType: league.SeasonRange},
		{ID: LeagueIDEFLCup, Name: "EFL Cup", SeasonType: league.SeasonRange},
		{ID: LeagueIDFotbollsVM, Name: "Fotbolls-VM", SeasonType: league.SeasonRange},
		{ID: LeagueIDSHL, Name: "SHL", SeasonType: league.SeasonRange},
		{ID: LeagueIDHockeyallsvenskan, Name: "Hockeyallsvenskan", SeasonType: league.SeasonRange},
		{ID: LeagueIDF1, Name: "F1", SeasonType: league.SeasonSingle},
		{ID: LeagueIDIndyCar, Name: "IndyCar", SeasonType: league.SeasonSingle},
		{ID: LeagueIDDart, Name: "Dart", SeasonType: league.SeasonSingle},
	}
}

func SeedChannelRules() []channel.Rule {
	return channel.DefaultRules()
}
