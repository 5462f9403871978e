package schedule

import (
	"time"

	"github.com/riskibarqy/matchday-schedule/internal/domain/league"
)

// RawEvent is one upstream record. Every field except ID may be empty.
type RawEvent struct {
	ID   string
	Date string
	Time string
	Home string
	Away string
}

// LeagueEvents is the outcome of fetching one league. Err is set when the fetch
// failed, in which case Events is empty.
type LeagueEvents struct {
	League   league.League
	Season   string
	FellBack bool
	Events   []RawEvent
	Err      error
}

// Match is an event after time correction and overlay.
type Match struct {
	ID          string
	Date        string
	Time        string
	Competition string
	Home        string
	Away        string
	Channel     string
	Priority    bool
	Tags        []string
}

// TimeKnown reports whether the kickoff time-of-day is available.
func (m Match) TimeKnown() bool {
	return m.Time != ""
}

// Day buckets matches sharing one corrected calendar date.
type Day struct {
	Date    string
	Matches []Match
}

type Result struct {
	GeneratedAt time.Time
	Days        []Day
}
