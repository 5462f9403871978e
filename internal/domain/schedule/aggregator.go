package schedule

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/matchday-schedule/internal/domain/channel"
	"github.com/riskibarqy/matchday-schedule/internal/domain/priority"
)

const (
	DefaultMatchDuration = 120 * time.Minute
	unknownKickoffHour   = 12
)

// Aggregator turns per-league fetch results into sorted day buckets.
type Aggregator struct {
	OffsetMinutes int
	MatchDuration time.Duration
	Channels      *channel.Resolver
	Priorities    priority.Reader
}

// Zone is the fixed-offset zone that corrected times are expressed in.
func (a Aggregator) Zone() *time.Location {
	return FixedZone(a.OffsetMinutes)
}

func FixedZone(offsetMinutes int) *time.Location {
	return time.FixedZone("", offsetMinutes*60)
}

// Aggregate drops events without a usable date or whose corrected end is before
// now, overlays channel and priority data, and returns days sorted by date.
func (a Aggregator) Aggregate(now time.Time, results []LeagueEvents) []Day {
	duration := a.MatchDuration
	if duration <= 0 {
		duration = DefaultMatchDuration
	}
	zone := a.Zone()

	buckets := make(map[string][]Match)
	for _, result := range results {
		for _, ev := range result.Events {
			date, clock, err := NormalizeKickoff(ev.Date, ev.Time, a.OffsetMinutes)
			if err != nil {
				continue
			}

			start, ok := kickoffInstant(date, clock, zone)
			if !ok || start.Add(duration).Before(now) {
				continue
			}

			buckets[date] = append(buckets[date], a.buildMatch(result, ev, date, clock))
		}
	}

	days := make([]Day, 0, len(buckets))
	for date, matches := range buckets {
		SortMatches(matches)
		days = append(days, Day{Date: date, Matches: matches})
	}
	slices.SortFunc(days, func(x, y Day) int {
		return strings.Compare(x.Date, y.Date)
	})
	return days
}

func (a Aggregator) buildMatch(result LeagueEvents, ev RawEvent, date, clock string) Match {
	competition := result.League.Name
	m := Match{
		ID:          ev.ID,
		Date:        date,
		Time:        clock,
		Competition: competition,
		Home:        ev.Home,
		Away:        ev.Away,
		Channel:     a.Channels.Resolve(competition, ev.Home+ev.Away),
		Tags:        []string{},
	}
	if a.Priorities != nil && ev.ID != "" {
		m.Priority = a.Priorities.IsPriority(ev.ID)
		if tags := a.Priorities.TagsFor(ev.ID); len(tags) > 0 {
			m.Tags = tags
		}
	}
	return m
}

func kickoffInstant(date, clock string, zone *time.Location) (time.Time, bool) {
	day, err := time.ParseInLocation(time.DateOnly, date, zone)
	if err != nil {
		return time.Time{}, false
	}
	if clock == "" {
		return day.Add(unknownKickoffHour * time.Hour), true
	}
	minutes, ok := parseClock(clock)
	if !ok {
		return time.Time{}, false
	}
	return day.Add(time.Duration(minutes) * time.Minute), true
}

// SortMatches orders by time ascending with unknown times last. Ties keep their
// incoming order.
func SortMatches(matches []Match) {
	slices.SortStableFunc(matches, func(x, y Match) int {
		switch {
		case x.TimeKnown() && !y.TimeKnown():
			return -1
		case !x.TimeKnown() && y.TimeKnown():
			return 1
		default:
			return cmp.Compare(x.Time, y.Time)
		}
	})
}
