package league

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// SeasonType decides how the upstream source numbers a league's seasons.
type SeasonType string

const (
	// SeasonSingle seasons are one calendar year, e.g. "2026".
	SeasonSingle SeasonType = "single"
	// SeasonRange seasons run July to June, e.g. "2025-2026".
	SeasonRange SeasonType = "range"
)

// rangeStartMonth is the first month of a July-to-June competition year.
const rangeStartMonth = time.July

var rangeSeasonPattern = regexp.MustCompile(`^(\d{4})-(\d{4})$`)

// League is one competition whose schedule is aggregated.
type League struct {
	ID         string
	Name       string
	SeasonType SeasonType
}

func ParseSeasonType(v string) (SeasonType, error) {
	switch SeasonType(strings.ToLower(strings.TrimSpace(v))) {
	case SeasonSingle:
		return SeasonSingle, nil
	case SeasonRange:
		return SeasonRange, nil
	default:
		return "", fmt.Errorf("invalid season type %q: valid values are %s, %s", v, SeasonSingle, SeasonRange)
	}
}

func (l League) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("league id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if _, err := ParseSeasonType(string(l.SeasonType)); err != nil {
		return fmt.Errorf("league %s: %w", l.ID, err)
	}
	return nil
}

// CurrentSeason returns the season identifier in effect at now.
func (l League) CurrentSeason(now time.Time) string {
	year := now.Year()
	if l.SeasonType != SeasonRange {
		return strconv.Itoa(year)
	}

	start := year
	if now.Month() < rangeStartMonth {
		start = year - 1
	}
	return fmt.Sprintf("%d-%d", start, start+1)
}

// PreviousSeason steps a season identifier back one cycle. Identifiers that do
// not have the expected shape are returned unchanged.
func (l League) PreviousSeason(season string) string {
	if l.SeasonType != SeasonRange {
		year, err := strconv.Atoi(strings.TrimSpace(season))
		if err != nil {
			return season
		}
		return strconv.Itoa(year - 1)
	}

	m := rangeSeasonPattern.FindStringSubmatch(strings.TrimSpace(season))
	if m == nil {
		return season
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%04d-%04d", first-1, second-1)
}
