package thesportsdb

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/matchday-schedule/internal/domain/schedule"
)

// maxTimeLength keeps "HH:MM" from "HH:MM:SS" style upstream times.
const maxTimeLength = 5

type eventsEnvelope struct {
	Events []eventPayload `json:"events"`
}

type eventPayload struct {
	ID             flexibleID `json:"idEvent"`
	DateEvent      string     `json:"dateEvent"`
	DateEventLocal string     `json:"dateEventLocal"`
	StrTime        string     `json:"strTime"`
	StrTimeLocal   string     `json:"strTimeLocal"`
	StrHomeTeam    string     `json:"strHomeTeam"`
	StrAwayTeam    string     `json:"strAwayTeam"`
}

// flexibleID accepts an id sent either as a JSON string or a JSON number.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var value string
		if err := sonic.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("decode event id: %w", err)
		}
		*f = flexibleID(strings.TrimSpace(value))
		return nil
	}

	text := string(data)
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return fmt.Errorf("decode event id: unsupported value %s", abbreviateBody(data))
	}
	*f = flexibleID(text)
	return nil
}

func (p eventPayload) toRawEvent() schedule.RawEvent {
	return schedule.RawEvent{
		ID:   string(p.ID),
		Date: firstNonEmpty(p.DateEvent, p.DateEventLocal),
		Time: truncate(firstNonEmpty(p.StrTime, p.StrTimeLocal), maxTimeLength),
		Home: strings.TrimSpace(p.StrHomeTeam),
		Away: strings.TrimSpace(p.StrAwayTeam),
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func truncate(value string, n int) string {
	if len(value) <= n {
		return value
	}
	return value[:n]
}
