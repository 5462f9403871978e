package file

import (
	"bytes"
	"fmt"
	"strconv"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/matchday-schedule/internal/domain/priority"
)

type priorityFileModel struct {
	EventIDs []idString          `json:"eventIds"`
	Tags     map[string][]string `json:"tags"`
}

// idString reads ids written either as strings or numbers by older files.
type idString string

func (s *idString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var value string
		if err := sonic.Unmarshal(data, &value); err != nil {
			return err
		}
		*s = idString(value)
		return nil
	}
	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return fmt.Errorf("unsupported id value %s", data)
	}
	*s = idString(data)
	return nil
}

func (m priorityFileModel) toDomain() priority.State {
	state := priority.State{
		EventIDs: make([]string, 0, len(m.EventIDs)),
		Tags:     make(map[string][]string, len(m.Tags)),
	}
	for _, id := range m.EventIDs {
		state.EventIDs = append(state.EventIDs, string(id))
	}
	for id, tags := range m.Tags {
		state.Tags[id] = tags
	}
	return state.Normalize()
}

func priorityModelFromDomain(state priority.State) priorityFileModel {
	out := priorityFileModel{
		EventIDs: make([]idString, 0, len(state.EventIDs)),
		Tags:     make(map[string][]string, len(state.Tags)),
	}
	for _, id := range state.EventIDs {
		out.EventIDs = append(out.EventIDs, idString(id))
	}
	for id, tags := range state.Tags {
		out.Tags[id] = tags
	}
	return out
}
