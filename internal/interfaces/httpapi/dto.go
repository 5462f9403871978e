package httpapi

import (
	"github.com/riskibarqy/matchday-schedule/internal/domain/checklist"
	"github.com/riskibarqy/matchday-schedule/internal/domain/priority"
	"github.com/riskibarqy/matchday-schedule/internal/domain/schedule"
	"github.com/riskibarqy/matchday-schedule/internal/usecase"
)

// timestampLayout renders UTC instants with millisecond precision, e.g. 2026-03-01T08:00:00.123Z.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type togglePriorityRequest struct {
	ID string `json:"id" validate:"required"`
}

type toggleTagRequest struct {
	ID  string `json:"id" validate:"required"`
	Tag string `json:"tag" validate:"required,max=64"`
}

type submitChecklistRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Type      string `json:"type" validate:"required,oneof=opening closing"`
	Checked   []bool `json:"checked" validate:"required"`
	Signature string `json:"signature" validate:"required,min=2,max=120"`
	Note      string `json:"note" validate:"max=2000"`
}

type checklistQuery struct {
	Date string `validate:"required,datetime=2006-01-02"`
	Type string `validate:"required,oneof=opening closing"`
}

type scheduleDTO struct {
	GeneratedAt string   `json:"generatedAt"`
	Days        []dayDTO `json:"days"`
}

type dayDTO struct {
	Date    string     `json:"date"`
	Matches []matchDTO `json:"matches"`
}

type matchDTO struct {
	ID          string   `json:"id"`
	Time        string   `json:"time"`
	Competition string   `json:"competition"`
	Home        string   `json:"home"`
	Away        string   `json:"away"`
	Channel     string   `json:"channel"`
	Priority    bool     `json:"priority"`
	Tags        []string `json:"tags"`
}

type leagueDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SeasonType     string `json:"seasonType"`
	CurrentSeason  string `json:"currentSeason"`
	PreviousSeason string `json:"previousSeason"`
}

type priorityStateDTO struct {
	EventIDs []string            `json:"eventIds"`
	Tags     map[string][]string `json:"tags"`
}

type priorityToggleDTO struct {
	ID       string   `json:"id"`
	Priority bool     `json:"priority"`
	EventIDs []string `json:"eventIds"`
}

type tagToggleDTO struct {
	ID   string   `json:"id"`
	Tags []string `json:"tags"`
}

type checklistTemplateDTO struct {
	Type  string   `json:"type"`
	Items []string `json:"items"`
}

type checklistSubmitDTO struct {
	ID   int64  `json:"id"`
	Mode string `json:"mode"`
}

type checklistSubmissionDTO struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Checked   []bool  `json:"checked"`
	Signature string  `json:"signature"`
	Note      *string `json:"note"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type checklistItemDTO struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

type checklistDetailDTO struct {
	checklistSubmissionDTO
	Items []checklistItemDTO `json:"items"`
}

func scheduleToDTO(v schedule.Result) scheduleDTO {
	days := make([]dayDTO, 0, len(v.Days))
	for _, day := range v.Days {
		matches := make([]matchDTO, 0, len(day.Matches))
		for _, m := range day.Matches {
			tags := m.Tags
			if tags == nil {
				tags = []string{}
			}
			matches = append(matches, matchDTO{
				ID:          m.ID,
				Time:        m.Time,
				Competition: m.Competition,
				Home:        m.Home,
				Away:        m.Away,
				Channel:     m.Channel,
				Priority:    m.Priority,
				Tags:        tags,
			})
		}
		days = append(days, dayDTO{Date: day.Date, Matches: matches})
	}

	return scheduleDTO{
		GeneratedAt: v.GeneratedAt.UTC().Format(timestampLayout),
		Days:        days,
	}
}

func leagueSeasonToDTO(v usecase.LeagueSeason) leagueDTO {
	return leagueDTO{
		ID:             v.League.ID,
		Name:           v.League.Name,
		SeasonType:     string(v.League.SeasonType),
		CurrentSeason:  v.CurrentSeason,
		PreviousSeason: v.PreviousSeason,
	}
}

func priorityStateToDTO(v priority.State) priorityStateDTO {
	ids := v.EventIDs
	if ids == nil {
		ids = []string{}
	}
	tags := v.Tags
	if tags == nil {
		tags = map[string][]string{}
	}
	return priorityStateDTO{EventIDs: ids, Tags: tags}
}

func submitResultToDTO(v usecase.SubmitChecklistResult) checklistSubmitDTO {
	mode := "updated"
	if v.Created {
		mode = "created"
	}
	return checklistSubmitDTO{ID: v.ID, Mode: mode}
}

func submissionToDTO(v checklist.Submission) checklistSubmissionDTO {
	checked := v.Checked
	if checked == nil {
		checked = []bool{}
	}
	return checklistSubmissionDTO{
		ID:        v.ID,
		Date:      v.Date,
		Type:      string(v.Type),
		Checked:   checked,
		Signature: v.Signature,
		Note:      v.Note,
		CreatedAt: v.CreatedAt.UTC().Format(timestampLayout),
		UpdatedAt: v.UpdatedAt.UTC().Format(timestampLayout),
	}
}

func detailToDTO(v usecase.ChecklistDetail) checklistDetailDTO {
	items := make([]checklistItemDTO, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, checklistItemDTO{Text: item.Text, Checked: item.Checked})
	}
	return checklistDetailDTO{
		checklistSubmissionDTO: submissionToDTO(v.Submission),
		Items:                  items,
	}
}
