package file

import (
	"time"

	"github.com/riskibarqy/matchday-schedule/internal/domain/checklist"
)

type checklistTemplateFileModel struct {
	Opening []string `json:"opening"`
	Closing []string `json:"closing"`
}

type submissionFileModel struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Checked   []bool  `json:"checked"`
	Signature string  `json:"signature"`
	Note      *string `json:"note"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func (m submissionFileModel) toDomain() checklist.Submission {
	checked := m.Checked
	if checked == nil {
		checked = []bool{}
	}
	return checklist.Submission{
		ID:        m.ID,
		Date:      m.Date,
		Type:      checklist.Type(m.Type),
		Checked:   checked,
		Signature: m.Signature,
		Note:      m.Note,
		CreatedAt: parseTimestamp(m.CreatedAt),
		UpdatedAt: parseTimestamp(m.UpdatedAt),
	}
}

func submissionModelFromDomain(s checklist.Submission) submissionFileModel {
	return submissionFileModel{
		ID:        s.ID,
		Date:      s.Date,
		Type:      string(s.Type),
		Checked:   s.Checked,
		Signature: s.Signature,
		Note:      s.Note,
		CreatedAt: formatTimestamp(s.CreatedAt),
		UpdatedAt: formatTimestamp(s.UpdatedAt),
	}
}

func parseTimestamp(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
