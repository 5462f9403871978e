package checklist

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
)

// Type is the shift a checklist belongs to.
type Type string

const (
	TypeOpening Type = "opening"
	TypeClosing Type = "closing"
)

const MinSignatureLength = 2

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func ParseType(v string) (Type, error) {
	switch Type(strings.TrimSpace(v)) {
	case TypeOpening:
		return TypeOpening, nil
	case TypeClosing:
		return TypeClosing, nil
	default:
		return "", fmt.Errorf("invalid checklist type %q", v)
	}
}

// ValidDate reports whether v has the YYYY-MM-DD shape.
func ValidDate(v string) bool {
	return datePattern.MatchString(v)
}

// Template holds the item texts for each checklist type.
type Template struct {
	Opening []string
	Closing []string
}

func (t Template) Items(kind Type) []string {
	switch kind {
	case TypeOpening:
		return slices.Clone(t.Opening)
	case TypeClosing:
		return slices.Clone(t.Closing)
	default:
		return nil
	}
}

// Submission is one signed checklist for a (date, type) pair.
type Submission struct {
	ID        int64
	Date      string
	Type      Type
	Checked   []bool
	Signature string
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is a template text zipped with its checked state.
type Item struct {
	Text    string
	Checked bool
}

// Items zips template texts with the submission's checks. Missing checks read as false.
func (s Submission) Items(texts []string) []Item {
	out := make([]Item, 0, len(texts))
	for i, text := range texts {
		out = append(out, Item{Text: text, Checked: i < len(s.Checked) && s.Checked[i]})
	}
	return out
}

func (s Submission) lastTouched() time.Time {
	if !s.UpdatedAt.IsZero() {
		return s.UpdatedAt
	}
	return s.CreatedAt
}

// NextID returns one more than the largest id in list.
func NextID(list []Submission) int64 {
	var maxID int64
	for _, s := range list {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	return maxID + 1
}

// SortHistory orders newest date first, then most recently touched first.
func SortHistory(list []Submission) {
	slices.SortStableFunc(list, func(a, b Submission) int {
		if a.Date != b.Date {
			return strings.Compare(b.Date, a.Date)
		}
		return b.lastTouched().Compare(a.lastTouched())
	})
}
