package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/matchday-schedule/internal/domain/checklist"
)

const (
	defaultHistoryDays = 14
	maxHistoryDays     = 90
	// historyRowsPerDay allows a few submissions per day in the history view.
	historyRowsPerDay = 4
)

type SubmitChecklistInput struct {
	Date      string
	Type      string
	Checked   []bool
	Signature string
	Note      string
}

type SubmitChecklistResult struct {
	ID      int64
	Created bool
}

type ChecklistDetail struct {
	Submission checklist.Submission
	Items      []checklist.Item
}

type ChecklistService struct {
	templates   checklist.TemplateRepository
	submissions checklist.Repository
	now         func() time.Time
}

func NewChecklistService(templates checklist.TemplateRepository, submissions checklist.Repository) *ChecklistService {
	return &ChecklistService{
		templates:   templates,
		submissions: submissions,
		now:         time.Now,
	}
}

func (s *ChecklistService) Template(ctx context.Context, rawType string) (checklist.Type, []string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChecklistService.Template")
	defer span.End()

	kind, err := checklist.ParseType(rawType)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	template, err := s.templates.Template(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("load checklist template: %w", err)
	}
	return kind, template.Items(kind), nil
}

// Current returns the submission for (date, type) and whether it exists.
func (s *ChecklistService) Current(ctx context.Context, date, rawType string) (checklist.Submission, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChecklistService.Current")
	defer span.End()

	date = strings.TrimSpace(date)
	if !checklist.ValidDate(date) {
		return checklist.Submission{}, false, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	kind, err := checklist.ParseType(rawType)
	if err != nil {
		return checklist.Submission{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item, found, err := s.submissions.FindByDateType(ctx, date, kind)
	if err != nil {
		return checklist.Submission{}, false, fmt.Errorf("find checklist submission: %w", err)
	}
	return item, found, nil
}

// Submit creates or replaces the submission for (date, type).
func (s *ChecklistService) Submit(ctx context.Context, input SubmitChecklistInput) (SubmitChecklistResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChecklistService.Submit")
	defer span.End()

	date := strings.TrimSpace(input.Date)
	if !checklist.ValidDate(date) {
		return SubmitChecklistResult{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	kind, err := checklist.ParseType(input.Type)
	if err != nil {
		return SubmitChecklistResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	signature := strings.TrimSpace(input.Signature)
	if len([]rune(signature)) < checklist.MinSignatureLength {
		return SubmitChecklistResult{}, fmt.Errorf("%w: signature must be at least %d characters", ErrInvalidInput, checklist.MinSignatureLength)
	}

	template, err := s.templates.Template(ctx)
	if err != nil {
		return SubmitChecklistResult{}, fmt.Errorf("load checklist template: %w", err)
	}
	if items := template.Items(kind); len(input.Checked) != len(items) {
		return SubmitChecklistResult{}, fmt.Errorf("%w: checked has %d entries, template has %d", ErrInvalidInput, len(input.Checked), len(items))
	}

	var note *string
	if trimmed := strings.TrimSpace(input.Note); trimmed != "" {
		note = &trimmed
	}

	now := s.now().UTC()
	saved, created, err := s.submissions.Upsert(ctx, checklist.Submission{
		Date:      date,
		Type:      kind,
		Checked:   append([]bool(nil), input.Checked...),
		Signature: signature,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return SubmitChecklistResult{}, fmt.Errorf("%w: save checklist submission: %w", ErrPersistence, err)
	}

	return SubmitChecklistResult{ID: saved.ID, Created: created}, nil
}

// History lists recent submissions, newest first. days defaults to 14 and is capped at 90.
func (s *ChecklistService) History(ctx context.Context, days int) ([]checklist.Submission, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChecklistService.History")
	defer span.End()

	if days <= 0 {
		days = defaultHistoryDays
	}
	days = min(days, maxHistoryDays)

	list, err := s.submissions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list checklist submissions: %w", err)
	}
	checklist.SortHistory(list)

	return list[:min(len(list), days*historyRowsPerDay)], nil
}

func (s *ChecklistService) Detail(ctx context.Context, id int64) (ChecklistDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChecklistService.Detail")
	defer span.End()

	if id <= 0 {
		return ChecklistDetail{}, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	item, found, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return ChecklistDetail{}, fmt.Errorf("get checklist submission: %w", err)
	}
	if !found {
		return ChecklistDetail{}, fmt.Errorf("%w: checklist submission=%d", ErrNotFound, id)
	}

	template, err := s.templates.Template(ctx)
	if err != nil {
		return ChecklistDetail{}, fmt.Errorf("load checklist template: %w", err)
	}

	return ChecklistDetail{
		Submission: item,
		Items:      item.Items(template.Items(item.Type)),
	}, nil
}
