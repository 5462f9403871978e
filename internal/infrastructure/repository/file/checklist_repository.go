package file

import (
	"context"
	"slices"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/matchday-schedule/internal/domain/checklist"
	"github.com/riskibarqy/matchday-schedule/internal/platform/logging"
)

// ChecklistTemplateRepository reads the template file on every call so edits
// apply without a restart.
type ChecklistTemplateRepository struct {
	path   string
	logger *logging.Logger
}

var _ checklist.TemplateRepository = (*ChecklistTemplateRepository)(nil)

func NewChecklistTemplateRepository(path string, logger *logging.Logger) *ChecklistTemplateRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChecklistTemplateRepository{path: path, logger: logger.Named("checklist_template")}
}

// Template never fails: a missing or corrupt file yields empty item lists.
func (r *ChecklistTemplateRepository) Template(ctx context.Context) (checklist.Template, error) {
	raw, ok, err := readFileIfExists(r.path)
	if err != nil {
		r.logger.WarnContext(ctx, "checklist template unreadable", "path", r.path, "error", err)
		return checklist.Template{Opening: []string{}, Closing: []string{}}, nil
	}
	if !ok {
		return checklist.Template{Opening: []string{}, Closing: []string{}}, nil
	}

	var model checklistTemplateFileModel
	if err := sonic.Unmarshal(raw, &model); err != nil {
		r.logger.WarnContext(ctx, "checklist template corrupt", "path", r.path, "error", err)
		return checklist.Template{Opening: []string{}, Closing: []string{}}, nil
	}
	if model.Opening == nil {
		model.Opening = []string{}
	}
	if model.Closing == nil {
		model.Closing = []string{}
	}
	return checklist.Template{Opening: model.Opening, Closing: model.Closing}, nil
}

// ChecklistRepository stores submissions as one JSON array that is rewritten
// atomically on every upsert.
type ChecklistRepository struct {
	path   string
	logger *logging.Logger
	write  writeFunc

	mu sync.Mutex
}

var _ checklist.Repository = (*ChecklistRepository)(nil)

func NewChecklistRepository(path string, logger *logging.Logger) *ChecklistRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChecklistRepository{
		path:   path,
		logger: logger.Named("checklist_repository"),
		write:  writeFileAtomic,
	}
}

func (r *ChecklistRepository) List(ctx context.Context) ([]checklist.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked(ctx), nil
}

func (r *ChecklistRepository) GetByID(ctx context.Context, id int64) (checklist.Submission, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.loadLocked(ctx) {
		if item.ID == id {
			return item, true, nil
		}
	}
	return checklist.Submission{}, false, nil
}

func (r *ChecklistRepository) FindByDateType(ctx context.Context, date string, kind checklist.Type) (checklist.Submission, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.loadLocked(ctx)
	if idx := indexByDateType(list, date, kind); idx >= 0 {
		return list[idx], true, nil
	}
	return checklist.Submission{}, false, nil
}

// Upsert replaces the checks, signature and note of an existing (date, type)
// row and keeps its id and creation time. New rows get the next id.
func (r *ChecklistRepository) Upsert(ctx context.Context, submission checklist.Submission) (checklist.Submission, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.loadLocked(ctx)
	created := false

	idx := indexByDateType(list, submission.Date, submission.Type)
	if idx >= 0 {
		existing := list[idx]
		existing.Checked = slices.Clone(submission.Checked)
		existing.Signature = submission.Signature
		existing.Note = submission.Note
		existing.UpdatedAt = submission.UpdatedAt
		list[idx] = existing
		submission = existing
	} else {
		submission.ID = checklist.NextID(list)
		if submission.CreatedAt.IsZero() {
			submission.CreatedAt = submission.UpdatedAt
		}
		list = append(list, submission)
		created = true
	}

	models := make([]submissionFileModel, 0, len(list))
	for _, item := range list {
		models = append(models, submissionModelFromDomain(item))
	}
	payload, err := encodeJSON(models)
	if err != nil {
		return checklist.Submission{}, false, err
	}
	if err := r.write(r.path, payload); err != nil {
		r.logger.ErrorContext(ctx, "persist checklist submissions failed", "path", r.path, "error", err)
		return checklist.Submission{}, false, crerr.Wrap(err, "persist checklist submissions")
	}

	return submission, created, nil
}

// loadLocked reads the submission file. A missing or corrupt file reads as empty.
func (r *ChecklistRepository) loadLocked(ctx context.Context) []checklist.Submission {
	raw, ok, err := readFileIfExists(r.path)
	if err != nil {
		r.logger.WarnContext(ctx, "checklist submissions unreadable", "path", r.path, "error", err)
		return []checklist.Submission{}
	}
	if !ok {
		return []checklist.Submission{}
	}

	var models []submissionFileModel
	if err := sonic.Unmarshal(raw, &models); err != nil {
		r.logger.WarnContext(ctx, "checklist submissions corrupt", "path", r.path, "error", err)
		return []checklist.Submission{}
	}

	out := make([]checklist.Submission, 0, len(models))
	for _, model := range models {
		out = append(out, model.toDomain())
	}
	return out
}

func indexByDateType(list []checklist.Submission, date string, kind checklist.Type) int {
	return slices.IndexFunc(list, func(s checklist.Submission) bool {
		return s.Date == date && s.Type == kind
	})
}
