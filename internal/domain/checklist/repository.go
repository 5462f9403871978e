package checklist

import "context"

type TemplateRepository interface {
	Template(ctx context.Context) (Template, error)
}

// Repository stores submissions. Upsert matches on (date, type), assigns ids to
// new rows and reports whether a row was created.
type Repository interface {
	List(ctx context.Context) ([]Submission, error)
	GetByID(ctx context.Context, id int64) (Submission, bool, error)
	FindByDateType(ctx context.Context, date string, kind Type) (Submission, bool, error)
	Upsert(ctx context.Context, submission Submission) (Submission, bool, error)
}
