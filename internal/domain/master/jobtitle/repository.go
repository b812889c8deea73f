package jobtitle

import "context"

type JobTitleRepository interface {
	Create(ctx context.Context, j JobTitle) (JobTitle, error)
	GetByID(ctx context.Context, id string) (JobTitle, error)
	List(ctx context.Context, includeInactive bool) ([]JobTitle, error)
	Update(ctx context.Context, req UpdateJobTitleRequest) error
	SoftDelete(ctx context.Context, id string) error
}
