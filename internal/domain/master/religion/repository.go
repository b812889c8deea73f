package religion

import "context"

type ReligionRepository interface {
	Create(ctx context.Context, r Religion) (Religion, error)
	GetByID(ctx context.Context, id string) (Religion, error)
	List(ctx context.Context, includeInactive bool) ([]Religion, error)
	Update(ctx context.Context, req UpdateReligionRequest) error
	SoftDelete(ctx context.Context, id string) error
}
