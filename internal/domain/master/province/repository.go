package province

import "context"

type ProvinceRepository interface {
	Create(ctx context.Context, p Province) (Province, error)
	GetByID(ctx context.Context, id string) (Province, error)
	List(ctx context.Context, includeInactive bool) ([]Province, error)
	Update(ctx context.Context, req UpdateProvinceRequest) error
	SoftDelete(ctx context.Context, id string) error
}
