package civilstatus

import "context"

type CivilStatusRepository interface {
	Create(ctx context.Context, c CivilStatus) (CivilStatus, error)
	GetByID(ctx context.Context, id string) (CivilStatus, error)
	List(ctx context.Context, includeInactive bool) ([]CivilStatus, error)
	Update(ctx context.Context, req UpdateCivilStatusRequest) error
	SoftDelete(ctx context.Context, id string) error
}
