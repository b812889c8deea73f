package barangay

import "context"

type BarangayRepository interface {
	Create(ctx context.Context, b Barangay) (Barangay, error)
	GetByID(ctx context.Context, id string) (Barangay, error)
	ListByProvince(ctx context.Context, provinceID string, includeInactive bool) ([]Barangay, error)
	Update(ctx context.Context, req UpdateBarangayRequest) error
	SoftDelete(ctx context.Context, id string) error
}
