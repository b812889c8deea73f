package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bayanihr/hr201-backend-go/internal/domain/master/barangay"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

type barangayRepositoryImpl struct {
	db *database.DB
}

func NewBarangayRepository(db *database.DB) barangay.BarangayRepository {
	return &barangayRepositoryImpl{db: db}
}

func (r *barangayRepositoryImpl) Create(ctx context.Context, b barangay.Barangay) (barangay.Barangay, error) {
	q := database.GetQuerier(ctx, r.db)

	b.ID = uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, `
		INSERT INTO barangays (id, province_id, name, city, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW(), NOW())
		RETURNING created_at, updated_at
	`, b.ID, b.ProvinceID, b.Name, b.City).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return barangay.Barangay{}, fmt.Errorf("failed to insert barangay: %w", err)
	}

	b.IsActive = true
	return b, nil
}

func (r *barangayRepositoryImpl) GetByID(ctx context.Context, id string) (barangay.Barangay, error) {
	q := database.GetQuerier(ctx, r.db)

	var b barangay.Barangay
	err := q.QueryRow(ctx, `
		SELECT id, province_id, name, city, is_active, created_at, updated_at
		FROM barangays WHERE id = $1
	`, id).Scan(&b.ID, &b.ProvinceID, &b.Name, &b.City, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return barangay.Barangay{}, barangay.ErrBarangayNotFound
		}
		return barangay.Barangay{}, err
	}
	return b, nil
}

func (r *barangayRepositoryImpl) ListByProvince(ctx context.Context, provinceID string, includeInactive bool) ([]barangay.Barangay, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, province_id, name, city, is_active, created_at, updated_at
		FROM barangays WHERE province_id = $1`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query, provinceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query barangays: %w", err)
	}
	defer rows.Close()

	var barangays []barangay.Barangay
	for rows.Next() {
		var b barangay.Barangay
		if err := rows.Scan(&b.ID, &b.ProvinceID, &b.Name, &b.City, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		barangays = append(barangays, b)
	}
	return barangays, rows.Err()
}

func (r *barangayRepositoryImpl) Update(ctx context.Context, req barangay.UpdateBarangayRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.ProvinceID != nil {
		updates = append(updates, fmt.Sprintf("province_id = $%d", argIdx))
		args = append(args, *req.ProvinceID)
		argIdx++
	}
	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.City != nil {
		updates = append(updates, fmt.Sprintf("city = $%d", argIdx))
		args = append(args, *req.City)
		argIdx++
	}
	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++
	args = append(args, req.ID)

	sql := "UPDATE barangays SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND is_active = TRUE", argIdx)

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update barangay %s: %w", req.ID, err)
	}
	if commandTag.RowsAffected() != 1 {
		return barangay.ErrBarangayNotFound
	}
	return nil
}

func (r *barangayRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE barangays SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return barangay.ErrBarangayNotFound
	}
	return nil
}
