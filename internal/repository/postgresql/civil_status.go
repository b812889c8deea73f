package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bayanihr/hr201-backend-go/internal/domain/master/civilstatus"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

type civilStatusRepositoryImpl struct {
	db *database.DB
}

func NewCivilStatusRepository(db *database.DB) civilstatus.CivilStatusRepository {
	return &civilStatusRepositoryImpl{db: db}
}

func (r *civilStatusRepositoryImpl) Create(ctx context.Context, c civilstatus.CivilStatus) (civilstatus.CivilStatus, error) {
	q := database.GetQuerier(ctx, r.db)

	c.ID = uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, `
		INSERT INTO civil_statuses (id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, TRUE, NOW(), NOW())
		RETURNING created_at, updated_at
	`, c.ID, c.Name).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return civilstatus.CivilStatus{}, fmt.Errorf("failed to insert civil status: %w", err)
	}

	c.IsActive = true
	return c, nil
}

func (r *civilStatusRepositoryImpl) GetByID(ctx context.Context, id string) (civilstatus.CivilStatus, error) {
	q := database.GetQuerier(ctx, r.db)

	var c civilstatus.CivilStatus
	err := q.QueryRow(ctx, `
		SELECT id, name, is_active, created_at, updated_at
		FROM civil_statuses WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return civilstatus.CivilStatus{}, civilstatus.ErrCivilStatusNotFound
		}
		return civilstatus.CivilStatus{}, err
	}
	return c, nil
}

func (r *civilStatusRepositoryImpl) List(ctx context.Context, includeInactive bool) ([]civilstatus.CivilStatus, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT id, name, is_active, created_at, updated_at FROM civil_statuses`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query civil statuses: %w", err)
	}
	defer rows.Close()

	var statuses []civilstatus.CivilStatus
	for rows.Next() {
		var c civilstatus.CivilStatus
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		statuses = append(statuses, c)
	}
	return statuses, rows.Err()
}

func (r *civilStatusRepositoryImpl) Update(ctx context.Context, req civilstatus.UpdateCivilStatusRequest) error {
	q := database.GetQuerier(ctx, r.db)

	if req.Name == nil {
		return nil
	}

	commandTag, err := q.Exec(ctx, `
		UPDATE civil_statuses SET name = $1, updated_at = NOW()
		WHERE id = $2 AND is_active = TRUE
	`, *req.Name, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update civil status %s: %w", req.ID, err)
	}
	if commandTag.RowsAffected() != 1 {
		return civilstatus.ErrCivilStatusNotFound
	}
	return nil
}

func (r *civilStatusRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE civil_statuses SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return civilstatus.ErrCivilStatusNotFound
	}
	return nil
}
