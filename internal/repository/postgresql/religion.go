package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bayanihr/hr201-backend-go/internal/domain/master/religion"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

type religionRepositoryImpl struct {
	db *database.DB
}

func NewReligionRepository(db *database.DB) religion.ReligionRepository {
	return &religionRepositoryImpl{db: db}
}

func (r *religionRepositoryImpl) Create(ctx context.Context, rel religion.Religion) (religion.Religion, error) {
	q := database.GetQuerier(ctx, r.db)

	rel.ID = uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, `
		INSERT INTO religions (id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, TRUE, NOW(), NOW())
		RETURNING created_at, updated_at
	`, rel.ID, rel.Name).Scan(&rel.CreatedAt, &rel.UpdatedAt)
	if err != nil {
		return religion.Religion{}, fmt.Errorf("failed to insert religion: %w", err)
	}

	rel.IsActive = true
	return rel, nil
}

func (r *religionRepositoryImpl) GetByID(ctx context.Context, id string) (religion.Religion, error) {
	q := database.GetQuerier(ctx, r.db)

	var rel religion.Religion
	err := q.QueryRow(ctx, `
		SELECT id, name, is_active, created_at, updated_at
		FROM religions WHERE id = $1
	`, id).Scan(&rel.ID, &rel.Name, &rel.IsActive, &rel.CreatedAt, &rel.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return religion.Religion{}, religion.ErrReligionNotFound
		}
		return religion.Religion{}, err
	}
	return rel, nil
}

func (r *religionRepositoryImpl) List(ctx context.Context, includeInactive bool) ([]religion.Religion, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT id, name, is_active, created_at, updated_at FROM religions`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query religions: %w", err)
	}
	defer rows.Close()

	var religions []religion.Religion
	for rows.Next() {
		var rel religion.Religion
		if err := rows.Scan(&rel.ID, &rel.Name, &rel.IsActive, &rel.CreatedAt, &rel.UpdatedAt); err != nil {
			return nil, err
		}
		religions = append(religions, rel)
	}
	return religions, rows.Err()
}

func (r *religionRepositoryImpl) Update(ctx context.Context, req religion.UpdateReligionRequest) error {
	q := database.GetQuerier(ctx, r.db)

	if req.Name == nil {
		return nil
	}

	commandTag, err := q.Exec(ctx, `
		UPDATE religions SET name = $1, updated_at = NOW()
		WHERE id = $2 AND is_active = TRUE
	`, *req.Name, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update religion %s: %w", req.ID, err)
	}
	if commandTag.RowsAffected() != 1 {
		return religion.ErrReligionNotFound
	}
	return nil
}

func (r *religionRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE religions SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return religion.ErrReligionNotFound
	}
	return nil
}
