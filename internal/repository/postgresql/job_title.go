package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bayanihr/hr201-backend-go/internal/domain/master/jobtitle"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

type jobTitleRepositoryImpl struct {
	db *database.DB
}

func NewJobTitleRepository(db *database.DB) jobtitle.JobTitleRepository {
	return &jobTitleRepositoryImpl{db: db}
}

func (r *jobTitleRepositoryImpl) Create(ctx context.Context, j jobtitle.JobTitle) (jobtitle.JobTitle, error) {
	q := database.GetQuerier(ctx, r.db)

	j.ID = uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, `
		INSERT INTO job_titles (id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		RETURNING created_at, updated_at
	`, j.ID, j.Name, j.Description).Scan(&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return jobtitle.JobTitle{}, jobtitle.ErrJobTitleNameExists
		}
		return jobtitle.JobTitle{}, fmt.Errorf("failed to insert job title: %w", err)
	}

	j.IsActive = true
	return j, nil
}

func (r *jobTitleRepositoryImpl) GetByID(ctx context.Context, id string) (jobtitle.JobTitle, error) {
	q := database.GetQuerier(ctx, r.db)

	var j jobtitle.JobTitle
	err := q.QueryRow(ctx, `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM job_titles WHERE id = $1
	`, id).Scan(&j.ID, &j.Name, &j.Description, &j.IsActive, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jobtitle.JobTitle{}, jobtitle.ErrJobTitleNotFound
		}
		return jobtitle.JobTitle{}, err
	}
	return j, nil
}

func (r *jobTitleRepositoryImpl) List(ctx context.Context, includeInactive bool) ([]jobtitle.JobTitle, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT id, name, description, is_active, created_at, updated_at FROM job_titles`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query job titles: %w", err)
	}
	defer rows.Close()

	var titles []jobtitle.JobTitle
	for rows.Next() {
		var j jobtitle.JobTitle
		if err := rows.Scan(&j.ID, &j.Name, &j.Description, &j.IsActive, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		titles = append(titles, j)
	}
	return titles, rows.Err()
}

func (r *jobTitleRepositoryImpl) Update(ctx context.Context, req jobtitle.UpdateJobTitleRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Description != nil {
		updates = append(updates, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}
	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++
	args = append(args, req.ID)

	sql := "UPDATE job_titles SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND is_active = TRUE", argIdx)

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return jobtitle.ErrJobTitleNameExists
		}
		return fmt.Errorf("failed to update job title %s: %w", req.ID, err)
	}
	if commandTag.RowsAffected() != 1 {
		return jobtitle.ErrJobTitleNotFound
	}
	return nil
}

func (r *jobTitleRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE job_titles SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return jobtitle.ErrJobTitleNotFound
	}
	return nil
}
