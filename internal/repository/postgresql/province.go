package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bayanihr/hr201-backend-go/internal/domain/master/province"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

type provinceRepositoryImpl struct {
	db *database.DB
}

func NewProvinceRepository(db *database.DB) province.ProvinceRepository {
	return &provinceRepositoryImpl{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *provinceRepositoryImpl) Create(ctx context.Context, p province.Province) (province.Province, error) {
	q := database.GetQuerier(ctx, r.db)

	p.ID = uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, `
		INSERT INTO provinces (id, name, region, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		RETURNING created_at, updated_at
	`, p.ID, p.Name, p.Region).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return province.Province{}, province.ErrProvinceNameExists
		}
		return province.Province{}, fmt.Errorf("failed to insert province: %w", err)
	}

	p.IsActive = true
	return p, nil
}

func (r *provinceRepositoryImpl) GetByID(ctx context.Context, id string) (province.Province, error) {
	q := database.GetQuerier(ctx, r.db)

	var p province.Province
	err := q.QueryRow(ctx, `
		SELECT id, name, region, is_active, created_at, updated_at
		FROM provinces WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Region, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return province.Province{}, province.ErrProvinceNotFound
		}
		return province.Province{}, err
	}
	return p, nil
}

func (r *provinceRepositoryImpl) List(ctx context.Context, includeInactive bool) ([]province.Province, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT id, name, region, is_active, created_at, updated_at FROM provinces`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query provinces: %w", err)
	}
	defer rows.Close()

	var provinces []province.Province
	for rows.Next() {
		var p province.Province
		if err := rows.Scan(&p.ID, &p.Name, &p.Region, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		provinces = append(provinces, p)
	}
	return provinces, rows.Err()
}

func (r *provinceRepositoryImpl) Update(ctx context.Context, req province.UpdateProvinceRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Region != nil {
		updates = append(updates, fmt.Sprintf("region = $%d", argIdx))
		args = append(args, *req.Region)
		argIdx++
	}
	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++
	args = append(args, req.ID)

	sql := "UPDATE provinces SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND is_active = TRUE", argIdx)

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return province.ErrProvinceNameExists
		}
		return fmt.Errorf("failed to update province %s: %w", req.ID, err)
	}
	if commandTag.RowsAffected() != 1 {
		return province.ErrProvinceNotFound
	}
	return nil
}

func (r *provinceRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE provinces SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return province.ErrProvinceNotFound
	}
	return nil
}
