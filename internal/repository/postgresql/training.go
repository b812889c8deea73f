package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bayanihr/hr201-backend-go/internal/domain/employee"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

type trainingRepositoryImpl struct {
	db *database.DB
}

func NewTrainingRepository(db *database.DB) employee.TrainingRepository {
	return &trainingRepositoryImpl{db: db}
}

func scanTraining(row pgx.Row) (employee.TrainingCertificate, error) {
	var rec employee.TrainingCertificate
	var from, to time.Time

	err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.Title, &rec.Provider,
		&from, &to, &rec.Hours, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return employee.TrainingCertificate{}, err
	}

	rec.DateFrom = calendar.FromTime(from)
	rec.DateTo = calendar.FromTime(to)
	return rec, nil
}

func (r *trainingRepositoryImpl) Create(ctx context.Context, rec employee.TrainingCertificate) (employee.TrainingCertificate, error) {
	q := database.GetQuerier(ctx, r.db)

	rec.ID = uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, `
		INSERT INTO employee_trainings (id, employee_id, title, provider, date_from, date_to, hours, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, NOW(), NOW())
		RETURNING created_at, updated_at
	`, rec.ID, rec.EmployeeID, rec.Title, rec.Provider,
		rec.DateFrom.Time(), rec.DateTo.Time(), rec.Hours).
		Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return employee.TrainingCertificate{}, fmt.Errorf("failed to insert training record: %w", err)
	}

	rec.IsActive = true
	return rec, nil
}

func (r *trainingRepositoryImpl) GetByID(ctx context.Context, id string) (employee.TrainingCertificate, error) {
	q := database.GetQuerier(ctx, r.db)

	rec, err := scanTraining(q.QueryRow(ctx, `
		SELECT id, employee_id, title, provider, date_from, date_to, hours, is_active, created_at, updated_at
		FROM employee_trainings WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.TrainingCertificate{}, employee.ErrTrainingNotFound
		}
		return employee.TrainingCertificate{}, err
	}
	return rec, nil
}

func (r *trainingRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]employee.TrainingCertificate, error) {
	q := database.GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, title, provider, date_from, date_to, hours, is_active, created_at, updated_at
		FROM employee_trainings
		WHERE employee_id = $1 AND is_active = TRUE
		ORDER BY date_from DESC
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query training records: %w", err)
	}
	defer rows.Close()

	var records []employee.TrainingCertificate
	for rows.Next() {
		rec, err := scanTraining(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *trainingRepositoryImpl) Update(ctx context.Context, req employee.UpdateTrainingRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	appendSet := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Title != nil {
		appendSet("title", *req.Title)
	}
	if req.Provider != nil {
		appendSet("provider", *req.Provider)
	}
	if req.DateFrom != nil {
		d, err := calendar.ParseDate(*req.DateFrom)
		if err != nil {
			return err
		}
		appendSet("date_from", d.Time())
	}
	if req.DateTo != nil {
		d, err := calendar.ParseDate(*req.DateTo)
		if err != nil {
			return err
		}
		appendSet("date_to", d.Time())
	}
	if req.Hours != nil {
		appendSet("hours", *req.Hours)
	}

	if len(updates) == 0 {
		return employee.ErrNothingToUpdate
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++
	args = append(args, req.ID)

	sql := "UPDATE employee_trainings SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND is_active = TRUE", argIdx)

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update training record %s: %w", req.ID, err)
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrTrainingNotFound
	}
	return nil
}

func (r *trainingRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE employee_trainings SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrTrainingNotFound
	}
	return nil
}
