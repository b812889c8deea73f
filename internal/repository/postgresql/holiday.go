package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bayanihr/hr201-backend-go/internal/domain/leave"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) leave.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func scanHoliday(row pgx.Row) (leave.Holiday, error) {
	var h leave.Holiday
	var date time.Time

	err := row.Scan(&h.ID, &h.Name, &date, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return leave.Holiday{}, err
	}

	h.Date = calendar.FromTime(date)
	return h, nil
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, holiday leave.Holiday) (leave.Holiday, error) {
	q := database.GetQuerier(ctx, r.db)

	holiday.ID = uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, `
		INSERT INTO holidays (id, name, date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		RETURNING created_at, updated_at
	`, holiday.ID, holiday.Name, holiday.Date.Time()).
		Scan(&holiday.CreatedAt, &holiday.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return leave.Holiday{}, leave.ErrHolidayDateExists
		}
		return leave.Holiday{}, fmt.Errorf("failed to insert holiday: %w", err)
	}

	holiday.IsActive = true
	return holiday, nil
}

func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Holiday, error) {
	q := database.GetQuerier(ctx, r.db)

	holiday, err := scanHoliday(q.QueryRow(ctx, `
		SELECT id, name, date, is_active, created_at, updated_at
		FROM holidays WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Holiday{}, leave.ErrHolidayNotFound
		}
		return leave.Holiday{}, err
	}
	return holiday, nil
}

func (r *holidayRepositoryImpl) ListByRange(ctx context.Context, start, end calendar.Date) ([]leave.Holiday, error) {
	q := database.GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, date, is_active, created_at, updated_at
		FROM holidays
		WHERE is_active = TRUE AND date >= $1 AND date <= $2
		ORDER BY date
	`, start.Time(), end.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []leave.Holiday
	for rows.Next() {
		holiday, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}
	return holidays, rows.Err()
}

func (r *holidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]leave.Holiday, error) {
	start := calendar.Date{Year: year, Month: 1, Day: 1}
	end := calendar.Date{Year: year, Month: 12, Day: 31}
	return r.ListByRange(ctx, start, end)
}

func (r *holidayRepositoryImpl) Update(ctx context.Context, req leave.UpdateHolidayRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Date != nil {
		d, err := calendar.ParseDate(*req.Date)
		if err != nil {
			return err
		}
		updates = append(updates, fmt.Sprintf("date = $%d", argIdx))
		args = append(args, d.Time())
		argIdx++
	}
	if len(updates) == 0 {
		return leave.ErrNothingToUpdate
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++
	args = append(args, req.ID)

	sql := "UPDATE holidays SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND is_active = TRUE", argIdx)

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return leave.ErrHolidayDateExists
		}
		return fmt.Errorf("failed to update holiday %s: %w", req.ID, err)
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrHolidayNotFound
	}
	return nil
}

func (r *holidayRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE holidays SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrHolidayNotFound
	}
	return nil
}
