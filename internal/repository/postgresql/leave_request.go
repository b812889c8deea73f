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

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type_id, lr.leave_type, lr.start_date,
	lr.end_date, lr.total_days, lr.reason, lr.balance_id, lr.status,
	lr.approval_by, lr.approval_date, lr.remarks, lr.is_active,
	lr.created_at, lr.updated_at,
	(e.first_name || ' ' || e.last_name) AS employee_name
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	var startDate, endDate time.Time

	err := row.Scan(&req.ID, &req.EmployeeID, &req.LeaveTypeID, &req.LeaveType,
		&startDate, &endDate, &req.TotalDays, &req.Reason, &req.BalanceID,
		&req.Status, &req.ApprovalBy, &req.ApprovalDate, &req.Remarks,
		&req.IsActive, &req.CreatedAt, &req.UpdatedAt, &req.EmployeeName)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	req.StartDate = calendar.FromTime(startDate)
	req.EndDate = calendar.FromTime(endDate)
	return req, nil
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	request.ID = uuid.Must(uuid.NewV7()).String()
	request.Status = leave.RequestStatusPending
	err := q.QueryRow(ctx, `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id, leave_type, start_date, end_date,
			total_days, reason, balance_id, status, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE, NOW(), NOW())
		RETURNING created_at, updated_at
	`, request.ID, request.EmployeeID, request.LeaveTypeID, request.LeaveType,
		request.StartDate.Time(), request.EndDate.Time(), request.TotalDays,
		request.Reason, request.BalanceID, request.Status).
		Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to insert leave request: %w", err)
	}

	request.IsActive = true
	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1`
	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := database.GetQuerier(ctx, r.db)

	whereClauses := []string{"lr.is_active = TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.LeaveTypeID != nil && *filter.LeaveTypeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.leave_type_id = $%d", argIdx))
		args = append(args, *filter.LeaveTypeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.end_date >= $%d", argIdx))
		args = append(args, filter.StartDate.Time())
		argIdx++
	}
	if filter.EndDate != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.start_date <= $%d", argIdx))
		args = append(args, filter.EndDate.Time())
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := `
		SELECT COUNT(*) FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE ` + whereClause
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE %s
		ORDER BY lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveRequestColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *leaveRequestRepositoryImpl) FindOverlapping(ctx context.Context, employeeID string, start, end calendar.Date, excludeID *string) ([]leave.LeaveRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.employee_id = $1
		  AND lr.is_active = TRUE
		  AND lr.status IN ($2, $3)
		  AND lr.start_date <= $4
		  AND lr.end_date >= $5`
	args := []interface{}{employeeID, leave.RequestStatusPending, leave.RequestStatusApproved, end.Time(), start.Time()}

	if excludeID != nil && *excludeID != "" {
		query += ` AND lr.id <> $6`
		args = append(args, *excludeID)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, req leave.UpdateLeaveRequestRow) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	appendSet := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.LeaveTypeID != nil {
		appendSet("leave_type_id", *req.LeaveTypeID)
	}
	if req.LeaveType != nil {
		appendSet("leave_type", *req.LeaveType)
	}
	if req.StartDate != nil {
		appendSet("start_date", req.StartDate.Time())
	}
	if req.EndDate != nil {
		appendSet("end_date", req.EndDate.Time())
	}
	if req.TotalDays != nil {
		appendSet("total_days", *req.TotalDays)
	}
	if req.Reason != nil {
		appendSet("reason", *req.Reason)
	}
	if req.BalanceID != nil {
		appendSet("balance_id", *req.BalanceID)
	}

	if len(updates) == 0 {
		return leave.ErrNothingToUpdate
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++
	args = append(args, req.ID)

	// Status guard keeps terminal requests immutable at the data layer too.
	sql := "UPDATE leave_requests SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND is_active = TRUE AND status = '%s'", argIdx, leave.RequestStatusPending)

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update leave request %s: %w", req.ID, err)
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, approvalBy *string, remarks *string) error {
	q := database.GetQuerier(ctx, r.db)

	// Cancellation may undo an approval; every other transition starts
	// from pending.
	fromStatuses := []string{string(leave.RequestStatusPending)}
	if status == leave.RequestStatusCancelled {
		fromStatuses = append(fromStatuses, string(leave.RequestStatusApproved))
	}

	commandTag, err := q.Exec(ctx, `
		UPDATE leave_requests
		SET status = $2, approval_by = $3, approval_date = NOW(), remarks = $4, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE AND status = ANY($5)
	`, id, status, approvalBy, remarks, fromStatuses)
	if err != nil {
		return fmt.Errorf("failed to update leave request status %s: %w", id, err)
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrRequestNotPending
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE leave_requests SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}
