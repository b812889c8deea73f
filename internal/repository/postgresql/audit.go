package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bayanihr/hr201-backend-go/internal/domain/audit"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.Repository {
	return &auditRepositoryImpl{db: db}
}

func (r *auditRepositoryImpl) Record(ctx context.Context, entry audit.Entry) error {
	q := database.GetQuerier(ctx, r.db)

	var actorUser *string
	if entry.Actor.Kind == audit.ActorKindUser {
		actorUser = &entry.Actor.UserID
	}

	_, err := q.Exec(ctx, `
		INSERT INTO activity_logs (
			id, actor_kind, actor_user_id, action, entity_type, entity_id,
			success, message, ip_address, user_agent, request_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
	`, uuid.Must(uuid.NewV7()).String(), entry.Actor.Kind, actorUser,
		entry.Action, entry.EntityType, entry.EntityID, entry.Success,
		entry.Message, entry.Meta.IP, entry.Meta.UserAgent, entry.Meta.RequestID)
	if err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	return nil
}

func (r *auditRepositoryImpl) List(ctx context.Context, filter audit.Filter, limit, offset int) ([]audit.Entry, int64, error) {
	q := database.GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Action != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("action = $%d", argIdx))
		args = append(args, filter.Action)
		argIdx++
	}
	if filter.EntityType != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("entity_type = $%d", argIdx))
		args = append(args, filter.EntityType)
		argIdx++
	}
	if filter.ActorUser != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("actor_user_id = $%d", argIdx))
		args = append(args, filter.ActorUser)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM activity_logs WHERE "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}

	query := fmt.Sprintf(`
		SELECT id, actor_kind, actor_user_id, action, entity_type, entity_id,
		       success, message, ip_address, user_agent, request_id, created_at
		FROM activity_logs
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var entry audit.Entry
		var actorUser *string
		if err := rows.Scan(&entry.ID, &entry.Actor.Kind, &actorUser, &entry.Action,
			&entry.EntityType, &entry.EntityID, &entry.Success, &entry.Message,
			&entry.Meta.IP, &entry.Meta.UserAgent, &entry.Meta.RequestID,
			&entry.CreatedAt); err != nil {
			return nil, 0, err
		}
		if actorUser != nil {
			entry.Actor.UserID = *actorUser
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
