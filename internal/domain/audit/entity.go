package audit

import (
	"context"
	"time"
)

// ActorKind discriminates who performed an action.
type ActorKind string

const (
	ActorKindUser   ActorKind = "user"
	ActorKindSystem ActorKind = "system"
)

// Actor identifies the principal behind an audited action. Scheduled and
// internal work uses the system actor; everything else carries a user id.
type Actor struct {
	Kind   ActorKind
	UserID string
}

func UserActor(userID string) Actor {
	if userID == "" {
		return SystemActor()
	}
	return Actor{Kind: ActorKindUser, UserID: userID}
}

func SystemActor() Actor {
	return Actor{Kind: ActorKindSystem}
}

// RequestMeta carries per-request context captured by middleware.
type RequestMeta struct {
	IP        string
	UserAgent string
	RequestID string
}

// Entry is one activity-log record. Every use-case invocation writes
// exactly one, success or failure.
type Entry struct {
	ID         string
	Actor      Actor
	Action     string
	EntityType string
	EntityID   string
	Success    bool
	Message    string
	Meta       RequestMeta
	CreatedAt  time.Time
}

type Filter struct {
	Action     string
	EntityType string
	ActorUser  string
}

// Repository persists and lists activity-log entries. Record uses the
// ambient transaction when one is present.
type Repository interface {
	Record(ctx context.Context, entry Entry) error
	List(ctx context.Context, filter Filter, limit, offset int) ([]Entry, int64, error)
}

type metaKey struct{}
type actorKey struct{}

func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, metaKey{}, meta)
}

func RequestMetaFromContext(ctx context.Context) RequestMeta {
	meta, _ := ctx.Value(metaKey{}).(RequestMeta)
	return meta
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) Actor {
	if actor, ok := ctx.Value(actorKey{}).(Actor); ok {
		return actor
	}
	return SystemActor()
}

// Outcome builds the single entry for a finished use-case invocation.
// successMsg describes the mutation; on failure the error text is kept
// verbatim.
func Outcome(ctx context.Context, action, entityType, entityID, successMsg string, err error) Entry {
	entry := Entry{
		Actor:      ActorFromContext(ctx),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Success:    err == nil,
		Message:    successMsg,
		Meta:       RequestMetaFromContext(ctx),
	}
	if err != nil {
		entry.Message = err.Error()
	}
	return entry
}
