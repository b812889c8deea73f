package http

import (
	"net/http"
	"time"

	"github.com/bayanihr/hr201-backend-go/internal/domain/audit"
	"github.com/bayanihr/hr201-backend-go/internal/handler/http/response"
)

type ActivityLogHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type ActivityLogHandlerImpl struct {
	audits audit.Repository
}

func NewActivityLogHandler(audits audit.Repository) ActivityLogHandler {
	return &ActivityLogHandlerImpl{audits: audits}
}

type activityLogResponse struct {
	ID          string    `json:"id"`
	ActorKind   string    `json:"actor_kind"`
	ActorUserID string    `json:"actor_user_id,omitempty"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entity_type"`
	EntityID    string    `json:"entity_id,omitempty"`
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	IPAddress   string    `json:"ip_address,omitempty"`
	UserAgent   string    `json:"user_agent,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toActivityLogResponse(e audit.Entry) activityLogResponse {
	return activityLogResponse{
		ID:          e.ID,
		ActorKind:   string(e.Actor.Kind),
		ActorUserID: e.Actor.UserID,
		Action:      e.Action,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		Success:     e.Success,
		Message:     e.Message,
		IPAddress:   e.Meta.IP,
		UserAgent:   e.Meta.UserAgent,
		RequestID:   e.Meta.RequestID,
		CreatedAt:   e.CreatedAt,
	}
}

// List implements ActivityLogHandler.
func (h *ActivityLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := audit.Filter{
		Action:     q.Get("action"),
		EntityType: q.Get("entity_type"),
		ActorUser:  q.Get("actor_user_id"),
	}
	page := parseIntQuery(q.Get("page"), 1)
	limit := parseIntQuery(q.Get("limit"), 50)

	entries, total, err := h.audits.List(r.Context(), filter, limit, (page-1)*limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]activityLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toActivityLogResponse(e))
	}
	response.SuccessWithMeta(w, out, paginationMeta(page, limit, total))
}
