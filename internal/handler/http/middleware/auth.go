package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/bayanihr/hr201-backend-go/internal/domain/audit"
	"github.com/bayanihr/hr201-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests without a valid access token and stashes
// the acting user in the context for activity logging.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid access token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			userID, _ := claims["user_id"].(string)
			ctx := audit.WithActor(r.Context(), audit.UserActor(userID))
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
