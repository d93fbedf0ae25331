package middleware

import (
	"net/http"
	"strconv"

	"github.com/tvintergoller/keep-informed/internal"
)

// ActingUser lifts the user_id query parameter into the request context.
// The id is taken at face value; resolution against the user table happens
// in the services that need it.
func ActingUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if idStr := r.URL.Query().Get("user_id"); idStr != "" {
			if id, err := strconv.ParseInt(idStr, 10, 64); err == nil && id > 0 {
				r = r.WithContext(internal.ContextWithUserID(r.Context(), id))
			}
		}
		next.ServeHTTP(w, r)
	})
}
