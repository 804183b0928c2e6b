package middleware

import (
	"context"
	"net/http"
	"strings"
)

const (
	AdminHeader  = "X-Admin-User"
	defaultActor = "admin"
)

type actorKey struct{}

// Actor stores the acting administrator named by the X-Admin-User header.
// Authentication happens in front of this service.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := strings.TrimSpace(r.Header.Get(AdminHeader))
		if actor == "" {
			actor = defaultActor
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey{}, actor)))
	})
}

func ActorFrom(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey{}).(string); ok {
		return actor
	}
	return defaultActor
}
