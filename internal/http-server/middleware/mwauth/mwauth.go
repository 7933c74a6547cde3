package mwauth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"topgreen/internal/lib/api/response"
	"topgreen/internal/lib/auth"
	"topgreen/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

type ctxKey string

const subjectKey ctxKey = "auth_subject"

// Subject returns the authenticated admin identity stored by Admin.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey).(string)
	return s
}

// Admin gates a route subtree behind a Bearer token carrying the admin
// role.
func Admin(log *slog.Logger, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing bearer token"))
				return
			}

			raw := strings.TrimPrefix(header, "Bearer ")

			subject, role, err := auth.ParseToken(secret, raw)
			if err != nil {
				log.Warn("rejected token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid token"))
				return
			}

			if role != auth.RoleAdmin {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden"))
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}
