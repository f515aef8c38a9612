package middleware

import (
	"net/http"

	"github.com/Suchethan021/careerhub-platform/internal/auth"
	"github.com/Suchethan021/careerhub-platform/internal/httpserver"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
)

// RequireAuth authenticates using the session cookie (auth.ReadSession),
// then loads the user by Session.UserID from the repo and injects both
// session and user into the context.
func RequireAuth(r repo.Repo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			s := auth.ReadSession(req)
			if s == nil {
				httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			user, err := r.GetUserByID(req.Context(), s.UserID)
			if err != nil {
				httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := auth.WithSession(req.Context(), s)
			ctx = auth.WithUser(ctx, &user)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}
