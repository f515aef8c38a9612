// internal/middleware/company_context.go
package middleware

import (
	"context"
	"net/http"

	"github.com/Suchethan021/careerhub-platform/internal/auth"
	"github.com/Suchethan021/careerhub-platform/internal/httpserver"
	"github.com/Suchethan021/careerhub-platform/internal/models"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
)

type ctxKeyCompany struct{}

// CompanyContext resolves the authenticated recruiter's company and injects
// it into the context. Runs after RequireAuth; a recruiter with no company
// yet gets 404 so the client can show the create-company flow.
func CompanyContext(r repo.Repo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			user, ok := auth.UserFromContext(req.Context())
			if !ok {
				httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			company, err := r.GetCompanyByRecruiter(req.Context(), user.ID)
			if err != nil {
				httpserver.Error(w, http.StatusNotFound, "company not found")
				return
			}
			ctx := WithCompany(req.Context(), company)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

func WithCompany(ctx context.Context, c models.Company) context.Context {
	return context.WithValue(ctx, ctxKeyCompany{}, c)
}

func CompanyFromContext(ctx context.Context) (models.Company, bool) {
	c, ok := ctx.Value(ctxKeyCompany{}).(models.Company)
	return c, ok
}
