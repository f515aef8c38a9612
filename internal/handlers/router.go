// internal/handlers/router.go
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Suchethan021/careerhub-platform/internal/assets"
	"github.com/Suchethan021/careerhub-platform/internal/auth"
	contentsvc "github.com/Suchethan021/careerhub-platform/internal/content"
	"github.com/Suchethan021/careerhub-platform/internal/handlers/companies"
	contenthandlers "github.com/Suchethan021/careerhub-platform/internal/handlers/content"
	"github.com/Suchethan021/careerhub-platform/internal/handlers/jobs"
	"github.com/Suchethan021/careerhub-platform/internal/handlers/uploads"
	"github.com/Suchethan021/careerhub-platform/internal/middleware"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
)

// Options carries the collaborators and limits the route groups need.
type Options struct {
	Repo          repo.Repo
	Store         assets.Store
	SessionTTL    time.Duration
	MaxUploadSize int64
	UploadsDir    string
}

func RegisterRoutes(mux *chi.Mux, opts Options) {
	r := opts.Repo
	companyHandler := companies.New(r)
	jobHandler := jobs.New(r)
	contentHandler := contenthandlers.New(r, contentsvc.NewSaver(r, nil))
	uploadHandler := uploads.New(r, opts.Store, opts.MaxUploadSize)

	// Local auth routes
	mux.Post("/auth/signup", auth.SignupHandler(r, opts.SessionTTL))
	mux.Post("/auth/login", auth.LoginHandler(r, opts.SessionTTL))
	mux.Post("/auth/logout", auth.LogoutHandler())
	mux.Post("/auth/reset-password", auth.ResetPasswordHandler(r))
	mux.Post("/auth/reset-password/confirm", auth.ConfirmResetHandler(r))
	mux.Post("/auth/resend-confirmation", auth.ResendConfirmationHandler(r))
	mux.Post("/auth/confirm-email", auth.ConfirmEmailHandler(r))
	mux.With(middleware.RequireAuth(r)).Get("/auth/me", auth.MeHandler())
	mux.With(middleware.RequireAuth(r)).Post("/auth/update-password", auth.UpdatePasswordHandler(r))

	// Candidate-facing routes, no auth
	mux.Get("/companies", companyHandler.List)
	mux.Get("/companies/{slug}", companyHandler.CareersPage)
	mux.Get("/jobs", jobHandler.PublicBoard)

	// Recruiter dashboard, scoped to the caller's own company
	mux.Route("/my/company", func(sr chi.Router) {
		// Apply auth to the whole group ONCE
		sr.Use(middleware.RequireAuth(r))

		// Creation is the one dashboard call that works without a company yet.
		sr.Post("/", companyHandler.Create)

		sr.Group(func(gr chi.Router) {
			gr.Use(middleware.CompanyContext(r))

			gr.Get("/", companyHandler.GetMine)
			gr.Put("/", companyHandler.UpdateMine)

			gr.Get("/jobs", jobHandler.List)
			gr.Post("/jobs", jobHandler.Create)
			gr.Put("/jobs/{jobID}", jobHandler.Update)
			gr.Delete("/jobs/{jobID}", jobHandler.Delete)
			gr.Patch("/jobs/{jobID}/status", jobHandler.ChangeStatus)

			gr.Get("/content", contentHandler.Get)
			gr.Put("/content", contentHandler.Save)
			gr.Post("/content/sections/{type}/move", contentHandler.MoveSection)
			gr.Post("/content/faqs/{index}/move", contentHandler.MoveFAQ)

			gr.Post("/assets/{kind}", uploadHandler.Upload)
			gr.Delete("/assets", uploadHandler.Remove)
		})
	})

	// Uploaded assets
	mux.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(opts.UploadsDir))))

	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("OK"))
	})
}
