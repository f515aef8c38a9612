// internal/handlers/companies/companies.go
package companies

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Suchethan021/careerhub-platform/internal/auth"
	"github.com/Suchethan021/careerhub-platform/internal/careers"
	"github.com/Suchethan021/careerhub-platform/internal/httpserver"
	"github.com/Suchethan021/careerhub-platform/internal/middleware"
	"github.com/Suchethan021/careerhub-platform/internal/models"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
)

type Handler struct {
	repo repo.Repo
}

func New(repo repo.Repo) *Handler {
	return &Handler{repo: repo}
}

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// DirectoryEntry is a published company plus its open-role count for the
// public directory.
type DirectoryEntry struct {
	models.Company
	OpenJobs int `json:"open_jobs"`
}

// List is the public company directory.
// GET /companies?search=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.repo.ListPublishedCompanies(r.Context())
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to fetch companies")
		return
	}
	companies = careers.FilterCompanies(companies, r.URL.Query().Get("search"))

	open, err := h.repo.ListOpenJobs(r.Context())
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to fetch jobs")
		return
	}
	counts := make(map[uuid.UUID]int)
	for _, j := range open {
		counts[j.CompanyID]++
	}

	entries := make([]DirectoryEntry, 0, len(companies))
	for _, c := range companies {
		entries = append(entries, DirectoryEntry{Company: c, OpenJobs: counts[c.ID]})
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"companies": entries})
}

// CareersPage is the public, slug-addressed careers page: company branding,
// open jobs, visible content sections and FAQs.
// GET /companies/{slug}
func (h *Handler) CareersPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	company, err := h.repo.GetCompanyBySlug(r.Context(), slug)
	if err != nil {
		httpserver.Error(w, http.StatusNotFound, "company not found")
		return
	}
	// Unpublished pages are visible only to the owning recruiter (preview).
	preview := false
	if !company.IsPublished {
		sess := auth.ReadSession(r)
		if sess == nil || sess.UserID != company.RecruiterID {
			httpserver.Error(w, http.StatusNotFound, "company not found")
			return
		}
		preview = true
	}

	jobs, err := h.repo.ListOpenJobsByCompany(r.Context(), company.ID)
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to fetch jobs")
		return
	}
	sections, err := h.repo.ListSectionsByCompany(r.Context(), company.ID)
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to fetch content")
		return
	}
	visible := make([]models.ContentSection, 0, len(sections))
	for _, s := range sections {
		if s.IsVisible {
			visible = append(visible, s)
		}
	}
	faqs, err := h.repo.ListFAQsByCompany(r.Context(), company.ID)
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to fetch faqs")
		return
	}

	httpserver.JSON(w, http.StatusOK, map[string]any{
		"company":  company,
		"jobs":     jobs,
		"sections": visible,
		"faqs":     faqs,
		"preview":  preview,
	})
}

type companyRequest struct {
	Name             string            `json:"name"`
	Slug             string            `json:"slug"`
	PrimaryColor     string            `json:"primary_color"`
	SecondaryColor   string            `json:"secondary_color"`
	AccentColor      string            `json:"accent_color"`
	FontFamily       string            `json:"font_family"`
	MissionStatement *string           `json:"mission_statement"`
	CultureVideoType *models.VideoType `json:"culture_video_type"`
	CultureVideoURL  *string           `json:"culture_video_youtube_url"`
	IsPublished      bool              `json:"is_published"`
}

// Create registers the recruiter's company. A recruiter owns exactly one;
// a second create returns 409.
// POST /my/company
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if _, err := h.repo.GetCompanyByRecruiter(r.Context(), user.ID); err == nil {
		httpserver.Error(w, http.StatusConflict, "recruiter already owns a company")
		return
	}

	var b companyRequest
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(b.Name) == "" {
		httpserver.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	if !slugRe.MatchString(b.Slug) {
		httpserver.Error(w, http.StatusBadRequest, "slug must be lowercase letters, digits and hyphens")
		return
	}
	if b.CultureVideoType != nil && *b.CultureVideoType == models.VideoYouTube &&
		(b.CultureVideoURL == nil || *b.CultureVideoURL == "") {
		httpserver.Error(w, http.StatusBadRequest, "youtube culture video requires a url")
		return
	}

	company, err := h.repo.CreateCompany(r.Context(), models.Company{
		Name:             strings.TrimSpace(b.Name),
		Slug:             b.Slug,
		RecruiterID:      user.ID,
		PrimaryColor:     b.PrimaryColor,
		SecondaryColor:   b.SecondaryColor,
		AccentColor:      b.AccentColor,
		FontFamily:       b.FontFamily,
		MissionStatement: b.MissionStatement,
		CultureVideoType: b.CultureVideoType,
		CultureVideoURL:  b.CultureVideoURL,
		IsPublished:      b.IsPublished,
		CreatedBy:        &user.ID,
		UpdatedBy:        &user.ID,
	})
	if err != nil {
		if errors.Is(err, models.ErrSlugTaken) {
			httpserver.Error(w, http.StatusConflict, err.Error())
			return
		}
		httpserver.Error(w, http.StatusInternalServerError, "failed to create company")
		return
	}
	httpserver.JSON(w, http.StatusCreated, map[string]any{"company": company})
}

// GetMine returns the recruiter's company. Runs behind CompanyContext.
// GET /my/company
func (h *Handler) GetMine(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusNotFound, "company not found")
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"company": company})
}

type companyPatchRequest struct {
	Name              *string           `json:"name"`
	Slug              *string           `json:"slug"`
	PrimaryColor      *string           `json:"primary_color"`
	SecondaryColor    *string           `json:"secondary_color"`
	AccentColor       *string           `json:"accent_color"`
	FontFamily        *string           `json:"font_family"`
	MissionStatement  *string           `json:"mission_statement"`
	CultureVideoType  *models.VideoType `json:"culture_video_type"`
	CultureVideoURL   *string           `json:"culture_video_youtube_url"`
	ClearCultureVideo bool              `json:"clear_culture_video"`
	IsPublished       *bool             `json:"is_published"`
}

// UpdateMine applies a typed patch to the recruiter's company. Every
// mutable field is enumerated; absent fields stay untouched.
// PUT /my/company
func (h *Handler) UpdateMine(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusNotFound, "company not found")
		return
	}

	var b companyPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if b.Slug != nil && !slugRe.MatchString(*b.Slug) {
		httpserver.Error(w, http.StatusBadRequest, "slug must be lowercase letters, digits and hyphens")
		return
	}

	patch := repo.CompanyPatch{
		Name:              b.Name,
		Slug:              b.Slug,
		PrimaryColor:      b.PrimaryColor,
		SecondaryColor:    b.SecondaryColor,
		AccentColor:       b.AccentColor,
		FontFamily:        b.FontFamily,
		MissionStatement:  b.MissionStatement,
		CultureVideoType:  b.CultureVideoType,
		CultureVideoURL:   b.CultureVideoURL,
		ClearCultureVideo: b.ClearCultureVideo,
		IsPublished:       b.IsPublished,
		UpdatedBy:         &user.ID,
	}
	updated, err := h.repo.UpdateCompany(r.Context(), company.ID, patch)
	if err != nil {
		if errors.Is(err, models.ErrSlugTaken) {
			httpserver.Error(w, http.StatusConflict, err.Error())
			return
		}
		httpserver.Error(w, http.StatusInternalServerError, "failed to update company")
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"company": updated})
}
