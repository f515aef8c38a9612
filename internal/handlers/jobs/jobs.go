// internal/handlers/jobs/jobs.go
package jobs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Suchethan021/careerhub-platform/internal/auth"
	"github.com/Suchethan021/careerhub-platform/internal/careers"
	"github.com/Suchethan021/careerhub-platform/internal/httpserver"
	"github.com/Suchethan021/careerhub-platform/internal/middleware"
	"github.com/Suchethan021/careerhub-platform/internal/models"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
	"github.com/Suchethan021/careerhub-platform/internal/salary"
)

type Handler struct {
	repo repo.Repo
}

func New(repo repo.Repo) *Handler {
	return &Handler{repo: repo}
}

// PublicBoard lists open jobs across published companies with the standard
// filter set applied in memory.
// GET /jobs?search=&location=&type=&level=
func (h *Handler) PublicBoard(w http.ResponseWriter, r *http.Request) {
	all, err := h.repo.ListOpenJobs(r.Context())
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to fetch jobs")
		return
	}

	q := r.URL.Query()
	filtered := careers.FilterJobs(all, careers.JobFilter{
		SearchTerm:      q.Get("search"),
		Location:        q.Get("location"),
		JobType:         models.JobType(q.Get("type")),
		ExperienceLevel: models.ExperienceLevel(q.Get("level")),
	})

	httpserver.JSON(w, http.StatusOK, map[string]any{
		"jobs":      filtered,
		"locations": careers.Locations(all),
		"total":     len(all),
	})
}

// List returns the recruiter's jobs, filterable by status and search term.
// GET /my/company/jobs?status=&search=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusNotFound, "company not found")
		return
	}
	all, err := h.repo.ListJobsByCompany(r.Context(), company.ID)
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to fetch jobs")
		return
	}

	q := r.URL.Query()
	jobs := careers.FilterJobs(all, careers.JobFilter{SearchTerm: q.Get("search")})
	if status := models.JobStatus(q.Get("status")); status != "" {
		kept := make([]models.Job, 0, len(jobs))
		for _, j := range jobs {
			if j.Status == status {
				kept = append(kept, j)
			}
		}
		jobs = kept
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"jobs": jobs, "total": len(all)})
}

type jobRequest struct {
	Title             string                  `json:"title"`
	Description       string                  `json:"description"`
	Location          *string                 `json:"location"`
	JobType           models.JobType          `json:"job_type"`
	ExperienceLevel   models.ExperienceLevel  `json:"experience_level"`
	Status            models.JobStatus        `json:"status"`
	SalaryMin         *int64                  `json:"salary_min"`
	SalaryMax         *int64                  `json:"salary_max"`
	SalaryCurrency    *string                 `json:"salary_currency"`
	SalaryPeriod      *models.SalaryPeriod    `json:"salary_period"`
	SalaryRangeString *string                 `json:"salary_range_string"`
	IsFeatured        bool                    `json:"is_featured"`
}

func (b *jobRequest) validate() string {
	if strings.TrimSpace(b.Title) == "" {
		return "title is required"
	}
	if strings.TrimSpace(b.Description) == "" {
		return "description is required"
	}
	if !b.JobType.Valid() {
		return "invalid job_type"
	}
	if !b.ExperienceLevel.Valid() {
		return "invalid experience_level"
	}
	if b.Status == "" {
		b.Status = models.StatusDraft
	}
	if !b.Status.Valid() {
		return "invalid status"
	}
	if b.SalaryMin != nil && b.SalaryMax != nil && *b.SalaryMin > *b.SalaryMax {
		return "salary_min must not exceed salary_max"
	}
	if b.SalaryPeriod != nil && !b.SalaryPeriod.Valid() {
		return "invalid salary_period"
	}
	return ""
}

// rangeString returns the client-supplied display string or derives one
// from the structured fields.
func (b *jobRequest) rangeString() *string {
	if b.SalaryRangeString != nil {
		return b.SalaryRangeString
	}
	if b.SalaryMin == nil && b.SalaryMax == nil {
		return nil
	}
	currency := ""
	if b.SalaryCurrency != nil {
		currency = *b.SalaryCurrency
	}
	s := salary.Format(b.SalaryMin, b.SalaryMax, currency, b.SalaryPeriod)
	return &s
}

// Create adds a job to the recruiter's company.
// POST /my/company/jobs
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusNotFound, "company not found")
		return
	}

	var b jobRequest
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := b.validate(); msg != "" {
		httpserver.Error(w, http.StatusBadRequest, msg)
		return
	}

	job, err := h.repo.CreateJob(r.Context(), models.Job{
		CompanyID:         company.ID,
		Title:             strings.TrimSpace(b.Title),
		Description:       b.Description,
		Location:          b.Location,
		JobType:           b.JobType,
		ExperienceLevel:   b.ExperienceLevel,
		Status:            b.Status,
		SalaryMin:         b.SalaryMin,
		SalaryMax:         b.SalaryMax,
		SalaryCurrency:    b.SalaryCurrency,
		SalaryPeriod:      b.SalaryPeriod,
		SalaryRangeString: b.rangeString(),
		IsFeatured:        b.IsFeatured,
		CreatedBy:         &user.ID,
		UpdatedBy:         &user.ID,
	})
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to create job")
		return
	}
	httpserver.JSON(w, http.StatusCreated, map[string]any{"job": job})
}

// Update replaces a job's mutable fields.
// PUT /my/company/jobs/{jobID}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusNotFound, "company not found")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	var b jobRequest
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := b.validate(); msg != "" {
		httpserver.Error(w, http.StatusBadRequest, msg)
		return
	}

	patch := repo.JobPatch{
		Title:           &b.Title,
		Description:     &b.Description,
		JobType:         &b.JobType,
		ExperienceLevel: &b.ExperienceLevel,
		Status:          &b.Status,
		IsFeatured:      &b.IsFeatured,
		UpdatedBy:       &user.ID,
	}
	if b.Location != nil {
		patch.Location = b.Location
	} else {
		patch.ClearLocation = true
	}
	if b.SalaryMin == nil && b.SalaryMax == nil {
		patch.ClearSalary = true
	} else {
		patch.SalaryMin = b.SalaryMin
		patch.SalaryMax = b.SalaryMax
		patch.SalaryCurrency = b.SalaryCurrency
		patch.SalaryPeriod = b.SalaryPeriod
		patch.SalaryRangeString = b.rangeString()
	}

	job, err := h.repo.UpdateJob(r.Context(), company.ID, id, patch)
	if err != nil {
		if errors.Is(err, models.ErrJobNotFound) {
			httpserver.Error(w, http.StatusNotFound, "job not found")
			return
		}
		httpserver.Error(w, http.StatusInternalServerError, "failed to update job")
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"job": job})
}

// Delete soft-deletes a job: the deletion timestamp is set and the row is
// retained.
// DELETE /my/company/jobs/{jobID}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusNotFound, "company not found")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid job ID")
		return
	}
	job, err := h.repo.SoftDeleteJob(r.Context(), company.ID, id)
	if err != nil {
		if errors.Is(err, models.ErrJobNotFound) {
			httpserver.Error(w, http.StatusNotFound, "job not found")
			return
		}
		httpserver.Error(w, http.StatusInternalServerError, "failed to delete job")
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"job": job})
}

// ChangeStatus sets the job status; any value may follow any other.
// PATCH /my/company/jobs/{jobID}/status
func (h *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusNotFound, "company not found")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	var b struct {
		Status models.JobStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil || !b.Status.Valid() {
		httpserver.Error(w, http.StatusBadRequest, "status must be open, draft or closed")
		return
	}

	job, err := h.repo.UpdateJob(r.Context(), company.ID, id, repo.JobPatch{
		Status:    &b.Status,
		UpdatedBy: &user.ID,
	})
	if err != nil {
		if errors.Is(err, models.ErrJobNotFound) {
			httpserver.Error(w, http.StatusNotFound, "job not found")
			return
		}
		httpserver.Error(w, http.StatusInternalServerError, "failed to change job status")
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"job": job})
}
