package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Suchethan021/careerhub-platform/internal/auth"
	"github.com/Suchethan021/careerhub-platform/internal/middleware"
	"github.com/Suchethan021/careerhub-platform/internal/models"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
)

// fakeRepo implements only what these handlers reach; the embedded
// interface panics on anything else.
type fakeRepo struct {
	repo.Repo
	openJobs []models.Job
	created  *models.Job
}

func (f *fakeRepo) ListOpenJobs(_ context.Context) ([]models.Job, error) {
	return f.openJobs, nil
}

func (f *fakeRepo) CreateJob(_ context.Context, j models.Job) (models.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	f.created = &j
	return j, nil
}

func strptr(s string) *string { return &s }

func authedRequest(t *testing.T, method, target, body string, company models.Company) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	user := models.User{ID: uuid.New(), Email: "recruiter@example.com"}
	ctx := auth.WithUser(req.Context(), &user)
	ctx = middleware.WithCompany(ctx, company)
	return req.WithContext(ctx)
}

func TestPublicBoardFiltersButKeepsGlobalLocations(t *testing.T) {
	f := &fakeRepo{openJobs: []models.Job{
		{Title: "Software Engineer", Description: "backend", Location: strptr("Remote"), JobType: models.JobTypeFullTime, ExperienceLevel: models.LevelMid, Status: models.StatusOpen},
		{Title: "Product Designer", Description: "design systems", Location: strptr("Mumbai, India"), JobType: models.JobTypeFullTime, ExperienceLevel: models.LevelMid, Status: models.StatusOpen},
	}}
	h := New(f)

	req := httptest.NewRequest(http.MethodGet, "/jobs?search=engineer", nil)
	rr := httptest.NewRecorder()
	h.PublicBoard(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Jobs      []models.Job `json:"jobs"`
		Locations []string     `json:"locations"`
		Total     int          `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Jobs, 1)
	require.Equal(t, "Software Engineer", body.Jobs[0].Title)
	// The dropdown keeps every location even when the list is filtered.
	require.Equal(t, []string{"Mumbai, India", "Remote"}, body.Locations)
	require.Equal(t, 2, body.Total)
}

func TestCreateDerivesSalaryRangeString(t *testing.T) {
	f := &fakeRepo{}
	h := New(f)
	company := models.Company{ID: uuid.New(), Name: "Acme"}

	payload := `{
		"title": "Senior Backend Engineer",
		"description": "Own the platform",
		"job_type": "full-time",
		"experience_level": "senior",
		"status": "open",
		"salary_min": 2200000,
		"salary_max": 3200000,
		"salary_currency": "INR",
		"salary_period": "yearly"
	}`
	rr := httptest.NewRecorder()
	h.Create(rr, authedRequest(t, http.MethodPost, "/my/company/jobs", payload, company))

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, f.created)
	require.Equal(t, company.ID, f.created.CompanyID)
	require.NotNil(t, f.created.SalaryRangeString)
	require.Contains(t, *f.created.SalaryRangeString, "2,200,000")
	require.Contains(t, *f.created.SalaryRangeString, "3,200,000")
	require.Contains(t, *f.created.SalaryRangeString, "/ yearly")
}

func TestCreateKeepsClientRangeString(t *testing.T) {
	f := &fakeRepo{}
	h := New(f)
	company := models.Company{ID: uuid.New()}

	payload := `{
		"title": "Software Engineer",
		"description": "Build things",
		"job_type": "full-time",
		"experience_level": "mid",
		"salary_min": 1200000,
		"salary_max": 1800000,
		"salary_currency": "INR",
		"salary_period": "yearly",
		"salary_range_string": "₹12L – ₹18L per year"
	}`
	rr := httptest.NewRecorder()
	h.Create(rr, authedRequest(t, http.MethodPost, "/my/company/jobs", payload, company))

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "₹12L – ₹18L per year", *f.created.SalaryRangeString)
	// Omitted status falls back to draft.
	require.Equal(t, models.StatusDraft, f.created.Status)
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{"missing title", `{"description": "d", "job_type": "full-time", "experience_level": "mid"}`, "title is required"},
		{"bad job type", `{"title": "t", "description": "d", "job_type": "gig", "experience_level": "mid"}`, "invalid job_type"},
		{"bad level", `{"title": "t", "description": "d", "job_type": "full-time", "experience_level": "principal"}`, "invalid experience_level"},
		{"inverted salary", `{"title": "t", "description": "d", "job_type": "full-time", "experience_level": "mid", "salary_min": 200, "salary_max": 100}`, "salary_min must not exceed salary_max"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeRepo{}
			h := New(f)
			rr := httptest.NewRecorder()
			h.Create(rr, authedRequest(t, http.MethodPost, "/my/company/jobs", tc.payload, models.Company{ID: uuid.New()}))

			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.Contains(t, rr.Body.String(), tc.wantMsg)
			require.Nil(t, f.created)
		})
	}
}

func TestCreateWithoutCompanyContext(t *testing.T) {
	h := New(&fakeRepo{})
	req := httptest.NewRequest(http.MethodPost, "/my/company/jobs", strings.NewReader(`{}`))
	user := models.User{ID: uuid.New()}
	req = req.WithContext(auth.WithUser(req.Context(), &user))

	rr := httptest.NewRecorder()
	h.Create(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
