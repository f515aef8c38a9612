package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Suchethan021/careerhub-platform/internal/auth"
	contentsvc "github.com/Suchethan021/careerhub-platform/internal/content"
	"github.com/Suchethan021/careerhub-platform/internal/middleware"
	"github.com/Suchethan021/careerhub-platform/internal/models"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
)

type fakeRepo struct {
	repo.Repo
	sections []models.ContentSection
	faqs     []models.FAQ

	replaceSectionCalls int
	replaceFAQCalls     int
}

func (f *fakeRepo) ListSectionsByCompany(_ context.Context, _ uuid.UUID) ([]models.ContentSection, error) {
	return f.sections, nil
}

func (f *fakeRepo) ListFAQsByCompany(_ context.Context, _ uuid.UUID) ([]models.FAQ, error) {
	return f.faqs, nil
}

func (f *fakeRepo) ReplaceSections(_ context.Context, _ uuid.UUID, sections []models.ContentSection) ([]models.ContentSection, error) {
	f.replaceSectionCalls++
	f.sections = sections
	return sections, nil
}

func (f *fakeRepo) ReplaceFAQs(_ context.Context, _ uuid.UUID, faqs []models.FAQ) ([]models.FAQ, error) {
	f.replaceFAQCalls++
	f.faqs = faqs
	return faqs, nil
}

func newHandler(f *fakeRepo) *Handler {
	return New(f, contentsvc.NewSaver(f, nil))
}

func authedRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	user := models.User{ID: uuid.New(), Email: "recruiter@example.com"}
	ctx := auth.WithUser(req.Context(), &user)
	ctx = middleware.WithCompany(ctx, models.Company{ID: uuid.New(), Name: "Acme"})
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestSavePersistsReconciledRows(t *testing.T) {
	f := &fakeRepo{}
	h := newHandler(f)

	body := `{
		"sections": [
			{"type": "mission", "order_index": 7, "title": "Mission", "content": "Why we exist"},
			{"type": "about", "order_index": 2, "title": "About", "content": "Who we are"}
		],
		"faqs": [
			{"question": "Remote?", "answer": "Yes", "order_index": 0}
		]
	}`
	rr := httptest.NewRecorder()
	h.Save(rr, authedRequest(t, http.MethodPut, "/my/company/content", body))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 1, f.replaceSectionCalls)
	require.Equal(t, 1, f.replaceFAQCalls)

	var resp struct {
		Sections []models.ContentSection `json:"sections"`
		FAQs     []models.FAQ            `json:"faqs"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Sections, 2)
	// Renumbered densely in prior-index order.
	require.Equal(t, models.SectionAbout, resp.Sections[0].Type)
	require.Equal(t, 0, resp.Sections[0].OrderIndex)
	require.Equal(t, models.SectionMission, resp.Sections[1].Type)
	require.Equal(t, 1, resp.Sections[1].OrderIndex)
	require.NotEqual(t, uuid.Nil, resp.Sections[0].ID)
	require.Len(t, resp.FAQs, 1)
}

func TestSaveDuplicateTypeFailsWithoutStorage(t *testing.T) {
	f := &fakeRepo{}
	h := newHandler(f)

	body := `{
		"sections": [
			{"type": "about", "order_index": 0},
			{"type": "about", "order_index": 1}
		],
		"faqs": []
	}`
	rr := httptest.NewRecorder()
	h.Save(rr, authedRequest(t, http.MethodPut, "/my/company/content", body))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Zero(t, f.replaceSectionCalls)
	require.Zero(t, f.replaceFAQCalls)

	var resp struct {
		Error          string               `json:"error"`
		DuplicateTypes []models.SectionType `json:"duplicate_types"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Contains(t, resp.Error, "about")
	require.Equal(t, []models.SectionType{models.SectionAbout}, resp.DuplicateTypes)
}

func TestSaveRejectsUnknownSectionType(t *testing.T) {
	f := &fakeRepo{}
	h := newHandler(f)

	body := `{"sections": [{"type": "testimonials", "order_index": 0}], "faqs": []}`
	rr := httptest.NewRecorder()
	h.Save(rr, authedRequest(t, http.MethodPut, "/my/company/content", body))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Zero(t, f.replaceSectionCalls)
}

func TestMoveSectionPersistsSwappedOrder(t *testing.T) {
	aboutID, missionID := uuid.New(), uuid.New()
	f := &fakeRepo{sections: []models.ContentSection{
		{ID: aboutID, Type: models.SectionAbout, OrderIndex: 0, IsVisible: true},
		{ID: missionID, Type: models.SectionMission, OrderIndex: 1, IsVisible: true},
	}}
	h := newHandler(f)

	req := authedRequest(t, http.MethodPost, "/my/company/content/sections/mission/move", `{"direction": "up"}`)
	req = withURLParam(req, "type", "mission")
	rr := httptest.NewRecorder()
	h.MoveSection(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 1, f.replaceSectionCalls)
	byID := map[uuid.UUID]int{}
	for _, s := range f.sections {
		byID[s.ID] = s.OrderIndex
	}
	require.Equal(t, 0, byID[missionID])
	require.Equal(t, 1, byID[aboutID])
}

func TestMoveSectionBoundaryIsNoOpButSucceeds(t *testing.T) {
	f := &fakeRepo{sections: []models.ContentSection{
		{ID: uuid.New(), Type: models.SectionAbout, OrderIndex: 0, IsVisible: true},
	}}
	h := newHandler(f)

	req := authedRequest(t, http.MethodPost, "/my/company/content/sections/about/move", `{"direction": "up"}`)
	req = withURLParam(req, "type", "about")
	rr := httptest.NewRecorder()
	h.MoveSection(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 0, f.sections[0].OrderIndex)
}

func TestMoveFAQOutOfRangeDirection(t *testing.T) {
	f := &fakeRepo{}
	h := newHandler(f)

	req := authedRequest(t, http.MethodPost, "/my/company/content/faqs/0/move", `{"direction": "sideways"}`)
	req = withURLParam(req, "index", "0")
	rr := httptest.NewRecorder()
	h.MoveFAQ(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}
