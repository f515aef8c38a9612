// internal/handlers/content/content.go
package content

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Suchethan021/careerhub-platform/internal/auth"
	contentsvc "github.com/Suchethan021/careerhub-platform/internal/content"
	"github.com/Suchethan021/careerhub-platform/internal/httpserver"
	"github.com/Suchethan021/careerhub-platform/internal/middleware"
	"github.com/Suchethan021/careerhub-platform/internal/models"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
)

type Handler struct {
	repo  repo.Repo
	saver *contentsvc.Saver
}

func New(r repo.Repo, saver *contentsvc.Saver) *Handler {
	return &Handler{repo: r, saver: saver}
}

// Get returns the recruiter's sections and FAQs for editing.
// GET /my/company/content
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusNotFound, "company not found")
		return
	}
	sections, err := h.repo.ListSectionsByCompany(r.Context(), company.ID)
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to fetch content sections")
		return
	}
	faqs, err := h.repo.ListFAQsByCompany(r.Context(), company.ID)
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to fetch faqs")
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"sections": sections, "faqs": faqs})
}

// sectionInput is the edited view of one section. A nil ID marks a new row;
// a non-nil deleted_at marks removal.
type sectionInput struct {
	ID         *uuid.UUID         `json:"id"`
	Type       models.SectionType `json:"type"`
	OrderIndex int                `json:"order_index"`
	IsVisible  *bool              `json:"is_visible"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	ImageURLs  []string           `json:"image_urls"`
	DeletedAt  *time.Time         `json:"deleted_at"`
}

type faqInput struct {
	ID         *uuid.UUID `json:"id"`
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	OrderIndex int        `json:"order_index"`
	DeletedAt  *time.Time `json:"deleted_at"`
}

// Save reconciles and persists the edited sections and FAQs as one logical
// write. Duplicate section types fail with 400 before anything is stored.
// PUT /my/company/content
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusNotFound, "company not found")
		return
	}

	var b struct {
		Sections []sectionInput `json:"sections"`
		FAQs     []faqInput     `json:"faqs"`
	}
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sections := make([]models.ContentSection, 0, len(b.Sections))
	for _, in := range b.Sections {
		if !in.Type.Valid() {
			httpserver.Error(w, http.StatusBadRequest, "unknown section type "+strconv.Quote(string(in.Type)))
			return
		}
		s := models.ContentSection{
			Type:       in.Type,
			OrderIndex: in.OrderIndex,
			IsVisible:  true,
			Title:      in.Title,
			Content:    in.Content,
			ImageURLs:  in.ImageURLs,
			UpdatedBy:  &user.ID,
			DeletedAt:  in.DeletedAt,
		}
		if in.ID != nil {
			s.ID = *in.ID
		} else {
			s.CreatedBy = &user.ID
		}
		if in.IsVisible != nil {
			s.IsVisible = *in.IsVisible
		}
		sections = append(sections, s)
	}

	faqs := make([]models.FAQ, 0, len(b.FAQs))
	for _, in := range b.FAQs {
		f := models.FAQ{
			Question:   in.Question,
			Answer:     in.Answer,
			OrderIndex: in.OrderIndex,
			UpdatedBy:  &user.ID,
			DeletedAt:  in.DeletedAt,
		}
		if in.ID != nil {
			f.ID = *in.ID
		} else {
			f.CreatedBy = &user.ID
		}
		faqs = append(faqs, f)
	}

	res, err := h.saver.Save(r.Context(), company.ID, sections, faqs)
	if err != nil {
		var dup *contentsvc.DuplicateSectionTypeError
		if errors.As(err, &dup) {
			httpserver.JSON(w, http.StatusBadRequest, map[string]any{
				"error":           dup.Error(),
				"duplicate_types": dup.Types,
			})
			return
		}
		httpserver.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"sections": res.Sections, "faqs": res.FAQs})
}

// MoveSection swaps the named section with its neighbour. Out-of-range
// moves save nothing and return the current order.
// POST /my/company/content/sections/{type}/move { "direction": "up"|"down" }
func (h *Handler) MoveSection(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusNotFound, "company not found")
		return
	}
	sectionType := models.SectionType(chi.URLParam(r, "type"))
	if !sectionType.Valid() {
		httpserver.Error(w, http.StatusBadRequest, "unknown section type")
		return
	}
	dir, ok := parseDirection(r)
	if !ok {
		httpserver.Error(w, http.StatusBadRequest, "direction must be up or down")
		return
	}

	sections, err := h.repo.ListSectionsByCompany(r.Context(), company.ID)
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to fetch content sections")
		return
	}
	faqs, err := h.repo.ListFAQsByCompany(r.Context(), company.ID)
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to fetch faqs")
		return
	}

	moved := contentsvc.MoveSection(sections, sectionType, dir)
	res, err := h.saver.Save(r.Context(), company.ID, moved, faqs)
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"sections": res.Sections})
}

// MoveFAQ moves the FAQ at the given position.
// POST /my/company/content/faqs/{index}/move { "direction": "up"|"down" }
func (h *Handler) MoveFAQ(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusNotFound, "company not found")
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid faq index")
		return
	}
	dir, ok := parseDirection(r)
	if !ok {
		httpserver.Error(w, http.StatusBadRequest, "direction must be up or down")
		return
	}

	sections, err := h.repo.ListSectionsByCompany(r.Context(), company.ID)
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to fetch content sections")
		return
	}
	faqs, err := h.repo.ListFAQsByCompany(r.Context(), company.ID)
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to fetch faqs")
		return
	}

	moved := contentsvc.MoveFAQ(faqs, index, dir)
	res, err := h.saver.Save(r.Context(), company.ID, sections, moved)
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"faqs": res.FAQs})
}

func parseDirection(r *http.Request) (int, bool) {
	var b struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		return 0, false
	}
	switch b.Direction {
	case "up":
		return -1, true
	case "down":
		return 1, true
	}
	return 0, false
}
