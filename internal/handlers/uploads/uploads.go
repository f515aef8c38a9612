// internal/handlers/uploads/uploads.go
package uploads

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Suchethan021/careerhub-platform/internal/assets"
	"github.com/Suchethan021/careerhub-platform/internal/auth"
	"github.com/Suchethan021/careerhub-platform/internal/httpserver"
	"github.com/Suchethan021/careerhub-platform/internal/middleware"
	"github.com/Suchethan021/careerhub-platform/internal/models"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
)

type Handler struct {
	repo    repo.Repo
	store   assets.Store
	maxSize int64
}

func New(r repo.Repo, store assets.Store, maxSize int64) *Handler {
	return &Handler{repo: r, store: store, maxSize: maxSize}
}

// Upload receives one multipart file for the recruiter's company and patches
// the matching branding field. Replacing a logo or banner removes the old
// file after the new path is stored.
// POST /my/company/assets/{kind}
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusNotFound, "company not found")
		return
	}
	kind := assets.Kind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		httpserver.Error(w, http.StatusBadRequest, "unknown asset kind")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpserver.Error(w, http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
			return
		}
		httpserver.Error(w, http.StatusBadRequest, "multipart field \"file\" is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpserver.Error(w, http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
			return
		}
		httpserver.Error(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	storagePath, publicURL, err := h.store.Upload(r.Context(), company.ID, kind, header.Filename, content)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	patch := repo.CompanyPatch{UpdatedBy: &user.ID}
	var previous *string
	switch kind {
	case assets.KindLogo:
		patch.LogoPath = &storagePath
		previous = company.LogoPath
	case assets.KindBanner:
		patch.BannerPath = &storagePath
		previous = company.BannerPath
	case assets.KindVideo:
		vt := models.VideoUpload
		patch.CultureVideoType = &vt
		patch.CultureVideoPath = &storagePath
		previous = company.CultureVideoPath
	}

	updated, err := h.repo.UpdateCompany(r.Context(), company.ID, patch)
	if err != nil {
		// The file is orphaned on disk but the company record is intact.
		httpserver.Error(w, http.StatusInternalServerError, "failed to save asset reference")
		return
	}
	if previous != nil && *previous != storagePath {
		if err := h.store.Remove(r.Context(), []string{*previous}); err != nil {
			slog.ErrorContext(r.Context(), "Upload: remove replaced asset", "path", *previous, "error", err)
		}
	}

	httpserver.JSON(w, http.StatusOK, map[string]any{
		"storage_path": storagePath,
		"public_url":   publicURL,
		"company":      updated,
	})
}

// Remove deletes stored asset files by storage path or public URL. Every
// requested path must sit under the caller's own company prefix.
// DELETE /my/company/assets { "paths": [...] }
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusNotFound, "company not found")
		return
	}
	var b struct {
		Paths []string `json:"paths"`
	}
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil || len(b.Paths) == 0 {
		httpserver.Error(w, http.StatusBadRequest, "paths is required")
		return
	}
	for _, p := range b.Paths {
		if !ownedPath(company.ID, p) {
			httpserver.Error(w, http.StatusForbidden, "path does not belong to your company")
			return
		}
	}
	if err := h.store.Remove(r.Context(), b.Paths); err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to remove assets")
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"removed": len(b.Paths)})
}

// ownedPath reports whether a requested path, given as a bare storage path
// or a public URL, resolves under the company's storage prefix.
func ownedPath(companyID uuid.UUID, p string) bool {
	if i := strings.Index(p, "/assets/"); i >= 0 {
		p = p[i+len("/assets/"):]
	}
	clean := strings.TrimPrefix(path.Clean("/"+p), "/")
	return strings.HasPrefix(clean, companyID.String()+"/")
}
