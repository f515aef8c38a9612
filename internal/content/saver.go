package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/Suchethan021/careerhub-platform/internal/models"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
)

// Saver runs reconciliation and, only if it validates, submits both
// corrected collections to storage. On any failure the caller's in-memory
// state is untouched so the user can edit and resave.
type Saver struct {
	repo repo.Repo
	rec  *Reconciler
}

func NewSaver(r repo.Repo, rec *Reconciler) *Saver {
	if rec == nil {
		rec = NewReconciler(nil)
	}
	return &Saver{repo: r, rec: rec}
}

// Save returns the server-confirmed rows, including server-assigned
// timestamps. Validation failures reach the caller before any storage call.
func (s *Saver) Save(ctx context.Context, companyID uuid.UUID, sections []models.ContentSection, faqs []models.FAQ) (Result, error) {
	res, err := s.rec.Reconcile(companyID, sections, faqs)
	if err != nil {
		return Result{}, err
	}
	savedSections, err := s.repo.ReplaceSections(ctx, companyID, res.Sections)
	if err != nil {
		return Result{}, err
	}
	savedFAQs, err := s.repo.ReplaceFAQs(ctx, companyID, res.FAQs)
	if err != nil {
		return Result{}, err
	}
	return Result{Sections: savedSections, FAQs: savedFAQs}, nil
}
