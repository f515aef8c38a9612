// Package content reconciles a recruiter's edited view of a company's
// content sections and FAQs against what is persisted: it drops rows marked
// deleted, renumbers ordering densely, validates the one-section-per-type
// invariant and assigns identifiers to new rows before the upsert.
package content

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Suchethan021/careerhub-platform/internal/models"
)

// IDGenerator supplies identifiers for rows that have none yet. Injected so
// tests can make assignment deterministic.
type IDGenerator interface {
	NewID() uuid.UUID
}

// UUIDGenerator is the production IDGenerator: random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() uuid.UUID { return uuid.New() }

// DuplicateSectionTypeError names every section type that appears more than
// once among the active sections. Nothing is written when it is returned.
type DuplicateSectionTypeError struct {
	Types []models.SectionType
}

func (e *DuplicateSectionTypeError) Error() string {
	names := make([]string, len(e.Types))
	for i, t := range e.Types {
		names[i] = string(t)
	}
	return fmt.Sprintf("each section type can only appear once; duplicates: %s", strings.Join(names, ", "))
}

// Result is the corrected write set: active rows only, densely ordered,
// every row carrying an identifier.
type Result struct {
	Sections []models.ContentSection
	FAQs     []models.FAQ
}

type Reconciler struct {
	ids IDGenerator
}

func NewReconciler(ids IDGenerator) *Reconciler {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Reconciler{ids: ids}
}

// Reconcile validates and renumbers the edited sections and FAQs.
// Rows with a deletion marker are discarded from the write set; the
// remaining sections keep their relative order (stable sort on the existing
// index) and receive dense zero-based indices, so reconciling an
// already-consistent set is a no-op. A second active section of the same
// type fails the whole call with DuplicateSectionTypeError.
func (r *Reconciler) Reconcile(companyID uuid.UUID, sections []models.ContentSection, faqs []models.FAQ) (Result, error) {
	active := make([]models.ContentSection, 0, len(sections))
	for _, s := range sections {
		if s.DeletedAt == nil {
			active = append(active, s)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].OrderIndex < active[j].OrderIndex
	})
	for i := range active {
		active[i].OrderIndex = i
		active[i].CompanyID = companyID
		if active[i].ID == uuid.Nil {
			active[i].ID = r.ids.NewID()
		}
	}

	if dups := duplicateTypes(active); len(dups) > 0 {
		return Result{}, &DuplicateSectionTypeError{Types: dups}
	}

	activeFAQs := make([]models.FAQ, 0, len(faqs))
	for _, f := range faqs {
		if f.DeletedAt == nil {
			activeFAQs = append(activeFAQs, f)
		}
	}
	sort.SliceStable(activeFAQs, func(i, j int) bool {
		return activeFAQs[i].OrderIndex < activeFAQs[j].OrderIndex
	})
	for i := range activeFAQs {
		activeFAQs[i].OrderIndex = i
		activeFAQs[i].CompanyID = companyID
		if activeFAQs[i].ID == uuid.Nil {
			activeFAQs[i].ID = r.ids.NewID()
		}
	}

	return Result{Sections: active, FAQs: activeFAQs}, nil
}

func duplicateTypes(sections []models.ContentSection) []models.SectionType {
	counts := make(map[models.SectionType]int)
	order := make([]models.SectionType, 0)
	for _, s := range sections {
		if counts[s.Type] == 0 {
			order = append(order, s.Type)
		}
		counts[s.Type]++
	}
	dups := make([]models.SectionType, 0)
	for _, t := range order {
		if counts[t] > 1 {
			dups = append(dups, t)
		}
	}
	return dups
}

// MoveSection swaps the order index of the section of the given type with
// its immediate neighbour in the active, sorted sequence. Moving the first
// section up or the last down is a no-op. dir is -1 (up) or +1 (down).
func MoveSection(sections []models.ContentSection, t models.SectionType, dir int) []models.ContentSection {
	active := make([]models.ContentSection, 0, len(sections))
	for _, s := range sections {
		if s.DeletedAt == nil {
			active = append(active, s)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].OrderIndex < active[j].OrderIndex
	})

	idx := -1
	for i, s := range active {
		if s.Type == t {
			idx = i
			break
		}
	}
	if idx == -1 {
		return sections
	}
	target := idx + dir
	if target < 0 || target >= len(active) {
		return sections
	}
	active[idx].OrderIndex, active[target].OrderIndex = active[target].OrderIndex, active[idx].OrderIndex

	// Map the swapped indices back onto the original slice.
	out := make([]models.ContentSection, len(sections))
	copy(out, sections)
	for i, s := range out {
		for _, a := range active {
			if a.ID == s.ID {
				out[i].OrderIndex = a.OrderIndex
			}
		}
	}
	return out
}

// MoveFAQ moves the FAQ at index one position up or down and renumbers the
// whole list densely. Out-of-range moves are no-ops.
func MoveFAQ(faqs []models.FAQ, index, dir int) []models.FAQ {
	target := index + dir
	if index < 0 || index >= len(faqs) || target < 0 || target >= len(faqs) {
		return faqs
	}
	out := make([]models.FAQ, len(faqs))
	copy(out, faqs)
	out[index], out[target] = out[target], out[index]
	for i := range out {
		out[i].OrderIndex = i
	}
	return out
}
