package content

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Suchethan021/careerhub-platform/internal/models"
)

// seqIDs hands out deterministic identifiers.
type seqIDs struct{ n byte }

func (g *seqIDs) NewID() uuid.UUID {
	g.n++
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", g.n))
}

func section(t models.SectionType, order int) models.ContentSection {
	return models.ContentSection{ID: uuid.New(), Type: t, OrderIndex: order, IsVisible: true}
}

func TestReconcileDropsDeletedAndRenumbers(t *testing.T) {
	companyID := uuid.New()
	now := time.Now()
	sections := []models.ContentSection{
		section(models.SectionAbout, 3),
		section(models.SectionMission, 7),
		{ID: uuid.New(), Type: models.SectionPerks, OrderIndex: 5, DeletedAt: &now},
		section(models.SectionTeam, 1),
	}

	res, err := NewReconciler(nil).Reconcile(companyID, sections, nil)
	require.NoError(t, err)
	require.Len(t, res.Sections, 3)

	// Sorted by prior index, then densely renumbered.
	require.Equal(t, models.SectionTeam, res.Sections[0].Type)
	require.Equal(t, models.SectionAbout, res.Sections[1].Type)
	require.Equal(t, models.SectionMission, res.Sections[2].Type)
	for i, s := range res.Sections {
		require.Equal(t, i, s.OrderIndex)
		require.Equal(t, companyID, s.CompanyID)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	companyID := uuid.New()
	sections := []models.ContentSection{
		section(models.SectionAbout, 2),
		section(models.SectionLife, 0),
		section(models.SectionPerks, 9),
	}
	faqs := []models.FAQ{
		{ID: uuid.New(), Question: "q1", OrderIndex: 4},
		{ID: uuid.New(), Question: "q2", OrderIndex: 1},
	}

	rec := NewReconciler(nil)
	first, err := rec.Reconcile(companyID, sections, faqs)
	require.NoError(t, err)

	second, err := rec.Reconcile(companyID, first.Sections, first.FAQs)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestReconcileAssignsIDsToNewRows(t *testing.T) {
	gen := &seqIDs{}
	existing := section(models.SectionAbout, 0)
	sections := []models.ContentSection{
		existing,
		{Type: models.SectionMission, OrderIndex: 1},
	}
	faqs := []models.FAQ{{Question: "q", OrderIndex: 0}}

	res, err := NewReconciler(gen).Reconcile(uuid.New(), sections, faqs)
	require.NoError(t, err)
	require.Equal(t, existing.ID, res.Sections[0].ID)
	require.Equal(t, uuid.MustParse("00000000-0000-0000-0000-000000000001"), res.Sections[1].ID)
	require.Equal(t, uuid.MustParse("00000000-0000-0000-0000-000000000002"), res.FAQs[0].ID)
}

func TestReconcileDuplicateTypeFails(t *testing.T) {
	sections := []models.ContentSection{
		section(models.SectionAbout, 0),
		section(models.SectionAbout, 1),
		section(models.SectionPerks, 2),
		section(models.SectionPerks, 3),
	}

	_, err := NewReconciler(nil).Reconcile(uuid.New(), sections, nil)
	var dup *DuplicateSectionTypeError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, []models.SectionType{models.SectionAbout, models.SectionPerks}, dup.Types)
	require.Contains(t, dup.Error(), "about, perks")
}

func TestReconcileDeletedDuplicateIsFine(t *testing.T) {
	now := time.Now()
	sections := []models.ContentSection{
		section(models.SectionAbout, 0),
		{ID: uuid.New(), Type: models.SectionAbout, OrderIndex: 1, DeletedAt: &now},
	}

	res, err := NewReconciler(nil).Reconcile(uuid.New(), sections, nil)
	require.NoError(t, err)
	require.Len(t, res.Sections, 1)
}

func TestMoveSectionSwapsNeighbours(t *testing.T) {
	sections := []models.ContentSection{
		section(models.SectionAbout, 0),
		section(models.SectionMission, 1),
		section(models.SectionPerks, 2),
	}

	moved := MoveSection(sections, models.SectionMission, -1)
	byType := indexByType(moved)
	require.Equal(t, 1, byType[models.SectionAbout])
	require.Equal(t, 0, byType[models.SectionMission])
	require.Equal(t, 2, byType[models.SectionPerks])

	// Input slice untouched.
	require.Equal(t, 0, sections[0].OrderIndex)
}

func TestMoveSectionBoundaryNoOp(t *testing.T) {
	sections := []models.ContentSection{
		section(models.SectionAbout, 0),
		section(models.SectionMission, 1),
	}

	require.Equal(t, sections, MoveSection(sections, models.SectionAbout, -1))
	require.Equal(t, sections, MoveSection(sections, models.SectionMission, 1))
	require.Equal(t, sections, MoveSection(sections, models.SectionTeam, 1))
}

func TestMoveSectionSkipsDeleted(t *testing.T) {
	now := time.Now()
	sections := []models.ContentSection{
		section(models.SectionAbout, 0),
		{ID: uuid.New(), Type: models.SectionMission, OrderIndex: 1, DeletedAt: &now},
		section(models.SectionPerks, 2),
	}

	moved := MoveSection(sections, models.SectionPerks, -1)
	byType := indexByType(moved)
	// Perks swaps with about, not with the deleted mission row.
	require.Equal(t, 2, byType[models.SectionAbout])
	require.Equal(t, 0, byType[models.SectionPerks])
}

func TestMoveFAQ(t *testing.T) {
	faqs := []models.FAQ{
		{ID: uuid.New(), Question: "a", OrderIndex: 0},
		{ID: uuid.New(), Question: "b", OrderIndex: 1},
		{ID: uuid.New(), Question: "c", OrderIndex: 2},
	}

	moved := MoveFAQ(faqs, 2, -1)
	require.Equal(t, "c", moved[1].Question)
	require.Equal(t, "b", moved[2].Question)
	for i, f := range moved {
		require.Equal(t, i, f.OrderIndex)
	}

	require.Equal(t, faqs, MoveFAQ(faqs, 0, -1))
	require.Equal(t, faqs, MoveFAQ(faqs, 2, 1))
	require.Equal(t, faqs, MoveFAQ(faqs, 5, -1))
}

func indexByType(sections []models.ContentSection) map[models.SectionType]int {
	out := make(map[models.SectionType]int, len(sections))
	for _, s := range sections {
		out[s.Type] = s.OrderIndex
	}
	return out
}
