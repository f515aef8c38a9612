package content

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Suchethan021/careerhub-platform/internal/models"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
)

// recordingRepo counts replace calls; the embedded interface panics on
// anything else, which no saver path should reach.
type recordingRepo struct {
	repo.Repo
	sectionCalls int
	faqCalls     int
	sectionErr   error
}

func (r *recordingRepo) ReplaceSections(_ context.Context, _ uuid.UUID, sections []models.ContentSection) ([]models.ContentSection, error) {
	r.sectionCalls++
	if r.sectionErr != nil {
		return nil, r.sectionErr
	}
	return sections, nil
}

func (r *recordingRepo) ReplaceFAQs(_ context.Context, _ uuid.UUID, faqs []models.FAQ) ([]models.FAQ, error) {
	r.faqCalls++
	return faqs, nil
}

func TestSaverPersistsBothCollections(t *testing.T) {
	rec := &recordingRepo{}
	saver := NewSaver(rec, nil)

	res, err := saver.Save(context.Background(), uuid.New(),
		[]models.ContentSection{section(models.SectionAbout, 0)},
		[]models.FAQ{{ID: uuid.New(), Question: "q", OrderIndex: 0}})
	require.NoError(t, err)
	require.Equal(t, 1, rec.sectionCalls)
	require.Equal(t, 1, rec.faqCalls)
	require.Len(t, res.Sections, 1)
	require.Len(t, res.FAQs, 1)
}

func TestSaverDuplicateTypeSkipsStorage(t *testing.T) {
	rec := &recordingRepo{}
	saver := NewSaver(rec, nil)

	_, err := saver.Save(context.Background(), uuid.New(),
		[]models.ContentSection{
			section(models.SectionAbout, 0),
			section(models.SectionAbout, 1),
		}, nil)

	var dup *DuplicateSectionTypeError
	require.ErrorAs(t, err, &dup)
	require.Zero(t, rec.sectionCalls)
	require.Zero(t, rec.faqCalls)
}

func TestSaverSectionErrorStopsBeforeFAQs(t *testing.T) {
	boom := errors.New("db down")
	rec := &recordingRepo{sectionErr: boom}
	saver := NewSaver(rec, nil)

	_, err := saver.Save(context.Background(), uuid.New(),
		[]models.ContentSection{section(models.SectionAbout, 0)}, nil)
	require.ErrorIs(t, err, boom)
	require.Zero(t, rec.faqCalls)
}
