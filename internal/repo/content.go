package repo

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Suchethan021/careerhub-platform/internal/models"
)

// ---------------- Content sections & FAQs ----------------

const sectionCols = `id, company_id, type, order_index, is_visible, title, content, image_urls,
	created_by, updated_by, created_at, updated_at, deleted_at`

const faqCols = `id, company_id, question, answer, order_index,
	created_by, updated_by, created_at, updated_at, deleted_at`

func (p *pgRepo) ListSectionsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.ContentSection, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT `+sectionCols+` FROM content_sections
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY order_index`, companyID)
	if err != nil {
		slog.ErrorContext(ctx, "ListSectionsByCompany failed", "err", err)
		return nil, err
	}
	defer rows.Close()
	return collectSections(rows)
}

func (p *pgRepo) ListFAQsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.FAQ, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT `+faqCols+` FROM faqs
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY order_index`, companyID)
	if err != nil {
		slog.ErrorContext(ctx, "ListFAQsByCompany failed", "err", err)
		return nil, err
	}
	defer rows.Close()
	return collectFAQs(rows)
}

// ReplaceSections soft-deletes the company's sections that are no longer in
// the set, then upserts the given active ones, as one transaction. The prune
// must run first: a save may drop one section of a type and add a fresh row
// of the same type, and the one-live-section-per-type index rejects the new
// row while the old one is still live. Returns the server-confirmed rows in
// order.
func (p *pgRepo) ReplaceSections(ctx context.Context, companyID uuid.UUID, sections []models.ContentSection) ([]models.ContentSection, error) {
	slog.DebugContext(ctx, "ReplaceSections", "company_id", companyID.String(), "count", len(sections))
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	keep := make([]uuid.UUID, 0, len(sections))
	for _, s := range sections {
		keep = append(keep, s.ID)
	}
	_, err = tx.Exec(ctx, `
		UPDATE content_sections SET deleted_at = now(), updated_at = now()
		WHERE company_id = $1 AND deleted_at IS NULL AND NOT (id = ANY($2))`,
		companyID, keep)
	if err != nil {
		slog.ErrorContext(ctx, "ReplaceSections prune failed", "err", err)
		return nil, err
	}

	for _, s := range sections {
		_, err := tx.Exec(ctx, `
			INSERT INTO content_sections (id, company_id, type, order_index, is_visible, title, content, image_urls, created_by, updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE SET
				type = EXCLUDED.type,
				order_index = EXCLUDED.order_index,
				is_visible = EXCLUDED.is_visible,
				title = EXCLUDED.title,
				content = EXCLUDED.content,
				image_urls = EXCLUDED.image_urls,
				updated_by = EXCLUDED.updated_by,
				updated_at = now(),
				deleted_at = NULL`,
			s.ID, companyID, s.Type, s.OrderIndex, s.IsVisible, s.Title, s.Content, s.ImageURLs, s.CreatedBy, s.UpdatedBy)
		if err != nil {
			slog.ErrorContext(ctx, "ReplaceSections upsert failed", "err", err)
			return nil, err
		}
	}

	rows, err := tx.Query(ctx, `
		SELECT `+sectionCols+` FROM content_sections
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY order_index`, companyID)
	if err != nil {
		return nil, err
	}
	out, err := collectSections(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceFAQs mirrors ReplaceSections for the faqs table.
func (p *pgRepo) ReplaceFAQs(ctx context.Context, companyID uuid.UUID, faqs []models.FAQ) ([]models.FAQ, error) {
	slog.DebugContext(ctx, "ReplaceFAQs", "company_id", companyID.String(), "count", len(faqs))
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	keep := make([]uuid.UUID, 0, len(faqs))
	for _, f := range faqs {
		keep = append(keep, f.ID)
		_, err := tx.Exec(ctx, `
			INSERT INTO faqs (id, company_id, question, answer, order_index, created_by, updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				question = EXCLUDED.question,
				answer = EXCLUDED.answer,
				order_index = EXCLUDED.order_index,
				updated_by = EXCLUDED.updated_by,
				updated_at = now(),
				deleted_at = NULL`,
			f.ID, companyID, f.Question, f.Answer, f.OrderIndex, f.CreatedBy, f.UpdatedBy)
		if err != nil {
			slog.ErrorContext(ctx, "ReplaceFAQs upsert failed", "err", err)
			return nil, err
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE faqs SET deleted_at = now(), updated_at = now()
		WHERE company_id = $1 AND deleted_at IS NULL AND NOT (id = ANY($2))`,
		companyID, keep)
	if err != nil {
		slog.ErrorContext(ctx, "ReplaceFAQs prune failed", "err", err)
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT `+faqCols+` FROM faqs
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY order_index`, companyID)
	if err != nil {
		return nil, err
	}
	out, err := collectFAQs(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func collectSections(rows pgx.Rows) ([]models.ContentSection, error) {
	sections := make([]models.ContentSection, 0)
	for rows.Next() {
		var s models.ContentSection
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Type, &s.OrderIndex, &s.IsVisible,
			&s.Title, &s.Content, &s.ImageURLs,
			&s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func collectFAQs(rows pgx.Rows) ([]models.FAQ, error) {
	faqs := make([]models.FAQ, 0)
	for rows.Next() {
		var f models.FAQ
		if err := rows.Scan(&f.ID, &f.CompanyID, &f.Question, &f.Answer, &f.OrderIndex,
			&f.CreatedBy, &f.UpdatedBy, &f.CreatedAt, &f.UpdatedAt, &f.DeletedAt); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}
