package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Suchethan021/careerhub-platform/internal/models"
)

// ---------------- Companies ----------------

const companyCols = `id, name, slug, recruiter_id, logo_storage_path, banner_storage_path,
	primary_color, secondary_color, accent_color, font_family, mission_statement,
	culture_video_type, culture_video_youtube_url, culture_video_upload_path,
	is_published, created_by, updated_by, created_at, updated_at`

// CompanyPatch enumerates every mutable company column. A nil field is left
// unchanged; ClearCultureVideo nulls all three culture video columns.
type CompanyPatch struct {
	Name              *string
	Slug              *string
	LogoPath          *string
	BannerPath        *string
	PrimaryColor      *string
	SecondaryColor    *string
	AccentColor       *string
	FontFamily        *string
	MissionStatement  *string
	CultureVideoType  *models.VideoType
	CultureVideoURL   *string
	CultureVideoPath  *string
	ClearCultureVideo bool
	IsPublished       *bool
	UpdatedBy         *uuid.UUID
}

func (p *pgRepo) CreateCompany(ctx context.Context, c models.Company) (models.Company, error) {
	slog.DebugContext(ctx, "CreateCompany", "slug", c.Slug, "recruiter_id", c.RecruiterID.String())
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	row := p.pool.QueryRow(ctx, `
		INSERT INTO companies (id, name, slug, recruiter_id, logo_storage_path, banner_storage_path,
			primary_color, secondary_color, accent_color, font_family, mission_statement,
			culture_video_type, culture_video_youtube_url, culture_video_upload_path,
			is_published, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING `+companyCols,
		c.ID, c.Name, c.Slug, c.RecruiterID, c.LogoPath, c.BannerPath,
		c.PrimaryColor, c.SecondaryColor, c.AccentColor, c.FontFamily, c.MissionStatement,
		c.CultureVideoType, c.CultureVideoURL, c.CultureVideoPath,
		c.IsPublished, c.CreatedBy, c.UpdatedBy)
	out, err := scanCompany(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Company{}, models.ErrSlugTaken
		}
		slog.ErrorContext(ctx, "CreateCompany failed", "err", err)
		return models.Company{}, err
	}
	return out, nil
}

func (p *pgRepo) GetCompanyBySlug(ctx context.Context, slug string) (models.Company, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+companyCols+` FROM companies WHERE slug = $1`, slug)
	c, err := scanCompany(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Company{}, models.ErrCompanyNotFound
	}
	return c, err
}

// GetCompanyByRecruiter returns the recruiter's company. A recruiter owns
// exactly one company.
func (p *pgRepo) GetCompanyByRecruiter(ctx context.Context, recruiterID uuid.UUID) (models.Company, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+companyCols+` FROM companies WHERE recruiter_id = $1`, recruiterID)
	c, err := scanCompany(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Company{}, models.ErrCompanyNotFound
	}
	return c, err
}

func (p *pgRepo) UpdateCompany(ctx context.Context, id uuid.UUID, patch CompanyPatch) (models.Company, error) {
	slog.DebugContext(ctx, "UpdateCompany", "company_id", id.String())
	set := []string{"updated_at = now()"}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}
	if patch.LogoPath != nil {
		add("logo_storage_path", *patch.LogoPath)
	}
	if patch.BannerPath != nil {
		add("banner_storage_path", *patch.BannerPath)
	}
	if patch.PrimaryColor != nil {
		add("primary_color", *patch.PrimaryColor)
	}
	if patch.SecondaryColor != nil {
		add("secondary_color", *patch.SecondaryColor)
	}
	if patch.AccentColor != nil {
		add("accent_color", *patch.AccentColor)
	}
	if patch.FontFamily != nil {
		add("font_family", *patch.FontFamily)
	}
	if patch.MissionStatement != nil {
		add("mission_statement", *patch.MissionStatement)
	}
	if patch.ClearCultureVideo {
		set = append(set,
			"culture_video_type = NULL",
			"culture_video_youtube_url = NULL",
			"culture_video_upload_path = NULL")
	} else {
		if patch.CultureVideoType != nil {
			add("culture_video_type", *patch.CultureVideoType)
		}
		if patch.CultureVideoURL != nil {
			add("culture_video_youtube_url", *patch.CultureVideoURL)
		}
		if patch.CultureVideoPath != nil {
			add("culture_video_upload_path", *patch.CultureVideoPath)
		}
	}
	if patch.IsPublished != nil {
		add("is_published", *patch.IsPublished)
	}
	if patch.UpdatedBy != nil {
		add("updated_by", *patch.UpdatedBy)
	}

	args = append(args, id)
	q := fmt.Sprintf(`UPDATE companies SET %s WHERE id = $%d RETURNING %s`,
		joinSet(set), len(args), companyCols)
	c, err := scanCompany(p.pool.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Company{}, models.ErrCompanyNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return models.Company{}, models.ErrSlugTaken
		}
		slog.ErrorContext(ctx, "UpdateCompany failed", "err", err)
		return models.Company{}, err
	}
	return c, nil
}

func (p *pgRepo) ListPublishedCompanies(ctx context.Context) ([]models.Company, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT `+companyCols+` FROM companies
		WHERE is_published ORDER BY name`)
	if err != nil {
		slog.ErrorContext(ctx, "ListPublishedCompanies failed", "err", err)
		return nil, err
	}
	defer rows.Close()

	companies := make([]models.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func scanCompany(row pgx.Row) (models.Company, error) {
	var c models.Company
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.RecruiterID, &c.LogoPath, &c.BannerPath,
		&c.PrimaryColor, &c.SecondaryColor, &c.AccentColor, &c.FontFamily, &c.MissionStatement,
		&c.CultureVideoType, &c.CultureVideoURL, &c.CultureVideoPath,
		&c.IsPublished, &c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func joinSet(set []string) string {
	out := set[0]
	for _, s := range set[1:] {
		out += ", " + s
	}
	return out
}
