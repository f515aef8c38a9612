package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Suchethan021/careerhub-platform/internal/models"
)

// ---------------- Jobs ----------------

const jobCols = `id, company_id, title, description, location, job_type, experience_level, status,
	salary_min, salary_max, salary_currency, salary_period, salary_range_string,
	is_featured, created_by, updated_by, created_at, updated_at, deleted_at`

// JobPatch enumerates every mutable job column. A nil field is left
// unchanged; the Clear flags null optional column groups explicitly.
type JobPatch struct {
	Title             *string
	Description       *string
	Location          *string
	ClearLocation     bool
	JobType           *models.JobType
	ExperienceLevel   *models.ExperienceLevel
	Status            *models.JobStatus
	SalaryMin         *int64
	SalaryMax         *int64
	SalaryCurrency    *string
	SalaryPeriod      *models.SalaryPeriod
	SalaryRangeString *string
	ClearSalary       bool
	IsFeatured        *bool
	UpdatedBy         *uuid.UUID
}

func (p *pgRepo) CreateJob(ctx context.Context, j models.Job) (models.Job, error) {
	slog.DebugContext(ctx, "CreateJob", "company_id", j.CompanyID.String(), "title", j.Title)
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	row := p.pool.QueryRow(ctx, `
		INSERT INTO jobs (id, company_id, title, description, location, job_type, experience_level,
			status, salary_min, salary_max, salary_currency, salary_period, salary_range_string,
			is_featured, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+jobCols,
		j.ID, j.CompanyID, j.Title, j.Description, j.Location, j.JobType, j.ExperienceLevel,
		j.Status, j.SalaryMin, j.SalaryMax, j.SalaryCurrency, j.SalaryPeriod, j.SalaryRangeString,
		j.IsFeatured, j.CreatedBy, j.UpdatedBy)
	out, err := scanJob(row)
	if err != nil {
		slog.ErrorContext(ctx, "CreateJob failed", "err", err)
		return models.Job{}, err
	}
	return out, nil
}

func (p *pgRepo) ListJobsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error) {
	return p.listJobs(ctx, `
		SELECT `+jobCols+` FROM jobs
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC`, companyID)
}

func (p *pgRepo) ListOpenJobsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error) {
	return p.listJobs(ctx, `
		SELECT `+jobCols+` FROM jobs
		WHERE company_id = $1 AND status = 'open' AND deleted_at IS NULL
		ORDER BY created_at DESC`, companyID)
}

// ListOpenJobs returns the public board: open jobs of published companies.
func (p *pgRepo) ListOpenJobs(ctx context.Context) ([]models.Job, error) {
	return p.listJobs(ctx, `
		SELECT `+prefixCols("j.", jobCols)+` FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.status = 'open' AND j.deleted_at IS NULL AND c.is_published
		ORDER BY j.created_at DESC`)
}

func (p *pgRepo) UpdateJob(ctx context.Context, companyID, id uuid.UUID, patch JobPatch) (models.Job, error) {
	slog.DebugContext(ctx, "UpdateJob", "company_id", companyID.String(), "job_id", id.String())
	set := []string{"updated_at = now()"}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.ClearLocation {
		set = append(set, "location = NULL")
	} else if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.JobType != nil {
		add("job_type", *patch.JobType)
	}
	if patch.ExperienceLevel != nil {
		add("experience_level", *patch.ExperienceLevel)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.ClearSalary {
		set = append(set,
			"salary_min = NULL", "salary_max = NULL", "salary_currency = NULL",
			"salary_period = NULL", "salary_range_string = NULL")
	} else {
		if patch.SalaryMin != nil {
			add("salary_min", *patch.SalaryMin)
		}
		if patch.SalaryMax != nil {
			add("salary_max", *patch.SalaryMax)
		}
		if patch.SalaryCurrency != nil {
			add("salary_currency", *patch.SalaryCurrency)
		}
		if patch.SalaryPeriod != nil {
			add("salary_period", *patch.SalaryPeriod)
		}
		if patch.SalaryRangeString != nil {
			add("salary_range_string", *patch.SalaryRangeString)
		}
	}
	if patch.IsFeatured != nil {
		add("is_featured", *patch.IsFeatured)
	}
	if patch.UpdatedBy != nil {
		add("updated_by", *patch.UpdatedBy)
	}

	args = append(args, id, companyID)
	q := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL RETURNING %s`,
		joinSet(set), len(args)-1, len(args), jobCols)
	j, err := scanJob(p.pool.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Job{}, models.ErrJobNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "UpdateJob failed", "err", err)
		return models.Job{}, err
	}
	return j, nil
}

// SoftDeleteJob sets deleted_at; the row is retained and excluded from all
// default list queries.
func (p *pgRepo) SoftDeleteJob(ctx context.Context, companyID, id uuid.UUID) (models.Job, error) {
	slog.DebugContext(ctx, "SoftDeleteJob", "company_id", companyID.String(), "job_id", id.String())
	row := p.pool.QueryRow(ctx, `
		UPDATE jobs SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
		RETURNING `+jobCols, id, companyID)
	j, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Job{}, models.ErrJobNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "SoftDeleteJob failed", "err", err)
		return models.Job{}, err
	}
	return j, nil
}

func (p *pgRepo) listJobs(ctx context.Context, q string, args ...any) ([]models.Job, error) {
	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		slog.ErrorContext(ctx, "listJobs failed", "err", err)
		return nil, err
	}
	defer rows.Close()

	jobs := make([]models.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// prefixCols qualifies each column in a comma-separated list with the given
// table alias.
func prefixCols(alias, cols string) string {
	parts := strings.Split(cols, ",")
	for i, p := range parts {
		parts[i] = alias + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

func scanJob(row pgx.Row) (models.Job, error) {
	var j models.Job
	err := row.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Location,
		&j.JobType, &j.ExperienceLevel, &j.Status,
		&j.SalaryMin, &j.SalaryMax, &j.SalaryCurrency, &j.SalaryPeriod, &j.SalaryRangeString,
		&j.IsFeatured, &j.CreatedBy, &j.UpdatedBy, &j.CreatedAt, &j.UpdatedAt, &j.DeletedAt)
	return j, err
}
