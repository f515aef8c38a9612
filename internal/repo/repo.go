// internal/repo/repo.go
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Suchethan021/careerhub-platform/internal/models"
)

// Token purposes for one-time email tokens (stored hashed at rest).
const (
	TokenPurposeReset   = "reset"
	TokenPurposeConfirm = "confirm"
)

// Repo defines the methods the rest of the app uses.
// Soft-deleted rows are filtered here, in one place: no read path outside
// this package ever sees a row with deleted_at set.
type Repo interface {
	// Users & credentials
	CreateUser(ctx context.Context, email, passwordHash string) (models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	GetCredentialByEmail(ctx context.Context, email string) (models.LocalCredential, models.User, error)
	UpdatePasswordHash(ctx context.Context, uid uuid.UUID, phc string) error
	ConfirmEmail(ctx context.Context, uid uuid.UUID) (models.User, error)
	CreateEmailToken(ctx context.Context, uid uuid.UUID, purpose, tokenHash string, expiry time.Time) error
	ConsumeEmailToken(ctx context.Context, purpose, tokenHash string) (uuid.UUID, error)

	// Companies
	CreateCompany(ctx context.Context, c models.Company) (models.Company, error)
	GetCompanyBySlug(ctx context.Context, slug string) (models.Company, error)
	GetCompanyByRecruiter(ctx context.Context, recruiterID uuid.UUID) (models.Company, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, patch CompanyPatch) (models.Company, error)
	ListPublishedCompanies(ctx context.Context) ([]models.Company, error)

	// Jobs
	CreateJob(ctx context.Context, j models.Job) (models.Job, error)
	ListJobsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error)
	ListOpenJobsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error)
	ListOpenJobs(ctx context.Context) ([]models.Job, error)
	UpdateJob(ctx context.Context, companyID, id uuid.UUID, patch JobPatch) (models.Job, error)
	SoftDeleteJob(ctx context.Context, companyID, id uuid.UUID) (models.Job, error)

	// Content sections & FAQs
	ListSectionsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.ContentSection, error)
	ListFAQsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.FAQ, error)
	ReplaceSections(ctx context.Context, companyID uuid.UUID, sections []models.ContentSection) ([]models.ContentSection, error)
	ReplaceFAQs(ctx context.Context, companyID uuid.UUID, faqs []models.FAQ) ([]models.FAQ, error)
}

// db is the slice of *pgxpool.Pool the queries need.
type db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgRepo wraps a pgx connection pool.
type pgRepo struct{ pool db }

func New(pool *pgxpool.Pool) Repo { return &pgRepo{pool: pool} }

// ---------------- Users & credentials ----------------

func (p *pgRepo) CreateUser(ctx context.Context, email, passwordHash string) (models.User, error) {
	row := p.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, lower($2), $3)
		RETURNING id, email, email_confirmed_at, created_at, updated_at`,
		uuid.New(), email, passwordHash)
	u, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, models.ErrEmailTaken
		}
		return models.User{}, err
	}
	return u, nil
}

func (p *pgRepo) GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT id, email, email_confirmed_at, created_at, updated_at
		FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	return u, err
}

func (p *pgRepo) GetCredentialByEmail(ctx context.Context, email string) (models.LocalCredential, models.User, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, email_confirmed_at, created_at, updated_at
		FROM users WHERE email = lower($1)`, email)
	var (
		lc models.LocalCredential
		u  models.User
	)
	err := row.Scan(&u.ID, &u.Email, &lc.PasswordHash, &u.EmailConfirmedAt, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.LocalCredential{}, models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.LocalCredential{}, models.User{}, err
	}
	lc.UserID = u.ID
	lc.Email = u.Email
	return lc, u, nil
}

func (p *pgRepo) UpdatePasswordHash(ctx context.Context, uid uuid.UUID, phc string) error {
	tag, err := p.pool.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, uid, phc)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (p *pgRepo) ConfirmEmail(ctx context.Context, uid uuid.UUID) (models.User, error) {
	row := p.pool.QueryRow(ctx, `
		UPDATE users SET email_confirmed_at = COALESCE(email_confirmed_at, now()), updated_at = now()
		WHERE id = $1
		RETURNING id, email, email_confirmed_at, created_at, updated_at`, uid)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	return u, err
}

func (p *pgRepo) CreateEmailToken(ctx context.Context, uid uuid.UUID, purpose, tokenHash string, expiry time.Time) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO email_tokens (user_id, purpose, token_hash, expires_at)
		VALUES ($1, $2, $3, $4)`, uid, purpose, tokenHash, expiry)
	return err
}

// ConsumeEmailToken deletes the token row so it can only be used once.
func (p *pgRepo) ConsumeEmailToken(ctx context.Context, purpose, tokenHash string) (uuid.UUID, error) {
	var uid uuid.UUID
	err := p.pool.QueryRow(ctx, `
		DELETE FROM email_tokens
		WHERE purpose = $1 AND token_hash = $2 AND expires_at > now()
		RETURNING user_id`, purpose, tokenHash).Scan(&uid)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, models.ErrTokenInvalid
	}
	if err != nil {
		return uuid.Nil, err
	}
	return uid, nil
}

// ---------------- Helpers ----------------

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.EmailConfirmedAt, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
