// internal/models/types.go
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	LevelEntry  ExperienceLevel = "entry"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelEntry, LevelMid, LevelSenior:
		return true
	}
	return false
}

// JobStatus carries no transition restrictions: the owning recruiter may
// set any status at any time.
type JobStatus string

const (
	StatusOpen   JobStatus = "open"
	StatusDraft  JobStatus = "draft"
	StatusClosed JobStatus = "closed"
)

func (s JobStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusDraft, StatusClosed:
		return true
	}
	return false
}

type SalaryPeriod string

const (
	PeriodMonthly SalaryPeriod = "monthly"
	PeriodYearly  SalaryPeriod = "yearly"
)

func (p SalaryPeriod) Valid() bool {
	return p == PeriodMonthly || p == PeriodYearly
}

type SectionType string

const (
	SectionAbout   SectionType = "about"
	SectionMission SectionType = "mission"
	SectionLife    SectionType = "life"
	SectionPerks   SectionType = "perks"
	SectionTeam    SectionType = "team"
)

func (t SectionType) Valid() bool {
	switch t {
	case SectionAbout, SectionMission, SectionLife, SectionPerks, SectionTeam:
		return true
	}
	return false
}

type VideoType string

const (
	VideoYouTube VideoType = "youtube"
	VideoUpload  VideoType = "upload"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenInvalid       = errors.New("token invalid or expired")
)

type User struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type LocalCredential struct {
	UserID       uuid.UUID
	Email        string
	PasswordHash string
}

type Session struct {
	UserID uuid.UUID `json:"user_id"`
	Expiry time.Time `json:"expiry"`
}

type Company struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	RecruiterID      uuid.UUID  `json:"recruiter_id"`
	LogoPath         *string    `json:"logo_storage_path"`
	BannerPath       *string    `json:"banner_storage_path"`
	PrimaryColor     string     `json:"primary_color"`
	SecondaryColor   string     `json:"secondary_color"`
	AccentColor      string     `json:"accent_color"`
	FontFamily       string     `json:"font_family"`
	MissionStatement *string    `json:"mission_statement"`
	CultureVideoType *VideoType `json:"culture_video_type"`
	CultureVideoURL  *string    `json:"culture_video_youtube_url"`
	CultureVideoPath *string    `json:"culture_video_upload_path"`
	IsPublished      bool       `json:"is_published"`
	CreatedBy        *uuid.UUID `json:"created_by"`
	UpdatedBy        *uuid.UUID `json:"updated_by"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type Job struct {
	ID                uuid.UUID       `json:"id"`
	CompanyID         uuid.UUID       `json:"company_id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Location          *string         `json:"location"`
	JobType           JobType         `json:"job_type"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	Status            JobStatus       `json:"status"`
	SalaryMin         *int64          `json:"salary_min"`
	SalaryMax         *int64          `json:"salary_max"`
	SalaryCurrency    *string         `json:"salary_currency"`
	SalaryPeriod      *SalaryPeriod   `json:"salary_period"`
	SalaryRangeString *string         `json:"salary_range_string"`
	IsFeatured        bool            `json:"is_featured"`
	CreatedBy         *uuid.UUID      `json:"created_by"`
	UpdatedBy         *uuid.UUID      `json:"updated_by"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         *time.Time      `json:"deleted_at"`
}

type ContentSection struct {
	ID         uuid.UUID   `json:"id"`
	CompanyID  uuid.UUID   `json:"company_id"`
	Type       SectionType `json:"type"`
	OrderIndex int         `json:"order_index"`
	IsVisible  bool        `json:"is_visible"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	ImageURLs  []string    `json:"image_urls"`
	CreatedBy  *uuid.UUID  `json:"created_by"`
	UpdatedBy  *uuid.UUID  `json:"updated_by"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	DeletedAt  *time.Time  `json:"deleted_at"`
}

type FAQ struct {
	ID         uuid.UUID  `json:"id"`
	CompanyID  uuid.UUID  `json:"company_id"`
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	OrderIndex int        `json:"order_index"`
	CreatedBy  *uuid.UUID `json:"created_by"`
	UpdatedBy  *uuid.UUID `json:"updated_by"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at"`
}
