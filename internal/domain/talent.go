package domain

import (
	"context"
	"time"
)

// Skill levels as exposed by the API.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelExpert       = "Expert"
)

// TalentProfile is the student record rendered and searched throughout the
// app. List endpoints hydrate Skills and Experiences; the detail endpoint
// additionally hydrates Projects and SocialLinks.
type TalentProfile struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"-"`
	UserFullName string    `json:"user_full_name"`
	Email        string    `json:"email"`
	NIM          string    `json:"nim"`
	Prodi        string    `json:"prodi"`
	Angkatan     string    `json:"angkatan"`
	Headline     string    `json:"headline"`
	Bio          string    `json:"bio"`
	Photo        *string   `json:"photo"`
	IsPublic     bool      `json:"is_public"`
	IsActive     bool      `json:"is_active"`
	ViewsCount   int64     `json:"views_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Skills      []TalentSkill `json:"skills"`
	Experiences []Experience  `json:"experiences"`
	Projects    []Project     `json:"projects"`
	SocialLinks []SocialLink  `json:"social_links"`
}

type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TalentSkill struct {
	ID               int64  `json:"id"`
	Skill            Skill  `json:"skill"`
	Level            string `json:"level"`
	EndorsementCount int64  `json:"endorsement_count"`
}

// Experience dates travel as YYYY-MM-DD strings; a nil EndDate means the
// engagement is ongoing.
type Experience struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description"`
}

type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	LinkDemo    string `json:"link_demo"`
	LinkRepo    string `json:"link_repo"`
}

type SocialLink struct {
	ID          int64  `json:"id"`
	Platform    string `json:"platform"`
	Label       string `json:"label"`
	URLOrHandle string `json:"url_or_handle"`
}

type Statistics struct {
	TotalTalents     int64 `json:"total_talents"`
	TotalSkills      int64 `json:"total_skills"`
	TotalExperiences int64 `json:"total_experiences"`
}

// SearchFilter narrows the public talent listing. Query matches name, NIM,
// study program and skill names; Prodi is an exact (case-insensitive) match;
// Skill matches skill names only.
type SearchFilter struct {
	Query string
	Prodi string
	Skill string
}

// ===== Inputs =====

// ProfileUpdateInput carries the PATCHable profile fields. Nil pointers mean
// "leave unchanged".
type ProfileUpdateInput struct {
	FullName *string `json:"user_full_name" validate:"omitempty,person_name,max=150"`
	Prodi    *string `json:"prodi" validate:"omitempty,study_program,max=100"`
	Angkatan *string `json:"angkatan" validate:"omitempty,len=4,numeric"`
	Headline *string `json:"headline" validate:"omitempty,max=150"`
	Bio      *string `json:"bio"`
}

type SkillInput struct {
	SkillName string `json:"skill_name" validate:"required,max=100"`
	Level     string `json:"level" validate:"omitempty,oneof=Beginner Intermediate Expert"`
}

type ExperienceInput struct {
	Title       string  `json:"title" validate:"required,max=150"`
	Company     string  `json:"company" validate:"required,max=150"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02,not_future_date"`
	EndDate     *string `json:"end_date" validate:"omitempty,datetime=2006-01-02,not_future_date"`
	Description string  `json:"description"`
}

type ProjectInput struct {
	Title       string `json:"title" validate:"required,max=150"`
	Description string `json:"description"`
	LinkDemo    string `json:"link_demo" validate:"omitempty,url"`
	LinkRepo    string `json:"link_repo" validate:"omitempty,url"`
}

type SocialLinkInput struct {
	Platform    string `json:"platform" validate:"required,oneof=email linkedin github instagram other"`
	Label       string `json:"label" validate:"max=100"`
	URLOrHandle string `json:"url_or_handle" validate:"required,max=255"`
}

// ===== Repositories =====

type TalentRepository interface {
	// GetByUserID returns the core profile row, nil when absent.
	GetByUserID(ctx context.Context, userID string) (*TalentProfile, error)
	// GetByID returns the fully hydrated profile, nil when absent.
	GetByID(ctx context.Context, id int64) (*TalentProfile, error)
	// ListPublic returns public+active profiles with skills and experiences.
	ListPublic(ctx context.Context, filter SearchFilter) ([]TalentProfile, error)
	Latest(ctx context.Context, limit int) ([]TalentProfile, error)
	// Top orders by skill count then experience count, descending.
	Top(ctx context.Context, limit int) ([]TalentProfile, error)
	UpdateProfile(ctx context.Context, profile *TalentProfile) error
	UpdatePhoto(ctx context.Context, talentID int64, url string) error
	RecordView(ctx context.Context, talentID int64, viewerIP string) error
}

type SkillRepository interface {
	ListByTalent(ctx context.Context, talentID int64) ([]TalentSkill, error)
	// Add get-or-creates the master skill row and attaches it to the talent.
	Add(ctx context.Context, talentID int64, skillName, level string) (*TalentSkill, error)
	Delete(ctx context.Context, talentID, id int64) error
}

type ExperienceRepository interface {
	ListByTalent(ctx context.Context, talentID int64) ([]Experience, error)
	Create(ctx context.Context, talentID int64, exp *Experience) error
	Delete(ctx context.Context, talentID, id int64) error
}

type ProjectRepository interface {
	ListByTalent(ctx context.Context, talentID int64) ([]Project, error)
	Create(ctx context.Context, talentID int64, project *Project) error
	Delete(ctx context.Context, talentID, id int64) error
}

type SocialLinkRepository interface {
	ListByTalent(ctx context.Context, talentID int64) ([]SocialLink, error)
	Create(ctx context.Context, talentID int64, link *SocialLink) error
	Delete(ctx context.Context, talentID, id int64) error
}

type StatisticsRepository interface {
	Totals(ctx context.Context) (*Statistics, error)
}

// ===== Usecases =====

type TalentUsecase interface {
	Search(ctx context.Context, filter SearchFilter) ([]TalentProfile, error)
	Latest(ctx context.Context) ([]TalentProfile, error)
	Top(ctx context.Context) ([]TalentProfile, error)
	// Detail also records the profile view (best effort).
	Detail(ctx context.Context, id int64, viewerIP string) (*TalentProfile, error)
	MyProfile(ctx context.Context) (*TalentProfile, error)
	UpdateMyProfile(ctx context.Context, input ProfileUpdateInput) (*TalentProfile, error)
	UpdateMyPhoto(ctx context.Context, data []byte) (*TalentProfile, error)
	Statistics(ctx context.Context) (*Statistics, error)
}

type SkillUsecase interface {
	List(ctx context.Context) ([]TalentSkill, error)
	Add(ctx context.Context, input SkillInput) (*TalentSkill, error)
	Remove(ctx context.Context, id int64) error
}

type ExperienceUsecase interface {
	List(ctx context.Context) ([]Experience, error)
	Add(ctx context.Context, input ExperienceInput) (*Experience, error)
	Remove(ctx context.Context, id int64) error
}

type ProjectUsecase interface {
	List(ctx context.Context) ([]Project, error)
	Add(ctx context.Context, input ProjectInput) (*Project, error)
	Remove(ctx context.Context, id int64) error
}

type SocialLinkUsecase interface {
	List(ctx context.Context) ([]SocialLink, error)
	Add(ctx context.Context, input SocialLinkInput) (*SocialLink, error)
	Remove(ctx context.Context, id int64) error
}
