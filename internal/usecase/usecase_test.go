package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-talent-directory/internal/domain"
	"go-talent-directory/internal/usecase"
	"go-talent-directory/pkg/auth"
	"go-talent-directory/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.TalentProfile) error {
	return m.Called(ctx, user, profile).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTalentRepo struct {
	mock.Mock
}

func (m *MockTalentRepo) GetByUserID(ctx context.Context, userID string) (*domain.TalentProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TalentProfile), args.Error(1)
}
func (m *MockTalentRepo) GetByID(ctx context.Context, id int64) (*domain.TalentProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TalentProfile), args.Error(1)
}
func (m *MockTalentRepo) ListPublic(ctx context.Context, filter domain.SearchFilter) ([]domain.TalentProfile, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TalentProfile), args.Error(1)
}
func (m *MockTalentRepo) Latest(ctx context.Context, limit int) ([]domain.TalentProfile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TalentProfile), args.Error(1)
}
func (m *MockTalentRepo) Top(ctx context.Context, limit int) ([]domain.TalentProfile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TalentProfile), args.Error(1)
}
func (m *MockTalentRepo) UpdateProfile(ctx context.Context, profile *domain.TalentProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockTalentRepo) UpdatePhoto(ctx context.Context, talentID int64, url string) error {
	return m.Called(ctx, talentID, url).Error(0)
}
func (m *MockTalentRepo) RecordView(ctx context.Context, talentID int64, viewerIP string) error {
	return m.Called(ctx, talentID, viewerIP).Error(0)
}

type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) Totals(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) ListByTalent(ctx context.Context, talentID int64) ([]domain.TalentSkill, error) {
	args := m.Called(ctx, talentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TalentSkill), args.Error(1)
}
func (m *MockSkillRepo) Add(ctx context.Context, talentID int64, skillName, level string) (*domain.TalentSkill, error) {
	args := m.Called(ctx, talentID, skillName, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TalentSkill), args.Error(1)
}
func (m *MockSkillRepo) Delete(ctx context.Context, talentID, id int64) error {
	return m.Called(ctx, talentID, id).Error(0)
}

func newTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour, 24*time.Hour)
}

func TestRegisterValidation(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, newTokens(), newValidator())

	t.Run("Should reject numeric characters in full name", func(t *testing.T) {
		_, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    "budi@example.com",
			Password: "password123",
			FullName: "Budi 123",
			NIM:      "11220001",
			Prodi:    "Sistem Informasi",
			Angkatan: "2022",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Nama Lengkap")
	})

	t.Run("Should reject non-4-digit angkatan", func(t *testing.T) {
		_, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    "budi@example.com",
			Password: "password123",
			FullName: "Budi Santoso",
			NIM:      "11220001",
			Prodi:    "Sistem Informasi",
			Angkatan: "22",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Angkatan")
	})

	t.Run("Should reject duplicate email", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(&domain.User{ID: "u1", Email: "taken@example.com"}, nil)

		_, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    "Taken@Example.com",
			Password: "password123",
			FullName: "Budi Santoso",
			NIM:      "11220001",
			Prodi:    "Sistem Informasi",
			Angkatan: "2022",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "sudah terdaftar")
	})

	t.Run("Should create user with MAHASISWA role and public profile", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, newTokens(), newValidator())

		repo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		repo.On("CreateWithProfile", mock.Anything, mock.AnythingOfType("*domain.User"), mock.AnythingOfType("*domain.TalentProfile")).
			Return(nil).
			Run(func(args mock.Arguments) {
				user := args.Get(1).(*domain.User)
				profile := args.Get(2).(*domain.TalentProfile)
				assert.Equal(t, domain.RoleMahasiswa, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.True(t, profile.IsPublic)
				assert.True(t, profile.IsActive)
				assert.Equal(t, user.ID, profile.UserID)
			})

		user, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    "New@Example.com",
			Password: "password123",
			FullName: "Budi Santoso",
			NIM:      "11220001",
			Prodi:    "Sistem Informasi",
			Angkatan: "2022",
		})
		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		repo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	stored := &domain.User{
		ID:           "u1",
		Email:        "ana@example.com",
		Role:         domain.RoleMahasiswa,
		PasswordHash: string(hash),
	}

	t.Run("Should issue token pair on correct credentials", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(stored, nil)
		uc := usecase.NewAuthUsecase(repo, newTokens(), newValidator())

		access, refresh, err := uc.Login(context.Background(), "Ana@Example.com", "rahasia123")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.NotEqual(t, access, refresh)
	})

	t.Run("Should fail on wrong password without revealing which field was wrong", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(stored, nil)
		uc := usecase.NewAuthUsecase(repo, newTokens(), newValidator())

		_, _, err := uc.Login(context.Background(), "ana@example.com", "wrong")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Email atau password salah")
	})

	t.Run("Should fail on unknown email with the same message", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)
		uc := usecase.NewAuthUsecase(repo, newTokens(), newValidator())

		_, _, err := uc.Login(context.Background(), "ghost@example.com", "whatever")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Email atau password salah")
	})
}

func TestRefresh(t *testing.T) {
	tokens := newTokens()
	stored := &domain.User{ID: "u1", Email: "ana@example.com", Role: domain.RoleMahasiswa}

	t.Run("Should mint a new access token from a refresh token", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByID", mock.Anything, "u1").Return(stored, nil)
		uc := usecase.NewAuthUsecase(repo, tokens, newValidator())

		pair, err := tokens.IssuePair("u1", "ana@example.com", domain.RoleMahasiswa)
		assert.NoError(t, err)

		access, err := uc.Refresh(context.Background(), pair.Refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
	})

	t.Run("Should reject an access token used as refresh token", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, tokens, newValidator())

		pair, err := tokens.IssuePair("u1", "ana@example.com", domain.RoleMahasiswa)
		assert.NoError(t, err)

		_, err = uc.Refresh(context.Background(), pair.Access)
		assert.Error(t, err)
	})

	t.Run("Should reject refresh for a deleted account", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByID", mock.Anything, "u1").Return(nil, nil)
		uc := usecase.NewAuthUsecase(repo, tokens, newValidator())

		pair, err := tokens.IssuePair("u1", "ana@example.com", domain.RoleMahasiswa)
		assert.NoError(t, err)

		_, err = uc.Refresh(context.Background(), pair.Refresh)
		assert.Error(t, err)
	})
}

func TestTalentDetail(t *testing.T) {
	t.Run("Should hide private profiles behind a 404", func(t *testing.T) {
		repo := new(MockTalentRepo)
		repo.On("GetByID", mock.Anything, int64(7)).
			Return(&domain.TalentProfile{ID: 7, IsPublic: false, IsActive: true}, nil)
		uc := usecase.NewTalentUsecase(repo, nil, nil, nil, newValidator(), 1<<20, time.Minute)

		_, err := uc.Detail(context.Background(), 7, "10.0.0.1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Should record the view and bump the counter", func(t *testing.T) {
		repo := new(MockTalentRepo)
		repo.On("GetByID", mock.Anything, int64(7)).
			Return(&domain.TalentProfile{ID: 7, IsPublic: true, IsActive: true, ViewsCount: 3}, nil)
		repo.On("RecordView", mock.Anything, int64(7), "10.0.0.1").Return(nil)
		uc := usecase.NewTalentUsecase(repo, nil, nil, nil, newValidator(), 1<<20, time.Minute)

		profile, err := uc.Detail(context.Background(), 7, "10.0.0.1")
		assert.NoError(t, err)
		assert.Equal(t, int64(4), profile.ViewsCount)
		repo.AssertExpectations(t)
	})

	t.Run("Should still return the profile when view tracking fails", func(t *testing.T) {
		repo := new(MockTalentRepo)
		repo.On("GetByID", mock.Anything, int64(7)).
			Return(&domain.TalentProfile{ID: 7, IsPublic: true, IsActive: true, ViewsCount: 3}, nil)
		repo.On("RecordView", mock.Anything, int64(7), "10.0.0.1").Return(assert.AnError)
		uc := usecase.NewTalentUsecase(repo, nil, nil, nil, newValidator(), 1<<20, time.Minute)

		profile, err := uc.Detail(context.Background(), 7, "10.0.0.1")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), profile.ViewsCount)
	})
}

func TestUpdateMyProfile(t *testing.T) {
	t.Run("Should fail safely when context has no user", func(t *testing.T) {
		repo := new(MockTalentRepo)
		uc := usecase.NewTalentUsecase(repo, nil, nil, nil, newValidator(), 1<<20, time.Minute)

		headline := "Backend enthusiast"
		_, err := uc.UpdateMyProfile(context.Background(), domain.ProfileUpdateInput{Headline: &headline})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})

	t.Run("Should patch only the provided fields", func(t *testing.T) {
		repo := new(MockTalentRepo)
		current := &domain.TalentProfile{ID: 3, UserID: "u1", UserFullName: "Ana Pertiwi", Prodi: "Sistem Informasi", Headline: "old"}
		repo.On("GetByUserID", mock.Anything, "u1").Return(current, nil)
		repo.On("UpdateProfile", mock.Anything, mock.AnythingOfType("*domain.TalentProfile")).
			Return(nil).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.TalentProfile)
				assert.Equal(t, "Backend enthusiast", p.Headline)
				assert.Equal(t, "Ana Pertiwi", p.UserFullName)
				assert.Equal(t, "Sistem Informasi", p.Prodi)
			})
		repo.On("GetByID", mock.Anything, int64(3)).Return(current, nil)
		uc := usecase.NewTalentUsecase(repo, nil, nil, nil, newValidator(), 1<<20, time.Minute)

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "u1")
		headline := "Backend enthusiast"
		_, err := uc.UpdateMyProfile(ctx, domain.ProfileUpdateInput{Headline: &headline})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should reject a full name with digits", func(t *testing.T) {
		repo := new(MockTalentRepo)
		uc := usecase.NewTalentUsecase(repo, nil, nil, nil, newValidator(), 1<<20, time.Minute)

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "u1")
		name := "Ana 99"
		_, err := uc.UpdateMyProfile(ctx, domain.ProfileUpdateInput{FullName: &name})
		assert.Error(t, err)
	})
}

func TestStatisticsFallback(t *testing.T) {
	// No Redis client wired: counts must come straight from the repository.
	repo := new(MockStatsRepo)
	repo.On("Totals", mock.Anything).Return(&domain.Statistics{TotalTalents: 12, TotalSkills: 30, TotalExperiences: 7}, nil)
	uc := usecase.NewTalentUsecase(new(MockTalentRepo), repo, nil, nil, newValidator(), 1<<20, time.Minute)

	stats, err := uc.Statistics(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalTalents)
	assert.Equal(t, int64(30), stats.TotalSkills)
}

func TestSkillUsecase(t *testing.T) {
	ownerCtx := context.WithValue(context.Background(), domain.KeyUserID, "u1")
	profile := &domain.TalentProfile{ID: 3, UserID: "u1"}

	t.Run("Should default the level to Beginner", func(t *testing.T) {
		talents := new(MockTalentRepo)
		talents.On("GetByUserID", mock.Anything, "u1").Return(profile, nil)
		skills := new(MockSkillRepo)
		skills.On("Add", mock.Anything, int64(3), "Golang", domain.LevelBeginner).
			Return(&domain.TalentSkill{ID: 1, Skill: domain.Skill{ID: 9, Name: "Golang"}, Level: domain.LevelBeginner}, nil)
		uc := usecase.NewSkillUsecase(talents, skills, newValidator())

		ts, err := uc.Add(ownerCtx, domain.SkillInput{SkillName: "Golang"})
		assert.NoError(t, err)
		assert.Equal(t, domain.LevelBeginner, ts.Level)
		skills.AssertExpectations(t)
	})

	t.Run("Should reject an unknown level", func(t *testing.T) {
		uc := usecase.NewSkillUsecase(new(MockTalentRepo), new(MockSkillRepo), newValidator())

		_, err := uc.Add(ownerCtx, domain.SkillInput{SkillName: "Golang", Level: "Guru"})
		assert.Error(t, err)
	})

	t.Run("Should map duplicate attach to a conflict", func(t *testing.T) {
		talents := new(MockTalentRepo)
		talents.On("GetByUserID", mock.Anything, "u1").Return(profile, nil)
		skills := new(MockSkillRepo)
		skills.On("Add", mock.Anything, int64(3), "Golang", domain.LevelExpert).
			Return(nil, domain.ErrDuplicateSkill)
		uc := usecase.NewSkillUsecase(talents, skills, newValidator())

		_, err := uc.Add(ownerCtx, domain.SkillInput{SkillName: "Golang", Level: domain.LevelExpert})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "sudah ditambahkan")
	})

	t.Run("Should map a talent-scoped miss to not found", func(t *testing.T) {
		talents := new(MockTalentRepo)
		talents.On("GetByUserID", mock.Anything, "u1").Return(profile, nil)
		skills := new(MockSkillRepo)
		skills.On("Delete", mock.Anything, int64(3), int64(42)).Return(domain.ErrNotFound)
		uc := usecase.NewSkillUsecase(talents, skills, newValidator())

		err := uc.Remove(ownerCtx, 42)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestExperienceValidation(t *testing.T) {
	ownerCtx := context.WithValue(context.Background(), domain.KeyUserID, "u1")

	t.Run("Should reject a future start date", func(t *testing.T) {
		uc := usecase.NewExperienceUsecase(new(MockTalentRepo), nil, newValidator())

		future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
		_, err := uc.Add(ownerCtx, domain.ExperienceInput{
			Title:     "Intern",
			Company:   "PT Maju",
			StartDate: future,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Tanggal Mulai")
	})

	t.Run("Should reject an end date before the start date", func(t *testing.T) {
		uc := usecase.NewExperienceUsecase(new(MockTalentRepo), nil, newValidator())

		end := "2023-01-01"
		_, err := uc.Add(ownerCtx, domain.ExperienceInput{
			Title:     "Intern",
			Company:   "PT Maju",
			StartDate: "2024-01-01",
			EndDate:   &end,
		})
		assert.Error(t, err)
	})

	t.Run("Should accept an ongoing engagement", func(t *testing.T) {
		talents := new(MockTalentRepo)
		talents.On("GetByUserID", mock.Anything, "u1").Return(&domain.TalentProfile{ID: 3, UserID: "u1"}, nil)
		expRepo := new(MockExperienceRepo)
		expRepo.On("Create", mock.Anything, int64(3), mock.AnythingOfType("*domain.Experience")).Return(nil)
		uc := usecase.NewExperienceUsecase(talents, expRepo, newValidator())

		exp, err := uc.Add(ownerCtx, domain.ExperienceInput{
			Title:     "Intern",
			Company:   "PT Maju",
			StartDate: "2024-01-01",
		})
		assert.NoError(t, err)
		assert.Nil(t, exp.EndDate)
	})
}

type MockExperienceRepo struct {
	mock.Mock
}

func (m *MockExperienceRepo) ListByTalent(ctx context.Context, talentID int64) ([]domain.Experience, error) {
	args := m.Called(ctx, talentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}
func (m *MockExperienceRepo) Create(ctx context.Context, talentID int64, exp *domain.Experience) error {
	return m.Called(ctx, talentID, exp).Error(0)
}
func (m *MockExperienceRepo) Delete(ctx context.Context, talentID, id int64) error {
	return m.Called(ctx, talentID, id).Error(0)
}
