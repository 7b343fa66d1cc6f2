package usecase

import (
	"context"
	"strings"

	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/apperror"
	"go-talent-directory/pkg/auth"
	"go-talent-directory/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validate,
	}
}

// Register creates the account together with its talent profile. Emails are
// stored lowercase so login is case-insensitive.
func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FullName = strings.TrimSpace(input.FullName)

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	existing, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Email sudah terdaftar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		FullName:     input.FullName,
		Role:         domain.RoleMahasiswa,
		PasswordHash: string(hash),
	}
	profile := &domain.TalentProfile{
		UserID:       user.ID,
		UserFullName: user.FullName,
		Email:        user.Email,
		NIM:          input.NIM,
		Prodi:        input.Prodi,
		Angkatan:     input.Angkatan,
		IsPublic:     true,
		IsActive:     true,
	}

	if err := u.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", "", apperror.BadRequest("Email dan password wajib diisi")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", apperror.Unauthorized("Email atau password salah")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", apperror.Unauthorized("Email atau password salah")
	}

	pair, err := u.tokens.IssuePair(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", apperror.Internal(err)
	}
	return pair.Access, pair.Refresh, nil
}

func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := u.tokens.Verify(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return "", apperror.Unauthorized("Invalid or expired refresh token")
	}

	// Re-read the account so a deactivated user cannot keep minting tokens.
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperror.Unauthorized("Account no longer exists")
	}

	access, err := u.tokens.IssueAccess(user.ID, user.Email, user.Role)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return access, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}
