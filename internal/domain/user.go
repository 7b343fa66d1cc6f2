package domain

import (
	"context"
	"time"
)

const (
	RoleMahasiswa = "MAHASISWA"
	RoleAdmin     = "ADMIN"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,person_name,max=150"`
	NIM      string `json:"nim" validate:"required,max=20"`
	Prodi    string `json:"prodi" validate:"required,study_program,max=100"`
	Angkatan string `json:"angkatan" validate:"required,len=4,numeric"`
}

type UserRepository interface {
	// CreateWithProfile inserts the user and their talent profile in one
	// transaction so a failed profile insert never leaves an orphan account.
	CreateWithProfile(ctx context.Context, user *User, profile *TalentProfile) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (access, refresh string, err error)
	Refresh(ctx context.Context, refreshToken string) (access string, err error)
	CurrentUser(ctx context.Context, id string) (*User, error)
}
