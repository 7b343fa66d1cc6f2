package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-talent-directory/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.TalentProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	userQuery := `
		INSERT INTO users (id, email, full_name, role, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`
	if _, err := tx.Exec(ctx, userQuery,
		user.ID, user.Email, user.FullName, user.Role, user.PasswordHash,
	); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	profileQuery := `
		INSERT INTO talent_profiles (user_id, nim, prodi, angkatan, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id`
	if err := tx.QueryRow(ctx, profileQuery,
		user.ID, profile.NIM, profile.Prodi, profile.Angkatan,
	).Scan(&profile.ID); err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, COALESCE(full_name, ''), role, password_hash, created_at, updated_at
		FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, COALESCE(full_name, ''), role, password_hash, created_at, updated_at
		FROM users WHERE LOWER(email) = LOWER($1)`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
