package postgres

import (
	"context"
	"fmt"
	"time"

	"go-talent-directory/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type experienceRepository struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) ListByTalent(ctx context.Context, talentID int64) ([]domain.Experience, error) {
	query := `
		SELECT id, title, company, start_date, end_date, COALESCE(description, '')
		FROM experiences
		WHERE talent_id = $1
		ORDER BY start_date DESC, id DESC`

	rows, err := r.db.Query(ctx, query, talentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := []domain.Experience{}
	for rows.Next() {
		var e domain.Experience
		var startDate time.Time
		var endDate *time.Time
		if err := rows.Scan(&e.ID, &e.Title, &e.Company, &startDate, &endDate, &e.Description); err != nil {
			return nil, err
		}
		e.StartDate = startDate.Format("2006-01-02")
		if endDate != nil {
			ed := endDate.Format("2006-01-02")
			e.EndDate = &ed
		}
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}

func (r *experienceRepository) Create(ctx context.Context, talentID int64, exp *domain.Experience) error {
	start, err := time.Parse("2006-01-02", exp.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	var end *time.Time
	if exp.EndDate != nil && *exp.EndDate != "" {
		t, err := time.Parse("2006-01-02", *exp.EndDate)
		if err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
		end = &t
	}

	query := `
		INSERT INTO experiences (talent_id, title, company, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		talentID, exp.Title, exp.Company, start, end, exp.Description,
	).Scan(&exp.ID)
}

func (r *experienceRepository) Delete(ctx context.Context, talentID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM experiences WHERE id = $1 AND talent_id = $2`,
		id, talentID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
