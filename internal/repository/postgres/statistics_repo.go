package postgres

import (
	"context"
	"fmt"

	"go-talent-directory/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type statisticsRepository struct {
	db *pgxpool.Pool
}

func NewStatisticsRepository(db *pgxpool.Pool) domain.StatisticsRepository {
	return &statisticsRepository{db: db}
}

// Totals counts public+active talents, the distinct skills they hold, and
// their experiences in one round trip.
func (r *statisticsRepository) Totals(ctx context.Context) (*domain.Statistics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM talent_profiles p WHERE p.is_public AND p.is_active),
			(SELECT COUNT(DISTINCT ts.skill_id)
				FROM talent_skills ts
				JOIN talent_profiles p ON p.id = ts.talent_id
				WHERE p.is_public AND p.is_active),
			(SELECT COUNT(*)
				FROM experiences e
				JOIN talent_profiles p ON p.id = e.talent_id
				WHERE p.is_public AND p.is_active)`

	var s domain.Statistics
	if err := r.db.QueryRow(ctx, query).Scan(&s.TotalTalents, &s.TotalSkills, &s.TotalExperiences); err != nil {
		return nil, fmt.Errorf("failed to fetch statistics: %w", err)
	}
	return &s, nil
}
