package postgres

import (
	"context"
	"fmt"

	"go-talent-directory/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepository struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) ListByTalent(ctx context.Context, talentID int64) ([]domain.TalentSkill, error) {
	query := `
		SELECT ts.id, s.id, s.name, ts.level, ts.endorsement_count
		FROM talent_skills ts
		JOIN skills s ON s.id = ts.skill_id
		WHERE ts.talent_id = $1
		ORDER BY ts.id`

	rows, err := r.db.Query(ctx, query, talentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.TalentSkill{}
	for rows.Next() {
		var ts domain.TalentSkill
		if err := rows.Scan(&ts.ID, &ts.Skill.ID, &ts.Skill.Name, &ts.Level, &ts.EndorsementCount); err != nil {
			return nil, err
		}
		skills = append(skills, ts)
	}
	return skills, rows.Err()
}

func (r *skillRepository) Add(ctx context.Context, talentID int64, skillName, level string) (*domain.TalentSkill, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Get-or-create the master skill row. The upsert keeps this race-free
	// under concurrent registration of the same skill name.
	var skillID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO skills (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`, skillName,
	).Scan(&skillID)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert skill: %w", err)
	}

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM talent_skills WHERE talent_id = $1 AND skill_id = $2)`,
		talentID, skillID,
	).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateSkill
	}

	ts := &domain.TalentSkill{
		Skill: domain.Skill{ID: skillID, Name: skillName},
		Level: level,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO talent_skills (talent_id, skill_id, level)
		VALUES ($1, $2, $3)
		RETURNING id, endorsement_count`,
		talentID, skillID, level,
	).Scan(&ts.ID, &ts.EndorsementCount)
	if err != nil {
		return nil, fmt.Errorf("failed to attach skill: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ts, nil
}

func (r *skillRepository) Delete(ctx context.Context, talentID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM talent_skills WHERE id = $1 AND talent_id = $2`,
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
