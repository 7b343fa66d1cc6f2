package postgres

import (
	"context"

	"go-talent-directory/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type projectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) ListByTalent(ctx context.Context, talentID int64) ([]domain.Project, error) {
	query := `
		SELECT id, title, COALESCE(description, ''), COALESCE(link_demo, ''), COALESCE(link_repo, '')
		FROM projects WHERE talent_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, talentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.LinkDemo, &p.LinkRepo); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) Create(ctx context.Context, talentID int64, project *domain.Project) error {
	query := `
		INSERT INTO projects (talent_id, title, description, link_demo, link_repo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		talentID, project.Title, project.Description, project.LinkDemo, project.LinkRepo,
	).Scan(&project.ID)
}

func (r *projectRepository) Delete(ctx context.Context, talentID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND talent_id = $2`,
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
