package postgres

import (
	"context"

	"go-talent-directory/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type socialLinkRepository struct {
	db *pgxpool.Pool
}

func NewSocialLinkRepository(db *pgxpool.Pool) domain.SocialLinkRepository {
	return &socialLinkRepository{db: db}
}

func (r *socialLinkRepository) ListByTalent(ctx context.Context, talentID int64) ([]domain.SocialLink, error) {
	query := `
		SELECT id, platform, COALESCE(label, ''), url_or_handle
		FROM social_links WHERE talent_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, talentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []domain.SocialLink{}
	for rows.Next() {
		var l domain.SocialLink
		if err := rows.Scan(&l.ID, &l.Platform, &l.Label, &l.URLOrHandle); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *socialLinkRepository) Create(ctx context.Context, talentID int64, link *domain.SocialLink) error {
	query := `
		INSERT INTO social_links (talent_id, platform, label, url_or_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		talentID, link.Platform, link.Label, link.URLOrHandle,
	).Scan(&link.ID)
}

func (r *socialLinkRepository) Delete(ctx context.Context, talentID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM social_links WHERE id = $1 AND talent_id = $2`,
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
