package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-talent-directory/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// profileColumns is the shared select list for the core profile row.
const profileColumns = `
	p.id, p.user_id, COALESCE(u.full_name, ''), u.email, p.nim, p.prodi, p.angkatan,
	COALESCE(p.headline, ''), COALESCE(p.bio, ''), p.photo,
	p.is_public, p.is_active, p.views_count, p.created_at, p.updated_at`

type talentRepository struct {
	db *pgxpool.Pool
}

func NewTalentRepository(db *pgxpool.Pool) domain.TalentRepository {
	return &talentRepository{db: db}
}

func scanProfile(row pgx.Row) (*domain.TalentProfile, error) {
	var p domain.TalentProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.UserFullName, &p.Email, &p.NIM, &p.Prodi, &p.Angkatan,
		&p.Headline, &p.Bio, &p.Photo,
		&p.IsPublic, &p.IsActive, &p.ViewsCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	// Serialized lists are never null
	p.Skills = []domain.TalentSkill{}
	p.Experiences = []domain.Experience{}
	p.Projects = []domain.Project{}
	p.SocialLinks = []domain.SocialLink{}
	return &p, nil
}

func (r *talentRepository) GetByUserID(ctx context.Context, userID string) (*domain.TalentProfile, error) {
	query := `SELECT ` + profileColumns + `
		FROM talent_profiles p JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`

	p, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *talentRepository) GetByID(ctx context.Context, id int64) (*domain.TalentProfile, error) {
	query := `SELECT ` + profileColumns + `
		FROM talent_profiles p JOIN users u ON u.id = p.user_id
		WHERE p.id = $1`

	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	profiles := []domain.TalentProfile{*p}
	if err := r.hydrateLists(ctx, profiles); err != nil {
		return nil, err
	}
	if err := r.hydrateDetail(ctx, &profiles[0]); err != nil {
		return nil, err
	}
	return &profiles[0], nil
}

func (r *talentRepository) ListPublic(ctx context.Context, filter domain.SearchFilter) ([]domain.TalentProfile, error) {
	var (
		conds = []string{"p.is_public", "p.is_active"}
		args  []interface{}
	)

	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(`(
			u.full_name ILIKE $%d OR p.nim ILIKE $%d OR p.prodi ILIKE $%d OR EXISTS (
				SELECT 1 FROM talent_skills ts
				JOIN skills s ON s.id = ts.skill_id
				WHERE ts.talent_id = p.id AND s.name ILIKE $%d
			))`, n, n, n, n))
	}
	if filter.Prodi != "" {
		args = append(args, filter.Prodi)
		conds = append(conds, fmt.Sprintf("LOWER(p.prodi) = LOWER($%d)", len(args)))
	}
	if filter.Skill != "" {
		args = append(args, "%"+filter.Skill+"%")
		conds = append(conds, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM talent_skills ts
			JOIN skills s ON s.id = ts.skill_id
			WHERE ts.talent_id = p.id AND s.name ILIKE $%d
		)`, len(args)))
	}

	query := `SELECT ` + profileColumns + `
		FROM talent_profiles p JOIN users u ON u.id = p.user_id
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY p.created_at DESC`

	return r.queryProfiles(ctx, query, args...)
}

func (r *talentRepository) Latest(ctx context.Context, limit int) ([]domain.TalentProfile, error) {
	query := `SELECT ` + profileColumns + `
		FROM talent_profiles p JOIN users u ON u.id = p.user_id
		WHERE p.is_public AND p.is_active
		ORDER BY p.created_at DESC
		LIMIT $1`
	return r.queryProfiles(ctx, query, limit)
}

func (r *talentRepository) Top(ctx context.Context, limit int) ([]domain.TalentProfile, error) {
	query := `SELECT ` + profileColumns + `
		FROM talent_profiles p JOIN users u ON u.id = p.user_id
		WHERE p.is_public AND p.is_active
		ORDER BY
			(SELECT COUNT(*) FROM talent_skills ts WHERE ts.talent_id = p.id) DESC,
			(SELECT COUNT(*) FROM experiences e WHERE e.talent_id = p.id) DESC
		LIMIT $1`
	return r.queryProfiles(ctx, query, limit)
}

func (r *talentRepository) queryProfiles(ctx context.Context, query string, args ...interface{}) ([]domain.TalentProfile, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}
	defer rows.Close()

	profiles := []domain.TalentProfile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.hydrateLists(ctx, profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// hydrateLists loads skills and experiences for a batch of profiles with two
// queries instead of 2xN.
func (r *talentRepository) hydrateLists(ctx context.Context, profiles []domain.TalentProfile) error {
	if len(profiles) == 0 {
		return nil
	}

	ids := make([]int64, len(profiles))
	index := make(map[int64]*domain.TalentProfile, len(profiles))
	for i := range profiles {
		ids[i] = profiles[i].ID
		index[profiles[i].ID] = &profiles[i]
	}

	skillQuery := `
		SELECT ts.talent_id, ts.id, s.id, s.name, ts.level, ts.endorsement_count
		FROM talent_skills ts
		JOIN skills s ON s.id = ts.skill_id
		WHERE ts.talent_id = ANY($1)
		ORDER BY ts.id`
	rows, err := r.db.Query(ctx, skillQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var talentID int64
		var ts domain.TalentSkill
		if err := rows.Scan(&talentID, &ts.ID, &ts.Skill.ID, &ts.Skill.Name, &ts.Level, &ts.EndorsementCount); err != nil {
			return err
		}
		if p, ok := index[talentID]; ok {
			p.Skills = append(p.Skills, ts)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	expQuery := `
		SELECT e.talent_id, e.id, e.title, e.company, e.start_date, e.end_date, COALESCE(e.description, '')
		FROM experiences e
		WHERE e.talent_id = ANY($1)
		ORDER BY e.start_date DESC, e.id DESC`
	expRows, err := r.db.Query(ctx, expQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch experiences: %w", err)
	}
	defer expRows.Close()
	for expRows.Next() {
		var talentID int64
		var e domain.Experience
		var startDate time.Time
		var endDate *time.Time
		if err := expRows.Scan(&talentID, &e.ID, &e.Title, &e.Company, &startDate, &endDate, &e.Description); err != nil {
			return err
		}
		e.StartDate = startDate.Format("2006-01-02")
		if endDate != nil {
			ed := endDate.Format("2006-01-02")
			e.EndDate = &ed
		}
		if p, ok := index[talentID]; ok {
			p.Experiences = append(p.Experiences, e)
		}
	}
	return expRows.Err()
}

// hydrateDetail loads the detail-only relations (projects, social links).
func (r *talentRepository) hydrateDetail(ctx context.Context, p *domain.TalentProfile) error {
	projQuery := `
		SELECT id, title, COALESCE(description, ''), COALESCE(link_demo, ''), COALESCE(link_repo, '')
		FROM projects WHERE talent_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, projQuery, p.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch projects: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pr domain.Project
		if err := rows.Scan(&pr.ID, &pr.Title, &pr.Description, &pr.LinkDemo, &pr.LinkRepo); err != nil {
			return err
		}
		p.Projects = append(p.Projects, pr)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	linkQuery := `
		SELECT id, platform, COALESCE(label, ''), url_or_handle
		FROM social_links WHERE talent_id = $1 ORDER BY id`
	linkRows, err := r.db.Query(ctx, linkQuery, p.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch social links: %w", err)
	}
	defer linkRows.Close()
	for linkRows.Next() {
		var l domain.SocialLink
		if err := linkRows.Scan(&l.ID, &l.Platform, &l.Label, &l.URLOrHandle); err != nil {
			return err
		}
		p.SocialLinks = append(p.SocialLinks, l)
	}
	return linkRows.Err()
}

func (r *talentRepository) UpdateProfile(ctx context.Context, profile *domain.TalentProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE talent_profiles SET
			prodi = $1, angkatan = $2, headline = $3, bio = $4, updated_at = NOW()
		WHERE id = $5`
	if _, err := tx.Exec(ctx, query,
		profile.Prodi, profile.Angkatan, profile.Headline, profile.Bio, profile.ID,
	); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	// Full name lives on the account row
	if _, err := tx.Exec(ctx,
		`UPDATE users SET full_name = $1, updated_at = NOW() WHERE id = $2`,
		profile.UserFullName, profile.UserID,
	); err != nil {
		return fmt.Errorf("failed to update user name: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *talentRepository) UpdatePhoto(ctx context.Context, talentID int64, url string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE talent_profiles SET photo = $1, updated_at = NOW() WHERE id = $2`,
		url, talentID,
	)
	return err
}

func (r *talentRepository) RecordView(ctx context.Context, talentID int64, viewerIP string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE talent_profiles SET views_count = views_count + 1 WHERE id = $1`,
		talentID,
	); err != nil {
		return err
	}

	var ip interface{}
	if viewerIP != "" {
		ip = viewerIP
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO profile_views (talent_id, viewer_ip, viewed_at) VALUES ($1, $2, NOW())`,
		talentID, ip,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
