package usecase

import (
	"context"

	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/apperror"
)

// resolveTalentID maps the authenticated user in the request context to their
// talent profile ID. Every "me" sub-resource goes through this so a caller can
// only ever touch rows scoped to their own profile.
func resolveTalentID(ctx context.Context, talents domain.TalentRepository) (int64, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return 0, apperror.Unauthorized("User not authenticated")
	}

	profile, err := talents.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if profile == nil {
		return 0, apperror.NotFound("Talent profile not found")
	}
	return profile.ID, nil
}
