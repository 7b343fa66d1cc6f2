package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/apperror"
	"go-talent-directory/pkg/imaging"
	"go-talent-directory/pkg/logger"
	"go-talent-directory/pkg/storage"
	"go-talent-directory/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

const (
	latestLimit = 5
	topLimit    = 2

	statsCacheKey = "talents:statistics"

	// Uploaded photos are downscaled so the largest side never exceeds this.
	photoMaxDim = 1024
)

type talentUsecase struct {
	repo      domain.TalentRepository
	statsRepo domain.StatisticsRepository
	photos    storage.PhotoStore
	cache     *redis.Client
	validate  *validator.Validate

	maxPhotoBytes int64
	statsCacheTTL time.Duration
}

func NewTalentUsecase(
	repo domain.TalentRepository,
	statsRepo domain.StatisticsRepository,
	photos storage.PhotoStore,
	cache *redis.Client,
	validate *validator.Validate,
	maxPhotoBytes int64,
	statsCacheTTL time.Duration,
) domain.TalentUsecase {
	return &talentUsecase{
		repo:          repo,
		statsRepo:     statsRepo,
		photos:        photos,
		cache:         cache,
		validate:      validate,
		maxPhotoBytes: maxPhotoBytes,
		statsCacheTTL: statsCacheTTL,
	}
}

func (u *talentUsecase) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.TalentProfile, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Prodi = strings.TrimSpace(filter.Prodi)
	filter.Skill = strings.TrimSpace(filter.Skill)
	return u.repo.ListPublic(ctx, filter)
}

func (u *talentUsecase) Latest(ctx context.Context) ([]domain.TalentProfile, error) {
	return u.repo.Latest(ctx, latestLimit)
}

func (u *talentUsecase) Top(ctx context.Context) ([]domain.TalentProfile, error) {
	return u.repo.Top(ctx, topLimit)
}

func (u *talentUsecase) Detail(ctx context.Context, id int64, viewerIP string) (*domain.TalentProfile, error) {
	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.IsPublic || !profile.IsActive {
		return nil, apperror.NotFound("Talent not found")
	}

	// View tracking must never block the response.
	if err := u.repo.RecordView(ctx, profile.ID, viewerIP); err != nil {
		logger.Log.Warn("failed to record profile view", "talent_id", profile.ID, "error", err)
	} else {
		profile.ViewsCount++
	}

	return profile, nil
}

func (u *talentUsecase) MyProfile(ctx context.Context) (*domain.TalentProfile, error) {
	profile, err := u.ownProfile(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.GetByID(ctx, profile.ID)
}

func (u *talentUsecase) UpdateMyProfile(ctx context.Context, input domain.ProfileUpdateInput) (*domain.TalentProfile, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	profile, err := u.ownProfile(ctx)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		profile.UserFullName = strings.TrimSpace(*input.FullName)
	}
	if input.Prodi != nil {
		profile.Prodi = *input.Prodi
	}
	if input.Angkatan != nil {
		profile.Angkatan = *input.Angkatan
	}
	if input.Headline != nil {
		profile.Headline = *input.Headline
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}

	if err := u.repo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return u.repo.GetByID(ctx, profile.ID)
}

func (u *talentUsecase) UpdateMyPhoto(ctx context.Context, data []byte) (*domain.TalentProfile, error) {
	if _, _, err := imaging.ValidatePhoto(data, u.maxPhotoBytes); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	profile, err := u.ownProfile(ctx)
	if err != nil {
		return nil, err
	}

	// Normalize every upload to a bounded JPEG before it hits storage.
	scaled, _, _, err := imaging.DecodeAndScale(data, photoMaxDim)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	key := fmt.Sprintf("photos/%d_%d.jpg", profile.ID, time.Now().Unix())
	url, err := u.photos.Save(ctx, key, "image/jpeg", scaled)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := u.repo.UpdatePhoto(ctx, profile.ID, url); err != nil {
		return nil, err
	}
	return u.repo.GetByID(ctx, profile.ID)
}

// Statistics serves the dashboard counters from Redis when available, falling
// back to a direct count query.
func (u *talentUsecase) Statistics(ctx context.Context) (*domain.Statistics, error) {
	if u.cache != nil {
		if raw, err := u.cache.Get(ctx, statsCacheKey).Result(); err == nil {
			var cached domain.Statistics
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	stats, err := u.statsRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := u.cache.Set(ctx, statsCacheKey, raw, u.statsCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache statistics", "error", err)
			}
		}
	}
	return stats, nil
}

// ownProfile resolves the authenticated user's core profile row from the
// request context.
func (u *talentUsecase) ownProfile(ctx context.Context) (*domain.TalentProfile, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Talent profile not found")
	}
	return profile, nil
}
