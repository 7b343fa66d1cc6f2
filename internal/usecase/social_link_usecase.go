package usecase

import (
	"context"
	"errors"
	"strings"

	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/apperror"
	"go-talent-directory/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type socialLinkUsecase struct {
	talents  domain.TalentRepository
	links    domain.SocialLinkRepository
	validate *validator.Validate
}

func NewSocialLinkUsecase(talents domain.TalentRepository, links domain.SocialLinkRepository, validate *validator.Validate) domain.SocialLinkUsecase {
	return &socialLinkUsecase{
		talents:  talents,
		links:    links,
		validate: validate,
	}
}

func (u *socialLinkUsecase) List(ctx context.Context) ([]domain.SocialLink, error) {
	talentID, err := resolveTalentID(ctx, u.talents)
	if err != nil {
		return nil, err
	}
	return u.links.ListByTalent(ctx, talentID)
}

func (u *socialLinkUsecase) Add(ctx context.Context, input domain.SocialLinkInput) (*domain.SocialLink, error) {
	input.URLOrHandle = strings.TrimSpace(input.URLOrHandle)
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	talentID, err := resolveTalentID(ctx, u.talents)
	if err != nil {
		return nil, err
	}

	link := &domain.SocialLink{
		Platform:    input.Platform,
		Label:       input.Label,
		URLOrHandle: input.URLOrHandle,
	}
	if err := u.links.Create(ctx, talentID, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (u *socialLinkUsecase) Remove(ctx context.Context, id int64) error {
	talentID, err := resolveTalentID(ctx, u.talents)
	if err != nil {
		return err
	}

	if err := u.links.Delete(ctx, talentID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Social link not found")
		}
		return err
	}
	return nil
}
