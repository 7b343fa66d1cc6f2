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

type experienceUsecase struct {
	talents     domain.TalentRepository
	experiences domain.ExperienceRepository
	validate    *validator.Validate
}

func NewExperienceUsecase(talents domain.TalentRepository, experiences domain.ExperienceRepository, validate *validator.Validate) domain.ExperienceUsecase {
	return &experienceUsecase{
		talents:     talents,
		experiences: experiences,
		validate:    validate,
	}
}

func (u *experienceUsecase) List(ctx context.Context) ([]domain.Experience, error) {
	talentID, err := resolveTalentID(ctx, u.talents)
	if err != nil {
		return nil, err
	}
	return u.experiences.ListByTalent(ctx, talentID)
}

func (u *experienceUsecase) Add(ctx context.Context, input domain.ExperienceInput) (*domain.Experience, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if input.EndDate != nil && *input.EndDate < input.StartDate {
		return nil, apperror.BadRequest("Tanggal Selesai: Tidak boleh sebelum tanggal mulai")
	}

	talentID, err := resolveTalentID(ctx, u.talents)
	if err != nil {
		return nil, err
	}

	exp := &domain.Experience{
		Title:       input.Title,
		Company:     input.Company,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: input.Description,
	}
	if err := u.experiences.Create(ctx, talentID, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (u *experienceUsecase) Remove(ctx context.Context, id int64) error {
	talentID, err := resolveTalentID(ctx, u.talents)
	if err != nil {
		return err
	}

	if err := u.experiences.Delete(ctx, talentID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Experience not found")
		}
		return err
	}
	return nil
}
