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

type skillUsecase struct {
	talents  domain.TalentRepository
	skills   domain.SkillRepository
	validate *validator.Validate
}

func NewSkillUsecase(talents domain.TalentRepository, skills domain.SkillRepository, validate *validator.Validate) domain.SkillUsecase {
	return &skillUsecase{
		talents:  talents,
		skills:   skills,
		validate: validate,
	}
}

func (u *skillUsecase) List(ctx context.Context) ([]domain.TalentSkill, error) {
	talentID, err := resolveTalentID(ctx, u.talents)
	if err != nil {
		return nil, err
	}
	return u.skills.ListByTalent(ctx, talentID)
}

func (u *skillUsecase) Add(ctx context.Context, input domain.SkillInput) (*domain.TalentSkill, error) {
	input.SkillName = strings.TrimSpace(input.SkillName)
	if input.Level == "" {
		input.Level = domain.LevelBeginner
	}
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	talentID, err := resolveTalentID(ctx, u.talents)
	if err != nil {
		return nil, err
	}

	skill, err := u.skills.Add(ctx, talentID, input.SkillName, input.Level)
	if errors.Is(err, domain.ErrDuplicateSkill) {
		return nil, apperror.Conflict("Skill sudah ditambahkan")
	}
	if err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) Remove(ctx context.Context, id int64) error {
	talentID, err := resolveTalentID(ctx, u.talents)
	if err != nil {
		return err
	}

	if err := u.skills.Delete(ctx, talentID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Skill not found")
		}
		return err
	}
	return nil
}
