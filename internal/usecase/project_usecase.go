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

type projectUsecase struct {
	talents  domain.TalentRepository
	projects domain.ProjectRepository
	validate *validator.Validate
}

func NewProjectUsecase(talents domain.TalentRepository, projects domain.ProjectRepository, validate *validator.Validate) domain.ProjectUsecase {
	return &projectUsecase{
		talents:  talents,
		projects: projects,
		validate: validate,
	}
}

func (u *projectUsecase) List(ctx context.Context) ([]domain.Project, error) {
	talentID, err := resolveTalentID(ctx, u.talents)
	if err != nil {
		return nil, err
	}
	return u.projects.ListByTalent(ctx, talentID)
}

func (u *projectUsecase) Add(ctx context.Context, input domain.ProjectInput) (*domain.Project, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	talentID, err := resolveTalentID(ctx, u.talents)
	if err != nil {
		return nil, err
	}

	project := &domain.Project{
		Title:       input.Title,
		Description: input.Description,
		LinkDemo:    input.LinkDemo,
		LinkRepo:    input.LinkRepo,
	}
	if err := u.projects.Create(ctx, talentID, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) Remove(ctx context.Context, id int64) error {
	talentID, err := resolveTalentID(ctx, u.talents)
	if err != nil {
		return err
	}

	if err := u.projects.Delete(ctx, talentID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Project not found")
		}
		return err
	}
	return nil
}
