package impl

import (
	"context"
	"log/slog"

	deliverycontext "skillhub/internal/delivery/context"
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/repository"
	"skillhub/internal/domain/service"
	"skillhub/internal/errors"
	"skillhub/internal/usecase"

	"go.uber.org/fx"
)

// tutorialService implements the TutorialUsecase interface.
type tutorialService struct {
	tutorialRepo repository.TutorialRepository
	logger       *slog.Logger
}

// TutorialServiceParams holds dependencies for tutorialService, injected by Fx.
type TutorialServiceParams struct {
	fx.In

	TutorialRepo repository.TutorialRepository
	Logger       *slog.Logger
}

// NewTutorialService is the constructor for tutorialService.
func NewTutorialService(params TutorialServiceParams) usecase.TutorialUsecase {
	return &tutorialService{
		tutorialRepo: params.TutorialRepo,
		logger:       params.Logger,
	}
}

func (srv *tutorialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *tutorialService) CreateTutorial(ctx context.Context, principal string, input usecase.TutorialInput) (*entity.Tutorial, error) {
	tutorial := &entity.Tutorial{
		Title:   input.Title,
		Content: input.Content,
		Tags:    input.Tags,
		Owner:   principal,
	}

	if err := srv.tutorialRepo.Create(ctx, tutorial); err != nil {
		return nil, errors.Wrap(err, "failed to create tutorial")
	}

	srv.log(ctx).Debug("Tutorial created", slog.String("tutorialID", tutorial.ID))

	return tutorial, nil
}

func (srv *tutorialService) GetTutorial(ctx context.Context, id string) (*entity.Tutorial, error) {
	tutorial, err := srv.tutorialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapResourceErr(err, "tutorial")
	}

	return tutorial, nil
}

func (srv *tutorialService) ListTutorials(ctx context.Context) ([]*entity.Tutorial, error) {
	tutorials, err := srv.tutorialRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tutorials")
	}

	return tutorials, nil
}

func (srv *tutorialService) SearchTutorialsByTag(ctx context.Context, tag string) ([]*entity.Tutorial, error) {
	tutorials, err := srv.tutorialRepo.FindByTag(ctx, tag)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search tutorials by tag")
	}

	return tutorials, nil
}

func (srv *tutorialService) UpdateTutorial(ctx context.Context, principal string, id string, input usecase.TutorialInput) (*entity.Tutorial, error) {
	tutorial, err := srv.tutorialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapResourceErr(err, "tutorial")
	}

	if err := service.AuthorizeMutation(tutorial.Owner, principal); err != nil {
		return nil, err
	}

	tutorial.Title = input.Title
	tutorial.Content = input.Content
	tutorial.Tags = input.Tags

	if err := srv.tutorialRepo.Update(ctx, tutorial); err != nil {
		return nil, mapResourceErr(err, "tutorial")
	}

	return tutorial, nil
}

func (srv *tutorialService) DeleteTutorial(ctx context.Context, principal string, id string) error {
	tutorial, err := srv.tutorialRepo.FindByID(ctx, id)
	if err != nil {
		return mapResourceErr(err, "tutorial")
	}

	if err := service.AuthorizeMutation(tutorial.Owner, principal); err != nil {
		return err
	}

	if err := srv.tutorialRepo.Delete(ctx, id); err != nil {
		return mapResourceErr(err, "tutorial")
	}

	return nil
}
