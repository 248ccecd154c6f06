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

// challengeService implements the ChallengeUsecase and CommentUsecase interfaces.
type challengeService struct {
	challengeRepo repository.ChallengeRepository
	commentRepo   repository.CommentRepository
	logger        *slog.Logger
}

// ChallengeServiceParams holds dependencies for challengeService, injected by Fx.
type ChallengeServiceParams struct {
	fx.In

	ChallengeRepo repository.ChallengeRepository
	CommentRepo   repository.CommentRepository
	Logger        *slog.Logger
}

// ChallengeServiceResult exposes the two usecase facets of challengeService.
type ChallengeServiceResult struct {
	fx.Out

	ChallengeUsecase usecase.ChallengeUsecase
	CommentUsecase   usecase.CommentUsecase
}

// NewChallengeService is the constructor for challengeService.
func NewChallengeService(params ChallengeServiceParams) ChallengeServiceResult {
	srv := &challengeService{
		challengeRepo: params.ChallengeRepo,
		commentRepo:   params.CommentRepo,
		logger:        params.Logger,
	}

	return ChallengeServiceResult{ChallengeUsecase: srv, CommentUsecase: srv}
}

func (srv *challengeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *challengeService) CreateChallenge(ctx context.Context, principal string, input usecase.ChallengeInput) (*entity.Challenge, error) {
	challenge := &entity.Challenge{
		Title:       input.Title,
		Description: input.Description,
		Owner:       principal,
	}

	if err := srv.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, errors.Wrap(err, "failed to create challenge")
	}

	srv.log(ctx).Debug("Challenge created", slog.String("challengeID", challenge.ID))

	return challenge, nil
}

func (srv *challengeService) GetChallenge(ctx context.Context, id string) (*entity.Challenge, error) {
	challenge, err := srv.challengeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapResourceErr(err, "challenge")
	}

	return challenge, nil
}

func (srv *challengeService) ListChallenges(ctx context.Context) ([]*entity.Challenge, error) {
	challenges, err := srv.challengeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list challenges")
	}

	return challenges, nil
}

func (srv *challengeService) DeleteChallenge(ctx context.Context, principal string, id string) error {
	challenge, err := srv.challengeRepo.FindByID(ctx, id)
	if err != nil {
		return mapResourceErr(err, "challenge")
	}

	if err := service.AuthorizeMutation(challenge.Owner, principal); err != nil {
		return err
	}

	if err := srv.challengeRepo.Delete(ctx, id); err != nil {
		return mapResourceErr(err, "challenge")
	}

	return nil
}

// CreateComment verifies the target challenge exists before writing the comment.
func (srv *challengeService) CreateComment(ctx context.Context, principal string, challengeID string, input usecase.CommentInput) (*entity.Comment, error) {
	if _, err := srv.challengeRepo.FindByID(ctx, challengeID); err != nil {
		return nil, mapResourceErr(err, "challenge")
	}

	comment := &entity.Comment{
		ChallengeID: challengeID,
		Content:     input.Content,
		Owner:       principal,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	return comment, nil
}

func (srv *challengeService) ListComments(ctx context.Context, challengeID string) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.FindByChallengeID(ctx, challengeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

func (srv *challengeService) UpdateComment(ctx context.Context, principal string, id string, input usecase.CommentInput) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapResourceErr(err, "comment")
	}

	if err := service.AuthorizeMutation(comment.Owner, principal); err != nil {
		return nil, err
	}

	comment.Content = input.Content

	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, mapResourceErr(err, "comment")
	}

	return comment, nil
}

func (srv *challengeService) DeleteComment(ctx context.Context, principal string, id string) error {
	comment, err := srv.commentRepo.FindByID(ctx, id)
	if err != nil {
		return mapResourceErr(err, "comment")
	}

	if err := service.AuthorizeMutation(comment.Owner, principal); err != nil {
		return err
	}

	if err := srv.commentRepo.Delete(ctx, id); err != nil {
		return mapResourceErr(err, "comment")
	}

	return nil
}
