package handler

import (
	"net/http"
	"time"

	"skillhub/internal/delivery/http/middleware"
	"skillhub/internal/delivery/http/response"
	"skillhub/internal/domain/entity"
	"skillhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChallengeHandler holds dependencies for challenge and comment handlers.
type ChallengeHandler struct {
	challengeUC usecase.ChallengeUsecase
	commentUC   usecase.CommentUsecase
}

// NewChallengeHandler is the constructor for ChallengeHandler, injected by Fx.
func NewChallengeHandler(challengeUC usecase.ChallengeUsecase, commentUC usecase.CommentUsecase) *ChallengeHandler {
	return &ChallengeHandler{challengeUC: challengeUC, commentUC: commentUC}
}

type challengeRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type commentRequest struct {
	Content string `json:"content" validate:"required"`
}

type challengeView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
}

type commentView struct {
	ID          string    `json:"id"`
	ChallengeID string    `json:"challengeId"`
	Content     string    `json:"content"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toChallengeView(ch *entity.Challenge) challengeView {
	return challengeView{
		ID:          ch.ID,
		Title:       ch.Title,
		Description: ch.Description,
		Owner:       ch.Owner,
		CreatedAt:   ch.CreatedAt,
	}
}

func toCommentView(cm *entity.Comment) commentView {
	return commentView{
		ID:          cm.ID,
		ChallengeID: cm.ChallengeID,
		Content:     cm.Content,
		Owner:       cm.Owner,
		CreatedAt:   cm.CreatedAt,
		UpdatedAt:   cm.UpdatedAt,
	}
}

// CreateChallenge handles posting a new challenge.
func (h *ChallengeHandler) CreateChallenge(c echo.Context) error {
	var req challengeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid challenge input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	challenge, err := h.challengeUC.CreateChallenge(c.Request().Context(), middleware.PrincipalID(c), usecase.ChallengeInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toChallengeView(challenge), "Challenge created")
}

// GetChallenge returns a single challenge.
func (h *ChallengeHandler) GetChallenge(c echo.Context) error {
	challenge, err := h.challengeUC.GetChallenge(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toChallengeView(challenge), "")
}

// ListChallenges returns all challenges.
func (h *ChallengeHandler) ListChallenges(c echo.Context) error {
	challenges, err := h.challengeUC.ListChallenges(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]challengeView, 0, len(challenges))
	for _, ch := range challenges {
		views = append(views, toChallengeView(ch))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// DeleteChallenge handles removing a challenge. Only the owner may delete.
func (h *ChallengeHandler) DeleteChallenge(c echo.Context) error {
	if err := h.challengeUC.DeleteChallenge(c.Request().Context(), middleware.PrincipalID(c), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Challenge deleted")
}

// CreateComment handles posting a comment to a challenge.
func (h *ChallengeHandler) CreateComment(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentUC.CreateComment(c.Request().Context(), middleware.PrincipalID(c), c.Param("id"), usecase.CommentInput{
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCommentView(comment), "Comment created")
}

// ListComments returns the comments of a challenge.
func (h *ChallengeHandler) ListComments(c echo.Context) error {
	comments, err := h.commentUC.ListComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]commentView, 0, len(comments))
	for _, cm := range comments {
		views = append(views, toCommentView(cm))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// UpdateComment handles editing a comment. Only the owner may edit.
func (h *ChallengeHandler) UpdateComment(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentUC.UpdateComment(c.Request().Context(), middleware.PrincipalID(c), c.Param("id"), usecase.CommentInput{
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCommentView(comment), "Comment updated")
}

// DeleteComment handles removing a comment. Only the owner may delete.
func (h *ChallengeHandler) DeleteComment(c echo.Context) error {
	if err := h.commentUC.DeleteComment(c.Request().Context(), middleware.PrincipalID(c), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted")
}
