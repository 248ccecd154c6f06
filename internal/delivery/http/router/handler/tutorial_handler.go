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

// TutorialHandler holds dependencies for tutorial handlers.
type TutorialHandler struct {
	uc usecase.TutorialUsecase
}

// NewTutorialHandler is the constructor for TutorialHandler, injected by Fx.
func NewTutorialHandler(uc usecase.TutorialUsecase) *TutorialHandler {
	return &TutorialHandler{uc: uc}
}

type tutorialRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
}

type tutorialView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toTutorialView(t *entity.Tutorial) tutorialView {
	return tutorialView{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		Tags:      t.Tags,
		Owner:     t.Owner,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// CreateTutorial handles publishing a new tutorial.
func (h *TutorialHandler) CreateTutorial(c echo.Context) error {
	var req tutorialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tutorial input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tutorial, err := h.uc.CreateTutorial(c.Request().Context(), middleware.PrincipalID(c), usecase.TutorialInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTutorialView(tutorial), "Tutorial created")
}

// GetTutorial returns a single tutorial.
func (h *TutorialHandler) GetTutorial(c echo.Context) error {
	tutorial, err := h.uc.GetTutorial(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTutorialView(tutorial), "")
}

// ListTutorials returns all tutorials, or only those carrying ?tag=.
func (h *TutorialHandler) ListTutorials(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		tutorials []*entity.Tutorial
		err       error
	)
	if tag := c.QueryParam("tag"); tag != "" {
		tutorials, err = h.uc.SearchTutorialsByTag(ctx, tag)
	} else {
		tutorials, err = h.uc.ListTutorials(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]tutorialView, 0, len(tutorials))
	for _, t := range tutorials {
		views = append(views, toTutorialView(t))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// UpdateTutorial handles editing a tutorial. Only the owner may edit.
func (h *TutorialHandler) UpdateTutorial(c echo.Context) error {
	var req tutorialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tutorial input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tutorial, err := h.uc.UpdateTutorial(c.Request().Context(), middleware.PrincipalID(c), c.Param("id"), usecase.TutorialInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTutorialView(tutorial), "Tutorial updated")
}

// DeleteTutorial handles removing a tutorial. Only the owner may delete.
func (h *TutorialHandler) DeleteTutorial(c echo.Context) error {
	if err := h.uc.DeleteTutorial(c.Request().Context(), middleware.PrincipalID(c), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tutorial deleted")
}
