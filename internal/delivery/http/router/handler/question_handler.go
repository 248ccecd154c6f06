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

// QuestionHandler holds dependencies for the Q&A board handlers.
type QuestionHandler struct {
	questionUC usecase.QuestionUsecase
	answerUC   usecase.AnswerUsecase
}

// NewQuestionHandler is the constructor for QuestionHandler, injected by Fx.
func NewQuestionHandler(questionUC usecase.QuestionUsecase, answerUC usecase.AnswerUsecase) *QuestionHandler {
	return &QuestionHandler{questionUC: questionUC, answerUC: answerUC}
}

type questionRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type answerRequest struct {
	Content string `json:"content" validate:"required"`
}

type questionView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type answerView struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"questionId"`
	Content    string    `json:"content"`
	Owner      string    `json:"owner"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toQuestionView(q *entity.Question) questionView {
	return questionView{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Owner:       q.Owner,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func toAnswerView(a *entity.Answer) answerView {
	return answerView{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		Content:    a.Content,
		Owner:      a.Owner,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// CreateQuestion handles posting a new question.
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req questionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid question input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	question, err := h.questionUC.CreateQuestion(c.Request().Context(), middleware.PrincipalID(c), usecase.QuestionInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toQuestionView(question), "Question created")
}

// GetQuestion returns a single question.
func (h *QuestionHandler) GetQuestion(c echo.Context) error {
	question, err := h.questionUC.GetQuestion(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toQuestionView(question), "")
}

// ListQuestions returns all questions.
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	questions, err := h.questionUC.ListQuestions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, toQuestionView(q))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// UpdateQuestion handles editing a question. Only the owner may edit.
func (h *QuestionHandler) UpdateQuestion(c echo.Context) error {
	var req questionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid question input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	question, err := h.questionUC.UpdateQuestion(c.Request().Context(), middleware.PrincipalID(c), c.Param("id"), usecase.QuestionInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toQuestionView(question), "Question updated")
}

// DeleteQuestion handles removing a question. Only the owner may delete.
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	if err := h.questionUC.DeleteQuestion(c.Request().Context(), middleware.PrincipalID(c), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Question deleted")
}

// CreateAnswer handles posting an answer to a question.
func (h *QuestionHandler) CreateAnswer(c echo.Context) error {
	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid answer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	answer, err := h.answerUC.CreateAnswer(c.Request().Context(), middleware.PrincipalID(c), c.Param("id"), usecase.AnswerInput{
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAnswerView(answer), "Answer created")
}

// ListAnswers returns the answers of a question.
func (h *QuestionHandler) ListAnswers(c echo.Context) error {
	answers, err := h.answerUC.ListAnswers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]answerView, 0, len(answers))
	for _, a := range answers {
		views = append(views, toAnswerView(a))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// UpdateAnswer handles editing an answer. Only the owner may edit.
func (h *QuestionHandler) UpdateAnswer(c echo.Context) error {
	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid answer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	answer, err := h.answerUC.UpdateAnswer(c.Request().Context(), middleware.PrincipalID(c), c.Param("id"), usecase.AnswerInput{
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAnswerView(answer), "Answer updated")
}

// DeleteAnswer handles removing an answer. Only the owner may delete.
func (h *QuestionHandler) DeleteAnswer(c echo.Context) error {
	if err := h.answerUC.DeleteAnswer(c.Request().Context(), middleware.PrincipalID(c), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Answer deleted")
}
