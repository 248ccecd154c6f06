package impl

import (
	"context"
	"testing"

	domainerrors "skillhub/internal/domain/errors"
	"skillhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuestionService() (usecase.QuestionUsecase, usecase.AnswerUsecase) {
	result := NewQuestionService(QuestionServiceParams{
		QuestionRepo: newFakeQuestionRepo(),
		AnswerRepo:   newFakeAnswerRepo(),
		Logger:       testLogger(),
	})

	return result.QuestionUsecase, result.AnswerUsecase
}

func TestCreateQuestion_StampsOwner(t *testing.T) {
	questionUC, _ := newTestQuestionService()

	question, err := questionUC.CreateQuestion(context.Background(), "user-1", usecase.QuestionInput{
		Title:       "How do I test goroutines?",
		Description: "Looking for patterns.",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", question.Owner)
	assert.NotEmpty(t, question.ID)
}

func TestUpdateQuestion_OwnerOnly(t *testing.T) {
	questionUC, _ := newTestQuestionService()
	ctx := context.Background()

	question, err := questionUC.CreateQuestion(ctx, "user-1", usecase.QuestionInput{
		Title:       "Original title",
		Description: "Original body",
	})
	require.NoError(t, err)

	_, err = questionUC.UpdateQuestion(ctx, "user-2", question.ID, usecase.QuestionInput{
		Title:       "Hijacked",
		Description: "Hijacked",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	updated, err := questionUC.UpdateQuestion(ctx, "user-1", question.ID, usecase.QuestionInput{
		Title:       "Edited title",
		Description: "Edited body",
	})
	require.NoError(t, err)
	assert.Equal(t, "Edited title", updated.Title)
	// Ownership survives every edit.
	assert.Equal(t, "user-1", updated.Owner)
}

func TestDeleteQuestion_OwnerOnly(t *testing.T) {
	questionUC, _ := newTestQuestionService()
	ctx := context.Background()

	question, err := questionUC.CreateQuestion(ctx, "user-1", usecase.QuestionInput{
		Title:       "To be deleted",
		Description: "body",
	})
	require.NoError(t, err)

	err = questionUC.DeleteQuestion(ctx, "user-2", question.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	require.NoError(t, questionUC.DeleteQuestion(ctx, "user-1", question.ID))

	_, err = questionUC.GetQuestion(ctx, question.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMutationWithoutPrincipalForbidden(t *testing.T) {
	questionUC, _ := newTestQuestionService()
	ctx := context.Background()

	question, err := questionUC.CreateQuestion(ctx, "user-1", usecase.QuestionInput{
		Title:       "title",
		Description: "body",
	})
	require.NoError(t, err)

	_, err = questionUC.UpdateQuestion(ctx, "", question.ID, usecase.QuestionInput{
		Title:       "x",
		Description: "y",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCreateAnswer_RequiresExistingQuestion(t *testing.T) {
	_, answerUC := newTestQuestionService()

	_, err := answerUC.CreateAnswer(context.Background(), "user-1", "missing-question", usecase.AnswerInput{
		Content: "An answer",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAnswerOwnership(t *testing.T) {
	questionUC, answerUC := newTestQuestionService()
	ctx := context.Background()

	question, err := questionUC.CreateQuestion(ctx, "asker", usecase.QuestionInput{
		Title:       "Question",
		Description: "body",
	})
	require.NoError(t, err)

	answer, err := answerUC.CreateAnswer(ctx, "helper", question.ID, usecase.AnswerInput{
		Content: "Try table-driven tests.",
	})
	require.NoError(t, err)
	assert.Equal(t, "helper", answer.Owner)

	// The question's asker does not own the answer.
	_, err = answerUC.UpdateAnswer(ctx, "asker", answer.ID, usecase.AnswerInput{Content: "edited"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	updated, err := answerUC.UpdateAnswer(ctx, "helper", answer.ID, usecase.AnswerInput{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	assert.Equal(t, "helper", updated.Owner)

	err = answerUC.DeleteAnswer(ctx, "asker", answer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	require.NoError(t, answerUC.DeleteAnswer(ctx, "helper", answer.ID))
}

func TestListAnswers_FiltersByQuestion(t *testing.T) {
	questionUC, answerUC := newTestQuestionService()
	ctx := context.Background()

	first, err := questionUC.CreateQuestion(ctx, "user-1", usecase.QuestionInput{Title: "a", Description: "b"})
	require.NoError(t, err)
	second, err := questionUC.CreateQuestion(ctx, "user-1", usecase.QuestionInput{Title: "c", Description: "d"})
	require.NoError(t, err)

	_, err = answerUC.CreateAnswer(ctx, "user-2", first.ID, usecase.AnswerInput{Content: "one"})
	require.NoError(t, err)
	_, err = answerUC.CreateAnswer(ctx, "user-2", second.ID, usecase.AnswerInput{Content: "two"})
	require.NoError(t, err)

	answers, err := answerUC.ListAnswers(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, "one", answers[0].Content)
}
