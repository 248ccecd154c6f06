package impl

import (
	"context"
	"testing"

	domainerrors "skillhub/internal/domain/errors"
	"skillhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChallengeService() (usecase.ChallengeUsecase, usecase.CommentUsecase) {
	result := NewChallengeService(ChallengeServiceParams{
		ChallengeRepo: newFakeChallengeRepo(),
		CommentRepo:   newFakeCommentRepo(),
		Logger:        testLogger(),
	})

	return result.ChallengeUsecase, result.CommentUsecase
}

func TestChallengeLifecycle(t *testing.T) {
	challengeUC, _ := newTestChallengeService()
	ctx := context.Background()

	challenge, err := challengeUC.CreateChallenge(ctx, "poster", usecase.ChallengeInput{
		Title:       "FizzBuzz without modulo",
		Description: "Constraints inside.",
	})
	require.NoError(t, err)
	assert.Equal(t, "poster", challenge.Owner)

	err = challengeUC.DeleteChallenge(ctx, "someone-else", challenge.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	require.NoError(t, challengeUC.DeleteChallenge(ctx, "poster", challenge.ID))

	_, err = challengeUC.GetChallenge(ctx, challenge.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCreateComment_RequiresExistingChallenge(t *testing.T) {
	_, commentUC := newTestChallengeService()

	_, err := commentUC.CreateComment(context.Background(), "user-1", "missing-challenge", usecase.CommentInput{
		Content: "nice one",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCommentOwnership(t *testing.T) {
	challengeUC, commentUC := newTestChallengeService()
	ctx := context.Background()

	challenge, err := challengeUC.CreateChallenge(ctx, "poster", usecase.ChallengeInput{
		Title:       "Challenge",
		Description: "body",
	})
	require.NoError(t, err)

	comment, err := commentUC.CreateComment(ctx, "commenter", challenge.ID, usecase.CommentInput{
		Content: "first",
	})
	require.NoError(t, err)
	assert.Equal(t, "commenter", comment.Owner)

	// The challenge owner cannot edit someone else's comment.
	_, err = commentUC.UpdateComment(ctx, "poster", comment.ID, usecase.CommentInput{Content: "edited"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	updated, err := commentUC.UpdateComment(ctx, "commenter", comment.ID, usecase.CommentInput{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	assert.Equal(t, "commenter", updated.Owner)

	comments, err := commentUC.ListComments(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}
