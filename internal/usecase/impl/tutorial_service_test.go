package impl

import (
	"context"
	"testing"

	domainerrors "skillhub/internal/domain/errors"
	"skillhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTutorialService() usecase.TutorialUsecase {
	return NewTutorialService(TutorialServiceParams{
		TutorialRepo: newFakeTutorialRepo(),
		Logger:       testLogger(),
	})
}

func TestTutorialOwnership(t *testing.T) {
	srv := newTestTutorialService()
	ctx := context.Background()

	tutorial, err := srv.CreateTutorial(ctx, "author", usecase.TutorialInput{
		Title:   "Intro to channels",
		Content: "...",
		Tags:    []string{"go", "concurrency"},
	})
	require.NoError(t, err)
	assert.Equal(t, "author", tutorial.Owner)

	_, err = srv.UpdateTutorial(ctx, "reader", tutorial.ID, usecase.TutorialInput{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = srv.DeleteTutorial(ctx, "reader", tutorial.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	updated, err := srv.UpdateTutorial(ctx, "author", tutorial.ID, usecase.TutorialInput{
		Title:   "Intro to channels, revised",
		Content: "...",
		Tags:    []string{"go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "author", updated.Owner)
	assert.Equal(t, []string{"go"}, updated.Tags)
}

func TestSearchTutorialsByTag(t *testing.T) {
	srv := newTestTutorialService()
	ctx := context.Background()

	_, err := srv.CreateTutorial(ctx, "author", usecase.TutorialInput{
		Title: "Channels", Content: "...", Tags: []string{"go", "concurrency"},
	})
	require.NoError(t, err)
	_, err = srv.CreateTutorial(ctx, "author", usecase.TutorialInput{
		Title: "Flexbox", Content: "...", Tags: []string{"css"},
	})
	require.NoError(t, err)

	matches, err := srv.SearchTutorialsByTag(ctx, "go")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Channels", matches[0].Title)

	none, err := srv.SearchTutorialsByTag(ctx, "rust")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetTutorial_NotFound(t *testing.T) {
	srv := newTestTutorialService()

	_, err := srv.GetTutorial(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
