//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaglabs/loginsuite/internal/models"
	"github.com/swaglabs/loginsuite/internal/repository/testutil"
)

func TestResultRepository_RoundTrip_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewResultRepositoryWithDB(testDB.DB)
	ctx := context.Background()
	runID := uuid.New().String()

	// GIVEN a flaky case that passes on its second attempt
	first, err := models.NewAttempt(runID, "TC-2", 1)
	require.NoError(t, err)
	require.NoError(t, repo.CreateAttempt(ctx, first))
	require.NoError(t, first.Fail(errors.New("element timed out")))
	require.NoError(t, repo.FinishAttempt(ctx, first))

	second, err := models.NewAttempt(runID, "TC-2", 2)
	require.NoError(t, err)
	require.NoError(t, repo.CreateAttempt(ctx, second))
	require.NoError(t, second.Pass())
	require.NoError(t, repo.FinishAttempt(ctx, second))

	shot, err := models.NewAttachment(first, models.FailureScreenshotLabel, models.ContentTypePNG, []byte("png"))
	require.NoError(t, err)
	require.NoError(t, repo.SaveAttachment(ctx, shot))

	// WHEN
	attempts, err := repo.ListAttempts(ctx, runID)
	require.NoError(t, err)
	latest, err := repo.LatestRunID(ctx)
	require.NoError(t, err)

	// THEN
	require.Len(t, attempts, 2)
	assert.Equal(t, models.AttemptStatusFailed, attempts[0].Status)
	assert.Equal(t, "element timed out", attempts[0].Error)
	assert.Equal(t, models.AttemptStatusPassed, attempts[1].Status)
	assert.Equal(t, runID, latest)
}

func TestResultRepository_FinishUnknownAttempt_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewResultRepositoryWithDB(testDB.DB)
	attempt, _ := models.NewAttempt(uuid.New().String(), "TC-1", 1)
	require.NoError(t, attempt.Pass())

	err := repo.FinishAttempt(context.Background(), attempt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResultRepository_ListAttemptsInStartOrder_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewResultRepositoryWithDB(testDB.DB)
	ctx := context.Background()
	runID := uuid.New().String()
	started := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	// GIVEN TC-2 started before TC-10, whose id sorts first as text
	for i, caseID := range []string{"TC-2", "TC-10"} {
		a, err := models.NewAttempt(runID, caseID, 1)
		require.NoError(t, err)
		a.StartedAt = started.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.CreateAttempt(ctx, a))
	}

	// WHEN
	attempts, err := repo.ListAttempts(ctx, runID)

	// THEN attempts come back in the order they ran
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, "TC-2", attempts[0].CaseID)
	assert.Equal(t, "TC-10", attempts[1].CaseID)
}
