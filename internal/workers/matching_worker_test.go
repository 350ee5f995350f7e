package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejaIG/sevak-ai-poc/internal/models"
	"github.com/tejaIG/sevak-ai-poc/internal/storage"
)

func TestMatchingWorker_Sweep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storage.NewMemoryStore()

	for i, email := range []string{"a@test.com", "b@test.com", "c@test.com"} {
		user := &models.User{
			FullName:      "User",
			Email:         email,
			Mobile:        "900000000" + string(rune('1'+i)),
			Location:      "Hyderabad",
			AcceptedTerms: true,
		}
		require.NoError(t, store.CreateUser(ctx, user))
		require.NoError(t, store.CreateRequirements(ctx, &models.Requirements{
			UserID:      user.ID,
			HelperTypes: []string{"maid"},
		}))
	}

	// Submit the first two; the third stays a draft.
	for _, userID := range []uint{1, 2} {
		reqs, err := store.GetRequirements(ctx, userID)
		require.NoError(t, err)
		reqs.Status = models.RequirementsStatusSubmitted
		require.NoError(t, store.UpdateRequirements(ctx, reqs))
	}

	worker := NewMatchingWorker(store, time.Minute)
	moved, err := worker.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	matching, err := store.ListRequirementsByStatus(ctx, models.RequirementsStatusMatching)
	require.NoError(t, err)
	assert.Len(t, matching, 2)

	drafts, err := store.ListRequirementsByStatus(ctx, models.RequirementsStatusDraft)
	require.NoError(t, err)
	assert.Len(t, drafts, 1)

	// A second sweep finds nothing to move.
	moved, err = worker.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, moved)
}
