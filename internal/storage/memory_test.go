package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejaIG/sevak-ai-poc/internal/models"
)

func newTestUser(email, mobile string) *models.User {
	return &models.User{
		FullName:      "Priya Sharma",
		Email:         email,
		Mobile:        mobile,
		Location:      "Gachibowli, Hyderabad",
		AcceptedTerms: true,
	}
}

func TestMemoryStore_CreateAndGetUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	user := newTestUser("priya@test.com", "9876543210")
	require.NoError(t, store.CreateUser(ctx, user))
	assert.Equal(t, uint(1), user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	got, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "priya@test.com", got.Email)

	_, err = store.GetUser(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryStore_DuplicateEmailAndMobile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.CreateUser(ctx, newTestUser("priya@test.com", "9876543210")))

	err := store.CreateUser(ctx, newTestUser("priya@test.com", "9123456789"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	err = store.CreateUser(ctx, newTestUser("other@test.com", "9876543210"))
	assert.ErrorIs(t, err, ErrDuplicateMobile)
}

func TestMemoryStore_UpdateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	user := newTestUser("priya@test.com", "9876543210")
	require.NoError(t, store.CreateUser(ctx, user))
	created := user.CreatedAt

	user.Location = "Madhapur, Hyderabad"
	require.NoError(t, store.UpdateUser(ctx, user))

	got, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Madhapur, Hyderabad", got.Location)
	assert.Equal(t, created, got.CreatedAt)

	other := newTestUser("other@test.com", "9123456789")
	require.NoError(t, store.CreateUser(ctx, other))

	other.Email = "priya@test.com"
	assert.ErrorIs(t, store.UpdateUser(ctx, other), ErrDuplicateEmail)
}

func TestMemoryStore_ListUsersPagination(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.CreateUser(ctx, newTestUser("a@test.com", "9000000001")))
	require.NoError(t, store.CreateUser(ctx, newTestUser("b@test.com", "9000000002")))
	require.NoError(t, store.CreateUser(ctx, newTestUser("c@test.com", "9000000003")))

	users, total, err := store.ListUsers(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, users, 2)
	assert.Equal(t, "a@test.com", users[0].Email)
	assert.Equal(t, "b@test.com", users[1].Email)

	users, total, err = store.ListUsers(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, users, 1)
	assert.Equal(t, "c@test.com", users[0].Email)

	users, _, err = store.ListUsers(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestMemoryStore_RequirementsLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	// No user yet.
	err := store.CreateRequirements(ctx, &models.Requirements{UserID: 1})
	assert.ErrorIs(t, err, ErrUserNotFound)

	user := newTestUser("priya@test.com", "9876543210")
	require.NoError(t, store.CreateUser(ctx, user))

	reqs := &models.Requirements{
		UserID:      user.ID,
		HelperTypes: []string{"maid", "cook"},
		Timing:      models.TimingFullTime,
		Budget:      models.Budget10kTo15k,
	}
	require.NoError(t, store.CreateRequirements(ctx, reqs))
	assert.Equal(t, models.RequirementsStatusDraft, reqs.Status)

	// One record per user.
	err = store.CreateRequirements(ctx, &models.Requirements{UserID: user.ID})
	assert.ErrorIs(t, err, ErrDuplicateUser)

	got, err := store.GetRequirements(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"maid", "cook"}, []string(got.HelperTypes))

	got.Status = models.RequirementsStatusSubmitted
	require.NoError(t, store.UpdateRequirements(ctx, got))

	submitted, err := store.ListRequirementsByStatus(ctx, models.RequirementsStatusSubmitted)
	require.NoError(t, err)
	require.Len(t, submitted, 1)
	assert.Equal(t, user.ID, submitted[0].UserID)

	_, err = store.GetRequirements(ctx, 42)
	assert.ErrorIs(t, err, ErrRequirementsNotFound)
}

func TestMemoryStore_CopyIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	user := newTestUser("priya@test.com", "9876543210")
	require.NoError(t, store.CreateUser(ctx, user))

	reqs := &models.Requirements{
		UserID:      user.ID,
		HelperTypes: []string{"maid"},
	}
	require.NoError(t, store.CreateRequirements(ctx, reqs))

	// Mutating a returned record must not touch stored state.
	got, err := store.GetRequirements(ctx, user.ID)
	require.NoError(t, err)
	got.HelperTypes[0] = "driver"
	got.Urgency = models.UrgencyImmediate

	fresh, err := store.GetRequirements(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "maid", fresh.HelperTypes[0])
	assert.Empty(t, fresh.Urgency)
}
