package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejaIG/sevak-ai-poc/internal/models"
	"github.com/tejaIG/sevak-ai-poc/internal/services/dto"
	"github.com/tejaIG/sevak-ai-poc/internal/storage"
	"github.com/tejaIG/sevak-ai-poc/pkg/apperrors"
)

// recordingEmailProvider captures confirmation sends for assertions.
type recordingEmailProvider struct {
	sent chan string
}

func newRecordingEmailProvider() *recordingEmailProvider {
	return &recordingEmailProvider{sent: make(chan string, 4)}
}

func (p *recordingEmailProvider) SendSubmissionConfirmation(to, _ string) error {
	p.sent <- to
	return nil
}

func newTestIntakeService() (IntakeService, *recordingEmailProvider) {
	provider := newRecordingEmailProvider()
	return NewIntakeService(storage.NewMemoryStore(), provider), provider
}

func validCreateUser() *dto.CreateUserRequest {
	return &dto.CreateUserRequest{
		FullName:      "Priya Sharma",
		Email:         "priya@test.com",
		Mobile:        "9876543210",
		Location:      "Gachibowli, Hyderabad",
		AcceptedTerms: true,
	}
}

func validCreateRequirements() *dto.CreateRequirementsRequest {
	return &dto.CreateRequirementsRequest{
		HelperTypes:         []string{"maid", "cook"},
		Timing:              "fulltime",
		Budget:              "10000-15000",
		WorkingDays:         []string{"monday", "wednesday", "friday"},
		WorkingHours:        "morning",
		ExperienceRequired:  "1-2years",
		FoodPreferences:     "veg",
		LanguagePreferences: []string{"telugu", "hindi"},
	}
}

func assertAppErrorCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestCreateUser_Success(t *testing.T) {
	t.Parallel()
	svc, _ := newTestIntakeService()

	user, err := svc.CreateUser(context.Background(), validCreateUser())
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "priya@test.com", user.Email)
	assert.True(t, user.AcceptedTerms)
}

func TestCreateUser_TermsNotAccepted(t *testing.T) {
	t.Parallel()
	svc, _ := newTestIntakeService()

	req := validCreateUser()
	req.AcceptedTerms = false

	_, err := svc.CreateUser(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrTermsNotAccepted)
}

func TestCreateUser_DuplicateEmailAndMobile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestIntakeService()

	_, err := svc.CreateUser(ctx, validCreateUser())
	require.NoError(t, err)

	dup := validCreateUser()
	dup.Mobile = "9123456789"
	_, err = svc.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)

	dup = validCreateUser()
	dup.Email = "other@test.com"
	_, err = svc.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateMobile)
}

func TestUpdateUser_UniquenessRecheck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestIntakeService()

	first, err := svc.CreateUser(ctx, validCreateUser())
	require.NoError(t, err)

	second := validCreateUser()
	second.Email = "other@test.com"
	second.Mobile = "9123456789"
	otherUser, err := svc.CreateUser(ctx, second)
	require.NoError(t, err)

	taken := first.Email
	_, err = svc.UpdateUser(ctx, otherUser.ID, &dto.UpdateUserRequest{Email: &taken})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)

	// Re-sending your own email is not a conflict.
	own := otherUser.Email
	updated, err := svc.UpdateUser(ctx, otherUser.ID, &dto.UpdateUserRequest{Email: &own})
	require.NoError(t, err)
	assert.Equal(t, own, updated.Email)
}

func TestUpdateUser_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newTestIntakeService()

	name := "New Name"
	_, err := svc.UpdateUser(context.Background(), 42, &dto.UpdateUserRequest{FullName: &name})
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestCreateRequirements_UserMissing(t *testing.T) {
	t.Parallel()
	svc, _ := newTestIntakeService()

	_, err := svc.CreateRequirements(context.Background(), 42, validCreateRequirements())
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestCreateRequirements_Duplicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestIntakeService()

	user, err := svc.CreateUser(ctx, validCreateUser())
	require.NoError(t, err)

	_, err = svc.CreateRequirements(ctx, user.ID, validCreateRequirements())
	require.NoError(t, err)

	_, err = svc.CreateRequirements(ctx, user.ID, validCreateRequirements())
	assert.ErrorIs(t, err, apperrors.ErrRequirementsExist)
}

func TestUpdateRequirements_MergeSemantics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestIntakeService()

	user, err := svc.CreateUser(ctx, validCreateUser())
	require.NoError(t, err)
	before, err := svc.CreateRequirements(ctx, user.ID, validCreateRequirements())
	require.NoError(t, err)

	urgency := "immediate"
	after, err := svc.UpdateRequirements(ctx, user.ID, &dto.UpdateRequirementsRequest{Urgency: &urgency})
	require.NoError(t, err)

	// Only urgency changed; everything else keeps its pre-update value.
	assert.Equal(t, models.UrgencyImmediate, after.Urgency)
	assert.Equal(t, before.HelperTypes, after.HelperTypes)
	assert.Equal(t, before.Timing, after.Timing)
	assert.Equal(t, before.Budget, after.Budget)
	assert.Equal(t, before.WorkingDays, after.WorkingDays)
	assert.Equal(t, before.WorkingHours, after.WorkingHours)
	assert.Equal(t, before.ExperienceRequired, after.ExperienceRequired)
	assert.Equal(t, before.LanguagePreferences, after.LanguagePreferences)
	assert.Equal(t, before.FoodPreferences, after.FoodPreferences)
	assert.Equal(t, before.BackgroundCheckRequired, after.BackgroundCheckRequired)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestGetUserWithRequirements(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestIntakeService()

	user, err := svc.CreateUser(ctx, validCreateUser())
	require.NoError(t, err)

	// No requirements yet is not an error.
	combined, err := svc.GetUserWithRequirements(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, combined.User.ID)
	assert.Nil(t, combined.Requirements)

	_, err = svc.CreateRequirements(ctx, user.ID, validCreateRequirements())
	require.NoError(t, err)

	combined, err = svc.GetUserWithRequirements(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, combined.Requirements)
	assert.Equal(t, user.ID, combined.Requirements.UserID)
}

func TestSubmitRequirements_LifecycleAndEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, provider := newTestIntakeService()

	user, err := svc.CreateUser(ctx, validCreateUser())
	require.NoError(t, err)
	_, err = svc.CreateRequirements(ctx, user.ID, validCreateRequirements())
	require.NoError(t, err)

	resp, err := svc.SubmitRequirements(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequirementsStatusSubmitted, resp.Status)

	select {
	case to := <-provider.sent:
		assert.Equal(t, user.Email, to)
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation email was not sent")
	}

	// Submitted records are closed to edits and to a second submit.
	urgency := "immediate"
	_, err = svc.UpdateRequirements(ctx, user.ID, &dto.UpdateRequirementsRequest{Urgency: &urgency})
	assert.ErrorIs(t, err, apperrors.ErrRequirementsSubmitted)

	_, err = svc.SubmitRequirements(ctx, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrRequirementsSubmitted)
}

func TestListUsers_Pagination(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestIntakeService()

	for i, email := range []string{"a@test.com", "b@test.com", "c@test.com"} {
		req := validCreateUser()
		req.Email = email
		req.Mobile = "900000000" + string(rune('1'+i))
		_, err := svc.CreateUser(ctx, req)
		require.NoError(t, err)
	}

	list, err := svc.ListUsers(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.Total)
	assert.Len(t, list.Users, 2)
	assert.Equal(t, 2, list.TotalPages)

	list, err = svc.ListUsers(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, list.Users, 1)
}
