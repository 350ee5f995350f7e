package services

import (
	"context"
	"errors"

	"github.com/tejaIG/sevak-ai-poc/internal/email"
	"github.com/tejaIG/sevak-ai-poc/internal/logger"
	"github.com/tejaIG/sevak-ai-poc/internal/models"
	"github.com/tejaIG/sevak-ai-poc/internal/services/dto"
	"github.com/tejaIG/sevak-ai-poc/internal/storage"
	"github.com/tejaIG/sevak-ai-poc/pkg/apperrors"
)

// IntakeService owns the hiring wizard: user registration, the single
// requirements record per user and the submission transition.
type IntakeService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*models.User, error)
	GetUserWithRequirements(ctx context.Context, id uint) (*dto.UserWithRequirements, error)
	ListUsers(ctx context.Context, page, pageSize int) (*dto.UserListResponse, error)

	CreateRequirements(ctx context.Context, userID uint, req *dto.CreateRequirementsRequest) (*models.Requirements, error)
	GetRequirements(ctx context.Context, userID uint) (*models.Requirements, error)
	UpdateRequirements(ctx context.Context, userID uint, req *dto.UpdateRequirementsRequest) (*models.Requirements, error)
	SubmitRequirements(ctx context.Context, userID uint) (*dto.SubmitResponse, error)
}

type IntakeServiceImpl struct {
	store         storage.Store
	emailProvider email.Provider
}

func NewIntakeService(store storage.Store, emailProvider email.Provider) IntakeService {
	return &IntakeServiceImpl{
		store:         store,
		emailProvider: emailProvider,
	}
}

func (s *IntakeServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	if !req.AcceptedTerms {
		return nil, apperrors.ErrTermsNotAccepted
	}

	// Pre-check both identifiers so the caller learns which one collides.
	// The store's unique constraints still close the race on concurrent
	// inserts.
	if _, err := s.store.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrDuplicateEmail
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.store.GetUserByMobile(ctx, req.Mobile); err == nil {
		return nil, apperrors.ErrDuplicateMobile
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FullName:      req.FullName,
		Email:         req.Email,
		Mobile:        req.Mobile,
		Location:      req.Location,
		AcceptedTerms: req.AcceptedTerms,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, mapUserStoreError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

func (s *IntakeServiceImpl) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, mapUserStoreError(err)
	}
	return user, nil
}

func (s *IntakeServiceImpl) UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, mapUserStoreError(err)
	}

	if req.Email != nil && *req.Email != user.Email {
		if other, err := s.store.GetUserByEmail(ctx, *req.Email); err == nil && other.ID != id {
			return nil, apperrors.ErrDuplicateEmail
		} else if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}
		user.Email = *req.Email
	}
	if req.Mobile != nil && *req.Mobile != user.Mobile {
		if other, err := s.store.GetUserByMobile(ctx, *req.Mobile); err == nil && other.ID != id {
			return nil, apperrors.ErrDuplicateMobile
		} else if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}
		user.Mobile = *req.Mobile
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Location != nil {
		user.Location = *req.Location
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, mapUserStoreError(err)
	}
	return user, nil
}

// GetUserWithRequirements returns the combined wizard state. Missing
// requirements are not an error; the wizard uses this to resume mid-flow.
func (s *IntakeServiceImpl) GetUserWithRequirements(ctx context.Context, id uint) (*dto.UserWithRequirements, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, mapUserStoreError(err)
	}

	reqs, err := s.store.GetRequirements(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrRequirementsNotFound) {
			return &dto.UserWithRequirements{User: user}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserWithRequirements{User: user, Requirements: reqs}, nil
}

func (s *IntakeServiceImpl) ListUsers(ctx context.Context, page, pageSize int) (*dto.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := s.store.ListUsers(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &dto.UserListResponse{
		Users:      users,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *IntakeServiceImpl) CreateRequirements(ctx context.Context, userID uint, req *dto.CreateRequirementsRequest) (*models.Requirements, error) {
	reqs := &models.Requirements{
		UserID:              userID,
		HelperTypes:         req.HelperTypes,
		Timing:              models.Timing(req.Timing),
		Budget:              models.BudgetRange(req.Budget),
		WorkingDays:         req.WorkingDays,
		WorkingHours:        models.WorkingHours(req.WorkingHours),
		SpecificSkills:      req.SpecificSkills,
		ExperienceRequired:  models.ExperienceLevel(req.ExperienceRequired),
		LanguagePreferences: req.LanguagePreferences,
		FoodPreferences:     models.FoodPreference(req.FoodPreferences),

		ProximityPreference:    models.ProximityPreference(req.ProximityPreference),
		Urgency:                models.Urgency(req.Urgency),
		AdditionalRequirements: req.AdditionalRequirements,

		BackgroundCheckRequired: true,
		Status:                  models.RequirementsStatusDraft,
	}
	if req.AccommodationRequired != nil {
		reqs.AccommodationRequired = *req.AccommodationRequired
	}
	if req.BackgroundCheckRequired != nil {
		reqs.BackgroundCheckRequired = *req.BackgroundCheckRequired
	}

	if err := s.store.CreateRequirements(ctx, reqs); err != nil {
		switch {
		case errors.Is(err, storage.ErrUserNotFound):
			return nil, apperrors.ErrNotFound(err)
		case errors.Is(err, storage.ErrDuplicateUser):
			return nil, apperrors.ErrRequirementsExist
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	logger.CtxInfo(ctx, "requirements created", "user_id", userID, "requirements_id", reqs.ID)
	return reqs, nil
}

func (s *IntakeServiceImpl) GetRequirements(ctx context.Context, userID uint) (*models.Requirements, error) {
	reqs, err := s.store.GetRequirements(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrRequirementsNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return reqs, nil
}

// UpdateRequirements merges the patch into the stored draft. Submitted
// records reject edits.
func (s *IntakeServiceImpl) UpdateRequirements(ctx context.Context, userID uint, req *dto.UpdateRequirementsRequest) (*models.Requirements, error) {
	reqs, err := s.store.GetRequirements(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrRequirementsNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !reqs.Editable() {
		return nil, apperrors.ErrRequirementsSubmitted
	}

	if req.HelperTypes != nil {
		reqs.HelperTypes = req.HelperTypes
	}
	if req.Timing != nil {
		reqs.Timing = models.Timing(*req.Timing)
	}
	if req.Budget != nil {
		reqs.Budget = models.BudgetRange(*req.Budget)
	}
	if req.WorkingDays != nil {
		reqs.WorkingDays = req.WorkingDays
	}
	if req.WorkingHours != nil {
		reqs.WorkingHours = models.WorkingHours(*req.WorkingHours)
	}
	if req.SpecificSkills != nil {
		reqs.SpecificSkills = req.SpecificSkills
	}
	if req.ExperienceRequired != nil {
		reqs.ExperienceRequired = models.ExperienceLevel(*req.ExperienceRequired)
	}
	if req.LanguagePreferences != nil {
		reqs.LanguagePreferences = req.LanguagePreferences
	}
	if req.FoodPreferences != nil {
		reqs.FoodPreferences = models.FoodPreference(*req.FoodPreferences)
	}
	if req.ProximityPreference != nil {
		reqs.ProximityPreference = models.ProximityPreference(*req.ProximityPreference)
	}
	if req.Urgency != nil {
		reqs.Urgency = models.Urgency(*req.Urgency)
	}
	if req.AccommodationRequired != nil {
		reqs.AccommodationRequired = *req.AccommodationRequired
	}
	if req.BackgroundCheckRequired != nil {
		reqs.BackgroundCheckRequired = *req.BackgroundCheckRequired
	}
	if req.AdditionalRequirements != nil {
		reqs.AdditionalRequirements = *req.AdditionalRequirements
	}

	if err := s.store.UpdateRequirements(ctx, reqs); err != nil {
		if errors.Is(err, storage.ErrRequirementsNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return reqs, nil
}

// SubmitRequirements finalizes the wizard: the draft moves to submitted and
// the user gets a confirmation email. A record can be submitted once.
func (s *IntakeServiceImpl) SubmitRequirements(ctx context.Context, userID uint) (*dto.SubmitResponse, error) {
	reqs, err := s.store.GetRequirements(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrRequirementsNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !reqs.Editable() {
		return nil, apperrors.ErrRequirementsSubmitted
	}

	reqs.Status = models.RequirementsStatusSubmitted
	if err := s.store.UpdateRequirements(ctx, reqs); err != nil {
		return nil, apperrors.InternalError(err)
	}

	user, err := s.store.GetUser(ctx, userID)
	if err == nil {
		// Delivery failures must not fail the submission.
		go func(to, name string) {
			if err := s.emailProvider.SendSubmissionConfirmation(to, name); err != nil {
				logger.Warn("submission confirmation email failed", "user_id", userID, "error", err)
			}
		}(user.Email, user.FullName)
	}

	logger.CtxInfo(ctx, "requirements submitted", "user_id", userID)
	return &dto.SubmitResponse{
		Status:  models.RequirementsStatusSubmitted,
		Message: "Requirements submitted. Matching starts now; expect shortlisted profiles within 24 hours.",
	}, nil
}

func mapUserStoreError(err error) error {
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		return apperrors.ErrNotFound(err)
	case errors.Is(err, storage.ErrDuplicateEmail):
		return apperrors.ErrDuplicateEmail
	case errors.Is(err, storage.ErrDuplicateMobile):
		return apperrors.ErrDuplicateMobile
	default:
		return apperrors.InternalError(err)
	}
}
