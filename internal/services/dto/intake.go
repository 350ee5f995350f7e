package dto

import (
	"github.com/tejaIG/sevak-ai-poc/internal/models"
)

// Request/Response structures for the intake wizard. JSON field names match
// the camelCase payloads the wizard frontend sends.

// CreateUserRequest is the stage-1 registration payload. The basic helper
// selection from the same form is carried forward client-side and arrives
// with the requirements payload.
type CreateUserRequest struct {
	FullName      string `json:"fullName" validate:"required,min=2,max=100"`
	Email         string `json:"email" validate:"required,email"`
	Mobile        string `json:"mobile" validate:"required,indian-mobile"`
	Location      string `json:"location" validate:"required,min=5"`
	AcceptedTerms bool   `json:"acceptedTerms" validate:"eq=true"`
}

// UpdateUserRequest is a partial profile update. Nil fields are left as-is.
type UpdateUserRequest struct {
	FullName *string `json:"fullName,omitempty" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Mobile   *string `json:"mobile,omitempty" validate:"omitempty,indian-mobile"`
	Location *string `json:"location,omitempty" validate:"omitempty,min=5"`
}

// CreateRequirementsRequest carries the basic group captured at registration
// plus the detailed requirements stage. Preference fields may arrive here or
// later via PATCH.
type CreateRequirementsRequest struct {
	HelperTypes []string `json:"helperTypes" validate:"required,min=1,dive,is-helper-type"`
	Timing      string   `json:"timing" validate:"required,is-timing"`
	Budget      string   `json:"budget" validate:"required,is-budget"`

	WorkingDays         []string `json:"workingDays" validate:"required,min=1,dive,is-working-day"`
	WorkingHours        string   `json:"workingHours" validate:"required,is-working-hours"`
	ExperienceRequired  string   `json:"experienceRequired" validate:"required,is-experience"`
	SpecificSkills      []string `json:"specificSkills" validate:"omitempty,dive,min=1"`
	FoodPreferences     string   `json:"foodPreferences" validate:"required,is-food-preference"`
	LanguagePreferences []string `json:"languagePreferences" validate:"required,min=1,dive,min=1"`

	ProximityPreference     string `json:"proximityPreference" validate:"omitempty,is-proximity"`
	Urgency                 string `json:"urgency" validate:"omitempty,is-urgency"`
	AccommodationRequired   *bool  `json:"accommodationRequired,omitempty"`
	BackgroundCheckRequired *bool  `json:"backgroundCheckRequired,omitempty"`
	AdditionalRequirements  string `json:"additionalRequirements" validate:"omitempty,max=2000"`
}

// UpdateRequirementsRequest is a partial update for a draft record. Nil
// fields are left as-is; empty slices replace stored values.
type UpdateRequirementsRequest struct {
	HelperTypes         []string `json:"helperTypes,omitempty" validate:"omitempty,dive,is-helper-type"`
	Timing              *string  `json:"timing,omitempty" validate:"omitempty,is-timing"`
	Budget              *string  `json:"budget,omitempty" validate:"omitempty,is-budget"`
	WorkingDays         []string `json:"workingDays,omitempty" validate:"omitempty,min=1,dive,is-working-day"`
	WorkingHours        *string  `json:"workingHours,omitempty" validate:"omitempty,is-working-hours"`
	ExperienceRequired  *string  `json:"experienceRequired,omitempty" validate:"omitempty,is-experience"`
	SpecificSkills      []string `json:"specificSkills,omitempty" validate:"omitempty,dive,min=1"`
	FoodPreferences     *string  `json:"foodPreferences,omitempty" validate:"omitempty,is-food-preference"`
	LanguagePreferences []string `json:"languagePreferences,omitempty" validate:"omitempty,min=1,dive,min=1"`

	ProximityPreference     *string `json:"proximityPreference,omitempty" validate:"omitempty,is-proximity"`
	Urgency                 *string `json:"urgency,omitempty" validate:"omitempty,is-urgency"`
	AccommodationRequired   *bool   `json:"accommodationRequired,omitempty"`
	BackgroundCheckRequired *bool   `json:"backgroundCheckRequired,omitempty"`
	AdditionalRequirements  *string `json:"additionalRequirements,omitempty" validate:"omitempty,max=2000"`
}

// UserWithRequirements is the combined wizard state for one user. The
// requirements pointer is nil until stage 2 is saved.
type UserWithRequirements struct {
	User         *models.User         `json:"user"`
	Requirements *models.Requirements `json:"requirements"`
}

// UserListResponse is the paginated admin listing.
type UserListResponse struct {
	Users      []models.User `json:"users"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// SubmitResponse acknowledges a wizard submission.
type SubmitResponse struct {
	Status  models.RequirementsStatus `json:"status"`
	Message string                    `json:"message"`
}
