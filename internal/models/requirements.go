package models

import (
	"gorm.io/datatypes"
)

// Requirements holds everything a user specifies about their desired helper.
// A user has at most one record; the basic group is captured during
// registration, the detailed group on the requirements page and the
// preference group on the preferences page.
type Requirements struct {
	BaseModel
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`

	// Basic
	HelperTypes datatypes.JSONSlice[string] `gorm:"not null" json:"helperTypes"`
	Timing      Timing                      `gorm:"type:varchar(20);not null" json:"timing"`
	Budget      BudgetRange                 `gorm:"type:varchar(20);not null" json:"budget"`

	// Detailed
	WorkingDays             datatypes.JSONSlice[string] `json:"workingDays"`
	WorkingHours            WorkingHours                `gorm:"type:varchar(20)" json:"workingHours"`
	SpecificSkills          datatypes.JSONSlice[string] `json:"specificSkills"`
	ExperienceRequired      ExperienceLevel             `gorm:"type:varchar(20)" json:"experienceRequired"`
	LanguagePreferences     datatypes.JSONSlice[string] `json:"languagePreferences"`
	AccommodationRequired   bool                        `gorm:"default:false" json:"accommodationRequired"`
	FoodPreferences         FoodPreference              `gorm:"type:varchar(10)" json:"foodPreferences"`
	BackgroundCheckRequired bool                        `gorm:"default:true" json:"backgroundCheckRequired"`

	// Preferences
	ProximityPreference    ProximityPreference `gorm:"type:varchar(20)" json:"proximityPreference"`
	Urgency                Urgency             `gorm:"type:varchar(20)" json:"urgency"`
	AdditionalRequirements string              `gorm:"type:text" json:"additionalRequirements"`

	Status RequirementsStatus `gorm:"type:varchar(20);default:'draft'" json:"status"`
}

// Editable reports whether the record still accepts updates.
func (r *Requirements) Editable() bool {
	return r.Status == RequirementsStatusDraft || r.Status == ""
}
