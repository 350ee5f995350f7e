package models

// Enumerated field values collected by the intake wizard. The ids mirror the
// option ids rendered by the frontend forms.

type HelperType string

const (
	HelperTypeMaid       HelperType = "maid"
	HelperTypeCook       HelperType = "cook"
	HelperTypeDriver     HelperType = "driver"
	HelperTypeBabysitter HelperType = "babysitter"
)

type Timing string

const (
	TimingFullTime Timing = "fulltime"
	TimingPartTime Timing = "parttime"
	TimingHourly   Timing = "hourly"
)

type BudgetRange string

const (
	Budget5kTo10k  BudgetRange = "5000-10000"
	Budget10kTo15k BudgetRange = "10000-15000"
	Budget15kTo25k BudgetRange = "15000-25000"
	Budget25kPlus  BudgetRange = "25000+"
)

type WorkingHours string

const (
	WorkingHoursMorning   WorkingHours = "morning"
	WorkingHoursAfternoon WorkingHours = "afternoon"
	WorkingHoursEvening   WorkingHours = "evening"
	WorkingHoursNight     WorkingHours = "night"
)

type ExperienceLevel string

const (
	ExperienceFresher ExperienceLevel = "fresher"
	Experience1To2    ExperienceLevel = "1-2years"
	Experience3To5    ExperienceLevel = "3-5years"
	Experience5Plus   ExperienceLevel = "5plus"
)

type FoodPreference string

const (
	FoodPreferenceVeg    FoodPreference = "veg"
	FoodPreferenceNonVeg FoodPreference = "nonveg"
	FoodPreferenceBoth   FoodPreference = "both"
)

type ProximityPreference string

const (
	ProximitySameLocality ProximityPreference = "same_locality"
	ProximityWithin5km    ProximityPreference = "within_5km"
	ProximityWithin10km   ProximityPreference = "within_10km"
	ProximityAny          ProximityPreference = "any"
)

type Urgency string

const (
	UrgencyImmediate   Urgency = "immediate"
	UrgencyWithinWeek  Urgency = "within_week"
	UrgencyWithinMonth Urgency = "within_month"
	UrgencyFlexible    Urgency = "flexible"
)

// RequirementsStatus tracks the wizard submission lifecycle. Submitted and
// matching records are closed to further edits.
type RequirementsStatus string

const (
	RequirementsStatusDraft     RequirementsStatus = "draft"
	RequirementsStatusSubmitted RequirementsStatus = "submitted"
	RequirementsStatusMatching  RequirementsStatus = "matching"
)

var weekdays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// IsWeekday reports whether v is a valid working-day tag.
func IsWeekday(v string) bool {
	return weekdays[v]
}
