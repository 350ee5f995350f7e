package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/tejaIG/sevak-ai-poc/internal/models"
)

// Indian mobile numbers: 10 digits starting 6-9.
var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// registerCustomRules installs the intake enum rules. Each rule skips empty
// values; 'required' handles those.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("indian-mobile", validateIndianMobile)
	mustRegister("is-helper-type", validateHelperType)
	mustRegister("is-timing", validateTiming)
	mustRegister("is-budget", validateBudget)
	mustRegister("is-working-day", validateWorkingDay)
	mustRegister("is-working-hours", validateWorkingHours)
	mustRegister("is-experience", validateExperience)
	mustRegister("is-food-preference", validateFoodPreference)
	mustRegister("is-proximity", validateProximity)
	mustRegister("is-urgency", validateUrgency)
}

func validateIndianMobile(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return mobilePattern.MatchString(value)
}

func validateHelperType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.HelperType(value) {
	case models.HelperTypeMaid, models.HelperTypeCook, models.HelperTypeDriver, models.HelperTypeBabysitter:
		return true
	default:
		return false
	}
}

func validateTiming(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Timing(value) {
	case models.TimingFullTime, models.TimingPartTime, models.TimingHourly:
		return true
	default:
		return false
	}
}

func validateBudget(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.BudgetRange(value) {
	case models.Budget5kTo10k, models.Budget10kTo15k, models.Budget15kTo25k, models.Budget25kPlus:
		return true
	default:
		return false
	}
}

func validateWorkingDay(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsWeekday(value)
}

func validateWorkingHours(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.WorkingHours(value) {
	case models.WorkingHoursMorning, models.WorkingHoursAfternoon, models.WorkingHoursEvening, models.WorkingHoursNight:
		return true
	default:
		return false
	}
}

func validateExperience(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ExperienceLevel(value) {
	case models.ExperienceFresher, models.Experience1To2, models.Experience3To5, models.Experience5Plus:
		return true
	default:
		return false
	}
}

func validateFoodPreference(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.FoodPreference(value) {
	case models.FoodPreferenceVeg, models.FoodPreferenceNonVeg, models.FoodPreferenceBoth:
		return true
	default:
		return false
	}
}

func validateProximity(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProximityPreference(value) {
	case models.ProximitySameLocality, models.ProximityWithin5km, models.ProximityWithin10km, models.ProximityAny:
		return true
	default:
		return false
	}
}

func validateUrgency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Urgency(value) {
	case models.UrgencyImmediate, models.UrgencyWithinWeek, models.UrgencyWithinMonth, models.UrgencyFlexible:
		return true
	default:
		return false
	}
}
