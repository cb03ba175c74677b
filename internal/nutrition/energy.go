// Package nutrition implements the energy model: Mifflin-St Jeor BMR, activity
// scaled TDEE, goal adjusted calorie target and the daily macro split.
package nutrition

import "math"

// activityMultipliers is the single source of truth for valid activity levels.
var activityMultipliers = map[ActivityLevel]float64{
	1: 1.20,
	2: 1.275,
	3: 1.35,
	4: 1.465,
	5: 1.55,
	6: 1.725,
	7: 1.90,
}

// Fixed goal offsets in kcal.
const (
	loseOffset = -500
	gainOffset = 300
)

// Macro split of the calorie target and energy density per gram.
const (
	proteinShare   = 0.30
	fatShare       = 0.30
	carbsShare     = 0.40
	kcalPerProtein = 4
	kcalPerFat     = 9
	kcalPerCarb    = 4
	fiberPer1000   = 14
)

// ActivityMultiplier returns the TDEE multiplier for level.
func ActivityMultiplier(level ActivityLevel) (float64, bool) {
	m, ok := activityMultipliers[level]
	return m, ok
}

// BMR computes the basal metabolic rate with the Mifflin-St Jeor formula.
func BMR(u UserData) float64 {
	base := 10*u.Weight + 6.25*u.Height - 5*u.Age
	if u.Gender == Male {
		return base + 5
	}
	return base - 161
}

// TDEE scales BMR by the activity multiplier. An activity level outside 1..7
// yields 0; UserData.Validate rejects such input beforehand.
func TDEE(u UserData) float64 {
	return BMR(u) * activityMultipliers[u.ActivityLevel]
}

// DailyCalorieTarget adjusts TDEE by the user's goal.
func DailyCalorieTarget(u UserData) float64 {
	tdee := TDEE(u)
	switch u.Goal {
	case Lose:
		return tdee + loseOffset
	case Gain:
		return tdee + gainOffset
	default:
		return tdee
	}
}

// DailyGoals derives the daily nutrient targets. Each field is rounded on its
// own, so the macro calories need not add up to the rounded calorie figure.
// Negative targets are passed through unclamped.
func DailyGoals(u UserData) Info {
	return goalsFor(DailyCalorieTarget(u))
}

func goalsFor(c float64) Info {
	return Info{
		Calories: math.Round(c),
		Protein:  math.Round(proteinShare * c / kcalPerProtein),
		Fat:      math.Round(fatShare * c / kcalPerFat),
		Carbs:    math.Round(carbsShare * c / kcalPerCarb),
		Fiber:    math.Round(c / 1000 * fiberPer1000),
	}
}

// Estimate bundles every intermediate value of the energy model.
type Estimate struct {
	BMR    float64
	TDEE   float64
	Target float64
	Goals  Info
}

// EstimateFor runs the full energy model for u.
func EstimateFor(u UserData) Estimate {
	target := DailyCalorieTarget(u)
	return Estimate{
		BMR:    BMR(u),
		TDEE:   TDEE(u),
		Target: target,
		Goals:  goalsFor(target),
	}
}
