package nutrition

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Validation errors for UserData.
var (
	ErrInvalidActivityLevel = errors.New("activity level must be between 1 and 7")
	ErrInvalidGender        = errors.New("gender must be male or female")
	ErrInvalidGoal          = errors.New("goal must be lose, maintain or gain")
	ErrInvalidBiometrics    = errors.New("weight, height and age must be positive finite numbers")
)

// Gender selects the Mifflin-St Jeor constant.
type Gender string

// Supported genders.
const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Goal selects the calorie adjustment applied to TDEE.
type Goal string

// Supported goals.
const (
	Lose     Goal = "lose"
	Maintain Goal = "maintain"
	Gain     Goal = "gain"
)

// ActivityLevel ranges from 1 (sedentary) to 7 (athlete).
type ActivityLevel int

// Activity level bounds.
const (
	MinActivityLevel ActivityLevel = 1
	MaxActivityLevel ActivityLevel = 7
)

// UserData is the biometric snapshot a profile's goals are derived from.
type UserData struct {
	Name          string        `json:"name"          cbor:"name"`
	Weight        float64       `json:"weight"        cbor:"weight"`
	Height        float64       `json:"height"        cbor:"height"`
	Age           float64       `json:"age"           cbor:"age"`
	Gender        Gender        `json:"gender"        cbor:"gender"`
	ActivityLevel ActivityLevel `json:"activityLevel" cbor:"activityLevel"`
	Goal          Goal          `json:"goal"          cbor:"goal"`
}

// NewUserData builds a validated UserData. Name is trimmed; gender and goal are
// matched case-insensitively.
func NewUserData(
	name string,
	weight, height, age float64,
	gender Gender,
	level ActivityLevel,
	goal Goal,
) (UserData, error) {
	u := UserData{
		Name:          strings.TrimSpace(name),
		Weight:        weight,
		Height:        height,
		Age:           age,
		Gender:        Gender(strings.ToLower(string(gender))),
		ActivityLevel: level,
		Goal:          Goal(strings.ToLower(string(goal))),
	}
	if err := u.Validate(); err != nil {
		return UserData{}, err
	}
	return u, nil
}

// positive is false for NaN and +Inf as well as for values <= 0.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Validate checks the preconditions of the energy model.
func (u UserData) Validate() error {
	if !positive(u.Weight) || !positive(u.Height) || !positive(u.Age) {
		return fmt.Errorf("%w: weight=%g height=%g age=%g", ErrInvalidBiometrics, u.Weight, u.Height, u.Age)
	}
	switch u.Gender {
	case Male, Female:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidGender, u.Gender)
	}
	if _, ok := activityMultipliers[u.ActivityLevel]; !ok {
		return fmt.Errorf("%w: %d", ErrInvalidActivityLevel, u.ActivityLevel)
	}
	switch u.Goal {
	case Lose, Maintain, Gain:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidGoal, u.Goal)
	}
	return nil
}
