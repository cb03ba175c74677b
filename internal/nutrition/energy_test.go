package nutrition

import (
	"errors"
	"math"
	"testing"
)

func referenceUser() UserData {
	return UserData{
		Name:          "Alex",
		Weight:        70,
		Height:        170,
		Age:           30,
		Gender:        Male,
		ActivityLevel: 3,
		Goal:          Maintain,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBMRMale(t *testing.T) {
	u := referenceUser()
	if got := BMR(u); !almostEqual(got, 1617.5) {
		t.Fatalf("expected BMR 1617.5, got %v", got)
	}
}

func TestBMRFemale(t *testing.T) {
	u := referenceUser()
	u.Gender = Female
	want := 10*70 + 6.25*170 - 5*30 - 161.0
	if got := BMR(u); !almostEqual(got, want) {
		t.Fatalf("expected BMR %v, got %v", want, got)
	}
}

func TestTDEEUsesMultiplierTable(t *testing.T) {
	tests := []struct {
		level ActivityLevel
		mult  float64
	}{
		{1, 1.20},
		{2, 1.275},
		{3, 1.35},
		{4, 1.465},
		{5, 1.55},
		{6, 1.725},
		{7, 1.90},
	}
	for _, tt := range tests {
		u := referenceUser()
		u.ActivityLevel = tt.level
		want := BMR(u) * tt.mult
		if got := TDEE(u); !almostEqual(got, want) {
			t.Errorf("level %d: expected TDEE %v, got %v", tt.level, want, got)
		}
		if m, ok := ActivityMultiplier(tt.level); !ok || m != tt.mult {
			t.Errorf("level %d: expected multiplier %v, got %v (ok=%v)", tt.level, tt.mult, m, ok)
		}
	}
}

func TestDailyCalorieTargetByGoal(t *testing.T) {
	tests := []struct {
		goal   Goal
		offset float64
	}{
		{Lose, -500},
		{Maintain, 0},
		{Gain, 300},
	}
	for _, tt := range tests {
		u := referenceUser()
		u.Goal = tt.goal
		want := 2183.625 + tt.offset
		if got := DailyCalorieTarget(u); !almostEqual(got, want) {
			t.Errorf("goal %s: expected %v, got %v", tt.goal, want, got)
		}
	}
}

func TestDailyGoalsReferenceProfile(t *testing.T) {
	got := DailyGoals(referenceUser())
	want := Info{Calories: 2184, Protein: 164, Fat: 73, Carbs: 218, Fiber: 31}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestDailyGoalsMacroCaloriesApproximateTarget(t *testing.T) {
	for level := MinActivityLevel; level <= MaxActivityLevel; level++ {
		for _, goal := range []Goal{Lose, Maintain, Gain} {
			for _, gender := range []Gender{Male, Female} {
				u := referenceUser()
				u.ActivityLevel = level
				u.Goal = goal
				u.Gender = gender
				target := DailyCalorieTarget(u)
				g := DailyGoals(u)
				macroKcal := g.Protein*4 + g.Fat*9 + g.Carbs*4
				// each rounding moves the total by at most 0.5 g times its kcal density
				if diff := math.Abs(macroKcal - target); diff > 0.5*4+0.5*9+0.5*4 {
					t.Errorf("level=%d goal=%s gender=%s: macro kcal %v too far from target %v",
						level, goal, gender, macroKcal, target)
				}
			}
		}
	}
}

func TestDailyGoalsNegativeTargetIsNotClamped(t *testing.T) {
	u := UserData{Weight: 1, Height: 1, Age: 120, Gender: Female, ActivityLevel: 1, Goal: Lose}
	g := DailyGoals(u)
	if g.Calories >= 0 {
		t.Fatalf("expected negative calories to pass through, got %v", g.Calories)
	}
	if g.Protein >= 0 || g.Fat >= 0 || g.Carbs >= 0 {
		t.Fatalf("expected negative macros to pass through, got %+v", g)
	}
}

func TestGoalsRoundHalfAwayFromZero(t *testing.T) {
	if got := goalsFor(-2.5).Calories; got != -3 {
		t.Errorf("expected -2.5 kcal to round to -3, got %v", got)
	}
	if got := goalsFor(2.5).Calories; got != 3 {
		t.Errorf("expected 2.5 kcal to round to 3, got %v", got)
	}
}

func TestEstimateForMatchesParts(t *testing.T) {
	u := referenceUser()
	e := EstimateFor(u)
	if !almostEqual(e.BMR, 1617.5) {
		t.Errorf("expected BMR 1617.5, got %v", e.BMR)
	}
	if !almostEqual(e.TDEE, 2183.625) {
		t.Errorf("expected TDEE 2183.625, got %v", e.TDEE)
	}
	if !almostEqual(e.Target, 2183.625) {
		t.Errorf("expected target 2183.625, got %v", e.Target)
	}
	if e.Goals != DailyGoals(u) {
		t.Errorf("expected goals %+v, got %+v", DailyGoals(u), e.Goals)
	}
}

func TestNewUserDataNormalizesAndValidates(t *testing.T) {
	u, err := NewUserData("  Alex  ", 70, 170, 30, "MALE", 3, "Maintain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "Alex" {
		t.Errorf("expected trimmed name, got %q", u.Name)
	}
	if u.Gender != Male || u.Goal != Maintain {
		t.Errorf("expected normalized enums, got gender=%q goal=%q", u.Gender, u.Goal)
	}
}

func TestNewUserDataRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*UserData)
		wantErr error
	}{
		{"activity zero", func(u *UserData) { u.ActivityLevel = 0 }, ErrInvalidActivityLevel},
		{"activity eight", func(u *UserData) { u.ActivityLevel = 8 }, ErrInvalidActivityLevel},
		{"gender", func(u *UserData) { u.Gender = "other" }, ErrInvalidGender},
		{"goal", func(u *UserData) { u.Goal = "bulk" }, ErrInvalidGoal},
		{"weight", func(u *UserData) { u.Weight = 0 }, ErrInvalidBiometrics},
		{"height", func(u *UserData) { u.Height = -1 }, ErrInvalidBiometrics},
		{"age", func(u *UserData) { u.Age = 0 }, ErrInvalidBiometrics},
		{"weight NaN", func(u *UserData) { u.Weight = math.NaN() }, ErrInvalidBiometrics},
		{"height infinite", func(u *UserData) { u.Height = math.Inf(1) }, ErrInvalidBiometrics},
		{"age NaN", func(u *UserData) { u.Age = math.NaN() }, ErrInvalidBiometrics},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := referenceUser()
			tt.mutate(&u)
			_, err := NewUserData(u.Name, u.Weight, u.Height, u.Age, u.Gender, u.ActivityLevel, u.Goal)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
