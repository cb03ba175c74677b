package nutrition

import "math"

// Info holds the five tracked nutrients. Calories are kcal, the rest grams.
//
// The same shape is used for daily goals and for consumed aggregates; callers
// name the role at the use site.
type Info struct {
	Calories float64 `json:"calories" yaml:"calories" cbor:"calories"`
	Protein  float64 `json:"protein"  yaml:"protein"  cbor:"protein"`
	Fat      float64 `json:"fat"      yaml:"fat"      cbor:"fat"`
	Carbs    float64 `json:"carbs"    yaml:"carbs"    cbor:"carbs"`
	Fiber    float64 `json:"fiber"    yaml:"fiber"    cbor:"fiber"`
}

// Add returns the field-wise sum of i and o.
func (i Info) Add(o Info) Info {
	return Info{
		Calories: i.Calories + o.Calories,
		Protein:  i.Protein + o.Protein,
		Fat:      i.Fat + o.Fat,
		Carbs:    i.Carbs + o.Carbs,
		Fiber:    i.Fiber + o.Fiber,
	}
}

// Sub returns i minus o, field by field.
func (i Info) Sub(o Info) Info {
	return Info{
		Calories: i.Calories - o.Calories,
		Protein:  i.Protein - o.Protein,
		Fat:      i.Fat - o.Fat,
		Carbs:    i.Carbs - o.Carbs,
		Fiber:    i.Fiber - o.Fiber,
	}
}

// Scale multiplies every field by factor.
func (i Info) Scale(factor float64) Info {
	return Info{
		Calories: i.Calories * factor,
		Protein:  i.Protein * factor,
		Fat:      i.Fat * factor,
		Carbs:    i.Carbs * factor,
		Fiber:    i.Fiber * factor,
	}
}

// Round rounds every field independently to the nearest integer.
func (i Info) Round() Info {
	return Info{
		Calories: math.Round(i.Calories),
		Protein:  math.Round(i.Protein),
		Fat:      math.Round(i.Fat),
		Carbs:    math.Round(i.Carbs),
		Fiber:    math.Round(i.Fiber),
	}
}

// IsZero reports whether every field is zero.
func (i Info) IsZero() bool {
	return i == Info{}
}
