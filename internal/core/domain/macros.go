package domain

// MacroField names one axis of a MacroVector.
type MacroField int

// Macro axes.
const (
	FieldCalories MacroField = iota
	FieldProtein
	FieldCarbs
	FieldFat
)

// String returns the field's JSON name.
func (f MacroField) String() string {
	switch f {
	case FieldCalories:
		return "calories"
	case FieldProtein:
		return "protein"
	case FieldCarbs:
		return "carbs"
	case FieldFat:
		return "fat"
	default:
		return "unknown"
	}
}

// MacroVector is a {calories, protein, carbs, fat} quantity. It is used both
// as a target and as a measured aggregate.
type MacroVector struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Field returns the value on one axis.
func (v MacroVector) Field(f MacroField) float64 {
	switch f {
	case FieldCalories:
		return v.Calories
	case FieldProtein:
		return v.Protein
	case FieldCarbs:
		return v.Carbs
	case FieldFat:
		return v.Fat
	default:
		return 0
	}
}

// Scale multiplies every field by factor.
func (v MacroVector) Scale(factor float64) MacroVector {
	return MacroVector{
		Calories: v.Calories * factor,
		Protein:  v.Protein * factor,
		Carbs:    v.Carbs * factor,
		Fat:      v.Fat * factor,
	}
}

// IsComplete reports whether every field is positive, which is what a
// target must be before deviation can be measured against it.
func (v MacroVector) IsComplete() bool {
	return v.Calories > 0 && v.Protein > 0 && v.Carbs > 0 && v.Fat > 0
}
