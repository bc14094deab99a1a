package predictor

import "fmt"

// Enumerated input domains. These mirror the categories the model was
// trained on; anything outside them is rejected before inference.
var (
	AgeRanges       = []float64{5.0, 5.5, 6.0, 6.5, 7.0}
	GenderClasses   = []string{"L", "P"}
	EducationLevels = []string{"Tidak Sekolah", "SD", "SMP", "SMA", "D3", "S1", "S2"}
	PaudOptions     = []string{"Ya", "Tidak"}
)

// Readiness levels, ordered from least to most prepared.
const (
	LevelBelumSiap = "Belum Siap"
	LevelCukupSiap = "Cukup Siap"
	LevelSiap      = "Siap"
)

// Input is one prediction request after transport-level binding.
type Input struct {
	Age             float64
	Gender          string
	FatherEducation string
	MotherEducation string
	PaudExperience  string
}

// InvalidInputError reports a field whose value is outside its enumerated domain.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %q is not an accepted value", e.Field, e.Value)
}

// Validate checks every field against its enumerated domain. It returns the
// first violation found as an *InvalidInputError.
func (in Input) Validate() error {
	if !containsFloat(AgeRanges, in.Age) {
		return &InvalidInputError{Field: "age", Value: fmt.Sprintf("%g", in.Age)}
	}
	if !containsString(GenderClasses, in.Gender) {
		return &InvalidInputError{Field: "gender", Value: in.Gender}
	}
	if !containsString(EducationLevels, in.FatherEducation) {
		return &InvalidInputError{Field: "father_education", Value: in.FatherEducation}
	}
	if !containsString(EducationLevels, in.MotherEducation) {
		return &InvalidInputError{Field: "mother_education", Value: in.MotherEducation}
	}
	if !containsString(PaudOptions, in.PaudExperience) {
		return &InvalidInputError{Field: "paud_experience", Value: in.PaudExperience}
	}
	return nil
}

// ClassifyScore maps a clamped score onto a readiness level.
func ClassifyScore(score float64) string {
	switch {
	case score >= 85:
		return LevelSiap
	case score >= 75:
		return LevelCukupSiap
	default:
		return LevelBelumSiap
	}
}

func containsFloat(set []float64, v float64) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
