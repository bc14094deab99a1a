package predictor

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownCategory is returned when an encoder is given a label it was not
// trained on. Callers are expected to fall back to the rule table.
var ErrUnknownCategory = errors.New("unknown category")

// LabelEncoder maps category labels to the numeric codes assigned during
// training (position in the exported class list).
type LabelEncoder struct {
	codes map[string]float64
}

func NewLabelEncoder(classes []string) *LabelEncoder {
	codes := make(map[string]float64, len(classes))
	for i, c := range classes {
		codes[c] = float64(i)
	}
	return &LabelEncoder{codes: codes}
}

// Encode returns the numeric code for label, or a wrapped ErrUnknownCategory
// if the label was not seen during training.
func (e *LabelEncoder) Encode(label string) (float64, error) {
	code, ok := e.codes[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
	}
	return code, nil
}

// Regressor produces a raw readiness score from an encoded feature vector.
type Regressor interface {
	Predict(features []float64) float64
}

// Model pairs a trained regressor with the encoders for each categorical
// feature. Read-only after construction; safe for concurrent use.
type Model struct {
	Version   string
	regressor Regressor
	gender    *LabelEncoder
	education *LabelEncoder
	paud      *LabelEncoder
}

func NewModel(version string, r Regressor, gender, education, paud *LabelEncoder) *Model {
	return &Model{
		Version:   version,
		regressor: r,
		gender:    gender,
		education: education,
		paud:      paud,
	}
}

// Predict encodes the categorical fields, runs the regressor on the feature
// vector [age, gender, father, mother, paud], clamps the score into [0,100]
// and classifies it. An encoding failure surfaces as ErrUnknownCategory.
func (m *Model) Predict(in Input) (float64, string, error) {
	genderCode, err := m.gender.Encode(in.Gender)
	if err != nil {
		return 0, "", fmt.Errorf("encode gender: %w", err)
	}
	fatherCode, err := m.education.Encode(in.FatherEducation)
	if err != nil {
		return 0, "", fmt.Errorf("encode father_education: %w", err)
	}
	motherCode, err := m.education.Encode(in.MotherEducation)
	if err != nil {
		return 0, "", fmt.Errorf("encode mother_education: %w", err)
	}
	paudCode, err := m.paud.Encode(in.PaudExperience)
	if err != nil {
		return 0, "", fmt.Errorf("encode paud_experience: %w", err)
	}

	features := []float64{in.Age, genderCode, fatherCode, motherCode, paudCode}
	raw := m.regressor.Predict(features)
	score := math.Max(0.0, math.Min(100.0, raw))

	return score, ClassifyScore(score), nil
}
