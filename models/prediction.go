package models

import "time"

// PredictionRecord is one stored readiness prediction. Immutable once created;
// it lives in the daily history until evicted or the process restarts.
type PredictionRecord struct {
	Name            string    `json:"name"`
	Age             float64   `json:"age"`
	Gender          string    `json:"gender"`
	FatherEducation string    `json:"father_education"`
	MotherEducation string    `json:"mother_education"`
	PaudExperience  string    `json:"paud_experience"`
	Prediction      float64   `json:"prediction"`
	ReadinessLevel  string    `json:"readiness_level"`
	Timestamp       time.Time `json:"timestamp"`
}
