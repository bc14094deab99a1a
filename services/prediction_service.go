package services

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"school-readiness-api/models"
	"school-readiness-api/predictor"
)

// PredictionService runs the dual-path inference: trained model when loaded
// and its encoders accept the input, rule table otherwise. Every successful
// prediction is appended to the daily history and published for live viewers.
type PredictionService struct {
	model   *predictor.Model // nil means permanent fallback mode
	history *HistoryStore
	cache   *CacheService
}

func NewPredictionService(model *predictor.Model, history *HistoryStore, cache *CacheService) *PredictionService {
	return &PredictionService{
		model:   model,
		history: history,
		cache:   cache,
	}
}

// ModelLoaded reports whether the trained model path is active.
func (s *PredictionService) ModelLoaded() bool {
	return s.model != nil
}

// Submit validates the input, runs inference, stamps and stores the record,
// and returns it. Invalid inputs fail before any state mutation.
func (s *PredictionService) Submit(name string, in predictor.Input) (models.PredictionRecord, error) {
	if err := in.Validate(); err != nil {
		predictionsRejected.Inc()
		return models.PredictionRecord{}, err
	}

	score, level, path := s.estimate(in)
	score = math.Round(score*100) / 100

	rec := models.PredictionRecord{
		Name:            name,
		Age:             in.Age,
		Gender:          in.Gender,
		FatherEducation: in.FatherEducation,
		MotherEducation: in.MotherEducation,
		PaudExperience:  in.PaudExperience,
		Prediction:      score,
		ReadinessLevel:  level,
		Timestamp:       s.history.Now().Truncate(time.Second),
	}
	s.history.Append(rec)

	predictionsTotal.WithLabelValues(path).Inc()
	predictionScores.Observe(score)

	if s.cache.Available() {
		go func() {
			if err := s.cache.Publish(context.Background(), PredictionsChannel, rec); err != nil {
				log.Printf("prediction publish failed: %v", err)
			}
		}()
	}

	return rec, nil
}

// estimate picks the inference path and reports which one was used.
func (s *PredictionService) estimate(in predictor.Input) (float64, string, string) {
	if s.model != nil {
		score, level, err := s.model.Predict(in)
		if err == nil {
			return score, level, "model"
		}
		if !errors.Is(err, predictor.ErrUnknownCategory) {
			log.Printf("model prediction failed, using fallback: %v", err)
		} else {
			log.Printf("encoding failed, using fallback: %v", err)
		}
	}
	score, level := predictor.FallbackEstimate(in)
	return score, level, "fallback"
}
