package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"school-readiness-api/predictor"
	"school-readiness-api/services"

	"github.com/gin-gonic/gin"
)

type PredictionHandler struct {
	predictions *services.PredictionService
	history     *services.HistoryStore
	cache       *services.CacheService
}

func NewPredictionHandler(predictions *services.PredictionService, history *services.HistoryStore, cache *services.CacheService) *PredictionHandler {
	return &PredictionHandler{predictions: predictions, history: history, cache: cache}
}

type PredictRequest struct {
	Name            string  `json:"name" binding:"required"`
	Age             float64 `json:"age" binding:"required"`
	Gender          string  `json:"gender" binding:"required"`
	FatherEducation string  `json:"father_education" binding:"required"`
	MotherEducation string  `json:"mother_education" binding:"required"`
	PaudExperience  string  `json:"paud_experience" binding:"required"`
}

type PredictResponse struct {
	Prediction     float64 `json:"prediction"`
	ReadinessLevel string  `json:"readiness_level"`
}

func (h *PredictionHandler) Submit(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.predictions.Submit(req.Name, predictor.Input{
		Age:             req.Age,
		Gender:          req.Gender,
		FatherEducation: req.FatherEducation,
		MotherEducation: req.MotherEducation,
		PaudExperience:  req.PaudExperience,
	})
	if err != nil {
		var invalid *predictor.InvalidInputError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}

	c.JSON(http.StatusOK, PredictResponse{
		Prediction:     rec.Prediction,
		ReadinessLevel: rec.ReadinessLevel,
	})
}

func (h *PredictionHandler) GetToday(c *gin.Context) {
	records := h.history.Today()
	c.JSON(http.StatusOK, gin.H{"data": records, "count": len(records)})
}

func (h *PredictionHandler) GetSummary(c *gin.Context) {
	cacheKey := "kesiapan:summary:" + h.history.Now().Format("20060102")

	var cached services.DailySummary
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && cached.Date != "" {
		c.JSON(http.StatusOK, cached)
		return
	}

	summary := h.history.SummarizeToday()
	go h.cache.Set(context.Background(), cacheKey, summary, 10*time.Second)

	c.JSON(http.StatusOK, summary)
}

// GetOptions exposes the enumerated input domains for form dropdowns.
func (h *PredictionHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"age_ranges":       predictor.AgeRanges,
		"genders":          predictor.GenderClasses,
		"education_levels": predictor.EducationLevels,
		"paud_options":     predictor.PaudOptions,
		"model_loaded":     h.predictions.ModelLoaded(),
	})
}
