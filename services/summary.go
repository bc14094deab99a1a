package services

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DailySummary aggregates one day's bucket for the dashboard.
type DailySummary struct {
	Date        string         `json:"date"`
	Count       int            `json:"count"`
	MeanScore   float64        `json:"mean_score"`
	StdDevScore float64        `json:"stddev_score"`
	MinScore    float64        `json:"min_score"`
	MaxScore    float64        `json:"max_score"`
	Levels      map[string]int `json:"levels"`
}

// SummarizeToday computes score statistics and per-level counts over today's
// snapshot.
func (s *HistoryStore) SummarizeToday() DailySummary {
	now := s.Now()
	records := s.Snapshot(now)

	summary := DailySummary{
		Date:   now.Format("2006-01-02"),
		Count:  len(records),
		Levels: make(map[string]int),
	}
	if len(records) == 0 {
		return summary
	}

	scores := make([]float64, len(records))
	for i, rec := range records {
		scores[i] = rec.Prediction
		summary.Levels[rec.ReadinessLevel]++
	}

	summary.MeanScore = stat.Mean(scores, nil)
	if len(scores) > 1 {
		summary.StdDevScore = stat.StdDev(scores, nil)
	}
	summary.MinScore = floats.Min(scores)
	summary.MaxScore = floats.Max(scores)

	return summary
}
