package services

import (
	"math"
	"testing"
	"time"
)

func TestSummarizeTodayEmpty(t *testing.T) {
	store := NewHistoryStore(fixedClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)))

	got := store.SummarizeToday()
	if got.Count != 0 {
		t.Errorf("Count = %d, want 0", got.Count)
	}
	if got.Date != "2025-03-10" {
		t.Errorf("Date = %q", got.Date)
	}
	if len(got.Levels) != 0 {
		t.Errorf("Levels = %v, want empty", got.Levels)
	}
}

func TestSummarizeToday(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	store := NewHistoryStore(fixedClock(day))

	scores := []struct {
		score float64
		level string
	}{
		{85.0, "Siap"},
		{75.0, "Cukup Siap"},
		{65.0, "Belum Siap"},
		{65.0, "Belum Siap"},
	}
	for i, s := range scores {
		rec := recordAt("anak", day.Add(time.Duration(i)*time.Minute))
		rec.Prediction = s.score
		rec.ReadinessLevel = s.level
		store.Append(rec)
	}

	got := store.SummarizeToday()
	if got.Count != 4 {
		t.Fatalf("Count = %d, want 4", got.Count)
	}
	if math.Abs(got.MeanScore-72.5) > 1e-9 {
		t.Errorf("MeanScore = %v, want 72.5", got.MeanScore)
	}
	if got.MinScore != 65.0 || got.MaxScore != 85.0 {
		t.Errorf("Min/Max = %v/%v, want 65/85", got.MinScore, got.MaxScore)
	}
	if got.StdDevScore <= 0 {
		t.Errorf("StdDevScore = %v, want > 0", got.StdDevScore)
	}
	if got.Levels["Belum Siap"] != 2 || got.Levels["Cukup Siap"] != 1 || got.Levels["Siap"] != 1 {
		t.Errorf("Levels = %v", got.Levels)
	}
}

func TestSummarizeTodaySingleRecord(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	store := NewHistoryStore(fixedClock(day))
	store.Append(recordAt("Andi", day))

	got := store.SummarizeToday()
	if got.Count != 1 {
		t.Fatalf("Count = %d, want 1", got.Count)
	}
	if got.StdDevScore != 0 {
		t.Errorf("StdDevScore = %v, want 0 for single record", got.StdDevScore)
	}
	if got.MeanScore != 85.0 {
		t.Errorf("MeanScore = %v, want 85", got.MeanScore)
	}
}
