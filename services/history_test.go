package services

import (
	"fmt"
	"testing"
	"time"

	"school-readiness-api/models"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func recordAt(name string, ts time.Time) models.PredictionRecord {
	return models.PredictionRecord{
		Name:            name,
		Age:             6.0,
		Gender:          "L",
		FatherEducation: "S1",
		MotherEducation: "S1",
		PaudExperience:  "Ya",
		Prediction:      85.0,
		ReadinessLevel:  "Siap",
		Timestamp:       ts,
	}
}

func TestHistoryStoreAppendAndSnapshot(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	store := NewHistoryStore(fixedClock(day))

	store.Append(recordAt("Andi", day))
	store.Append(recordAt("Budi", day.Add(time.Minute)))

	got := store.Today()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "Andi" || got[1].Name != "Budi" {
		t.Errorf("order = [%s, %s], want [Andi, Budi]", got[0].Name, got[1].Name)
	}
}

func TestHistoryStoreEvictsOldest(t *testing.T) {
	day := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	store := NewHistoryStore(fixedClock(day))

	for i := 0; i < DailyCapacity+1; i++ {
		store.Append(recordAt(fmt.Sprintf("anak-%02d", i), day.Add(time.Duration(i)*time.Minute)))
	}

	got := store.Today()
	if len(got) != DailyCapacity {
		t.Fatalf("len = %d, want %d", len(got), DailyCapacity)
	}
	// anak-00 evicted; remaining records keep their relative order.
	if got[0].Name != "anak-01" {
		t.Errorf("oldest = %s, want anak-01", got[0].Name)
	}
	if got[len(got)-1].Name != "anak-30" {
		t.Errorf("newest = %s, want anak-30", got[len(got)-1].Name)
	}
	for i, rec := range got {
		want := fmt.Sprintf("anak-%02d", i+1)
		if rec.Name != want {
			t.Fatalf("index %d = %s, want %s", i, rec.Name, want)
		}
	}
}

func TestHistoryStoreBucketsByDay(t *testing.T) {
	monday := time.Date(2025, 3, 10, 23, 50, 0, 0, time.Local)
	tuesday := time.Date(2025, 3, 11, 0, 5, 0, 0, time.Local)
	store := NewHistoryStore(fixedClock(tuesday))

	store.Append(recordAt("late", monday))
	store.Append(recordAt("early", tuesday))

	if got := store.Snapshot(monday); len(got) != 1 || got[0].Name != "late" {
		t.Errorf("monday bucket = %v", got)
	}
	if got := store.Today(); len(got) != 1 || got[0].Name != "early" {
		t.Errorf("tuesday bucket = %v", got)
	}
}

func TestHistoryStoreSnapshotIsCopy(t *testing.T) {
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	store := NewHistoryStore(fixedClock(day))
	store.Append(recordAt("Andi", day))

	snap := store.Today()
	snap[0].Name = "mutated"

	if got := store.Today(); got[0].Name != "Andi" {
		t.Errorf("store record mutated through snapshot: %q", got[0].Name)
	}
}

func TestHistoryStoreEmptyDay(t *testing.T) {
	store := NewHistoryStore(fixedClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)))
	if got := store.Today(); len(got) != 0 {
		t.Errorf("empty day snapshot = %v", got)
	}
}
