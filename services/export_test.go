package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"school-readiness-api/models"
)

func TestExportTodayEmptyHistory(t *testing.T) {
	store := NewHistoryStore(fixedClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)))
	exporter := NewExporter(store)

	_, _, err := exporter.ExportToday()
	if !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("error = %v, want ErrEmptyHistory", err)
	}
}

func TestExportTodayWritesFile(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	store := NewHistoryStore(fixedClock(day))
	store.Append(recordAt("Andi", day))
	exporter := NewExporter(store)

	path, filename, err := exporter.ExportToday()
	if err != nil {
		t.Fatalf("ExportToday failed: %v", err)
	}
	defer os.Remove(path)

	if filename != "prediksi_kesiapan_siswa_20250310.csv" {
		t.Errorf("filename = %q", filename)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parsing export: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1 record", len(rows))
	}
}

func TestWriteCSVShape(t *testing.T) {
	ts := time.Date(2025, 3, 10, 14, 5, 9, 0, time.Local)
	rec := recordAt("Andi", ts)
	rec.Age = 5.5
	rec.Prediction = 75.5

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []models.PredictionRecord{rec}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing csv: %v", err)
	}

	wantHeader := []string{
		"name", "age", "gender", "father_education", "mother_education",
		"paud_experience", "prediction", "readiness_level", "timestamp",
	}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v", rows[0])
	}

	wantRow := []string{
		"Andi", "5.5 tahun", "L", "S1", "S1", "Ya", "75.50", "Siap", "2025-03-10 14:05:09",
	}
	if !reflect.DeepEqual(rows[1], wantRow) {
		t.Errorf("row = %v, want %v", rows[1], wantRow)
	}
}

func TestWriteCSVPreservesAppendOrder(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	records := []models.PredictionRecord{
		recordAt("first", day),
		recordAt("second", day.Add(time.Minute)),
		recordAt("third", day.Add(2*time.Minute)),
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, _ := csv.NewReader(&buf).ReadAll()
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	for i, want := range []string{"first", "second", "third"} {
		if rows[i+1][0] != want {
			t.Errorf("row %d name = %q, want %q", i+1, rows[i+1][0], want)
		}
	}
}
