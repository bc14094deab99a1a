package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"school-readiness-api/models"
)

// ErrEmptyHistory means there is nothing to export for the requested day.
var ErrEmptyHistory = errors.New("no predictions recorded for this date")

var csvHeader = []string{
	"name", "age", "gender", "father_education", "mother_education",
	"paud_experience", "prediction", "readiness_level", "timestamp",
}

// Exporter serializes a day's history bucket to a CSV attachment.
type Exporter struct {
	history *HistoryStore
}

func NewExporter(history *HistoryStore) *Exporter {
	return &Exporter{history: history}
}

// ExportToday writes today's bucket to a temporary file and returns its path
// together with the download filename. The caller owns the file and must
// remove it once transmitted. Partial files are removed on write failure.
func (e *Exporter) ExportToday() (path, filename string, err error) {
	now := e.history.Now()
	records := e.history.Snapshot(now)
	if len(records) == 0 {
		return "", "", ErrEmptyHistory
	}

	f, err := os.CreateTemp("", "kesiapan-export-*.csv")
	if err != nil {
		exportsFailed.Inc()
		return "", "", fmt.Errorf("create export file: %w", err)
	}

	if err := WriteCSV(f, records); err != nil {
		f.Close()
		os.Remove(f.Name())
		exportsFailed.Inc()
		return "", "", fmt.Errorf("write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		exportsFailed.Inc()
		return "", "", fmt.Errorf("close export file: %w", err)
	}

	exportsGenerated.Inc()
	filename = fmt.Sprintf("prediksi_kesiapan_siswa_%s.csv", now.Format(dayKeyLayout))
	return f.Name(), filename, nil
}

// WriteCSV writes the header row and one row per record, in order.
func WriteCSV(w io.Writer, records []models.PredictionRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Name,
			fmt.Sprintf("%.1f tahun", rec.Age),
			rec.Gender,
			rec.FatherEducation,
			rec.MotherEducation,
			rec.PaudExperience,
			strconv.FormatFloat(rec.Prediction, 'f', 2, 64),
			rec.ReadinessLevel,
			rec.Timestamp.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
