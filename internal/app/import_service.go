package app

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// ImportService parses CSV measurement exports into stored records.
// Expected row shape: date,weight,bodyFat[,unit] with an optional header.
type ImportService struct {
	records *RecordService
}

// NewImportService creates an ImportService writing through the given
// record service so imported rows get the same validation as manual entry.
func NewImportService(records *RecordService) *ImportService {
	return &ImportService{records: records}
}

// ImportCSV reads measurement rows from r and stores the valid ones for the
// user. Rows that fail to parse or validate are skipped, not fatal; the
// header row, if present, is skipped the same way. Rows without an explicit
// unit column fall back to defaultUnit.
func (s *ImportService) ImportCSV(ctx context.Context, userID int64, r io.Reader, defaultUnit string) (imported, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, skipped, err
		}
		if len(row) < 2 {
			skipped++
			continue
		}

		day, err := time.Parse("2006-01-02", strings.TrimSpace(row[0]))
		if err != nil {
			// Covers the header row as well as malformed dates.
			skipped++
			continue
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			skipped++
			continue
		}

		var bodyFat float64
		if len(row) >= 3 && strings.TrimSpace(row[2]) != "" {
			bodyFat, err = strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
			if err != nil {
				skipped++
				continue
			}
		}

		unit := defaultUnit
		if len(row) >= 4 && strings.TrimSpace(row[3]) != "" {
			unit = strings.TrimSpace(row[3])
		}

		if _, err := s.records.Record(ctx, userID, day, weight, bodyFat, unit); err != nil {
			skipped++
			continue
		}
		imported++
	}

	log.Debugf("csv import for user %d: %d imported, %d skipped", userID, imported, skipped)
	return imported, skipped, nil
}
