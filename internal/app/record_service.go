package app

import (
	"context"
	"errors"
	"time"

	"bodycomp/internal/domain"
)

var (
	// ErrInvalidWeight indicates a non-positive weight value.
	ErrInvalidWeight = errors.New("weight must be > 0")
	// ErrInvalidBodyFat indicates a body-fat percent outside [0, 100].
	ErrInvalidBodyFat = errors.New("body fat percent must be within [0, 100]")
	// ErrInvalidUnit indicates an unrecognised weight unit.
	ErrInvalidUnit = errors.New("unit must be \"kg\" or \"lb\"")
)

// RecordService encapsulates measurement-record use cases.
type RecordService struct {
	repo domain.RecordRepository
}

// NewRecordService creates a RecordService backed by the given repository.
func NewRecordService(repo domain.RecordRepository) *RecordService {
	return &RecordService{repo: repo}
}

func validateMeasurement(weight, bodyFat float64, unit string) error {
	if weight <= 0 {
		return ErrInvalidWeight
	}
	if bodyFat < 0 || bodyFat > 100 {
		return ErrInvalidBodyFat
	}
	if !domain.ValidUnit(unit) {
		return ErrInvalidUnit
	}
	return nil
}

// Record validates and stores a new measurement for the given day.
func (s *RecordService) Record(ctx context.Context, userID int64, day time.Time, weight, bodyFat float64, unit string) (int64, error) {
	if err := validateMeasurement(weight, bodyFat, unit); err != nil {
		return 0, err
	}
	return s.repo.AddRecord(ctx, userID, day, weight, bodyFat, unit, time.Now())
}

// Update validates and replaces an existing measurement.
func (s *RecordService) Update(ctx context.Context, userID, id int64, day time.Time, weight, bodyFat float64, unit string) error {
	if err := validateMeasurement(weight, bodyFat, unit); err != nil {
		return err
	}
	return s.repo.UpdateRecord(ctx, userID, id, day, weight, bodyFat, unit)
}

// Delete removes a measurement owned by the user.
func (s *RecordService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.DeleteRecord(ctx, userID, id)
}

// History returns all measurements for the user, ordered by day ascending.
func (s *RecordService) History(ctx context.Context, userID int64) ([]domain.MeasurementRecord, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListRecent returns the most recent measurements up to limit.
func (s *RecordService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.MeasurementRecord, error) {
	return s.repo.ListRecentRecords(ctx, userID, limit)
}
