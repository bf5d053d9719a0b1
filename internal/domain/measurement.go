// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// MeasurementRecord is a single dated body-composition measurement.
// Day carries the calendar date only; time-of-day is not significant.
type MeasurementRecord struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Day            time.Time `json:"day"`
	Weight         float64   `json:"weight"`
	BodyFatPercent float64   `json:"bodyFatPercent"`
	Unit           string    `json:"unit"`
	CreatedAt      time.Time `json:"createdAt"`
}

// RecordRepository is the port for measurement persistence. ListByUser
// returns records ordered by day ascending.
type RecordRepository interface {
	AddRecord(ctx context.Context, userID int64, day time.Time, weight, bodyFat float64, unit string, createdAt time.Time) (int64, error)
	UpdateRecord(ctx context.Context, userID, id int64, day time.Time, weight, bodyFat float64, unit string) error
	DeleteRecord(ctx context.Context, userID, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]MeasurementRecord, error)
	ListRecentRecords(ctx context.Context, userID int64, limit int) ([]MeasurementRecord, error)
}
