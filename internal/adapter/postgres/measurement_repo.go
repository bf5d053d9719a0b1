package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bodycomp/internal/domain"
)

// AddRecord inserts a new measurement record.
func (d *DB) AddRecord(ctx context.Context, userID int64, day time.Time, weight, bodyFat float64, unit string, createdAt time.Time) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO measurements(user_id, day, weight, body_fat, unit, created_at) VALUES($1, $2, $3, $4, $5, $6) RETURNING id;",
		userID, day.Format("2006-01-02"), weight, bodyFat, unit, createdAt.UTC(),
	).Scan(&id)
	return id, err
}

// UpdateRecord replaces a measurement owned by the user.
func (d *DB) UpdateRecord(ctx context.Context, userID, id int64, day time.Time, weight, bodyFat float64, unit string) error {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE measurements SET day=$1, weight=$2, body_fat=$3, unit=$4 WHERE id=$5 AND user_id=$6;",
		day.Format("2006-01-02"), weight, bodyFat, unit, id, userID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.New("record not found")
	}
	return nil
}

// DeleteRecord removes a measurement owned by the user.
func (d *DB) DeleteRecord(ctx context.Context, userID, id int64) error {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM measurements WHERE id=$1 AND user_id=$2;", id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.New("record not found")
	}
	return nil
}

// ListByUser returns the user's measurements ordered by day ascending, with
// insertion order breaking ties between same-day entries.
func (d *DB) ListByUser(ctx context.Context, userID int64) ([]domain.MeasurementRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, day, weight, body_fat, unit, created_at FROM measurements WHERE user_id=$1 ORDER BY day ASC, id ASC;", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// ListRecentRecords returns the user's most recent measurements up to limit.
func (d *DB) ListRecentRecords(ctx context.Context, userID int64, limit int) ([]domain.MeasurementRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, day, weight, body_fat, unit, created_at FROM measurements WHERE user_id=$1 ORDER BY day DESC, id DESC LIMIT $2;",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]domain.MeasurementRecord, error) {
	out := make([]domain.MeasurementRecord, 0)
	for rows.Next() {
		var r domain.MeasurementRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.Day, &r.Weight, &r.BodyFatPercent, &r.Unit, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
