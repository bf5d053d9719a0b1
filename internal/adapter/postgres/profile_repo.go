package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bodycomp/internal/domain"
)

// GetProfile returns the user's profile, or nil if none is stored.
func (d *DB) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := d.sql.QueryRowContext(ctx,
		"SELECT user_id, sex, date_of_birth, height_in, activity_level, goal, target_weight, target_rate, unit, updated_at FROM profiles WHERE user_id=$1;",
		userID,
	).Scan(&p.UserID, &p.Sex, &p.DateOfBirth, &p.HeightIn, &p.ActivityLevel, &p.Goal, &p.TargetWeight, &p.TargetRate, &p.Unit, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PutProfile inserts or replaces the user's profile.
func (d *DB) PutProfile(ctx context.Context, p domain.UserProfile) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO profiles(user_id, sex, date_of_birth, height_in, activity_level, goal, target_weight, target_rate, unit, updated_at)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (user_id) DO UPDATE SET
		   sex=EXCLUDED.sex, date_of_birth=EXCLUDED.date_of_birth, height_in=EXCLUDED.height_in,
		   activity_level=EXCLUDED.activity_level, goal=EXCLUDED.goal, target_weight=EXCLUDED.target_weight,
		   target_rate=EXCLUDED.target_rate, unit=EXCLUDED.unit, updated_at=EXCLUDED.updated_at;`,
		p.UserID, p.Sex, p.DateOfBirth.Format("2006-01-02"), p.HeightIn, p.ActivityLevel, p.Goal,
		p.TargetWeight, p.TargetRate, p.Unit, p.UpdatedAt.UTC(),
	)
	return err
}
