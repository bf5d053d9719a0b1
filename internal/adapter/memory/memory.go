// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"bodycomp/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	records  []domain.MeasurementRecord
	profiles map[int64]domain.UserProfile
	users    []*domain.User
	sessions map[string]*domain.Session

	recordIDCounter int64
	userIDCounter   int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		profiles: make(map[int64]domain.UserProfile),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.RecordRepository = (*DB)(nil)
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- RecordRepository ---

// AddRecord stores a new measurement record.
func (db *DB) AddRecord(ctx context.Context, userID int64, day time.Time, weight, bodyFat float64, unit string, createdAt time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.recordIDCounter++
	db.records = append(db.records, domain.MeasurementRecord{
		ID:             db.recordIDCounter,
		UserID:         userID,
		Day:            day,
		Weight:         weight,
		BodyFatPercent: bodyFat,
		Unit:           unit,
		CreatedAt:      createdAt.UTC(),
	})
	return db.recordIDCounter, nil
}

// UpdateRecord replaces a measurement owned by the user.
func (db *DB) UpdateRecord(ctx context.Context, userID, id int64, day time.Time, weight, bodyFat float64, unit string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, r := range db.records {
		if r.ID == id && r.UserID == userID {
			db.records[i].Day = day
			db.records[i].Weight = weight
			db.records[i].BodyFatPercent = bodyFat
			db.records[i].Unit = unit
			return nil
		}
	}
	return errors.New("record not found")
}

// DeleteRecord removes a measurement owned by the user.
func (db *DB) DeleteRecord(ctx context.Context, userID, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, r := range db.records {
		if r.ID == id && r.UserID == userID {
			db.records = append(db.records[:i], db.records[i+1:]...)
			return nil
		}
	}
	return errors.New("record not found")
}

// ListByUser returns the user's measurements ordered by day ascending.
func (db *DB) ListByUser(ctx context.Context, userID int64) ([]domain.MeasurementRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.MeasurementRecord, 0)
	for _, r := range db.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

// ListRecentRecords returns the user's most recent measurements up to limit.
func (db *DB) ListRecentRecords(ctx context.Context, userID int64, limit int) ([]domain.MeasurementRecord, error) {
	all, _ := db.ListByUser(ctx, userID)
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	// Most recent first.
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all, nil
}

// --- ProfileRepository ---

// GetProfile returns the user's profile, or nil if none is stored.
func (db *DB) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if p, ok := db.profiles[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

// PutProfile stores the user's profile.
func (db *DB) PutProfile(ctx context.Context, p domain.UserProfile) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.profiles[p.UserID] = p
	return nil
}

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		if time.Now().After(s.ExpiresAt) {
			delete(r.db.sessions, token)
			return nil, nil
		}
		return s, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
