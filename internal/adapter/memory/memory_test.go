package memory

import (
	"context"
	"testing"
	"time"

	"bodycomp/internal/domain"
)

func TestRecordRepository(t *testing.T) {
	db := New()
	ctx := context.Background()
	userID := int64(1)
	day := func(n int) time.Time { return time.Date(2026, 1, n, 0, 0, 0, 0, time.UTC) }

	// Add out of day order to check ListByUser sorting.
	id2, err := db.AddRecord(ctx, userID, day(2), 199, 29.8, "lb", time.Now())
	if err != nil {
		t.Fatalf("AddRecord: %v", err)
	}
	id1, err := db.AddRecord(ctx, userID, day(1), 200, 30, "lb", time.Now())
	if err != nil {
		t.Fatalf("AddRecord: %v", err)
	}
	if id1 == 0 || id1 == id2 {
		t.Errorf("expected distinct non-zero IDs, got %d and %d", id1, id2)
	}

	records, err := db.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if !records[0].Day.Before(records[1].Day) {
		t.Error("expected records ordered by day ascending")
	}

	// Other user sees nothing
	other, _ := db.ListByUser(ctx, 999)
	if len(other) != 0 {
		t.Error("expected 0 records for other user")
	}

	recent, err := db.ListRecentRecords(ctx, userID, 1)
	if err != nil {
		t.Fatalf("ListRecentRecords: %v", err)
	}
	if len(recent) != 1 || !recent[0].Day.Equal(day(2)) {
		t.Errorf("expected most recent day, got %+v", recent)
	}

	if err := db.UpdateRecord(ctx, userID, id1, day(1), 198.5, 29.5, "lb"); err != nil {
		t.Fatalf("UpdateRecord: %v", err)
	}
	records, _ = db.ListByUser(ctx, userID)
	if records[0].Weight != 198.5 {
		t.Errorf("expected updated weight 198.5, got %f", records[0].Weight)
	}

	// Updating another user's record fails
	if err := db.UpdateRecord(ctx, 999, id1, day(1), 150, 20, "lb"); err == nil {
		t.Error("expected error updating other user's record")
	}

	if err := db.DeleteRecord(ctx, userID, id1); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}
	if err := db.DeleteRecord(ctx, userID, id1); err == nil {
		t.Error("expected error deleting missing record")
	}
	records, _ = db.ListByUser(ctx, userID)
	if len(records) != 1 {
		t.Errorf("expected 1 record after delete, got %d", len(records))
	}
}

func TestProfileRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	p, err := db.GetProfile(ctx, 1)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p != nil {
		t.Error("expected nil profile before first put")
	}

	profile := domain.UserProfile{
		UserID:        1,
		Sex:           domain.SexFemale,
		DateOfBirth:   time.Date(1992, 4, 1, 0, 0, 0, 0, time.UTC),
		HeightIn:      65,
		ActivityLevel: domain.ActivityLight,
		Goal:          domain.GoalLose,
		TargetWeight:  140,
		TargetRate:    0.5,
		Unit:          domain.UnitLb,
	}
	if err := db.PutProfile(ctx, profile); err != nil {
		t.Fatalf("PutProfile: %v", err)
	}

	p, err = db.GetProfile(ctx, 1)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p == nil || p.TargetWeight != 140 {
		t.Fatalf("failed to retrieve profile: %+v", p)
	}

	// Put is an upsert
	profile.TargetWeight = 135
	if err := db.PutProfile(ctx, profile); err != nil {
		t.Fatalf("PutProfile: %v", err)
	}
	p, _ = db.GetProfile(ctx, 1)
	if p.TargetWeight != 135 {
		t.Errorf("expected upserted target 135, got %f", p.TargetWeight)
	}
}

func TestUserRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	u, err := db.Create(ctx, "bob", "hash")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.Username != "bob" {
		t.Errorf("expected bob, got %s", u.Username)
	}

	u2, err := db.GetByUsername(ctx, "bob")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if u2 == nil || u2.ID != u.ID {
		t.Error("failed to retrieve user")
	}

	count, _ := db.Count(ctx)
	if count != 1 {
		t.Errorf("expected 1 user, got %d", count)
	}
}

func TestSessionRepository(t *testing.T) {
	db := New()
	repo := db.NewSessionRepo()
	ctx := context.Background()

	err := repo.Create(ctx, 1, "token123", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	sess, err := repo.GetByToken(ctx, "token123")
	if err != nil {
		t.Fatalf("GetByToken: %v", err)
	}
	if sess == nil {
		t.Error("expected session, got nil")
	}

	_ = repo.Delete(ctx, "token123")
	sess, _ = repo.GetByToken(ctx, "token123")
	if sess != nil {
		t.Error("expected nil (deleted)")
	}
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db := New()
	repo := db.NewSessionRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, 1, "fresh", time.Now().Add(time.Hour))
	_ = repo.Create(ctx, 1, "stale", time.Now().Add(-time.Hour))

	if err := repo.DeleteExpired(ctx); err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}

	if sess, _ := repo.GetByToken(ctx, "stale"); sess != nil {
		t.Error("expected stale session removed")
	}
	if sess, _ := repo.GetByToken(ctx, "fresh"); sess == nil {
		t.Error("expected fresh session kept")
	}
}
