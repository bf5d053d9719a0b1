package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"bodycomp/internal/domain"
	"bodycomp/internal/forecast"
)

const (
	// freecache caps a single entry at 1/1024 of the cache size; a long
	// smoothing projection marshals to well over 100 KB, so the cache must
	// be large enough for such entries to be accepted at all.
	forecastCacheSizeMB = 256
	forecastCacheExpire = 60 // seconds
)

// Overview bundles everything the presentation layer renders for a user:
// unit-normalised history, the fitted trend segment, both projections, and
// the milestones detected over them.
type Overview struct {
	Unit       string               `json:"unit"`
	History    []forecast.Point     `json:"history"`
	Trend      []forecast.Point     `json:"trend"`
	Energy     []forecast.Point     `json:"energy"`
	Smoothing  []forecast.Point     `json:"smoothing"`
	Milestones []forecast.Milestone `json:"milestones"`
}

// ForecastService runs the forecasting engine over a user's records and
// profile. The engine itself is pure and stateless; this service owns the
// memoization the engine deliberately does not do, keyed by user and
// parameters and invalidated on writes.
type ForecastService struct {
	records  domain.RecordRepository
	profiles domain.ProfileRepository
	defaults forecast.Config

	cache *freecache.Cache

	mu    sync.Mutex
	epoch map[int64]uint64
}

// NewForecastService creates a ForecastService with the given engine defaults.
func NewForecastService(records domain.RecordRepository, profiles domain.ProfileRepository, defaults forecast.Config) *ForecastService {
	megabyte := 1024 * 1024
	return &ForecastService{
		records:  records,
		profiles: profiles,
		defaults: defaults,
		cache:    freecache.NewCache(forecastCacheSizeMB * megabyte),
		epoch:    map[int64]uint64{},
	}
}

// Defaults returns the engine configuration the service was built with.
func (s *ForecastService) Defaults() forecast.Config {
	return s.defaults
}

// Invalidate drops memoized overviews for the user. Called after any record
// or profile write.
func (s *ForecastService) Invalidate(userID int64) {
	s.mu.Lock()
	s.epoch[userID]++
	s.mu.Unlock()
}

func (s *ForecastService) cacheKey(userID int64, unit string, cfg forecast.Config) []byte {
	s.mu.Lock()
	epoch := s.epoch[userID]
	s.mu.Unlock()
	return fmt.Appendf(nil, "forecast:%d:%d:%s:%g:%g:%d:%v", userID, epoch, unit, cfg.Alpha, cfg.Beta, cfg.PredictionDays, cfg.BodyFatThresholds)
}

// Overview computes (or returns a memoized copy of) the full forecast for
// the user, with all weights expressed in the requested unit.
func (s *ForecastService) Overview(ctx context.Context, userID int64, unit string, cfg forecast.Config) (*Overview, error) {
	if !domain.ValidUnit(unit) {
		return nil, ErrInvalidUnit
	}

	key := s.cacheKey(userID, unit, cfg)
	if raw, err := s.cache.Get(key); err == nil {
		var cached Overview
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}

	records, err := s.records.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	ov := s.compute(records, profile, unit, cfg, time.Now())

	if raw, err := json.Marshal(ov); err == nil {
		if err := s.cache.Set(key, raw, forecastCacheExpire); err != nil {
			log.Warnf("forecast cache set for user %d: %s", userID, err)
		}
	}
	return ov, nil
}

// compute runs the pure engine over immutable copies of the inputs.
func (s *ForecastService) compute(records []domain.MeasurementRecord, profile *domain.UserProfile, unit string, cfg forecast.Config, now time.Time) *Overview {
	// Normalise every record into the requested unit up front so the
	// projectors anchor in that unit and no further conversion is needed.
	normalized := make([]domain.MeasurementRecord, len(records))
	history := make([]forecast.Point, len(records))
	for i, rec := range records {
		normalized[i] = rec
		normalized[i].Weight = domain.ConvertWeight(rec.Weight, rec.Unit, unit)
		normalized[i].Unit = unit
		history[i] = forecast.Point{Day: rec.Day, Weight: normalized[i].Weight}
		if rec.BodyFatPercent > 0 {
			bf := rec.BodyFatPercent
			history[i].BodyFat = &bf
		}
	}

	ov := &Overview{
		Unit:    unit,
		History: history,
		Trend:   forecast.TrendSegment(history),
	}

	var targetWeight float64
	if profile != nil {
		ov.Energy = forecast.ProjectEnergyBalance(normalized, *profile, cfg, now)
		if profile.Goal != domain.GoalMaintain {
			targetWeight = domain.ConvertWeight(profile.TargetWeight, profile.Unit, unit)
		}
	}

	ov.Smoothing = forecast.ProjectSmoothing(history, cfg.Alpha, cfg.Beta, targetWeight)

	if profile != nil {
		scanned := ov.Energy
		if len(scanned) == 0 {
			scanned = ov.Smoothing
		}
		ov.Milestones = forecast.ScanMilestones(scanned, profile.Goal, profile.TargetWeight, profile.Unit, unit, cfg.BodyFatThresholds)
	}
	return ov
}
