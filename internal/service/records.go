package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"babytrack/internal/daterange"
	"babytrack/internal/models"
	"babytrack/internal/repository"

	"github.com/google/uuid"
)

var (
	errInvalidMethod      = errors.New("invalid method: must be BOTTLE, BREAST, or SOLID")
	errInvalidAmount      = errors.New("invalid amount_ml: bottle feedings require amount_ml > 0")
	errInvalidColor       = errors.New("invalid color: must be YELLOW, BROWN, GREEN, BLACK, or RED")
	errInvalidConsistency = errors.New("invalid consistency: must be LIQUID, SOFT, FORMED, or HARD")
	errInvalidDate        = errors.New("invalid date: expected yyyy-MM-dd")
	errEmptyMeasurement   = errors.New("invalid measurement: at least one of height_cm, weight_kg, head_circumference_cm must be > 0")
)

var (
	feedingMethods     = map[string]bool{"BOTTLE": true, "BREAST": true, "SOLID": true}
	stoolColors        = map[string]bool{"YELLOW": true, "BROWN": true, "GREEN": true, "BLACK": true, "RED": true}
	stoolConsistencies = map[string]bool{"LIQUID": true, "SOFT": true, "FORMED": true, "HARD": true}
)

type RecordService struct {
	feedings repository.FeedingRepo
	stool    repository.StoolRepo
	growth   repository.GrowthRepo
}

func NewRecordService(feedings repository.FeedingRepo, stool repository.StoolRepo, growth repository.GrowthRepo) *RecordService {
	return &RecordService{feedings: feedings, stool: stool, growth: growth}
}

// AddFeeding validates and stores a feeding, returning it with defaults applied.
func (s *RecordService) AddFeeding(ctx context.Context, rec models.FeedingRecord) (models.FeedingRecord, error) {
	if !feedingMethods[rec.Method] {
		return models.FeedingRecord{}, errInvalidMethod
	}
	if rec.AmountML < 0 {
		return models.FeedingRecord{}, fmt.Errorf("invalid amount_ml %.1f: must not be negative", rec.AmountML)
	}
	if rec.Method == "BOTTLE" && rec.AmountML == 0 {
		return models.FeedingRecord{}, errInvalidAmount
	}
	rec.ID = uuid.NewString()
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	} else {
		rec.Timestamp = rec.Timestamp.UTC()
	}
	if err := s.feedings.Add(ctx, rec); err != nil {
		return models.FeedingRecord{}, err
	}
	return rec, nil
}

func (s *RecordService) ListFeedings(ctx context.Context, userID int, from, to time.Time) ([]models.FeedingRecord, error) {
	return s.feedings.List(ctx, userID, from, to)
}

func (s *RecordService) DeleteFeeding(ctx context.Context, userID int, id string) error {
	return s.feedings.Delete(ctx, userID, id)
}

// AddStool validates and stores a stool event, returning it with defaults applied.
func (s *RecordService) AddStool(ctx context.Context, rec models.StoolRecord) (models.StoolRecord, error) {
	if !stoolColors[rec.Color] {
		return models.StoolRecord{}, errInvalidColor
	}
	if !stoolConsistencies[rec.Consistency] {
		return models.StoolRecord{}, errInvalidConsistency
	}
	now := time.Now().UTC()
	if rec.Date == "" {
		rec.Date = now.Format(daterange.ISODate)
	} else if _, err := time.Parse(daterange.ISODate, rec.Date); err != nil {
		return models.StoolRecord{}, errInvalidDate
	}
	rec.ID = uuid.NewString()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	} else {
		rec.CreatedAt = rec.CreatedAt.UTC()
	}
	if err := s.stool.Add(ctx, rec); err != nil {
		return models.StoolRecord{}, err
	}
	return rec, nil
}

func (s *RecordService) ListStool(ctx context.Context, userID int, from, to string) ([]models.StoolRecord, error) {
	if err := validateDateFilter(from, to); err != nil {
		return nil, err
	}
	return s.stool.List(ctx, userID, from, to)
}

func (s *RecordService) DeleteStool(ctx context.Context, userID int, id string) error {
	return s.stool.Delete(ctx, userID, id)
}

// AddGrowth validates and stores a measurement, returning it with defaults applied.
func (s *RecordService) AddGrowth(ctx context.Context, rec models.GrowthRecord) (models.GrowthRecord, error) {
	if rec.HeightCM <= 0 && rec.WeightKG <= 0 && rec.HeadCircCM <= 0 {
		return models.GrowthRecord{}, errEmptyMeasurement
	}
	if rec.HeightCM < 0 || rec.WeightKG < 0 || rec.HeadCircCM < 0 {
		return models.GrowthRecord{}, errors.New("invalid measurement: values must not be negative")
	}
	if rec.MeasurementDate == "" {
		rec.MeasurementDate = time.Now().UTC().Format(daterange.ISODate)
	} else if _, err := time.Parse(daterange.ISODate, rec.MeasurementDate); err != nil {
		return models.GrowthRecord{}, errInvalidDate
	}
	rec.ID = uuid.NewString()
	if err := s.growth.Add(ctx, rec); err != nil {
		return models.GrowthRecord{}, err
	}
	return rec, nil
}

func (s *RecordService) ListGrowth(ctx context.Context, userID int, from, to string) ([]models.GrowthRecord, error) {
	if err := validateDateFilter(from, to); err != nil {
		return nil, err
	}
	return s.growth.List(ctx, userID, from, to)
}

func (s *RecordService) DeleteGrowth(ctx context.Context, userID int, id string) error {
	return s.growth.Delete(ctx, userID, id)
}

// validateDateFilter checks optional ISO date bounds and their ordering.
func validateDateFilter(from, to string) error {
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(daterange.ISODate, d); err != nil {
			return errInvalidDate
		}
	}
	if from != "" && to != "" && from > to {
		return errors.New("invalid range: from must be <= to")
	}
	return nil
}
