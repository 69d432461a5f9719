package analytics

import (
	"context"
	"fmt"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=analytics_test

type analyticsRepo interface {
	ListSets(ctx context.Context, userID string, query SetQuery) ([]SetRecord, error)
	ListWorkoutDays(ctx context.Context, userID string, start, end *pkg.Date) ([]WorkoutDay, error)
	Counts(ctx context.Context, userID string) (int, int, error)
	WorkoutDates(ctx context.Context, userID string) ([]pkg.Date, error)
	LastWorkout(ctx context.Context, userID string) (*LastWorkout, error)
}

type Service struct {
	repo     analyticsRepo
	analyzer Analyzer
}

func NewService(repo analyticsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Progress(ctx context.Context, userID, exerciseID string, start, end *pkg.Date) (_ []ProgressPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyticsService.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	if exerciseID == "" {
		return nil, fmt.Errorf("%w: exerciseId is required", pkg.ErrValidation)
	}

	sets, err := s.repo.ListSets(ctx, userID, SetQuery{
		ExerciseID: exerciseID,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		return nil, fmt.Errorf("progress: %w", err)
	}
	return s.analyzer.Progress(sets), nil
}

func (s *Service) PersonalRecords(ctx context.Context, userID string) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyticsService.personalRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sets, err := s.repo.ListSets(ctx, userID, SetQuery{})
	if err != nil {
		return nil, fmt.Errorf("personal records: %w", err)
	}
	return s.analyzer.PersonalRecords(sets), nil
}

func (s *Service) Frequency(ctx context.Context, userID string, start, end *pkg.Date) (_ []FrequencyPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyticsService.frequency")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	days, err := s.repo.ListWorkoutDays(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("workout frequency: %w", err)
	}
	return s.analyzer.Frequency(days), nil
}

func (s *Service) Volume(ctx context.Context, userID string, query SetQuery) (_ []VolumePoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyticsService.volume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sets, err := s.repo.ListSets(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("volume: %w", err)
	}
	return s.analyzer.Volume(sets), nil
}

func (s *Service) Summary(ctx context.Context, userID string) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyticsService.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	totalWorkouts, uniqueExercises, err := s.repo.Counts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	dates, err := s.repo.WorkoutDates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	lastWorkout, err := s.repo.LastWorkout(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	return &Summary{
		TotalWorkouts:   totalWorkouts,
		UniqueExercises: uniqueExercises,
		CurrentStreak:   s.analyzer.Streak(dates),
		LastWorkout:     lastWorkout,
	}, nil
}
