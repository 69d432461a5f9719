package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	List(ctx context.Context, userID string, params ListParams) ([]Workout, int, error)
	Get(ctx context.Context, id, userID string) (*Workout, error)
	Exists(ctx context.Context, id, userID string) (bool, error)
	Create(ctx context.Context, workout Workout) (*Workout, error)
	Update(ctx context.Context, workout Workout) (*Workout, error)
	Delete(ctx context.Context, id, userID string) error
}

type exerciseChecker interface {
	CheckVisible(ctx context.Context, userID string, ids []string) error
}

type Service struct {
	repo           workoutsRepo
	exercises      exerciseChecker
	metricsManager *metrics.Manager
}

func NewService(repo workoutsRepo, exercises exerciseChecker, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		exercises:      exercises,
		metricsManager: metricsManager,
	}
}

func (s *Service) List(ctx context.Context, userID string, params ListParams) (_ []Workout, _ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsService.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := params.Validate(); err != nil {
		return nil, 0, err
	}

	workouts, total, err := s.repo.List(ctx, userID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, total, nil
}

func (s *Service) Get(ctx context.Context, id, userID string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsService.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	workout, err := s.repo.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return workout, nil
}

func (s *Service) Create(ctx context.Context, userID string, input WorkoutInput) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsService.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.exercises.CheckVisible(ctx, userID, input.ExerciseIDs()); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, Workout{
		UserID:          userID,
		Name:            input.Name,
		Date:            input.Date,
		Notes:           input.Notes,
		DurationMinutes: input.DurationMinutes,
		Sets:            input.NormalizedSets(),
	})
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}

	s.metricsManager.CounterWorkoutsCreated.Inc()
	s.metricsManager.HistogramSetsPerWorkout.Observe(float64(len(created.Sets)))
	log.Debugf("workouts service: user %s logged workout %s with %d sets", userID, created.ID, len(created.Sets))

	return created, nil
}

func (s *Service) Update(ctx context.Context, id, userID string, input WorkoutInput) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsService.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	exists, err := s.repo.Exists(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("update workout: %w", err)
	}
	if !exists {
		return nil, ErrWorkoutNotFound
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.exercises.CheckVisible(ctx, userID, input.ExerciseIDs()); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, Workout{
		ID:              id,
		UserID:          userID,
		Name:            input.Name,
		Date:            input.Date,
		Notes:           input.Notes,
		DurationMinutes: input.DurationMinutes,
		Sets:            input.NormalizedSets(),
	})
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update workout: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsService.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return err
		}
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}
