package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	ListSystem(ctx context.Context) ([]Exercise, error)
	ListCustom(ctx context.Context, userID string) ([]Exercise, error)
	Get(ctx context.Context, id string) (*Exercise, error)
	Create(ctx context.Context, exercise Exercise) (*Exercise, error)
	Update(ctx context.Context, exercise Exercise, userID string) (*Exercise, error)
	Delete(ctx context.Context, id, userID string) error
	CountVisible(ctx context.Context, userID string, ids []string) (int, error)
	InsertSystem(ctx context.Context, catalog []Exercise) (int, error)
}

type catalogCache interface {
	Get() ([]Exercise, bool)
	Set(catalog []Exercise) error
	Invalidate()
}

var (
	ErrNotOwner         = fmt.Errorf("%w: exercise is not a custom exercise of the user", pkg.ErrForbidden)
	ErrExerciseNotKnown = fmt.Errorf("%w: exercise does not exist", pkg.ErrValidation)
)

type Service struct {
	repo           exercisesRepo
	cache          catalogCache
	metricsManager *metrics.Manager
}

func NewService(repo exercisesRepo, cache catalogCache, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		cache:          cache,
		metricsManager: metricsManager,
	}
}

// List returns the system exercises followed by the user's custom ones, both sorted by name.
func (s *Service) List(ctx context.Context, userID string, filter Filter) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercisesService.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	system, err := s.systemCatalog(ctx)
	if err != nil {
		return nil, err
	}
	custom, err := s.repo.ListCustom(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list custom exercises: %w", err)
	}

	all := make([]Exercise, 0, len(system)+len(custom))
	all = append(all, system...)
	all = append(all, custom...)
	filtered := filter.Apply(all)
	span.SetAttributes(attribute.Int("exercises.count", len(filtered)))

	return filtered, nil
}

func (s *Service) systemCatalog(ctx context.Context) ([]Exercise, error) {
	if cached, ok := s.cache.Get(); ok {
		return cached, nil
	}

	system, err := s.repo.ListSystem(ctx)
	if err != nil {
		return nil, fmt.Errorf("list system exercises: %w", err)
	}
	if err := s.cache.Set(system); err != nil {
		log.Errorf("exercises service: cache system catalog: %s", err)
	}
	return system, nil
}

func (s *Service) Create(ctx context.Context, userID string, input ExerciseInput) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercisesService.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	input.normalize()
	if err := pkg.ValidateStruct(input); err != nil {
		return nil, err
	}

	owner := userID
	created, err := s.repo.Create(ctx, Exercise{
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		MuscleGroups: input.MuscleGroups,
		Equipment:    input.Equipment,
		Instructions: input.Instructions,
		IsCustom:     true,
		UserID:       &owner,
	})
	if err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}

	s.metricsManager.CounterExercisesCreated.Inc()
	log.Debugf("exercises service: user %s created exercise %s", userID, created.ID)

	return created, nil
}

func (s *Service) Update(ctx context.Context, id, userID string, input ExerciseInput) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercisesService.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	if err := s.checkOwned(ctx, id, userID); err != nil {
		return nil, err
	}

	input.normalize()
	if err := pkg.ValidateStruct(input); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, Exercise{
		ID:           id,
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		MuscleGroups: input.MuscleGroups,
		Equipment:    input.Equipment,
		Instructions: input.Instructions,
	}, userID)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update exercise: %w", err)
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercisesService.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	if err := s.checkOwned(ctx, id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, ErrExerciseNotFound) || errors.Is(err, ErrExerciseInUse) {
			return err
		}
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}

func (s *Service) checkOwned(ctx context.Context, id, userID string) error {
	exercise, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			return err
		}
		return fmt.Errorf("get exercise: %w", err)
	}
	if !exercise.OwnedBy(userID) {
		return ErrNotOwner
	}
	return nil
}

// CheckVisible fails with a validation error unless every id names a system
// exercise or a custom exercise of userID.
func (s *Service) CheckVisible(ctx context.Context, userID string, ids []string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercisesService.checkVisible")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return nil
	}

	count, err := s.repo.CountVisible(ctx, userID, unique)
	if err != nil {
		return fmt.Errorf("check exercises: %w", err)
	}
	if count != len(unique) {
		return ErrExerciseNotKnown
	}
	return nil
}

// SeedSystemCatalog inserts the built-in catalog entries that are still missing.
func (s *Service) SeedSystemCatalog(ctx context.Context) (int, error) {
	created, err := s.repo.InsertSystem(ctx, SystemCatalog())
	if err != nil {
		return 0, fmt.Errorf("seed system catalog: %w", err)
	}
	s.cache.Invalidate()
	return created, nil
}
