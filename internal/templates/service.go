package templates

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=templates_test

type templatesRepo interface {
	List(ctx context.Context, userID string) ([]Template, error)
	Get(ctx context.Context, id, userID string) (*Template, error)
	Exists(ctx context.Context, id, userID string) (bool, error)
	Create(ctx context.Context, template Template) (*Template, error)
	Update(ctx context.Context, template Template) (*Template, error)
	Delete(ctx context.Context, id, userID string) error
}

type exerciseChecker interface {
	CheckVisible(ctx context.Context, userID string, ids []string) error
}

type Service struct {
	repo           templatesRepo
	exercises      exerciseChecker
	metricsManager *metrics.Manager
}

func NewService(repo templatesRepo, exercises exerciseChecker, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		exercises:      exercises,
		metricsManager: metricsManager,
	}
}

func (s *Service) List(ctx context.Context, userID string) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "templatesService.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	templates, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

func (s *Service) Get(ctx context.Context, id, userID string) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "templatesService.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", id))

	template, err := s.repo.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return template, nil
}

func (s *Service) Create(ctx context.Context, userID string, input TemplateInput) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "templatesService.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.exercises.CheckVisible(ctx, userID, input.ExerciseIDs()); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, Template{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Exercises:   input.Entries(),
	})
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}

	s.metricsManager.CounterTemplatesCreated.Inc()
	log.Debugf("templates service: user %s created template %s", userID, created.ID)

	return created, nil
}

func (s *Service) Update(ctx context.Context, id, userID string, input TemplateInput) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "templatesService.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", id))

	exists, err := s.repo.Exists(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}
	if !exists {
		return nil, ErrTemplateNotFound
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.exercises.CheckVisible(ctx, userID, input.ExerciseIDs()); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, Template{
		ID:          id,
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Exercises:   input.Entries(),
	})
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update template: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "templatesService.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", id))

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return err
		}
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}
