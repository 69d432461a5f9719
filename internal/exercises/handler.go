package exercises

import (
	"context"
	"net/http"

	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesService interface {
	List(ctx context.Context, userID string, filter Filter) ([]Exercise, error)
	Create(ctx context.Context, userID string, input ExerciseInput) (*Exercise, error)
	Update(ctx context.Context, id, userID string, input ExerciseInput) (*Exercise, error)
	Delete(ctx context.Context, id, userID string) error
}

type Handler struct {
	service exercisesService
}

func NewHandler(service exercisesService) *Handler {
	return &Handler{
		service: service,
	}
}

type exercisesResponse struct {
	Exercises []Exercise `json:"exercises"`
}

type exerciseResponse struct {
	Exercise *Exercise `json:"exercise"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := Filter{
		Category:    Category(query.Get("category")),
		MuscleGroup: query.Get("muscleGroup"),
		Search:      query.Get("search"),
	}

	exercises, err := h.service.List(ctx, userID, filter)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, exercisesResponse{Exercises: exercises}, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.create")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var input ExerciseInput
	if err := pkg.DecodeJSONBody(r, &input); err != nil {
		pkg.WriteError(w, err)
		return
	}

	exercise, err := h.service.Create(ctx, userID, input)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	log.Debugf("new exercise created: %s", exercise.ID)
	pkg.WriteJSON(w, exerciseResponse{Exercise: exercise}, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	var input ExerciseInput
	if err := pkg.DecodeJSONBody(r, &input); err != nil {
		pkg.WriteError(w, err)
		return
	}

	exercise, err := h.service.Update(ctx, id, userID, input)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, exerciseResponse{Exercise: exercise}, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(ctx, id, userID); err != nil {
		pkg.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
