package workouts

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	List(ctx context.Context, userID string, params ListParams) ([]Workout, int, error)
	Get(ctx context.Context, id, userID string) (*Workout, error)
	Create(ctx context.Context, userID string, input WorkoutInput) (*Workout, error)
	Update(ctx context.Context, id, userID string, input WorkoutInput) (*Workout, error)
	Delete(ctx context.Context, id, userID string) error
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

type workoutsResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type workoutResponse struct {
	Workout *Workout `json:"workout"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	params, err := parseListParams(r.URL.Query())
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	span.SetAttributes(
		attribute.Int("limit", params.Limit),
		attribute.Int("offset", params.Offset),
	)

	workouts, total, err := h.service.List(ctx, userID, params)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, workoutsResponse{Workouts: workouts, Total: total}, http.StatusOK)
}

func parseListParams(query url.Values) (ListParams, error) {
	params := ListParams{
		Limit: DefaultListLimit,
	}

	var err error
	if params.StartDate, err = pkg.ParseOptionalDate(query.Get("startDate")); err != nil {
		return ListParams{}, err
	}
	if params.EndDate, err = pkg.ParseOptionalDate(query.Get("endDate")); err != nil {
		return ListParams{}, err
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		if params.Limit, err = strconv.Atoi(limitStr); err != nil {
			return ListParams{}, fmt.Errorf("%w: limit must be an integer", pkg.ErrValidation)
		}
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		if params.Offset, err = strconv.Atoi(offsetStr); err != nil {
			return ListParams{}, fmt.Errorf("%w: offset must be an integer", pkg.ErrValidation)
		}
	}
	return params, nil
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	workout, err := h.service.Get(ctx, mux.Vars(r)["id"], userID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, workoutResponse{Workout: workout}, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var input WorkoutInput
	if err := pkg.DecodeJSONBody(r, &input); err != nil {
		pkg.WriteError(w, err)
		return
	}

	workout, err := h.service.Create(ctx, userID, input)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, workoutResponse{Workout: workout}, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var input WorkoutInput
	if err := pkg.DecodeJSONBody(r, &input); err != nil {
		pkg.WriteError(w, err)
		return
	}

	workout, err := h.service.Update(ctx, mux.Vars(r)["id"], userID, input)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, workoutResponse{Workout: workout}, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, mux.Vars(r)["id"], userID); err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteMessage(w, "Workout deleted successfully")
}
