package analytics

import (
	"context"
	"net/http"

	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=analytics_test

type analyticsService interface {
	Progress(ctx context.Context, userID, exerciseID string, start, end *pkg.Date) ([]ProgressPoint, error)
	PersonalRecords(ctx context.Context, userID string) ([]PersonalRecord, error)
	Frequency(ctx context.Context, userID string, start, end *pkg.Date) ([]FrequencyPoint, error)
	Volume(ctx context.Context, userID string, query SetQuery) ([]VolumePoint, error)
	Summary(ctx context.Context, userID string) (*Summary, error)
}

type Handler struct {
	service analyticsService
}

func NewHandler(service analyticsService) *Handler {
	return &Handler{
		service: service,
	}
}

func dateRange(r *http.Request) (start, end *pkg.Date, err error) {
	query := r.URL.Query()
	if start, err = pkg.ParseOptionalDate(query.Get("startDate")); err != nil {
		return nil, nil, err
	}
	if end, err = pkg.ParseOptionalDate(query.Get("endDate")); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.progress")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	start, end, err := dateRange(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	progress, err := h.service.Progress(ctx, userID, mux.Vars(r)["exerciseId"], start, end)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, map[string]any{"progress": progress}, http.StatusOK)
}

func (h *Handler) HandlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.personalRecords")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	records, err := h.service.PersonalRecords(ctx, userID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, map[string]any{"personalRecords": records}, http.StatusOK)
}

func (h *Handler) HandleWorkoutFrequency(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.workoutFrequency")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	start, end, err := dateRange(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	frequency, err := h.service.Frequency(ctx, userID, start, end)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, map[string]any{"frequency": frequency}, http.StatusOK)
}

func (h *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.volume")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	start, end, err := dateRange(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	volume, err := h.service.Volume(ctx, userID, SetQuery{
		ExerciseID: r.URL.Query().Get("exerciseId"),
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, map[string]any{"volumeData": volume}, http.StatusOK)
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.summary")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summary(ctx, userID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, map[string]any{"summary": summary}, http.StatusOK)
}
