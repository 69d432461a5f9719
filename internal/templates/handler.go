package templates

import (
	"context"
	"net/http"

	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=templates_test

type templatesService interface {
	List(ctx context.Context, userID string) ([]Template, error)
	Get(ctx context.Context, id, userID string) (*Template, error)
	Create(ctx context.Context, userID string, input TemplateInput) (*Template, error)
	Update(ctx context.Context, id, userID string, input TemplateInput) (*Template, error)
	Delete(ctx context.Context, id, userID string) error
}

type Handler struct {
	service templatesService
}

func NewHandler(service templatesService) *Handler {
	return &Handler{
		service: service,
	}
}

type templatesResponse struct {
	Templates []Template `json:"templates"`
}

type templateResponse struct {
	Template *Template `json:"template"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	templates, err := h.service.List(ctx, userID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, templatesResponse{Templates: templates}, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.get")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	template, err := h.service.Get(ctx, mux.Vars(r)["id"], userID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, templateResponse{Template: template}, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.create")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var input TemplateInput
	if err := pkg.DecodeJSONBody(r, &input); err != nil {
		pkg.WriteError(w, err)
		return
	}

	template, err := h.service.Create(ctx, userID, input)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, templateResponse{Template: template}, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var input TemplateInput
	if err := pkg.DecodeJSONBody(r, &input); err != nil {
		pkg.WriteError(w, err)
		return
	}

	template, err := h.service.Update(ctx, mux.Vars(r)["id"], userID, input)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, templateResponse{Template: template}, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, mux.Vars(r)["id"], userID); err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteMessage(w, "Template deleted successfully")
}
