package invoiceshandler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"tutorbill/internal/domain/invoice"
	"tutorbill/internal/domain/shift"
	"tutorbill/internal/domain/user"
	"tutorbill/internal/platform/requestctx"
	"tutorbill/internal/transport/http/api"
	"tutorbill/internal/transport/http/middleware"
)

// ProfileCompletionPath is where the HTML invoice page sends users whose
// billing details are still missing.
const ProfileCompletionPath = "/profile/complete"

type profileStore interface {
	FindByID(ctx context.Context, id string) (user.Profile, error)
}

type Handler struct {
	Users  profileStore
	Shifts *shift.Service
}

func NewHandler(users profileStore, shifts *shift.Service) *Handler {
	return &Handler{Users: users, Shifts: shifts}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/invoices/{period}", h.HandleInvoiceJSON)
	r.Get("/invoices/{period}/pdf", h.HandleInvoicePDF)
}

// RegisterPages mounts the server-rendered invoice page outside the JSON API.
func (h *Handler) RegisterPages(r chi.Router) {
	r.Get("/invoices/{period}", h.HandleInvoicePage)
}

func (h *Handler) HandleInvoiceJSON(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.buildInvoice(w, r, false)
	if !ok {
		return
	}
	api.Success(w, inv, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleInvoicePDF(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.buildInvoice(w, r, false)
	if !ok {
		return
	}

	pdf, err := invoice.RenderPDF(inv)
	if err != nil {
		slog.Error("invoice pdf render failed", "period", chi.URLParam(r, "period"), "err", err)
		api.Fail(w, http.StatusInternalServerError, "render_failed", "failed to render invoice", requestctx.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%04d-%02d.pdf", inv.Year, inv.Month))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		slog.Warn("invoice pdf write failed", "err", err)
	}
}

// HandleInvoicePage renders the invoice as an HTML page. Incomplete profiles
// are redirected to the completion form instead of erroring.
func (h *Handler) HandleInvoicePage(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.buildInvoice(w, r, true)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := invoice.RenderHTML(w, inv); err != nil {
		slog.Error("invoice page render failed", "period", chi.URLParam(r, "period"), "err", err)
	}
}

// buildInvoice loads the caller's profile and shifts for the period and
// aggregates them. On any failure it writes the response itself and returns
// ok=false; htmlMode switches the incomplete-profile outcome from a JSON 403
// to a redirect.
func (h *Handler) buildInvoice(w http.ResponseWriter, r *http.Request, htmlMode bool) (invoice.Invoice, bool) {
	requestID := requestctx.GetRequestID(r.Context())
	u, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return invoice.Invoice{}, false
	}

	year, month, err := invoice.ParsePeriod(chi.URLParam(r, "period"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), requestID)
		return invoice.Invoice{}, false
	}

	profile, err := h.Users.FindByID(r.Context(), u.UserID)
	if errors.Is(err, user.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "user not found", requestID)
		return invoice.Invoice{}, false
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "lookup_failed", "failed to load profile", requestID)
		return invoice.Invoice{}, false
	}

	shifts, err := h.Shifts.List(r.Context(), u.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to load shifts", requestID)
		return invoice.Invoice{}, false
	}

	inv, err := invoice.Build(profile, shifts, year, month, time.Now())
	if errors.Is(err, invoice.ErrProfileIncomplete) {
		if htmlMode {
			http.Redirect(w, r, ProfileCompletionPath, http.StatusSeeOther)
		} else {
			api.Fail(w, http.StatusForbidden, "profile_incomplete", "complete your billing details before generating invoices", requestID)
		}
		return invoice.Invoice{}, false
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "aggregate_failed", "failed to build invoice", requestID)
		return invoice.Invoice{}, false
	}

	return inv, true
}
