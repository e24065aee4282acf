package shiftshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"tutorbill/internal/domain/shift"
	"tutorbill/internal/platform/requestctx"
	"tutorbill/internal/transport/http/api"
	"tutorbill/internal/transport/http/middleware"
	"tutorbill/internal/transport/http/shared"
)

type Handler struct {
	Shifts *shift.Service
}

func NewHandler(shifts *shift.Service) *Handler {
	return &Handler{Shifts: shifts}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/shifts", h.HandleCreate)
	r.Get("/shifts", h.HandleList)
	r.Patch("/shifts/{id}", h.HandleUpdateStatus)
	r.Post("/shifts/confirm-pending", h.HandleConfirmPending)
	r.Delete("/shifts/{id}", h.HandleDelete)
}

type createRequest struct {
	Class     string `json:"class"`
	Grade     string `json:"grade"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Recurring bool   `json:"recurring"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// shiftView decorates a persisted shift with its time-derived display status.
type shiftView struct {
	shift.Shift
	DisplayStatus string `json:"displayStatus"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
		return
	}

	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	payload.Class = strings.TrimSpace(payload.Class)
	payload.Grade = strings.TrimSpace(payload.Grade)
	payload.Status = strings.ToUpper(strings.TrimSpace(payload.Status))
	if payload.Status == "" {
		payload.Status = shift.StatusUpcoming
	}

	v := shared.NewValidator()
	v.Required("class", payload.Class, "class is required")
	v.MaxLen("class", payload.Class, 255)
	v.Required("grade", payload.Grade, "grade is required")
	v.MaxLen("grade", payload.Grade, 255)
	v.Enum("status", payload.Status, shift.Statuses, "status must be one of UPCOMING, PENDING, LOGGED, REQUESTED, PAID")
	v.Clock("startTime", payload.StartTime)
	v.Clock("endTime", payload.EndTime)
	date, dateOK := v.Date("date", payload.Date)
	if !v.HasIssues() {
		span := shift.Shift{Date: date, StartTime: payload.StartTime, EndTime: payload.EndTime}
		if !span.EndInstant().After(span.StartInstant()) {
			v.Add("endTime", "shift must end after it starts")
		}
	}
	if v.Reject(w, requestctx.GetRequestID(r.Context())) || !dateOK {
		return
	}

	created, err := h.Shifts.Create(r.Context(), u.UserID, shift.CreateInput{
		Class:     payload.Class,
		Grade:     payload.Grade,
		Status:    payload.Status,
		Date:      date,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
		Recurring: payload.Recurring,
	})
	if errors.Is(err, shift.ErrInvalidStatus) {
		api.Fail(w, http.StatusBadRequest, "invalid_status", "unknown shift status", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "create_failed", "failed to record shift", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Created(w, map[string]any{"shifts": created, "count": len(created)}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
		return
	}

	shifts, err := h.Shifts.List(r.Context(), u.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to load shifts", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{"shifts": toViews(shifts, time.Now())}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
		return
	}

	var payload statusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	updated, err := h.Shifts.UpdateStatus(r.Context(), u.UserID, chi.URLParam(r, "id"), strings.ToUpper(strings.TrimSpace(payload.Status)))
	if h.failShiftErr(w, r, err) {
		return
	}

	api.Success(w, updated, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleConfirmPending(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
		return
	}

	confirmed, err := h.Shifts.ConfirmPending(r.Context(), u.UserID)
	if err != nil {
		api.FailWithDetails(w, http.StatusInternalServerError, "confirm_failed", "some shifts could not be confirmed",
			map[string]any{"confirmed": confirmed}, requestctx.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]int{"confirmed": confirmed}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
		return
	}

	deleteAll := r.URL.Query().Get("deleteAll") == "true"
	deleted, err := h.Shifts.Delete(r.Context(), u.UserID, chi.URLParam(r, "id"), deleteAll)
	if h.failShiftErr(w, r, err) {
		return
	}

	api.Success(w, map[string]int64{"deleted": deleted}, requestctx.GetRequestID(r.Context()))
}

// failShiftErr writes the response for a service error and reports whether it
// did. Ownership failures are forbidden, not not_found, so the two are
// distinguishable by the caller.
func (h *Handler) failShiftErr(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, shift.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "shift not found", requestctx.GetRequestID(r.Context()))
	case errors.Is(err, shift.ErrNotOwner):
		api.Fail(w, http.StatusForbidden, "forbidden", "shift belongs to another user", requestctx.GetRequestID(r.Context()))
	case errors.Is(err, shift.ErrInvalidStatus):
		api.Fail(w, http.StatusBadRequest, "invalid_status", "unknown shift status", requestctx.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, "persistence_error", "operation failed", requestctx.GetRequestID(r.Context()))
	}
	return true
}

func toViews(shifts []shift.Shift, now time.Time) []shiftView {
	views := make([]shiftView, len(shifts))
	for i, record := range shifts {
		views[i] = shiftView{Shift: record, DisplayStatus: shift.DisplayStatus(record, now)}
	}
	return views
}
