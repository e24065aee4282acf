package usershandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"tutorbill/internal/domain/user"
	"tutorbill/internal/platform/requestctx"
	"tutorbill/internal/transport/http/api"
	"tutorbill/internal/transport/http/middleware"
	"tutorbill/internal/transport/http/shared"
)

type profileStore interface {
	FindByID(ctx context.Context, id string) (user.Profile, error)
	UpdateProfile(ctx context.Context, id string, patch user.ProfilePatch) (user.Profile, error)
}

type Handler struct {
	Users profileStore
}

func NewHandler(users profileStore) *Handler {
	return &Handler{Users: users}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/users/me", h.HandleMe)
	r.Patch("/users/{id}", h.HandleUpdateProfile)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
		return
	}

	profile, err := h.Users.FindByID(r.Context(), u.UserID)
	if errors.Is(err, user.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "user not found", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "lookup_failed", "failed to load profile", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"profile":  profile,
		"complete": profile.Complete(),
	}, requestctx.GetRequestID(r.Context()))
}

// HandleUpdateProfile applies the completion-form fields. Users may only
// update their own profile.
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
		return
	}
	if chi.URLParam(r, "id") != u.UserID {
		api.Fail(w, http.StatusForbidden, "forbidden", "cannot update another user's profile", requestctx.GetRequestID(r.Context()))
		return
	}

	var patch user.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	patch.Role = strings.ToUpper(strings.TrimSpace(patch.Role))
	patch.ContactNumber = strings.TrimSpace(patch.ContactNumber)
	patch.ManagerName = strings.TrimSpace(patch.ManagerName)
	patch.BSB = strings.TrimSpace(patch.BSB)
	patch.AccountNumber = strings.TrimSpace(patch.AccountNumber)

	if v := validatePatch(patch); v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}

	profile, err := h.Users.UpdateProfile(r.Context(), u.UserID, patch)
	if errors.Is(err, user.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "user not found", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "update_failed", "failed to update profile", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Success(w, profile, requestctx.GetRequestID(r.Context()))
}

func validatePatch(patch user.ProfilePatch) *shared.Validator {
	v := shared.NewValidator()
	v.Required("role", patch.Role, "role is required")
	v.Enum("role", patch.Role, user.Roles, "role must be EMPLOYEE or MANAGER")
	v.Positive("wagePerHour", patch.WagePerHour, "hourly wage must be positive")
	v.Required("contactNumber", patch.ContactNumber, "contact number is required")
	if patch.ContactNumber != "" {
		v.Digits("contactNumber", patch.ContactNumber, 10, 10)
	}
	v.Required("managerName", patch.ManagerName, "manager name is required")
	v.MaxLen("managerName", patch.ManagerName, 255)
	v.Required("bsb", patch.BSB, "bsb is required")
	if patch.BSB != "" {
		v.Digits("bsb", patch.BSB, 6, 6)
	}
	v.Required("accountNumber", patch.AccountNumber, "account number is required")
	if patch.AccountNumber != "" {
		v.Digits("accountNumber", patch.AccountNumber, 6, 9)
	}
	return v
}
