package http

import (
	"encoding/json"
	"net/http"
	"time"

	"spendwise/internal/domain/user"
	"spendwise/internal/shared/middleware"
)

type UserHandler struct {
	service *user.Service
}

func NewUserHandler(service *user.Service) *UserHandler {
	return &UserHandler{service: service}
}

type updateProfileRequest struct {
	DisplayName *string `json:"displayName"`
	Currency    *string `json:"currency"`
}

// HandleMe returns or updates the caller's profile. A GET creates the
// profile document on first access.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		profile, err := h.service.EnsureProfile(r.Context(), principal, time.Now())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)

	case http.MethodPut:
		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		profile, err := h.service.Update(r.Context(), principal, principal.UID, user.UpdateParams{
			DisplayName: req.DisplayName,
			Currency:    req.Currency,
		}, time.Now())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
