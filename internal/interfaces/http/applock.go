package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"spendwise/internal/shared/auth"
)

// AppLockHandler exposes the device app lock: a local passcode gate kept
// separate from account authentication.
type AppLockHandler struct {
	lock *auth.AppLock
}

func NewAppLockHandler(lock *auth.AppLock) *AppLockHandler {
	return &AppLockHandler{lock: lock}
}

type passcodeRequest struct {
	Passcode string `json:"passcode"`
}

// HandleAppLock reports, sets, or disables the passcode.
func (h *AppLockHandler) HandleAppLock(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		enabled, err := h.lock.Enabled(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"enabled": enabled})

	case http.MethodPost:
		var req passcodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Passcode == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Passcode is required"})
			return
		}
		if err := h.lock.SetPasscode(r.Context(), req.Passcode); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"enabled": true})

	case http.MethodDelete:
		var req passcodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := h.lock.Unlock(r.Context(), req.Passcode); err != nil {
			h.writeLockError(w, r, err)
			return
		}
		if err := h.lock.Disable(r.Context()); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"enabled": false})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleUnlock verifies the passcode.
func (h *AppLockHandler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req passcodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.lock.Unlock(r.Context(), req.Passcode); err != nil {
		h.writeLockError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"unlocked": true})
}

func (h *AppLockHandler) writeLockError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrWrongPasscode):
		writeJSON(w, http.StatusForbidden, map[string]any{"error": "Incorrect passcode"})
	case errors.Is(err, auth.ErrNoPasscode):
		writeJSON(w, http.StatusConflict, map[string]any{"error": "No passcode configured"})
	default:
		writeError(w, r, err)
	}
}
