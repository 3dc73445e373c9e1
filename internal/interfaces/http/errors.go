package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"spendwise/internal/domain/export"
	"spendwise/internal/domain/policy"
	"spendwise/internal/domain/transaction"
	"spendwise/internal/domain/user"
	"spendwise/internal/infrastructure/firebase"
	"spendwise/internal/infrastructure/firestore"
	"spendwise/internal/shared/logging"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps domain errors onto HTTP responses. Validation failures
// carry the per-field messages; everything unexpected collapses to a 500
// without leaking internals.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr transaction.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": validationErr})
		return
	}

	var authErr *firebase.AuthError
	if errors.As(err, &authErr) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"error": authErr.Message,
			"code":  authErr.Code,
		})
		return
	}

	switch {
	case errors.Is(err, policy.ErrDenied):
		writeJSON(w, http.StatusForbidden, map[string]any{"error": "Forbidden"})
	case errors.Is(err, user.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "Not found"})
	case errors.Is(err, export.ErrUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": err.Error()})
	default:
		logger := logging.FromContext(r.Context())
		var persistErr *firestore.PersistenceError
		if errors.As(err, &persistErr) {
			logger.Error().Err(err).Str("op", persistErr.Op).Msg("storage failure")
		} else {
			logger.Error().Err(err).Msg("request failed")
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
	}
}
