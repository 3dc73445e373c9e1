package http

import (
	"encoding/json"
	"net/http"

	"cloud.google.com/go/civil"

	"spendwise/internal/domain/transaction"
	"spendwise/internal/shared/middleware"
)

type TransactionHandler struct {
	service *transaction.Service
}

func NewTransactionHandler(service *transaction.Service) *TransactionHandler {
	return &TransactionHandler{service: service}
}

type transactionRequest struct {
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Note        string `json:"note,omitempty"`
}

func (req transactionRequest) params() (transaction.CreateParams, transaction.ValidationError) {
	params := transaction.CreateParams{
		AmountText:  req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Note:        req.Note,
	}

	if req.Date != "" {
		date, err := civil.ParseDate(req.Date)
		if err != nil {
			return params, transaction.ValidationError{"date": "Please enter a valid date"}
		}
		params.Date = date
	}
	return params, nil
}

// HandleTransactions lists the caller's transactions or creates a new one.
func (h *TransactionHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		transactions, err := h.service.List(r.Context(), principal)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if transactions == nil {
			transactions = []*transaction.Transaction{}
		}
		writeJSON(w, http.StatusOK, transactions)

	case http.MethodPost:
		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		params, errs := req.params()
		if len(errs) > 0 {
			writeError(w, r, errs)
			return
		}

		created, err := h.service.Save(r.Context(), principal, params)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleTransactionByID reads, updates, or deletes a single transaction.
func (h *TransactionHandler) HandleTransactionByID(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Transaction id is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		t, err := h.service.Get(r.Context(), principal, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if t == nil {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Not found"})
			return
		}
		writeJSON(w, http.StatusOK, t)

	case http.MethodPut:
		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		params, errs := req.params()
		if len(errs) > 0 {
			writeError(w, r, errs)
			return
		}

		updated, err := h.service.Update(r.Context(), principal, id, params)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if updated == nil {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Not found"})
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := h.service.Delete(r.Context(), principal, id); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
