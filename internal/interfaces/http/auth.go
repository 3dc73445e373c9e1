package http

import (
	"context"
	"encoding/json"
	"net/http"

	"spendwise/internal/infrastructure/firebase"
	"spendwise/internal/shared/validate"
)

// IdentityService signs users in and up. Implemented by the Firebase
// identity client.
type IdentityService interface {
	SignIn(ctx context.Context, email, password string) (*firebase.Session, error)
	SignUp(ctx context.Context, email, password string) (*firebase.Session, error)
}

type AuthHandler struct {
	identity IdentityService
}

func NewAuthHandler(identity IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

// HandleSignIn authenticates an existing account.
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.identity.SignIn)
}

// HandleSignUp creates a new account.
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.identity.SignUp)
}

func (h *AuthHandler) handle(w http.ResponseWriter, r *http.Request, op func(context.Context, string, string) (*firebase.Session, error)) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errs := validateCredentials(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	session, err := op(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		UID:          session.UID,
		Email:        session.Email,
		IDToken:      session.IDToken,
		RefreshToken: session.RefreshToken,
	})
}

func validateCredentials(req credentialsRequest) map[string]string {
	errs := make(map[string]string)
	if msg := validate.Email(req.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := validate.Password(req.Password); msg != "" {
		errs["password"] = msg
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
