package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const identityBaseURL = "https://identitytoolkit.googleapis.com/v1"

// AuthError is a sign-in or sign-up failure from the identity provider,
// carrying both the provider code and a message safe to show to users.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// authErrorMessages maps identity provider error codes to user-facing text.
var authErrorMessages = map[string]string{
	"EMAIL_NOT_FOUND":             "No account found with this email",
	"INVALID_PASSWORD":            "Incorrect email or password",
	"INVALID_LOGIN_CREDENTIALS":   "Incorrect email or password",
	"USER_DISABLED":               "This account has been disabled",
	"INVALID_EMAIL":               "Please enter a valid email address",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "Too many attempts. Please try again later",
	"EMAIL_EXISTS":                "An account with this email already exists",
}

// newAuthError resolves a provider error code to an AuthError. Codes may
// arrive with a trailing detail suffix, e.g. "TOO_MANY_ATTEMPTS_TRY_LATER :
// ...", so matching is on the leading token.
func newAuthError(code string) *AuthError {
	key := strings.TrimSpace(strings.SplitN(code, ":", 2)[0])
	if msg, ok := authErrorMessages[key]; ok {
		return &AuthError{Code: key, Message: msg}
	}
	return &AuthError{Code: key, Message: "Something went wrong. Please try again"}
}

// Session is the result of a successful sign-in or sign-up.
type Session struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
}

// IdentityClient signs users in and up against the Firebase identity toolkit
// REST API using the project's web API key.
type IdentityClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewIdentityClient(apiKey string) *IdentityClient {
	return &IdentityClient{
		apiKey:  apiKey,
		baseURL: identityBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type identityRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type identityResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn authenticates an existing account with email and password.
func (c *IdentityClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return c.call(ctx, "accounts:signInWithPassword", email, password)
}

// SignUp creates a new account with email and password.
func (c *IdentityClient) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return c.call(ctx, "accounts:signUp", email, password)
}

func (c *IdentityClient) call(ctx context.Context, endpoint, email, password string) (*Session, error) {
	body, err := json.Marshal(identityRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding identity request: %w", err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building identity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling identity provider: %w", err)
	}
	defer resp.Body.Close()

	var out identityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding identity response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		code := ""
		if out.Error != nil {
			code = out.Error.Message
		}
		return nil, newAuthError(code)
	}

	return &Session{
		UID:          out.LocalID,
		Email:        out.Email,
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
	}, nil
}
