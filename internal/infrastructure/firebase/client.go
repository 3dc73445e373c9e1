package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"spendwise/internal/domain/policy"
)

// Client wraps the Firebase Admin SDK for the pieces the API needs:
// verifying ID tokens and resolving them to a principal.
type Client struct {
	app        *firebase.App
	authClient *auth.Client
}

// NewClient initializes a Firebase app for the given project. credentialsFile
// may be empty, in which case application default credentials are used.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &Client{app: app, authClient: authClient}, nil
}

// VerifyIDToken validates a Firebase ID token and returns the principal it
// identifies. An expired or malformed token returns an error.
func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (*policy.Principal, error) {
	token, err := c.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("verifying id token: %w", err)
	}

	principal := &policy.Principal{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		principal.Email = email
	}
	return principal, nil
}
