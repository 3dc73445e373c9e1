// Package firestore persists domain documents in Cloud Firestore and
// enforces the authorization policy on every operation, mirroring the rules
// deployed with the database.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

const (
	usersCollection        = "users"
	transactionsCollection = "transactions"
)

// PersistenceError wraps a non-authorization storage failure with the
// operation that produced it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("firestore %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Store wraps a Firestore client. Repositories share one Store.
type Store struct {
	client *firestore.Client
}

// NewStore connects to the project's Firestore database. credentialsFile may
// be empty to use application default credentials.
func NewStore(ctx context.Context, projectID, credentialsFile string) (*Store, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to firestore: %w", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
