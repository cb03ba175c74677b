// Package firebase initializes the Firebase app used by the Firestore state
// backend.
package firebase

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Config holds Firebase configuration.
type Config struct {
	ProjectID                    string
	GoogleApplicationCredentials string // optional path to a service account JSON
}

// Clients holds initialized Firebase clients.
type Clients struct {
	Firestore *firestore.Client
}

// InitializeClients creates the Firebase app and its Firestore client. When
// FIRESTORE_EMULATOR_HOST is set the client talks to the emulator.
func InitializeClients(ctx context.Context, cfg Config) (*Clients, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firebase project id is required")
	}

	var opts []option.ClientOption
	if cfg.GoogleApplicationCredentials != "" {
		creds, err := os.ReadFile(cfg.GoogleApplicationCredentials)
		if err != nil {
			return nil, fmt.Errorf("read credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	fc, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firestore: %w", err)
	}
	return &Clients{Firestore: fc}, nil
}

// Close closes the Firestore client.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
