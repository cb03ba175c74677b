package store

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/firestore"

	"github.com/janisto/diet-planner/internal/testutil"
)

func setupFirestoreTest(t *testing.T) (*FirestoreGateway, *firestore.Client, func()) {
	t.Helper()

	testutil.SkipIfFirestoreUnavailable(t)
	testutil.SetupEmulator(t)
	testutil.ClearFirestore(t)

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, testutil.ProjectID)
	if err != nil {
		t.Fatalf("failed to create Firestore client: %v", err)
	}

	g := NewFirestoreGateway(client, "test-state")
	cleanup := func() {
		testutil.ClearFirestore(t)
		_ = client.Close()
	}
	return g, client, cleanup
}

func TestFirestoreGatewayEmpty(t *testing.T) {
	g, _, cleanup := setupFirestoreTest(t)
	defer cleanup()

	s, err := g.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSameState(t, s, EmptyState())
}

func TestFirestoreGatewayRoundTrip(t *testing.T) {
	g, _, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	want := testState(t)
	if err := g.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := g.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSameState(t, got, want)
}

func TestFirestoreGatewayCorruptPayload(t *testing.T) {
	g, client, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	_, err := client.Collection(statesCollection).Doc("test-state").Set(ctx, map[string]any{
		"payload": "{broken",
	})
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, err = g.Load(ctx)
	if !errors.Is(err, ErrCorruptState) {
		t.Fatalf("expected ErrCorruptState, got %v", err)
	}
}
