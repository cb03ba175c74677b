package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const statesCollection = "diet_tracker"

// firestoreState maps to the Firestore document structure.
type firestoreState struct {
	Payload   string    `firestore:"payload"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// FirestoreGateway stores the state as a JSON payload in a single document.
type FirestoreGateway struct {
	client *firestore.Client
	key    string
}

// NewFirestoreGateway creates a gateway for the document diet_tracker/<key>.
func NewFirestoreGateway(client *firestore.Client, key string) *FirestoreGateway {
	return &FirestoreGateway{client: client, key: key}
}

func (g *FirestoreGateway) doc() *firestore.DocumentRef {
	return g.client.Collection(statesCollection).Doc(g.key)
}

// Load reads the state document.
func (g *FirestoreGateway) Load(ctx context.Context) (State, error) {
	doc, err := g.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return EmptyState(), nil
		}
		return State{}, fmt.Errorf("get state document: %w", err)
	}

	var fs firestoreState
	if err := doc.DataTo(&fs); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if fs.Payload == "" {
		return EmptyState(), nil
	}
	return UnmarshalJSON([]byte(fs.Payload))
}

// Save overwrites the state document.
func (g *FirestoreGateway) Save(ctx context.Context, s State) error {
	data, err := MarshalJSON(s)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	_, err = g.doc().Set(ctx, firestoreState{
		Payload:   string(data),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("set state document: %w", err)
	}
	return nil
}

var _ Gateway = (*FirestoreGateway)(nil)
