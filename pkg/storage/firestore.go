package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/energyadvisor/energyadvisor/pkg/log"
	"github.com/energyadvisor/energyadvisor/pkg/types"
	"github.com/levenlabs/go-lflag"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const sessionsCollection = "sessions"

// FirestoreProvider implements the Database interface using Google Cloud
// Firestore. Sessions are stored as JSON blobs so the document schema
// never has to track the Go types.
type FirestoreProvider struct {
	client    *firestore.Client
	projectID string
	database  string
}

// configuredFirestore sets up the Firestore provider. It registers flags
// for configuration.
func configuredFirestore() *FirestoreProvider {
	projectID := lflag.String("firestore-project-id", "", "Google Cloud Project ID for Firestore")
	database := lflag.String("firestore-database", "", "Google Cloud Firestore Database")
	emulator := lflag.String("firestore-emulator", "", "Use Firestore emulator")

	f := &FirestoreProvider{}

	lflag.Do(func() {
		f.projectID = *projectID
		f.database = *database

		// set this because that's how the firestore client expects it
		if *emulator != "" {
			os.Setenv("FIRESTORE_EMULATOR_HOST", *emulator)
		}
	})

	return f
}

// Init initializes the Firestore client. This must be called before using
// the provider methods.
func (f *FirestoreProvider) Init(ctx context.Context) error {
	projectID := f.projectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	database := f.database
	if database == "" {
		database = firestore.DefaultDatabaseID
	}
	client, err := firestore.NewClientWithDatabase(ctx, projectID, database)
	if err != nil {
		return fmt.Errorf("failed to create firestore client (project=%s, database=%s): %w", projectID, database, err)
	}
	f.client = client
	return nil
}

// Close closes the Firestore client connection.
func (f *FirestoreProvider) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func (f *FirestoreProvider) setSession(ctx context.Context, session types.Session) error {
	jsonBytes, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", session.ID, err)
	}
	_, err = f.client.Collection(sessionsCollection).Doc(session.ID).Set(ctx, map[string]interface{}{
		"json":      string(jsonBytes),
		"createdAt": session.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.ID, err)
	}
	return nil
}

// CreateSession stores a new session document keyed by the session ID.
func (f *FirestoreProvider) CreateSession(ctx context.Context, session types.Session) error {
	if session.ID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}
	return f.setSession(ctx, session)
}

// GetSession retrieves a session from the "sessions" collection.
func (f *FirestoreProvider) GetSession(ctx context.Context, id string) (types.Session, error) {
	doc, err := f.client.Collection(sessionsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		return types.Session{}, fmt.Errorf("failed to get session %s: %w", id, err)
	}

	val, err := doc.DataAt("json")
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "session doc missing json", slog.String("sessionID", id), slog.Any("err", err))
		return types.Session{}, fmt.Errorf("session %s missing json: %w", id, err)
	}
	jsonStr, ok := val.(string)
	if !ok {
		log.Ctx(ctx).WarnContext(ctx, "session doc json not string", slog.String("sessionID", id))
		return types.Session{}, fmt.Errorf("session %s json not string", id)
	}

	var s types.Session
	if err := json.Unmarshal([]byte(jsonStr), &s); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to unmarshal session", slog.String("sessionID", id), slog.Any("err", err))
		return types.Session{}, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
	}
	return s, nil
}

// UpdateAppliances replaces the appliance list on an existing session.
func (f *FirestoreProvider) UpdateAppliances(ctx context.Context, id string, appliances []types.ApplianceRecord) error {
	session, err := f.GetSession(ctx, id)
	if err != nil {
		return err
	}
	session.Appliances = appliances
	return f.setSession(ctx, session)
}

// UpdateBill sets the bill on an existing session.
func (f *FirestoreProvider) UpdateBill(ctx context.Context, id string, bill types.BillRecord) error {
	session, err := f.GetSession(ctx, id)
	if err != nil {
		return err
	}
	session.Bill = &bill
	return f.setSession(ctx, session)
}

// ListSessions retrieves all sessions, newest first.
func (f *FirestoreProvider) ListSessions(ctx context.Context) ([]types.Session, error) {
	iter := f.client.Collection(sessionsCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var sessions []types.Session
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating sessions: %w", err)
		}

		val, err := doc.DataAt("json")
		if err != nil {
			log.Ctx(ctx).WarnContext(ctx, "session doc missing json", slog.String("sessionID", doc.Ref.ID))
			// Skip malformed documents
			continue
		}
		jsonStr, ok := val.(string)
		if !ok {
			log.Ctx(ctx).WarnContext(ctx, "session doc json not string", slog.String("sessionID", doc.Ref.ID))
			continue
		}

		var s types.Session
		if err := json.Unmarshal([]byte(jsonStr), &s); err != nil {
			log.Ctx(ctx).WarnContext(ctx, "failed to unmarshal session", slog.String("sessionID", doc.Ref.ID), slog.Any("err", err))
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// DeleteSession removes a session document. Deleting a missing session is
// not an error.
func (f *FirestoreProvider) DeleteSession(ctx context.Context, id string) error {
	_, err := f.client.Collection(sessionsCollection).Doc(id).Delete(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}
