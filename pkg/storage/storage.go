package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/energyadvisor/energyadvisor/pkg/types"
	"github.com/levenlabs/go-lflag"
)

// ErrSessionNotFound is returned when a session ID does not exist (or has
// expired).
var ErrSessionNotFound = errors.New("session not found")

// Database defines the interface for persisting advisory sessions. Only
// the uploaded inputs are stored; analytics results are always recomputed
// from them.
type Database interface {
	CreateSession(ctx context.Context, session types.Session) error
	GetSession(ctx context.Context, id string) (types.Session, error)
	UpdateAppliances(ctx context.Context, id string, appliances []types.ApplianceRecord) error
	UpdateBill(ctx context.Context, id string, bill types.BillRecord) error
	DeleteSession(ctx context.Context, id string) error
	ListSessions(ctx context.Context) ([]types.Session, error)

	// Lifecycle
	Close() error
}

// Configured sets up the storage provider based on flags. Sessions are
// ephemeral, so the in-memory provider is the default; firestore is
// available for multi-instance deployments.
func Configured() Database {
	provider := lflag.String("storage-provider", "memory", "Storage provider to use (available: memory, firestore)")

	var p struct{ Database }

	mem := configuredMemory()
	fs := configuredFirestore()

	lflag.Do(func() {
		switch *provider {
		case "memory":
			p.Database = mem
		case "firestore":
			if err := fs.Init(context.Background()); err != nil {
				panic(fmt.Sprintf("firestore init failed: %v", err))
			}
			p.Database = fs
		default:
			panic(fmt.Sprintf("unknown storage provider: %s", *provider))
		}
	})

	return &p
}
