// Package store persists solved layouts for the HTTP API.
//
// This package defines the [Store] interface with two implementations:
//   - [MemoryStore]: in-memory storage for development and testing
//   - [MongoStore]: MongoDB-backed storage for deployments that keep a
//     history of solved plans
//
// Records pair the input plan with its solution so a stored layout can be
// re-rendered or re-solved later without the original request.
package store

import (
	"context"
	"time"

	"github.com/dashu-baba/architect-layout-solver/pkg/plan"
)

// Record is one persisted solve: the request, its solution, and when it was
// produced.
type Record struct {
	ID        string        `json:"id" bson:"_id"`
	Plan      plan.Plan     `json:"plan" bson:"plan"`
	Solution  plan.Solution `json:"solution" bson:"solution"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}

// Store persists solve records.
type Store interface {
	// Save stores a record. Saving an existing id overwrites it.
	Save(ctx context.Context, rec Record) error

	// Get retrieves a record by id. Returns a NOT_FOUND error when the id
	// does not exist.
	Get(ctx context.Context, id string) (Record, error)

	// List returns the most recent records, newest first, up to limit.
	// A non-positive limit applies a backend default.
	List(ctx context.Context, limit int) ([]Record, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// DefaultListLimit bounds List when the caller does not.
const DefaultListLimit = 50
