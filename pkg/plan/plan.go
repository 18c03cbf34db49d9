// Package plan defines the serialization formats for floor-plan requests
// and solved layouts.
//
// A [Plan] is the canonical input document: the site boundary plus the room
// requirements. A [Solution] is the canonical output document: the placed
// rooms with their scores and the solve time. Both are JSON documents
// designed for round-trip fidelity, and the plan's canonical encoding
// doubles as the content-hash input for caching.
package plan

import (
	"bytes"
	"encoding/json"

	"github.com/dashu-baba/architect-layout-solver/pkg/errors"
	"github.com/dashu-baba/architect-layout-solver/pkg/geometry"
	"github.com/dashu-baba/architect-layout-solver/pkg/solver"
)

// Plan is the top-level input document.
type Plan struct {
	Boundary geometry.Boundary `json:"boundary" bson:"boundary"`
	Rooms    []solver.RoomSpec `json:"rooms" bson:"rooms"`
}

// Validate checks the document against the solver's input requirements:
// positive finite dimensions and areas, unique well-formed room ids, and
// disjoint neighbour relations.
func (p *Plan) Validate() error {
	return solver.ValidateInput(p.Rooms, p.Boundary.Width, p.Boundary.Height)
}

// Marshal serializes the plan to its canonical JSON encoding. Field order
// is fixed by the struct definitions, so equal plans produce identical
// bytes - cache keys depend on this.
func Marshal(p Plan) ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal deserializes JSON bytes to a Plan. Unknown fields are rejected
// so that typos in hand-written documents fail loudly instead of silently
// dropping constraints.
func Unmarshal(data []byte) (Plan, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var p Plan
	if err := dec.Decode(&p); err != nil {
		return Plan{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse plan document")
	}
	return p, nil
}
