// Package collision tracks bundle entry names and detects hash collisions
// between them.
package collision

import (
	"fmt"

	"github.com/pangya-tools/panglib/errs"
)

// Tracker tracks entry names and their IDs while a bundle is assembled.
//
// Bundles always store the names table, so two names sharing an ID are not
// fatal: the collision is only flagged so readers know NameID is not unique.
type Tracker struct {
	names        map[string]struct{} // Names seen, for duplicate detection
	ids          map[uint64]struct{} // IDs seen, for collision detection
	ordered      []string            // Names in insertion order
	hasCollision bool                // Whether two names share an ID
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:   make(map[string]struct{}),
		ids:     make(map[uint64]struct{}),
		ordered: make([]string, 0),
	}
}

// Track records name with its ID.
//
// Returns:
//   - error: errs.ErrInvalidEntryName for an empty name,
//     errs.ErrDuplicateEntry if the name was already tracked
func (t *Tracker) Track(name string, id uint64) error {
	if name == "" {
		return errs.ErrInvalidEntryName
	}
	if _, exists := t.names[name]; exists {
		return fmt.Errorf("%q: %w", name, errs.ErrDuplicateEntry)
	}

	if _, exists := t.ids[id]; exists {
		t.hasCollision = true
	}

	t.names[name] = struct{}{}
	t.ids[id] = struct{}{}
	t.ordered = append(t.ordered, name)

	return nil
}

// HasCollision returns true if two tracked names share an ID.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in insertion order.
func (t *Tracker) Names() []string {
	return t.ordered
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.ordered)
}

// Reset clears all tracked names and collision state.
func (t *Tracker) Reset() {
	clear(t.names)
	clear(t.ids)
	t.ordered = t.ordered[:0]
	t.hasCollision = false
}
