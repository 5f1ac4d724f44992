// Package identity allocates todo ids from the persisted snapshot.
package identity

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Base is the first id handed out for an empty or unreadable snapshot.
const Base int64 = 1

// Compile-time check that Allocator implements ports.IDAllocator.
var _ ports.IDAllocator = (*Allocator)(nil)

// Allocator derives the next id from the highest id in the persisted
// snapshot. The persisted maximum is re-read on every call; the highest id
// this allocator has already issued is remembered so that two allocations
// made before either todo is saved still differ.
type Allocator struct {
	snapshots ports.SnapshotStore

	mu     sync.Mutex
	issued int64
}

// New creates an Allocator reading from snapshots.
func New(snapshots ports.SnapshotStore) *Allocator {
	return &Allocator{snapshots: snapshots}
}

// Next returns an id greater than every persisted id and every id
// previously returned by this allocator.
func (a *Allocator) Next(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	highest := Base - 1
	for _, t := range a.snapshots.Load(ctx) {
		if t.ID > highest {
			highest = t.ID
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	highest = max(highest, a.issued)
	a.issued = highest + 1
	return a.issued, nil
}
