package concurrency

import (
	"errors"
	"sync"
)

var (
	// ErrVersionConflict is returned when a compare-and-set loses to a
	// concurrent writer. Callers must refetch and decide whether to retry;
	// the guard never retries on their behalf.
	ErrVersionConflict = errors.New("version conflict")

	// ErrStaleState is the stage-token flavour of the same failure: the
	// caller's expected current stage no longer matches the record.
	ErrStaleState = errors.New("stale state")
)

// Mutator applies an in-place change to a guarded record once the version
// check has passed.
type Mutator func() error

// Guard is a version-stamped optimistic lock over named records. The DynamoDB
// repositories enforce the identical contract with condition expressions; this
// in-memory implementation states the contract executably and backs tests.
type Guard struct {
	mu       sync.Mutex
	versions map[string]int64
}

func NewGuard() *Guard {
	return &Guard{versions: make(map[string]int64)}
}

// CompareAndSet runs mutate iff the record's version equals expectedVersion,
// then bumps the version by exactly 1 and returns it. A mismatch returns
// ErrVersionConflict without touching the record.
func (g *Guard) CompareAndSet(recordID string, expectedVersion int64, mutate Mutator) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	current := g.versions[recordID]
	if current != expectedVersion {
		return 0, ErrVersionConflict
	}
	if err := mutate(); err != nil {
		return 0, err
	}
	next := current + 1
	g.versions[recordID] = next
	return next, nil
}

// Version reports the current version of a record (0 if never written).
func (g *Guard) Version(recordID string) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.versions[recordID]
}
