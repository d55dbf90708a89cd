// Package atoms implements the interned-name pool of the Brix runtime.
// An atom maps a name to a stable integer id exactly once; identity
// equality reduces to id comparison. The pool is append-only and atoms
// live for the lifetime of the process — they are not reference counted.
package atoms

import (
	"fmt"
	"sync"

	"fortio.org/safecast"
)

// AtomID is a stable interned id. NoAtomID (0) is never assigned.
type AtomID uint32

// NoAtomID is the invalid atom id.
const NoAtomID AtomID = 0

// Pool provides stable AtomIDs for names. It is an explicit registry:
// pass it wherever atoms are interned or compared. Pool is not
// goroutine-safe; use Default for the shared process-wide pool.
type Pool struct {
	names []string
	index map[string]AtomID
}

// NewPool constructs an empty pool. Id 0 is reserved as invalid.
func NewPool() *Pool {
	return &Pool{
		names: []string{""}, // reserve 0 as invalid sentinel
		index: make(map[string]AtomID, 64),
	}
}

// Intern returns the stable id for name, assigning the next id on first
// sight. The pool never shrinks.
func (p *Pool) Intern(name string) AtomID {
	if id, ok := p.index[name]; ok {
		return id
	}
	lenNames, err := safecast.Conv[uint32](len(p.names))
	if err != nil {
		panic(fmt.Errorf("atoms: len(names) overflow: %w", err))
	}
	id := AtomID(lenNames)
	p.names = append(p.names, name)
	p.index[name] = id
	return id
}

// Lookup returns the id for name without interning it.
func (p *Pool) Lookup(name string) (AtomID, bool) {
	id, ok := p.index[name]
	return id, ok
}

// Name returns the name for an id.
func (p *Pool) Name(id AtomID) (string, bool) {
	if id == NoAtomID || int(id) >= len(p.names) {
		return "", false
	}
	return p.names[id], true
}

// Len returns the number of interned atoms.
func (p *Pool) Len() int {
	return len(p.names) - 1
}

var (
	defaultOnce sync.Once
	defaultPool *Pool
	defaultMu   sync.Mutex
)

// Default returns the lazily-initialized process-wide pool. The pool
// itself carries no locking: concurrent interning must go through
// InternDefault, and direct Default() access is only safe from a single
// goroutine.
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool = NewPool()
	})
	return defaultPool
}

// InternDefault interns name in the process-wide pool.
func InternDefault(name string) AtomID {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return Default().Intern(name)
}
