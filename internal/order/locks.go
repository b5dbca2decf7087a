package order

import "sync"

// refLocks serializes the check-then-transition sequence per order
// reference so two concurrent callbacks for the same order cannot both
// observe PENDING. Unrelated orders never contend: each reference gets
// its own mutex, created on demand and dropped once the last holder
// releases it.
type refLocks struct {
	mu   sync.Mutex
	refs map[string]*refLock
}

type refLock struct {
	mu      sync.Mutex
	holders int
}

func newRefLocks() *refLocks {
	return &refLocks{refs: make(map[string]*refLock)}
}

func (l *refLocks) lock(ref string) {
	l.mu.Lock()
	entry, ok := l.refs[ref]
	if !ok {
		entry = &refLock{}
		l.refs[ref] = entry
	}
	entry.holders++
	l.mu.Unlock()

	entry.mu.Lock()
}

func (l *refLocks) unlock(ref string) {
	l.mu.Lock()
	entry := l.refs[ref]
	entry.holders--
	if entry.holders == 0 {
		delete(l.refs, ref)
	}
	l.mu.Unlock()

	entry.mu.Unlock()
}
