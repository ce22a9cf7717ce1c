package ffi

import (
	"sync"

	"go.uber.org/zap"
)

// Handle is an opaque reference to a message held on behalf of a foreign
// caller. Handle 0 is reserved and always invalid.
type Handle uint32

// Table maps handles to owned messages and to borrowed views into them.
// Slots are reused through a free list. An owned entry with outstanding
// borrows cannot be released: the borrowed handles would dangle.
type Table struct {
	entries  []entry
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type entry struct {
	value   any
	schema  string
	parent  Handle // nonzero for borrowed entries
	borrows uint32
	valid   bool
}

func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Create stores an owned value and returns its handle.
func (t *Table) Create(schemaName string, value any) (Handle, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return 0, false
	}
	return t.insert(entry{value: value, schema: schemaName, valid: true}), true
}

// Borrow stores a view into an owned entry. The returned handle stays
// valid only while the parent does; the parent cannot be released until
// every borrow against it has been.
func (t *Table) Borrow(parent Handle, value any) (Handle, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return 0, false
	}

	pe := t.lookup(parent)
	if pe == nil || pe.parent != 0 {
		return 0, false
	}
	pe.borrows++
	return t.insert(entry{value: value, schema: pe.schema, parent: parent, valid: true}), true
}

// Get retrieves the value behind a handle.
func (t *Table) Get(h Handle) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e := t.lookup(h)
	if e == nil {
		return nil, false
	}
	return e.value, true
}

// Schema returns the schema name the handle was created under.
func (t *Table) Schema(h Handle) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e := t.lookup(h)
	if e == nil {
		return "", false
	}
	return e.schema, true
}

// Release frees a handle. Unknown and already-released handles are a
// no-op, so foreign destroy calls are idempotent. Releasing an owned
// entry with outstanding borrows fails.
func (t *Table) Release(h Handle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.lookup(h)
	if e == nil {
		return true
	}
	if e.borrows > 0 {
		Logger().Debug("release blocked by outstanding borrows",
			zap.Uint32("handle", uint32(h)),
			zap.Uint32("borrows", e.borrows))
		return false
	}

	if e.parent != 0 {
		if pe := t.lookup(e.parent); pe != nil && pe.borrows > 0 {
			pe.borrows--
		}
	}

	e.valid = false
	e.value = nil
	e.schema = ""
	e.parent = 0
	t.freeList = append(t.freeList, h)
	return true
}

// Len reports the number of live entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for i := range t.entries {
		if t.entries[i].valid {
			n++
		}
	}
	return n
}

// Close invalidates every entry. Further operations fail.
func (t *Table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	t.entries = nil
	t.freeList = nil
}

// lookup returns the live entry for h, or nil. Callers hold t.mu.
func (t *Table) lookup(h Handle) *entry {
	if h == 0 || int(h) > len(t.entries) {
		return nil
	}
	e := &t.entries[h-1]
	if !e.valid {
		return nil
	}
	return e
}

// insert places e in a reused or fresh slot. Callers hold t.mu.
func (t *Table) insert(e entry) Handle {
	if len(t.freeList) > 0 {
		h := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[h-1] = e
		return h
	}
	t.entries = append(t.entries, e)
	return Handle(len(t.entries))
}
