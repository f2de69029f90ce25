// Package memory provides an in-process implementation of the store ports.
// It backs tests and the "memory" driver.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/hive/internal/ctxutil"
	"github.com/example/hive/internal/ports/secondary"
)

// Store implements secondary.StoreContext over maps guarded by a single lock.
type Store struct {
	mu       sync.RWMutex
	hives    *table[secondary.HiveRecord]
	sections *table[secondary.SectionRecord]
	audit    []secondary.AuditEntry
	now      func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	s := &Store{now: time.Now}
	s.hives = newTable(
		func(r *secondary.HiveRecord) int { return r.ID },
		func(r *secondary.HiveRecord, id int) { r.ID = id },
		func(r *secondary.HiveRecord) string { return r.Code },
	)
	s.sections = newTable(
		func(r *secondary.SectionRecord) int { return r.ID },
		func(r *secondary.SectionRecord, id int) { r.ID = id },
		func(r *secondary.SectionRecord) string { return r.Code },
	)
	return s
}

// SeedHives inserts hives with their IDs as given. Zero is a valid ID.
func (s *Store) SeedHives(records ...secondary.HiveRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range records {
		s.hives.put(&records[i])
	}
}

// SeedSections inserts sections with their IDs as given. Zero is a valid ID.
func (s *Store) SeedSections(records ...secondary.SectionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range records {
		s.sections.put(&records[i])
	}
}

// AuditEntries returns a copy of the audit log in write order.
func (s *Store) AuditEntries() []secondary.AuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]secondary.AuditEntry(nil), s.audit...)
}

// Hives returns the hive collection.
func (s *Store) Hives() secondary.HiveRepository { return &hiveRepository{store: s} }

// Sections returns the section collection.
func (s *Store) Sections() secondary.SectionRepository { return &sectionRepository{store: s} }

// AuditLog returns the audit log writer.
func (s *Store) AuditLog() secondary.LogWriter { return &logWriter{store: s} }

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// table is an ID-keyed record map. Generated IDs start at 1; seeded records
// may use any ID, zero included. Callers hold Store.mu.
type table[R any] struct {
	rows   map[int]*R
	nextID int
	idOf   func(*R) int
	setID  func(*R, int)
	codeOf func(*R) string
}

func newTable[R any](idOf func(*R) int, setID func(*R, int), codeOf func(*R) string) *table[R] {
	return &table[R]{
		rows:   make(map[int]*R),
		nextID: 1,
		idOf:   idOf,
		setID:  setID,
		codeOf: codeOf,
	}
}

// put stores a copy of record under its own ID.
func (t *table[R]) put(record *R) {
	c := *record
	id := t.idOf(&c)
	t.rows[id] = &c
	if id >= t.nextID {
		t.nextID = id + 1
	}
}

// insert stores a copy of record under a fresh ID.
func (t *table[R]) insert(record *R) int {
	id := t.nextID
	c := *record
	t.setID(&c, id)
	t.put(&c)
	return id
}

func (t *table[R]) get(id int) *R {
	r, ok := t.rows[id]
	if !ok {
		return nil
	}
	c := *r
	return &c
}

func (t *table[R]) all(keep func(*R) bool) []*R {
	ids := make([]int, 0, len(t.rows))
	for id, r := range t.rows {
		if keep == nil || keep(r) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	result := make([]*R, 0, len(ids))
	for _, id := range ids {
		c := *t.rows[id]
		result = append(result, &c)
	}
	return result
}

func (t *table[R]) findCode(code string) (int, bool) {
	for id, r := range t.rows {
		if t.codeOf(r) == code {
			return id, true
		}
	}
	return 0, false
}

type logWriter struct {
	store *Store
}

func (w *logWriter) LogCreate(ctx context.Context, entityType string, entityID int) error {
	return w.write(ctx, entityType, entityID, "create", "", "", "")
}

func (w *logWriter) LogUpdate(ctx context.Context, entityType string, entityID int, fieldName, oldValue, newValue string) error {
	return w.write(ctx, entityType, entityID, "update", fieldName, oldValue, newValue)
}

func (w *logWriter) LogDelete(ctx context.Context, entityType string, entityID int) error {
	return w.write(ctx, entityType, entityID, "delete", "", "", "")
}

func (w *logWriter) write(ctx context.Context, entityType string, entityID int, action, fieldName, oldValue, newValue string) error {
	w.store.mu.Lock()
	defer w.store.mu.Unlock()

	w.store.audit = append(w.store.audit, secondary.AuditEntry{
		ID:         uuid.NewString(),
		ActorID:    ctxutil.ActorFromContext(ctx),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		FieldName:  fieldName,
		OldValue:   oldValue,
		NewValue:   newValue,
		CreatedAt:  w.store.timestamp(),
	})
	return nil
}

var (
	_ secondary.StoreContext = (*Store)(nil)
	_ secondary.LogWriter    = (*logWriter)(nil)
)
