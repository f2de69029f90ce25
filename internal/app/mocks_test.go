package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/example/hive/internal/ports/secondary"
)

var errStoreDown = errors.New("store unavailable")

// mockCollection implements secondary.Collection for testing.
// Stored records are copied in and out so callers never alias store state.
type mockCollection[R any] struct {
	records    map[int]*R
	nextID     int
	idOf       func(*R) int
	setID      func(*R, int)
	codeOf     func(*R) string
	setDeleted func(*R, bool, string)

	listErr   error
	getErr    error
	createErr error
	updateErr error
	statusErr error
	deleteErr error

	writes int
}

func (m *mockCollection[R]) seed(records ...*R) {
	for _, r := range records {
		c := *r
		id := m.idOf(&c)
		m.records[id] = &c
		if id >= m.nextID {
			m.nextID = id + 1
		}
	}
}

func (m *mockCollection[R]) List(ctx context.Context) ([]*R, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	ids := make([]int, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]*R, 0, len(ids))
	for _, id := range ids {
		c := *m.records[id]
		result = append(result, &c)
	}
	return result, nil
}

func (m *mockCollection[R]) GetByID(ctx context.Context, id int) (*R, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	r, ok := m.records[id]
	if !ok {
		return nil, nil // nil, nil means not found (not an error)
	}
	c := *r
	return &c, nil
}

func (m *mockCollection[R]) FindIDByCode(ctx context.Context, code string) (int, bool, error) {
	if m.getErr != nil {
		return 0, false, m.getErr
	}
	for id, r := range m.records {
		if m.codeOf(r) == code {
			return id, true, nil
		}
	}
	return 0, false, nil
}

func (m *mockCollection[R]) Create(ctx context.Context, record *R) (int, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	id := m.nextID
	m.nextID++
	c := *record
	m.setID(&c, id)
	m.records[id] = &c
	m.writes++
	return id, nil
}

func (m *mockCollection[R]) Update(ctx context.Context, record *R) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	id := m.idOf(record)
	if _, ok := m.records[id]; !ok {
		return fmt.Errorf("record %d not found", id)
	}
	c := *record
	m.records[id] = &c
	m.writes++
	return nil
}

func (m *mockCollection[R]) SetStatus(ctx context.Context, id int, isDeleted bool, updatedBy string) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	r, ok := m.records[id]
	if !ok {
		return fmt.Errorf("record %d not found", id)
	}
	m.setDeleted(r, isDeleted, updatedBy)
	m.writes++
	return nil
}

func (m *mockCollection[R]) Delete(ctx context.Context, id int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.records[id]; !ok {
		return fmt.Errorf("record %d not found", id)
	}
	delete(m.records, id)
	m.writes++
	return nil
}

// mockHiveRepository implements secondary.HiveRepository for testing.
type mockHiveRepository struct {
	*mockCollection[secondary.HiveRecord]
	sections *mockSectionRepository
}

func (m *mockHiveRepository) CountSections(ctx context.Context, hiveID int) (int, error) {
	count := 0
	for _, s := range m.sections.records {
		if s.StoreHiveID == hiveID {
			count++
		}
	}
	return count, nil
}

func (m *mockHiveRepository) Delete(ctx context.Context, id int) error {
	if err := m.mockCollection.Delete(ctx, id); err != nil {
		return err
	}
	for sid, s := range m.sections.records {
		if s.StoreHiveID == id {
			delete(m.sections.records, sid)
		}
	}
	return nil
}

// mockSectionRepository implements secondary.SectionRepository for testing.
type mockSectionRepository struct {
	*mockCollection[secondary.SectionRecord]
}

func (m *mockSectionRepository) ListByHive(ctx context.Context, hiveID int) ([]*secondary.SectionRecord, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*secondary.SectionRecord, 0, len(all))
	for _, s := range all {
		if s.StoreHiveID == hiveID {
			result = append(result, s)
		}
	}
	return result, nil
}

// mockAuditLog implements secondary.LogWriter for testing.
type mockAuditLog struct {
	entries []secondary.AuditEntry
	err     error
}

func (m *mockAuditLog) record(entityType string, entityID int, action, field, oldValue, newValue string) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, secondary.AuditEntry{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		FieldName:  field,
		OldValue:   oldValue,
		NewValue:   newValue,
	})
	return nil
}

func (m *mockAuditLog) LogCreate(ctx context.Context, entityType string, entityID int) error {
	return m.record(entityType, entityID, "create", "", "", "")
}

func (m *mockAuditLog) LogUpdate(ctx context.Context, entityType string, entityID int, fieldName, oldValue, newValue string) error {
	return m.record(entityType, entityID, "update", fieldName, oldValue, newValue)
}

func (m *mockAuditLog) LogDelete(ctx context.Context, entityType string, entityID int) error {
	return m.record(entityType, entityID, "delete", "", "", "")
}

// mockStore implements secondary.StoreContext for testing.
type mockStore struct {
	hives    *mockHiveRepository
	sections *mockSectionRepository
	audit    *mockAuditLog
}

func newMockStore() *mockStore {
	sections := &mockSectionRepository{&mockCollection[secondary.SectionRecord]{
		records: make(map[int]*secondary.SectionRecord),
		idOf:    func(r *secondary.SectionRecord) int { return r.ID },
		setID:   func(r *secondary.SectionRecord, id int) { r.ID = id },
		codeOf:  func(r *secondary.SectionRecord) string { return r.Code },
		setDeleted: func(r *secondary.SectionRecord, deleted bool, by string) {
			r.IsDeleted = deleted
			r.LastUpdatedBy = by
		},
	}}
	hives := &mockHiveRepository{
		mockCollection: &mockCollection[secondary.HiveRecord]{
			records: make(map[int]*secondary.HiveRecord),
			idOf:    func(r *secondary.HiveRecord) int { return r.ID },
			setID:   func(r *secondary.HiveRecord, id int) { r.ID = id },
			codeOf:  func(r *secondary.HiveRecord) string { return r.Code },
			setDeleted: func(r *secondary.HiveRecord, deleted bool, by string) {
				r.IsDeleted = deleted
				r.LastUpdatedBy = by
			},
		},
		sections: sections,
	}
	return &mockStore{hives: hives, sections: sections, audit: &mockAuditLog{}}
}

func (s *mockStore) Hives() secondary.HiveRepository       { return s.hives }
func (s *mockStore) Sections() secondary.SectionRepository { return s.sections }
func (s *mockStore) AuditLog() secondary.LogWriter         { return s.audit }
func (s *mockStore) Ping(ctx context.Context) error        { return nil }

// mockUser implements secondary.UserContext for testing.
type mockUser struct {
	id string
}

func (u mockUser) UserID(ctx context.Context) string { return u.id }

var (
	_ secondary.StoreContext      = (*mockStore)(nil)
	_ secondary.HiveRepository    = (*mockHiveRepository)(nil)
	_ secondary.SectionRepository = (*mockSectionRepository)(nil)
	_ secondary.LogWriter         = (*mockAuditLog)(nil)
	_ secondary.UserContext       = mockUser{}
)
