package memory

import (
	"context"
	"fmt"

	"github.com/example/hive/internal/ports/secondary"
)

type hiveRepository struct {
	store *Store
}

func (r *hiveRepository) List(ctx context.Context) ([]*secondary.HiveRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.hives.all(nil), nil
}

func (r *hiveRepository) GetByID(ctx context.Context, id int) (*secondary.HiveRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.hives.get(id), nil
}

func (r *hiveRepository) FindIDByCode(ctx context.Context, code string) (int, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	id, found := r.store.hives.findCode(code)
	return id, found, nil
}

func (r *hiveRepository) Create(ctx context.Context, record *secondary.HiveRecord) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c := *record
	c.CreatedAt = r.store.timestamp()
	c.UpdatedAt = c.CreatedAt
	return r.store.hives.insert(&c), nil
}

func (r *hiveRepository) Update(ctx context.Context, record *secondary.HiveRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.hives.rows[record.ID]
	if !ok {
		return fmt.Errorf("hive %d not found", record.ID)
	}
	existing.Code = record.Code
	existing.Name = record.Name
	existing.Address = record.Address
	existing.LastUpdatedBy = record.LastUpdatedBy
	existing.UpdatedAt = r.store.timestamp()
	return nil
}

func (r *hiveRepository) SetStatus(ctx context.Context, id int, isDeleted bool, updatedBy string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.hives.rows[id]
	if !ok {
		return fmt.Errorf("hive %d not found", id)
	}
	existing.IsDeleted = isDeleted
	existing.LastUpdatedBy = updatedBy
	existing.UpdatedAt = r.store.timestamp()
	return nil
}

// Delete removes a hive and the sections it owns.
func (r *hiveRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.hives.rows[id]; !ok {
		return fmt.Errorf("hive %d not found", id)
	}
	delete(r.store.hives.rows, id)
	for sid, s := range r.store.sections.rows {
		if s.StoreHiveID == id {
			delete(r.store.sections.rows, sid)
		}
	}
	return nil
}

func (r *hiveRepository) CountSections(ctx context.Context, hiveID int) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, s := range r.store.sections.rows {
		if s.StoreHiveID == hiveID {
			count++
		}
	}
	return count, nil
}

type sectionRepository struct {
	store *Store
}

func (r *sectionRepository) List(ctx context.Context) ([]*secondary.SectionRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.sections.all(nil), nil
}

func (r *sectionRepository) ListByHive(ctx context.Context, hiveID int) ([]*secondary.SectionRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.sections.all(func(s *secondary.SectionRecord) bool {
		return s.StoreHiveID == hiveID
	}), nil
}

func (r *sectionRepository) GetByID(ctx context.Context, id int) (*secondary.SectionRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.sections.get(id), nil
}

func (r *sectionRepository) FindIDByCode(ctx context.Context, code string) (int, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	id, found := r.store.sections.findCode(code)
	return id, found, nil
}

func (r *sectionRepository) Create(ctx context.Context, record *secondary.SectionRecord) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.hives.rows[record.StoreHiveID]; !ok {
		return 0, fmt.Errorf("hive %d does not exist", record.StoreHiveID)
	}
	c := *record
	c.CreatedAt = r.store.timestamp()
	c.UpdatedAt = c.CreatedAt
	return r.store.sections.insert(&c), nil
}

// Update persists code, name and the last updater. The owning hive is left as stored.
func (r *sectionRepository) Update(ctx context.Context, record *secondary.SectionRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.sections.rows[record.ID]
	if !ok {
		return fmt.Errorf("section %d not found", record.ID)
	}
	existing.Code = record.Code
	existing.Name = record.Name
	existing.LastUpdatedBy = record.LastUpdatedBy
	existing.UpdatedAt = r.store.timestamp()
	return nil
}

func (r *sectionRepository) SetStatus(ctx context.Context, id int, isDeleted bool, updatedBy string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.sections.rows[id]
	if !ok {
		return fmt.Errorf("section %d not found", id)
	}
	existing.IsDeleted = isDeleted
	existing.LastUpdatedBy = updatedBy
	existing.UpdatedAt = r.store.timestamp()
	return nil
}

func (r *sectionRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.sections.rows[id]; !ok {
		return fmt.Errorf("section %d not found", id)
	}
	delete(r.store.sections.rows, id)
	return nil
}

var (
	_ secondary.HiveRepository    = (*hiveRepository)(nil)
	_ secondary.SectionRepository = (*sectionRepository)(nil)
)
