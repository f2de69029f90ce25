package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/example/hive/internal/adapters/memory"
	"github.com/example/hive/internal/app"
	"github.com/example/hive/internal/core/lifecycle"
	"github.com/example/hive/internal/ctxutil"
	"github.com/example/hive/internal/ports/primary"
	"github.com/example/hive/internal/ports/secondary"
)

type fixedUser string

func (u fixedUser) UserID(ctx context.Context) string { return string(u) }

func TestStore_HiveRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("first generated ID is 1", func(t *testing.T) {
		store := memory.NewStore()

		id, err := store.Hives().Create(ctx, &secondary.HiveRecord{Code: "CODE1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 1 {
			t.Errorf("expected ID 1, got %d", id)
		}
	})

	t.Run("assigns IDs after seeded records", func(t *testing.T) {
		store := memory.NewStore()
		store.SeedHives(secondary.HiveRecord{ID: 0, Code: "CODE1"}, secondary.HiveRecord{ID: 4, Code: "CODE2"})

		id, err := store.Hives().Create(ctx, &secondary.HiveRecord{Code: "CODE3"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 5 {
			t.Errorf("expected ID 5, got %d", id)
		}
	})

	t.Run("missing record returns nil without error", func(t *testing.T) {
		store := memory.NewStore()

		record, err := store.Hives().GetByID(ctx, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record != nil {
			t.Errorf("expected nil record, got %+v", record)
		}
	})

	t.Run("finds code holder including ID zero", func(t *testing.T) {
		store := memory.NewStore()
		store.SeedHives(secondary.HiveRecord{ID: 0, Code: "CODE1"})

		id, found, err := store.Hives().FindIDByCode(ctx, "CODE1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found || id != 0 {
			t.Errorf("expected found ID 0, got %d (found=%v)", id, found)
		}
	})

	t.Run("returned records are copies", func(t *testing.T) {
		store := memory.NewStore()
		store.SeedHives(secondary.HiveRecord{ID: 1, Code: "CODE1", Name: "North"})

		record, _ := store.Hives().GetByID(ctx, 1)
		record.Name = "changed"

		again, _ := store.Hives().GetByID(ctx, 1)
		if again.Name != "North" {
			t.Errorf("expected stored name 'North', got %q", again.Name)
		}
	})

	t.Run("delete cascades to sections", func(t *testing.T) {
		store := memory.NewStore()
		store.SeedHives(secondary.HiveRecord{ID: 1, Code: "CODE1"}, secondary.HiveRecord{ID: 2, Code: "CODE2"})
		store.SeedSections(
			secondary.SectionRecord{ID: 1, StoreHiveID: 1, Code: "SEC01"},
			secondary.SectionRecord{ID: 2, StoreHiveID: 2, Code: "SEC02"},
		)

		if err := store.Hives().Delete(ctx, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sections, _ := store.Sections().List(ctx)
		if len(sections) != 1 || sections[0].Code != "SEC02" {
			t.Errorf("expected only SEC02 to remain, got %v", sections)
		}
	})

	t.Run("counts sections per hive", func(t *testing.T) {
		store := memory.NewStore()
		store.SeedHives(secondary.HiveRecord{ID: 1, Code: "CODE1"})
		store.SeedSections(
			secondary.SectionRecord{ID: 1, StoreHiveID: 1, Code: "SEC01"},
			secondary.SectionRecord{ID: 2, StoreHiveID: 1, Code: "SEC02"},
		)

		count, err := store.Hives().CountSections(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2, got %d", count)
		}
	})
}

func TestStore_SectionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create requires existing hive", func(t *testing.T) {
		store := memory.NewStore()

		_, err := store.Sections().Create(ctx, &secondary.SectionRecord{StoreHiveID: 3, Code: "SEC01"})
		if err == nil {
			t.Error("expected error for missing hive")
		}
	})

	t.Run("update keeps owning hive", func(t *testing.T) {
		store := memory.NewStore()
		store.SeedHives(secondary.HiveRecord{ID: 1, Code: "CODE1"})
		store.SeedSections(secondary.SectionRecord{ID: 1, StoreHiveID: 1, Code: "SEC01"})

		err := store.Sections().Update(ctx, &secondary.SectionRecord{ID: 1, StoreHiveID: 9, Code: "SEC09", Name: "Moved"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		record, _ := store.Sections().GetByID(ctx, 1)
		if record.StoreHiveID != 1 || record.Code != "SEC09" {
			t.Errorf("unexpected record: %+v", record)
		}
	})
}

func TestStore_AuditLog(t *testing.T) {
	store := memory.NewStore()
	ctx := ctxutil.WithActorID(context.Background(), "alice")

	if err := store.AuditLog().LogUpdate(ctx, "hive", 3, "code", "OLD01", "NEW01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := store.AuditEntries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.ActorID != "alice" || e.EntityID != 3 || e.NewValue != "NEW01" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.ID == "" || e.CreatedAt == "" {
		t.Error("expected generated ID and timestamp")
	}
}

// TestStore_ServiceScenarios runs the hive lifecycle end to end on the memory store.
func TestStore_ServiceScenarios(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T, store *memory.Store) *app.HiveServiceImpl {
		t.Helper()
		svc, err := app.NewHiveService(store, fixedUser("tester"), app.WithLogger(zerolog.Nop()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return svc
	}

	t.Run("update conflict then success", func(t *testing.T) {
		store := memory.NewStore()
		store.SeedHives(secondary.HiveRecord{ID: 0, Code: "CODE1"}, secondary.HiveRecord{ID: 1, Code: "CODE2"})
		svc := newService(t, store)

		_, err := svc.UpdateHive(ctx, 1, primary.UpdateHiveRequest{Code: "CODE1"})
		if !errors.Is(err, lifecycle.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}

		hive, err := svc.UpdateHive(ctx, 1, primary.UpdateHiveRequest{Code: "CODE3", Name: "New Name"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hive.Code != "CODE3" || hive.Name != "New Name" {
			t.Errorf("unexpected hive: %+v", hive)
		}
	})

	t.Run("purge requires soft delete", func(t *testing.T) {
		store := memory.NewStore()
		store.SeedHives(
			secondary.HiveRecord{ID: 0, Code: "CODE1", IsDeleted: true},
			secondary.HiveRecord{ID: 1, Code: "CODE2"},
		)
		svc := newService(t, store)

		if err := svc.DeleteHive(ctx, 1); !errors.Is(err, lifecycle.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		if err := svc.DeleteHive(ctx, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.GetHive(ctx, 0); !errors.Is(err, lifecycle.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("concurrent creates assign distinct IDs", func(t *testing.T) {
		store := memory.NewStore()
		svc := newService(t, store)

		var wg sync.WaitGroup
		codes := []string{"CODE1", "CODE2", "CODE3", "CODE4", "CODE5"}
		for _, code := range codes {
			wg.Add(1)
			go func(code string) {
				defer wg.Done()
				if _, err := svc.CreateHive(ctx, primary.UpdateHiveRequest{Code: code}); err != nil {
					t.Errorf("create %s: %v", code, err)
				}
			}(code)
		}
		wg.Wait()

		hives, err := svc.ListHives(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(hives) != len(codes) {
			t.Errorf("expected %d hives, got %d", len(codes), len(hives))
		}
	})
}
