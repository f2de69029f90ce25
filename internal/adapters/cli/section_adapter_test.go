package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/hive/internal/core/lifecycle"
	"github.com/example/hive/internal/ports/primary"
)

// mockSectionService implements primary.SectionService for testing
type mockSectionService struct {
	createErr error

	listedAll     bool
	listedHive    int
	lastCreateReq primary.UpdateSectionRequest
	lastUpdateReq primary.UpdateSectionRequest
}

func (m *mockSectionService) ListSections(ctx context.Context) ([]*primary.SectionListItem, error) {
	m.listedAll = true
	return []*primary.SectionListItem{{ID: 1, StoreHiveID: 1, Code: "SEC01", Name: "Aisle"}}, nil
}

func (m *mockSectionService) ListSectionsByHive(ctx context.Context, hiveID int) ([]*primary.SectionListItem, error) {
	m.listedHive = hiveID
	return []*primary.SectionListItem{}, nil
}

func (m *mockSectionService) GetSection(ctx context.Context, sectionID int) (*primary.Section, error) {
	if sectionID == 404 {
		return nil, lifecycle.ErrNotFound
	}
	return &primary.Section{ID: sectionID, StoreHiveID: 1, Code: "SEC01", Name: "Aisle"}, nil
}

func (m *mockSectionService) CreateSection(ctx context.Context, req primary.UpdateSectionRequest) (*primary.Section, error) {
	m.lastCreateReq = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &primary.Section{ID: 5, StoreHiveID: req.StoreHiveID, Code: req.Code, Name: req.Name}, nil
}

func (m *mockSectionService) UpdateSection(ctx context.Context, sectionID int, req primary.UpdateSectionRequest) (*primary.Section, error) {
	m.lastUpdateReq = req
	return &primary.Section{ID: sectionID, StoreHiveID: 1, Code: req.Code, Name: req.Name}, nil
}

func (m *mockSectionService) SetSectionStatus(ctx context.Context, sectionID int, isDeleted bool) error {
	return nil
}

func (m *mockSectionService) DeleteSection(ctx context.Context, sectionID int) error {
	return nil
}

func TestSectionAdapter_List(t *testing.T) {
	ctx := context.Background()

	t.Run("all sections", func(t *testing.T) {
		var out bytes.Buffer
		svc := &mockSectionService{}
		if err := NewSectionAdapter(svc, &out).List(ctx, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !svc.listedAll || !strings.Contains(out.String(), "SEC01") {
			t.Errorf("expected full listing, got %q", out.String())
		}
	})

	t.Run("scoped to hive", func(t *testing.T) {
		var out bytes.Buffer
		svc := &mockSectionService{}
		hiveID := 7
		if err := NewSectionAdapter(svc, &out).List(ctx, &hiveID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.listedHive != 7 {
			t.Errorf("expected hive 7, got %d", svc.listedHive)
		}
		if !strings.Contains(out.String(), "No sections found") {
			t.Errorf("expected empty message, got %q", out.String())
		}
	})
}

func TestSectionAdapter_Create(t *testing.T) {
	var out bytes.Buffer
	svc := &mockSectionService{}
	adapter := NewSectionAdapter(svc, &out)

	if err := adapter.Create(context.Background(), 2, "SEC02", "Cold Room"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.lastCreateReq.StoreHiveID != 2 {
		t.Errorf("expected hive 2, got %d", svc.lastCreateReq.StoreHiveID)
	}
	if !strings.Contains(out.String(), "Created section 5 in hive 2") {
		t.Errorf("unexpected output %q", out.String())
	}

	svc.createErr = lifecycle.ErrNotFound
	if err := adapter.Create(context.Background(), 9, "SEC03", "x"); !errors.Is(err, lifecycle.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSectionAdapter_Update(t *testing.T) {
	ctx := context.Background()
	svc := &mockSectionService{}
	adapter := NewSectionAdapter(svc, &bytes.Buffer{})

	if err := adapter.Update(ctx, 1, "SEC09", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.lastUpdateReq.Code != "SEC09" || svc.lastUpdateReq.Name != "Aisle" {
		t.Errorf("unexpected request: %+v", svc.lastUpdateReq)
	}

	if err := adapter.Update(ctx, 404, "SEC08", ""); !errors.Is(err, lifecycle.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSectionAdapter_ShowAndStatus(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	adapter := NewSectionAdapter(&mockSectionService{}, &out)

	if err := adapter.Show(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := adapter.SetStatus(ctx, 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := adapter.Purge(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, want := range []string{"Section: 1", "Section 1 is now active", "Purged section 1"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output %q", want, output)
		}
	}
}
