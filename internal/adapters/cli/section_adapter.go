package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/hive/internal/ports/primary"
)

// SectionAdapter translates CLI operations to SectionService calls.
type SectionAdapter struct {
	service primary.SectionService
	out     io.Writer
}

// NewSectionAdapter creates a new SectionAdapter with the given service.
func NewSectionAdapter(service primary.SectionService, out io.Writer) *SectionAdapter {
	return &SectionAdapter{
		service: service,
		out:     out,
	}
}

// List lists sections. A non-nil hiveID narrows the list to one hive.
func (a *SectionAdapter) List(ctx context.Context, hiveID *int) error {
	var (
		sections []*primary.SectionListItem
		err      error
	)
	if hiveID != nil {
		sections, err = a.service.ListSectionsByHive(ctx, *hiveID)
	} else {
		sections, err = a.service.ListSections(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list sections: %w", err)
	}

	printSections(a.out, sections)
	return nil
}

// Show displays details for a single section.
func (a *SectionAdapter) Show(ctx context.Context, sectionID int) error {
	section, err := a.service.GetSection(ctx, sectionID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nSection: %d\n", section.ID)
	fmt.Fprintf(a.out, "Hive:    %d\n", section.StoreHiveID)
	fmt.Fprintf(a.out, "Code:    %s\n", section.Code)
	fmt.Fprintf(a.out, "Name:    %s\n", section.Name)
	fmt.Fprintf(a.out, "Status:  %s\n", statusLabel(section.IsDeleted))
	if section.LastUpdatedBy != "" {
		fmt.Fprintf(a.out, "Updated: %s by %s\n", section.LastUpdated, section.LastUpdatedBy)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Create creates a new section in a hive.
func (a *SectionAdapter) Create(ctx context.Context, hiveID int, code, name string) error {
	section, err := a.service.CreateSection(ctx, primary.UpdateSectionRequest{
		Code:        code,
		Name:        name,
		StoreHiveID: hiveID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created section %d in hive %d: %s (%s)\n", section.ID, section.StoreHiveID, section.Code, section.Name)
	return nil
}

// Update changes the code and/or name of a section. Empty values keep the current value.
func (a *SectionAdapter) Update(ctx context.Context, sectionID int, code, name string) error {
	if code == "" && name == "" {
		return fmt.Errorf("must specify at least --code or --name")
	}

	current, err := a.service.GetSection(ctx, sectionID)
	if err != nil {
		return err
	}

	section, err := a.service.UpdateSection(ctx, sectionID, primary.UpdateSectionRequest{
		Code: pick(code, current.Code),
		Name: pick(name, current.Name),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Section %d updated: %s (%s)\n", section.ID, section.Code, section.Name)
	return nil
}

// SetStatus soft-deletes or restores a section.
func (a *SectionAdapter) SetStatus(ctx context.Context, sectionID int, isDeleted bool) error {
	if err := a.service.SetSectionStatus(ctx, sectionID, isDeleted); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Section %d is now %s\n", sectionID, statusLabel(isDeleted))
	return nil
}

// Purge permanently removes a soft-deleted section.
func (a *SectionAdapter) Purge(ctx context.Context, sectionID int) error {
	if err := a.service.DeleteSection(ctx, sectionID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Purged section %d\n", sectionID)
	return nil
}

func printSections(out io.Writer, sections []*primary.SectionListItem) {
	if len(sections) == 0 {
		fmt.Fprintln(out, "No sections found")
		return
	}

	fmt.Fprintf(out, "\n%-6s %-6s %-7s %-9s %s\n", "ID", "HIVE", "CODE", "STATUS", "NAME")
	fmt.Fprintln(out, "────────────────────────────────────────────────────────────────")
	for _, s := range sections {
		fmt.Fprintf(out, "%-6d %-6d %-7s %-9s %s\n", s.ID, s.StoreHiveID, s.Code, statusLabel(s.IsDeleted), s.Name)
	}
	fmt.Fprintln(out)
}
