package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/hive/internal/ports/primary"
)

// HiveAdapter translates CLI operations to HiveService calls.
type HiveAdapter struct {
	service primary.HiveService
	out     io.Writer
}

// NewHiveAdapter creates a new HiveAdapter with the given service.
func NewHiveAdapter(service primary.HiveService, out io.Writer) *HiveAdapter {
	return &HiveAdapter{
		service: service,
		out:     out,
	}
}

// List lists all hives, soft-deleted ones included.
func (a *HiveAdapter) List(ctx context.Context) error {
	hives, err := a.service.ListHives(ctx)
	if err != nil {
		return fmt.Errorf("failed to list hives: %w", err)
	}

	if len(hives) == 0 {
		fmt.Fprintln(a.out, "No hives found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-6s %-7s %-9s %-9s %s\n", "ID", "CODE", "STATUS", "SECTIONS", "NAME")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, h := range hives {
		fmt.Fprintf(a.out, "%-6d %-7s %-9s %-9d %s\n", h.ID, h.Code, statusLabel(h.IsDeleted), h.SectionCount, h.Name)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single hive.
func (a *HiveAdapter) Show(ctx context.Context, hiveID int) error {
	hive, err := a.service.GetHive(ctx, hiveID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nHive:    %d\n", hive.ID)
	fmt.Fprintf(a.out, "Code:    %s\n", hive.Code)
	fmt.Fprintf(a.out, "Name:    %s\n", hive.Name)
	if hive.Address != "" {
		fmt.Fprintf(a.out, "Address: %s\n", hive.Address)
	}
	fmt.Fprintf(a.out, "Status:  %s\n", statusLabel(hive.IsDeleted))
	if hive.LastUpdatedBy != "" {
		fmt.Fprintf(a.out, "Updated: %s by %s\n", hive.LastUpdated, hive.LastUpdatedBy)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Create creates a new hive.
func (a *HiveAdapter) Create(ctx context.Context, code, name, address string) error {
	hive, err := a.service.CreateHive(ctx, primary.UpdateHiveRequest{
		Code:    code,
		Name:    name,
		Address: address,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created hive %d: %s (%s)\n", hive.ID, hive.Code, hive.Name)
	return nil
}

// Update changes the given fields of a hive. Empty code or name keeps the
// current value; a nil address keeps it and a non-nil one replaces it, so an
// empty string clears it.
func (a *HiveAdapter) Update(ctx context.Context, hiveID int, code, name string, address *string) error {
	if code == "" && name == "" && address == nil {
		return fmt.Errorf("must specify at least --code, --name or --address")
	}

	current, err := a.service.GetHive(ctx, hiveID)
	if err != nil {
		return err
	}

	newAddress := current.Address
	if address != nil {
		newAddress = *address
	}

	hive, err := a.service.UpdateHive(ctx, hiveID, primary.UpdateHiveRequest{
		Code:    pick(code, current.Code),
		Name:    pick(name, current.Name),
		Address: newAddress,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Hive %d updated: %s (%s)\n", hive.ID, hive.Code, hive.Name)
	return nil
}

// SetStatus soft-deletes or restores a hive.
func (a *HiveAdapter) SetStatus(ctx context.Context, hiveID int, isDeleted bool) error {
	if err := a.service.SetHiveStatus(ctx, hiveID, isDeleted); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Hive %d is now %s\n", hiveID, statusLabel(isDeleted))
	return nil
}

// Purge permanently removes a soft-deleted hive and its sections.
func (a *HiveAdapter) Purge(ctx context.Context, hiveID int) error {
	if err := a.service.DeleteHive(ctx, hiveID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Purged hive %d\n", hiveID)
	return nil
}

// Sections lists the sections of a hive.
func (a *HiveAdapter) Sections(ctx context.Context, hiveID int) error {
	sections, err := a.service.ListHiveSections(ctx, hiveID)
	if err != nil {
		return err
	}
	printSections(a.out, sections)
	return nil
}
