// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the CLI and HTTP API drive the services.
package primary

import "context"

// HiveService defines the primary port for hive operations.
type HiveService interface {
	// ListHives retrieves every hive, soft-deleted ones included.
	ListHives(ctx context.Context) ([]*HiveListItem, error)

	// GetHive retrieves a hive by ID.
	GetHive(ctx context.Context, hiveID int) (*Hive, error)

	// CreateHive creates a new hive with a unique code.
	CreateHive(ctx context.Context, req UpdateHiveRequest) (*Hive, error)

	// UpdateHive overwrites the code, name and address of a hive.
	UpdateHive(ctx context.Context, hiveID int, req UpdateHiveRequest) (*Hive, error)

	// SetHiveStatus sets the soft-delete flag of a hive.
	SetHiveStatus(ctx context.Context, hiveID int, isDeleted bool) error

	// DeleteHive purges a soft-deleted hive.
	DeleteHive(ctx context.Context, hiveID int) error

	// ListHiveSections retrieves the sections of a hive.
	ListHiveSections(ctx context.Context, hiveID int) ([]*SectionListItem, error)
}

// UpdateHiveRequest contains parameters for creating or updating a hive.
type UpdateHiveRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Hive represents a hive entity at the port boundary.
type Hive struct {
	ID            int    `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	IsDeleted     bool   `json:"isDeleted"`
	CreatedBy     string `json:"createdBy,omitempty"`
	LastUpdatedBy string `json:"lastUpdatedBy,omitempty"`
	LastUpdated   string `json:"lastUpdated,omitempty"`
}

// HiveListItem is the list projection of a hive.
type HiveListItem struct {
	ID           int    `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	IsDeleted    bool   `json:"isDeleted"`
	SectionCount int    `json:"hiveSectionCount"`
}
