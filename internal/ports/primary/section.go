package primary

import "context"

// SectionService defines the primary port for hive section operations.
type SectionService interface {
	// ListSections retrieves every section, soft-deleted ones included.
	ListSections(ctx context.Context) ([]*SectionListItem, error)

	// ListSectionsByHive retrieves the sections owned by a hive.
	ListSectionsByHive(ctx context.Context, hiveID int) ([]*SectionListItem, error)

	// GetSection retrieves a section by ID.
	GetSection(ctx context.Context, sectionID int) (*Section, error)

	// CreateSection creates a new section in an existing hive.
	CreateSection(ctx context.Context, req UpdateSectionRequest) (*Section, error)

	// UpdateSection overwrites the code and name of a section.
	UpdateSection(ctx context.Context, sectionID int, req UpdateSectionRequest) (*Section, error)

	// SetSectionStatus sets the soft-delete flag of a section.
	SetSectionStatus(ctx context.Context, sectionID int, isDeleted bool) error

	// DeleteSection purges a soft-deleted section.
	DeleteSection(ctx context.Context, sectionID int) error
}

// UpdateSectionRequest contains parameters for creating or updating a section.
// StoreHiveID is only read on create.
type UpdateSectionRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	StoreHiveID int    `json:"storeHiveId"`
}

// Section represents a hive section at the port boundary.
type Section struct {
	ID            int    `json:"id"`
	StoreHiveID   int    `json:"storeHiveId"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	IsDeleted     bool   `json:"isDeleted"`
	CreatedBy     string `json:"createdBy,omitempty"`
	LastUpdatedBy string `json:"lastUpdatedBy,omitempty"`
	LastUpdated   string `json:"lastUpdated,omitempty"`
}

// SectionListItem is the list projection of a section.
type SectionListItem struct {
	ID          int    `json:"id"`
	StoreHiveID int    `json:"storeHiveId"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	IsDeleted   bool   `json:"isDeleted"`
}
