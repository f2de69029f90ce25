// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// Collection defines the persistence operations shared by every stored entity kind.
// Each mutation commits on its own; there is no separate save step.
type Collection[R any] interface {
	// List retrieves every record ordered by ID, soft-deleted ones included.
	List(ctx context.Context) ([]*R, error)

	// GetByID retrieves a record by its ID.
	// Returns nil, nil when no record has that ID.
	GetByID(ctx context.Context, id int) (*R, error)

	// FindIDByCode returns the ID of the record holding code, if any.
	FindIDByCode(ctx context.Context, code string) (id int, found bool, err error)

	// Create persists a new record and returns the store-assigned ID.
	Create(ctx context.Context, record *R) (int, error)

	// Update overwrites the mutable fields of an existing record.
	Update(ctx context.Context, record *R) error

	// SetStatus sets the soft-delete flag of a record.
	SetStatus(ctx context.Context, id int, isDeleted bool, updatedBy string) error

	// Delete physically removes a record.
	Delete(ctx context.Context, id int) error
}

// HiveRepository defines the secondary port for hive persistence.
type HiveRepository interface {
	Collection[HiveRecord]

	// CountSections returns the number of sections owned by a hive.
	CountSections(ctx context.Context, hiveID int) (int, error)
}

// SectionRepository defines the secondary port for hive section persistence.
type SectionRepository interface {
	Collection[SectionRecord]

	// ListByHive retrieves the sections owned by a hive ordered by ID.
	ListByHive(ctx context.Context, hiveID int) ([]*SectionRecord, error)
}

// StoreContext exposes the named record collections of the backing store.
// It is shared by every service instance and treated as externally synchronized.
type StoreContext interface {
	// Hives returns the hive collection.
	Hives() HiveRepository

	// Sections returns the hive section collection.
	Sections() SectionRepository

	// AuditLog returns the writer for entity change entries.
	AuditLog() LogWriter

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}

// HiveRecord represents a hive as stored in persistence.
type HiveRecord struct {
	ID            int
	Code          string
	Name          string
	Address       string
	IsDeleted     bool
	CreatedBy     string
	LastUpdatedBy string
	CreatedAt     string
	UpdatedAt     string
}

// SectionRecord represents a hive section as stored in persistence.
type SectionRecord struct {
	ID            int
	StoreHiveID   int // FK to hives, fixed at creation
	Code          string
	Name          string
	IsDeleted     bool
	CreatedBy     string
	LastUpdatedBy string
	CreatedAt     string
	UpdatedAt     string
}
