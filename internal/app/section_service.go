package app

import (
	"context"
	"fmt"

	"github.com/example/hive/internal/core/lifecycle"
	"github.com/example/hive/internal/ports/primary"
	"github.com/example/hive/internal/ports/secondary"
)

const entitySection = "section"

// SectionServiceImpl implements the SectionService interface.
type SectionServiceImpl struct {
	store    secondary.StoreContext
	user     secondary.UserContext
	hives    *entityLifecycle[secondary.HiveRecord]
	sections *entityLifecycle[secondary.SectionRecord]
}

// NewSectionService creates a new SectionService with injected dependencies.
// It fails with lifecycle.ErrInvalidArgument when store or user is nil.
func NewSectionService(store secondary.StoreContext, user secondary.UserContext, opts ...ServiceOption) (*SectionServiceImpl, error) {
	if err := checkDependencies(store, user); err != nil {
		return nil, err
	}
	o := buildOptions("section_service", opts)

	return &SectionServiceImpl{
		store:    store,
		user:     user,
		hives:    newHiveLifecycle(store, user, o),
		sections: newSectionLifecycle(store, user, o),
	}, nil
}

func newSectionLifecycle(store secondary.StoreContext, user secondary.UserContext, o serviceOptions) *entityLifecycle[secondary.SectionRecord] {
	return &entityLifecycle[secondary.SectionRecord]{
		entity: entitySection,
		collection: func() secondary.Collection[secondary.SectionRecord] {
			return store.Sections()
		},
		codeOf:    func(r *secondary.SectionRecord) string { return r.Code },
		deletedOf: func(r *secondary.SectionRecord) bool { return r.IsDeleted },
		store:     store,
		user:      user,
		logger:    *o.logger,
		metrics:   o.metrics,
	}
}

// ListSections retrieves every section.
func (s *SectionServiceImpl) ListSections(ctx context.Context) ([]*primary.SectionListItem, error) {
	records, err := s.sections.list(ctx)
	if err != nil {
		return nil, err
	}
	return recordsToSectionItems(records), nil
}

// ListSectionsByHive retrieves the sections owned by a hive.
func (s *SectionServiceImpl) ListSectionsByHive(ctx context.Context, hiveID int) ([]*primary.SectionListItem, error) {
	return listSectionsOfHive(ctx, s.hives, s.store, hiveID)
}

// GetSection retrieves a section by ID.
func (s *SectionServiceImpl) GetSection(ctx context.Context, sectionID int) (*primary.Section, error) {
	record, err := s.sections.get(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	return s.recordToSection(record), nil
}

// CreateSection creates a new section in an existing hive.
func (s *SectionServiceImpl) CreateSection(ctx context.Context, req primary.UpdateSectionRequest) (*primary.Section, error) {
	// Verify owning hive exists
	if _, err := s.hives.find(ctx, req.StoreHiveID); err != nil {
		return nil, err
	}

	actor := s.user.UserID(ctx)
	record := &secondary.SectionRecord{
		StoreHiveID:   req.StoreHiveID,
		Code:          req.Code,
		Name:          req.Name,
		IsDeleted:     lifecycle.InitialState().IsDeleted(),
		CreatedBy:     actor,
		LastUpdatedBy: actor,
	}

	created, err := s.sections.create(ctx, record)
	if err != nil {
		return nil, err
	}
	return s.recordToSection(created), nil
}

// UpdateSection overwrites the code and name of a section.
// The owning hive never changes.
func (s *SectionServiceImpl) UpdateSection(ctx context.Context, sectionID int, req primary.UpdateSectionRequest) (*primary.Section, error) {
	actor := s.user.UserID(ctx)
	updated, err := s.sections.update(ctx, sectionID, req.Code, func(r *secondary.SectionRecord) {
		r.Code = req.Code
		r.Name = req.Name
		r.LastUpdatedBy = actor
	})
	if err != nil {
		return nil, err
	}
	return s.recordToSection(updated), nil
}

// SetSectionStatus sets the soft-delete flag of a section.
func (s *SectionServiceImpl) SetSectionStatus(ctx context.Context, sectionID int, isDeleted bool) error {
	return s.sections.setStatus(ctx, sectionID, isDeleted)
}

// DeleteSection purges a soft-deleted section.
func (s *SectionServiceImpl) DeleteSection(ctx context.Context, sectionID int) error {
	return s.sections.purge(ctx, sectionID)
}

// Helper methods

func (s *SectionServiceImpl) recordToSection(r *secondary.SectionRecord) *primary.Section {
	return &primary.Section{
		ID:            r.ID,
		StoreHiveID:   r.StoreHiveID,
		Code:          r.Code,
		Name:          r.Name,
		IsDeleted:     r.IsDeleted,
		CreatedBy:     r.CreatedBy,
		LastUpdatedBy: r.LastUpdatedBy,
		LastUpdated:   r.UpdatedAt,
	}
}

// listSectionsOfHive lists the sections of a hive, failing with ErrNotFound for a missing hive.
func listSectionsOfHive(ctx context.Context, hives *entityLifecycle[secondary.HiveRecord], store secondary.StoreContext, hiveID int) ([]*primary.SectionListItem, error) {
	if _, err := hives.find(ctx, hiveID); err != nil {
		return nil, err
	}

	records, err := store.Sections().ListByHive(ctx, hiveID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections of hive %d: %w", hiveID, err)
	}
	return recordsToSectionItems(records), nil
}

func recordsToSectionItems(records []*secondary.SectionRecord) []*primary.SectionListItem {
	items := make([]*primary.SectionListItem, 0, len(records))
	for _, r := range records {
		items = append(items, &primary.SectionListItem{
			ID:          r.ID,
			StoreHiveID: r.StoreHiveID,
			Code:        r.Code,
			Name:        r.Name,
			IsDeleted:   r.IsDeleted,
		})
	}
	return items
}

// Ensure SectionServiceImpl implements the interface.
var _ primary.SectionService = (*SectionServiceImpl)(nil)
