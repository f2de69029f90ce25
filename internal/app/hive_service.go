package app

import (
	"context"
	"fmt"

	"github.com/example/hive/internal/core/lifecycle"
	"github.com/example/hive/internal/ports/primary"
	"github.com/example/hive/internal/ports/secondary"
)

const entityHive = "hive"

// HiveServiceImpl implements the HiveService interface.
type HiveServiceImpl struct {
	store    secondary.StoreContext
	user     secondary.UserContext
	hives    *entityLifecycle[secondary.HiveRecord]
	sections *entityLifecycle[secondary.SectionRecord]
}

// NewHiveService creates a new HiveService with injected dependencies.
// It fails with lifecycle.ErrInvalidArgument when store or user is nil.
func NewHiveService(store secondary.StoreContext, user secondary.UserContext, opts ...ServiceOption) (*HiveServiceImpl, error) {
	if err := checkDependencies(store, user); err != nil {
		return nil, err
	}
	o := buildOptions("hive_service", opts)

	return &HiveServiceImpl{
		store:    store,
		user:     user,
		hives:    newHiveLifecycle(store, user, o),
		sections: newSectionLifecycle(store, user, o),
	}, nil
}

func newHiveLifecycle(store secondary.StoreContext, user secondary.UserContext, o serviceOptions) *entityLifecycle[secondary.HiveRecord] {
	return &entityLifecycle[secondary.HiveRecord]{
		entity: entityHive,
		collection: func() secondary.Collection[secondary.HiveRecord] {
			return store.Hives()
		},
		codeOf:    func(r *secondary.HiveRecord) string { return r.Code },
		deletedOf: func(r *secondary.HiveRecord) bool { return r.IsDeleted },
		store:     store,
		user:      user,
		logger:    *o.logger,
		metrics:   o.metrics,
	}
}

// ListHives retrieves every hive with its section count.
func (s *HiveServiceImpl) ListHives(ctx context.Context) ([]*primary.HiveListItem, error) {
	records, err := s.hives.list(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*primary.HiveListItem, 0, len(records))
	for _, r := range records {
		count, err := s.store.Hives().CountSections(ctx, r.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count sections of hive %d: %w", r.ID, err)
		}
		items = append(items, &primary.HiveListItem{
			ID:           r.ID,
			Code:         r.Code,
			Name:         r.Name,
			IsDeleted:    r.IsDeleted,
			SectionCount: count,
		})
	}
	return items, nil
}

// GetHive retrieves a hive by ID.
func (s *HiveServiceImpl) GetHive(ctx context.Context, hiveID int) (*primary.Hive, error) {
	record, err := s.hives.get(ctx, hiveID)
	if err != nil {
		return nil, err
	}
	return s.recordToHive(record), nil
}

// CreateHive creates a new hive.
func (s *HiveServiceImpl) CreateHive(ctx context.Context, req primary.UpdateHiveRequest) (*primary.Hive, error) {
	actor := s.user.UserID(ctx)
	record := &secondary.HiveRecord{
		Code:          req.Code,
		Name:          req.Name,
		Address:       req.Address,
		IsDeleted:     lifecycle.InitialState().IsDeleted(),
		CreatedBy:     actor,
		LastUpdatedBy: actor,
	}

	created, err := s.hives.create(ctx, record)
	if err != nil {
		return nil, err
	}
	return s.recordToHive(created), nil
}

// UpdateHive overwrites the code, name and address of a hive.
func (s *HiveServiceImpl) UpdateHive(ctx context.Context, hiveID int, req primary.UpdateHiveRequest) (*primary.Hive, error) {
	actor := s.user.UserID(ctx)
	updated, err := s.hives.update(ctx, hiveID, req.Code, func(r *secondary.HiveRecord) {
		r.Code = req.Code
		r.Name = req.Name
		r.Address = req.Address
		r.LastUpdatedBy = actor
	})
	if err != nil {
		return nil, err
	}
	return s.recordToHive(updated), nil
}

// SetHiveStatus sets the soft-delete flag of a hive.
func (s *HiveServiceImpl) SetHiveStatus(ctx context.Context, hiveID int, isDeleted bool) error {
	return s.hives.setStatus(ctx, hiveID, isDeleted)
}

// DeleteHive purges a soft-deleted hive together with its sections.
func (s *HiveServiceImpl) DeleteHive(ctx context.Context, hiveID int) error {
	return s.hives.purge(ctx, hiveID)
}

// ListHiveSections retrieves the sections of a hive.
func (s *HiveServiceImpl) ListHiveSections(ctx context.Context, hiveID int) ([]*primary.SectionListItem, error) {
	return listSectionsOfHive(ctx, s.hives, s.store, hiveID)
}

// Helper methods

func (s *HiveServiceImpl) recordToHive(r *secondary.HiveRecord) *primary.Hive {
	return &primary.Hive{
		ID:            r.ID,
		Code:          r.Code,
		Name:          r.Name,
		Address:       r.Address,
		IsDeleted:     r.IsDeleted,
		CreatedBy:     r.CreatedBy,
		LastUpdatedBy: r.LastUpdatedBy,
		LastUpdated:   r.UpdatedAt,
	}
}

// Ensure HiveServiceImpl implements the interface.
var _ primary.HiveService = (*HiveServiceImpl)(nil)
