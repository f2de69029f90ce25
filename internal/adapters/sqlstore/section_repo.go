package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/example/hive/internal/ports/secondary"
)

const sectionsTable = "store_hive_sections"

var sectionColumns = []string{
	"id", "store_hive_id", "code", "name", "is_deleted",
	"created_by", "last_updated_by", "created_at", "updated_at",
}

// SectionRepository implements secondary.SectionRepository with SQL.
type SectionRepository struct {
	builder sq.StatementBuilderType
}

// NewSectionRepository creates a new section repository.
func NewSectionRepository(builder sq.StatementBuilderType) *SectionRepository {
	return &SectionRepository{builder: builder}
}

// List retrieves all sections ordered by ID.
func (r *SectionRepository) List(ctx context.Context) ([]*secondary.SectionRecord, error) {
	return r.list(ctx, nil)
}

// ListByHive retrieves the sections of one hive ordered by ID.
func (r *SectionRepository) ListByHive(ctx context.Context, hiveID int) ([]*secondary.SectionRecord, error) {
	return r.list(ctx, sq.Eq{"store_hive_id": hiveID})
}

func (r *SectionRepository) list(ctx context.Context, where sq.Sqlizer) ([]*secondary.SectionRecord, error) {
	query := r.builder.Select(sectionColumns...).From(sectionsTable).OrderBy("id ASC")
	if where != nil {
		query = query.Where(where)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	defer rows.Close()

	sections := []*secondary.SectionRecord{}
	for rows.Next() {
		record, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sections: %w", err)
	}

	return sections, nil
}

// GetByID retrieves a section, returning nil, nil when it does not exist.
func (r *SectionRepository) GetByID(ctx context.Context, id int) (*secondary.SectionRecord, error) {
	row := r.builder.Select(sectionColumns...).From(sectionsTable).Where(sq.Eq{"id": id}).QueryRowContext(ctx)

	record, err := scanSection(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get section: %w", err)
	}
	return record, nil
}

// FindIDByCode returns the ID of the section holding code.
func (r *SectionRepository) FindIDByCode(ctx context.Context, code string) (int, bool, error) {
	return findIDByCode(ctx, r.builder, sectionsTable, code)
}

// Create persists a new section and returns its assigned ID.
func (r *SectionRepository) Create(ctx context.Context, section *secondary.SectionRecord) (int, error) {
	var id int
	err := r.builder.Insert(sectionsTable).
		Columns("store_hive_id", "code", "name", "is_deleted", "created_by", "last_updated_by").
		Values(section.StoreHiveID, section.Code, section.Name, section.IsDeleted, section.CreatedBy, section.LastUpdatedBy).
		Suffix("RETURNING id").
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create section: %w", classifyWrite(err))
	}
	return id, nil
}

// Update persists code, name and the last updater. store_hive_id is never written.
func (r *SectionRepository) Update(ctx context.Context, section *secondary.SectionRecord) error {
	result, err := r.builder.Update(sectionsTable).
		Set("code", section.Code).
		Set("name", section.Name).
		Set("last_updated_by", section.LastUpdatedBy).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": section.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update section: %w", classifyWrite(err))
	}
	return requireRow(result, sectionsTable, section.ID)
}

// SetStatus sets the soft-delete flag.
func (r *SectionRepository) SetStatus(ctx context.Context, id int, isDeleted bool, updatedBy string) error {
	return setStatus(ctx, r.builder, sectionsTable, id, isDeleted, updatedBy)
}

// Delete removes a section.
func (r *SectionRepository) Delete(ctx context.Context, id int) error {
	return deleteRow(ctx, r.builder, sectionsTable, id)
}

func scanSection(row sq.RowScanner) (*secondary.SectionRecord, error) {
	var createdAt, updatedAt sql.NullTime
	record := &secondary.SectionRecord{}
	err := row.Scan(
		&record.ID, &record.StoreHiveID, &record.Code, &record.Name, &record.IsDeleted,
		&record.CreatedBy, &record.LastUpdatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = formatTime(createdAt)
	record.UpdatedAt = formatTime(updatedAt)
	return record, nil
}

var _ secondary.SectionRepository = (*SectionRepository)(nil)
