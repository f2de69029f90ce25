package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/example/hive/internal/ports/secondary"
)

const hivesTable = "store_hives"

var hiveColumns = []string{
	"id", "code", "name", "address", "is_deleted",
	"created_by", "last_updated_by", "created_at", "updated_at",
}

// HiveRepository implements secondary.HiveRepository with SQL.
type HiveRepository struct {
	builder sq.StatementBuilderType
}

// NewHiveRepository creates a new hive repository.
func NewHiveRepository(builder sq.StatementBuilderType) *HiveRepository {
	return &HiveRepository{builder: builder}
}

// List retrieves all hives ordered by ID.
func (r *HiveRepository) List(ctx context.Context) ([]*secondary.HiveRecord, error) {
	rows, err := r.builder.Select(hiveColumns...).From(hivesTable).OrderBy("id ASC").QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hives: %w", err)
	}
	defer rows.Close()

	hives := []*secondary.HiveRecord{}
	for rows.Next() {
		record, err := scanHive(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hive: %w", err)
		}
		hives = append(hives, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hives: %w", err)
	}

	return hives, nil
}

// GetByID retrieves a hive, returning nil, nil when it does not exist.
func (r *HiveRepository) GetByID(ctx context.Context, id int) (*secondary.HiveRecord, error) {
	row := r.builder.Select(hiveColumns...).From(hivesTable).Where(sq.Eq{"id": id}).QueryRowContext(ctx)

	record, err := scanHive(row)
	if err == sql.ErrNoRows {
		return nil, nil // Return nil, nil for "not found" to distinguish from errors
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hive: %w", err)
	}
	return record, nil
}

// FindIDByCode returns the ID of the hive holding code.
func (r *HiveRepository) FindIDByCode(ctx context.Context, code string) (int, bool, error) {
	return findIDByCode(ctx, r.builder, hivesTable, code)
}

// Create persists a new hive and returns its assigned ID.
func (r *HiveRepository) Create(ctx context.Context, hive *secondary.HiveRecord) (int, error) {
	var id int
	err := r.builder.Insert(hivesTable).
		Columns("code", "name", "address", "is_deleted", "created_by", "last_updated_by").
		Values(hive.Code, hive.Name, hive.Address, hive.IsDeleted, hive.CreatedBy, hive.LastUpdatedBy).
		Suffix("RETURNING id").
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create hive: %w", classifyWrite(err))
	}
	return id, nil
}

// Update persists code, name, address and the last updater.
func (r *HiveRepository) Update(ctx context.Context, hive *secondary.HiveRecord) error {
	result, err := r.builder.Update(hivesTable).
		Set("code", hive.Code).
		Set("name", hive.Name).
		Set("address", hive.Address).
		Set("last_updated_by", hive.LastUpdatedBy).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": hive.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update hive: %w", classifyWrite(err))
	}
	return requireRow(result, hivesTable, hive.ID)
}

// SetStatus sets the soft-delete flag.
func (r *HiveRepository) SetStatus(ctx context.Context, id int, isDeleted bool, updatedBy string) error {
	return setStatus(ctx, r.builder, hivesTable, id, isDeleted, updatedBy)
}

// Delete removes a hive. Its sections go with it through the foreign key.
func (r *HiveRepository) Delete(ctx context.Context, id int) error {
	return deleteRow(ctx, r.builder, hivesTable, id)
}

// CountSections returns how many sections belong to a hive.
func (r *HiveRepository) CountSections(ctx context.Context, hiveID int) (int, error) {
	var count int
	err := r.builder.Select("COUNT(*)").From(sectionsTable).Where(sq.Eq{"store_hive_id": hiveID}).
		QueryRowContext(ctx).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sections: %w", err)
	}
	return count, nil
}

func scanHive(row sq.RowScanner) (*secondary.HiveRecord, error) {
	var createdAt, updatedAt sql.NullTime
	record := &secondary.HiveRecord{}
	err := row.Scan(
		&record.ID, &record.Code, &record.Name, &record.Address, &record.IsDeleted,
		&record.CreatedBy, &record.LastUpdatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = formatTime(createdAt)
	record.UpdatedAt = formatTime(updatedAt)
	return record, nil
}

var _ secondary.HiveRepository = (*HiveRepository)(nil)
