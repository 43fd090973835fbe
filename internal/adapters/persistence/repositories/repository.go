package repositories

import (
	"context"
	"errors"
	"fmt"

	"fitcenter/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entity is the contract every persisted entity kind satisfies: a
// stable table name and a uuid primary key. The set of kinds is closed;
// each one is registered in the entity schema alongside its model.
type Entity interface {
	TableName() string
	PrimaryKey() uuid.UUID
}

// InsertValidator lets a model check its own required fields before an
// insert reaches the store.
type InsertValidator interface {
	ValidateInsert() error
}

// Repository is a generic CRUD surface bound to one entity kind. The
// shape contract (row vs. insert vs. update) is enforced once per kind
// at the type level; filter, order and pagination composition is
// uniform across kinds.
type Repository[T Entity] struct {
	db    *gorm.DB
	table string
	desc  domain.Descriptor
}

// NewRepository binds a repository to the entity kind T. The kind must
// be registered in the entity schema; a missing registration is a
// wiring bug and panics at startup.
func NewRepository[T Entity](db *gorm.DB) *Repository[T] {
	var zero T
	table := zero.TableName()
	desc, ok := domain.Schema(table)
	if !ok {
		panic(fmt.Sprintf("repositories: entity %q is not registered in the schema", table))
	}
	return &Repository[T]{db: db, table: table, desc: desc}
}

// Descriptor returns the entity schema descriptor the repository is
// bound to.
func (r *Repository[T]) Descriptor() domain.Descriptor {
	return r.desc
}

// List returns all rows matching the filter, shaped by opts. A filter
// that matches nothing yields an empty slice, not an error.
func (r *Repository[T]) List(ctx context.Context, filter Filter, opts *ListOptions) ([]T, error) {
	tx, err := r.query(ctx, "list", filter, opts)
	if err != nil {
		return nil, err
	}

	rows := []T{}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, r.wrap("list", err)
	}
	return rows, nil
}

// Get returns the single row matching the filter. Zero rows is
// ErrNotFound (a normal outcome); more than one is ErrAmbiguousResult —
// a non-unique filter is never silently truncated to one row.
func (r *Repository[T]) Get(ctx context.Context, filter Filter, opts *ListOptions) (*T, error) {
	capped := ListOptions{Limit: 2}
	if opts != nil {
		capped.Select = opts.Select
		capped.Preloads = opts.Preloads
	}

	rows, err := r.List(ctx, filter, &capped)
	if err != nil {
		return nil, err
	}
	switch len(rows) {
	case 0:
		return nil, domain.ErrNotFound
	case 1:
		return &rows[0], nil
	default:
		return nil, domain.ErrAmbiguousResult
	}
}

// Insert stores one or more rows and returns them with server-assigned
// defaults (identifier, timestamps) populated.
func (r *Repository[T]) Insert(ctx context.Context, rows ...*T) ([]*T, error) {
	if len(rows) == 0 {
		return nil, domain.ValidationError("insert into %s requires at least one row", r.table)
	}
	for _, row := range rows {
		if v, ok := any(row).(InsertValidator); ok {
			if err := v.ValidateInsert(); err != nil {
				return nil, err
			}
		}
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, r.wrap("insert", err)
	}
	return rows, nil
}

// Upsert is like Insert, but a row sharing an existing primary key
// replaces that row instead of conflicting.
func (r *Repository[T]) Upsert(ctx context.Context, rows ...*T) ([]*T, error) {
	if len(rows) == 0 {
		return nil, domain.ValidationError("upsert into %s requires at least one row", r.table)
	}
	for _, row := range rows {
		if v, ok := any(row).(InsertValidator); ok {
			if err := v.ValidateInsert(); err != nil {
				return nil, err
			}
		}
	}

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}
	if err := r.db.WithContext(ctx).Clauses(onConflict).Create(&rows).Error; err != nil {
		return nil, r.wrap("upsert", err)
	}
	return rows, nil
}

// Update applies the partial value set to every row matching the filter
// and returns the updated rows. Zero matches is a success with an empty
// result; callers needing exactly-one semantics must filter uniquely.
// Value keys are restricted to the entity's mutable column set.
func (r *Repository[T]) Update(ctx context.Context, values map[string]interface{}, filter Filter) ([]T, error) {
	if len(values) == 0 {
		return nil, domain.ValidationError("update on %s requires at least one value", r.table)
	}
	for field := range values {
		if !r.desc.IsMutable(field) {
			return nil, domain.ValidationError("column %q of %s is not updatable", field, r.table)
		}
	}

	matched, err := r.List(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return []T{}, nil
	}
	ids := primaryKeys(matched)

	res := r.db.WithContext(ctx).Model(new(T)).Where("id IN ?", ids).Updates(values)
	if res.Error != nil {
		return nil, r.wrap("update", res.Error)
	}

	updated := []T{}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&updated).Error; err != nil {
		return nil, r.wrap("update", err)
	}
	return updated, nil
}

// Delete removes every row matching the filter and returns the removed
// rows' prior state.
func (r *Repository[T]) Delete(ctx context.Context, filter Filter) ([]T, error) {
	victims, err := r.List(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	if len(victims) == 0 {
		return []T{}, nil
	}
	ids := primaryKeys(victims)

	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(new(T)).Error; err != nil {
		return nil, r.wrap("delete", err)
	}
	return victims, nil
}

// Count returns the number of rows matching the filter.
func (r *Repository[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	tx, err := r.query(ctx, "count", filter, nil)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, r.wrap("count", err)
	}
	return count, nil
}

// query builds the base statement: model, validated filter conditions
// and list options.
func (r *Repository[T]) query(ctx context.Context, op string, filter Filter, opts *ListOptions) (*gorm.DB, error) {
	conds, err := filter.Conditions(r.desc)
	if err != nil {
		return nil, domain.NewStoreError(op, r.table, err)
	}
	if err := opts.Validate(r.desc); err != nil {
		return nil, domain.NewStoreError(op, r.table, err)
	}

	tx := r.db.WithContext(ctx).Model(new(T))
	for _, cond := range conds {
		tx = tx.Where(fmt.Sprintf("%s = ?", cond.Field), cond.Value)
	}
	if opts == nil {
		return tx, nil
	}

	if len(opts.Select) > 0 {
		tx = tx.Select(opts.Select)
	}
	for _, preload := range opts.Preloads {
		tx = tx.Preload(preload)
	}
	if opts.Order != nil {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: opts.Order.Field},
			Desc:   opts.Order.Desc,
		})
	}
	if opts.Limit > 0 {
		tx = tx.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		tx = tx.Offset(opts.Offset)
	}
	return tx, nil
}

// wrap maps store failures onto the domain error taxonomy.
func (r *Repository[T]) wrap(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s %s", domain.ErrConflict, op, r.table)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	default:
		return domain.NewStoreError(op, r.table, err)
	}
}

func primaryKeys[T Entity](rows []T) []uuid.UUID {
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.PrimaryKey()
	}
	return ids
}
