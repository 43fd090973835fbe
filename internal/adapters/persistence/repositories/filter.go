package repositories

import (
	"fmt"
	"sort"

	"fitcenter/internal/core/domain"
)

// Filter is an equality-filter map: field name to required value. All
// entries are ANDed together when selecting rows.
type Filter map[string]interface{}

// Condition is one flattened (field, value) equality predicate.
type Condition struct {
	Field string
	Value interface{}
}

// Conditions flattens the filter into a deterministic, sorted slice of
// equality predicates, validating every field name against the entity
// descriptor. Composition is pure; nothing here touches the store.
func (f Filter) Conditions(d domain.Descriptor) ([]Condition, error) {
	if len(f) == 0 {
		return nil, nil
	}

	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	conds := make([]Condition, 0, len(fields))
	for _, field := range fields {
		if !d.HasColumn(field) {
			return nil, fmt.Errorf("unknown column %q in table %q", field, d.Table)
		}
		conds = append(conds, Condition{Field: field, Value: f[field]})
	}
	return conds, nil
}

// Order is a sort directive: one field, ascending unless Desc is set.
type Order struct {
	Field string
	Desc  bool
}

// ListOptions tune a List call. The zero value (or nil) means all
// columns, no relations, store order, no pagination.
type ListOptions struct {
	// Select projects a fixed field list; empty means all fields.
	Select []string
	// Preloads names relations to follow for read-only joins.
	Preloads []string
	Order    *Order
	// Limit caps the row count; zero means no cap.
	Limit int
	// Offset is zero-based.
	Offset int
}

// Validate checks projection and order fields against the descriptor.
func (o *ListOptions) Validate(d domain.Descriptor) error {
	if o == nil {
		return nil
	}
	for _, field := range o.Select {
		if !d.HasColumn(field) {
			return fmt.Errorf("unknown column %q in table %q", field, d.Table)
		}
	}
	if o.Order != nil && !d.HasColumn(o.Order.Field) {
		return fmt.Errorf("unknown order column %q in table %q", o.Order.Field, d.Table)
	}
	if o.Limit < 0 || o.Offset < 0 {
		return fmt.Errorf("limit and offset must not be negative")
	}
	return nil
}
