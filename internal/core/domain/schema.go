package domain

// Descriptor is the canonical description of one entity kind's tabular
// shape: its columns, the subset required on insert, and the subset
// that may be mutated on update. It carries no behavior; the generic
// repository uses it to validate filter, order and update fields before
// they reach the store.
type Descriptor struct {
	Table    string
	Columns  []string
	Required []string
	Mutable  []string
}

// HasColumn reports whether name is a known column of the entity.
func (d Descriptor) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// IsMutable reports whether name may be set by an update.
func (d Descriptor) IsMutable(name string) bool {
	for _, c := range d.Mutable {
		if c == name {
			return true
		}
	}
	return false
}

var schemaRegistry = map[string]Descriptor{}

// RegisterEntity adds an entity kind to the schema registry. Adding a
// new kind is a registration here plus a model struct; nothing else
// changes.
func RegisterEntity(d Descriptor) {
	schemaRegistry[d.Table] = d
}

// Schema looks up the descriptor registered for a table name.
func Schema(table string) (Descriptor, bool) {
	d, ok := schemaRegistry[table]
	return d, ok
}
