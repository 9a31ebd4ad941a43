package entity

import (
	"github.com/pkg/errors"
)

// Kind declares how a column's values are compared.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindNatural Kind = "natural"
)

// Valid reports whether kind is one we know how to compare.
func (kind Kind) Valid() bool {
	switch kind {
	case KindString, KindNumber, KindNatural:
		return true
	}
	return false
}

// Column describes one displayable, possibly sortable, field.
type Column struct {
	Id       string `yaml:"id"`
	Title    string `yaml:"title"`
	Sortable bool   `yaml:"sortable,omitempty"`
	Kind     Kind   `yaml:"kind,omitempty"`
	Renderer string `yaml:"renderer,omitempty"`
	Width    int    `yaml:"width,omitempty"`
}

// Columns is an ordered column set.
type Columns []Column

// Validate checks ids are present and unique and kinds are known.
// An empty kind defaults to string.
func (cols Columns) Validate() (err error) {

	if len(cols) == 0 {
		return errors.New("no columns configured")
	}

	seen := map[string]bool{}
	for i := range cols {
		col := &cols[i]

		if col.Id == "" {
			return errors.Errorf("column %d has no id", i)
		}
		if seen[col.Id] {
			return errors.Errorf("duplicate column id %q", col.Id)
		}
		seen[col.Id] = true

		if col.Kind == "" {
			col.Kind = KindString
		}
		if !col.Kind.Valid() {
			return errors.Errorf("column %q has unknown kind %q", col.Id, col.Kind)
		}
	}

	return
}

// Find returns the column with the given id.
func (cols Columns) Find(id string) (col Column, ok bool) {
	for _, col = range cols {
		if col.Id == id {
			ok = true
			return
		}
	}
	col = Column{}
	return
}

// FirstSortable returns the first column marked sortable.
func (cols Columns) FirstSortable() (col Column, ok bool) {
	for _, col = range cols {
		if col.Sortable {
			ok = true
			return
		}
	}
	col = Column{}
	return
}
