package tablo

import (
	"github.com/pkg/errors"

	nt "tablo/entity"
)

// ErrInvalidArgument is returned for an unknown sort column or direction.
var ErrInvalidArgument = errors.New("invalid argument")

// SortState is a validated column and direction.
type SortState struct {
	columns nt.Columns
	sort    nt.Sort
}

// NewSortState validates columnId against the sortable columns and dir as asc or desc.
func NewSortState(columns nt.Columns, columnId string, dir nt.Direction) (ss SortState, err error) {

	ss = SortState{columns: columns}

	ss, err = ss.WithColumn(columnId)
	if err != nil {
		return
	}

	ss, err = ss.WithDirection(dir)
	return
}

// WithColumn returns a copy ordered by columnId.
func (ss SortState) WithColumn(columnId string) (SortState, error) {

	col, ok := ss.columns.Find(columnId)
	if !ok || !col.Sortable {
		return ss, errors.Wrapf(ErrInvalidArgument, "no sortable column %q", columnId)
	}

	ss.sort.Column = columnId
	return ss, nil
}

// WithDirection returns a copy ordered in dir.
func (ss SortState) WithDirection(dir nt.Direction) (SortState, error) {

	_, err := nt.ParseDirection(string(dir))
	if err != nil {
		return ss, errors.Wrapf(ErrInvalidArgument, "%s", err)
	}

	ss.sort.Direction = dir
	return ss, nil
}

// Sort returns the plain sort value.
func (ss SortState) Sort() nt.Sort {
	return ss.sort
}

// Kind returns the value kind of the sort column.
func (ss SortState) Kind() nt.Kind {
	col, _ := ss.columns.Find(ss.sort.Column)
	return col.Kind
}
