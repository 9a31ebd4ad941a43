// Package source provides the two ways a table gets ordered rows: sorting a
// dataset held in memory, or asking a backend for one page at a time.
package source

import (
	"context"
	"fmt"
	"slices"

	"github.com/pkg/errors"

	"tablo/compare"
	"tablo/cursor"
	nt "tablo/entity"
)

// Backend fetches a window of sorted rows.
type Backend interface {
	FetchPage(ctx context.Context, qry nt.Query) (rows []nt.Row, err error)
}

// LoadError wraps a failed page fetch.
type LoadError struct {
	Op    string
	Query nt.Query
	Cause error
}

func (err *LoadError) Error() string {
	return fmt.Sprintf("load %s [%d,%d) by %s %s: %v",
		err.Op, err.Query.OffsetStart, err.Query.OffsetEnd, err.Query.SortField, err.Query.SortOrder, err.Cause)
}

func (err *LoadError) Unwrap() error {
	return err.Cause
}

// Local holds an entire dataset and sorts it on demand.
type Local struct {
	rows       []nt.Row
	columns    nt.Columns
	comparator *compare.Comparator
}

// NewLocal takes ownership of rows.
func NewLocal(rows []nt.Row, columns nt.Columns, cpr *compare.Comparator) *Local {

	if cpr == nil {
		cpr = compare.New()
	}

	return &Local{
		rows:       rows,
		columns:    columns,
		comparator: cpr,
	}
}

// ApplySort orders the held rows in place and returns a copy of the result.
func (lcl *Local) ApplySort(sort nt.Sort) (rows []nt.Row, err error) {

	col, ok := lcl.columns.Find(sort.Column)
	if !ok {
		err = errors.Errorf("cannot sort by unknown column %q", sort.Column)
		return
	}

	lcl.comparator.Sort(lcl.rows, sort, col.Kind)

	rows = slices.Clone(lcl.rows)
	return
}

// Len is the size of the held dataset.
func (lcl *Local) Len() int {
	return len(lcl.rows)
}

// Remote requests pages from a backend.
type Remote struct {
	backend  Backend
	pageSize int
}

// NewRemote creates a remote source fetching pageSize rows at a time.
func NewRemote(backend Backend, pageSize int) *Remote {

	if pageSize <= 0 {
		pageSize = cursor.DefaultPageSize
	}

	return &Remote{
		backend:  backend,
		pageSize: pageSize,
	}
}

// PageSize is the number of rows requested per page.
func (rmt *Remote) PageSize() int {
	return rmt.pageSize
}

// FirstQuery is the query for the first page under sort.
func (rmt *Remote) FirstQuery(sort nt.Sort) nt.Query {
	return nt.Query{
		SortField:   sort.Column,
		SortOrder:   sort.Direction,
		OffsetStart: 0,
		OffsetEnd:   rmt.pageSize,
	}
}

// NextQuery is the query for the page after the cursor's current one.
func (rmt *Remote) NextQuery(sort nt.Sort, cur *cursor.Cursor) nt.Query {
	return nt.Query{
		SortField:   sort.Column,
		SortOrder:   sort.Direction,
		OffsetStart: cur.Page() * rmt.pageSize,
		OffsetEnd:   (cur.Page() + 1) * rmt.pageSize,
	}
}

// LoadFirstPage fetches the first page under sort.
func (rmt *Remote) LoadFirstPage(ctx context.Context, sort nt.Sort) (rows []nt.Row, err error) {
	return rmt.Load(ctx, "first page", rmt.FirstQuery(sort))
}

// LoadNextPage fetches the page after the cursor's current one.
// Neither the cursor nor any rows are modified.
func (rmt *Remote) LoadNextPage(ctx context.Context, sort nt.Sort, cur *cursor.Cursor) (rows []nt.Row, err error) {
	return rmt.Load(ctx, "next page", rmt.NextQuery(sort, cur))
}

// Load fetches a prepared query, wrapping any failure in a LoadError.
func (rmt *Remote) Load(ctx context.Context, op string, qry nt.Query) (rows []nt.Row, err error) {

	rows, err = rmt.backend.FetchPage(ctx, qry)
	if err != nil {
		rows = nil
		err = &LoadError{Op: op, Query: qry, Cause: err}
	}
	return
}
