package tablo

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"tablo/cursor"
	nt "tablo/entity"
	"tablo/source"
)

// Fetch performs one backend request and reports its outcome as a Page.
// It touches no controller state and may run on any goroutine.
type Fetch func(ctx context.Context) Page

// Page is the outcome of a Fetch, to be handed to Controller.Receive.
type Page struct {
	RequestId  string
	Generation uint64
	Next       bool
	Rows       []nt.Row
	Err        error
}

// Controller owns sort state, paging progress and the visible rows of a table.
// Its methods must be called from a single goroutine; only Fetch runs elsewhere.
type Controller struct {
	columns   nt.Columns
	mode      Mode
	sortState SortState
	cursor    *cursor.Cursor
	rows      []nt.Row
	state     nt.State
	err       error

	// generation is bumped on every sort so that late pages can be recognized
	generation uint64
	// retryFirst is set when the failed fetch was a first page
	retryFirst bool

	local   *source.Local
	remote  *source.Remote
	surface Surface

	ctx    context.Context
	logger nt.Logger
}

// Init performs the initial sort or issues the first page fetch.
func (ctl *Controller) Init() Fetch {

	ctl.generation++

	if ctl.mode == Local {
		ctl.sortLocal()
		return nil
	}
	return ctl.beginFirst()
}

// RequestSort orders the table by columnId in dir.
// An unknown column or direction yields ErrInvalidArgument and changes nothing.
func (ctl *Controller) RequestSort(columnId string, dir nt.Direction) (fetch Fetch, err error) {

	sortState, err := ctl.sortState.WithColumn(columnId)
	if err != nil {
		return
	}
	sortState, err = sortState.WithDirection(dir)
	if err != nil {
		return
	}

	ctl.sortState = sortState
	ctl.generation++
	ctl.cursor.Reset()

	if ctl.mode == Local {
		ctl.sortLocal()
		return
	}

	fetch = ctl.beginFirst()
	return
}

// ToggleSort handles a header click: the active column flips direction,
// any other column sorts ascending.
func (ctl *Controller) ToggleSort(columnId string) (fetch Fetch, err error) {

	dir := nt.Asc
	current := ctl.sortState.Sort()
	if current.Column == columnId {
		dir = current.Direction.Reverse()
	}

	return ctl.RequestSort(columnId, dir)
}

// NotifyNearScrollBottom requests the next page, unless in local mode,
// already loading or errored.
func (ctl *Controller) NotifyNearScrollBottom() Fetch {

	switch {
	case ctl.mode == Local, ctl.state == nt.Errored, ctl.cursor.Loading():
		return nil
	case ctl.retryFirst:
		return ctl.beginFirst()
	case ctl.state == nt.Idle:
		return nil
	}

	ctl.cursor.BeginLoad()
	ctl.state = nt.Loading
	ctl.render()

	return ctl.fetchNext()
}

// Receive merges the outcome of a fetch.
// Pages from a superseded sort are discarded.
func (ctl *Controller) Receive(page Page) {

	if page.Generation != ctl.generation {
		ctl.logger.Info(ctl.ctx, "discarding stale page",
			"request_id", page.RequestId, "generation", page.Generation, "current", ctl.generation)
		return
	}
	if !ctl.cursor.Loading() {
		ctl.logger.Info(ctl.ctx, "discarding unexpected page", "request_id", page.RequestId)
		return
	}

	ctl.cursor.EndLoad()

	if page.Err != nil {
		ctl.logger.Error(ctl.ctx, "failed to load page", page.Err, "request_id", page.RequestId)

		ctl.state = nt.Errored
		ctl.err = page.Err
		ctl.retryFirst = !page.Next
		ctl.render()
		return
	}

	if page.Next {
		ctl.rows = append(ctl.rows, page.Rows...)
		ctl.cursor.Advance()
	} else {
		ctl.rows = page.Rows
	}

	ctl.state = nt.Loaded
	ctl.err = nil
	ctl.retryFirst = false
	ctl.render()
}

// Run performs fetch in line and receives its page.
func (ctl *Controller) Run(ctx context.Context, fetch Fetch) {
	if fetch == nil {
		return
	}
	ctl.Receive(fetch(ctx))
}

// ClearError acknowledges a failed load so paging may be retried.
func (ctl *Controller) ClearError() {

	if ctl.state != nt.Errored {
		return
	}

	ctl.err = nil
	ctl.state = nt.Loaded
	if ctl.retryFirst {
		ctl.state = nt.Idle
	}
	ctl.render()
}

// View returns the current view model.
func (ctl *Controller) View() nt.View {
	return nt.View{
		Rows:    slices.Clone(ctl.rows),
		Loading: ctl.cursor.Loading(),
		Empty:   ctl.state == nt.Loaded && len(ctl.rows) == 0,
		Sort:    ctl.sortState.Sort(),
		State:   ctl.state,
		Err:     ctl.err,
	}
}

func (ctl *Controller) State() nt.State     { return ctl.state }
func (ctl *Controller) Sort() nt.Sort       { return ctl.sortState.Sort() }
func (ctl *Controller) Page() int           { return ctl.cursor.Page() }
func (ctl *Controller) PageSize() int       { return ctl.cursor.PageSize() }
func (ctl *Controller) Generation() uint64  { return ctl.generation }
func (ctl *Controller) Columns() nt.Columns { return ctl.columns }
func (ctl *Controller) Mode() Mode          { return ctl.mode }

// unexported

func (ctl *Controller) sortLocal() {

	rows, err := ctl.local.ApplySort(ctl.sortState.Sort())
	if err != nil {
		ctl.logger.Error(ctl.ctx, "failed to sort", err)
		ctl.state = nt.Errored
		ctl.err = err
		ctl.render()
		return
	}

	ctl.rows = rows
	ctl.state = nt.Loaded
	ctl.err = nil
	ctl.render()
}

func (ctl *Controller) beginFirst() Fetch {

	// an outstanding fetch belongs to an older generation and will be discarded
	ctl.cursor.EndLoad()
	ctl.cursor.BeginLoad()
	ctl.cursor.Reset()

	ctl.rows = nil
	ctl.state = nt.Loading
	ctl.err = nil
	ctl.render()

	sort := ctl.sortState.Sort()
	remote := ctl.remote
	page := ctl.newPage(false)

	ctl.logger.Info(ctl.ctx, "fetching first page",
		"request_id", page.RequestId, "generation", page.Generation,
		"sort", sort.Column, "order", sort.Direction, "size", remote.PageSize())

	return func(ctx context.Context) Page {
		page.Rows, page.Err = remote.LoadFirstPage(ctx, sort)
		return page
	}
}

func (ctl *Controller) fetchNext() Fetch {

	sort := ctl.sortState.Sort()
	snapshot := *ctl.cursor
	remote := ctl.remote
	page := ctl.newPage(true)

	start, end := snapshot.Window()
	ctl.logger.Info(ctl.ctx, "fetching next page",
		"request_id", page.RequestId, "generation", page.Generation,
		"sort", sort.Column, "order", sort.Direction, "start", start, "end", end)

	return func(ctx context.Context) Page {
		page.Rows, page.Err = remote.LoadNextPage(ctx, sort, &snapshot)
		return page
	}
}

func (ctl *Controller) newPage(next bool) Page {
	return Page{
		RequestId:  uuid.NewString(),
		Generation: ctl.generation,
		Next:       next,
	}
}

func (ctl *Controller) render() {
	if ctl.surface == nil {
		return
	}
	ctl.surface.Render(ctl.View())
}
