// Package cursor tracks paging progress for a remote table.
package cursor

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = 30

// Cursor counts pages and guards against more than one outstanding load.
type Cursor struct {
	pageSize int
	page     int
	loading  bool
}

// New creates a cursor on page 1.
// A non-positive pageSize falls back to DefaultPageSize.
func New(pageSize int) *Cursor {

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Cursor{
		pageSize: pageSize,
		page:     1,
	}
}

// Reset returns to page 1.
func (cur *Cursor) Reset() {
	cur.page = 1
}

// Advance moves to the next page.
func (cur *Cursor) Advance() {
	cur.page++
}

// BeginLoad marks a load outstanding, returning false if one already is.
// Callers must not issue a request when it returns false.
func (cur *Cursor) BeginLoad() bool {
	if cur.loading {
		return false
	}
	cur.loading = true
	return true
}

// EndLoad clears the outstanding load.
func (cur *Cursor) EndLoad() {
	cur.loading = false
}

func (cur *Cursor) Page() int     { return cur.page }
func (cur *Cursor) PageSize() int { return cur.pageSize }
func (cur *Cursor) Loading() bool { return cur.loading }

// Window returns the half-open offsets of the page following the current one.
func (cur *Cursor) Window() (start, end int) {
	start = cur.page * cur.pageSize
	end = (cur.page + 1) * cur.pageSize
	return
}
