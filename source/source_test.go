package source

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablo/compare"
	"tablo/cursor"
	nt "tablo/entity"
)

type fakeBackend struct {
	queries []nt.Query
	rows    []nt.Row
	err     error
}

func (fb *fakeBackend) FetchPage(ctx context.Context, qry nt.Query) ([]nt.Row, error) {
	fb.queries = append(fb.queries, qry)
	return fb.rows, fb.err
}

var columns = nt.Columns{
	{Id: "title", Sortable: true, Kind: nt.KindString},
	{Id: "price", Sortable: true, Kind: nt.KindNumber},
}

func titles(rows []nt.Row) []string {
	out := []string{}
	for _, row := range rows {
		out = append(out, row.Get("title").String())
	}
	return out
}

func dataset() []nt.Row {
	return []nt.Row{
		nt.NewRow(map[string]any{"id": 1, "title": "b", "price": 20.0}, "id"),
		nt.NewRow(map[string]any{"id": 2, "title": "a", "price": 30.0}, "id"),
		nt.NewRow(map[string]any{"id": 3, "title": "c", "price": 10.0}, "id"),
	}
}

func TestLocalApplySort(t *testing.T) {

	t.Run("sorts by kind and direction", func(t *testing.T) {
		lcl := NewLocal(dataset(), columns, compare.New())

		rows, err := lcl.ApplySort(nt.Sort{Column: "title", Direction: nt.Asc})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, titles(rows))

		rows, err = lcl.ApplySort(nt.Sort{Column: "title", Direction: nt.Desc})
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "b", "a"}, titles(rows))

		rows, err = lcl.ApplySort(nt.Sort{Column: "price", Direction: nt.Asc})
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "b", "a"}, titles(rows))
		assert.Equal(t, 3, lcl.Len())
	})

	t.Run("returned rows are a copy", func(t *testing.T) {
		lcl := NewLocal(dataset(), columns, nil)

		first, err := lcl.ApplySort(nt.Sort{Column: "title", Direction: nt.Asc})
		require.NoError(t, err)

		_, err = lcl.ApplySort(nt.Sort{Column: "title", Direction: nt.Desc})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, titles(first))
	})

	t.Run("unknown column", func(t *testing.T) {
		lcl := NewLocal(dataset(), columns, nil)

		_, err := lcl.ApplySort(nt.Sort{Column: "nope", Direction: nt.Asc})
		assert.Error(t, err)
	})
}

func TestRemote(t *testing.T) {
	ctx := context.Background()
	sort := nt.Sort{Column: "price", Direction: nt.Desc}

	t.Run("first page window", func(t *testing.T) {
		fb := &fakeBackend{rows: dataset()}
		rmt := NewRemote(fb, 30)

		rows, err := rmt.LoadFirstPage(ctx, sort)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
		require.Len(t, fb.queries, 1)
		assert.Equal(t, nt.Query{SortField: "price", SortOrder: nt.Desc, OffsetStart: 0, OffsetEnd: 30}, fb.queries[0])
	})

	t.Run("next page window from cursor", func(t *testing.T) {
		fb := &fakeBackend{}
		rmt := NewRemote(fb, 30)
		cur := cursor.New(30)
		cur.Advance()

		_, err := rmt.LoadNextPage(ctx, sort, cur)
		require.NoError(t, err)
		require.Len(t, fb.queries, 1)
		assert.Equal(t, 60, fb.queries[0].OffsetStart)
		assert.Equal(t, 90, fb.queries[0].OffsetEnd)
		assert.Equal(t, 2, cur.Page())
	})

	t.Run("default page size", func(t *testing.T) {
		rmt := NewRemote(&fakeBackend{}, 0)
		assert.Equal(t, cursor.DefaultPageSize, rmt.PageSize())
	})

	t.Run("failure wraps cause", func(t *testing.T) {
		cause := &nt.NetworkError{Cause: errors.New("connection refused")}
		fb := &fakeBackend{rows: dataset(), err: cause}
		rmt := NewRemote(fb, 10)

		rows, err := rmt.LoadFirstPage(ctx, sort)
		assert.Nil(t, rows)

		var loadErr *LoadError
		require.True(t, errors.As(err, &loadErr))
		assert.Equal(t, 10, loadErr.Query.OffsetEnd)

		var netErr *nt.NetworkError
		assert.True(t, errors.As(err, &netErr))
		assert.Contains(t, err.Error(), "connection refused")
	})
}
