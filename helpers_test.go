package tablo

import (
	"context"
	"fmt"

	nt "tablo/entity"
)

func testColumns() nt.Columns {
	return nt.Columns{
		{Id: "image", Title: "Image", Renderer: "image"},
		{Id: "title", Title: "Name", Sortable: true, Kind: nt.KindString},
		{Id: "price", Title: "Price", Sortable: true, Kind: nt.KindNumber},
	}
}

func titleRows(titles ...string) []nt.Row {
	rows := make([]nt.Row, len(titles))
	for i, title := range titles {
		rows[i] = nt.NewRow(map[string]any{"id": i, "title": title, "price": float64(i)}, "id")
	}
	return rows
}

func titles(rows []nt.Row) []string {
	out := []string{}
	for _, row := range rows {
		out = append(out, row.Get("title").String())
	}
	return out
}

// pagedBackend serves total generated rows, numbered by absolute offset.
type pagedBackend struct {
	total   int
	err     error
	queries []nt.Query
}

func (pb *pagedBackend) FetchPage(ctx context.Context, qry nt.Query) ([]nt.Row, error) {
	pb.queries = append(pb.queries, qry)
	if pb.err != nil {
		return nil, pb.err
	}

	rows := []nt.Row{}
	for i := qry.OffsetStart; i < qry.OffsetEnd && i < pb.total; i++ {
		rows = append(rows, nt.NewRow(map[string]any{
			"id":    i,
			"title": fmt.Sprintf("%s-%s-%d", qry.SortField, qry.SortOrder, i),
			"price": float64(i),
		}, "id"))
	}
	return rows, nil
}

func (pb *pagedBackend) calls() int {
	return len(pb.queries)
}

func (pb *pagedBackend) last() nt.Query {
	return pb.queries[len(pb.queries)-1]
}

type recordingSurface struct {
	views []nt.View
}

func (rs *recordingSurface) Render(view nt.View) {
	rs.views = append(rs.views, view)
}

func (rs *recordingSurface) last() nt.View {
	return rs.views[len(rs.views)-1]
}

type logEntry struct {
	msg string
	err error
}

type testLogger struct {
	entries []logEntry
}

func (tl *testLogger) Info(ctx context.Context, msg string, kv ...any) {
	tl.entries = append(tl.entries, logEntry{msg: msg})
}

func (tl *testLogger) Error(ctx context.Context, msg string, err error, kv ...any) {
	tl.entries = append(tl.entries, logEntry{msg: msg, err: err})
}

func (tl *testLogger) has(msg string) bool {
	for _, entry := range tl.entries {
		if entry.msg == msg {
			return true
		}
	}
	return false
}
