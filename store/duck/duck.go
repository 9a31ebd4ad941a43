// Package duck serves table rows from an in-memory DuckDB loaded with a json file.
package duck

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	nt "tablo/entity"
)

const table = "records"

// Duck is a Backend over a single loaded file.
type Duck struct {
	db       *sql.DB
	idField  string
	fields   []string
	filename string
	logger   nt.Logger
}

// New opens an in-memory database; rows take their identity from idField.
func New(idField string, lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:      db,
		idField: idField,
		logger:  lgr,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Load a json or newline delimited json file
func (dk *Duck) Load(ctx context.Context, path string) (err error) {

	create := fmt.Sprintf(
		"CREATE OR REPLACE TABLE %s AS SELECT * FROM read_json_auto('%s', maximum_object_size=16777216)",
		table, strings.ReplaceAll(path, "'", "''"))

	_, err = dk.db.ExecContext(ctx, create)
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", path)
		return
	}

	dk.fields, err = getFields(ctx, dk.db)
	if err != nil {
		return
	}
	dk.filename = path

	count, err := dk.Count(ctx)
	if err != nil {
		return
	}

	dk.logger.Info(ctx, "loaded file", "path", path, "count", count, "fields", dk.fields)
	return
}

// Name returns the name of the loaded file
func (dk *Duck) Name() string {
	return dk.filename
}

// Fields returns column names of the loaded file in file order
func (dk *Duck) Fields() []string {
	return slices.Clone(dk.fields)
}

// Count returns the number of loaded rows
func (dk *Duck) Count(ctx context.Context) (count int, err error) {

	err = dk.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	err = errors.Wrapf(err, "failed to count rows")
	return
}

// FetchPage gets a window of rows ordered by the query's sort field.
// Ties keep load order.
func (dk *Duck) FetchPage(ctx context.Context, qry nt.Query) (rows []nt.Row, err error) {

	if !slices.Contains(dk.fields, qry.SortField) {
		err = errors.Errorf("unknown sort field %q", qry.SortField)
		return
	}

	order := "ASC"
	switch qry.SortOrder {
	case nt.Asc:
	case nt.Desc:
		order = "DESC"
	default:
		err = errors.Errorf("unknown sort order %q", qry.SortOrder)
		return
	}

	limit := max(0, qry.Limit())
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY %s %s NULLS FIRST, rowid LIMIT %d OFFSET %d",
		table, quote(qry.SortField), order, limit, max(0, qry.OffsetStart))

	rows, err = dk.query(ctx, query)
	if err != nil {
		err = &nt.NetworkError{Cause: err}
	}
	return
}

// All returns every row in load order
func (dk *Duck) All(ctx context.Context) (rows []nt.Row, err error) {
	return dk.query(ctx, fmt.Sprintf("SELECT * FROM %s ORDER BY rowid", table))
}

// unexported

func (dk *Duck) query(ctx context.Context, query string) (rows []nt.Row, err error) {

	result, err := dk.db.QueryContext(ctx, query)
	if err != nil {
		err = errors.Wrapf(err, "failed to query rows")
		return
	}
	defer result.Close()

	cols, err := result.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get cols from query rows")
		return
	}

	rows = []nt.Row{}
	for result.Next() {
		var vals []any
		vals, err = scanRow(result, len(cols))
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		record := make(map[string]any, len(cols))
		for i, col := range cols {
			record[col] = vals[i]
		}
		rows = append(rows, nt.NewRow(record, dk.idField))
	}

	err = result.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

func scanRow(rows *sql.Rows, columnCount int) ([]any, error) {
	vals := make([]any, columnCount)
	ptrs := make([]any, columnCount)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	err := rows.Scan(ptrs...)
	return vals, err
}

func getFields(ctx context.Context, db *sql.DB) (fields []string, err error) {

	rows, err := db.QueryContext(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = ?
		ORDER BY ordinal_position
	`, table)
	if err != nil {
		err = errors.Wrapf(err, "failed to query schema")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var field string
		if err = rows.Scan(&field); err != nil {
			err = errors.Wrapf(err, "failed to scan field")
			return
		}
		fields = append(fields, field)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating fields")
	return
}

// quote makes an identifier safe for interpolation
func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
