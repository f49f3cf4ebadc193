// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
)

// RowReader streams the records of a CSV file.
type RowReader interface {
	ReadRows(ctx context.Context, path string, fn func(Row) error) error
}

// DuckDBReader reads CSV files through an in-memory DuckDB database.
type DuckDBReader struct {
	conn *sql.DB
}

// OpenDuckDB opens an in-memory DuckDB connection. Extension autoloading is
// disabled; read_csv_auto is built in.
func OpenDuckDB() (*DuckDBReader, error) {
	conn, err := sql.Open("duckdb", ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	// A single connection keeps :memory: state on one database.
	conn.SetMaxOpenConns(1)
	return &DuckDBReader{conn: conn}, nil
}

// Close releases the DuckDB connection.
func (r *DuckDBReader) Close() error {
	return r.conn.Close()
}

// ReadRows calls fn for every record in path. All columns are read as text
// so codes such as "01" keep their leading zeros.
func (r *DuckDBReader) ReadRows(ctx context.Context, path string, fn func(Row) error) error {
	q := fmt.Sprintf("SELECT * FROM read_csv_auto(%s, header = true, all_varchar = true)", quoteLiteral(path))

	rows, err := r.conn.QueryContext(ctx, q)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("failed to read columns of %s: %w", path, err)
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = strings.ToUpper(strings.TrimSpace(c))
	}

	values := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("failed to scan %s: %w", path, err)
		}
		row := make(Row, len(cols))
		for i, v := range values {
			if v.Valid {
				row[names[i]] = v.String
			}
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return rows.Err()
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
