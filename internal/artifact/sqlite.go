package artifact

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/vk/temples/internal/table"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultSQLiteTable is the table name used when SQLite.Table is empty.
const DefaultSQLiteTable = "data"

// SQLite stores a table.Table as a single table inside a SQLite database
// file. Every column is TEXT. The database file is recreated on each write.
type SQLite struct {
	Table string
}

func (s SQLite) tableName() string {
	if s.Table == "" {
		return DefaultSQLiteTable
	}
	return s.Table
}

// Decode reads every row of the configured table. A missing database file
// is an error; NULL cells read as empty strings.
func (s SQLite) Decode(path string) (table.Table, error) {
	// sql.Open would silently create a missing database.
	if _, err := os.Stat(path); err != nil {
		return table.Table{}, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return table.Table{}, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT * FROM " + quoteIdent(s.tableName()))
	if err != nil {
		return table.Table{}, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return table.Table{}, err
	}

	var out [][]string
	for rows.Next() {
		vals := make([]sql.NullString, len(columns))
		ptrs := make([]any, len(columns))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return table.Table{}, err
		}
		cells := make([]string, len(columns))
		for i, v := range vals {
			cells[i] = v.String
		}
		out = append(out, cells)
	}
	if err := rows.Err(); err != nil {
		return table.Table{}, err
	}
	return table.New(columns, out...)
}

// Encode replaces the database file with one holding t as a single table.
func (s SQLite) Encode(t table.Table, path string) (err error) {
	if len(t.Columns) == 0 {
		return errors.New("sqlite table needs at least one column")
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	name := quoteIdent(s.tableName())
	cols := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = quoteIdent(c) + " TEXT"
		marks[i] = "?"
	}
	if _, err := tx.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", name, strings.Join(cols, ", "))); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s VALUES (%s)", name, strings.Join(marks, ", ")))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range t.Rows {
		args := make([]any, len(r))
		for j, c := range r {
			args[j] = c
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}
	return tx.Commit()
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
