package artifact

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/vk/temples/internal/table"
)

// CSV stores a table.Table as comma-separated text with a header row.
type CSV struct {
	// Comma overrides the field delimiter. Zero means ','.
	Comma rune
}

// Decode reads a CSV file. An empty file yields an empty table.
func (c CSV) Decode(path string) (table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.Table{}, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	if c.Comma != 0 {
		r.Comma = c.Comma
	}
	records, err := r.ReadAll()
	if err != nil {
		return table.Table{}, err
	}
	if len(records) == 0 {
		return table.New(nil)
	}
	return table.New(records[0], records[1:]...)
}

// Encode writes the header followed by every row. A record made of one
// empty field is written as a quoted "" line, since a blank line would be
// skipped on read. A table without columns is written as an empty file.
func (c CSV) Encode(t table.Table, path string) (err error) {
	if len(t.Columns) == 0 && len(t.Rows) > 0 {
		return errors.New("csv table with rows needs at least one column")
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if len(t.Columns) == 0 {
		return nil
	}

	bw := bufio.NewWriter(f)
	w := csv.NewWriter(bw)
	if c.Comma != 0 {
		w.Comma = c.Comma
	}
	if err := writeRecord(w, bw, t.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range t.Rows {
		if err := writeRecord(w, bw, r); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	return bw.Flush()
}

func writeRecord(w *csv.Writer, bw *bufio.Writer, record []string) error {
	if len(record) != 1 || record[0] != "" {
		return w.Write(record)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	_, err := bw.WriteString("\"\"\n")
	return err
}
