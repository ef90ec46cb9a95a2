package seeders

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"strings"
)

// Record is one CSV row keyed by column name.
type Record map[string]string

// Rows returns a lazy sequence over the records of a CSV file in fsys.
// With columns given, the header line is skipped and the columns name the
// fields by position; otherwise the header line names them.
// Every range reopens the file. A failure is yielded as the final element.
func Rows(fsys fs.FS, name string, columns ...string) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		f, err := fsys.Open(name)
		if err != nil {
			yield(nil, err)
			return
		}
		defer f.Close()

		r := csv.NewReader(f)
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true

		header, err := r.Read()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			yield(nil, fmt.Errorf("%s: %w", name, err))
			return
		}
		cols := columns
		if len(cols) == 0 {
			cols = normalize(header)
		}

		for {
			fields, err := r.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, fmt.Errorf("%s: %w", name, err))
				return
			}

			rec := make(Record, len(cols))
			for i, col := range cols {
				if i < len(fields) {
					rec[col] = strings.TrimSpace(fields[i])
				}
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// normalize trims header names and drops a UTF-8 byte order mark.
func normalize(header []string) []string {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	return cols
}
