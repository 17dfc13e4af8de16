package output

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/grailbio/fqstats/stats"
	"github.com/klauspost/compress/gzip"
)

// CSVWriter writes a table as comma-separated values, one line per row with
// a header line. Absent values are empty cells. Paths ending in ".gz" are
// gzip-compressed.
type CSVWriter struct {
	path string
}

// NewCSVWriter returns a writer to path.
func NewCSVWriter(path string) *CSVWriter { return &CSVWriter{path: path} }

// Write implements Writer.
func (w *CSVWriter) Write(ctx context.Context, t *stats.Table) error {
	return writeFile(ctx, w.path, func(out io.Writer) error {
		if !strings.HasSuffix(w.path, ".gz") {
			return WriteCSV(out, t)
		}
		gz := gzip.NewWriter(out)
		if err := WriteCSV(gz, t); err != nil {
			gz.Close() // nolint: errcheck
			return err
		}
		return gz.Close()
	})
}

// WriteCSV writes t to out in the CSVWriter format.
func WriteCSV(out io.Writer, t *stats.Table) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(header(t)); err != nil {
		return err
	}
	record := make([]string, len(t.Columns)+1)
	for _, row := range t.Rows {
		record[0] = row.Name
		for i, v := range row.Values {
			record[i+1] = v.Format("")
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
