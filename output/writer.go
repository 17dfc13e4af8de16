// Package output writes stats tables to files.
package output

import (
	"context"
	"io"

	"github.com/grailbio/base/file"
	"github.com/grailbio/fqstats/stats"
)

// Writer consumes a finished stats table.
type Writer interface {
	Write(ctx context.Context, t *stats.Table) error
}

// header returns the column labels of t, preceded by the row name column.
func header(t *stats.Table) []string {
	h := make([]string, 0, len(t.Columns)+1)
	h = append(h, "name")
	for _, c := range t.Columns {
		h = append(h, c.String())
	}
	return h
}

// writeFile creates path and calls fn with its writer. The file is closed
// after fn returns; the first error wins.
func writeFile(ctx context.Context, path string, fn func(w io.Writer) error) (err error) {
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)
	return fn(out.Writer(ctx))
}
