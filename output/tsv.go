package output

import (
	"context"
	"io"
	"runtime"
	"strings"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/fqstats/stats"
	"github.com/grailbio/hts/bgzf"
)

// TSVWriter writes a table as tab-separated values with a header line.
// Absent values are written as "NA". Paths ending in ".bgz" are
// BGZF-compressed.
type TSVWriter struct {
	path string
}

// NewTSVWriter returns a writer to path.
func NewTSVWriter(path string) *TSVWriter { return &TSVWriter{path: path} }

// Write implements Writer.
func (w *TSVWriter) Write(ctx context.Context, t *stats.Table) error {
	return writeFile(ctx, w.path, func(out io.Writer) (err error) {
		if !strings.HasSuffix(w.path, ".bgz") {
			return WriteTSV(out, t)
		}
		bw := bgzf.NewWriter(out, runtime.NumCPU())
		defer func() {
			if e := bw.Close(); e != nil && err == nil {
				err = e
			}
		}()
		return WriteTSV(bw, t)
	})
}

// WriteTSV writes t to out in the TSVWriter format.
func WriteTSV(out io.Writer, t *stats.Table) (err error) {
	tw := tsv.NewWriter(out)
	for _, h := range header(t) {
		tw.WriteString(h)
	}
	if err = tw.EndLine(); err != nil {
		return
	}
	for _, row := range t.Rows {
		tw.WriteString(row.Name)
		for _, v := range row.Values {
			tw.WriteString(v.String())
		}
		if err = tw.EndLine(); err != nil {
			return
		}
	}
	return tw.Flush()
}
