package output

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/fqstats/stats"
)

// HistogramWriter writes, for every table column, a histogram of its present
// values as TSV rows "column, bin_start, bin_end, count". Bins are of equal
// width between the column's minimum and maximum; the last bin is closed.
// Absent values are not counted, and a column without present values has no
// rows.
type HistogramWriter struct {
	path string
	bins int
}

// NewHistogramWriter returns a writer of histograms with the given number
// of bins to path. It returns an errors.Invalid error if bins < 1.
func NewHistogramWriter(path string, bins int) (*HistogramWriter, error) {
	if bins < 1 {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("output: histogram needs at least one bin, got %d", bins))
	}
	return &HistogramWriter{path: path, bins: bins}, nil
}

// Write implements Writer.
func (w *HistogramWriter) Write(ctx context.Context, t *stats.Table) error {
	return writeFile(ctx, w.path, func(out io.Writer) error {
		return WriteHistograms(out, t, w.bins)
	})
}

// Bin is one histogram bin.
type Bin struct {
	Start, End float64
	Count      int64
}

// Histogram bins the present values in vals. It returns nil when no value
// is present. When all values are equal there is a single bin.
func Histogram(vals []stats.Value, bins int) []Bin {
	var (
		min, max = math.Inf(1), math.Inf(-1)
		n        int64
	)
	for _, v := range vals {
		x, ok := v.Get()
		if !ok {
			continue
		}
		n++
		min = math.Min(min, x)
		max = math.Max(max, x)
	}
	if n == 0 {
		return nil
	}
	if min == max {
		return []Bin{{Start: min, End: max, Count: n}}
	}
	width := (max - min) / float64(bins)
	h := make([]Bin, bins)
	for i := range h {
		h[i].Start = min + float64(i)*width
		h[i].End = min + float64(i+1)*width
	}
	h[bins-1].End = max
	for _, v := range vals {
		x, ok := v.Get()
		if !ok {
			continue
		}
		i := int((x - min) / width)
		if i >= bins {
			i = bins - 1
		}
		h[i].Count++
	}
	return h
}

// WriteHistograms writes the histograms of every column of t to out.
func WriteHistograms(out io.Writer, t *stats.Table, bins int) (err error) {
	tw := tsv.NewWriter(out)
	tw.WriteString("column\tbin_start\tbin_end\tcount")
	if err = tw.EndLine(); err != nil {
		return
	}
	for i, c := range t.Columns {
		for _, b := range Histogram(t.Column(i), bins) {
			tw.WriteString(c.String())
			tw.WriteString(strconv.FormatFloat(b.Start, 'g', -1, 64))
			tw.WriteString(strconv.FormatFloat(b.End, 'g', -1, 64))
			tw.WriteInt64(b.Count)
			if err = tw.EndLine(); err != nil {
				return
			}
		}
	}
	return tw.Flush()
}
