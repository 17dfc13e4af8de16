package stats

import (
	"fmt"

	"github.com/grailbio/fqstats/encoding/fastq"
)

// Calculator computes a fixed set of named metrics for one read.
// Implementations hold no state besides their configuration and may be
// shared across goroutines.
type Calculator interface {
	// Metrics returns the metric names, in the order Calc reports them.
	// The names must not change over the calculator's lifetime, and callers
	// may modify the returned slice.
	Metrics() []string
	// Calc computes the metrics for r. The result has one element per
	// metric.
	Calc(r *fastq.Read) []Value
}

// Mates of a pair, used to key table columns.
const (
	Mate1 = 1
	Mate2 = 2
)

// Column identifies one table column: a metric computed for one mate.
type Column struct {
	Mate   int
	Metric string
}

// String returns the column label, e.g. "R1:avg_qual".
func (c Column) String() string { return fmt.Sprintf("R%d:%s", c.Mate, c.Metric) }

// Columns returns the columns c contributes to a table: its metrics for
// mate 1, then its metrics for mate 2.
func Columns(c Calculator) []Column {
	metrics := c.Metrics()
	cols := make([]Column, 0, 2*len(metrics))
	for _, mate := range []int{Mate1, Mate2} {
		for _, m := range metrics {
			cols = append(cols, Column{Mate: mate, Metric: m})
		}
	}
	return cols
}

// CalcPair applies c to both reads of p and appends the results to dst, in
// the order given by Columns(c).
func CalcPair(dst []Value, c Calculator, p *fastq.Pair) []Value {
	n := len(c.Metrics())
	for _, r := range []*fastq.Read{&p.R1, &p.R2} {
		vals := c.Calc(r)
		if len(vals) != n {
			panic(fmt.Sprintf("stats: %T returned %d values for %d metrics", c, len(vals), n))
		}
		dst = append(dst, vals...)
	}
	return dst
}
