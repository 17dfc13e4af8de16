// Package stats computes per-read statistics over a stream of read pairs and
// collects them into a Table.
//
// A Calculator computes named metrics for a single read. The Aggregator
// applies a list of calculators to both reads of every pair and produces one
// row per pair:
//
//	agg, err := stats.NewAggregator(matcher, stats.NewQualityAverager())
//	...
//	table, err := agg.Aggregate(fastq.NewPairScanner(r1, r2))
package stats

import (
	"github.com/grailbio/base/errors"
	"github.com/grailbio/fqstats/encoding/fastq"
)

// PairSource is a stream of read pairs. *fastq.PairScanner implements it.
type PairSource interface {
	// Scan reads the next pair into p and reports whether it did.
	Scan(p *fastq.Pair) bool
	// Err returns the error that stopped Scan, or nil at a clean end.
	Err() error
}

// Aggregator applies an ordered list of calculators to read pairs.
type Aggregator struct {
	calcs   []Calculator
	columns []Column
}

// NewAggregator returns an aggregator for calcs. Columns are laid out in
// calculator order, each calculator contributing its mate 1 metrics then
// its mate 2 metrics. It returns an errors.Invalid error if calcs is empty.
func NewAggregator(calcs ...Calculator) (*Aggregator, error) {
	if len(calcs) == 0 {
		return nil, errors.E(errors.Invalid, "stats: empty calculator list")
	}
	a := &Aggregator{calcs: calcs}
	for _, c := range calcs {
		a.columns = append(a.columns, Columns(c)...)
	}
	return a, nil
}

// Columns returns a copy of the table columns produced by the aggregator.
func (a *Aggregator) Columns() []Column { return append([]Column(nil), a.columns...) }

// Aggregate drains src and returns one row per pair, in the order src
// yields them. If src fails, Aggregate returns its error and no table.
func (a *Aggregator) Aggregate(src PairSource) (*Table, error) {
	t := &Table{Columns: a.Columns()}
	var p fastq.Pair
	for src.Scan(&p) {
		t.Rows = append(t.Rows, a.row(&p))
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func (a *Aggregator) row(p *fastq.Pair) Row {
	vals := make([]Value, 0, len(a.columns))
	for _, c := range a.calcs {
		vals = CalcPair(vals, c, p)
	}
	return Row{Name: p.Name(), Values: vals}
}
