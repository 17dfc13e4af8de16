// Package analysis runs the paired FASTQ stats pipeline: it builds the
// calculators and outputs named by an Opts, reads the R1/R2 files, and
// writes the resulting table to every output.
package analysis

import (
	"context"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/fqstats/encoding/fastq"
	"github.com/grailbio/fqstats/output"
	"github.com/grailbio/fqstats/stats"
)

// Calculators returns the calculators enabled in opts, in a fixed order:
// pattern matcher, quality averager, barcode distance. It returns an
// errors.Invalid error if none is enabled or one is misconfigured.
func Calculators(opts Opts) ([]stats.Calculator, error) {
	var calcs []stats.Calculator
	if len(opts.Patterns) > 0 {
		m, err := stats.NewPatternMatcher(opts.Patterns)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, m)
	}
	if opts.Quality {
		calcs = append(calcs, stats.NewQualityAverager())
	}
	if len(opts.Barcodes) > 0 {
		d, err := stats.NewBarcodeDistance(opts.Barcodes)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, d)
	}
	if len(calcs) == 0 {
		return nil, errors.E(errors.Invalid, "no statistics specified")
	}
	return calcs, nil
}

// Writers returns the outputs enabled in opts, in the order CSV, TSV,
// histogram. It returns an errors.Invalid error if none is enabled.
func Writers(opts Opts) ([]output.Writer, error) {
	var writers []output.Writer
	if opts.CSVPath != "" {
		writers = append(writers, output.NewCSVWriter(opts.CSVPath))
	}
	if opts.TSVPath != "" {
		writers = append(writers, output.NewTSVWriter(opts.TSVPath))
	}
	if opts.HistogramPath != "" {
		w, err := output.NewHistogramWriter(opts.HistogramPath, opts.HistogramBins)
		if err != nil {
			return nil, err
		}
		writers = append(writers, w)
	}
	if len(writers) == 0 {
		return nil, errors.E(errors.Invalid, "no outputs specified")
	}
	return writers, nil
}

// Run computes the stats table for opts.R1Path and opts.R2Path and writes it
// to every output in opts. Configuration is checked before any file is
// opened. If reading the inputs fails, no output is written.
func Run(ctx context.Context, opts Opts) (*stats.Table, error) {
	if opts.R1Path == "" || opts.R2Path == "" {
		return nil, errors.E(errors.Invalid, "both R1 and R2 inputs are required")
	}
	calcs, err := Calculators(opts)
	if err != nil {
		return nil, err
	}
	writers, err := Writers(opts)
	if err != nil {
		return nil, err
	}
	agg, err := stats.NewAggregator(calcs...)
	if err != nil {
		return nil, err
	}
	log.Debug.Printf("stats: %d calculators, %d columns", len(calcs), len(agg.Columns()))

	table, err := aggregate(ctx, agg, opts.R1Path, opts.R2Path)
	if err != nil {
		return nil, err
	}
	log.Printf("stats: %d read pairs in %s, %s", len(table.Rows), opts.R1Path, opts.R2Path)
	for _, w := range writers {
		if err := w.Write(ctx, table); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func aggregate(ctx context.Context, agg *stats.Aggregator, r1Path, r2Path string) (*stats.Table, error) {
	in, err := openInputs(ctx, r1Path, r2Path)
	if err != nil {
		return nil, err
	}
	table, err := agg.Aggregate(fastq.NewPairScanner(in.r1, in.r2))
	if err := in.close(ctx, err); err != nil {
		return nil, err
	}
	return table, nil
}
