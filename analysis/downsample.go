package analysis

import (
	"context"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/fqstats/encoding/fastq"
)

// DownsampleOpts configures Downsample.
type DownsampleOpts struct {
	// R1Path and R2Path are the input files, decompressed like Opts.R1Path.
	R1Path, R2Path string
	// R1OutPath and R2OutPath receive the kept pairs, uncompressed.
	R1OutPath, R2OutPath string
	// Rate is the fraction of pairs to keep, in [0, 1].
	Rate float64
	// Count, when non-negative, overrides Rate: about Count pairs are kept.
	// The inputs are then read twice.
	Count int64
}

// DefaultDownsampleOpts keeps every pair.
var DefaultDownsampleOpts = DownsampleOpts{
	Rate:  1,
	Count: -1,
}

// Downsample copies a deterministic subset of the read pairs in opts.R1Path
// and opts.R2Path to opts.R1OutPath and opts.R2OutPath. Options are checked
// before any file is opened or created.
func Downsample(ctx context.Context, opts DownsampleOpts) (err error) {
	if opts.R1Path == "" || opts.R2Path == "" || opts.R1OutPath == "" || opts.R2OutPath == "" {
		return errors.E(errors.Invalid, "downsample needs R1 and R2 input and output paths")
	}
	rate := opts.Rate
	if opts.Count < 0 {
		if err := fastq.CheckRate(rate); err != nil {
			return errors.E(errors.Invalid, err)
		}
	} else {
		if rate, err = rateForCount(ctx, opts); err != nil {
			return err
		}
		log.Debug.Printf("downsample: keeping %d pairs, rate %v", opts.Count, rate)
	}

	in, err := openInputs(ctx, opts.R1Path, opts.R2Path)
	if err != nil {
		return err
	}
	defer func() { err = in.close(ctx, err) }()
	var out1, out2 file.File
	if out1, err = file.Create(ctx, opts.R1OutPath); err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out1, &err)
	if out2, err = file.Create(ctx, opts.R2OutPath); err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out2, &err)
	return fastq.Downsample(rate, in.r1, in.r2, out1.Writer(ctx), out2.Writer(ctx))
}

func rateForCount(ctx context.Context, opts DownsampleOpts) (float64, error) {
	in, err := openInputs(ctx, opts.R1Path, opts.R2Path)
	if err != nil {
		return 0, err
	}
	total, err := fastq.CountPairs(in.r1, in.r2)
	if err := in.close(ctx, err); err != nil {
		return 0, err
	}
	return fastq.RateForCount(opts.Count, total), nil
}
