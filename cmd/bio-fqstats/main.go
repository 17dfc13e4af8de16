package main

import (
	"context"
	"strings"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/fqstats/analysis"
	"github.com/pkg/errors"
	"v.io/x/lib/cmdline"
)

// splitList splits a comma-separated flag value, dropping empty elements.
func splitList(s string) []string {
	var list []string
	for _, e := range strings.Split(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			list = append(list, e)
		}
	}
	return list
}

func newCmdStats() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "stats",
		Short:    "Compute per-read statistics over paired FASTQ files",
		ArgsName: "r1.fastq r2.fastq",
		Long: `
Reads r1.fastq and r2.fastq in lockstep and computes the requested statistics
for both mates of every read pair. At least one STATISTIC flag and one OUTPUT
flag are required.`,
	}
	opts := analysis.DefaultOpts
	var (
		seqFlag     = cmd.Flags.String("seq", "", "STATISTIC: comma-separated regular expressions; reports the offset of each one's first match.")
		barcodeFlag = cmd.Flags.String("barcodes", "", "STATISTIC: comma-separated barcodes; reports the edit distance of each one to the start of the read.")
	)
	cmd.Flags.BoolVar(&opts.Quality, "quality", false, "STATISTIC: average per-base quality.")
	cmd.Flags.StringVar(&opts.CSVPath, "csv", "", "OUTPUT: CSV file path. A .gz suffix gzips the output.")
	cmd.Flags.StringVar(&opts.TSVPath, "tsv", "", "OUTPUT: TSV file path. A .bgz suffix bgzips the output.")
	cmd.Flags.StringVar(&opts.HistogramPath, "hist", "", "OUTPUT: per-column histogram TSV file path.")
	cmd.Flags.IntVar(&opts.HistogramBins, "hist-bins", analysis.DefaultOpts.HistogramBins, "Number of bins per histogram.")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return env.UsageErrorf("stats takes r1 and r2 paths, but got %v", argv)
		}
		opts.R1Path, opts.R2Path = argv[0], argv[1]
		opts.Patterns = splitList(*seqFlag)
		opts.Barcodes = splitList(*barcodeFlag)
		_, err := analysis.Run(vcontext.Background(), opts)
		return err
	})
	return cmd
}

func newCmdDownsample() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "downsample",
		Short:    "Copy a random subset of read pairs",
		ArgsName: "r1.fastq r2.fastq r1out.fastq r2out.fastq",
	}
	opts := analysis.DefaultDownsampleOpts
	cmd.Flags.Float64Var(&opts.Rate, "rate", analysis.DefaultDownsampleOpts.Rate, "Fraction of read pairs to keep, in [0, 1].")
	cmd.Flags.Int64Var(&opts.Count, "count", analysis.DefaultDownsampleOpts.Count, "Approximate number of read pairs to keep. Overrides -rate when non-negative.")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 4 {
			return env.UsageErrorf("downsample takes r1, r2, r1out and r2out paths, but got %v", argv)
		}
		opts.R1Path, opts.R2Path, opts.R1OutPath, opts.R2OutPath = argv[0], argv[1], argv[2], argv[3]
		return downsample(vcontext.Background(), opts)
	})
	return cmd
}

func downsample(ctx context.Context, opts analysis.DownsampleOpts) error {
	if err := analysis.Downsample(ctx, opts); err != nil {
		return errors.Wrapf(err, "downsample %s, %s", opts.R1Path, opts.R2Path)
	}
	log.Printf("downsample: wrote %s, %s", opts.R1OutPath, opts.R2OutPath)
	return nil
}

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-fqstats",
			Short:    "Statistics over paired FASTQ files",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdStats(),
				newCmdDownsample(),
			},
		})
}
