package analysis

// Opts configures one stats run.
type Opts struct {
	// R1Path and R2Path are the mate 1 and mate 2 FASTQ files. Files ending
	// in a compression suffix such as ".gz" are decompressed.
	R1Path, R2Path string

	// Patterns enables the pattern matcher when non-empty.
	Patterns []string
	// Quality enables the average quality metric.
	Quality bool
	// Barcodes enables the barcode distance metric when non-empty.
	Barcodes []string

	// CSVPath, TSVPath and HistogramPath each enable an output when set.
	CSVPath       string
	TSVPath       string
	HistogramPath string
	// HistogramBins is the number of bins per column in the histogram output.
	HistogramBins int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	HistogramBins: 20,
}
