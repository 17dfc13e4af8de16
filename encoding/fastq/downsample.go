package fastq

import (
	"io"

	farm "github.com/dgryski/go-farm"
	"github.com/pkg/errors"
)

// Downsample writes read pairs from r1In and r2In to r1Out and r2Out. Read
// pairs are selected for inclusion in the output at the given sampling rate.
// Selection is a function of the pair's base ID, so repeated runs over the
// same input produce the same output.
func Downsample(rate float64, r1In, r2In io.Reader, r1Out, r2Out io.Writer) error {
	if err := CheckRate(rate); err != nil {
		return err
	}
	var (
		sc = NewPairScanner(r1In, r2In)
		w1 = NewWriter(r1Out)
		w2 = NewWriter(r2Out)
		p  Pair
	)
	for sc.Scan(&p) {
		if !keep(p.Name(), rate) {
			continue
		}
		if err := WritePair(w1, w2, &p); err != nil {
			return errors.Wrap(err, "downsample write")
		}
	}
	return sc.Err()
}

// CheckRate returns an error if rate is not a valid Downsample rate.
func CheckRate(rate float64) error {
	if rate < 0.0 || rate > 1.0 {
		return errors.Errorf("rate must be between 0 and 1 (inclusive), got %v", rate)
	}
	return nil
}

// CountPairs returns the number of read pairs in r1In and r2In. It fails like
// PairScanner on discordant or mismatched inputs.
func CountPairs(r1In, r2In io.Reader) (int64, error) {
	sc := NewPairScanner(r1In, r2In)
	var p Pair
	for sc.Scan(&p) {
	}
	return int64(sc.Count()), sc.Err()
}

// RateForCount returns the Downsample rate that keeps about count of total
// pairs.
func RateForCount(count, total int64) float64 {
	if total <= count {
		return 1
	}
	return float64(count) / float64(total)
}

// keep reports whether the pair named name is part of a sample taken at the
// given rate.
func keep(name string, rate float64) bool {
	if rate >= 1 {
		return true
	}
	return float64(farm.Fingerprint64([]byte(name)))/(1<<64) < rate
}
