package stats

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/fqstats/encoding/fastq"
	"github.com/grailbio/fqstats/util"
)

// BarcodeDistance reports how far the start of a read is from each of a set
// of expected barcodes. The distance is util.EditBuffer.PrefixDistance, so
// a deletion inside the barcode costs one edit instead of shifting every
// later base.
type BarcodeDistance struct {
	barcodes []string
	metrics  []string
}

// NewBarcodeDistance returns a calculator for barcodes. Duplicates are
// dropped, keeping the first occurrence. It returns an errors.Invalid error
// if barcodes is empty, or if a barcode is empty or holds a base other than
// A, C, G, T or N.
func NewBarcodeDistance(barcodes []string) (*BarcodeDistance, error) {
	if len(barcodes) == 0 {
		return nil, errors.E(errors.Invalid, "stats: empty barcode list")
	}
	d := &BarcodeDistance{}
	seen := make(map[string]bool, len(barcodes))
	for _, b := range barcodes {
		if seen[b] {
			continue
		}
		seen[b] = true
		if err := validateBarcode(b); err != nil {
			return nil, err
		}
		d.barcodes = append(d.barcodes, b)
		d.metrics = append(d.metrics, "dist:"+b)
	}
	return d, nil
}

func validateBarcode(b string) error {
	if b == "" {
		return errors.E(errors.Invalid, "stats: empty barcode")
	}
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case 'A', 'C', 'G', 'T', 'N':
		default:
			return errors.E(errors.Invalid, fmt.Sprintf("stats: barcode %q: invalid base %q", b, b[i]))
		}
	}
	return nil
}

// Metrics implements Calculator. The metric for barcode b is "dist:b".
func (d *BarcodeDistance) Metrics() []string { return append([]string(nil), d.metrics...) }

// Calc implements Calculator. Reads shorter than a barcode get Absent for
// that barcode.
func (d *BarcodeDistance) Calc(r *fastq.Read) []Value {
	var (
		vals = make([]Value, len(d.barcodes))
		buf  util.EditBuffer
	)
	for i, b := range d.barcodes {
		if len(r.Seq) < len(b) {
			continue
		}
		vals[i] = Of(float64(buf.PrefixDistance(b, r.Seq)))
	}
	return vals
}
