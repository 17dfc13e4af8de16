// Package fastq reads and writes FASTQ files and pairs of R1/R2 FASTQ files.
//
// A record spans four lines: an ID line, a sequence line, a separator line
// and a quality line. The separator is ignored when reading and written back
// as "+". Quality lines use a single-digit scheme, see DecodeQual.
package fastq

import (
	"fmt"
	"strings"
	"unicode"
)

// A Read is a FASTQ read, comprising an ID, a sequence and per-base quality
// values. Reads are values; the scanners never reuse a Read's Qual slice.
type Read struct {
	ID, Seq string
	Qual    []int
}

// NewRead builds a read from the textual ID, sequence and quality lines.
func NewRead(id, seq, qual string) (Read, error) {
	q, err := DecodeQual(qual)
	if err != nil {
		return Read{}, err
	}
	return Read{ID: id, Seq: seq, Qual: q}, nil
}

// Equal reports whether r and o hold the same ID, sequence and quality values.
func (r Read) Equal(o Read) bool {
	if r.ID != o.ID || r.Seq != o.Seq || len(r.Qual) != len(o.Qual) {
		return false
	}
	for i := range r.Qual {
		if r.Qual[i] != o.Qual[i] {
			return false
		}
	}
	return true
}

// String returns the read in its four-line FASTQ form, including the
// trailing newline. Quality values outside the encodable range are written
// as '?'.
func (r Read) String() string {
	var b strings.Builder
	b.WriteString(r.ID)
	b.WriteByte('\n')
	b.WriteString(r.Seq)
	b.WriteString("\n+\n")
	for _, q := range r.Qual {
		if q < minQual || q > maxQual {
			b.WriteByte('?')
			continue
		}
		b.WriteByte(byte('0' + q))
	}
	b.WriteByte('\n')
	return b.String()
}

// BaseID returns id truncated at its first whitespace. Both mates of a
// fragment share the base ID; the remainder usually carries the mate
// number, e.g. "TESTA:1 R1" and "TESTA:1 R2".
func BaseID(id string) string {
	if i := strings.IndexFunc(id, unicode.IsSpace); i >= 0 {
		return id[:i]
	}
	return id
}

// A Pair holds the R1 and R2 reads of one fragment.
type Pair struct {
	R1, R2 Read
}

// NewPair pairs r1 and r2. It returns a *MismatchError if their base IDs
// differ.
func NewPair(r1, r2 Read) (Pair, error) {
	if BaseID(r1.ID) != BaseID(r2.ID) {
		return Pair{}, &MismatchError{ID1: r1.ID, ID2: r2.ID}
	}
	return Pair{R1: r1, R2: r2}, nil
}

// Name returns the base ID shared by both reads.
func (p Pair) Name() string { return BaseID(p.R1.ID) }

// MismatchError is returned when two reads that should be mates have
// different base IDs.
type MismatchError struct {
	// Record is the 1-based position of the pair in the input, or 0 when the
	// pair was built outside a PairScanner.
	Record   int
	ID1, ID2 string
}

func (e *MismatchError) Error() string {
	if e.Record == 0 {
		return fmt.Sprintf("mismatched FASTQ pair: %q (R1) vs %q (R2)", e.ID1, e.ID2)
	}
	return fmt.Sprintf("mismatched FASTQ pair at record %d: %q (R1) vs %q (R2)", e.Record, e.ID1, e.ID2)
}
