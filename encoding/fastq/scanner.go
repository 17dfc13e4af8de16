package fastq

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrShort is returned when a truncated FASTQ file is encountered.
	ErrShort = errors.New("short FASTQ file")
	// ErrInvalid is returned when an invalid FASTQ file is encountered.
	ErrInvalid = errors.New("invalid FASTQ file")
	// ErrDiscordant is returned when two underlying FASTQ files are discordant.
	ErrDiscordant = errors.New("discordant FASTQ pairs")
)

const (
	linesPerRead = 4

	// MaxLineLength is the longest FASTQ line the scanners accept.
	MaxLineLength = 16 << 20
)

var errEOF = errors.New("eof")

// Scanner provides a convenient interface for reading FASTQ read
// data. The Scan method returns the next read, returning a boolean
// indicating whether the read succeeded. Scanners are not
// threadsafe.
//
// Scanner only checks the record structure and the quality encoding: the ID
// and separator lines may hold anything, and sequence and quality lengths
// are not compared.
type Scanner struct {
	b   *bufio.Scanner
	err error
	n   int
}

// NewScanner constructs a new Scanner that reads raw FASTQ data from the
// provided reader.
func NewScanner(r io.Reader) *Scanner {
	b := bufio.NewScanner(r)
	b.Buffer(make([]byte, 0, 64<<10), MaxLineLength)
	return &Scanner{b: b}
}

// Scan the next read into the provided read. Scan returns a boolean
// indicating whether the scan succeeded. Once Scan returns false, it
// never returns true again. Upon completion, the user should check
// the Err method to determine whether scanning stopped because of an
// error or because the end of the stream was reached.
func (f *Scanner) Scan(read *Read) bool {
	if f.err != nil {
		return false
	}
	var lines [linesPerRead]string
	for i := range lines {
		if !f.b.Scan() {
			switch f.err = f.b.Err(); {
			case f.err != nil:
			case i == 0:
				f.err = errEOF
			default:
				f.err = errors.Wrapf(ErrShort, "record %d: want %d lines, got %d", f.n+1, linesPerRead, i)
			}
			return false
		}
		lines[i] = strings.TrimSuffix(f.b.Text(), "\r")
	}
	qual, err := DecodeQual(lines[3])
	if err != nil {
		f.err = errors.Wrapf(err, "record %d (%s)", f.n+1, lines[0])
		return false
	}
	f.n++
	*read = Read{ID: lines[0], Seq: lines[1], Qual: qual}
	return true
}

// Count returns the number of reads scanned so far.
func (f *Scanner) Count() int { return f.n }

// Err returns the scanning error, if any.
func (f *Scanner) Err() error {
	if f.err == errEOF {
		return nil
	}
	return f.err
}

// PairScanner composes a pair of scanners to scan a pair of FASTQ
// streams. The n-th read of R1 is paired with the n-th read of R2.
type PairScanner struct {
	r1, r2 *Scanner
	n      int
	err    error
}

// NewPairScanner creates a new FASTQ pair scanner from the provided
// R1 and R2 readers.
func NewPairScanner(r1, r2 io.Reader) *PairScanner {
	return &PairScanner{
		r1: NewScanner(r1),
		r2: NewScanner(r2),
	}
}

// Scan scans the next read pair into pair. Scan returns a boolean
// indicating whether the scan succeeded. Once Scan returns false, it
// never returns true again. Upon completion, the user should check
// the Err method to determine whether scanning stopped because of an
// error or because the end of the stream was reached.
//
// Scanning stops with ErrDiscordant as soon as one input ends before the
// other, and with a *MismatchError when the two reads at the same position
// have different base IDs.
func (p *PairScanner) Scan(pair *Pair) bool {
	if p.err != nil {
		return false
	}
	var r1, r2 Read
	ok1 := p.r1.Scan(&r1)
	ok2 := p.r2.Scan(&r2)
	switch {
	case p.r1.Err() != nil:
		p.err = errors.Wrap(p.r1.Err(), "error reading R1 input")
	case p.r2.Err() != nil:
		p.err = errors.Wrap(p.r2.Err(), "error reading R2 input")
	case !ok1 && !ok2:
		// Both readers ended after the same number of reads, as expected.
		p.err = errEOF
	case !ok1:
		p.err = errors.Wrapf(ErrDiscordant, "more reads in R2 input than in R1 input (R1 ended after %d reads)", p.n)
	case !ok2:
		p.err = errors.Wrapf(ErrDiscordant, "more reads in R1 input than in R2 input (R2 ended after %d reads)", p.n)
	}
	if p.err != nil {
		return false
	}
	pr, err := NewPair(r1, r2)
	if err != nil {
		err.(*MismatchError).Record = p.n + 1
		p.err = err
		return false
	}
	p.n++
	*pair = pr
	return true
}

// Count returns the number of pairs scanned so far.
func (p *PairScanner) Count() int { return p.n }

// Err returns the scanning error, if any. It should be checked
// after Scan returns false.
func (p *PairScanner) Err() error {
	if p.err == errEOF {
		return nil
	}
	return p.err
}
