package fastq_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/grailbio/fqstats/encoding/fastq"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"
)

const (
	sequence1R1 = "TESTA:1 R1\nAGCT\n+\n1234\n"
	sequence2R1 = "TESTA:2 R1\nTCGA\n+\n5678\n"
	sequence1R2 = "TESTA:1 R2\nCCGT\n+\n1483\n"
	sequence2R2 = "TESTA:2 R2\nGTCT\n+\n0968\n"
)

func mustRead(t *testing.T, s string) fastq.Read {
	sc := fastq.NewScanner(strings.NewReader(s))
	var r fastq.Read
	if !sc.Scan(&r) {
		t.Fatalf("scan %q: %v", s, sc.Err())
	}
	return r
}

func scanPairs(r1, r2 string) ([]fastq.Pair, error) {
	sc := fastq.NewPairScanner(strings.NewReader(r1), strings.NewReader(r2))
	var (
		pairs []fastq.Pair
		p     fastq.Pair
	)
	for sc.Scan(&p) {
		pairs = append(pairs, p)
	}
	return pairs, sc.Err()
}

// fastqRecords generates n records named prefix:1 .. prefix:n with the given
// mate suffix.
func fastqRecords(prefix string, n int, mate string) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%s:%d %s\nACGT\n+\n%d%d%d%d\n", prefix, i, mate, i%10, i%10, i%10, i%10)
	}
	return b.String()
}

func TestBaseID(t *testing.T) {
	expect.EQ(t, fastq.BaseID("TESTA:1 R1"), "TESTA:1")
	expect.EQ(t, fastq.BaseID("TESTA:1\tR2"), "TESTA:1")
	expect.EQ(t, fastq.BaseID("TESTA:1"), "TESTA:1")
	expect.EQ(t, fastq.BaseID(""), "")
}

func TestCorrectPair(t *testing.T) {
	r1 := mustRead(t, sequence1R1)
	r2 := mustRead(t, sequence1R2)
	p, err := fastq.NewPair(r1, r2)
	assert.NoError(t, err)
	expect.True(t, p.R1.Equal(r1))
	expect.True(t, p.R2.Equal(r2))
	expect.EQ(t, p.Name(), "TESTA:1")
}

func TestBadPair(t *testing.T) {
	_, err := fastq.NewPair(mustRead(t, sequence1R1), mustRead(t, sequence2R1))
	merr, ok := err.(*fastq.MismatchError)
	assert.True(t, ok)
	expect.EQ(t, merr.ID1, "TESTA:1 R1")
	expect.EQ(t, merr.ID2, "TESTA:2 R1")
	expect.EQ(t, merr.Record, 0)
}

func TestReadPair(t *testing.T) {
	pairs, err := scanPairs(sequence1R1+sequence2R1, sequence1R2+sequence2R2)
	assert.NoError(t, err)
	assert.EQ(t, len(pairs), 2)
	expect.EQ(t, pairs[0].R1.String(), sequence1R1)
	expect.EQ(t, pairs[0].R2.String(), sequence1R2)
	expect.EQ(t, pairs[1].R1.String(), sequence2R1)
	expect.EQ(t, pairs[1].R2.String(), sequence2R2)
}

func TestPairCounts(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100} {
		pairs, err := scanPairs(fastqRecords("X", n, "1:N"), fastqRecords("X", n, "2:N"))
		assert.NoError(t, err)
		assert.EQ(t, len(pairs), n)
		for i, p := range pairs {
			expect.EQ(t, p.Name(), fmt.Sprintf("X:%d", i+1))
		}
	}
}

func TestMismatchedLength(t *testing.T) {
	for _, test := range []struct {
		n1, n2 int
		msg    string
	}{
		{3, 1, "more reads in R1 input than in R2 input"},
		{1, 3, "more reads in R2 input than in R1 input"},
		{0, 2, "more reads in R2 input than in R1 input"},
		{5, 0, "more reads in R1 input than in R2 input"},
	} {
		sc := fastq.NewPairScanner(
			strings.NewReader(fastqRecords("X", test.n1, "R1")),
			strings.NewReader(fastqRecords("X", test.n2, "R2")))
		var (
			p fastq.Pair
			n int
		)
		for sc.Scan(&p) {
			n++
		}
		min := test.n1
		if test.n2 < min {
			min = test.n2
		}
		expect.EQ(t, n, min)
		expect.EQ(t, sc.Count(), min)
		err := sc.Err()
		expect.EQ(t, errors.Cause(err), fastq.ErrDiscordant)
		expect.HasSubstr(t, err.Error(), test.msg)
	}
}

func TestMismatchedID(t *testing.T) {
	const k = 4
	r2 := strings.Replace(fastqRecords("X", 6, "R2"), fmt.Sprintf("X:%d R2", k), "Y:1 R2", 1)
	sc := fastq.NewPairScanner(strings.NewReader(fastqRecords("X", 6, "R1")), strings.NewReader(r2))
	var (
		p fastq.Pair
		n int
	)
	for sc.Scan(&p) {
		n++
	}
	expect.EQ(t, n, k-1)
	merr, ok := sc.Err().(*fastq.MismatchError)
	assert.True(t, ok, "got %v", sc.Err())
	expect.EQ(t, merr.Record, k)
	expect.EQ(t, merr.ID1, "X:4 R1")
	expect.EQ(t, merr.ID2, "Y:1 R2")
	expect.HasSubstr(t, merr.Error(), "record 4")
	expect.False(t, sc.Scan(&p))
}

func TestPairShortRecord(t *testing.T) {
	_, err := scanPairs(sequence1R1+"TESTA:2 R1\nTCGA\n", sequence1R2+sequence2R2)
	expect.EQ(t, errors.Cause(err), fastq.ErrShort)
	expect.HasSubstr(t, err.Error(), "error reading R1 input")

	_, err = scanPairs(sequence1R1+sequence2R1, sequence1R2+"TESTA:2 R2\n")
	expect.EQ(t, errors.Cause(err), fastq.ErrShort)
	expect.HasSubstr(t, err.Error(), "error reading R2 input")
}
