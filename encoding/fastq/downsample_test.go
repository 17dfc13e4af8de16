package fastq_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/grailbio/fqstats/encoding/fastq"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"
)

// names returns the base IDs of the FASTQ records in data.
func names(t *testing.T, data string) []string {
	sc := fastq.NewScanner(strings.NewReader(data))
	var (
		r   fastq.Read
		ids = []string{}
	)
	for sc.Scan(&r) {
		ids = append(ids, fastq.BaseID(r.ID))
	}
	assert.NoError(t, sc.Err())
	return ids
}

func TestDownsample(t *testing.T) {
	tests := []struct {
		rate    float64
		n1, n2  int
		wantAll bool
		wantNil bool
		err     string
	}{
		{rate: 1.0, n1: 2, n2: 2, wantAll: true},
		{rate: 0.0, n1: 2, n2: 2, wantNil: true},
		{rate: 0.5, n1: 200, n2: 200},
		{rate: 1.2, n1: 2, n2: 2, err: "rate must be between 0 and 1"},
		{rate: -0.1, n1: 2, n2: 2, err: "rate must be between 0 and 1"},
		{rate: 1.0, n1: 2, n2: 1, err: "more reads in R1 input than in R2 input"},
		{rate: 1.0, n1: 1, n2: 2, err: "more reads in R2 input than in R1 input"},
	}
	for idx, test := range tests {
		t.Run(fmt.Sprint(idx), func(t *testing.T) {
			r1In := fastqRecords("X", test.n1, "R1")
			r2In := fastqRecords("X", test.n2, "R2")
			var r1Out, r2Out bytes.Buffer
			err := fastq.Downsample(test.rate, strings.NewReader(r1In), strings.NewReader(r2In), &r1Out, &r2Out)
			if test.err != "" {
				assert.True(t, err != nil)
				expect.HasSubstr(t, err.Error(), test.err)
				return
			}
			assert.NoError(t, err)
			got1, got2 := names(t, r1Out.String()), names(t, r2Out.String())
			expect.EQ(t, got1, got2)
			switch {
			case test.wantAll:
				expect.EQ(t, r1Out.String(), r1In)
				expect.EQ(t, r2Out.String(), r2In)
			case test.wantNil:
				expect.EQ(t, len(got1), 0)
			default:
				expect.GE(t, len(got1), 1)
				expect.LE(t, len(got1), test.n1-1)
			}
		})
	}
}

func TestDownsampleDeterministic(t *testing.T) {
	r1In, r2In := fastqRecords("X", 100, "R1"), fastqRecords("X", 100, "R2")
	var a1, a2, b1, b2 bytes.Buffer
	assert.NoError(t, fastq.Downsample(0.3, strings.NewReader(r1In), strings.NewReader(r2In), &a1, &a2))
	assert.NoError(t, fastq.Downsample(0.3, strings.NewReader(r1In), strings.NewReader(r2In), &b1, &b2))
	expect.EQ(t, a1.String(), b1.String())
	expect.EQ(t, a2.String(), b2.String())
}

func TestDownsampleMismatchedID(t *testing.T) {
	var r1Out, r2Out bytes.Buffer
	err := fastq.Downsample(1,
		strings.NewReader(fastqRecords("X", 3, "R1")),
		strings.NewReader(fastqRecords("Y", 3, "R2")),
		&r1Out, &r2Out)
	_, ok := errors.Cause(err).(*fastq.MismatchError)
	expect.True(t, ok, "got %v", err)
	expect.EQ(t, r1Out.Len(), 0)
}

func TestCountPairs(t *testing.T) {
	n, err := fastq.CountPairs(strings.NewReader(fastqRecords("X", 7, "R1")), strings.NewReader(fastqRecords("X", 7, "R2")))
	assert.NoError(t, err)
	expect.EQ(t, n, int64(7))

	_, err = fastq.CountPairs(strings.NewReader(fastqRecords("X", 7, "R1")), strings.NewReader(fastqRecords("X", 6, "R2")))
	expect.EQ(t, errors.Cause(err), fastq.ErrDiscordant)
}

func TestRateForCount(t *testing.T) {
	expect.EQ(t, fastq.RateForCount(2, 2), 1.0)
	expect.EQ(t, fastq.RateForCount(4, 2), 1.0)
	expect.EQ(t, fastq.RateForCount(0, 5), 0.0)
	expect.EQ(t, fastq.RateForCount(1, 4), 0.25)
	expect.EQ(t, fastq.RateForCount(0, 0), 1.0)
}
