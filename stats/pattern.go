package stats

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/fqstats/encoding/fastq"
)

// PatternMatcher reports, for each of its patterns, the offset of the
// pattern's leftmost match in a read's sequence. Patterns use RE2 syntax
// (see package regexp), so "b.d" matches "bcd" and a plain string matches
// itself. The metric name of a pattern is the pattern text.
type PatternMatcher struct {
	patterns []string
	res      []*regexp.Regexp
}

// NewPatternMatcher compiles patterns. Duplicates are dropped, keeping the
// first occurrence. It returns an errors.Invalid error if patterns is empty
// or if a pattern does not compile.
func NewPatternMatcher(patterns []string) (*PatternMatcher, error) {
	if len(patterns) == 0 {
		return nil, errors.E(errors.Invalid, "stats: empty pattern list")
	}
	m := &PatternMatcher{}
	seen := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		if seen[p] {
			continue
		}
		seen[p] = true
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, errors.E(errors.Invalid, err, fmt.Sprintf("stats: pattern %q", p))
		}
		m.patterns = append(m.patterns, p)
		m.res = append(m.res, re)
	}
	return m, nil
}

// Metrics implements Calculator. The result is a copy.
func (m *PatternMatcher) Metrics() []string { return append([]string(nil), m.patterns...) }

// Calc implements Calculator. Each value is the zero-based rune offset of the
// pattern's first match in r.Seq, or Absent if it does not match.
func (m *PatternMatcher) Calc(r *fastq.Read) []Value {
	vals := make([]Value, len(m.res))
	for i, re := range m.res {
		if loc := re.FindStringIndex(r.Seq); loc != nil {
			vals[i] = Of(float64(utf8.RuneCountInString(r.Seq[:loc[0]])))
		}
	}
	return vals
}
