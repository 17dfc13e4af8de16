package fastq

import "github.com/pkg/errors"

// Quality values are single decimal digits: '0'..'9' map to 0..9. This is
// not Phred+33; it is the scheme the stats pipeline was built around.
const (
	minQual = 0
	maxQual = 9
)

// DecodeQual converts a quality line into per-base values. Any character
// other than a decimal digit is an ErrInvalid error.
func DecodeQual(s string) ([]int, error) {
	q := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, errors.Wrapf(ErrInvalid, "quality character %q at offset %d", c, i)
		}
		q[i] = int(c - '0')
	}
	return q, nil
}

// EncodeQual is the inverse of DecodeQual. Values outside 0..9 are an
// ErrInvalid error.
func EncodeQual(q []int) (string, error) {
	b := make([]byte, len(q))
	for i, v := range q {
		if v < minQual || v > maxQual {
			return "", errors.Wrapf(ErrInvalid, "quality value %d at offset %d", v, i)
		}
		b[i] = byte('0' + v)
	}
	return string(b), nil
}
