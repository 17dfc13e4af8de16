// Package util holds small sequence helpers shared by the stats calculators.
package util

import "fmt"

// steps is a bitset of the moves that reach a cell of an edit matrix with
// its minimal cost. Rows follow the barcode, columns follow the read.
type steps uint8

const (
	// diag consumes one barcode base and one read base.
	diag steps = 1 << iota
	// right consumes a read base only: an insertion in the read.
	right
	// down consumes a barcode base only: a deletion in the read.
	down
)

func (s steps) has(o steps) bool { return s&o != 0 }

// EditBuffer computes barcode distances, reusing one edit matrix across
// calls. An EditBuffer must not be used concurrently.
type EditBuffer struct {
	// cost is column-major with nRow rows: cost[j*nRow+i] is the distance
	// between the first i barcode bases and the first j read bases.
	cost []int
	nRow int
}

// PrefixDistance returns the edit distance between barcode and the read
// prefix of the same length. A sequencer reads a fixed number of bases, so
// when the read lost a barcode base the following base is read in its
// place. While the cheapest alignment of the whole barcode ends on such a
// deletion, the next read base is pulled into the prefix and the alignment
// continues; the result is the smaller of the plain and the extended
// distance. If read has no bases beyond the barcode, the result is the
// standard Levenshtein distance.
//
// PrefixDistance panics if read is shorter than barcode.
func (b *EditBuffer) PrefixDistance(barcode, read string) int {
	n := len(barcode)
	if len(read) < n {
		panic(fmt.Sprintf("read %q is shorter than barcode %q", read, barcode))
	}
	b.reset(n+1, len(read)+1)
	var last steps
	for j := 0; j <= n; j++ {
		last = b.fillCol(j, barcode, read)
	}
	j := n
	for last.has(down) && j < len(read) {
		j++
		last = b.fillCol(j, barcode, read)
	}
	if d := b.at(n, n); d <= b.at(n, j) {
		return d
	}
	return b.at(n, j)
}

func (b *EditBuffer) reset(nRow, nCol int) {
	if size := nRow * nCol; cap(b.cost) < size {
		b.cost = make([]int, size)
	} else {
		b.cost = b.cost[:size]
	}
	b.nRow = nRow
}

func (b *EditBuffer) at(i, j int) int { return b.cost[j*b.nRow+i] }

func (b *EditBuffer) set(i, j, v int) { b.cost[j*b.nRow+i] = v }

// fillCol fills column j, which must follow a filled column j-1, and
// returns the moves that reach its last cell.
func (b *EditBuffer) fillCol(j int, barcode, read string) steps {
	var s steps
	for i := 0; i < b.nRow; i++ {
		s = b.fill(i, j, barcode, read)
	}
	return s
}

func (b *EditBuffer) fill(i, j int, barcode, read string) steps {
	switch {
	case i == 0:
		b.set(i, j, j)
		return 0
	case j == 0:
		b.set(i, j, i)
		return 0
	case barcode[i-1] == read[j-1]:
		b.set(i, j, b.at(i-1, j-1))
		return diag
	}
	d := b.at(i-1, j-1) + 1
	r := b.at(i, j-1) + 1
	u := b.at(i-1, j) + 1
	min := d
	if r < min {
		min = r
	}
	if u < min {
		min = u
	}
	b.set(i, j, min)
	var s steps
	if d == min {
		s |= diag
	}
	if r == min {
		s |= right
	}
	if u == min {
		s |= down
	}
	return s
}
