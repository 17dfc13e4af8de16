package stats

// Table is the result of an aggregation: one row per read pair, in input
// order, and one column per (mate, metric).
type Table struct {
	// Columns is fixed before the first row is added. Every row has
	// len(Columns) values.
	Columns []Column
	Rows    []Row
}

// Row holds the metrics of one read pair.
type Row struct {
	// Name is the base ID shared by both reads of the pair.
	Name   string
	Values []Value
}

// Index returns the index of the first column for the given mate and
// metric, or -1.
func (t *Table) Index(mate int, metric string) int {
	for i, c := range t.Columns {
		if c.Mate == mate && c.Metric == metric {
			return i
		}
	}
	return -1
}

// Get returns the value of the given mate and metric in row i. The boolean
// is false if there is no such row or column.
func (t *Table) Get(i, mate int, metric string) (Value, bool) {
	col := t.Index(mate, metric)
	if col < 0 || i < 0 || i >= len(t.Rows) {
		return Absent, false
	}
	return t.Rows[i].Values[col], true
}

// Column returns every row's value for column col.
func (t *Table) Column(col int) []Value {
	vals := make([]Value, len(t.Rows))
	for i, r := range t.Rows {
		vals[i] = r.Values[col]
	}
	return vals
}
