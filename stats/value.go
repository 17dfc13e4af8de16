package stats

import "strconv"

// Value is one metric value. The zero Value is Absent, meaning the metric
// does not apply to the read (e.g. a pattern that was not found). Absent is
// distinct from a present zero.
type Value struct {
	v       float64
	present bool
}

// Absent is the value of a metric that was not found or does not apply.
var Absent = Value{}

// Of returns a present value v.
func Of(v float64) Value { return Value{v: v, present: true} }

// Get returns the value and whether it is present.
func (v Value) Get() (float64, bool) { return v.v, v.present }

// IsAbsent reports whether v is Absent.
func (v Value) IsAbsent() bool { return !v.present }

// Format formats v in the shortest representation that round-trips. Absent
// values are formatted as absent.
func (v Value) Format(absent string) string {
	if !v.present {
		return absent
	}
	return strconv.FormatFloat(v.v, 'g', -1, 64)
}

func (v Value) String() string { return v.Format("NA") }
