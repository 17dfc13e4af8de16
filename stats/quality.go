package stats

import "github.com/grailbio/fqstats/encoding/fastq"

// AvgQualMetric is the metric name reported by QualityAverager.
const AvgQualMetric = "avg_qual"

// QualityAverager reports the mean per-base quality of a read.
type QualityAverager struct{}

// NewQualityAverager returns a QualityAverager.
func NewQualityAverager() QualityAverager { return QualityAverager{} }

// Metrics implements Calculator.
func (QualityAverager) Metrics() []string { return []string{AvgQualMetric} }

// Calc implements Calculator. A read without quality values has no mean;
// its value is Absent.
func (QualityAverager) Calc(r *fastq.Read) []Value {
	if len(r.Qual) == 0 {
		return []Value{Absent}
	}
	var sum int
	for _, q := range r.Qual {
		sum += q
	}
	return []Value{Of(float64(sum) / float64(len(r.Qual)))}
}
