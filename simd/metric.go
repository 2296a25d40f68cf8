package simd

import "strings"

// Metric identifies a distance or similarity function. The numeric value
// is the single-character ABI tag from the external interface contract;
// it must not change once published.
type Metric byte

const (
	MetricDot     Metric = 'i' // dot / inner: unconjugated inner product
	MetricVDot    Metric = 'v' // vdot: complex inner product, first operand conjugated
	MetricCos     Metric = 'c' // cos / cosine / angular
	MetricL2Sq    Metric = 'e' // l2sq / sqeuclidean
	MetricHamming Metric = 'h' // hamming / manhattan
	MetricJaccard Metric = 'j' // jaccard / tanimoto
	MetricKL      Metric = 'k' // Kullback-Leibler divergence
	MetricJS      Metric = 's' // Jensen-Shannon divergence
)

// String returns a canonical lowercase name for the metric.
func (m Metric) String() string {
	switch m {
	case MetricDot:
		return "dot"
	case MetricVDot:
		return "vdot"
	case MetricCos:
		return "cos"
	case MetricL2Sq:
		return "l2sq"
	case MetricHamming:
		return "hamming"
	case MetricJaccard:
		return "jaccard"
	case MetricKL:
		return "kl"
	case MetricJS:
		return "js"
	default:
		return "unknown"
	}
}

// metricAliases maps every accepted spelling, including ABI aliases that
// share a numeric code, to its canonical Metric. Callers may not rely on
// aliased names resolving to distinct codes.
var metricAliases = map[string]Metric{
	"dot":         MetricDot,
	"inner":       MetricDot,
	"vdot":        MetricVDot,
	"cos":         MetricCos,
	"cosine":      MetricCos,
	"angular":     MetricCos,
	"l2sq":        MetricL2Sq,
	"sqeuclidean": MetricL2Sq,
	"hamming":     MetricHamming,
	"manhattan":   MetricHamming,
	"jaccard":     MetricJaccard,
	"tanimoto":    MetricJaccard,
	"kl":          MetricKL,
	"js":          MetricJS,
}

// ParseMetric resolves a case-insensitive metric name, including aliases,
// to its canonical Metric code.
func ParseMetric(name string) (Metric, bool) {
	m, ok := metricAliases[strings.ToLower(name)]
	return m, ok
}
