package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricAliases(t *testing.T) {
	cases := map[string]Metric{
		"dot":         MetricDot,
		"inner":       MetricDot,
		"VDot":        MetricVDot,
		"cosine":      MetricCos,
		"ANGULAR":     MetricCos,
		"sqeuclidean": MetricL2Sq,
		"manhattan":   MetricHamming,
		"tanimoto":    MetricJaccard,
	}
	for name, want := range cases {
		got, ok := ParseMetric(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	_, ok := ParseMetric("nonexistent")
	assert.False(t, ok)
}

func TestDTypeRoundTrip(t *testing.T) {
	for name, want := range dtypeAliases {
		got, ok := ParseDType(name)
		assert.True(t, ok)
		assert.Equal(t, want, got)
		assert.NotEmpty(t, want.String())
	}
}

func TestTierPriorityDescending(t *testing.T) {
	assert.Equal(t, TierSapphire, TierPriority[0])
	assert.Equal(t, TierSerial, TierPriority[len(TierPriority)-1])
	assert.Len(t, TierPriority, 8)
}

func TestTierABIValues(t *testing.T) {
	assert.EqualValues(t, 1, TierSerial)
	assert.EqualValues(t, 1<<10, TierNEON)
	assert.EqualValues(t, 1<<11, TierSVE)
	assert.EqualValues(t, 1<<12, TierSVE2)
	assert.EqualValues(t, 1<<20, TierHaswell)
	assert.EqualValues(t, 1<<21, TierSkylake)
	assert.EqualValues(t, 1<<22, TierIce)
	assert.EqualValues(t, 1<<23, TierSapphire)
}
