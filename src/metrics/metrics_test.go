package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"sortdemo/src/sort"
)

func TestObserve(t *testing.T) {
	m := New(prometheus.NewRegistry())

	c := sort.Count(sort.Sample())
	sort.SelectionSort(c)
	m.Observe("selection", c, time.Millisecond)

	c = sort.Count(sort.Sample())
	sort.AdjacentSwapPass(c)
	m.Observe("adjacent-swap", c, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("selection")))
	assert.Equal(t, 45.0, testutil.ToFloat64(m.comparisons.WithLabelValues("selection")))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.swaps.WithLabelValues("adjacent-swap")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.unsorted.WithLabelValues("selection")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.unsorted.WithLabelValues("adjacent-swap")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestNewRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
