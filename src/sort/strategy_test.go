package sort

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		total bool
	}{
		{"bubble", true},
		{"adjacent-swap", false},
		{"selection", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, s.Name())
			assert.Equal(t, tt.total, s.Total())
		})
	}

	_, err := Lookup("insertion")
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
	assert.Contains(t, err.Error(), `"insertion"`)
}

func TestStrategiesOrder(t *testing.T) {
	assert.Equal(t, []string{"bubble", "adjacent-swap", "selection"}, Names())

	list := Strategies()
	list[0] = nil
	assert.NotNil(t, Strategies()[0])
}

func TestCounterReset(t *testing.T) {
	c := Count(Sequence{3, 1, 2})
	BubbleSort(c)
	assert.NotZero(t, c.Comparisons)
	c.Reset()
	assert.Zero(t, c.Comparisons)
	assert.Zero(t, c.Swaps)
	assert.Equal(t, Sequence{1, 2, 3}, c.Sorter)
}
