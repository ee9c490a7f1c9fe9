package sort

import (
	"errors"
	"fmt"
)

var ErrUnknownStrategy = errors.New("unknown sort strategy")

// Strategy is one way of ordering a Sorter in place.
type Strategy interface {
	Name() string
	Sort(data Sorter)
	// Total reports whether Sort always leaves data sorted.
	Total() bool
}

type strategy struct {
	name  string
	total bool
	sort  func(Sorter)
}

func (s strategy) Name() string     { return s.name }
func (s strategy) Sort(data Sorter) { s.sort(data) }
func (s strategy) Total() bool      { return s.total }
func (s strategy) String() string   { return s.name }

var (
	Bubble       Strategy = strategy{"bubble", true, BubbleSort}
	AdjacentSwap Strategy = strategy{"adjacent-swap", false, AdjacentSwapPass}
	Selection    Strategy = strategy{"selection", true, SelectionSort}
)

var strategies = []Strategy{Bubble, AdjacentSwap, Selection}

// Strategies returns every registered strategy in a fixed order.
func Strategies() []Strategy {
	out := make([]Strategy, len(strategies))
	copy(out, strategies)
	return out
}

func Names() []string {
	names := make([]string, 0, len(strategies))
	for _, s := range strategies {
		names = append(names, s.Name())
	}
	return names
}

func Lookup(name string) (Strategy, error) {
	for _, s := range strategies {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
