package sort

import "fmt"

// Sequence is a fixed-length run of signed 64-bit integers sorted in place.
type Sequence []int64

type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

// NewSequence copies values into a new Sequence.
func NewSequence(values ...int64) Sequence {
	p := make(Sequence, len(values))
	copy(p, values)
	return p
}

var sample = [...]int64{1, 5332, 4, 13412, 5233213, 412325, 412312, 233123, 23123, 2423}

// Sample returns a fresh copy of the reference input.
func Sample() Sequence { return NewSequence(sample[:]...) }

func (p Sequence) Len() int { return len(p) }

func (p Sequence) Less(i, j int) bool { return p.At(i) < p.At(j) }

func (p Sequence) Swap(i, j int) {
	p.check(i)
	p.check(j)
	p[i], p[j] = p[j], p[i]
}

// At returns the element at i and panics if i is outside [0, Len()).
func (p Sequence) At(i int) int64 {
	p.check(i)
	return p[i]
}

func (p Sequence) check(i int) {
	if i < 0 || i >= len(p) {
		panic(fmt.Sprintf("sort: index %d out of range [0:%d]", i, len(p)))
	}
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data Sorter) bool {
	for i := data.Len() - 1; i > 0; i-- {
		if data.Less(i, i-1) {
			return false
		}
	}
	return true
}

// BubbleSort runs Len()-1 full adjacent compare/swap passes. There is no early exit.
func BubbleSort(data Sorter) {
	n := data.Len()
	for pass := n - 1; pass > 0; pass-- {
		for i := 0; i < n-1; i++ {
			if data.Less(i+1, i) {
				data.Swap(i, i+1)
			}
		}
	}
}

// AdjacentSwapPass makes one forward scan and swaps each element with its
// predecessor at most once when it is smaller. A displaced element is not
// carried further left, so the result is only sorted when every inversion
// is between neighbours.
func AdjacentSwapPass(data Sorter) {
	for i := 0; i < data.Len(); i++ {
		if i > 0 && data.Less(i, i-1) {
			data.Swap(i, i-1)
		}
	}
}

// SelectionSort moves the minimum of the unsorted suffix into position i,
// doing at most one swap per position.
func SelectionSort(data Sorter) {
	n := data.Len()
	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			if data.Less(j, min) {
				min = j
			}
		}
		if min != i {
			data.Swap(i, min)
		}
	}
}
