package main

import (
	"sort"

	"github.com/maruel/natural"
)

// SortStrategy orders gallery entries. Less is the pairwise ordering
// used both for sorting and for the nearest-entry search when a
// requested path is not in the gallery.
type SortStrategy interface {
	// Sort returns a new sorted slice without modifying the original.
	Sort(paths []ImagePath) []ImagePath
	Less(a, b ImagePath) bool
	// Ordered reports whether Sort arranges entries by Less. When it
	// does not, nearest-entry searches cannot binary-search the list.
	Ordered() bool
	// Name returns the human-readable name of the strategy.
	Name() string
	// ID returns the numeric identifier for config storage.
	ID() int
}

func sortedCopy(paths []ImagePath, less func(a, b ImagePath) bool) []ImagePath {
	result := make([]ImagePath, len(paths))
	copy(result, paths)
	if less != nil {
		sort.Slice(result, func(i, j int) bool { return less(result[i], result[j]) })
	}
	return result
}

// NaturalSortStrategy orders numbered files the way a human expects
// (file2 before file10).
type NaturalSortStrategy struct{}

func (s *NaturalSortStrategy) Sort(paths []ImagePath) []ImagePath {
	return sortedCopy(paths, s.Less)
}

func (s *NaturalSortStrategy) Less(a, b ImagePath) bool { return natural.Less(a.Path, b.Path) }
func (s *NaturalSortStrategy) Ordered() bool            { return true }
func (s *NaturalSortStrategy) Name() string             { return "Natural" }
func (s *NaturalSortStrategy) ID() int                  { return SortNatural }

// SimpleSortStrategy orders lexicographically.
type SimpleSortStrategy struct{}

func (s *SimpleSortStrategy) Sort(paths []ImagePath) []ImagePath {
	return sortedCopy(paths, s.Less)
}

func (s *SimpleSortStrategy) Less(a, b ImagePath) bool { return a.Path < b.Path }
func (s *SimpleSortStrategy) Ordered() bool            { return true }
func (s *SimpleSortStrategy) Name() string             { return "Simple" }
func (s *SimpleSortStrategy) ID() int                  { return SortSimple }

// EntryOrderSortStrategy keeps directory or archive order. Its Less is
// the natural ordering, used for nearest-entry comparisons only; the
// list itself stays unsorted, which Ordered reflects.
type EntryOrderSortStrategy struct{}

func (s *EntryOrderSortStrategy) Sort(paths []ImagePath) []ImagePath {
	return sortedCopy(paths, nil)
}

func (s *EntryOrderSortStrategy) Less(a, b ImagePath) bool { return natural.Less(a.Path, b.Path) }
func (s *EntryOrderSortStrategy) Ordered() bool            { return false }
func (s *EntryOrderSortStrategy) Name() string             { return "Entry Order" }
func (s *EntryOrderSortStrategy) ID() int                  { return SortEntryOrder }

// GetSortStrategy returns the strategy for a config sort method ID,
// defaulting to natural order.
func GetSortStrategy(sortMethod int) SortStrategy {
	switch sortMethod {
	case SortSimple:
		return &SimpleSortStrategy{}
	case SortEntryOrder:
		return &EntryOrderSortStrategy{}
	default:
		return &NaturalSortStrategy{}
	}
}

// GetAllSortStrategies returns every strategy in ID order.
func GetAllSortStrategies() []SortStrategy {
	return []SortStrategy{
		&NaturalSortStrategy{},
		&SimpleSortStrategy{},
		&EntryOrderSortStrategy{},
	}
}
