package date

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of values, each associated with a date.
// Dates are unique and the series is always sorted in ascending date order.
// The zero value is an empty history, ready to use.
type History[T float32 | float64 | string] struct {
	days   []Date
	values []T
}

// Len returns the number of points in the history.
func (h *History[T]) Len() int { return len(h.days) }

// First returns the earliest date and value, or zero values if the history is empty.
func (h *History[T]) First() (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, *new(T)
	}
	return h.days[0], h.values[0]
}

// Latest returns the latest date and value, or zero values if the history is empty.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T)
	}
	return h.days[last], h.values[last]
}

// chronological adapts a History to sort.Interface, keeping days and values in step.
type chronological[T float32 | float64 | string] struct{ *History[T] }

func (s chronological[T]) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }

func (s chronological[T]) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// Append adds a point to the history. A point at an existing date is overwritten.
// Appending in ascending date order is O(1); out-of-order appends trigger a re-sort.
func (h *History[T]) Append(on Date, v T) *History[T] {
	if last := len(h.days) - 1; last < 0 || on.After(h.days[last]) {
		h.days, h.values = append(h.days, on), append(h.values, v)
		return h
	}
	if i := slices.Index(h.days, on); i >= 0 {
		// Same date: the last write wins.
		h.values[i] = v
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, v)
	sort.Sort(chronological[T]{h})
	return h
}

// Get returns the value at day, or the zero value and false when absent.
func (h *History[T]) Get(day Date) (T, bool) {
	i, found := h.search(day)
	if found {
		return h.values[i], true
	}
	var zero T
	return zero, false
}

func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}

// Days returns a copy of all dates in the history, in ascending order.
func (h *History[T]) Days() []Date {
	return slices.Clone(h.days)
}

// Values returns an iterator over all date/value pairs, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}
