package queue

import "github.com/bradenaw/juniper/xmath"

// Range is a normalized inclusive window of element positions.
type Range struct {
	Low   int
	High  int
	Count int
}

// SliceRange normalizes the half-open window [begin, end) against a list of
// the given length. Negative indices count from the end, -1 being the last element.
// An end past the end clamps to the last element.
//
// It reports false when the list is empty, begin == end, begin is past either end
// of the list or the window is otherwise empty.
func SliceRange(begin, end, length int) (Range, bool) {
	if length <= 0 || begin == end {
		return Range{}, false
	}

	if begin < 0 {
		begin += length
	}
	if begin < 0 || begin > length-1 {
		return Range{}, false
	}

	if end < 0 {
		end += length
	}
	end--
	if end < begin {
		return Range{}, false
	}

	high := xmath.Clamp(end, 0, length-1)
	low := xmath.Clamp(begin, 0, high)

	return Range{Low: low, High: high, Count: high - low + 1}, true
}

// SpliceRange normalizes the window of count elements starting at start against
// a list of the given length. A negative start counts from the end.
//
// It reports false when the list is empty, count is not positive or start is past
// either end of the list.
func SpliceRange(start, count, length int) (Range, bool) {
	if length <= 0 || count <= 0 {
		return Range{}, false
	}

	if start < 0 {
		start += length
	}
	if start < 0 || start > length-1 {
		return Range{}, false
	}

	high := start + xmath.Clamp(count, 1, length-start) - 1

	return Range{Low: start, High: high, Count: high - start + 1}, true
}
