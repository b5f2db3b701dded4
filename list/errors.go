package list

import "strconv"

// EmptyError is returned by operations that require at least one element when
// called on an empty list.
type EmptyError struct {
	// What the operation was trying to do, e.g. "take rest".
	Op string
}

func (e EmptyError) Error() string {
	return "empty list: cannot " + e.Op
}

// NegativeCountError is returned by operations that take a count when the
// count is negative.
type NegativeCountError struct {
	// What the count counts, e.g. "drop count".
	What string
	// The actual count.
	Count int
}

func (e NegativeCountError) Error() string {
	return "negative count: " + e.What + " must be at least 0, but is " +
		strconv.Itoa(e.Count)
}
