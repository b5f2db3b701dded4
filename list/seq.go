package list

import (
	"fmt"
	"strings"
)

// Take returns the list's first n elements. If the list has no more than n
// elements, the receiver itself is returned without copying. It returns a
// NegativeCountError if n is negative.
func (l List[A]) Take(n int) (List[A], error) {
	if n < 0 {
		return List[A]{}, NegativeCountError{"take count", n}
	}
	if n >= l.Len() {
		return l, nil
	}
	out := List[A]{}
	cur := l.n
	for i := 0; i < n; i++ {
		out = out.Cons(cur.first)
		cur = cur.rest
	}
	return out.Reverse(), nil
}

// TakeWhile returns the longest prefix whose elements all satisfy p.
func (l List[A]) TakeWhile(p func(A) bool) List[A] {
	out := List[A]{}
	for n := l.n; n != nil && p(n.first); n = n.rest {
		out = out.Cons(n.first)
	}
	return out.Reverse()
}

// Each calls f on each element, from the first to the last.
func (l List[A]) Each(f func(A)) {
	for n := l.n; n != nil; n = n.rest {
		f(n.first)
	}
}

// Any reports whether any element satisfies p. It stops at the first element
// that does. Any on an empty list is false.
func (l List[A]) Any(p func(A) bool) bool {
	for n := l.n; n != nil; n = n.rest {
		if p(n.first) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies p. It stops at the first
// element that does not. All on an empty list is true.
func (l List[A]) All(p func(A) bool) bool {
	for n := l.n; n != nil; n = n.rest {
		if !p(n.first) {
			return false
		}
	}
	return true
}

// StartsWith reports whether prefix is a prefix of the list, comparing
// elements with eq.
func (l List[A]) StartsWith(prefix List[A], eq func(A, A) bool) bool {
	n, p := l.n, prefix.n
	for p != nil {
		if n == nil || !eq(n.first, p.first) {
			return false
		}
		n, p = n.rest, p.rest
	}
	return true
}

// HasSubsequence reports whether sub occurs in the list as a contiguous
// subsequence, comparing elements with eq. An empty sub occurs in every
// list.
func (l List[A]) HasSubsequence(sub List[A], eq func(A, A) bool) bool {
	for n := l.n; ; n = n.rest {
		if (List[A]{n}).StartsWith(sub, eq) {
			return true
		}
		if n == nil {
			return false
		}
	}
}

// Slice copies the elements into a new native slice, in order. Slice of an
// empty list is nil.
func (l List[A]) Slice() []A {
	if l.n == nil {
		return nil
	}
	out := make([]A, 0, l.n.count)
	for n := l.n; n != nil; n = n.rest {
		out = append(out, n.first)
	}
	return out
}

// String renders the list like [a b c], formatting each element with %v. It
// is meant for debugging and test output, not as a serialization format.
func (l List[A]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.n; n != nil; n = n.rest {
		if n != l.n {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", n.first)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal reports whether two lists of comparable elements have equal length
// and equal elements at every position.
func Equal[A comparable](l1, l2 List[A]) bool {
	if l1.Len() != l2.Len() {
		return false
	}
	n1, n2 := l1.n, l2.n
	for n1 != nil {
		if n1.first != n2.first {
			return false
		}
		n1, n2 = n1.rest, n2.rest
	}
	return true
}
