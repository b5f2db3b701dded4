// Package list implements a persistent list.
package list

// List implements a persistent list of elements of type A. The zero value is
// a valid empty list.
//
// Lists are immutable: operations that "modify" a list return a new one, and
// the receiver remains valid. Unmodified suffixes are shared between the old
// and the new list rather than copied.
type List[A any] struct {
	n *node[A]
}

// Each cell caches the number of cells from itself to the end, so that Len is
// O(1) on any list.
type node[A any] struct {
	first A
	rest  *node[A]
	count int
}

// Empty returns an empty list. It is equivalent to the zero value of
// List[A]; it exists for call sites where the element type is not inferrable.
func Empty[A any]() List[A] {
	return List[A]{}
}

// Of builds a list containing the given elements, in the same order. Of with
// no arguments returns an empty list.
func Of[A any](elems ...A) List[A] {
	l := List[A]{}
	for i := len(elems) - 1; i >= 0; i-- {
		l = l.Cons(elems[i])
	}
	return l
}

// Cons returns a new list with an additional element in the front. The
// receiver becomes the rest of the new list, without being copied.
func (l List[A]) Cons(val A) List[A] {
	return List[A]{&node[A]{val, l.n, l.Len() + 1}}
}

// Len returns the number of elements in the list.
func (l List[A]) Len() int {
	if l.n == nil {
		return 0
	}
	return l.n.count
}

// IsEmpty reports whether the list has no elements.
func (l List[A]) IsEmpty() bool {
	return l.n == nil
}

// First returns the first element in the list. It returns an EmptyError if
// the list is empty.
func (l List[A]) First() (A, error) {
	if l.n == nil {
		var zero A
		return zero, EmptyError{"take first"}
	}
	return l.n.first, nil
}

// Rest returns the list after the first element, sharing it with the
// receiver. It returns an EmptyError if the list is empty.
func (l List[A]) Rest() (List[A], error) {
	if l.n == nil {
		return List[A]{}, EmptyError{"take rest"}
	}
	return List[A]{l.n.rest}, nil
}

// SetFirst returns a new list with the first element replaced by val and the
// rest shared with the receiver. It returns an EmptyError if the list is
// empty.
func (l List[A]) SetFirst(val A) (List[A], error) {
	if l.n == nil {
		return List[A]{}, EmptyError{"set first"}
	}
	return List[A]{&node[A]{val, l.n.rest, l.n.count}}, nil
}

// Drop returns the list without its first n elements, sharing the suffix with
// the receiver. It returns a NegativeCountError if n is negative, and an
// EmptyError if the list has fewer than n elements.
func (l List[A]) Drop(n int) (List[A], error) {
	if n < 0 {
		return List[A]{}, NegativeCountError{"drop count", n}
	}
	out := l
	for i := 0; i < n; i++ {
		var err error
		out, err = out.Rest()
		if err != nil {
			return List[A]{}, err
		}
	}
	return out, nil
}

// DropWhile returns the list without the longest prefix whose elements all
// satisfy p, sharing the suffix with the receiver.
func (l List[A]) DropWhile(p func(A) bool) List[A] {
	n := l.n
	for n != nil && p(n.first) {
		n = n.rest
	}
	return List[A]{n}
}

// Init returns the list without its last element. It returns an empty list
// if the receiver has at most one element. Since cells only link from the
// front towards the end, the entire prefix is rebuilt; this takes O(n) time
// and allocation.
func (l List[A]) Init() List[A] {
	if l.Len() <= 1 {
		return List[A]{}
	}
	out := List[A]{}
	for n := l.n; n.rest != nil; n = n.rest {
		out = out.Cons(n.first)
	}
	return out.Reverse()
}

// Reverse returns a new list with the order of elements inverted. It runs in
// a single pass with constant stack usage.
func (l List[A]) Reverse() List[A] {
	return FoldLeft(l, List[A]{}, List[A].Cons)
}

// Number includes the native numeric types that Sum and AddPairwise accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float includes the native floating-point types that Product accepts.
type Float interface {
	~float32 | ~float64
}

// Sum returns the sum of all elements. The sum of an empty list is 0.
func Sum[N Number](l List[N]) N {
	return FoldLeft(l, N(0), func(acc, x N) N { return acc + x })
}

// Product returns the product of all elements. The product of an empty list
// is 1. Product returns 0 as soon as it meets an element equal to 0, without
// visiting the remaining elements.
func Product[F Float](l List[F]) F {
	acc := F(1)
	for n := l.n; n != nil; n = n.rest {
		if n.first == 0 {
			return 0
		}
		acc *= n.first
	}
	return acc
}
