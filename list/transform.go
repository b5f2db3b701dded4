package list

// The operations in this file are derived from the fold primitives rather
// than written as direct traversals. They all use the stack-safe
// FoldRightViaFoldLeft formulation, so they are usable on lists of any
// length.

// Append returns a new list with the elements of the receiver in front of the
// elements of other, in order. The other list is shared with the result, not
// copied; only the receiver's elements are rebuilt.
func (l List[A]) Append(other List[A]) List[A] {
	return FoldRightViaFoldLeft(l, other,
		func(x A, acc List[A]) List[A] { return acc.Cons(x) })
}

// Concat flattens a list of lists into a single list, preserving the order of
// both the outer and the inner elements. The last inner list is shared with
// the result.
func Concat[A any](ls List[List[A]]) List[A] {
	return FoldRightViaFoldLeft(ls, List[A]{},
		func(l List[A], acc List[A]) List[A] { return l.Append(acc) })
}

// Map returns a new list with f applied to each element, preserving length
// and order.
func Map[A, B any](l List[A], f func(A) B) List[B] {
	return FoldRightViaFoldLeft(l, List[B]{},
		func(x A, acc List[B]) List[B] { return acc.Cons(f(x)) })
}

// Filter returns a new list with only the elements satisfying p, preserving
// their relative order.
func (l List[A]) Filter(p func(A) bool) List[A] {
	return FoldRightViaFoldLeft(l, List[A]{},
		func(x A, acc List[A]) List[A] {
			if p(x) {
				return acc.Cons(x)
			}
			return acc
		})
}

// FlatMap returns a new list with the elements of f(x) for each element x, in
// order. It is equivalent to Concat(Map(l, f)).
func FlatMap[A, B any](l List[A], f func(A) List[B]) List[B] {
	return FoldRightViaFoldLeft(l, List[B]{},
		func(x A, acc List[B]) List[B] { return f(x).Append(acc) })
}

// FilterViaFlatMap computes the same list as Filter, expressed with FlatMap:
// each element maps to a one-element list if it satisfies p and an empty list
// otherwise.
func FilterViaFlatMap[A any](l List[A], p func(A) bool) List[A] {
	return FlatMap(l, func(x A) List[A] {
		if p(x) {
			return Of(x)
		}
		return List[A]{}
	})
}
