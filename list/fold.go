package list

// FoldRight reduces the list from the right: the elements are combined with
// f starting from the last element and the seed z, so that
// FoldRight(Of(1, 2, 3), z, f) computes f(1, f(2, f(3, z))).
//
// FoldRight recurses once per element; its stack usage grows with the length
// of the list. For lists of unbounded length, use FoldRightViaFoldLeft
// instead.
func FoldRight[A, B any](l List[A], z B, f func(A, B) B) B {
	if l.n == nil {
		return z
	}
	return f(l.n.first, FoldRight(List[A]{l.n.rest}, z, f))
}

// FoldLeft reduces the list from the left: the elements are combined with f
// starting from the seed z and the first element, so that
// FoldLeft(Of(1, 2, 3), z, f) computes f(f(f(z, 1), 2), 3).
//
// FoldLeft runs in a single pass with constant stack usage, regardless of the
// length of the list.
func FoldLeft[A, B any](l List[A], z B, f func(B, A) B) B {
	acc := z
	for n := l.n; n != nil; n = n.rest {
		acc = f(acc, n.first)
	}
	return acc
}

// FoldRightViaFoldLeft computes the same value as FoldRight, by left-folding
// the reversed list with the arguments of f flipped. It costs one extra pass
// for Reverse, but keeps stack usage constant regardless of the length of the
// list.
func FoldRightViaFoldLeft[A, B any](l List[A], z B, f func(A, B) B) B {
	return FoldLeft(l.Reverse(), z, func(acc B, x A) B { return f(x, acc) })
}
