package list

// ZipWith combines two lists element-wise with f. The result has the length
// of the shorter list; excess elements of the longer list are discarded.
func ZipWith[A, B, C any](l1 List[A], l2 List[B], f func(A, B) C) List[C] {
	acc := List[C]{}
	n1, n2 := l1.n, l2.n
	for n1 != nil && n2 != nil {
		acc = acc.Cons(f(n1.first, n2.first))
		n1, n2 = n1.rest, n2.rest
	}
	return acc.Reverse()
}

// AddPairwise adds two lists element-wise, truncating at the length of the
// shorter list like ZipWith.
func AddPairwise[N Number](l1, l2 List[N]) List[N] {
	return ZipWith(l1, l2, func(x, y N) N { return x + y })
}
