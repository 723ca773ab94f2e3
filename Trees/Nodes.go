package Trees

// A node in the BST. It owns its payload and both children.
// A nil *node is an empty subtree.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// insert v into the subtree rooting at n and returns the new root of that subtree.
// v goes left when cmp(v, n.v) < 0, otherwise right; ties go right. There's no rebalancing.
// Recursive.
// Time: O(D)
func insert[T any](n *node[T], v T, cmp func(T, T) int) *node[T] {
	if n == nil {
		return &node[T]{v: v}
	}
	if cmp(v, n.v) < 0 {
		n.l = insert(n.l, v, cmp)
	} else {
		n.r = insert(n.r, v, cmp)
	}
	return n
}

// find the first payload equal to key on the path from n. No backtracking.
// Time: O(D); Space: O(1)
func find[T any](n *node[T], key T, cmp func(T, T) int) (T, bool) {
	for n != nil {
		if c := cmp(key, n.v); c == 0 {
			return n.v, true
		} else if c < 0 {
			n = n.l
		} else {
			n = n.r
		}
	}
	return *new(T), false
}

func preOrder[T any](n *node[T], f func(T)) {
	if n == nil {
		return
	}
	if f != nil {
		f(n.v)
	}
	preOrder(n.l, f)
	preOrder(n.r, f)
}

func inOrder[T any](n *node[T], f func(T)) {
	if n == nil {
		return
	}
	inOrder(n.l, f)
	if f != nil {
		f(n.v)
	}
	inOrder(n.r, f)
}

func postOrder[T any](n *node[T], f func(T)) {
	if n == nil {
		return
	}
	postOrder(n.l, f)
	postOrder(n.r, f)
	if f != nil {
		f(n.v)
	}
}

// free the subtree rooting at n: right, left, then the payload of n itself.
// destroy may be nil. Links are cut on the way up so nothing stays reachable
// from a detached node.
func free[T any](n *node[T], destroy func(T)) {
	if n == nil {
		return
	}
	free(n.r, destroy)
	free(n.l, destroy)
	if destroy != nil {
		destroy(n.v)
	}
	n.l, n.r, n.v = nil, nil, *new(T)
}

func minDepth[T any](n *node[T]) uint {
	if n == nil {
		return 0
	}
	if n.l == nil {
		return minDepth(n.r) + 1
	} else if n.r == nil {
		return minDepth(n.l) + 1
	}
	return min(minDepth(n.l), minDepth(n.r)) + 1
}

func maxDepth[T any](n *node[T]) uint {
	if n == nil {
		return 0
	}
	return max(maxDepth(n.l), maxDepth(n.r)) + 1
}

// corrupt checks every node of the subtree rooting at n against the bounds
// inherited from its ancestors: lo (inclusive) and hi (exclusive).
func corrupt[T any](n *node[T], lo, hi *T, cmp func(T, T) int) bool {
	if n == nil {
		return false
	}
	if lo != nil && cmp(n.v, *lo) < 0 || hi != nil && cmp(n.v, *hi) >= 0 {
		return true
	}
	return corrupt(n.l, lo, &n.v, cmp) || corrupt(n.r, &n.v, hi, cmp)
}
