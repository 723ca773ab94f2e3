package Trees

import (
	"cmp"

	"github.com/g-m-twostay/go-dungeon/Queues"
)

// Comparable is satisfied by payload types that order themselves.
type Comparable[T any] interface {
	//Compare returns a negative number if the receiver < o, 0 if equal, a positive number otherwise.
	Compare(o T) int
}

// BST is an unbalanced binary search tree of nodes linked by pointers.
// Its height only depends on insertion order; a monotonic sequence of inserts
// produces a chain. Every node is owned by exactly one parent link or the root.
// Traversals and Free are recursive, so the stack depth is the height of the tree.
type BST[T any] struct {
	root    *node[T]
	sz      uint
	cmp     func(T, T) int
	print   func(T)
	destroy func(T)
}

// New returns an empty BST bound to the given comparator, printer and destructor.
// print and destroy may be nil. cmp mustn't be nil.
func New[T any](cmp func(T, T) int, print, destroy func(T)) *BST[T] {
	if cmp == nil {
		panic("Trees: nil comparator")
	}
	return &BST[T]{cmp: cmp, print: print, destroy: destroy}
}

// NewOrdered is New using cmp.Compare.
func NewOrdered[T cmp.Ordered](print, destroy func(T)) *BST[T] {
	return New(cmp.Compare[T], print, destroy)
}

// NewComparable is New using T.Compare.
func NewComparable[T Comparable[T]](print, destroy func(T)) *BST[T] {
	return New(func(a, b T) int { return a.Compare(b) }, print, destroy)
}

// Insert [Tree.Insert]. Recursive. Never fails: a Go allocation failure isn't recoverable anyway.
// Time: O(D)
func (u *BST[T]) Insert(v T) error {
	u.root = insert(u.root, v, u.cmp)
	u.sz++
	return nil
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *BST[T]) Find(v T) (T, bool) {
	return find(u.root, v, u.cmp)
}

// PreOrder [Tree.PreOrder]. Recursive.
func (u *BST[T]) PreOrder(f func(T)) {
	preOrder(u.root, f)
}

// InOrder [Tree.InOrder]. Recursive. Gives non-decreasing payloads as long as cmp didn't change.
func (u *BST[T]) InOrder(f func(T)) {
	inOrder(u.root, f)
}

// PostOrder [Tree.PostOrder]. Recursive.
func (u *BST[T]) PostOrder(f func(T)) {
	postOrder(u.root, f)
}

// LevelOrder visits the tree breadth first, left to right inside a level.
func (u *BST[T]) LevelOrder(f func(T)) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*node[T]](u.sz)
	for q.Push(u.root); !q.Empty(); {
		n, _ := q.Pop()
		if f != nil {
			f(n.v)
		}
		if n.l != nil {
			q.Push(n.l)
		}
		if n.r != nil {
			q.Push(n.r)
		}
	}
}

// Walk [Tree.Walk]. Unknown orders visit nothing.
func (u *BST[T]) Walk(o Order, f func(T)) {
	switch o {
	case PreOrder:
		u.PreOrder(f)
	case InOrder:
		u.InOrder(f)
	case PostOrder:
		u.PostOrder(f)
	case LevelOrder:
		u.LevelOrder(f)
	}
}

// Print [Tree.Print]
func (u *BST[T]) Print(o Order) {
	u.Walk(o, u.print)
}

// Free [Tree.Free]. Recursive.
// Time: O(n)
func (u *BST[T]) Free() {
	free(u.root, u.destroy)
	u.root, u.sz = nil, 0
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BST[T]) Size() uint {
	return u.sz
}

// MinDepth is the number of nodes on the shortest path from the root to a leaf. 0 for an empty tree.
func (u *BST[T]) MinDepth() uint {
	return minDepth(u.root)
}

// MaxDepth is the height of the tree counted in nodes. 0 for an empty tree.
func (u *BST[T]) MaxDepth() uint {
	return maxDepth(u.root)
}

// Corrupt returns whether some payload sits on the wrong side of one of its ancestors
// under the bound comparator. It can only happen if the comparator isn't consistent.
func (u *BST[T]) Corrupt() bool {
	return corrupt(u.root, nil, nil, u.cmp)
}
