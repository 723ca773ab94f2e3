package Trees

import (
	"github.com/g-m-twostay/go-dungeon/Queues"
	"golang.org/x/exp/constraints"
)

// ArrBST is the BST stored in two arrays: the links and the payloads, addressed by
// indexes of type S. It has the same ordering, duplicate and teardown semantics as BST,
// but walks iteratively, so deep chains don't grow the goroutine stack.
// S bounds the number of nodes to the max value of S; Insert reports a CapacityError past that.
type ArrBST[T any, S constraints.Unsigned] struct {
	base[T, S]
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	cmp     func(T, T) int
	print   func(T)
	destroy func(T)
}

// NewArr is the ArrBST equivalence of New. hint is the expected number of nodes.
func NewArr[T any, S constraints.Unsigned](hint S, cmp func(T, T) int, print, destroy func(T)) *ArrBST[T, S] {
	if cmp == nil {
		panic("Trees: nil comparator")
	}
	return &ArrBST[T, S]{
		base:    base[T, S]{ifs: make([]info[S], 1, uint(hint)+1), vs: make([]T, 0, hint)},
		cmp:     cmp,
		print:   print,
		destroy: destroy,
	}
}

// Insert [Tree.Insert]. Iterative. The new leaf is linked through its parent's index
// because alloc may move the arrays.
// Time: O(D)
func (u *ArrBST[T, S]) Insert(v T) error {
	var parent S
	left := false
	for curI := u.root; curI != 0; {
		parent = curI
		if left = u.cmp(v, *u.getV(curI)) < 0; left {
			curI = u.getIf(curI).l
		} else {
			curI = u.getIf(curI).r
		}
	}
	i := u.alloc(v)
	if i == 0 {
		return &CapacityError{uint(^S(0))}
	}
	if parent == 0 {
		u.root = i
	} else if left {
		u.getIf(parent).l = i
	} else {
		u.getIf(parent).r = i
	}
	return nil
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *ArrBST[T, S]) Find(v T) (T, bool) {
	for curI := u.root; curI != 0; {
		if c := u.cmp(v, *u.getV(curI)); c < 0 {
			curI = u.getIf(curI).l
		} else if c > 0 {
			curI = u.getIf(curI).r
		} else {
			return *u.getV(curI), true
		}
	}
	return *new(T), false
}

// PreOrder [Tree.PreOrder]
func (u *ArrBST[T, S]) PreOrder(f func(T)) {
	u.preOrder(f)
}

// InOrder [Tree.InOrder]
func (u *ArrBST[T, S]) InOrder(f func(T)) {
	u.inOrder(f)
}

// PostOrder [Tree.PostOrder]
func (u *ArrBST[T, S]) PostOrder(f func(T)) {
	u.postOrder(f, false)
}

// LevelOrder visits the tree breadth first, left to right inside a level.
func (u *ArrBST[T, S]) LevelOrder(f func(T)) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[S](u.Size())
	for q.Push(u.root); !q.Empty(); {
		curI, _ := q.Pop()
		if f != nil {
			f(*u.getV(curI))
		}
		if cur := u.getIf(curI); cur.l != 0 {
			q.Push(cur.l)
		}
		if cur := u.getIf(curI); cur.r != 0 {
			q.Push(cur.r)
		}
	}
}

// Walk [Tree.Walk]. Unknown orders visit nothing.
func (u *ArrBST[T, S]) Walk(o Order, f func(T)) {
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
func (u *ArrBST[T, S]) Print(o Order) {
	u.Walk(o, u.print)
}

// Free [Tree.Free]. The arrays keep their capacity for reuse.
// Time: O(n)
func (u *ArrBST[T, S]) Free() {
	if u.destroy != nil {
		u.postOrder(u.destroy, true)
	}
	u.reset()
}

func (u *ArrBST[T, S]) MinDepth() uint {
	return u.minDepth(u.root)
}

func (u *ArrBST[T, S]) MaxDepth() uint {
	return u.maxDepth(u.root)
}

func (u *ArrBST[T, S]) corrupt(curI S, lo, hi S) bool {
	if curI == 0 {
		return false
	}
	v := *u.getV(curI)
	if lo != 0 && u.cmp(v, *u.getV(lo)) < 0 || hi != 0 && u.cmp(v, *u.getV(hi)) >= 0 {
		return true
	}
	return u.corrupt(u.getIf(curI).l, lo, curI) || u.corrupt(u.getIf(curI).r, curI, hi)
}

// Corrupt is the ArrBST equivalence of BST.Corrupt.
func (u *ArrBST[T, S]) Corrupt() bool {
	return u.corrupt(u.root, 0, 0)
}
