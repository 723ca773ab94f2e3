package Trees

import (
	"golang.org/x/exp/constraints"
)

// Links of a node in ArrBST. 0 is the nil index.
// The zero value is a leaf.
type info[S constraints.Unsigned] struct {
	l, r S
}

// base is the arena shared by array backed trees. ifs[0] is a placeholder so that
// every real index is >0; vs[i-1] is the payload of ifs[i]. len(ifs)==len(vs)+1.
// Nodes are never removed one by one, so there's no free list.
type base[T any, S constraints.Unsigned] struct {
	root S
	ifs  []info[S]
	vs   []T
	st   []S //reused by the iterative walks.
}

func (u *base[T, S]) getIf(i S) *info[S] {
	return &u.ifs[i]
}

func (u *base[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// alloc a leaf holding v and returns its index. Returns 0 if S can't index another node.
func (u *base[T, S]) alloc(v T) S {
	if uint64(len(u.vs)) >= uint64(^S(0)) {
		return 0
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	return S(len(u.vs))
}

// preOrder walk with an explicit stack.
func (u *base[T, S]) preOrder(f func(T)) {
	st := u.st[:0]
	if u.root != 0 {
		st = append(st, u.root)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if f != nil {
			f(*u.getV(curI))
		}
		if cur := u.getIf(curI); cur.r != 0 {
			st = append(st, cur.r)
		}
		if cur := u.getIf(curI); cur.l != 0 {
			st = append(st, cur.l)
		}
	}
	u.st = st
}

// inOrder walk with an explicit stack.
func (u *base[T, S]) inOrder(f func(T)) {
	st := u.st[:0]
	for curI := u.root; curI != 0; curI = u.getIf(curI).l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if f != nil {
			f(*u.getV(curI))
		}
		for curI = u.getIf(curI).r; curI != 0; curI = u.getIf(curI).l {
			st = append(st, curI)
		}
	}
	u.st = st
}

// postOrder walk with an explicit stack. If mirror is true the right subtree is walked
// before the left one, which is the order Free destroys payloads in.
func (u *base[T, S]) postOrder(f func(T), mirror bool) {
	st := u.st[:0]
	first := func(i S) S { return u.getIf(i).l }
	second := func(i S) S { return u.getIf(i).r }
	if mirror {
		first, second = second, first
	}
	var prev S
	for curI := u.root; curI != 0 || len(st) > 0; {
		if curI != 0 {
			st = append(st, curI)
			curI = first(curI)
			continue
		}
		top := st[len(st)-1]
		if nx := second(top); nx != 0 && nx != prev {
			curI = nx
		} else {
			if f != nil {
				f(*u.getV(top))
			}
			prev = top
			st = st[:len(st)-1]
		}
	}
	u.st = st
}

func (u *base[T, S]) minDepth(curI S) uint {
	if curI == 0 {
		return 0
	}
	if cur := u.getIf(curI); cur.l == 0 {
		return u.minDepth(cur.r) + 1
	} else if cur.r == 0 {
		return u.minDepth(cur.l) + 1
	} else {
		return min(u.minDepth(cur.l), u.minDepth(cur.r)) + 1
	}
}

func (u *base[T, S]) maxDepth(curI S) uint {
	if curI == 0 {
		return 0
	}
	cur := u.getIf(curI)
	return max(u.maxDepth(cur.l), u.maxDepth(cur.r)) + 1
}

// Size of the tree.
func (u *base[T, S]) Size() uint {
	return uint(len(u.vs))
}

// reset drops every node but keeps the arrays' capacity.
func (u *base[T, S]) reset() {
	clear(u.vs)
	u.ifs, u.vs, u.root = u.ifs[:1], u.vs[:0], 0
}
