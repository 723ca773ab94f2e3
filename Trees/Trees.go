package Trees

import (
	"strconv"
	"strings"
)

// Tree is an ordered container of opaque payloads. The container is bound at
// creation to three callbacks that it keeps for its whole life:
// a three-way comparator, a printer and a destructor.
// The comparator returns a negative number if first < second, 0 if first==second,
// and a positive number if first>second; see cmp.Compare for an example.
// A new payload descends left when cmp(new, node) < 0 and right otherwise, so
// payloads comparing equal are all kept and land to the right of each other.
// Lookups use the same convention.
// Unless an implementation says otherwise, methods run synchronously to completion
// and the Tree must not be used from more than one goroutine at a time.
type Tree[T any] interface {
	//Insert v into the Tree. The Tree owns v from now on and destroys it in Free.
	//Equal payloads are never rejected. The error is non-nil only when the
	//implementation can't address another node, see CapacityError.
	Insert(v T) error
	//Find the payload comparing equal to v. The bool indicates whether it's found;
	//a miss isn't an error.
	Find(v T) (T, bool)
	//PreOrder visits node, left subtree, right subtree. f may be nil.
	PreOrder(f func(T))
	//InOrder visits left subtree, node, right subtree. f may be nil.
	InOrder(f func(T))
	//PostOrder visits left subtree, right subtree, node. f may be nil.
	PostOrder(f func(T))
	//Walk the Tree in order o, calling f on every payload.
	Walk(o Order, f func(T))
	//Print the Tree in order o using the bound printer.
	Print(o Order)
	//Free every node: right subtree, left subtree, then the node's payload is
	//passed to the bound destructor. The Tree is empty afterwards.
	Free()
	//Size of the Tree.
	Size() uint
}

// Order of a depth first walk. The values follow the menu numbering of the game.
type Order byte

const (
	PreOrder Order = iota + 1
	InOrder
	PostOrder
	// LevelOrder is breadth first, root level first.
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	case LevelOrder:
		return "levelorder"
	}
	return "unknown"
}

// ParseOrder accepts "pre", "in", "post", "level", their "...order" forms, and the digits 1-4.
func ParseOrder(s string) (Order, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "order") {
	case "pre", "1":
		return PreOrder, nil
	case "in", "2":
		return InOrder, nil
	case "post", "3":
		return PostOrder, nil
	case "level", "4":
		return LevelOrder, nil
	}
	return 0, &InvalidOrderError{s}
}

// InvalidOrderError is returned by ParseOrder.
type InvalidOrderError struct {
	Text string
}

func (e *InvalidOrderError) Error() string {
	return "unknown traversal order " + strings.TrimSpace(e.Text)
}

// CapacityError reports that a tree ran out of addressable nodes. It's the
// explicit out of memory condition of trees with a bounded index type.
type CapacityError struct {
	Max uint
}

func (e *CapacityError) Error() string {
	return "tree is full: index type can't address more than " + strconv.FormatUint(uint64(e.Max), 10) + " nodes"
}
