package Game

import (
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"
)

type ItemType byte

const (
	Armor ItemType = iota
	Sword
)

func (t ItemType) String() string {
	switch t {
	case Armor:
		return "ARMOR"
	case Sword:
		return "SWORD"
	}
	return "ItemType(" + strconv.Itoa(int(t)) + ")"
}

func (t ItemType) MarshalText() ([]byte, error) {
	if t > Sword {
		return nil, &InvalidTypeError{"item", t.String()}
	}
	return []byte(t.String()), nil
}

// UnmarshalText accepts the type name in any case or its number.
func (t *ItemType) UnmarshalText(b []byte) error {
	switch s := strings.ToUpper(strings.TrimSpace(string(b))); s {
	case "ARMOR", "0":
		*t = Armor
	case "SWORD", "1":
		*t = Sword
	default:
		return &InvalidTypeError{"item", string(b)}
	}
	return nil
}

// Item is a payload of the player's bag.
type Item struct {
	Name  string
	Type  ItemType
	Value int
}

// CompareItems orders items by name, then value, then type.
func CompareItems(a, b *Item) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	return cmp.Compare(a.Type, b.Type)
}

// ItemPrinter returns the bag printer writing to w.
func ItemPrinter(w io.Writer) func(*Item) {
	return func(it *Item) {
		if it == nil {
			return
		}
		fmt.Fprintln(w, gotext.Get("[%s] %s - Value: %d", it.Type, it.Name, it.Value))
	}
}

// DestroyItem releases what the item holds. Safe on nil.
func DestroyItem(it *Item) {
	if it == nil {
		return
	}
	*it = Item{}
}
