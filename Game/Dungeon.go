package Game

import (
	"fmt"
	"io"
	"log"

	"github.com/alphadose/haxmap"
	"github.com/cespare/xxhash"
	"github.com/cornelk/hashmap"
	"github.com/leonelquinteros/gotext"
)

const (
	legendMonster = 'M'
	legendItem    = 'I'
	legendPresent = 'V'
	legendAbsent  = 'X'
)

// Room holds at most one monster and one item. Both are owned by the room
// until the player takes them.
type Room struct {
	ID      int
	Name    string
	Monster *Monster
	Item    *Item
	Visited bool
}

// Dungeon is the set of rooms, looked up by ID or by name.
// Rooms keep the order they were added in; the first one is the entrance.
type Dungeon struct {
	byID   *hashmap.Map[int, *Room]
	byName *haxmap.Map[string, int]
	order  []int
}

func hashName(s string) uintptr {
	return uintptr(xxhash.Sum64String(s))
}

// NewDungeon with room for size rooms before the indexes grow.
func NewDungeon(size uintptr) *Dungeon {
	size = max(size, 8)
	d := &Dungeon{
		byID:   hashmap.NewSized[int, *Room](size),
		byName: haxmap.New[string, int](size),
		order:  make([]int, 0, size),
	}
	d.byName.SetHasher(hashName)
	return d
}

// AddRoom r to the dungeon. The dungeon owns r's monster and item from now on.
func (u *Dungeon) AddRoom(r *Room) error {
	if _, in := u.byID.Get(r.ID); in {
		return &DuplicateRoomError{ID: r.ID}
	}
	if _, in := u.byName.Get(r.Name); in {
		return &DuplicateRoomError{ID: r.ID, Name: r.Name}
	}
	u.byID.Set(r.ID, r)
	u.byName.Set(r.Name, r.ID)
	u.order = append(u.order, r.ID)
	return nil
}

// Room with the given ID, nil if there's none.
func (u *Dungeon) Room(id int) *Room {
	r, _ := u.byID.Get(id)
	return r
}

// RoomNamed name, nil if there's none.
func (u *Dungeon) RoomNamed(name string) *Room {
	if id, in := u.byName.Get(name); in {
		return u.Room(id)
	}
	return nil
}

// Entrance is the first room added, nil for an empty dungeon.
func (u *Dungeon) Entrance() *Room {
	if len(u.order) == 0 {
		return nil
	}
	return u.Room(u.order[0])
}

func (u *Dungeon) Len() int {
	return len(u.order)
}

// Rooms calls f on every room in the order they were added until f returns false.
func (u *Dungeon) Rooms(f func(*Room) bool) {
	for _, id := range u.order {
		if !f(u.Room(id)) {
			return
		}
	}
}

// MonstersLeft is the number of rooms still guarded by a monster.
func (u *Dungeon) MonstersLeft() (n int) {
	u.Rooms(func(r *Room) bool {
		if r.Monster != nil {
			n++
		}
		return true
	})
	return
}

// Legend writes which rooms still hold a monster or an item.
func (u *Dungeon) Legend(w io.Writer) {
	fmt.Fprintln(w, gotext.Get("=== ROOM LEGEND ==="))
	u.Rooms(func(r *Room) bool {
		m, i := byte(legendAbsent), byte(legendAbsent)
		if r.Monster != nil {
			m = legendPresent
		}
		if r.Item != nil {
			i = legendPresent
		}
		fmt.Fprintln(w, gotext.Get("ID %d: [%c:%c] [%c:%c] %s", r.ID, legendMonster, m, legendItem, i, r.Name))
		return true
	})
	fmt.Fprintln(w, "===================")
}

// Free destroys the monsters and items still lying in rooms.
func (u *Dungeon) Free() {
	n := 0
	u.Rooms(func(r *Room) bool {
		if r.Monster != nil {
			DestroyMonster(r.Monster)
			r.Monster = nil
			n++
		}
		if r.Item != nil {
			DestroyItem(r.Item)
			r.Item = nil
			n++
		}
		return true
	})
	if n > 0 {
		log.Println("dungeon: freed", n, "payloads left in rooms")
	}
}
