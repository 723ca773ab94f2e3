package Game

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

//go:embed default.json
var defaultDungeon []byte

type fileItem struct {
	Name  string   `json:"name"`
	Type  ItemType `json:"type"`
	Value int      `json:"value"`
}

type fileMonster struct {
	Name   string      `json:"name"`
	Type   MonsterType `json:"type"`
	HP     int         `json:"hp"`
	MaxHP  int         `json:"maxHp,omitempty"`
	Attack int         `json:"attack"`
}

type fileRoom struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Monster *fileMonster `json:"monster,omitempty"`
	Item    *fileItem    `json:"item,omitempty"`
}

type file struct {
	Rooms []fileRoom `json:"rooms"`
	Route []string   `json:"route"`
}

// Load a dungeon and its route from JSON. The route is a list of room names.
//
//	{"rooms": [{"id": 0, "name": "Gate", "item": {"name": "Sword", "type": "SWORD", "value": 5}},
//	           {"id": 1, "name": "Hall", "monster": {"name": "Orc", "type": "Golem", "hp": 8, "attack": 2}}],
//	 "route": ["Hall"]}
func Load(r io.Reader) (*Dungeon, []string, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, nil, fmt.Errorf("decoding dungeon: %w", err)
	}
	if len(f.Rooms) == 0 {
		return nil, nil, ErrEmptyDungeon
	}
	d := NewDungeon(uintptr(len(f.Rooms)))
	for i := range f.Rooms {
		room, err := f.Rooms[i].build()
		if err == nil {
			err = d.AddRoom(room)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("room %d: %w", i, err)
		}
	}
	for i, name := range f.Route {
		if d.RoomNamed(name) == nil {
			return nil, nil, fmt.Errorf("route step %d: %w", i, &UnknownRoomError{name})
		}
	}
	return d, f.Route, nil
}

// Default is the dungeon built into the binary.
func Default() (*Dungeon, []string, error) {
	return Load(bytes.NewReader(defaultDungeon))
}

func (u *fileRoom) build() (*Room, error) {
	if strings.TrimSpace(u.Name) == "" {
		return nil, errors.New("room without a name")
	}
	r := &Room{ID: u.ID, Name: u.Name}
	if m := u.Monster; m != nil {
		if m.Name == "" || m.HP <= 0 || m.Attack < 0 {
			return nil, fmt.Errorf("monster %q needs a name, positive hp and non negative attack", m.Name)
		}
		if m.MaxHP < m.HP {
			m.MaxHP = m.HP
		}
		r.Monster = &Monster{Name: m.Name, Type: m.Type, HP: m.HP, MaxHP: m.MaxHP, Attack: m.Attack}
	}
	if it := u.Item; it != nil {
		if it.Name == "" {
			return nil, errors.New("item without a name")
		}
		r.Item = &Item{Name: it.Name, Type: it.Type, Value: it.Value}
	}
	return r, nil
}
