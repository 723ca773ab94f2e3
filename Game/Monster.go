package Game

import (
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"
)

type MonsterType byte

const (
	Phantom MonsterType = iota
	Spider
	Demon
	Golem
	Cobra
)

var monsterNames = [...]string{"Phantom", "Spider", "Demon", "Golem", "Cobra"}

func (t MonsterType) String() string {
	if int(t) < len(monsterNames) {
		return monsterNames[t]
	}
	return "MonsterType(" + strconv.Itoa(int(t)) + ")"
}

func (t MonsterType) MarshalText() ([]byte, error) {
	if int(t) >= len(monsterNames) {
		return nil, &InvalidTypeError{"monster", t.String()}
	}
	return []byte(t.String()), nil
}

// UnmarshalText accepts the type name in any case or its number.
func (t *MonsterType) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(monsterNames) {
		*t = MonsterType(n)
		return nil
	}
	for i, name := range monsterNames {
		if strings.EqualFold(s, name) {
			*t = MonsterType(i)
			return nil
		}
	}
	return &InvalidTypeError{"monster", string(b)}
}

// Monster guards a room until defeated, then it's a payload of the defeated log.
type Monster struct {
	Name   string
	Type   MonsterType
	HP     int
	MaxHP  int
	Attack int
}

// CompareMonsters orders monsters by name, then HP, then attack.
func CompareMonsters(a, b *Monster) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := cmp.Compare(a.HP, b.HP); c != 0 {
		return c
	}
	return cmp.Compare(a.Attack, b.Attack)
}

// MonsterPrinter returns the defeated log printer writing to w.
func MonsterPrinter(w io.Writer) func(*Monster) {
	return func(m *Monster) {
		if m == nil {
			return
		}
		fmt.Fprintln(w, gotext.Get("[%s] Type: %s, Attack: %d, HP: %d", m.Name, m.Type, m.Attack, m.HP))
	}
}

// DestroyMonster releases what the monster holds. Safe on nil.
func DestroyMonster(m *Monster) {
	if m == nil {
		return
	}
	*m = Monster{}
}
