package Game

import (
	"fmt"
	"io"
	"log"

	"github.com/g-m-twostay/go-dungeon/Trees"
)

// Config of a new player.
type Config struct {
	MaxHP      int
	BaseAttack int
}

func DefaultConfig() Config {
	return Config{MaxHP: 30, BaseAttack: 5}
}

// Validate the config. A player without attack could never end a fight.
func (c Config) Validate() error {
	if c.MaxHP <= 0 {
		return fmt.Errorf("%w: max hp %d must be positive", ErrInvalidConfig, c.MaxHP)
	}
	if c.BaseAttack <= 0 {
		return fmt.Errorf("%w: base attack %d must be positive", ErrInvalidConfig, c.BaseAttack)
	}
	return nil
}

// Player carries two ordered collections: the bag of items and the log of defeated monsters.
// Each is created once with its own callbacks and owns its payloads until Close.
type Player struct {
	HP, MaxHP, Attack int
	Bag               Trees.Tree[*Item]
	Defeated          Trees.Tree[*Monster]
	Room              *Room
}

// NewPlayer from cfg. Both collections print to w.
func NewPlayer(cfg Config, w io.Writer) *Player {
	return &Player{
		HP:       cfg.MaxHP,
		MaxHP:    cfg.MaxHP,
		Attack:   cfg.BaseAttack,
		Bag:      Trees.New(CompareItems, ItemPrinter(w), DestroyItem),
		Defeated: Trees.NewArr[*Monster, uint32](8, CompareMonsters, MonsterPrinter(w), DestroyMonster),
	}
}

func (u *Player) Alive() bool {
	return u.HP > 0
}

// Close frees both collections, destroying every payload they own.
func (u *Player) Close() {
	log.Println("player: freeing", u.Bag.Size(), "items and", u.Defeated.Size(), "defeated monsters")
	u.Bag.Free()
	u.Defeated.Free()
}
