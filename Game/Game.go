package Game

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/g-m-twostay/go-dungeon/Trees"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"
)

type Outcome byte

const (
	Ongoing Outcome = iota
	Victory
	Died
)

func (o Outcome) String() string {
	switch o {
	case Victory:
		return "victory"
	case Died:
		return "died"
	}
	return "ongoing"
}

// Game is one player crawling one dungeon. It isn't safe for concurrent use.
type Game struct {
	Dungeon *Dungeon
	Player  *Player
	visited mapset.Set[int]
	out     io.Writer
	closed  bool
}

// New places a player built from cfg in the entrance of d. Messages go to out.
func New(d *Dungeon, cfg Config, out io.Writer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if d.Len() == 0 {
		return nil, ErrEmptyDungeon
	}
	g := &Game{Dungeon: d, Player: NewPlayer(cfg, out), visited: mapset.New[int](), out: out}
	g.visit(d.Entrance())
	return g, nil
}

func (u *Game) printf(format string, a ...any) {
	fmt.Fprintln(u.out, gotext.Get(format, a...))
}

func (u *Game) visit(r *Room) {
	r.Visited = true
	u.visited.Put(r.ID)
	u.Player.Room = r
}

// Visited is the number of distinct rooms the player has been in.
func (u *Game) Visited() int {
	return u.visited.Size()
}

// Outcome of the game so far.
func (u *Game) Outcome() Outcome {
	if !u.Player.Alive() {
		return Died
	}
	if u.visited.Size() == u.Dungeon.Len() && u.Dungeon.MonstersLeft() == 0 {
		return Victory
	}
	return Ongoing
}

// Status writes the current room and the player's HP.
func (u *Game) Status() {
	r := u.Player.Room
	u.printf("--- Room %d ---", r.ID)
	if r.Monster != nil {
		u.printf("Monster: %s (HP:%d)", r.Monster.Name, r.Monster.HP)
	}
	if r.Item != nil {
		u.printf("Item: %s", r.Item.Name)
	}
	u.printf("HP: %d/%d", u.Player.HP, u.Player.MaxHP)
}

// Enter the room called name. A live monster in the current room blocks the way out.
func (u *Game) Enter(name string) error {
	if u.Outcome() == Died || u.closed {
		return ErrGameOver
	}
	if u.Player.Room.Monster != nil {
		return ErrMonsterBlocks
	}
	r := u.Dungeon.RoomNamed(name)
	if r == nil {
		return &UnknownRoomError{name}
	}
	u.visit(r)
	u.Status()
	return nil
}

// Fight the monster of the current room until one side drops to 0 HP. The player strikes first.
// A defeated monster moves from the room to the player's defeated log.
// It returns whether the player won.
func (u *Game) Fight() (bool, error) {
	p := u.Player
	if !p.Alive() || u.closed {
		return false, ErrGameOver
	}
	m := p.Room.Monster
	if m == nil {
		return false, ErrNoMonster
	}
	for p.Alive() {
		m.HP -= p.Attack
		u.printf("You deal %d damage. Monster HP: %d", p.Attack, max(m.HP, 0))
		if m.HP <= 0 {
			break
		}
		p.HP -= m.Attack
		u.printf("Monster deals %d damage. Your HP: %d", m.Attack, max(p.HP, 0))
	}
	if !p.Alive() {
		u.printf("--- YOU DIED ---")
		log.Println("game: player killed by", m.Name, "in room", p.Room.ID)
		return false, nil
	}
	if err := p.Defeated.Insert(m); err != nil {
		return true, fmt.Errorf("logging defeated monster %s: %w", m.Name, err)
	}
	p.Room.Monster = nil
	u.printf("Monster defeated!")
	log.Println("game: defeated", m.Name, "in room", p.Room.ID)
	return true, nil
}

// Pickup the item of the current room. An item equal to one already in the bag stays where it is.
func (u *Game) Pickup() error {
	p := u.Player
	if !p.Alive() || u.closed {
		return ErrGameOver
	}
	r := p.Room
	if r.Monster != nil {
		return ErrMonsterBlocks
	}
	if r.Item == nil {
		return ErrNoItem
	}
	if _, found := p.Bag.Find(r.Item); found {
		return ErrDuplicateItem
	}
	if err := p.Bag.Insert(r.Item); err != nil {
		return fmt.Errorf("picking up %s: %w", r.Item.Name, err)
	}
	u.printf("picked up %s", r.Item.Name)
	r.Item = nil
	return nil
}

// ShowBag prints the bag in order o.
func (u *Game) ShowBag(o Trees.Order) {
	u.printf("=== INVENTORY ===")
	u.Player.Bag.Print(o)
}

// ShowDefeated prints the defeated log in order o.
func (u *Game) ShowDefeated(o Trees.Order) {
	u.printf("=== DEFEATED MONSTERS ===")
	u.Player.Defeated.Print(o)
}

// clearRoom fights the monster and picks up the item of the current room, if any.
func (u *Game) clearRoom() error {
	if u.Player.Room.Monster != nil {
		if won, err := u.Fight(); err != nil || !won {
			return err
		}
	}
	if u.Player.Room.Item != nil {
		if err := u.Pickup(); errors.Is(err, ErrDuplicateItem) {
			u.printf("Duplicate item.")
		} else if err != nil {
			return err
		}
	}
	return nil
}

// Crawl clears the current room, then enters the rooms of route one by one clearing each.
// It stops as soon as the outcome isn't Ongoing; Ongoing is returned if the route ends first.
func (u *Game) Crawl(route []string) (Outcome, error) {
	u.Status()
	if err := u.clearRoom(); err != nil {
		return u.Outcome(), err
	}
	if o := u.Outcome(); o != Ongoing {
		return o, nil
	}
	for _, name := range route {
		if err := u.Enter(name); err != nil {
			return u.Outcome(), err
		}
		if err := u.clearRoom(); err != nil {
			return u.Outcome(), err
		}
		if o := u.Outcome(); o != Ongoing {
			return o, nil
		}
	}
	return Ongoing, nil
}

// Banner prints the end of game banner for o. Nothing for Ongoing.
func (u *Game) Banner(o Outcome) {
	switch o {
	case Victory:
		fmt.Fprintln(u.out, "********************************************")
		u.printf("                  VICTORY!                  ")
		u.printf(" All rooms explored. All monsters defeated. ")
		fmt.Fprintln(u.out, "********************************************")
	case Died:
		u.printf("Game over after visiting %d of %d rooms.", u.Visited(), u.Dungeon.Len())
	}
}

// Close frees the player's collections and whatever is left in the dungeon. Safe to call twice.
func (u *Game) Close() {
	if u.closed {
		return
	}
	u.closed = true
	u.Player.Close()
	u.Dungeon.Free()
}
