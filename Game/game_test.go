package Game

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/g-m-twostay/go-dungeon/Trees"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestGame(t *testing.T, cfg Config, rooms ...*Room) (*Game, *bytes.Buffer) {
	t.Helper()
	d := NewDungeon(uintptr(len(rooms)))
	for _, r := range rooms {
		if err := d.AddRoom(r); err != nil {
			t.Fatalf("adding room %s: %v", r.Name, err)
		}
	}
	out := new(bytes.Buffer)
	g, err := New(d, cfg, out)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g, out
}

func bagNames(g *Game, o Trees.Order) (s []string) {
	g.Player.Bag.Walk(o, func(it *Item) {
		s = append(s, it.Name)
	})
	return
}

func defeatedNames(g *Game, o Trees.Order) (s []string) {
	g.Player.Defeated.Walk(o, func(m *Monster) {
		s = append(s, m.Name)
	})
	return
}

func TestGame_DefaultCrawl(t *testing.T) {
	d, route, err := Default()
	if err != nil {
		t.Fatalf("loading default dungeon: %v", err)
	}
	out := new(bytes.Buffer)
	g, err := New(d, DefaultConfig(), out)
	if err != nil {
		t.Fatal(err)
	}
	o, err := g.Crawl(route)
	if err != nil {
		t.Fatalf("crawl: %v", err)
	}
	if o != Victory {
		t.Fatalf("outcome %v, want victory\n%s", o, out)
	}
	if g.Player.HP != 11 {
		t.Errorf("player hp %d, want 11", g.Player.HP)
	}
	if s := bagNames(g, Trees.InOrder); !slices.Equal(s, []string{"Aegis", "Chainmail", "Excalibur", "Sword"}) {
		t.Errorf("bag inorder %v", s)
	}
	if s := bagNames(g, Trees.PreOrder); !slices.Equal(s, []string{"Sword", "Chainmail", "Aegis", "Excalibur"}) {
		t.Errorf("bag preorder %v", s)
	}
	if s := defeatedNames(g, Trees.InOrder); !slices.Equal(s, []string{"Azazel", "Shelob", "Wraith"}) {
		t.Errorf("defeated inorder %v", s)
	}
	if !strings.Contains(out.String(), "Duplicate item.") {
		t.Error("the second sword wasn't reported as a duplicate")
	}
	if r := d.RoomNamed("Hall"); r.Item == nil || r.Item.Name != "Sword" {
		t.Error("the duplicate sword should stay in the hall")
	}
	g.Close()
	g.Close()
}

func TestGame_BagDuplicates(t *testing.T) {
	g, _ := newTestGame(t, DefaultConfig(), &Room{ID: 0, Name: "Gate"})
	first, second := &Item{"Sword", Sword, 5}, &Item{"Sword", Sword, 5}
	g.Player.Bag.Insert(first)
	g.Player.Bag.Insert(second)
	if g.Player.Bag.Size() != 2 {
		t.Fatalf("bag size %d, want 2", g.Player.Bag.Size())
	}
	found, ok := g.Player.Bag.Find(&Item{"Sword", Sword, 5})
	if !ok || found != first {
		t.Error("find should return the first sword")
	}
	g.Close()
	if *first != (Item{}) || *second != (Item{}) {
		t.Error("both swords should be destroyed")
	}
}

func TestGame_Pickup(t *testing.T) {
	g, out := newTestGame(t, DefaultConfig(),
		&Room{ID: 0, Name: "Gate", Item: &Item{"Sword", Sword, 5}},
		&Room{ID: 1, Name: "Hall", Item: &Item{"Sword", Sword, 5}},
		&Room{ID: 2, Name: "Vault", Item: &Item{"Sword", Armor, 5}},
	)
	if err := g.Pickup(); err != nil {
		t.Fatal(err)
	}
	if err := g.Pickup(); !errors.Is(err, ErrNoItem) {
		t.Errorf("want ErrNoItem, got %v", err)
	}
	g.Enter("Hall")
	if err := g.Pickup(); !errors.Is(err, ErrDuplicateItem) {
		t.Errorf("want ErrDuplicateItem, got %v", err)
	}
	g.Enter("Vault")
	//same name and value, different type.
	if err := g.Pickup(); err != nil {
		t.Errorf("sword of another type should be picked up: %v", err)
	}
	if g.Player.Bag.Size() != 2 {
		t.Errorf("bag size %d, want 2", g.Player.Bag.Size())
	}
	if !strings.Contains(out.String(), "picked up Sword") {
		t.Error("pickup wasn't reported")
	}
	out.Reset()
	g.ShowBag(Trees.InOrder)
	if want := "=== INVENTORY ===\n[ARMOR] Sword - Value: 5\n[SWORD] Sword - Value: 5\n"; out.String() != want {
		t.Errorf("bag printed\n%s\nwant\n%s", out, want)
	}
}

func TestGame_MonsterBlocks(t *testing.T) {
	g, _ := newTestGame(t, DefaultConfig(),
		&Room{ID: 0, Name: "Gate", Monster: &Monster{Name: "Orc", Type: Golem, HP: 6, Attack: 1}, Item: &Item{"Shield", Armor, 2}},
		&Room{ID: 1, Name: "Hall"},
	)
	if err := g.Enter("Hall"); !errors.Is(err, ErrMonsterBlocks) {
		t.Errorf("want ErrMonsterBlocks, got %v", err)
	}
	if err := g.Pickup(); !errors.Is(err, ErrMonsterBlocks) {
		t.Errorf("want ErrMonsterBlocks, got %v", err)
	}
	won, err := g.Fight()
	if err != nil || !won {
		t.Fatalf("fight: %v, %v", won, err)
	}
	//6 -> 1, player hits back once.
	if g.Player.HP != 29 {
		t.Errorf("player hp %d, want 29", g.Player.HP)
	}
	if _, err = g.Fight(); !errors.Is(err, ErrNoMonster) {
		t.Errorf("want ErrNoMonster, got %v", err)
	}
	var ue *UnknownRoomError
	if err = g.Enter("Nowhere"); !errors.As(err, &ue) || ue.Name != "Nowhere" {
		t.Errorf("want UnknownRoomError, got %v", err)
	}
	if err = g.Enter("Hall"); err != nil {
		t.Fatal(err)
	}
	if g.Outcome() != Victory {
		t.Errorf("outcome %v, want victory", g.Outcome())
	}
}

func TestGame_Died(t *testing.T) {
	g, out := newTestGame(t, Config{MaxHP: 10, BaseAttack: 1},
		&Room{ID: 0, Name: "Gate"},
		&Room{ID: 1, Name: "Pit", Monster: &Monster{Name: "Naga", Type: Cobra, HP: 50, Attack: 4}},
	)
	o, err := g.Crawl([]string{"Pit"})
	if err != nil {
		t.Fatal(err)
	}
	if o != Died {
		t.Fatalf("outcome %v, want died", o)
	}
	if !strings.Contains(out.String(), "--- YOU DIED ---") {
		t.Error("death wasn't reported")
	}
	if g.Player.Defeated.Size() != 0 {
		t.Error("a monster that won shouldn't be in the defeated log")
	}
	if err = g.Enter("Gate"); !errors.Is(err, ErrGameOver) {
		t.Errorf("want ErrGameOver, got %v", err)
	}
	naga := g.Dungeon.RoomNamed("Pit").Monster
	g.Close()
	if *naga != (Monster{}) {
		t.Error("the monster left in the room wasn't destroyed")
	}
}

func TestGame_Ongoing(t *testing.T) {
	g, _ := newTestGame(t, DefaultConfig(),
		&Room{ID: 0, Name: "Gate"},
		&Room{ID: 1, Name: "Hall"},
		&Room{ID: 2, Name: "Attic"},
	)
	o, err := g.Crawl([]string{"Hall"})
	if err != nil || o != Ongoing {
		t.Errorf("crawl gave %v, %v, want ongoing", o, err)
	}
	if g.Visited() != 2 {
		t.Errorf("visited %d rooms, want 2", g.Visited())
	}
}

func TestGame_Defeated(t *testing.T) {
	g, out := newTestGame(t, Config{MaxHP: 100, BaseAttack: 10},
		&Room{ID: 0, Name: "A", Monster: &Monster{Name: "Orc", Type: Golem, HP: 10, Attack: 1}},
		&Room{ID: 1, Name: "B", Monster: &Monster{Name: "Bat", Type: Phantom, HP: 20, Attack: 1}},
		&Room{ID: 2, Name: "C", Monster: &Monster{Name: "Orc", Type: Golem, HP: 30, Attack: 1}},
	)
	if o, err := g.Crawl([]string{"B", "C"}); err != nil || o != Victory {
		t.Fatalf("crawl gave %v, %v", o, err)
	}
	out.Reset()
	g.ShowDefeated(Trees.PostOrder)
	//Orc(0) is the root, Bat(0) left, Orc(0) again right: ties go right.
	want := "=== DEFEATED MONSTERS ===\n" +
		"[Bat] Type: Phantom, Attack: 1, HP: 0\n" +
		"[Orc] Type: Golem, Attack: 1, HP: 0\n" +
		"[Orc] Type: Golem, Attack: 1, HP: 0\n"
	if out.String() != want {
		t.Errorf("defeated printed\n%s\nwant\n%s", out, want)
	}
	if s := defeatedNames(g, Trees.LevelOrder); !slices.Equal(s, []string{"Orc", "Bat", "Orc"}) {
		t.Errorf("levelorder %v", s)
	}
}

func TestNew_Invalid(t *testing.T) {
	d := NewDungeon(0)
	if _, err := New(d, DefaultConfig(), io.Discard); !errors.Is(err, ErrEmptyDungeon) {
		t.Errorf("want ErrEmptyDungeon, got %v", err)
	}
	d.AddRoom(&Room{Name: "Gate"})
	for _, cfg := range []Config{{0, 5}, {30, 0}, {-1, -1}} {
		if _, err := New(d, cfg, io.Discard); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("config %+v: want ErrInvalidConfig, got %v", cfg, err)
		}
	}
}

func TestCompareItems(t *testing.T) {
	a := []*Item{
		{"Sword", Sword, 5}, {"Axe", Sword, 9}, {"Sword", Armor, 5}, {"Sword", Sword, 3},
	}
	slices.SortFunc(a, CompareItems)
	want := []Item{{"Axe", Sword, 9}, {"Sword", Sword, 3}, {"Sword", Armor, 5}, {"Sword", Sword, 5}}
	for i := range a {
		if *a[i] != want[i] {
			t.Errorf("item %d is %+v, want %+v", i, *a[i], want[i])
		}
	}
	if CompareItems(&Item{"Sword", Sword, 5}, &Item{"Sword", Sword, 5}) != 0 {
		t.Error("equal items don't compare equal")
	}
}

func TestCompareMonsters(t *testing.T) {
	a := []*Monster{
		{Name: "Orc", HP: 5, Attack: 2}, {Name: "Orc", HP: 5, Attack: 1}, {Name: "Bat", HP: 9}, {Name: "Orc", HP: 1, Attack: 9},
	}
	slices.SortFunc(a, CompareMonsters)
	var got []Monster
	for _, m := range a {
		got = append(got, *m)
	}
	want := []Monster{{Name: "Bat", HP: 9}, {Name: "Orc", HP: 1, Attack: 9}, {Name: "Orc", HP: 5, Attack: 1}, {Name: "Orc", HP: 5, Attack: 2}}
	if !slices.Equal(got, want) {
		t.Errorf("sorted %+v", got)
	}
}

func TestPrinters(t *testing.T) {
	out := new(bytes.Buffer)
	ItemPrinter(out)(&Item{"Excalibur", Sword, 9})
	ItemPrinter(out)(nil)
	MonsterPrinter(out)(&Monster{Name: "Wraith", Type: Phantom, HP: 4, Attack: 3})
	MonsterPrinter(out)(nil)
	want := "[SWORD] Excalibur - Value: 9\n[Wraith] Type: Phantom, Attack: 3, HP: 4\n"
	if out.String() != want {
		t.Errorf("printed\n%s\nwant\n%s", out, want)
	}
	DestroyItem(nil)
	DestroyMonster(nil)
}
