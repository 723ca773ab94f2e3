package Game

import "errors"

var (
	ErrNoMonster     = errors.New("no monster")
	ErrNoItem        = errors.New("no item here")
	ErrMonsterBlocks = errors.New("kill monster first")
	ErrDuplicateItem = errors.New("duplicate item")
	ErrEmptyDungeon  = errors.New("dungeon has no rooms")
	ErrInvalidConfig = errors.New("invalid config")
	ErrGameOver      = errors.New("game is over")
)

type InvalidTypeError struct {
	Kind, Text string
}

func (e *InvalidTypeError) Error() string {
	return "unknown " + e.Kind + " type " + e.Text
}

// DuplicateRoomError is returned when a room reuses the ID or the name of another room.
type DuplicateRoomError struct {
	ID   int
	Name string
}

func (e *DuplicateRoomError) Error() string {
	if e.Name != "" {
		return "room name " + e.Name + " is taken"
	}
	return "room id is taken"
}

type UnknownRoomError struct {
	Name string
}

func (e *UnknownRoomError) Error() string {
	return "no room named " + e.Name
}
