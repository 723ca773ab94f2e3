package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/g-m-twostay/go-dungeon/Game"
	"github.com/google/subcommands"
	"github.com/leonelquinteros/gotext"
)

func main() {
	subcommands.Register(&cmdRun{out: os.Stdout}, "")
	subcommands.Register(&cmdCheck{out: os.Stdout}, "")
	subcommands.Register(&cmdShow{out: os.Stdout}, "")
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	flag.Parse()
	log.SetPrefix("dungeon: ")
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

// dungeonFlags are shared by every command that reads a dungeon.
type dungeonFlags struct {
	argDungeon string
	argLocales string
	argLang    string
	argVerbose bool
}

func (d *dungeonFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&d.argDungeon, "dungeon", "", "JSON dungeon file, the built in dungeon if empty")
	f.StringVar(&d.argLocales, "locales", "", "Directory of message catalogs")
	f.StringVar(&d.argLang, "lang", "en_US", "Language of the messages, used with -locales")
	f.BoolVar(&d.argVerbose, "v", false, "Log to stderr")
}

// setup applies the logging and locale flags.
func (d *dungeonFlags) setup() {
	if d.argVerbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
	if d.argLocales != "" {
		gotext.Configure(d.argLocales, d.argLang, "default")
	}
}

func (d *dungeonFlags) load() (*Game.Dungeon, []string, error) {
	if d.argDungeon == "" {
		return Game.Default()
	}
	f, err := os.Open(d.argDungeon)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Game.Load(f)
}
