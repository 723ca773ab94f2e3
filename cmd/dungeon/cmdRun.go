package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/g-m-twostay/go-dungeon/Game"
	"github.com/g-m-twostay/go-dungeon/Trees"
	"github.com/google/subcommands"
)

type cmdRun struct {
	dungeonFlags
	argHP     int
	argAttack int
	argOrder  string
	out       io.Writer
}

func (cmd *cmdRun) Name() string     { return "run" }
func (cmd *cmdRun) Synopsis() string { return "Crawl the dungeon along its route" }
func (cmd *cmdRun) Usage() string {
	return "run [-dungeon file] [-hp n] [-attack n] [-order pre|in|post|level] [-v]\n"
}

func (cmd *cmdRun) SetFlags(f *flag.FlagSet) {
	cmd.dungeonFlags.setFlags(f)
	def := Game.DefaultConfig()
	f.IntVar(&cmd.argHP, "hp", def.MaxHP, "Max HP of the player")
	f.IntVar(&cmd.argAttack, "attack", def.BaseAttack, "Attack of the player")
	f.StringVar(&cmd.argOrder, "order", "in", "Order the bag and the defeated monsters are printed in")
}

func (cmd *cmdRun) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	cmd.setup()
	o, err := Trees.ParseOrder(cmd.argOrder)
	if err != nil {
		fmt.Fprintln(f.Output(), err)
		return subcommands.ExitUsageError
	}
	if err = cmd.run(o); err != nil {
		log.Println("run failed:", err)
		fmt.Fprintln(f.Output(), err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (cmd *cmdRun) run(o Trees.Order) error {
	d, route, err := cmd.load()
	if err != nil {
		return err
	}
	g, err := Game.New(d, Game.Config{MaxHP: cmd.argHP, BaseAttack: cmd.argAttack}, cmd.out)
	if err != nil {
		d.Free()
		return err
	}
	defer g.Close()
	outcome, err := g.Crawl(route)
	if err != nil {
		return err
	}
	log.Println("crawl ended:", outcome)
	g.ShowBag(o)
	g.ShowDefeated(o)
	g.Banner(outcome)
	return nil
}
