package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
)

type cmdCheck struct {
	dungeonFlags
	out io.Writer
}

func (cmd *cmdCheck) Name() string     { return "check" }
func (cmd *cmdCheck) Synopsis() string { return "Validate a dungeon file" }
func (cmd *cmdCheck) Usage() string    { return "check [-dungeon file]\n" }

func (cmd *cmdCheck) SetFlags(f *flag.FlagSet) {
	cmd.dungeonFlags.setFlags(f)
}

func (cmd *cmdCheck) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	cmd.setup()
	d, route, err := cmd.load()
	if err != nil {
		fmt.Fprintln(f.Output(), err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(cmd.out, "%d rooms, %d monsters, %d steps\n", d.Len(), d.MonstersLeft(), len(route))
	d.Free()
	return subcommands.ExitSuccess
}
