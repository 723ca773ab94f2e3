package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
)

type cmdShow struct {
	dungeonFlags
	out io.Writer
}

func (cmd *cmdShow) Name() string     { return "show" }
func (cmd *cmdShow) Synopsis() string { return "Print the room legend" }
func (cmd *cmdShow) Usage() string    { return "show [-dungeon file]\n" }

func (cmd *cmdShow) SetFlags(f *flag.FlagSet) {
	cmd.dungeonFlags.setFlags(f)
}

func (cmd *cmdShow) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	cmd.setup()
	d, _, err := cmd.load()
	if err != nil {
		fmt.Fprintln(f.Output(), err)
		return subcommands.ExitFailure
	}
	d.Legend(cmd.out)
	d.Free()
	return subcommands.ExitSuccess
}
