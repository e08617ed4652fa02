package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
)

func naruMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer cfg.closeOut()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.check(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	return runSub(cfg.Main, cc, args[0], args[1:])
}

// runSub runs the named subcommand. Usage errors print the subcommand's
// usage and exit with its code.
func runSub(root *cli.Command, cc *cli.Context, name string, args []string) error {
	sub := root.FindSub(cc, name)
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, name)
	}
	err := sub.Run(cc, args)
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// exclusive is a set of flags of which at most one may be given.
type exclusive struct {
	names []string
	set   []bool
}

func (e exclusive) check() error {
	n := 0
	for _, v := range e.set {
		if v {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("%w: %s are exclusive", cli.ErrUsage, strings.Join(e.names, " and "))
	}
	return nil
}

// check rejects contradictory global flags.
func (cfg *MainConfig) check() error {
	for _, e := range []exclusive{
		{names: []string{"-j[son]", "-y[aml]"}, set: []bool{cfg.J, cfg.Y}},
		{names: []string{"-color", "-nocolor"}, set: []bool{cfg.Color, cfg.NoColor}},
	} {
		if err := e.check(); err != nil {
			return err
		}
	}
	return nil
}
