package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Gobd/naru"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	J       bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y       bool `cli:"name=y aliases=yaml desc='do i/o in yaml (default)'"`
	Color   bool `cli:"name=color desc='color diffs even when not writing to a terminal'"`
	NoColor bool `cli:"name=nocolor desc='never color diffs'"`

	// Defaults holds the operation options, as loaded by -config.
	Defaults naru.Config

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) format() format {
	if cfg.J {
		return formatJSON
	}
	return formatYAML
}

// useColor reports whether diffs written to w are colored.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch {
	case cfg.NoColor:
		return false
	case cfg.Color:
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// outOpt redirects command output to the file named by a; "-" keeps stdout.
// Given twice, the earlier file is closed.
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.closeOut()
	cfg.Out = a
	if a == "-" {
		cc.Out = os.Stdout
		return nil, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, fmt.Errorf("%w: -o: %w", cli.ErrUsage, err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) closeOut() {
	if cfg.CloseOut != nil {
		_ = cfg.CloseOut()
		cfg.CloseOut = nil
	}
}

func (cfg *MainConfig) configOpt(_ *cli.Context, a string) (any, error) {
	c, err := loadConfig(a, cfg.Defaults)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Defaults = c
	return c, nil
}

// loadConfig reads a YAML or JSON options file over base. Fields missing
// from the file keep their value in base.
func loadConfig(path string, base naru.Config) (naru.Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	c := base
	if err := yaml.UnmarshalWithOptions(d, &c, yaml.Strict()); err != nil {
		return base, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return c, nil
}

type RunConfig struct {
	*MainConfig

	File       string `cli:"name=f desc='input document (default stdin)'"`
	Recursive  bool   `cli:"name=r aliases=recursive desc='descend into nested containers'"`
	Keep       bool   `cli:"name=k aliases=keep desc='keep unsupported elements instead of failing'"`
	First      bool   `cli:"name=first desc='cleave text on the first divider instead of the last'"`
	AllowEmpty bool   `cli:"name=allowEmpty desc='let cleave return an empty part'"`
	Where      string `cli:"name=where desc='expression over key choosing the first part of a mapping cleave'"`
	Diff       bool   `cli:"name=diff desc='print a line diff of the input and output documents'"`
	MergePatch bool   `cli:"name=mergePatch desc='print a JSON merge patch from the input to the output document'"`

	Run *cli.Command
}

// options resolves the per-call options: the -config defaults, then flags.
func (cfg *RunConfig) options() []naru.Option {
	opts := cfg.Defaults.Options()
	if cfg.Recursive {
		opts = append(opts, naru.WithRecursive(true))
	}
	if cfg.Keep {
		opts = append(opts, naru.WithRaiseError(false))
	}
	if cfg.First {
		opts = append(opts, naru.WithReturnLast(false))
	}
	if cfg.AllowEmpty {
		opts = append(opts, naru.WithAllowEmpty(true))
	}
	return opts
}

type OpsConfig struct {
	*MainConfig

	Ops *cli.Command
}

type DocsConfig struct {
	*MainConfig

	Serve string `cli:"name=serve desc='serve the operations and their document over http at this address'"`

	Docs *cli.Command
}
