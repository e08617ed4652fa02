package main

import (
	"github.com/Gobd/naru"
	"github.com/scott-cotton/cli"
)

const version = "0.1.0"

func MainCommand() *cli.Command {
	cfg := &MainConfig{Defaults: naru.Defaults()}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "config",
			Description: "yaml or json file of operation options (recursive, raise_error, return_last, allow_empty)",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "naru").
		WithSynopsis("naru [opts] command [opts]").
		WithDescription("naru transforms the names and collections in yaml and json documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return naruMain(cfg, cc, args)
		}).
		WithSubs(
			RunCommand(cfg),
			OpsCommand(cfg),
			DocsCommand(cfg))
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Run, "run").
		WithAliases("r").
		WithSynopsis("run [opts] <operation> [params]").
		WithDescription(runDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

const runDescription = `run applies one operation to a yaml or json document.

The document is read from -f or stdin and the result is written in the same
format. Parameters follow the operation name in call order:

  naru run snakify -f columns.yaml
  naru run add-prefix -r tmp _ < schema.json
  naru run cleave 2 -f pair.yaml
  naru run cleave -where 'key startsWith "db_"' -f settings.yaml

Run 'naru ops' for the operations and 'naru ops <operation>' for their
parameters.`

func OpsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OpsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Ops, "ops").
		WithAliases("o").
		WithSynopsis("ops [operation]").
		WithDescription("list operations, or describe the parameters of one").
		WithRun(func(cc *cli.Context, args []string) error {
			return ops(cfg, cc, args)
		})
}

func DocsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DocsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Docs, "docs").
		WithSynopsis("docs [-serve addr]").
		WithDescription("print the OpenAPI document of every operation, or serve the operations and the document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return docs(cfg, cc, args)
		})
}
