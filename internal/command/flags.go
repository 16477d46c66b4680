// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/csvcompare/internal/output"
)

// DefaultLimit is the number of differing keys reported when --limit is not
// given anywhere.
const DefaultLimit = 10

// NewCompareFlags builds the flag set of the root command. params[0] is the
// config namespace and params[1] the config file; when both are present each
// flag also falls back to "<ns>.<name>" then "<name>" in that file.
func NewCompareFlags(params ...string) (flags []cli.Flag) {
	limit := &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "stop after this many differing keys",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CSVCOMPARE_LIMIT"),
		),
		Value: DefaultLimit,
	}

	out := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format: text, json, yaml, table or delta",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CSVCOMPARE_OUTPUT"),
		),
		Value: output.Formats[0],
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	color := &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored output when stdout is a terminal",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CSVCOMPARE_COLOR"),
		),
		Value: false,
	}

	ignore := &cli.StringFlag{
		Name:    "ignore",
		Aliases: []string{"i"},
		Usage:   "comma-separated list of columns left out of the comparison",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CSVCOMPARE_IGNORE"),
		),
	}

	filter := &cli.StringFlag{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "only compare keys where either row matches these column filters",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CSVCOMPARE_FILTER"),
		),
	}

	sheet := &cli.StringFlag{
		Name:  "sheet",
		Usage: "worksheet to read from .xlsx inputs (default first sheet)",
	}

	if len(params) == 2 && params[1] != "" {
		for _, f := range []cli.Flag{limit, out, color, ignore, filter} {
			NameSpacedValueChainFromConfigFile(params[0], params[1], f)
		}
	}

	flags = []cli.Flag{limit, out, color, ignore, filter, sheet}
	flags = append(flags, NewAWSFlags()...)
	return
}

// NewAWSFlags returns the flags used to build the S3 client for s3:// inputs.
// Unset values fall through to the usual AWS environment chain.
func NewAWSFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "profile",
			Usage: "AWS shared config profile for s3:// inputs",
		},
		&cli.StringFlag{
			Name:  "region",
			Usage: "AWS region for s3:// inputs",
		},
		&cli.StringFlag{
			Name:  "endpoint",
			Usage: "S3-compatible endpoint URL for s3:// inputs",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CSVCOMPARE_S3_ENDPOINT"),
			),
		},
	}
}

// NameSpacedValueChainFromConfigFile adds namespaced and global config file
// sources to the flag's Sources chain. Flags of other types are left alone.
func NameSpacedValueChainFromConfigFile(ns string, path string, flag cli.Flag) cli.Flag {
	var chain *cli.ValueSourceChain
	switch f := flag.(type) {
	case *cli.StringFlag:
		chain = &f.Sources
	case *cli.IntFlag:
		chain = &f.Sources
	case *cli.BoolFlag:
		chain = &f.Sources
	default:
		return flag
	}

	name := flag.Names()[0]
	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))

	return flag
}
