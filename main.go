// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tfctl/csvcompare/internal/command"
	"github.com/tfctl/csvcompare/internal/config"
	"github.com/tfctl/csvcompare/internal/log"
	"github.com/tfctl/csvcompare/internal/version"
)

var ctx = context.Background()

// valueFlags maps every flag spelling that consumes the following argument to
// its canonical name.
var valueFlags = map[string]string{
	"--limit":    "limit",
	"-n":         "limit",
	"--output":   "output",
	"-o":         "output",
	"--ignore":   "ignore",
	"-i":         "ignore",
	"--filter":   "filter",
	"-f":         "filter",
	"--sheet":    "sheet",
	"--profile":  "profile",
	"--region":   "region",
	"--endpoint": "endpoint",
}

// boolFlags maps short and long spellings of value-less flags to one name so
// duplicates collapse.
var boolFlags = map[string]string{
	"--color": "color",
	"-c":      "color",
	"--help":  "help",
	"-h":      "help",
}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(w io.Writer, args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(w, version.String())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no arguments are provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(os.Stdout, args) {
		return 0
	}

	args = handleNakedCommand(args)

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	args = hoistFlags(args)
	log.Debugf("args after hoisting: args=%v", args)

	return initAndRunApp(args)
}

// processSetOnly expands every @name argument in place with the entries of
// the sets.<name> config list. Each entry is split on whitespace, so
// "--limit 100" becomes two arguments. Unknown sets expand to nothing.
func processSetOnly(args []string) []string {
	if len(args) < 2 {
		return args
	}

	out := []string{args[0]}
	for i, a := range args[1:] {
		if a == "--" {
			out = append(out, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(a, "@") || len(a) == 1 {
			out = append(out, a)
			continue
		}

		setArgs, err := config.GetStringSlice("sets." + a[1:])
		if err != nil {
			log.Warnf("ignoring set %s: %v", a, err)
			continue
		}
		for _, arg := range setArgs {
			out = append(out, strings.Fields(arg)...)
		}
	}
	return out
}

// hoistFlags moves flags, and the values of flags that take one, ahead of the
// positional arguments so they may be given in any position. When a flag is
// repeated the last occurrence wins; set expansions therefore act as defaults
// that later explicit flags override. Everything after "--" is positional.
func hoistFlags(args []string) []string {
	if len(args) < 2 {
		return args
	}

	type flag struct {
		name   string
		tokens []string
	}

	var (
		flags       []flag
		positionals []string
		terminated  bool
	)

	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		switch {
		case a == "--":
			terminated = true
			positionals = append(positionals, rest[i+1:]...)
			i = len(rest)
		case a == "-" || !strings.HasPrefix(a, "-"):
			positionals = append(positionals, a)
		default:
			spelled, _, hasValue := strings.Cut(a, "=")
			name := spelled
			if canonical, ok := boolFlags[spelled]; ok {
				name = canonical
			}
			f := flag{name: name, tokens: []string{a}}
			if canonical, ok := valueFlags[spelled]; ok {
				f.name = canonical
				if !hasValue && i+1 < len(rest) {
					i++
					f.tokens = append(f.tokens, rest[i])
				}
			}
			flags = append(flags, f)
		}
	}

	// Keep the last occurrence of each flag in its relative position.
	lastIdx := make(map[string]int, len(flags))
	for i, f := range flags {
		lastIdx[f.name] = i
	}

	out := []string{args[0]}
	for i, f := range flags {
		if lastIdx[f.name] == i {
			out = append(out, f.tokens...)
		}
	}
	if terminated {
		out = append(out, "--")
	}
	return append(out, positionals...)
}
