// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestDocFlags(t *testing.T) {
	flags := docFlags([]cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "format"},
		&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "max", Value: 10},
		&cli.StringFlag{Name: "endpoint", Usage: "url"},
	})

	require.Len(t, flags, 3)
	assert.Equal(t, "endpoint", flags[0].ID)
	assert.Equal(t, "--endpoint", flags[0].Syntax)
	assert.Equal(t, "limit", flags[1].ID)
	assert.Equal(t, "-n, --limit", flags[1].Syntax)
	assert.Equal(t, "max", flags[1].Description)
	assert.Equal(t, "-o, --output", flags[2].Syntax)
}

func TestBuildDataAndRender(t *testing.T) {
	data, err := buildData("1.2.3")
	require.NoError(t, err)
	assert.NotEmpty(t, data.Examples)
	assert.NotEmpty(t, data.Flags)

	var md bytes.Buffer
	require.NoError(t, render(&md, markdownTemplate, data))
	assert.Contains(t, md.String(), "# csv-compare")
	assert.Contains(t, md.String(), "`-n, --limit`")
	assert.Contains(t, md.String(), "csv-compare old.csv new.csv ID")
	assert.Contains(t, md.String(), "version 1.2.3")

	var man bytes.Buffer
	require.NoError(t, render(&man, manTemplate, data))
	assert.Contains(t, man.String(), ".TH csv-compare 1")
	assert.Contains(t, man.String(), ".B -o, --output")
}
