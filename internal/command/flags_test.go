// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestNewCompareFlags_ConfigSources(t *testing.T) {
	flags := NewCompareFlags(Namespace, "/tmp/csv-compare.yaml")

	for _, f := range flags {
		switch tf := f.(type) {
		case *cli.IntFlag:
			// env + namespaced + bare
			assert.Len(t, tf.Sources.Chain, 3, tf.Name)
		case *cli.StringFlag:
			switch tf.Name {
			case "output", "ignore", "filter":
				assert.Len(t, tf.Sources.Chain, 3, tf.Name)
			}
		case *cli.BoolFlag:
			assert.Len(t, tf.Sources.Chain, 3, tf.Name)
		}
	}
}

func TestNewCompareFlags_NoConfigFile(t *testing.T) {
	flags := NewCompareFlags(Namespace, "")

	for _, f := range flags {
		if sf, ok := f.(*cli.IntFlag); ok {
			assert.Len(t, sf.Sources.Chain, 1)
			assert.Equal(t, DefaultLimit, sf.Value)
		}
	}
}

func TestNameSpacedValueChainFromConfigFile_NoNamespace(t *testing.T) {
	flag := &cli.StringFlag{Name: "output"}
	NameSpacedValueChainFromConfigFile("", "/tmp/x.yaml", flag)
	assert.Len(t, flag.Sources.Chain, 1)
}

func TestOutputValidator(t *testing.T) {
	for _, v := range []string{"text", "json", "yaml", "table", "delta"} {
		assert.NoError(t, FlagValidators(v, OutputValidator), v)
	}
	assert.Error(t, OutputValidator("raw"))
	assert.Error(t, OutputValidator(42))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b,"))
	assert.Empty(t, splitList(""))
}
