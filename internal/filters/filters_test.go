// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/csvcompare/internal/tabular"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testParseCase represents a single test case for TestParse.
type testParseCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	Delimiter string   `yaml:"delimiter"`
	Want      []Filter `yaml:"want"`
	WantCount int      `yaml:"wantCount"`
	WantErr   bool     `yaml:"wantErr"`
}

// testMatchCase represents a single test case for TestFilterMatch.
type testMatchCase struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Filter Filter `yaml:"filter"`
	Want   bool   `yaml:"want"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestParse(t *testing.T) {
	var tests []testParseCase
	require.NoError(t, loadTestData("parse.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			if tt.Delimiter != "" {
				t.Setenv("CSVCOMPARE_FILTER_DELIM", tt.Delimiter)
			}

			got, err := Parse(tt.Spec)
			if tt.WantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.WantCount)
			for i, filter := range tt.Want {
				assert.Equal(t, filter.Column, got[i].Column)
				assert.Equal(t, filter.Operand, got[i].Operand)
				assert.Equal(t, filter.Value, got[i].Value)
				assert.Equal(t, filter.Negate, got[i].Negate)
			}
		})
	}
}

func TestFilterMatch(t *testing.T) {
	var tests []testMatchCase
	require.NoError(t, loadTestData("match.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, tt.Filter.Match(tt.Value))
		})
	}
}

func TestSetMatch(t *testing.T) {
	set, err := Parse("Region^eu,Amount>100")
	require.NoError(t, err)

	assert.True(t, set.Match(tabular.NewRow("Region", "eu-west", "Amount", "250")))
	assert.False(t, set.Match(tabular.NewRow("Region", "eu-west", "Amount", "50")))
	assert.False(t, set.Match(tabular.NewRow("Region", "eu-west")), "absent column fails")
	assert.False(t, set.Match(nil))

	negated, err := Parse("Region!=eu")
	require.NoError(t, err)
	assert.False(t, negated.Match(tabular.NewRow("ID", "1")), "absent column fails negated filters too")

	var empty Set
	assert.True(t, empty.Match(nil))
	assert.True(t, empty.Match(tabular.NewRow("ID", "1")))
}

func TestSetColumns(t *testing.T) {
	set, err := Parse("A=1,B=2,A!=3")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, set.Columns())
}
