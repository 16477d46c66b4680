// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/tfctl/csvcompare/internal/log"
	"github.com/tfctl/csvcompare/internal/tabular"
)

// filterRegex splits an expression into column, optional negated operator, and
// target. The column may not contain an operator character.
var filterRegex = regexp.MustCompile(`^([^!=^~<>@/]*)(!?[=^~<>@/])(.*)$`)

// Filter is a single parsed expression.
type Filter struct {
	Column  string `yaml:"column" json:"column"`
	Negate  bool   `yaml:"negate" json:"negate"`
	Operand string `yaml:"operand" json:"operand"`
	Value   string `yaml:"value" json:"value"`

	re *regexp.Regexp
}

// Set is a conjunction of filters.
type Set []Filter

// Parse turns a delimited filter expression into a Set. An empty expression
// yields an empty Set that matches every row.
func Parse(raw string) (Set, error) {
	//nolint:prealloc
	var set Set

	if strings.TrimSpace(raw) == "" {
		return set, nil
	}

	delim := ","
	if d, ok := os.LookupEnv("CSVCOMPARE_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, expr := range strings.Split(raw, delim) {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(expr)
		if parts == nil {
			return nil, fmt.Errorf("invalid filter %q: expected column, operator and value", expr)
		}

		column := strings.TrimSpace(parts[1])
		if column == "" {
			return nil, fmt.Errorf("invalid filter %q: empty column", expr)
		}

		f := Filter{
			Column:  column,
			Negate:  strings.HasPrefix(parts[2], "!"),
			Operand: strings.TrimPrefix(parts[2], "!"),
			Value:   parts[3],
		}

		if f.Operand == "/" {
			re, err := regexp.Compile(f.Value)
			if err != nil {
				return nil, fmt.Errorf("invalid filter %q: %w", expr, err)
			}
			f.re = re
		}

		log.Debugf("filter parsed: %+v", f)
		set = append(set, f)
	}

	return set, nil
}

// Columns returns the distinct columns the set refers to.
func (s Set) Columns() []string {
	var cols []string
	seen := map[string]bool{}
	for _, f := range s {
		if !seen[f.Column] {
			seen[f.Column] = true
			cols = append(cols, f.Column)
		}
	}
	return cols
}

// Match reports whether row passes every filter. A nil row never matches a
// non-empty set.
func (s Set) Match(row *tabular.Row) bool {
	if len(s) == 0 {
		return true
	}

	for _, f := range s {
		value, ok := row.Get(f.Column)
		if !ok {
			return false
		}
		if !f.Match(value) {
			return false
		}
	}
	return true
}

// Match applies the filter to one value.
func (f Filter) Match(value string) bool {
	if f.Operand == "=" || f.Operand == "<" || f.Operand == ">" {
		if v, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			if tgt, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64); err == nil {
				return checkNumericOperand(v, tgt, f)
			}
		}
	}
	return checkStringOperand(value, f)
}

// checkNumericOperand compares numerically. != is Negate plus "=".
func checkNumericOperand(value, tgt float64, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return (value == tgt) == !filter.Negate
	case ">":
		return (value > tgt) == !filter.Negate
	case "<":
		return (value < tgt) == !filter.Negate
	default:
		log.Errorf("unsupported numeric operand: %s", filter.Operand)
		return false
	}
}

// checkStringOperand evaluates a string comparison style filter against the
// provided value using the operand semantics.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Value == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Value) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Value) == !filter.Negate
	case ">":
		return value > filter.Value == !filter.Negate
	case "<":
		return value < filter.Value == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Value) == !filter.Negate
	case "/":
		re := filter.re
		if re == nil {
			var err error
			if re, err = regexp.Compile(filter.Value); err != nil {
				log.Errorf("invalid regex: %s", filter.Value)
				return false
			}
		}
		return re.MatchString(value) == !filter.Negate
	default:
		log.Errorf("unsupported filtering operand: %s", filter.Operand)
		return false
	}
}
