// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters narrows a comparison to rows whose columns match a set of
// expressions.
//
// Filters are column-operator-target expressions joined by a delimiter
// (default comma, overridable with CSVCOMPARE_FILTER_DELIM). A row matches
// when every filter passes.
//
// Operators, each negatable with a leading !:
//
//   - = : exact match, numeric when both sides parse as numbers
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - < : less than, numeric when both sides parse as numbers
//   - > : greater than, numeric when both sides parse as numbers
//   - @ : contains substring
//   - / : regular expression match
//
// Examples:
//
//   - "Status=active"  : Status equals "active"
//   - "Region^eu-"     : Region starts with "eu-"
//   - "Amount>100"     : Amount is greater than 100
//   - "Name!@test"     : Name does not contain "test"
//   - "Email/@corp\.example$" : Email matches the expression
//
// A column that is absent from a row fails every filter on it, negated or not.
package filters
