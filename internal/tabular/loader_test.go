// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package tabular

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFS returns an in-memory filesystem seeded with the given files.
func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(body), 0o644))
	}
	return fsys
}

func TestLoad_Basic(t *testing.T) {
	fsys := memFS(t, map[string]string{"file1.csv": "ID,Name\n1,Alice\n2,Bob\n"})

	tbl, err := Load(fsys, "file1.csv", "ID")
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"ID", "Name"}, tbl.Headers)
	assert.Empty(t, tbl.Warnings)

	row, ok := tbl.Get("2")
	require.True(t, ok)
	assert.Equal(t, NewRow("ID", "2", "Name", "Bob"), row)
	assert.ElementsMatch(t, []string{"1", "2"}, tbl.Keys())
}

func TestLoad_Idempotent(t *testing.T) {
	fsys := memFS(t, map[string]string{"a.csv": "ID,V\n1,a\n1,b\n2,\n3,x,extra\n"})

	first, err := Load(fsys, "a.csv", "ID")
	require.NoError(t, err)
	second, err := Load(fsys, "a.csv", "ID")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRead_HeaderTrim(t *testing.T) {
	tbl, err := Read(strings.NewReader(" ID , Name \n1,Alice\n"), "trim.csv", "Name")
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "Name"}, tbl.Headers)
	assert.Equal(t, []string{" ID ", " Name "}, tbl.RawHeaders)

	row, ok := tbl.Get("Alice")
	require.True(t, ok)
	v, _ := row.Get("ID")
	assert.Equal(t, "1", v)
}

func TestRead_ValuesNotTrimmed(t *testing.T) {
	tbl, err := Read(strings.NewReader("ID,Name\n1, Alice \n"), "v.csv", "ID")
	require.NoError(t, err)

	row, _ := tbl.Get("1")
	v, _ := row.Get("Name")
	assert.Equal(t, " Alice ", v)
}

func TestRead_ByteOrderMark(t *testing.T) {
	plain, err := Read(strings.NewReader("Name,Age\nAda,36\n"), "plain.csv", "Name")
	require.NoError(t, err)

	bom, err := Read(strings.NewReader("\ufeffName,Age\nAda,36\n"), "bom.csv", "Name")
	require.NoError(t, err)

	assert.Equal(t, plain.Headers, bom.Headers)
	assert.Equal(t, "Name", bom.Headers[0])

	r1, _ := plain.Get("Ada")
	r2, _ := bom.Get("Ada")
	assert.True(t, r1.Equal(r2))
}

func TestRead_UTF16WithBOM(t *testing.T) {
	// "ID\n1\n" as UTF-16LE with a BOM.
	data := []byte{0xff, 0xfe, 'I', 0, 'D', 0, '\n', 0, '1', 0, '\n', 0}

	tbl, err := Read(strings.NewReader(string(data)), "utf16.csv", "ID")
	require.NoError(t, err)

	_, ok := tbl.Get("1")
	assert.True(t, ok)
}

func TestRead_DuplicateKey(t *testing.T) {
	tbl, err := Read(strings.NewReader("K,V\n1,a\n1,b\n"), "dup.csv", "K")
	require.NoError(t, err)

	row, ok := tbl.Get("1")
	require.True(t, ok)
	v, _ := row.Get("V")
	assert.Equal(t, "b", v)

	require.Len(t, tbl.Warnings, 1)
	assert.Equal(t, DuplicateKeyWarning{Key: "1", Source: "dup.csv", Line: 3}, tbl.Warnings[0])
	assert.Equal(t, "Warning: Duplicate key '1' found in dup.csv on line 3. Overwriting.", tbl.Warnings[0].String())
}

func TestRead_RaggedRows(t *testing.T) {
	input := "ID,A,B\n" +
		"1,x\n" + // short: B absent
		"2,x,y,z,w\n" + // long: overflow
		"\n" + // blank lines are skipped by the reader
		"3\n"

	tbl, err := Read(strings.NewReader(input), "ragged.csv", "B")
	require.NoError(t, err)

	// Keyed on B, the short rows have no key and are skipped.
	assert.Equal(t, 1, tbl.Len())
	row, ok := tbl.Get("y")
	require.True(t, ok)
	assert.Equal(t, []string{"z", "w"}, row.Overflow)
	assert.Equal(t, []string{"ID", "A", "B"}, row.Columns)

	byID, err := Read(strings.NewReader(input), "ragged.csv", "ID")
	require.NoError(t, err)
	short, _ := byID.Get("1")
	_, present := short.Get("B")
	assert.False(t, present)
	assert.Equal(t, []string{"ID", "A"}, short.Columns)
}

func TestRead_EmptyKeyValueIsIndexed(t *testing.T) {
	tbl, err := Read(strings.NewReader("ID,V\n,a\n"), "e.csv", "ID")
	require.NoError(t, err)

	_, ok := tbl.Get("")
	assert.True(t, ok)
}

func TestRead_QuotedFields(t *testing.T) {
	input := "ID,Note\n1,\"hello, world\"\n2,\"multi\nline\"\n3,\"say \"\"hi\"\"\"\n"

	tbl, err := Read(strings.NewReader(input), "q.csv", "ID")
	require.NoError(t, err)

	tests := map[string]string{"1": "hello, world", "2": "multi\nline", "3": `say "hi"`}
	for k, want := range tests {
		row, ok := tbl.Get(k)
		require.True(t, ok, k)
		got, _ := row.Get("Note")
		assert.Equal(t, want, got, k)
	}
}

func TestRead_StrayQuotes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare quote in unquoted field", "ID,Item\n1,12\" pipe\n", `12" pipe`},
		{"unterminated quote runs to end", "ID,Item\n1,\"open\n", "open\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Read(strings.NewReader(tt.input), "q.csv", "ID")
			require.NoError(t, err)

			row, ok := tbl.Get("1")
			require.True(t, ok)
			got, _ := row.Get("Item")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		key   string
		check func(t *testing.T, err error)
	}{
		{
			name:  "empty file",
			input: "",
			check: func(t *testing.T, err error) {
				var target *EmptyInputError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, "x.csv", target.Source)
				assert.Contains(t, err.Error(), "appears to be empty")
			},
		},
		{
			name:  "bom only",
			input: "\ufeff",
			check: func(t *testing.T, err error) {
				var target *EmptyInputError
				assert.ErrorAs(t, err, &target)
			},
		},
		{
			name:  "missing key column",
			input: "ID, Name\n1,Alice\n",
			key:   "Email",
			check: func(t *testing.T, err error) {
				var target *MissingKeyColumnError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, "Email", target.Key)
				assert.Equal(t, []string{"ID", "Name"}, target.Headers)
				assert.Equal(t, []string{"ID", " Name"}, target.RawHeaders)
				assert.Contains(t, err.Error(), "primary key 'Email' not found in x.csv")
				assert.Contains(t, err.Error(), `Found Headers: ["ID", "Name"]`)
				assert.Contains(t, err.Error(), `Raw Headers:   ["ID", " Name"]`)
			},
		},
		{
			name:  "key match is case sensitive",
			input: "email\nx\n",
			key:   "Email",
			check: func(t *testing.T, err error) {
				var target *MissingKeyColumnError
				assert.ErrorAs(t, err, &target)
			},
		},
		{
			name:  "invalid utf-8",
			input: "ID,Name\n1,\xff\xfe\xfd\n",
			check: func(t *testing.T, err error) {
				var target *LoadError
				assert.ErrorAs(t, err, &target)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := tt.key
			if key == "" {
				key = "ID"
			}
			tbl, err := Read(strings.NewReader(tt.input), "x.csv", key)
			assert.Nil(t, tbl)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	tbl, err := Load(afero.NewMemMapFs(), "nope.csv", "ID")

	assert.Nil(t, tbl)
	var target *LoadError
	require.ErrorAs(t, err, &target)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, "file 'nope.csv' not found", err.Error())
}

func TestLoad_OsFs(t *testing.T) {
	dir := t.TempDir()
	fsys := afero.NewBasePathFs(afero.NewOsFs(), dir)
	require.NoError(t, afero.WriteFile(fsys, "/f.csv", []byte("ID\n1\n"), 0o600))

	tbl, err := Load(fsys, "/f.csv", "ID")
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}
