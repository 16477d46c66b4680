package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/csvcompare/internal/command"
	"github.com/tfctl/csvcompare/internal/version"
)

//go:embed examples.yaml
var examplesYAML []byte

type Page struct {
	Description string    `yaml:"description"`
	Usage       string    `yaml:"usage"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Flag struct {
	ID          string
	Syntax      string
	Description string
	Default     string
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type TemplateData struct {
	Page
	Name    string
	Flags   []Flag
	Date    string
	Version string
}

type Outputs struct {
	Template string
	Folder   string
	Name     string
}

const markdownTemplate = `# {{ .Name }}

{{ .Description }}

## Usage

` + "```" + `
{{ .Usage }}
` + "```" + `

## Options

| Flag | Description | Default |
| ---- | ----------- | ------- |
{{- range .Flags }}
| ` + "`{{ .Syntax }}`" + ` | {{ .Description }} | {{ .Default }} |
{{- end }}

## Examples
{{ range .Examples }}
{{ .Description }}

` + "```" + `
{{ .Command }}
` + "```" + `
{{ end }}
{{- if .Notes }}
## Notes
{{ range .Notes }}
- {{ . }}
{{- end }}
{{ end }}
_Generated {{ .Date }} for version {{ .Version }}._
`

const manTemplate = `.TH {{ .Name }} 1 "{{ .Date }}" "{{ .Version }}"
.SH NAME
{{ .Name }} \- compare two CSV files by a primary key column
.SH SYNOPSIS
{{ .Usage }}
.SH DESCRIPTION
{{ .Description }}
.SH OPTIONS
{{- range .Flags }}
.TP
.B {{ .Syntax }}
{{ .Description }}{{ if .Default }} (default {{ .Default }}){{ end }}
{{- end }}
.SH EXAMPLES
{{- range .Examples }}
.TP
.B {{ .Command }}
{{ .Description }}
{{- end }}
`

func main() {
	docs := "docs"
	if len(os.Args) > 1 {
		docs = os.Args[1]
	}

	data, err := buildData(getVersion())
	if err != nil {
		panic(err)
	}

	types := []Outputs{
		{Template: markdownTemplate, Folder: filepath.Join(docs, "commands"), Name: version.Name + ".md"},
		{Template: manTemplate, Folder: filepath.Join(docs, "man", "share", "man1"), Name: version.Name + ".1"},
	}

	for _, t := range types {
		if err := os.MkdirAll(t.Folder, 0755); err != nil {
			panic(err)
		}

		path := filepath.Join(t.Folder, t.Name)
		file, err := os.Create(path)
		if err != nil {
			panic(err)
		}
		fmt.Println("Generating", path)

		if err := render(file, t.Template, data); err != nil {
			panic(err)
		}

		file.Close()
	}
}

// buildData merges the embedded page text with the live flag set so the docs
// cannot drift from the CLI.
func buildData(ver string) (TemplateData, error) {
	var page Page
	if err := yaml.Unmarshal(examplesYAML, &page); err != nil {
		return TemplateData{}, err
	}

	return TemplateData{
		Page:    page,
		Name:    version.Name,
		Flags:   docFlags(command.NewCompareFlags()),
		Date:    time.Now().Format("January 2, 2006"),
		Version: ver,
	}, nil
}

func render(w io.Writer, tmpl string, data TemplateData) error {
	t, err := template.New("page").Parse(tmpl)
	if err != nil {
		return err
	}
	return t.Execute(w, data)
}

// docFlags describes flags sorted by name. Short aliases come first in the
// syntax column.
func docFlags(flags []cli.Flag) []Flag {
	out := make([]Flag, 0, len(flags))
	for _, f := range flags {
		names := f.Names()
		var spelled []string
		for i := len(names) - 1; i >= 0; i-- {
			if len(names[i]) == 1 {
				spelled = append(spelled, "-"+names[i])
			}
		}
		for _, n := range names {
			if len(n) > 1 {
				spelled = append(spelled, "--"+n)
			}
		}

		flag := Flag{ID: names[0], Syntax: strings.Join(spelled, ", ")}
		if df, ok := f.(cli.DocGenerationFlag); ok {
			flag.Description = df.GetUsage()
			if df.TakesValue() {
				flag.Default = df.GetDefaultText()
			}
		}
		out = append(out, flag)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
