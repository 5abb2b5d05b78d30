package surfacegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

// Options controls one generation run.
type Options struct {
	// SourceDir is the canonical package directory to scan.
	SourceDir string

	// OutputDir receives the generated alias files.
	OutputDir string

	// Package is the name of the generated package.
	Package string

	// ImportPath is the module path of the canonical package, imported
	// under the alias "v1" in generated files.
	ImportPath string
}

var fileTemplate = template.Must(template.New("alias").Parse(
	`{{.Marker}}
// Source: {{.Source}}

package {{.Package}}

import (
	v1 "{{.ImportPath}}"
)
{{if .Types}}
type (
{{- range .Types}}
	{{.}} = v1.{{.}}
{{- end}}
)
{{end}}{{if .Consts}}
const (
{{- range .Consts}}
	{{.}} = v1.{{.}}
{{- end}}
)
{{end}}{{if .Vars}}
var (
{{- range .Vars}}
	{{.}} = v1.{{.}}
{{- end}}
)
{{end}}{{if .Funcs}}
var (
{{- range .Funcs}}
	{{.}} = v1.{{.}}
{{- end}}
)
{{end}}`))

type fileData struct {
	Marker     string
	Source     string
	Package    string
	ImportPath string
	Types      []string
	Consts     []string
	Vars       []string
	Funcs      []string
}

// Generate scans the canonical package and writes one alias file per
// canonical source file into the output directory. It returns the names of
// the files written.
func Generate(opts Options) ([]string, error) {
	surface, err := Scan(opts.SourceDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("surfacegen: create %s: %w", opts.OutputDir, err)
	}

	var written []string
	for _, file := range surface.Files {
		rendered, err := render(file, opts)
		if err != nil {
			return nil, err
		}

		target := filepath.Join(opts.OutputDir, file.Name)
		if err := os.WriteFile(target, rendered, 0o644); err != nil {
			return nil, fmt.Errorf("surfacegen: write %s: %w", target, err)
		}
		written = append(written, file.Name)
	}

	return written, nil
}

func render(file SourceFile, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, fileData{
		Marker:     generatedMarker,
		Source:     file.Name,
		Package:    opts.Package,
		ImportPath: opts.ImportPath,
		Types:      file.Types,
		Consts:     file.Consts,
		Vars:       file.Vars,
		Funcs:      file.Funcs,
	})
	if err != nil {
		return nil, fmt.Errorf("surfacegen: render %s: %w", file.Name, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("surfacegen: format %s: %w", file.Name, err)
	}
	return formatted, nil
}
