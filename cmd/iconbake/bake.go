// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/tools/imports"

	"cogentcore.org/armas/icons"
	"cogentcore.org/armas/math32"
)

// Source is one SVG file to bake.
type Source struct {

	// Path is the path of the file, shown in the doc comment.
	Path string

	// Ident overrides the Go identifier derived from the name.
	Ident string

	Data []byte
}

// Name returns the icon name of the source: its base file name
// without the extension.
func (src Source) Name() string {
	base := path.Base(filepath.ToSlash(src.Path))
	return strings.TrimSuffix(base, path.Ext(base))
}

// Ident returns the exported Go identifier for an icon name,
// treating dashes, underscores, dots and spaces as word breaks.
func Ident(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})
	var b strings.Builder
	for _, w := range words {
		rs := []rune(w)
		rs[0] = unicode.ToUpper(rs[0])
		b.WriteString(string(rs))
	}
	id := b.String()
	if id == "" || !unicode.IsLetter([]rune(id)[0]) {
		id = "Icon" + id
	}
	return id
}

// icon is the template data for one baked icon.
type icon struct {
	Ident    string
	Path     string
	Name     string
	Vertices string
	Indices  string
	ViewBox  string
}

// file is the template data for the generated file.
type file struct {
	Package string

	// Qual is the qualifier of the icons package, empty within it.
	Qual  string
	Icons []icon
}

var fileTmpl = template.Must(template.New("file").Parse(`// Code generated by iconbake. DO NOT EDIT.

package {{.Package}}

import (
	"cogentcore.org/armas/math32"
{{- if .Qual}}
	"cogentcore.org/armas/icons"
{{- end}}
)
{{range .Icons}}
// {{.Ident}} is the icon baked from {{.Path}}.
var {{.Ident}} = &{{$.Qual}}Data{
	Name: {{printf "%q" .Name}},
	Vertices: []math32.Vector2{ {{- .Vertices -}} },
	Indices: []uint32{ {{- .Indices -}} },
	ViewBox: math32.Vector2{ {{- .ViewBox -}} },
}
{{end}}`))

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func vec(v math32.Vector2) string {
	return num(v.X) + ", " + num(v.Y)
}

// IsSVG returns whether data is detected as an SVG document.
func IsSVG(data []byte) bool {
	return mimetype.Detect(data).Is("image/svg+xml")
}

// Bake parses and tessellates the given SVG sources and returns the
// formatted Go source of a file in package pkg declaring one [icons.Data]
// variable per source, sorted by name.
func Bake(pkg string, srcs []Source) ([]byte, error) {
	f := file{Package: pkg}
	if pkg != "icons" {
		f.Qual = "icons."
	}
	seen := map[string]string{}
	for _, src := range srcs {
		if !IsSVG(src.Data) {
			return nil, fmt.Errorf("iconbake: %s: not an SVG file (detected %s)", src.Path, mimetype.Detect(src.Data))
		}
		name := src.Name()
		d, err := icons.Parse(name, src.Data)
		if err != nil {
			return nil, fmt.Errorf("iconbake: %s: %w", src.Path, err)
		}
		id := src.Ident
		if id == "" {
			id = Ident(name)
		}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("iconbake: %s and %s both bake to %s", prev, src.Path, id)
		}
		seen[id] = src.Path
		slog.Info("baked icon", "path", src.Path, "ident", id, "triangles", len(d.Indices)/3)

		vs := make([]string, len(d.Vertices))
		for i, v := range d.Vertices {
			vs[i] = "{" + vec(v) + "}"
		}
		is := make([]string, len(d.Indices))
		for i, x := range d.Indices {
			is[i] = strconv.FormatUint(uint64(x), 10)
		}
		f.Icons = append(f.Icons, icon{
			Ident:    id,
			Path:     filepath.ToSlash(src.Path),
			Name:     name,
			Vertices: strings.Join(vs, ", "),
			Indices:  strings.Join(is, ", "),
			ViewBox:  vec(d.ViewBox),
		})
	}
	slices.SortFunc(f.Icons, func(a, b icon) int { return strings.Compare(a.Ident, b.Ident) })

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("iconbake: programmer error: executing template: %w", err)
	}
	out, err := imports.Process(pkg+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("iconbake: formatting output: %w", err)
	}
	return out, nil
}
