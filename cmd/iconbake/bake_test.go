// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/armas/icons"
)

func readSources(t *testing.T, dir string, names ...string) []Source {
	t.Helper()
	srcs := make([]Source, len(names))
	for i, n := range names {
		b, err := os.ReadFile(filepath.Join(dir, n))
		require.NoError(t, err)
		srcs[i] = Source{Path: "svg/" + n, Data: b}
	}
	return srcs
}

func TestBakeBuiltins(t *testing.T) {
	srcs := readSources(t, "../../icons/svg", "play.svg", "pause.svg", "stop.svg")
	out, err := Bake("icons", srcs)
	require.NoError(t, err)
	want, err := os.ReadFile("../../icons/builtin.go")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(out))
}

func TestBakeOtherPackage(t *testing.T) {
	src := Source{Path: "arrow-up.svg", Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><path d="M0 10L5 0L10 10Z"/></svg>`)}
	out, err := Bake("myicons", []Source{src})
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "package myicons")
	assert.Contains(t, s, `"cogentcore.org/armas/icons"`)
	assert.Contains(t, s, "var ArrowUp = &icons.Data{")
	assert.Contains(t, s, `Name:     "arrow-up",`)
	assert.Contains(t, s, "ViewBox:  math32.Vector2{10, 10},")
	assert.True(t, bytes.HasPrefix(out, []byte("// Code generated by iconbake. DO NOT EDIT.\n")))
}

func TestBakeErrors(t *testing.T) {
	_, err := Bake("icons", []Source{{Path: "a.svg", Data: []byte("just some text")}})
	assert.ErrorContains(t, err, "not an SVG file")

	bad := Source{Path: "bad.svg", Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0L1 1Z"/></svg>`)}
	_, err = Bake("icons", []Source{bad})
	assert.ErrorIs(t, err, icons.ErrSVGParse)

	tri := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 4 4"><path d="M0 0H4V4Z"/></svg>`)
	_, err = Bake("icons", []Source{{Path: "a/x-y.svg", Data: tri}, {Path: "b/x_y.svg", Data: tri}})
	assert.ErrorContains(t, err, "both bake to XY")
}

func TestIdent(t *testing.T) {
	tests := map[string]string{
		"play":         "Play",
		"arrow-left":   "ArrowLeft",
		"check_circle": "CheckCircle",
		"zoom in":      "ZoomIn",
		"3d-rotation":  "Icon3dRotation",
		"":             "Icon",
		"café-au-lait": "CaféAuLait",
	}
	for in, want := range tests {
		assert.Equal(t, want, Ident(in), in)
	}
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "arrow-left", Source{Path: "svg/arrow-left.svg"}.Name())
	assert.Equal(t, "logo", Source{Path: "logo.svg"}.Name())
}

func TestRunStdout(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--out", "-", "-q", "../../icons/svg/stop.svg"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "var Stop = &Data{")

	cmd = newRootCmd()
	buf.Reset()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--out", "-", "--name", "Halt", "../../icons/svg/stop.svg"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "var Halt = &Data{")
	assert.Contains(t, buf.String(), `Name:     "stop",`)

	cmd = newRootCmd()
	cmd.SetArgs([]string{"--out", "-"})
	assert.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetArgs([]string{"--out", "-", "--name", "X", "a.svg", "b.svg"})
	assert.ErrorContains(t, cmd.Execute(), "--name needs exactly one")
}
