// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/armas/base/errors"
	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/surface"
)

func TestGetDefault(t *testing.T) {
	m := surface.NewMemory()
	assert.Equal(t, Dark(), Get(m))

	m.SetValue(Key, "not a theme")
	assert.Equal(t, Dark(), Get(m))

	Set(m, Nord())
	assert.Equal(t, "nord", Get(m).Name)

	th := Light()
	m.SetValue(Key, &th)
	assert.Equal(t, "light", Get(m).Name)
}

func TestPresetsComplete(t *testing.T) {
	names := map[string]bool{}
	for _, th := range Presets() {
		assert.False(t, names[th.Name], "duplicate %s", th.Name)
		names[th.Name] = true
		v := reflect.ValueOf(th.Palette)
		for i := range v.NumField() {
			f := v.Field(i)
			if c, ok := f.Interface().(color.RGBA); ok {
				assert.Equal(t, uint8(255), c.A, "%s.%s", th.Name, v.Type().Field(i).Name)
			}
		}
		for i, c := range th.Palette.Chart {
			assert.NotEqual(t, color.RGBA{}, c, "%s chart %d", th.Name, i)
		}
		assert.Equal(t, float32(4), th.Spacing.XS)
		assert.Equal(t, float32(32), th.Spacing.XXL)
	}
	assert.Len(t, names, 5)
	assert.True(t, Dark().IsDark())
	assert.False(t, Light().IsDark())
	sp := DefaultSpacing()
	assert.Equal(t, sp.SM, sp.Small())
	assert.Equal(t, sp.MD, sp.Medium())
	assert.Equal(t, sp.LG, sp.Large())
	assert.Equal(t, float32(8), sp.CornerRadius)
}

func TestThemeValues(t *testing.T) {
	d := Dark()
	n := d.WithName("mine")
	assert.Equal(t, "dark", d.Name)
	assert.Equal(t, "mine", n.Name)
	p := d.Palette
	p.Primary = colors.White
	w := d.WithPalette(p)
	assert.NotEqual(t, colors.White, Dark().Palette.Primary)
	assert.Equal(t, colors.White, w.Palette.Primary)
	assert.Equal(t, d.Palette.Chart[1], d.Palette.ChartColor(7))
	assert.Equal(t, d.Palette.Chart[5], d.Palette.ChartColor(-1))
}

func TestLookup(t *testing.T) {
	th, err := Lookup("Dracula")
	require.NoError(t, err)
	assert.Equal(t, Dracula(), th)

	th, err = Lookup("drakula")
	assert.True(t, errors.Is(err, ErrUnknown))
	assert.ErrorContains(t, err, `did you mean "dracula"?`)
	assert.Equal(t, Dark(), th)

	_, err = Lookup("zzzzzzzzzzzz")
	assert.True(t, errors.Is(err, ErrUnknown))
	assert.NotContains(t, err.Error(), "did you mean")
}

const oceanTOML = `
name = "ocean"
base = "nord"

[palette]
primary = "#0af"
destructive = "crimson"
chart = ["#112233", "rgb(10, 20, 30)"]

[spacing]
md = 14.0
corner_radius = 6.0
`

const oceanYAML = `
name: ocean
base: nord
palette:
  primary: "#0af"
  destructive: crimson
  chart: ["#112233", "rgb(10, 20, 30)"]
spacing:
  md: 14
  corner_radius: 6
`

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		format Formats
		data   string
	}{{TOML, oceanTOML}, {YAML, oceanYAML}} {
		th, err := Parse([]byte(tc.data), tc.format)
		require.NoError(t, err)
		nord := Nord()
		assert.Equal(t, "ocean", th.Name)
		assert.Equal(t, color.RGBA{0, 170, 255, 255}, th.Palette.Primary)
		assert.Equal(t, color.RGBA{220, 20, 60, 255}, th.Palette.Destructive)
		assert.Equal(t, nord.Palette.Background, th.Palette.Background)
		assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 255}, th.Palette.Chart[0])
		assert.Equal(t, color.RGBA{10, 20, 30, 255}, th.Palette.Chart[1])
		assert.Equal(t, nord.Palette.Chart[2], th.Palette.Chart[2])
		assert.Equal(t, float32(14), th.Spacing.MD)
		assert.Equal(t, float32(6), th.Spacing.CornerRadius)
		assert.Equal(t, float32(8), th.Spacing.SM)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`[palette]
primary = "#zzz"`), TOML)
	assert.ErrorContains(t, err, "file.palette.primary")

	_, err = Parse([]byte(`[spacing]
md = -3.0`), TOML)
	assert.ErrorContains(t, err, "file.spacing.md")

	_, err = Parse([]byte(`base = "nrod"`), TOML)
	assert.True(t, errors.Is(err, ErrUnknown))

	_, err = Parse([]byte(`palette: [1, 2`), YAML)
	assert.ErrorContains(t, err, "decoding")

	_, err = FormatFromPath("theme.json")
	assert.Error(t, err)

	f := &File{Palette: FilePalette{Primary: "nope", Success: "#12"}}
	_, err = f.Theme()
	assert.ErrorContains(t, err, "nope")
	assert.ErrorContains(t, err, "process: 12")
}

func TestDerive(t *testing.T) {
	var over Theme
	over.Palette.Success = colors.White
	over.Spacing.XL = 30
	th, err := Derive(Studio(), over)
	require.NoError(t, err)
	assert.Equal(t, colors.White, th.Palette.Success)
	assert.Equal(t, Studio().Palette.Primary, th.Palette.Primary)
	assert.Equal(t, float32(30), th.Spacing.XL)
	assert.Equal(t, float32(4), th.Spacing.CornerRadius)
	assert.Equal(t, "studio", th.Name)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sea.yaml")
	require.NoError(t, os.WriteFile(path, []byte("palette:\n  primary: teal\n"), 0666))
	th, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sea", th.Name)
	assert.Equal(t, color.RGBA{0, 128, 128, 255}, th.Palette.Primary)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

// replaceFile atomically replaces the file at path, the way editors save.
func replaceFile(t *testing.T, path, content string) {
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0666))
	require.NoError(t, os.Rename(tmp, path))
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.toml")
	replaceFile(t, path, `base = "light"`)
	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, Light().Palette, w.Theme().Palette)

	m := surface.NewMemory()
	assert.False(t, w.Apply(m))

	replaceFile(t, path, `base = "dracula"`)
	require.Eventually(t, func() bool {
		w.Apply(m)
		return Get(m).Palette == Dracula().Palette
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, Dracula().Palette, Get(m).Palette)
	assert.Equal(t, "live", Get(m).Name)

	replaceFile(t, path, `base = "nope"`)
	time.Sleep(100 * time.Millisecond)
	_, changed := w.Poll()
	assert.False(t, changed, "broken files keep the previous theme")
	assert.Equal(t, Dracula().Palette, w.Theme().Palette)
}
