// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/armas/base/errors"
	"cogentcore.org/armas/colors"
)

// Formats are the supported theme file formats.
type Formats int32

const (
	TOML Formats = iota
	YAML
)

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("theme: unsupported theme file extension %q (want .toml, .yaml or .yml)", filepath.Ext(path))
}

// File is the on-disk form of a theme. Colors are hex codes or CSS color
// names; every field is optional and overrides the corresponding value
// of the Base preset.
type File struct {
	Name    string      `toml:"name" yaml:"name"`
	Base    string      `toml:"base" yaml:"base"`
	Palette FilePalette `toml:"palette" yaml:"palette"`
	Spacing FileSpacing `toml:"spacing" yaml:"spacing"`
}

// FilePalette is the palette section of a [File].
type FilePalette struct {
	Primary          string   `toml:"primary" yaml:"primary" validate:"omitempty,color"`
	OnPrimary        string   `toml:"on_primary" yaml:"on_primary" validate:"omitempty,color"`
	Secondary        string   `toml:"secondary" yaml:"secondary" validate:"omitempty,color"`
	OnSecondary      string   `toml:"on_secondary" yaml:"on_secondary" validate:"omitempty,color"`
	Surface          string   `toml:"surface" yaml:"surface" validate:"omitempty,color"`
	SurfaceVariant   string   `toml:"surface_variant" yaml:"surface_variant" validate:"omitempty,color"`
	OnSurface        string   `toml:"on_surface" yaml:"on_surface" validate:"omitempty,color"`
	OnSurfaceVariant string   `toml:"on_surface_variant" yaml:"on_surface_variant" validate:"omitempty,color"`
	Background       string   `toml:"background" yaml:"background" validate:"omitempty,color"`
	Outline          string   `toml:"outline" yaml:"outline" validate:"omitempty,color"`
	OutlineVariant   string   `toml:"outline_variant" yaml:"outline_variant" validate:"omitempty,color"`
	Muted            string   `toml:"muted" yaml:"muted" validate:"omitempty,color"`
	MutedForeground  string   `toml:"muted_foreground" yaml:"muted_foreground" validate:"omitempty,color"`
	Card             string   `toml:"card" yaml:"card" validate:"omitempty,color"`
	CardForeground   string   `toml:"card_foreground" yaml:"card_foreground" validate:"omitempty,color"`
	Border           string   `toml:"border" yaml:"border" validate:"omitempty,color"`
	Foreground       string   `toml:"foreground" yaml:"foreground" validate:"omitempty,color"`
	Destructive      string   `toml:"destructive" yaml:"destructive" validate:"omitempty,color"`
	Success          string   `toml:"success" yaml:"success" validate:"omitempty,color"`
	Warning          string   `toml:"warning" yaml:"warning" validate:"omitempty,color"`
	Info             string   `toml:"info" yaml:"info" validate:"omitempty,color"`
	Error            string   `toml:"error" yaml:"error" validate:"omitempty,color"`
	Chart            []string `toml:"chart" yaml:"chart" validate:"max=6,dive,color"`
}

// FileSpacing is the spacing section of a [File]. Zero values are unset.
type FileSpacing struct {
	XS           float32 `toml:"xs" yaml:"xs" validate:"gte=0,lte=512"`
	SM           float32 `toml:"sm" yaml:"sm" validate:"gte=0,lte=512"`
	MD           float32 `toml:"md" yaml:"md" validate:"gte=0,lte=512"`
	LG           float32 `toml:"lg" yaml:"lg" validate:"gte=0,lte=512"`
	XL           float32 `toml:"xl" yaml:"xl" validate:"gte=0,lte=512"`
	XXL          float32 `toml:"xxl" yaml:"xxl" validate:"gte=0,lte=512"`
	CornerRadius float32 `toml:"corner_radius" yaml:"corner_radius" validate:"gte=0,lte=512"`
}

var (
	validateOnce sync.Once
	validateInst *validator.Validate
)

// validatorInstance returns the shared validator, with the "color"
// tag accepting anything that [colors.FromString] accepts.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		errors.Must(v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := colors.FromString(fl.Field().String())
			return err == nil
		}))
		validateInst = v
	})
	return validateInst
}

// Validate checks the file for malformed colors and out of range spacing.
func (f *File) Validate() error {
	err := validatorInstance().Struct(f)
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok {
		fe := ves[0]
		return fmt.Errorf("theme: %s: invalid value %v (failed %q)", fieldName(fe), fe.Value(), fe.Tag())
	}
	return fmt.Errorf("theme: %w", err)
}

// fieldName returns the lower-cased namespace of a field error,
// such as "file.palette.primary".
func fieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.StructNamespace())
}

// Load reads a theme file in the format given by its extension.
// The theme name defaults to the file name without extension.
func Load(path string) (Theme, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Dark(), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Dark(), err
	}
	f, th, err := parse(data, format)
	if err != nil {
		return Dark(), fmt.Errorf("%s: %w", path, err)
	}
	if f.Name == "" {
		th.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return th, nil
}

// Parse decodes and validates theme file data and derives the theme
// from its base preset ([Dark] when unset). Without a name in the
// data, the theme keeps the name of its base.
func Parse(data []byte, format Formats) (Theme, error) {
	_, th, err := parse(data, format)
	return th, err
}

func parse(data []byte, format Formats) (*File, Theme, error) {
	f := &File{}
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, f)
	default:
		err = toml.Unmarshal(data, f)
	}
	if err != nil {
		return f, Dark(), fmt.Errorf("theme: decoding: %w", err)
	}
	if err := f.Validate(); err != nil {
		return f, Dark(), err
	}
	base := Dark()
	if f.Base != "" {
		base, err = Lookup(f.Base)
		if err != nil {
			return f, Dark(), err
		}
	}
	over, err := f.Theme()
	if err != nil {
		return f, Dark(), err
	}
	th, err := Derive(base, over)
	if err != nil {
		return f, Dark(), err
	}
	return f, th, nil
}

// Theme converts the file into an overlay theme in which every
// unset field is zero.
func (f *File) Theme() (Theme, error) {
	var th Theme
	var errs []error
	col := func(s string) color.RGBA {
		if s == "" {
			return color.RGBA{}
		}
		c, err := colors.FromString(s)
		if err != nil {
			errs = append(errs, err)
		}
		return c
	}
	fp := &f.Palette
	th.Palette = Palette{
		Primary:          col(fp.Primary),
		OnPrimary:        col(fp.OnPrimary),
		Secondary:        col(fp.Secondary),
		OnSecondary:      col(fp.OnSecondary),
		Surface:          col(fp.Surface),
		SurfaceVariant:   col(fp.SurfaceVariant),
		OnSurface:        col(fp.OnSurface),
		OnSurfaceVariant: col(fp.OnSurfaceVariant),
		Background:       col(fp.Background),
		Outline:          col(fp.Outline),
		OutlineVariant:   col(fp.OutlineVariant),
		Muted:            col(fp.Muted),
		MutedForeground:  col(fp.MutedForeground),
		Card:             col(fp.Card),
		CardForeground:   col(fp.CardForeground),
		Border:           col(fp.Border),
		Foreground:       col(fp.Foreground),
		Destructive:      col(fp.Destructive),
		Success:          col(fp.Success),
		Warning:          col(fp.Warning),
		Info:             col(fp.Info),
		Error:            col(fp.Error),
	}
	for i, s := range fp.Chart {
		if i < len(th.Palette.Chart) {
			th.Palette.Chart[i] = col(s)
		}
	}
	if len(errs) > 0 {
		return th, fmt.Errorf("theme: %w", errors.Join(errs...))
	}
	fs := f.Spacing
	th.Spacing = Spacing{XS: fs.XS, SM: fs.SM, MD: fs.MD, LG: fs.LG, XL: fs.XL, XXL: fs.XXL, CornerRadius: fs.CornerRadius}
	th.Name = f.Name
	return th, nil
}

// Derive returns a copy of base with every non-zero color and spacing
// value of over applied on top of it. A fully transparent black color
// in over counts as unset.
func Derive(base, over Theme) (Theme, error) {
	th := base
	opt := copier.Option{IgnoreEmpty: true}
	if err := copier.CopyWithOption(&th.Palette, &over.Palette, opt); err != nil {
		return base, fmt.Errorf("theme: deriving palette: %w", err)
	}
	th.Palette.Chart = base.Palette.Chart
	for i, c := range over.Palette.Chart {
		if c != (color.RGBA{}) {
			th.Palette.Chart[i] = c
		}
	}
	if err := copier.CopyWithOption(&th.Spacing, &over.Spacing, opt); err != nil {
		return base, fmt.Errorf("theme: deriving spacing: %w", err)
	}
	if over.Name != "" {
		th.Name = over.Name
	}
	return th, nil
}
