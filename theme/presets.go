// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"cogentcore.org/armas/base/errors"
	"cogentcore.org/armas/colors"
)

// ErrUnknown is returned by [Lookup] for names that are not presets.
var ErrUnknown = errors.New("theme: unknown theme")

var hex = colors.MustFromHex

// Dark is the default dark theme.
func Dark() Theme {
	return Theme{
		Name: "dark",
		Palette: Palette{
			Primary:          hex("#3B82F6"),
			OnPrimary:        hex("#FFFFFF"),
			Secondary:        hex("#27272A"),
			OnSecondary:      hex("#FAFAFA"),
			Surface:          hex("#18181B"),
			SurfaceVariant:   hex("#27272A"),
			OnSurface:        hex("#FAFAFA"),
			OnSurfaceVariant: hex("#A1A1AA"),
			Background:       hex("#09090B"),
			Outline:          hex("#3F3F46"),
			OutlineVariant:   hex("#27272A"),
			Muted:            hex("#27272A"),
			MutedForeground:  hex("#A1A1AA"),
			Card:             hex("#111113"),
			CardForeground:   hex("#FAFAFA"),
			Border:           hex("#27272A"),
			Foreground:       hex("#FAFAFA"),
			Destructive:      hex("#EF4444"),
			Success:          hex("#22C55E"),
			Warning:          hex("#F59E0B"),
			Info:             hex("#0EA5E9"),
			Error:            hex("#DC2626"),
			Chart:            [6]color.RGBA{hex("#3B82F6"), hex("#22C55E"), hex("#F59E0B"), hex("#A855F7"), hex("#EC4899"), hex("#14B8A6")},
		},
		Spacing: DefaultSpacing(),
	}
}

// Light is the default light theme.
func Light() Theme {
	return Theme{
		Name: "light",
		Palette: Palette{
			Primary:          hex("#2563EB"),
			OnPrimary:        hex("#FFFFFF"),
			Secondary:        hex("#F4F4F5"),
			OnSecondary:      hex("#18181B"),
			Surface:          hex("#FFFFFF"),
			SurfaceVariant:   hex("#F4F4F5"),
			OnSurface:        hex("#09090B"),
			OnSurfaceVariant: hex("#52525B"),
			Background:       hex("#FAFAFA"),
			Outline:          hex("#D4D4D8"),
			OutlineVariant:   hex("#E4E4E7"),
			Muted:            hex("#F4F4F5"),
			MutedForeground:  hex("#71717A"),
			Card:             hex("#FFFFFF"),
			CardForeground:   hex("#09090B"),
			Border:           hex("#E4E4E7"),
			Foreground:       hex("#09090B"),
			Destructive:      hex("#DC2626"),
			Success:          hex("#16A34A"),
			Warning:          hex("#D97706"),
			Info:             hex("#0284C7"),
			Error:            hex("#B91C1C"),
			Chart:            [6]color.RGBA{hex("#2563EB"), hex("#16A34A"), hex("#D97706"), hex("#9333EA"), hex("#DB2777"), hex("#0D9488")},
		},
		Spacing: DefaultSpacing(),
	}
}

// Nord is a theme using the Nord palette.
func Nord() Theme {
	return Theme{
		Name: "nord",
		Palette: Palette{
			Primary:          hex("#88C0D0"),
			OnPrimary:        hex("#2E3440"),
			Secondary:        hex("#434C5E"),
			OnSecondary:      hex("#ECEFF4"),
			Surface:          hex("#3B4252"),
			SurfaceVariant:   hex("#434C5E"),
			OnSurface:        hex("#ECEFF4"),
			OnSurfaceVariant: hex("#D8DEE9"),
			Background:       hex("#2E3440"),
			Outline:          hex("#4C566A"),
			OutlineVariant:   hex("#434C5E"),
			Muted:            hex("#434C5E"),
			MutedForeground:  hex("#D8DEE9"),
			Card:             hex("#3B4252"),
			CardForeground:   hex("#ECEFF4"),
			Border:           hex("#4C566A"),
			Foreground:       hex("#ECEFF4"),
			Destructive:      hex("#BF616A"),
			Success:          hex("#A3BE8C"),
			Warning:          hex("#EBCB8B"),
			Info:             hex("#81A1C1"),
			Error:            hex("#BF616A"),
			Chart:            [6]color.RGBA{hex("#88C0D0"), hex("#A3BE8C"), hex("#EBCB8B"), hex("#B48EAD"), hex("#D08770"), hex("#5E81AC")},
		},
		Spacing: DefaultSpacing(),
	}
}

// Dracula is a theme using the Dracula palette.
func Dracula() Theme {
	return Theme{
		Name: "dracula",
		Palette: Palette{
			Primary:          hex("#BD93F9"),
			OnPrimary:        hex("#282A36"),
			Secondary:        hex("#44475A"),
			OnSecondary:      hex("#F8F8F2"),
			Surface:          hex("#343746"),
			SurfaceVariant:   hex("#44475A"),
			OnSurface:        hex("#F8F8F2"),
			OnSurfaceVariant: hex("#BFBFBF"),
			Background:       hex("#282A36"),
			Outline:          hex("#6272A4"),
			OutlineVariant:   hex("#44475A"),
			Muted:            hex("#44475A"),
			MutedForeground:  hex("#6272A4"),
			Card:             hex("#21222C"),
			CardForeground:   hex("#F8F8F2"),
			Border:           hex("#44475A"),
			Foreground:       hex("#F8F8F2"),
			Destructive:      hex("#FF5555"),
			Success:          hex("#50FA7B"),
			Warning:          hex("#F1FA8C"),
			Info:             hex("#8BE9FD"),
			Error:            hex("#FF5555"),
			Chart:            [6]color.RGBA{hex("#BD93F9"), hex("#50FA7B"), hex("#FFB86C"), hex("#FF79C6"), hex("#8BE9FD"), hex("#F1FA8C")},
		},
		Spacing: DefaultSpacing(),
	}
}

// Studio is a dark theme with warm accents for audio tools,
// with tighter corners.
func Studio() Theme {
	th := Theme{
		Name: "studio",
		Palette: Palette{
			Primary:          hex("#FF8A3D"),
			OnPrimary:        hex("#1A1A1A"),
			Secondary:        hex("#2C2C2C"),
			OnSecondary:      hex("#E6E6E6"),
			Surface:          hex("#1F1F1F"),
			SurfaceVariant:   hex("#2A2A2A"),
			OnSurface:        hex("#E6E6E6"),
			OnSurfaceVariant: hex("#9E9E9E"),
			Background:       hex("#141414"),
			Outline:          hex("#3A3A3A"),
			OutlineVariant:   hex("#2A2A2A"),
			Muted:            hex("#262626"),
			MutedForeground:  hex("#8C8C8C"),
			Card:             hex("#1B1B1B"),
			CardForeground:   hex("#E6E6E6"),
			Border:           hex("#333333"),
			Foreground:       hex("#EDEDED"),
			Destructive:      hex("#FF3B30"),
			Success:          hex("#34C759"),
			Warning:          hex("#FFCC00"),
			Info:             hex("#5AC8FA"),
			Error:            hex("#FF453A"),
			Chart:            [6]color.RGBA{hex("#FF8A3D"), hex("#34C759"), hex("#FFCC00"), hex("#5AC8FA"), hex("#AF52DE"), hex("#FF2D55")},
		},
		Spacing: DefaultSpacing(),
	}
	th.Spacing.CornerRadius = 4
	return th
}

// Presets returns all preset themes, starting with the default.
func Presets() []Theme {
	return []Theme{Dark(), Light(), Nord(), Dracula(), Studio()}
}

// Lookup returns the preset with the given name, ignoring case. For an
// unknown name it returns [Dark] and an error wrapping [ErrUnknown]
// that suggests the most similar preset name.
func Lookup(name string) (Theme, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	best, bestSim := "", 0.0
	lev := metrics.NewLevenshtein()
	for _, th := range Presets() {
		if th.Name == want {
			return th, nil
		}
		if sim := strutil.Similarity(want, th.Name, lev); sim > bestSim {
			best, bestSim = th.Name, sim
		}
	}
	if bestSim >= 0.5 {
		return Dark(), fmt.Errorf("%w %q; did you mean %q?", ErrUnknown, name, best)
	}
	return Dark(), fmt.Errorf("%w %q", ErrUnknown, name)
}
