// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// levelColors are the colors of the level names, keyed by level.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "#8A8A8A",
	slog.LevelInfo:  "#5FAFD7",
	slog.LevelWarn:  "#D7AF00",
	slog.LevelError: "#D75F5F",
}

// NewHandler returns a text [slog.Handler] writing to w that shows
// messages at or above [UserLevel], with level names colored when w is
// a terminal that supports color.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: levelVar{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey || out.Profile == termenv.Ascii {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			st := out.String(lv.String()).Bold()
			if c, ok := levelColors[lv]; ok {
				st = st.Foreground(out.Color(c))
			}
			return slog.String(a.Key, st.String())
		},
	}
	return slog.NewTextHandler(w, opts)
}

// levelVar is a [slog.Leveler] that always reports the current [UserLevel],
// so that changes to it take effect on loggers already installed.
type levelVar struct{}

func (levelVar) Level() slog.Level {
	return UserLevel
}

// SetDefaultLogger sets the default logger to one using [NewHandler]
// writing to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
