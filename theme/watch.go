// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"cogentcore.org/armas/base/errors"
	"cogentcore.org/armas/surface"
)

// Watcher reloads a theme file when it changes on disk. It never blocks
// and starts no goroutines of its own: the UI thread calls [Watcher.Poll]
// or [Watcher.Apply] once per frame to pick up changes.
type Watcher struct {
	path    string
	current Theme
	watcher *fsnotify.Watcher
}

// Watch loads the theme file at path and starts watching it. The
// directory is watched rather than the file so that editors that save
// by replacing the file are handled.
func Watch(path string) (*Watcher, error) {
	th, err := Load(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{path: filepath.Clean(path), current: th, watcher: fw}, nil
}

// Theme returns the most recently loaded theme.
func (w *Watcher) Theme() Theme {
	return w.current
}

// Poll drains pending file events without blocking, reloading the theme
// if the file was written or replaced. It returns the current theme and
// whether it changed. A file that fails to load is logged and the
// previous theme is kept.
func (w *Watcher) Poll() (Theme, bool) {
	reload := false
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return w.current, w.finish(reload)
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				reload = true
			}
		case err, ok := <-w.watcher.Errors:
			if ok {
				errors.Log(fmt.Errorf("theme: watcher: %w", err))
			}
		default:
			return w.current, w.finish(reload)
		}
	}
}

func (w *Watcher) finish(reload bool) bool {
	if !reload {
		return false
	}
	th, err := Load(w.path)
	if errors.Log(err) != nil {
		return false
	}
	if th == w.current {
		return false
	}
	w.current = th
	return true
}

// Apply polls for changes and stores a changed theme on the host,
// returning whether it did.
func (w *Watcher) Apply(v surface.Values) bool {
	th, changed := w.Poll()
	if changed {
		Set(v, th)
	}
	return changed
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
