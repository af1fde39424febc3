// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fx

import (
	"fmt"
	"image/color"
	"unicode"
	"unicode/utf8"

	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/theme"
)

// TextPhases are the phases of an animated text.
type TextPhases int32

const (
	// Revealing is while the text is being revealed.
	Revealing TextPhases = iota

	// Complete is when a non-looping text is fully revealed.
	Complete

	// Waiting is the delay before a looping text starts over.
	Waiting
)

var textPhaseNames = [...]string{"Revealing", "Complete", "Waiting"}

func (p TextPhases) String() string {
	if p < 0 || int(p) >= len(textPhaseNames) {
		return fmt.Sprintf("TextPhases(%d)", int(p))
	}
	return textPhaseNames[p]
}

// TextState is the cached state of an animated text.
type TextState struct {
	Phase TextPhases

	// Elapsed is the reveal time.
	Elapsed float32

	// Wait is the time spent in the Waiting phase.
	Wait float32

	// Clock is the total time shown, driving cursor blink
	// and scramble sampling.
	Clock float32
}

// Step advances the text by dt for a reveal of the given duration,
// looping after delay if loop is set.
func (st *TextState) Step(dt, duration float32, loop bool, delay float32) {
	st.Clock += dt
	switch st.Phase {
	case Revealing:
		st.Elapsed += dt
		if st.Elapsed >= duration {
			st.Elapsed = max(duration, 0)
			st.Phase = Complete
			if loop {
				st.Phase, st.Wait = Waiting, 0
			}
		}
	case Waiting:
		st.Wait += dt
		if st.Wait >= delay {
			st.Phase, st.Elapsed, st.Wait = Revealing, 0, 0
		}
	case Complete:
		if loop {
			st.Phase, st.Wait = Waiting, 0
		}
	}
}

// Progress returns elapsed/duration clamped to [0, 1].
func (st *TextState) Progress(duration float32) float32 {
	if !(duration > 0) {
		return 1
	}
	return math32.Clamp01(st.Elapsed / duration)
}

// Active returns whether the text is still changing.
func (st *TextState) Active() bool {
	return st.Phase != Complete
}

// VisibleText returns the part of text shown at the given progress:
// the first floor(progress*n) runes, or whitespace separated words
// if words is set.
func VisibleText(text string, progress float32, words bool) string {
	progress = math32.Clamp01(progress)
	if !words {
		n := utf8.RuneCountInString(text)
		k := int(math32.Floor(progress * float32(n)))
		i := 0
		for range k {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
		}
		return text[:i]
	}
	var ends []int
	inWord := false
	for i, r := range text {
		sp := unicode.IsSpace(r)
		if inWord && sp {
			ends = append(ends, i)
		}
		inWord = !sp
	}
	if inWord {
		ends = append(ends, len(text))
	}
	k := int(math32.Floor(progress * float32(len(ends))))
	if k == 0 {
		return ""
	}
	return text[:ends[k-1]]
}

// CursorVisible returns whether a cursor blinking at hz is shown at
// the given time; it is always shown if hz is not positive.
func CursorVisible(time, hz float32) bool {
	if !(hz > 0) {
		return true
	}
	period := 1 / hz
	return math32.Wrap(time, period) < period/2
}

// Typewriter reveals a text character by character, or word by word.
type Typewriter struct {
	Text string

	// Speed is the reveal speed in characters or words per second.
	Speed float32

	// Words reveals whole words.
	Words bool

	// Cursor shows a blinking cursor after the text.
	Cursor bool

	// CursorBlink is the cursor blink frequency in Hz.
	CursorBlink float32

	// Loop starts over after LoopDelay seconds.
	Loop      bool
	LoopDelay float32

	Font surface.Font

	// Color is the text color; zero uses the foreground color.
	Color color.RGBA
}

// NewTypewriter returns a new typewriter for text.
func NewTypewriter(text string) *Typewriter {
	return &Typewriter{Text: text, Speed: 20, CursorBlink: 2, LoopDelay: 1, Font: surface.Body(surface.DefaultFontSize)}
}

// SetSpeed sets the speed in units per second.
func (tw *Typewriter) SetSpeed(speed float32) *Typewriter {
	tw.Speed = max(speed, 0)
	return tw
}

// SetWords sets whether to reveal whole words.
func (tw *Typewriter) SetWords(words bool) *Typewriter {
	tw.Words = words
	return tw
}

// SetCursor sets whether to show a blinking cursor.
func (tw *Typewriter) SetCursor(cursor bool) *Typewriter {
	tw.Cursor = cursor
	return tw
}

// SetLoop sets looping with the given delay.
func (tw *Typewriter) SetLoop(loop bool, delay float32) *Typewriter {
	tw.Loop, tw.LoopDelay = loop, max(delay, 0)
	return tw
}

// Duration returns the time in seconds to reveal the whole text.
func (tw *Typewriter) Duration() float32 {
	if !(tw.Speed > 0) {
		return 0
	}
	n := utf8.RuneCountInString(tw.Text)
	if tw.Words {
		n = len(wordsOf(tw.Text))
	}
	return float32(n) / tw.Speed
}

func wordsOf(s string) []string {
	var ws []string
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				ws = append(ws, s[start:i])
			}
			start = -1
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		ws = append(ws, s[start:])
	}
	return ws
}

// Show shows the typewriter.
func (tw *Typewriter) Show(s surface.Surface, key any) surface.Response {
	th := theme.Get(s)
	dur := tw.Duration()
	st := surface.Update(s, s.ID("typewriter", key), func(st *TextState) {
		st.Step(dt(s), dur, tw.Loop, tw.LoopDelay)
	})
	size := s.MeasureText(tw.Text, tw.Font)
	resp := s.AllocateExactSize(size, surface.Hover)
	c := tw.Color
	if c == (color.RGBA{}) {
		c = th.Palette.Foreground
	}
	vis := VisibleText(tw.Text, st.Progress(dur), tw.Words)
	tr := s.Text(resp.Rect.Min, surface.AlignLeftTop, vis, tw.Font, c)
	if tw.Cursor && CursorVisible(st.Clock, tw.CursorBlink) {
		x := max(tr.Max.X, resp.Rect.Min.X)
		s.FillRect(math32.B2(x+1, resp.Rect.Min.Y, x+3, resp.Rect.Min.Y+tw.Font.Size), 0, c)
	}
	surface.ContinueIf(s, st.Active() || (tw.Cursor && tw.CursorBlink > 0))
	return resp
}

// DefaultCharset is the default scramble character set.
const DefaultCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%&*"

// ScrambleText returns target as shown at the given progress: rune i of
// n settles on its target once progress reaches 0.7*i/n + 0.3, and
// until then shows a charset rune picked by tick. Whitespace is kept.
func ScrambleText(target string, progress float32, charset string, tick uint64) string {
	cs := []rune(charset)
	rs := []rune(target)
	n := float32(len(rs))
	for i, r := range rs {
		if unicode.IsSpace(r) || len(cs) == 0 {
			continue
		}
		end := float32(i)/n*0.7 + 0.3
		if progress >= end {
			continue
		}
		rs[i] = cs[int(noise("scramble", tick, i)*float32(len(cs)))%len(cs)]
	}
	return string(rs)
}

// Scramble reveals a text from random characters, left to right.
type Scramble struct {
	Text string

	// Duration is the reveal time in seconds at speed 1.
	Duration float32

	// Speed scales the reveal rate; values that are not positive
	// count as 1.
	Speed float32

	// Charset is the set of random characters.
	Charset string

	// FrameInterval is how often in seconds the random characters change.
	FrameInterval float32

	Loop      bool
	LoopDelay float32

	Font  surface.Font
	Color color.RGBA
}

// NewScramble returns a new scramble for text.
func NewScramble(text string) *Scramble {
	return &Scramble{Text: text, Duration: 1, Speed: 1, Charset: DefaultCharset, FrameInterval: 0.05, LoopDelay: 1, Font: surface.Mono(surface.DefaultFontSize)}
}

// SetSpeed sets the speed multiplier.
func (sc *Scramble) SetSpeed(speed float32) *Scramble {
	sc.Speed = speed
	return sc
}

// SetDuration sets the duration at speed 1.
func (sc *Scramble) SetDuration(d float32) *Scramble {
	sc.Duration = max(d, 0)
	return sc
}

// RevealTime returns the time in seconds the reveal takes.
func (sc *Scramble) RevealTime() float32 {
	if !(sc.Speed > 0) || math32.IsInf(sc.Speed, 1) {
		return sc.Duration
	}
	return sc.Duration / sc.Speed
}

// Current returns the text shown in the given state.
func (sc *Scramble) Current(st *TextState) string {
	tick := uint64(0)
	if sc.FrameInterval > 0 {
		tick = uint64(st.Clock / sc.FrameInterval)
	}
	return ScrambleText(sc.Text, st.Progress(sc.RevealTime()), sc.Charset, tick)
}

// Show shows the scramble.
func (sc *Scramble) Show(s surface.Surface, key any) surface.Response {
	th := theme.Get(s)
	st := surface.Update(s, s.ID("scramble", key), func(st *TextState) {
		st.Step(dt(s), sc.RevealTime(), sc.Loop, sc.LoopDelay)
	})
	resp := s.AllocateExactSize(s.MeasureText(sc.Text, sc.Font), surface.Hover)
	c := sc.Color
	if c == (color.RGBA{}) {
		c = th.Palette.Foreground
	}
	s.Text(resp.Rect.Min, surface.AlignLeftTop, sc.Current(&st), sc.Font, c)
	surface.ContinueIf(s, st.Active())
	return resp
}
