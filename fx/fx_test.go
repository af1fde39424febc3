// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fx

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/armas/base/tolassert"
	"cogentcore.org/armas/colors"
	"cogentcore.org/armas/ease"
	"cogentcore.org/armas/math32"
	"cogentcore.org/armas/surface"
	"cogentcore.org/armas/surface/surfacetest"
	"cogentcore.org/armas/theme"
)

const frame = float32(1.0 / 60)

// circularDist returns the distance between a and b modulo span.
func circularDist(a, b, span float32) float32 {
	d := math32.Abs(a - b)
	return min(d, span-d)
}

func TestCarouselWrap(t *testing.T) {
	const span = 520
	st := CarouselState{}
	for step := 1; step <= 100; step++ {
		st.Step(0.1, 100, Right, span, false)
		require.GreaterOrEqual(t, st.Offset, float32(0))
		require.Less(t, st.Offset, float32(span))
		want := math32.Wrap(float32(step)*10, span)
		assert.Less(t, circularDist(st.Offset, want, span), float32(0.05), "step %d", step)
	}

	st = CarouselState{}
	st.Step(0.1, 100, Left, span, false)
	assert.InDelta(t, 510, st.Offset, 1e-3)
	st.Step(0.1, 100, Left, span, true)
	assert.InDelta(t, 510, st.Offset, 1e-3)
	assert.True(t, st.Paused)

	st.Step(0.1, 100, Up, 0, false)
	assert.Zero(t, st.Offset)
}

func TestCarouselOffsetInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	dirs := []Directions{Left, Right, Up, Down}
	for range 200 {
		st := CarouselState{}
		span := 1 + rng.Float32()*2000
		speed := rng.Float32() * 5000
		dir := dirs[rng.Intn(len(dirs))]
		for range 200 {
			st.Step(rng.Float32()*0.5, speed, dir, span, rng.Intn(5) == 0)
			require.GreaterOrEqual(t, st.Offset, float32(0))
			require.Less(t, st.Offset, span)
		}
	}
}

func TestCarouselShow(t *testing.T) {
	s := surfacetest.New(400, 300)
	c := NewCarousel().SetItemSize(math32.Vec2(100, 50)).SetSpeed(100)
	assert.Equal(t, float32(3*100+3*16), c.Span(3))
	calls := 0
	show := func(s surface.Surface) {
		c.Show(s, "logos", 3, func(s surface.Surface, i int) {
			calls++
			r := s.AllocateExactSize(math32.Vec2(100, 50), 0).Rect
			s.FillRect(r, 0, colors.White)
		})
	}
	s.Frame(show)
	assert.Equal(t, 6, calls)
	assert.Equal(t, 1, s.Repaints)
	for _, cmd := range s.Filter(surfacetest.FillRect) {
		assert.Equal(t, math32.B2(0, 0, 400, 50), cmd.Clip)
	}

	s.Pointer, s.PointerIn = math32.Vec2(10, 10), true
	s.Frame(show)
	assert.Equal(t, 0, s.Repaints)
	st, ok := surface.Lookup[CarouselState](s, surface.Hash("carousel", "logos"))
	require.True(t, ok)
	assert.True(t, st.Paused)
}

func TestMeterPeakHold(t *testing.T) {
	st := MeterState{}.Default()
	st.Step(0.2, frame, DefaultPeakHold, DefaultPeakDecay)
	st.Step(0.2, frame, DefaultPeakHold, DefaultPeakDecay)
	st.Step(0.9, frame, DefaultPeakHold, DefaultPeakDecay)
	assert.Equal(t, float32(0.9), st.Peak)
	for k := 1; k <= 89; k++ {
		st.Step(0.2, frame, DefaultPeakHold, DefaultPeakDecay)
		require.Equal(t, float32(0.9), st.Peak, "frame %d after the spike", k)
	}
	for k := 90; k <= 120; k++ {
		st.Step(0.2, frame, DefaultPeakHold, DefaultPeakDecay)
	}
	assert.InDelta(t, 0.65, st.Peak, 0.02)
	for range 600 {
		st.Step(0.2, frame, DefaultPeakHold, DefaultPeakDecay)
	}
	assert.Equal(t, float32(0.2), st.Peak)
	assert.InDelta(t, 0.2, st.Level, 1e-3)
	assert.False(t, st.Active(0.2))

	st.Step(math32.NaN(), frame, 1, 1)
	assert.False(t, math32.IsNaN(st.Level))
}

func TestMeterColor(t *testing.T) {
	p := theme.Dark().Palette
	assert.Equal(t, p.Success, MeterColor(&p, 0.5))
	assert.Equal(t, p.Warning, MeterColor(&p, 0.9))
	assert.Equal(t, p.Destructive, MeterColor(&p, 1))
	lv := float32(0.8)
	assert.Equal(t, colors.Interpolate(p.Success, p.Warning, (lv-0.7)/0.2), MeterColor(&p, lv))
}

func TestMeterShow(t *testing.T) {
	s := surfacetest.New(200, 200)
	m := NewMeter().SetSegments(10)
	for range 300 {
		s.Frame(func(s surface.Surface) { m.Show(s, "vu", 1) })
	}
	assert.Equal(t, 0, s.Repaints)
	assert.Equal(t, 11, s.Count(surfacetest.FillRect))
	assert.Equal(t, 1, s.Count(surfacetest.Line))

	m.SetSegments(0)
	s.Frame(func(s surface.Surface) { m.Show(s, "vu", 0.5) })
	assert.Equal(t, 1, s.Repaints)
	rects := s.Filter(surfacetest.FillRect)
	require.Len(t, rects, 2)
	assert.Greater(t, rects[1].Rect.Height(), float32(100))
}

func TestScrambleComplete(t *testing.T) {
	sc := NewScramble("Hello, World").SetSpeed(2).SetDuration(0.5)
	assert.Equal(t, float32(0.25), sc.RevealTime())
	st := TextState{}
	for range 20 {
		st.Step(frame, sc.RevealTime(), false, 0)
	}
	assert.Equal(t, Complete, st.Phase)
	assert.Equal(t, float32(1), st.Progress(sc.RevealTime()))
	assert.Equal(t, "Hello, World", sc.Current(&st))

	mid := ScrambleText("ab cd", 0.1, "x", 7)
	assert.Equal(t, "xx xx", mid)
	assert.Equal(t, utf8.RuneCountInString("héllo wörld"), utf8.RuneCountInString(ScrambleText("héllo wörld", 0.5, DefaultCharset, 1)))
	assert.Equal(t, ScrambleText("hello", 0.2, DefaultCharset, 4), ScrambleText("hello", 0.2, DefaultCharset, 4))
}

func TestScrambleShow(t *testing.T) {
	s := surfacetest.New(400, 100)
	sc := NewScramble("armas").SetSpeed(2).SetDuration(0.5)
	total, frames := s.Run(60, func(s surface.Surface) { sc.Show(s, "title") })
	assert.Equal(t, total, frames)
	assert.Less(t, frames, 20)
	assert.Equal(t, 0, s.Repaints)
	assert.Equal(t, []string{"armas"}, s.Texts())
}

func TestVisibleText(t *testing.T) {
	assert.Equal(t, "hello", VisibleText("hello world", 0.5, false))
	assert.Equal(t, "", VisibleText("hello world", 0, false))
	assert.Equal(t, "hello world", VisibleText("hello world", 1, false))
	assert.Equal(t, "hé", VisibleText("héllo", 0.4, false))
	assert.Equal(t, "hello big", VisibleText("hello big world", 0.7, true))
	assert.Equal(t, "", VisibleText("hello big world", 0.2, true))
	assert.Equal(t, "  hello  big world", VisibleText("  hello  big world ", 1, true))
	assert.Equal(t, []string{"a", "b", "c"}, wordsOf(" a  b\tc "))
}

func TestTextStateLoop(t *testing.T) {
	st := TextState{}
	st.Step(0.5, 1, true, 0.5)
	assert.Equal(t, Revealing, st.Phase)
	assert.Equal(t, float32(0.5), st.Progress(1))
	st.Step(0.5, 1, true, 0.5)
	assert.Equal(t, Waiting, st.Phase)
	assert.True(t, st.Active())
	st.Step(0.5, 1, true, 0.5)
	assert.Equal(t, Revealing, st.Phase)
	assert.Zero(t, st.Elapsed)
	assert.Equal(t, "Waiting", Waiting.String())

	once := TextState{}
	once.Step(2, 1, false, 0)
	assert.Equal(t, Complete, once.Phase)
	assert.False(t, once.Active())
}

func TestCursorVisible(t *testing.T) {
	assert.True(t, CursorVisible(0.1, 2))
	assert.False(t, CursorVisible(0.3, 2))
	assert.True(t, CursorVisible(0.6, 2))
	assert.True(t, CursorVisible(0.3, 0))
}

func TestTypewriterShow(t *testing.T) {
	s := surfacetest.New(400, 100)
	tw := NewTypewriter("hello")
	_, frames := s.Run(100, func(s surface.Surface) { tw.Show(s, 1) })
	assert.Less(t, frames, 20)
	assert.Equal(t, []string{"hello"}, s.Texts())
	assert.Equal(t, 0, s.Count(surfacetest.FillRect))

	tw.SetCursor(true)
	total, _ := s.Run(100, func(s surface.Surface) { tw.Show(s, 1) })
	assert.Equal(t, 100, total)
}

func TestRevealExit(t *testing.T) {
	st := RevealState{}
	st.Step(frame, 120, true, 0.4)
	assert.Equal(t, float32(120), st.Width)
	st.Step(0.2, 0, false, 0.4)
	assert.True(t, st.Exiting)
	assert.InDelta(t, 120*(1-ease.CubicOut(0.5)), st.Width, 1e-3)
	st.Step(0.2, 0, false, 0.4)
	assert.Zero(t, st.Width)
	assert.False(t, st.Exiting)
}

func TestRevealCardShow(t *testing.T) {
	s := surfacetest.New(400, 200)
	rc := NewRevealCard(math32.Vec2(300, 100), "static", "revealed")
	s.Pointer, s.PointerIn = math32.Vec2(150, 50), true
	s.Frame(func(s surface.Surface) { rc.Show(s, "card") })
	assert.Equal(t, []string{"static", "revealed"}, s.Texts())
	assert.Equal(t, math32.B2(0, 0, 150, 100), s.Filter(surfacetest.Text)[1].Clip)
	assert.Equal(t, 0, s.Repaints)

	s.PointerIn = false
	_, frames := s.Run(60, func(s surface.Surface) { rc.Show(s, "card") })
	assert.InDelta(t, 24, frames, 1)
	assert.Equal(t, []string{"static"}, s.Texts())
}

func TestSpotlight(t *testing.T) {
	s := surfacetest.New(400, 400)
	sp := NewSpotlight(math32.Vec2(200, 100))
	s.Frame(func(s surface.Surface) { sp.Show(s, nil) })
	assert.Equal(t, 0, s.Count(surfacetest.FillCircle))
	assert.Equal(t, 0, s.Repaints)

	s.Pointer, s.PointerIn = math32.Vec2(50, 50), true
	s.Frame(func(s surface.Surface) { sp.Show(s, nil) })
	circles := s.Filter(surfacetest.FillCircle)
	require.Len(t, circles, 50)
	assert.Equal(t, 1, s.Repaints)
	for _, c := range circles {
		assert.Equal(t, math32.B2(0, 0, 200, 100), c.Clip)
	}
	assert.Equal(t, float32(200), circles[0].Radius)
	tolassert.EqualTol(t, 1, RingAlpha(49, 50, 1), 1e-6)
	tolassert.EqualTol(t, 0.25, RingAlpha(24, 50, 1), 1e-6)
}

func TestAurora(t *testing.T) {
	r := math32.B2(0, 0, 300, 200)
	pal := theme.Dark().Palette
	blobs := DefaultBlobs(&pal)
	st := AuroraState{}
	for range 1000 {
		st.Step(blobs, 0.05, r)
		for _, b := range st.Blobs {
			require.True(t, r.ContainsPoint(b.Pos))
		}
	}
	assert.NotEqual(t, blobs[0].Phase, st.Blobs[0].Phase)

	s := surfacetest.New(300, 200)
	a := NewAurora(math32.Vec2(300, 200))
	total, _ := s.Run(10, func(s surface.Surface) { a.Show(s, "bg", nil) })
	assert.Equal(t, 10, total)
	assert.Equal(t, 4, s.Count(surfacetest.Mesh))
}

func TestMeteors(t *testing.T) {
	r := math32.B2(0, 0, 400, 300)
	m := NewMeteors(r.Size())
	st := MeteorState{}
	for range 100 {
		st.Step(m, 0.05, r, 42)
		for _, mt := range st.Meteors {
			require.LessOrEqual(t, mt.Progress, float32(1))
			require.True(t, r.Shrink(-1e-3).ContainsPoint(mt.Start))
			require.GreaterOrEqual(t, mt.Rate, m.SpeedMin/(r.Size().Length()+m.Tail))
		}
	}
	assert.NotEmpty(t, st.Meteors)
	assert.Equal(t, uint64(8), st.Spawned)

	m.SetInterval(0)
	for range 100 {
		st.Step(m, 0.05, r, 42)
	}
	assert.Empty(t, st.Meteors)

	s := surfacetest.New(400, 300)
	s.Frame(func(s surface.Surface) { m.Show(s, "sky") })
	assert.Equal(t, 0, s.Repaints)
	assert.Empty(t, s.RepaintAfter)

	m.SetInterval(0.5)
	s.Frame(func(s surface.Surface) { m.Show(s, "sky") })
	assert.Equal(t, 0, s.Repaints)
	require.Len(t, s.RepaintAfter, 1)
	assert.InDelta(t, 0.5-1.0/60, s.RepaintAfter[0], 1e-4)

	for range 40 {
		s.Frame(func(s surface.Surface) { m.Show(s, "sky") })
	}
	assert.Equal(t, 1, s.Repaints)
	assert.Equal(t, TrailSegments, s.Count(surfacetest.Line))
}

func TestSparkles(t *testing.T) {
	sp := Sparkle{Delay: 1, MaxLife: 2}
	assert.Zero(t, sp.Opacity(0.5))
	assert.InDelta(t, 0.6, sp.Opacity(1), 1e-5)
	assert.InDelta(t, 1, sp.Opacity(1.5), 1e-5)
	assert.InDelta(t, 0.2, sp.Opacity(2.5), 1e-5)
	assert.InDelta(t, 0.6, sp.Opacity(3), 1e-5)

	s := surfacetest.New(300, 200)
	f := NewSparkles(math32.Vec2(300, 200)).SetCount(12)
	s.Run(120, func(s surface.Surface) { f.Show(s, "stars", nil) })
	assert.Equal(t, 1, s.Repaints)
	st, ok := surface.Lookup[SparklesState](s, surface.Hash("sparkles", "stars"))
	require.True(t, ok)
	require.Len(t, st.Particles, 12)
	lives := map[float32]bool{}
	for _, p := range st.Particles {
		assert.GreaterOrEqual(t, p.Size, f.MinSize)
		assert.Less(t, p.Size, f.MaxSize)
		lives[p.MaxLife] = true
	}
	assert.Greater(t, len(lives), 1)
	assert.Equal(t, s.Count(surfacetest.Mesh), s.Count(surfacetest.FillCircle))
	assert.Zero(t, s.Count(surfacetest.Polygon))

	m := star(math32.Vec2(10, 10), 4, colors.White)
	require.Len(t, m.Vertices, 9)
	assert.Equal(t, 8, m.NumTriangles())
	assert.Equal(t, math32.Vec2(10, 10), m.Vertices[0].Pos)
	tolassert.EqualVector2(t, math32.Vec2(10, 6), m.Vertices[1].Pos, 1e-5)
	// the fan covers the concave outline exactly: 8 triangles between
	// a tip at r and a notch at 0.3r, 45 degrees apart
	var area float32
	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := m.Vertices[m.Indices[i]].Pos, m.Vertices[m.Indices[i+1]].Pos, m.Vertices[m.Indices[i+2]].Pos
		area += b.Sub(a).Cross(c.Sub(a)) / 2
	}
	assert.InDelta(t, 8*0.5*4*1.2*math32.Sin(math32.Pi/4), area, 1e-4)
}

func TestPulseBlinkShimmer(t *testing.T) {
	s := surfacetest.New(100, 100)
	s.Frame(func(s surface.Surface) {
		assert.Equal(t, float32(1), Pulse(s, 0))
		assert.True(t, Blink(s, 0))
	})
	assert.Equal(t, 0, s.Repaints)

	s.Time = 0.25
	s.Frame(func(s surface.Surface) {
		assert.InDelta(t, 1, Pulse(s, 2), 1e-5)
		assert.False(t, Blink(s, 2))
		NewShimmer().Show(s, math32.B2(0, 0, 100, 20))
	})
	assert.Equal(t, 1, s.Repaints)
	assert.Equal(t, 1, s.Count(surfacetest.Mesh))

	s.Frame(func(s surface.Surface) {
		NewShimmer().SetEnabled(false).Show(s, math32.B2(0, 0, 100, 20))
	})
	assert.Equal(t, 0, s.Repaints)
}

// idle shows every effect in a configuration that settles.
func idle(s surface.Surface) {
	NewMeter().Show(s, "meter", 0)
	NewTypewriter("done").Show(s, "tw")
	NewScramble("done").Show(s, "sc")
	NewRevealCard(math32.Vec2(100, 40), "a", "b").Show(s, "rc")
	NewSpotlight(math32.Vec2(100, 40)).Show(s, nil)
	NewCarousel().SetSpeed(0).Show(s, "car", 3, func(s surface.Surface, i int) {})
	NewMeteors(math32.Vec2(100, 40)).SetInterval(0).Show(s, "met")
	NewSparkles(math32.Vec2(100, 40)).SetCount(0).Show(s, "sp", nil)
	NewShimmer().SetEnabled(false).Show(s, math32.B2(0, 0, 10, 10))
	Pulse(s, 0)
	Blink(s, 0)
}

func TestFramePacingIdle(t *testing.T) {
	s := surfacetest.New(800, 2000)
	s.Run(120, idle)
	require.Equal(t, 0, s.Repaints, "effects settle")
	total, _ := s.Run(10000, idle)
	assert.Equal(t, 0, total)
}

func TestFramePacingActive(t *testing.T) {
	s := surfacetest.New(800, 2000)
	m := NewMeter()
	a := NewAurora(math32.Vec2(100, 100))
	total, frames := s.Run(100, func(s surface.Surface) {
		m.Show(s, "meter", 1)
		a.Show(s, "aurora", nil)
		Pulse(s, 1)
		NewTypewriter(strings.Repeat("x", 100)).Show(s, "tw")
	})
	assert.Equal(t, 100, total)
	assert.Equal(t, 100, frames)
}
