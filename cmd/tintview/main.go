// Command tintview previews a tint animation in the terminal. Space pauses
// and resumes, r resets, q quits.
package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/seblit/tintlayout/stream"
	"github.com/seblit/tintlayout/tint"
)

type viewer struct {
	screen   tcell.Screen
	raster   *stream.Rasterizer
	factory  tint.Factory
	animated *tint.Animated
	dirty    bool
	lapsSeen int
}

func newViewer(screen tcell.Screen, factory tint.Factory) *viewer {
	v := new(viewer)
	v.screen = screen
	v.raster = stream.NewRasterizer(colorful.Color{})
	v.factory = factory
	v.dirty = true
	if animator, ok := factory.(tint.Animator); ok {
		v.animated = animator.Timeline()
		tint.RegisterRedrawTarget(v.animated, v)
		v.animated.AddLapListener(v)
	}
	return v
}

// Invalidate schedules a redraw on the next tick.
func (v *viewer) Invalidate() {
	v.dirty = true
}

// OnLapFinished counts lap notifications for the status line.
func (v *viewer) OnLapFinished(a *tint.Animated) {
	v.lapsSeen++
}

func (v *viewer) close() {
	if v.animated != nil {
		v.animated.RemoveLapListener(v)
		tint.UnregisterRedrawTarget(v.animated, v)
	}
}

func (v *viewer) draw() {
	width, height := v.screen.Size()
	if height < 2 {
		return
	}
	paint := v.factory.CreateTint(width, height-1)
	frame := v.raster.Rasterize(paint, width, height-1)
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			r, g, b := frame.At(x, y).RGB255()
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			v.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	v.drawStatus(width, height-1)
	v.screen.Show()
}

func (v *viewer) drawStatus(width, row int) {
	status := "static tint"
	if v.animated != nil {
		state := "stopped"
		switch {
		case v.animated.IsRunning():
			state = "running"
		case v.animated.IsPaused():
			state = "paused"
		}
		status = fmt.Sprintf(" %s  elapsed %dms  laps %d (%d notified)  [space] pause  [r] reset  [q] quit",
			state, v.animated.ElapsedTime(), v.animated.CompletedLaps(), v.lapsSeen)
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		v.screen.SetContent(x, row, r, nil, style)
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
		return false
	case ev.Rune() == 'q':
		return false
	case ev.Rune() == ' ' && v.animated != nil:
		if v.animated.IsRunning() {
			v.animated.Pause()
			v.dirty = true
		} else {
			v.animated.Start()
		}
	case ev.Rune() == 'r' && v.animated != nil:
		v.animated.Reset()
	}
	return true
}

func main() {
	kind := flag.String("kind", "shimmer", "Tint kind: solid, gradient, swipe, transition, shimmer.")
	colors := flag.String("colors", "#ffffff", "Comma separated colors.")
	angle := flag.Float64("angle", 45, "Gradient angle in degrees.")
	duration := flag.Duration("duration", 2*time.Second, "Lap duration.")
	endBehavior := flag.String("end", "loop", "End behavior: stick, loop, reset.")
	easing := flag.String("easing", "", "Easing curve name, empty for linear.")
	blendRange := flag.Float64("blend", 0.2, "Swipe blend range.")
	size := flag.Float64("size", 0.3, "Shimmer band size.")
	fadeRange := flag.Float64("fade", 1, "Shimmer fade range.")
	flag.Parse()

	config := stream.TintConfig{
		Kind:        *kind,
		Colors:      strings.Split(*colors, ","),
		Angle:       *angle,
		DurationMs:  duration.Milliseconds(),
		EndBehavior: *endBehavior,
		Easing:      *easing,
		BlendRange:  *blendRange,
		Size:        *size,
		FadeRange:   *fadeRange,
	}
	factory, err := config.BuildFactory()
	if err != nil {
		panic(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		panic(err)
	}
	if err = screen.Init(); err != nil {
		panic(err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	v := newViewer(screen, factory)
	defer v.close()
	if v.animated != nil {
		v.animated.Start()
	}

	frameTimer := time.NewTicker(33 * time.Millisecond)
	defer frameTimer.Stop()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				v.screen.Sync()
				v.dirty = true
			}
		case <-frameTimer.C:
			if v.dirty {
				v.dirty = false
				v.draw()
			}
		}
	}
}
