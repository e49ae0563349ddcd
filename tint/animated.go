package tint

import (
	"fmt"
	"slices"
	"time"
	"weak"
)

// EndBehavior is what an animation does once a lap completes.
type EndBehavior int

const (
	// EndStick keeps the last frame of the animation.
	EndStick EndBehavior = iota
	// EndLoop restarts the animation from the beginning, indefinitely.
	EndLoop
	// EndReset snaps back to the first frame of the animation.
	EndReset
)

// An Interpolator maps raw animation progress in [0,1] to eased progress.
// The curves in github.com/fogleman/ease satisfy this signature directly.
type Interpolator func(t float64) float64

// A LapListener is notified when an animation completes a lap. Lap listeners
// are held strongly; callers must remove listeners they no longer want
// notified or the factory will keep them alive.
type LapListener interface {
	OnLapFinished(a *Animated)
}

// A RedrawListener is a host that wants to redraw the current tint. Redraw
// listeners are held weakly through RegisterRedrawTarget, so a host that is
// dropped without unregistering is skipped once collected.
type RedrawListener interface {
	Invalidate()
}

// AnimationConfig carries the timeline parameters shared by all animated
// factories.
type AnimationConfig struct {
	// Duration of one lap. Must be positive.
	Duration time.Duration
	// EndBehavior once a lap completes. EndStick by default.
	EndBehavior EndBehavior
	// Interpolator eases the reported progress. Linear when nil.
	Interpolator Interpolator
	// DefaultBlend is applied to frames whose Paint leaves Blend unset.
	// BlendSourceAtop when zero; BlendNone disables the default.
	DefaultBlend BlendMode
}

// frameFunc is the per-effect hook an animated factory plugs into its
// timeline: given the target size and the current animation state, build
// the frame's Paint.
type frameFunc func(width, height int, progress float64, completedLaps int) Paint

// Animated drives a tint animation: it maps the wall clock to a progress
// value under a configured end behavior and calls its frame hook once per
// tint query. It is not safe for concurrent use; all calls must come from
// the single thread that owns the draw loop.
type Animated struct {
	duration     int64 // ms
	endBehavior  EndBehavior
	interpolator Interpolator
	defaultBlend BlendMode
	frame        frameFunc

	now func() int64 // wall clock in ms, swappable in tests

	startTime     int64 // 0 = never started
	pauseDuration int64 // 0 = not paused
	completedLaps int
	finished      bool

	lapListeners []LapListener
	redrawRefs   []redrawRef
}

// newAnimated validates the config and builds the timeline around the given
// frame hook.
func newAnimated(config AnimationConfig, frame frameFunc) (*Animated, error) {
	if config.Duration < time.Millisecond {
		return nil, fmt.Errorf("tint: animation duration must be at least 1ms, got %v", config.Duration)
	}
	a := new(Animated)
	a.duration = config.Duration.Milliseconds()
	a.endBehavior = config.EndBehavior
	a.interpolator = config.Interpolator
	a.defaultBlend = config.DefaultBlend
	if a.defaultBlend == BlendUnset {
		a.defaultBlend = BlendSourceAtop
	}
	a.frame = frame
	a.now = func() int64 { return time.Now().UnixMilli() }
	a.finished = true
	return a, nil
}

// CreateTint samples the timeline, obtains the frame from the hook and
// handles lap bookkeeping. Lap listeners are notified at most once per call,
// after the frame has been computed; if elapsed time jumped across several
// lap boundaries since the previous call there is still only one
// notification. A redraw is requested afterwards while the animation is
// still running, so hosts keep scheduling draw passes until it finishes.
func (a *Animated) CreateTint(width, height int) Paint {
	elapsed := a.ElapsedTime()
	laps := int(elapsed / a.duration)
	progress := a.elapsedDuration(elapsed, laps) / float64(a.duration)
	if a.interpolator != nil {
		progress = a.interpolator(progress)
	}
	paint := a.frame(width, height, progress, laps)
	if laps > a.completedLaps {
		a.completedLaps = laps
		a.finished = a.endBehavior != EndLoop
		a.notifyLapListeners()
	}
	if paint.Blend == BlendUnset {
		paint.Blend = a.defaultBlend
	}
	if a.IsRunning() {
		a.invalidate()
	}
	return paint
}

// elapsedDuration maps total elapsed time to the raw progress within the
// current lap, in ms, according to the end behavior.
func (a *Animated) elapsedDuration(elapsed int64, completedLaps int) float64 {
	switch a.endBehavior {
	case EndLoop:
		return float64(elapsed - a.duration*int64(completedLaps))
	case EndStick:
		return float64(min(a.duration, elapsed))
	default: // EndReset
		if elapsed > a.duration {
			return 0
		}
		return float64(elapsed)
	}
}

// Start launches the animation, or resumes it if paused. Starting a running
// animation has no effect; a finished animation picks its clock back up
// until Reset. Requests a redraw.
func (a *Animated) Start() {
	a.finished = false
	if a.IsPaused() {
		a.startTime = a.now() - a.pauseDuration
		a.pauseDuration = 0
		a.invalidate()
	} else if !a.IsRunning() {
		a.startTime = a.now()
		a.invalidate()
	}
}

// Pause freezes the elapsed time if the animation is running. Resume with
// Start.
func (a *Animated) Pause() {
	if a.IsRunning() {
		a.pauseDuration = a.ElapsedTime()
	}
}

// Reset cancels the animation and clears all progress state. Lap listeners
// are not notified; resetting does not count as reaching the end. Requests
// a redraw.
func (a *Animated) Reset() {
	a.finished = true
	a.startTime = 0
	a.pauseDuration = 0
	a.completedLaps = 0
	a.invalidate()
}

// ElapsedTime returns the animated time in ms: 0 before the first Start,
// frozen while paused, wall-clock based otherwise.
func (a *Animated) ElapsedTime() int64 {
	if !a.WasStarted() {
		return 0
	}
	if a.IsPaused() {
		return a.pauseDuration
	}
	return a.now() - a.startTime
}

// WasStarted reports whether the animation has been started and not reset.
func (a *Animated) WasStarted() bool {
	return a.startTime != 0
}

// IsPaused reports whether the animation is currently paused.
func (a *Animated) IsPaused() bool {
	return a.pauseDuration != 0
}

// IsRunning reports whether the animation is advancing.
func (a *Animated) IsRunning() bool {
	return a.WasStarted() && !a.IsPaused() && !a.finished
}

// CompletedLaps returns the number of laps completed since the last Reset.
func (a *Animated) CompletedLaps() int {
	return a.completedLaps
}

// Duration returns the configured lap duration.
func (a *Animated) Duration() time.Duration {
	return time.Duration(a.duration) * time.Millisecond
}

// EndBehavior returns the configured end behavior.
func (a *Animated) EndBehavior() EndBehavior {
	return a.endBehavior
}

// Timeline returns the timeline itself; it satisfies Animator for every
// factory embedding an *Animated.
func (a *Animated) Timeline() *Animated {
	return a
}

// AddLapListener registers a lap listener. The listener is held strongly;
// pair every add with RemoveLapListener.
func (a *Animated) AddLapListener(listener LapListener) {
	a.lapListeners = append(a.lapListeners, listener)
}

// RemoveLapListener removes a previously added lap listener. Safe to call
// from within a lap notification.
func (a *Animated) RemoveLapListener(listener LapListener) {
	a.lapListeners = slices.DeleteFunc(a.lapListeners, func(l LapListener) bool {
		return l == listener
	})
}

func (a *Animated) notifyLapListeners() {
	// Snapshot so a listener may remove itself (or others) mid-notification.
	for _, l := range slices.Clone(a.lapListeners) {
		l.OnLapFinished(a)
	}
}

// redrawRef is a non-owning reference to a redraw listener, resolved lazily
// at notification time.
type redrawRef struct {
	resolve func() (RedrawListener, bool)
	matches func(RedrawListener) bool
}

// RegisterRedrawTarget adds target as a redraw listener without keeping it
// alive: once the host is collected its entry is pruned on the next
// notification. Hosts that unregister explicitly use UnregisterRedrawTarget.
func RegisterRedrawTarget[T any, P interface {
	*T
	RedrawListener
}](a *Animated, target P) {
	ptr := weak.Make((*T)(target))
	a.redrawRefs = append(a.redrawRefs, redrawRef{
		resolve: func() (RedrawListener, bool) {
			p := ptr.Value()
			if p == nil {
				return nil, false
			}
			return P(p), true
		},
		matches: func(l RedrawListener) bool {
			p := ptr.Value()
			return p != nil && RedrawListener(P(p)) == l
		},
	})
}

// UnregisterRedrawTarget removes target's entry along with any entries whose
// hosts have been collected.
func UnregisterRedrawTarget(a *Animated, target RedrawListener) {
	a.redrawRefs = slices.DeleteFunc(a.redrawRefs, func(r redrawRef) bool {
		if _, ok := r.resolve(); !ok {
			return true
		}
		return r.matches(target)
	})
}

// invalidate notifies every live redraw listener and prunes collected ones.
func (a *Animated) invalidate() {
	for _, ref := range slices.Clone(a.redrawRefs) {
		if l, ok := ref.resolve(); ok {
			l.Invalidate()
		}
	}
	a.redrawRefs = slices.DeleteFunc(a.redrawRefs, func(r redrawRef) bool {
		_, ok := r.resolve()
		return !ok
	})
}
