package retained

import (
	"sync"
	"sync/atomic"
	"time"
)

// AnimationID uniquely identifies an animation.
type AnimationID uint64

var nextAnimationID atomic.Uint64

func newAnimationID() AnimationID {
	return AnimationID(nextAnimationID.Add(1))
}

// EasingFunc defines how animation progress maps to value progress.
// Input t is 0-1 (time progress), output is 0-1 (value progress).
type EasingFunc func(t float64) float64

// Common easing functions
var (
	// EaseLinear - constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseOutCubic - smooth deceleration (good for UI)
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}
)

// Animation represents an active animation.
type Animation struct {
	id         AnimationID
	widget     *Widget
	startTime  time.Time
	duration   time.Duration
	update     func(progress float64) // Called each frame with eased progress 0-1
	onComplete func()                 // Called once when the animation runs to its end
	easing     EasingFunc
	cancelled  atomic.Bool
}

// ID returns the animation's unique identifier.
func (a *Animation) ID() AnimationID {
	return a.id
}

// Cancel stops the animation. A cancelled animation never calls its
// completion callback.
func (a *Animation) Cancel() {
	a.cancelled.Store(true)
}

// IsCancelled returns whether the animation was cancelled.
func (a *Animation) IsCancelled() bool {
	return a.cancelled.Load()
}

// AnimationRegistry manages active animations. The host calls Tick once per
// frame.
type AnimationRegistry struct {
	mu         sync.RWMutex
	animations map[AnimationID]*Animation
	now        func() time.Time

	// Callback when animation state changes (for the host to switch frame rates)
	onActiveChange func(hasActive bool)
}

// NewAnimationRegistry creates a new animation registry using the wall clock.
func NewAnimationRegistry() *AnimationRegistry {
	return &AnimationRegistry{
		animations: make(map[AnimationID]*Animation),
		now:        time.Now,
	}
}

// SetClock replaces the time source used to stamp new animations.
func (r *AnimationRegistry) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if now == nil {
		now = time.Now
	}
	r.now = now
}

// Now returns the registry's current time.
func (r *AnimationRegistry) Now() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.now()
}

// OnActiveChange sets the callback for when animations become active/inactive.
func (r *AnimationRegistry) OnActiveChange(fn func(hasActive bool)) {
	r.mu.Lock()
	r.onActiveChange = fn
	r.mu.Unlock()
}

// Add registers a new animation.
func (r *AnimationRegistry) Add(anim *Animation) {
	r.mu.Lock()
	wasEmpty := len(r.animations) == 0
	r.animations[anim.id] = anim
	callback := r.onActiveChange
	r.mu.Unlock()

	if wasEmpty && callback != nil {
		callback(true)
	}
}

// HasActive returns true if there are any running animations.
func (r *AnimationRegistry) HasActive() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.animations) > 0
}

// Count returns the number of registered animations.
func (r *AnimationRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.animations)
}

// Tick updates all animations and removes completed ones.
// Returns true if any animations are still active.
func (r *AnimationRegistry) Tick(now time.Time) bool {
	r.mu.Lock()

	var toRemove []AnimationID
	var toUpdate []*Animation
	var progress []float64
	var toComplete []*Animation

	for id, anim := range r.animations {
		if anim.cancelled.Load() {
			toRemove = append(toRemove, id)
			continue
		}

		elapsed := now.Sub(anim.startTime)
		t := 1.0
		if anim.duration > 0 && elapsed < anim.duration {
			t = float64(elapsed) / float64(anim.duration)
			if t < 0 {
				t = 0
			}
		}
		if t >= 1 {
			toRemove = append(toRemove, id)
			toComplete = append(toComplete, anim)
		}
		toUpdate = append(toUpdate, anim)
		progress = append(progress, anim.easing(t))
	}

	for _, id := range toRemove {
		delete(r.animations, id)
	}

	callback := r.onActiveChange
	r.mu.Unlock()

	// Updates and completions run outside the lock so they may start new
	// animations or cancel others.
	for i, anim := range toUpdate {
		if anim.update != nil && !anim.cancelled.Load() {
			anim.update(progress[i])
		}
	}
	for _, anim := range toComplete {
		if anim.onComplete != nil && !anim.cancelled.Load() {
			anim.onComplete()
		}
	}

	hasActive := r.HasActive()
	if len(toRemove) > 0 && !hasActive && callback != nil {
		callback(false)
	}

	return hasActive
}

// ============================================================================
// Animation Builder API
// ============================================================================

// AnimationBuilder provides a fluent API for creating animations.
type AnimationBuilder struct {
	widget     *Widget
	registry   *AnimationRegistry
	duration   time.Duration
	easing     EasingFunc
	onComplete func()
}

// Animate starts building an animation for this widget.
func (w *Widget) Animate(registry *AnimationRegistry) *AnimationBuilder {
	return &AnimationBuilder{
		widget:   w,
		registry: registry,
		duration: 300 * time.Millisecond,
		easing:   EaseOutCubic,
	}
}

// Duration sets how long the animation runs.
func (b *AnimationBuilder) Duration(d time.Duration) *AnimationBuilder {
	b.duration = d
	return b
}

// Easing sets the easing function.
func (b *AnimationBuilder) Easing(fn EasingFunc) *AnimationBuilder {
	if fn != nil {
		b.easing = fn
	}
	return b
}

// OnComplete sets a callback for when the animation finishes.
func (b *AnimationBuilder) OnComplete(fn func()) *AnimationBuilder {
	b.onComplete = fn
	return b
}

// OpacityFromTo animates opacity between two values.
func (b *AnimationBuilder) OpacityFromTo(from, to float32) *Animation {
	w := b.widget
	return b.Custom(func(progress float64) {
		w.SetOpacity(lerp(from, to, float32(progress)))
	})
}

// ScaleFromTo animates the widget's scale between two values.
func (b *AnimationBuilder) ScaleFromTo(from, to float32) *Animation {
	w := b.widget
	return b.Custom(func(progress float64) {
		w.SetScale(lerp(from, to, float32(progress)))
	})
}

// TranslateYFromTo animates the vertical render offset between two values.
func (b *AnimationBuilder) TranslateYFromTo(from, to float32) *Animation {
	w := b.widget
	return b.Custom(func(progress float64) {
		w.SetTranslateY(lerp(from, to, float32(progress)))
	})
}

// Custom creates an animation with a custom update function.
// The update function receives eased progress from 0-1.
func (b *AnimationBuilder) Custom(update func(progress float64)) *Animation {
	anim := &Animation{
		id:         newAnimationID(),
		widget:     b.widget,
		startTime:  b.registry.Now(),
		duration:   b.duration,
		easing:     b.easing,
		onComplete: b.onComplete,
		update:     update,
	}

	b.registry.Add(anim)
	return anim
}

// lerp linearly interpolates between two float32 values.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Lerp linearly interpolates between two float32 values.
func Lerp(a, b, t float32) float32 {
	return lerp(a, b, t)
}
