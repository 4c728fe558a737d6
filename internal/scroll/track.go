package scroll

import (
	"math"
	"time"
)

// Track is a one-line horizontal viewport over content measured in cells.
type Track struct {
	offset        float64
	contentLength float64
	viewLength    float64
	laidOut       bool
	mounted       bool
}

// NewTrack creates a mounted track that is not laid out yet.
func NewTrack() *Track {
	return &Track{mounted: true}
}

// Layout sets the content and view lengths and clamps the offset.
func (t *Track) Layout(contentLength, viewLength float64) {
	t.contentLength = math.Max(0, contentLength)
	t.viewLength = math.Max(0, viewLength)
	t.laidOut = true
	t.offset = clamp(t.offset, 0, t.MaxExtent())
}

// SetContentLength changes the content length, e.g. after a reload.
func (t *Track) SetContentLength(contentLength float64) {
	t.Layout(contentLength, t.viewLength)
}

// ContentLength returns the total content length.
func (t *Track) ContentLength() float64 {
	return t.contentLength
}

// ViewLength returns the visible window length.
func (t *Track) ViewLength() float64 {
	return t.viewLength
}

// Attach marks the track mounted again.
func (t *Track) Attach() {
	t.mounted = true
}

// Detach marks the track unmounted; the driver stops writing to it.
func (t *Track) Detach() {
	t.mounted = false
}

// Attached reports whether the track is mounted and laid out.
func (t *Track) Attached() bool {
	return t.mounted && t.laidOut
}

// Offset returns the current scroll position.
func (t *Track) Offset() float64 {
	return t.offset
}

// MaxExtent returns content length minus view length, never negative.
func (t *Track) MaxExtent() float64 {
	return math.Max(0, t.contentLength-t.viewLength)
}

// JumpTo sets the offset, clamped to [0, MaxExtent].
func (t *Track) JumpTo(offset float64) {
	if math.IsNaN(offset) {
		return
	}
	t.offset = clamp(offset, 0, t.MaxExtent())
}

// ScrollBy moves the offset by delta cells, clamped.
func (t *Track) ScrollBy(delta float64) {
	t.JumpTo(t.offset + delta)
}

// AnimateTo returns a tween from the current offset to target.
func (t *Track) AnimateTo(now time.Time, target float64, d time.Duration, curve Curve) Animation {
	return NewTween(t.JumpTo, t.offset, target, now, d, curve)
}

// Cell returns the integer cell offset used for rendering.
func (t *Track) Cell() int {
	return int(math.Floor(t.offset))
}
