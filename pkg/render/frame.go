package render

import "time"

// Frame tracks wall-clock time between successive frames.
type Frame struct {
	now   func() time.Time
	start time.Time
	last  time.Time
}

// FrameInstant is an immutable snapshot produced by Frame.MarkNewFrame.
type FrameInstant struct {
	start time.Time
	last  time.Time
	now   time.Time
}

// NewFrame starts a timer at the current instant
func NewFrame() *Frame {
	return NewFrameWithClock(time.Now)
}

// NewFrameWithClock starts a timer driven by the given clock.
func NewFrameWithClock(clock func() time.Time) *Frame {
	start := clock()
	return &Frame{
		now:   clock,
		start: start,
		last:  start,
	}
}

// MarkNewFrame records the start of a new frame and returns its snapshot.
func (f *Frame) MarkNewFrame() FrameInstant {
	now := f.now()
	last := f.last
	f.last = now

	return FrameInstant{
		start: f.start,
		last:  last,
		now:   now,
	}
}

// TotalDuration is the time elapsed since the timer was created
func (fi FrameInstant) TotalDuration() time.Duration {
	return fi.now.Sub(fi.start)
}

// LastFrameDuration is the time elapsed since the previous frame
func (fi FrameInstant) LastFrameDuration() time.Duration {
	return fi.now.Sub(fi.last)
}
