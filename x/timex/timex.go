package timex

import (
	"sync/atomic"
	"time"
)

// Clock is a monotonic millisecond source.
type Clock interface {
	NowMs() int64
}

// System counts milliseconds since it was created.
type System struct {
	start time.Time
}

// NewSystem starts a monotonic clock at zero.
func NewSystem() *System { return &System{start: time.Now()} }

func (s *System) NowMs() int64 { return time.Since(s.start).Milliseconds() }

// Manual is a clock moved only by Advance/Set. Safe for concurrent use.
type Manual struct {
	ms atomic.Int64
}

func (m *Manual) NowMs() int64            { return m.ms.Load() }
func (m *Manual) Set(ms int64)            { m.ms.Store(ms) }
func (m *Manual) Advance(d time.Duration) { m.ms.Add(d.Milliseconds()) }

// Stepping advances by Step on every read. Useful for driving busy loops
// that poll the clock until a deadline.
type Stepping struct {
	Step int64
	ms   atomic.Int64
}

func (s *Stepping) NowMs() int64 {
	step := s.Step
	if step <= 0 {
		step = 1
	}
	return s.ms.Add(step)
}

// ElapsedMs returns now-since, treating a clock that went backwards as zero.
func ElapsedMs(c Clock, since int64) int64 {
	d := c.NowMs() - since
	if d < 0 {
		return 0
	}
	return d
}
