package ui

import (
	"context"
	"time"

	"audiomenu-go/bus"
	"audiomenu-go/types"
)

var TopicState = bus.T("ui", "state")

// Service drives the engine from the main loop and mirrors its state on
// the bus.
type Service struct {
	e      *Engine
	conn   *bus.Connection
	period time.Duration

	last        types.UIState
	published   bool
	lastInvalid uint32
}

func NewService(e *Engine, conn *bus.Connection, period time.Duration) *Service {
	if period <= 0 {
		period = 10 * time.Millisecond
	}
	return &Service{e: e, conn: conn, period: period}
}

// Run ticks the engine every period until ctx is done.
func (s *Service) Run(ctx context.Context) {
	t := time.NewTicker(s.period)
	defer t.Stop()
	s.e.log.Info("ui running", "period", s.period)
	for {
		select {
		case <-ctx.Done():
			s.e.log.Info("ui stopping")
			return
		case <-t.C:
			s.Step()
		}
	}
}

// Step is one Run iteration: tick, report new invalid transitions, publish
// state when it changed.
func (s *Service) Step() {
	s.e.Tick()

	inv := s.e.Invalid()
	if inv != s.lastInvalid {
		s.e.log.Debug("encoder invalid transitions", "new", inv-s.lastInvalid, "total", inv)
		s.lastInvalid = inv
	}

	st := s.e.State()
	cur := types.UIState{
		Mode:               st.Mode.String(),
		Title:              st.Title,
		Highlighted:        st.Highlighted,
		ItemCount:          st.ItemCount,
		Value:              st.Value,
		Low:                st.Low,
		High:               st.High,
		InvalidTransitions: inv,
	}
	if s.published && cur == s.last {
		return
	}
	s.last = cur
	s.published = true
	if s.conn != nil {
		s.conn.Publish(s.conn.NewMessage(TopicState, cur, true))
	}
}
