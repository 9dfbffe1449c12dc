// Package audio controls the audio sink from menu actions. The streaming
// side is out of scope here; Controller keeps play state and volume and
// publishes them retained on audio/state for whatever drives the output.
package audio

import (
	"log/slog"
	"sync"

	"audiomenu-go/bus"
	"audiomenu-go/types"
	"audiomenu-go/x/logx"
	"audiomenu-go/x/mathx"
)

const (
	MinVolume = 0
	MaxVolume = 100
)

var TopicState = bus.T("audio", "state")

// Sink is the control surface the menu uses.
type Sink interface {
	Play()
	Pause()
	SetVolume(v int)
}

// Controller is a Sink that records state, publishes it and forwards to an
// optional backend.
type Controller struct {
	mu      sync.Mutex
	conn    *bus.Connection
	backend Sink
	log     *slog.Logger
	state   types.AudioState
}

// NewController publishes on conn (may be nil) and forwards to backend (may
// be nil).
func NewController(conn *bus.Connection, backend Sink, log *slog.Logger) *Controller {
	return &Controller{conn: conn, backend: backend, log: logx.Component(log, "audio")}
}

func (c *Controller) Play() {
	c.mu.Lock()
	c.state.Playing = true
	st := c.state
	c.mu.Unlock()
	if c.backend != nil {
		c.backend.Play()
	}
	c.log.Info("play")
	c.publish(st)
}

func (c *Controller) Pause() {
	c.mu.Lock()
	c.state.Playing = false
	st := c.state
	c.mu.Unlock()
	if c.backend != nil {
		c.backend.Pause()
	}
	c.log.Info("pause")
	c.publish(st)
}

// SetVolume clamps v to [0, 100].
func (c *Controller) SetVolume(v int) {
	v = mathx.Clamp(v, MinVolume, MaxVolume)
	c.mu.Lock()
	c.state.Volume = v
	st := c.state
	c.mu.Unlock()
	if c.backend != nil {
		c.backend.SetVolume(v)
	}
	c.log.Info("volume", "value", v)
	c.publish(st)
}

func (c *Controller) State() types.AudioState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) publish(st types.AudioState) {
	if c.conn == nil {
		return
	}
	c.conn.Publish(c.conn.NewMessage(TopicState, st, true))
}
