package heartbeat

import (
	"context"
	"log/slog"
	"time"

	"audiomenu-go/bus"
	"audiomenu-go/types"
	"audiomenu-go/x/logx"
)

var (
	topicConfigHeartbeat = bus.T("config", "heartbeat")
	TopicLED             = bus.T("led", "state")
)

// LED is the output the heartbeat blinks.
type LED interface {
	Toggle()
	Get() bool
}

type Service struct {
	led      LED
	interval time.Duration
	log      *slog.Logger
}

// New blinks led every interval until a config/heartbeat message says
// otherwise. An interval of 0 pauses blinking.
func New(led LED, interval time.Duration, log *slog.Logger) *Service {
	return &Service{led: led, interval: interval, log: logx.Component(log, "heartbeat")}
}

// intervalFrom reads {"interval": seconds} from a config payload.
func intervalFrom(payload any) (time.Duration, bool) {
	m, ok := payload.(map[string]any)
	if !ok {
		return 0, false
	}
	iv, ok := m["interval"].(float64)
	if !ok || iv < 0 {
		return 0, false
	}
	return time.Duration(iv * float64(time.Second)), true
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfigHeartbeat)
	defer conn.Unsubscribe(cfgSub)

	tick := time.NewTicker(time.Hour)
	defer tick.Stop()
	s.apply(tick, s.interval)

	// loop until context is cancelled, respond to tick and config changes
	for {
		select {
		case <-ctx.Done():
			s.log.Info("heartbeat service stopping")
			return
		case <-tick.C:
			if s.interval <= 0 {
				continue
			}
			s.led.Toggle()
			conn.Publish(conn.NewMessage(TopicLED, types.LEDState{On: s.led.Get()}, false))
		case msg := <-cfgSub.Channel():
			if d, ok := intervalFrom(msg.Payload); ok {
				s.apply(tick, d)
				s.log.Info("interval set", "interval", d)
			} else {
				s.log.Warn("ignoring config", "payload", msg.Payload)
			}
		}
	}
}

func (s *Service) apply(tick *time.Ticker, d time.Duration) {
	s.interval = d
	if d <= 0 {
		tick.Reset(time.Hour)
		return
	}
	tick.Reset(d)
}

// Start runs the heartbeat until ctx is done.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go s.serviceLoop(ctx, conn)
}
