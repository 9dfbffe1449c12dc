package heartbeat

import (
	"context"
	"sync"
	"testing"
	"time"

	"audiomenu-go/bus"
	"audiomenu-go/types"
)

type fakeLED struct {
	mu sync.Mutex
	on bool
	n  int
}

func (l *fakeLED) Toggle() {
	l.mu.Lock()
	l.on = !l.on
	l.n++
	l.mu.Unlock()
}

func (l *fakeLED) Get() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}

func (l *fakeLED) toggles() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.n
}

func TestHeartbeatTogglesAndPublishes(t *testing.T) {
	b := bus.NewBus(8)
	led := &fakeLED{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := b.NewConnection("test").Subscribe(TopicLED)
	New(led, 5*time.Millisecond, nil).Start(ctx, b.NewConnection("hb"))

	select {
	case m := <-sub.Channel():
		if _, ok := m.Payload.(types.LEDState); !ok {
			t.Fatalf("payload %T", m.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("no led state published")
	}
	if led.toggles() == 0 {
		t.Fatal("led never toggled")
	}
}

func TestHeartbeatIntervalFromConfig(t *testing.T) {
	b := bus.NewBus(8)
	led := &fakeLED{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// retained config pauses blinking before the first tick
	cfg := b.NewConnection("cfg")
	cfg.Publish(cfg.NewMessage(topicConfigHeartbeat, map[string]any{"interval": 0.0}, true))

	New(led, time.Millisecond, nil).Start(ctx, b.NewConnection("hb"))
	time.Sleep(50 * time.Millisecond)
	before := led.toggles()
	time.Sleep(50 * time.Millisecond)
	if led.toggles() != before {
		t.Fatal("led toggled while paused")
	}

	cfg.Publish(cfg.NewMessage(topicConfigHeartbeat, map[string]any{"interval": 0.002}, true))
	deadline := time.Now().Add(time.Second)
	for led.toggles() == before {
		if time.Now().After(deadline) {
			t.Fatal("blinking did not resume")
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func TestIntervalFrom(t *testing.T) {
	if d, ok := intervalFrom(map[string]any{"interval": 1.5}); !ok || d != 1500*time.Millisecond {
		t.Fatalf("got %v %v", d, ok)
	}
	for _, p := range []any{nil, "x", map[string]any{"interval": "2"}, map[string]any{"interval": -1.0}} {
		if _, ok := intervalFrom(p); ok {
			t.Fatalf("accepted %#v", p)
		}
	}
}
