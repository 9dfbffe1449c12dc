// Package network reports the device's current address for display.
package network

import (
	"sync"

	"audiomenu-go/bus"
	"audiomenu-go/x/strx"
)

// NotConnected is shown when no address is known.
const NotConnected = "not connected"

var TopicAddress = bus.T("network", "address")

// Status answers "what is my address right now".
type Status interface {
	Address() string
}

// Static always reports the same address.
type Static string

func (s Static) Address() string { return strx.Coalesce(string(s), NotConnected) }

// Tracker follows the retained network/address topic.
type Tracker struct {
	mu   sync.Mutex
	addr string
}

// Track subscribes to network/address on conn and updates t until the
// subscription channel closes.
func Track(conn *bus.Connection) *Tracker {
	t := &Tracker{}
	sub := conn.Subscribe(TopicAddress)
	go func() {
		for m := range sub.Channel() {
			a, _ := m.Payload.(string)
			t.mu.Lock()
			t.addr = a
			t.mu.Unlock()
		}
	}()
	return t
}

func (t *Tracker) Address() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strx.Coalesce(t.addr, NotConnected)
}

// Announce publishes addr retained on network/address.
func Announce(conn *bus.Connection, addr string) {
	conn.Publish(conn.NewMessage(TopicAddress, addr, true))
}
