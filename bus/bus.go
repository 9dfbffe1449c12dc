// bus.go
package bus

import (
	"strings"
	"sync"
)

// -----------------------------------------------------------------------------
// Topics
// -----------------------------------------------------------------------------

// Topic is a sequence of path tokens. In subscriptions "+" matches exactly
// one token and a trailing "#" matches any remainder, including none.
type Topic []string

const (
	wildOne  = "+"
	wildRest = "#"
)

// T builds a Topic.
func T(parts ...string) Topic { return Topic(parts) }

func (t Topic) String() string { return strings.Join(t, "/") }

// Match reports whether topic is selected by pattern.
func Match(pattern, topic Topic) bool {
	for i, p := range pattern {
		if p == wildRest {
			return true
		}
		if i >= len(topic) {
			return false
		}
		if p != wildOne && p != topic[i] {
			return false
		}
	}
	return len(pattern) == len(topic)
}

// -----------------------------------------------------------------------------
// Message
// -----------------------------------------------------------------------------

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
}

// NewMessage is a small constructor kept for call-site symmetry with Connection.
func (b *Bus) NewMessage(t Topic, payload any, retained bool) *Message {
	return &Message{Topic: t, Payload: payload, Retained: retained}
}

// -----------------------------------------------------------------------------
// Subscription
// -----------------------------------------------------------------------------

type Subscription struct {
	topic Topic
	ch    chan *Message
	conn  *Connection // owning connection
}

func (s *Subscription) Topic() Topic             { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

// -----------------------------------------------------------------------------
// Trie node (subscription patterns)
// -----------------------------------------------------------------------------

type node struct {
	children map[string]*node
	subs     []*Subscription
}

// -----------------------------------------------------------------------------
// Bus
// -----------------------------------------------------------------------------

type Bus struct {
	mu       sync.RWMutex
	root     *node
	retained map[string]*Message
	qLen     int
}

// NewBus creates a new bus with the given subscription queue length.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8 // safe default
	}
	return &Bus{
		root:     &node{},
		retained: map[string]*Message{},
		qLen:     queueLen,
	}
}

// addSubscription inserts a subscription into the trie and replays any
// retained messages it matches.
func (b *Bus) addSubscription(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	for _, tok := range sub.topic {
		if n.children == nil {
			n.children = make(map[string]*node)
		}
		child, ok := n.children[tok]
		if !ok {
			child = &node{}
			n.children[tok] = child
		}
		n = child
	}
	n.subs = append(n.subs, sub)

	for _, m := range b.retained {
		if Match(sub.topic, m.Topic) {
			deliver(sub, m)
		}
	}
}

// Publish delivers a message to all matching subscribers. A retained
// message replaces the stored one for its topic; a retained nil payload
// clears it.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if msg.Retained {
		key := msg.Topic.String()
		if msg.Payload == nil {
			delete(b.retained, key)
		} else {
			b.retained[key] = msg
		}
	}
	b.root.walk(msg.Topic, func(s *Subscription) { deliver(s, msg) })
}

// walk visits every subscription whose pattern matches topic.
func (n *node) walk(topic Topic, fn func(*Subscription)) {
	if c := n.children[wildRest]; c != nil {
		for _, s := range c.subs {
			fn(s)
		}
	}
	if len(topic) == 0 {
		for _, s := range n.subs {
			fn(s)
		}
		return
	}
	if c := n.children[topic[0]]; c != nil {
		c.walk(topic[1:], fn)
	}
	if topic[0] != wildOne {
		if c := n.children[wildOne]; c != nil {
			c.walk(topic[1:], fn)
		}
	}
}

func deliver(sub *Subscription, msg *Message) {
	select {
	case sub.ch <- msg:
	default:
		// drop oldest if queue full
		select {
		case <-sub.ch:
		default:
		}
		select {
		case sub.ch <- msg:
		default:
		}
	}
}

// unsubscribe removes a subscription from the trie, pruning empty nodes.
func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	topic := sub.topic
	n := b.root
	stack := make([]*node, 0, len(topic))
	for _, t := range topic {
		child, ok := n.children[t]
		if !ok {
			return
		}
		stack = append(stack, n)
		n = child
	}

	for i, s := range n.subs {
		if s == sub {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			break
		}
	}

	for i := len(topic) - 1; i >= 0; i-- {
		parent := stack[i]
		child := parent.children[topic[i]]
		if len(child.subs) == 0 && len(child.children) == 0 {
			delete(parent.children, topic[i])
		} else {
			break
		}
	}
}

// -----------------------------------------------------------------------------
// Connection
// -----------------------------------------------------------------------------

type Connection struct {
	bus  *Bus
	subs []*Subscription
	mu   sync.Mutex
	id   string
}

// NewConnection creates a new connection bound to this bus.
func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{
		bus: b,
		id:  id,
	}
}

func (c *Connection) ID() string { return c.id }

// NewMessage builds a message without touching the bus.
func (c *Connection) NewMessage(t Topic, payload any, retained bool) *Message {
	return c.bus.NewMessage(t, payload, retained)
}

// Publish sends a message via the bus.
func (c *Connection) Publish(msg *Message) {
	c.bus.Publish(msg)
}

// Subscribe registers a subscription owned by this connection.
func (c *Connection) Subscribe(topic Topic) *Subscription {
	sub := &Subscription{
		topic: append(Topic(nil), topic...),
		ch:    make(chan *Message, c.bus.qLen),
		conn:  c,
	}
	c.bus.addSubscription(sub)
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	return sub
}

// Unsubscribe removes a subscription owned by this connection.
func (c *Connection) Unsubscribe(sub *Subscription) {
	c.mu.Lock()
	found := false
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			found = true
			break
		}
	}
	c.mu.Unlock()
	if !found {
		return
	}
	c.bus.unsubscribe(sub)
	close(sub.ch)
}

// Disconnect closes all subscriptions and clears them.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()

	for _, sub := range subs {
		c.bus.unsubscribe(sub)
		close(sub.ch)
	}
}
