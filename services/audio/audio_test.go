package audio

import (
	"testing"
	"time"

	"audiomenu-go/bus"
	"audiomenu-go/types"
)

type recorder struct {
	calls []string
	vol   int
}

func (r *recorder) Play()  { r.calls = append(r.calls, "play") }
func (r *recorder) Pause() { r.calls = append(r.calls, "pause") }

func (r *recorder) SetVolume(v int) {
	r.calls = append(r.calls, "vol")
	r.vol = v
}

func TestControllerClampsAndForwards(t *testing.T) {
	rec := &recorder{}
	c := NewController(nil, rec, nil)

	c.SetVolume(255)
	if got := c.State().Volume; got != 100 {
		t.Fatalf("volume = %d, want 100", got)
	}
	c.SetVolume(-3)
	if rec.vol != 0 {
		t.Fatalf("backend volume = %d, want 0", rec.vol)
	}
	c.Play()
	if !c.State().Playing {
		t.Fatal("not playing after Play")
	}
	c.Pause()
	if c.State().Playing {
		t.Fatal("still playing after Pause")
	}
	want := []string{"vol", "vol", "play", "pause"}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %v", rec.calls)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", rec.calls, want)
		}
	}
}

func TestControllerPublishesRetainedState(t *testing.T) {
	b := bus.NewBus(4)
	c := NewController(b.NewConnection("audio"), nil, nil)
	c.SetVolume(40)
	c.Play()

	sub := b.NewConnection("test").Subscribe(TopicState)
	select {
	case m := <-sub.Channel():
		st, ok := m.Payload.(types.AudioState)
		if !ok {
			t.Fatalf("payload %T", m.Payload)
		}
		if st.Volume != 40 || !st.Playing {
			t.Fatalf("state = %+v", st)
		}
	case <-time.After(time.Second):
		t.Fatal("no retained audio state")
	}
}
