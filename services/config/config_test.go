// config/config_test.go
package config

import (
	"context"
	"testing"
	"time"

	"audiomenu-go/bus"
	"audiomenu-go/errcode"
)

func TestConfig_PublishEmbedded_RetainedPerKey(t *testing.T) {
	// Override lookup for this test.
	oldLookup := EmbeddedConfigLookup
	EmbeddedConfigLookup = func(device string) ([]byte, bool) {
		if device != "pico" {
			return nil, false
		}
		return []byte(`{
			"heartbeat": {"interval": 2},
			"large": true,
			"device": {"name": "x"}
		}`), true
	}
	t.Cleanup(func() { EmbeddedConfigLookup = oldLookup })

	b := bus.NewBus(16)
	conn := b.NewConnection("test-config")
	svc := NewConfigService(nil)

	ctx := WithDevice(context.Background(), "pico")
	svc.Start(ctx, conn)

	sub := conn.Subscribe(bus.T(configPrefix, "#"))

	got := map[string]any{}
	deadline := time.Now().Add(600 * time.Millisecond)
	for len(got) < 3 && time.Now().Before(deadline) {
		select {
		case m := <-sub.Channel():
			if len(m.Topic) != 2 || m.Topic[0] != configPrefix {
				t.Fatalf("unexpected topic: %v", m.Topic)
			}
			if !m.Retained {
				t.Fatalf("%v not retained", m.Topic)
			}
			got[m.Topic[1]] = m.Payload
		case <-time.After(10 * time.Millisecond):
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 retained messages, got %d (%v)", len(got), got)
	}
	hb, ok := got["heartbeat"].(map[string]any)
	if !ok {
		t.Fatalf("heartbeat payload type = %T", got["heartbeat"])
	}
	if iv, ok := hb["interval"].(float64); !ok || iv != 2 {
		t.Fatalf("heartbeat.interval = %#v, want 2", hb["interval"])
	}
	if v, ok := got["large"].(bool); !ok || !v {
		t.Fatalf("large = %#v, want true", got["large"])
	}
}

func TestConfig_PublishConfig_MissingDevice(t *testing.T) {
	b := bus.NewBus(4)
	conn := b.NewConnection("test-missing-device")
	svc := NewConfigService(nil)

	if err := svc.publishConfig(context.Background(), conn); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("err = %v, want InvalidParams", err)
	}
}

func TestConfig_PublishConfig_NoConfigFound(t *testing.T) {
	oldLookup := EmbeddedConfigLookup
	EmbeddedConfigLookup = func(device string) ([]byte, bool) { return nil, false }
	t.Cleanup(func() { EmbeddedConfigLookup = oldLookup })

	b := bus.NewBus(4)
	conn := b.NewConnection("test-no-config")
	svc := NewConfigService(nil)

	ctx := WithDevice(context.Background(), "unknown-device")
	if err := svc.publishConfig(ctx, conn); errcode.Of(err) != errcode.InvalidConfig {
		t.Fatalf("err = %v, want InvalidConfig", err)
	}
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	d, err := Decode([]byte(`{"ui": {"timeout_ms": 5000, "large_text": true}, "pins": {"enc_a": 2}}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.UI.TimeoutMs != 5000 || !d.UI.LargeText {
		t.Fatalf("overrides lost: %+v", d.UI)
	}
	def := Defaults()
	if d.UI.DebounceMs != def.UI.DebounceMs || d.UI.DisplayMaxLines != 5 || d.UI.TitleBudget != 10 {
		t.Fatalf("defaults lost: %+v", d.UI)
	}
	if b := d.Board(); b.EncoderA != 2 || b.EncoderB != def.Pins.EncB || b.DisplayAddr != 0x3C {
		t.Fatalf("board = %+v", b)
	}
}

func TestDecodeRejectsBadValues(t *testing.T) {
	cases := []string{
		`{"ui": {"item_trigger": 0}}`,
		`{"ui": {"timeout_ms": -1}}`,
		`{"display": {"width": 0}}`,
		`{"ui": `,
	}
	for _, raw := range cases {
		d, err := Decode([]byte(raw))
		if errcode.Of(err) != errcode.InvalidConfig {
			t.Fatalf("%s: err = %v, want InvalidConfig", raw, err)
		}
		if d != Defaults() {
			t.Fatalf("%s: did not fall back to defaults", raw)
		}
	}
}

func TestEmbeddedConfigsDecode(t *testing.T) {
	for dev := range embeddedConfigs {
		if _, err := Load(dev); err != nil {
			t.Fatalf("%s: %v", dev, err)
		}
	}
	d, err := Load("nope")
	if err == nil || d != Defaults() {
		t.Fatalf("Load(nope) = %+v, %v", d, err)
	}
}
