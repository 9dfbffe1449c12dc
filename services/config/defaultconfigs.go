package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// Val: raw JSON bytes for that device. Missing fields take Defaults().
// -----------------------------------------------------------------------------

const cfgPico = `{
  "ui": {
      "timeout_ms": 10000,
      "debounce_ms": 100,
      "item_trigger": 1,
      "max_items": 12,
      "display_max_lines": 5,
      "large_text": false
  },
  "pins": {
      "enc_a": 14,
      "enc_b": 15,
      "button": 13,
      "led": 25,
      "button_pressed_level": false
  },
  "display": {
      "addr": 60,
      "width": 128,
      "height": 64
  },
  "heartbeat": {
      "interval": 1
  },
  "device": {
      "name": "ESP-Music",
      "version": "0.2"
  },
  "audio": {
      "default_volume": 50
  }
}`

// The simulator uses encoder steps of one detent per key press and a
// longer timeout so the window is easy to follow.
const cfgSim = `{
  "ui": {
      "timeout_ms": 30000,
      "debounce_ms": 30,
      "tick_ms": 16
  },
  "heartbeat": {
      "interval": 0.5
  },
  "device": {
      "name": "ESP-Music-Sim",
      "version": "0.2"
  },
  "log_level": "debug"
}`

var embeddedConfigs = map[string][]byte{
	"pico": []byte(cfgPico),
	"sim":  []byte(cfgSim),
}
