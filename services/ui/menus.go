package ui

import (
	"log/slog"

	"audiomenu-go/services/audio"
	"audiomenu-go/services/network"
	"audiomenu-go/x/conv"
	"audiomenu-go/x/logx"
	"audiomenu-go/x/mathx"
)

// Catalog holds the menus and prompts the engine can open.
type Catalog struct {
	Default MenuID
	menus   map[MenuID]Menu
	prompts map[PromptID]Prompt
}

func NewCatalog(def MenuID) *Catalog {
	return &Catalog{
		Default: def,
		menus:   map[MenuID]Menu{},
		prompts: map[PromptID]Prompt{},
	}
}

func (c *Catalog) AddMenu(m Menu)     { c.menus[m.ID] = m }
func (c *Catalog) AddPrompt(p Prompt) { c.prompts[p.ID] = p }

func (c *Catalog) Menu(id MenuID) (Menu, bool) {
	m, ok := c.menus[id]
	return m, ok
}

func (c *Catalog) Prompt(id PromptID) (Prompt, bool) {
	p, ok := c.prompts[id]
	return p, ok
}

// -----------------------------------------------------------------------------
// Volume setting
// -----------------------------------------------------------------------------

// ByteStore persists one byte.
type ByteStore interface {
	Load() (byte, error)
	Save(v byte) error
}

// VolumeSetting caches the persisted volume. A byte that was never written
// reads as 255; it is kept as is and clamped by whoever consumes it.
type VolumeSetting struct {
	store ByteStore
	value int
	log   *slog.Logger
}

// NewVolumeSetting loads the stored byte, falling back to fallback when the
// store cannot be read.
func NewVolumeSetting(store ByteStore, fallback int, log *slog.Logger) *VolumeSetting {
	v := &VolumeSetting{store: store, value: fallback, log: logx.Component(log, "volume")}
	if store == nil {
		return v
	}
	b, err := store.Load()
	if err != nil {
		v.log.Warn("volume not loaded, using default", "err", err, "default", fallback)
		return v
	}
	v.value = int(b)
	return v
}

func (v *VolumeSetting) Get() int { return v.value }

// Set records and persists vol. The cached value changes even if the save
// fails.
func (v *VolumeSetting) Set(vol int) error {
	v.value = vol
	if v.store == nil {
		return nil
	}
	return v.store.Save(byte(mathx.Clamp(vol, 0, 255)))
}

// -----------------------------------------------------------------------------
// Application menus
// -----------------------------------------------------------------------------

type AppDeps struct {
	Audio   audio.Sink
	Volume  *VolumeSetting
	Network network.Status
}

const (
	controlTitle = "Control Menu"
	volumeTitle  = "Volume"
)

// NewControlCatalog builds the Control Menu (the default) and the volume
// prompt.
func NewControlCatalog(app AppDeps) *Catalog {
	c := NewCatalog(MenuControl)

	c.AddMenu(Menu{
		ID:    MenuControl,
		Title: controlTitle,
		Items: []Item{
			{Label: "Exit", Action: func(e *Engine) { e.Reset() }},
			{Label: "Pause", Action: func(e *Engine) {
				app.Audio.Pause()
				e.OpenDefault()
			}},
			{Label: "Play", Action: func(e *Engine) {
				app.Audio.Play()
				e.OpenDefault()
			}},
			{Label: "Volume", Action: func(e *Engine) {
				if err := e.EnterValue(PromptVolume); err != nil {
					e.log.Error("volume prompt", "err", err)
					e.Reset()
				}
			}},
			{Label: "IP Address", Action: func(e *Engine) {
				e.ShowMessage("IP Address", app.Network.Address())
			}},
		},
	})

	c.AddPrompt(Prompt{
		ID:      PromptVolume,
		Title:   volumeTitle,
		Low:     audio.MinVolume,
		High:    audio.MaxVolume,
		Step:    1,
		Initial: app.Volume.Get,
		Commit: func(e *Engine, v int) {
			if err := app.Volume.Set(v); err != nil {
				e.log.Error("volume not saved", "err", err)
			}
			app.Audio.SetVolume(v)
			e.ShowMessage("Entered", "\n\nVolume : "+conv.Itoa(v))
		},
	})
	return c
}

// WelcomeBody is the boot greeting shown under the "Welcome" title.
func WelcomeBody(name, version string) string {
	return "Bluetooth name\n   " + name + "\nV" + version
}

// Welcome shows the boot greeting.
func (e *Engine) Welcome(name, version string) {
	e.ShowMessage("Welcome", WelcomeBody(name, version))
}
