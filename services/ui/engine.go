// Package ui is the menu state machine: it turns encoder movement and
// button presses into highlighted items, dispatched actions and bounded
// values, and renders the result.
//
// All methods except OnEdgeChange must be called from the main loop.
package ui

import (
	"log/slog"
	"time"

	"audiomenu-go/drivers/oled"
	"audiomenu-go/errcode"
	"audiomenu-go/x/logx"
	"audiomenu-go/x/mathx"
	"audiomenu-go/x/timex"
)

// Encoder is the interrupt-fed movement counter.
type Encoder interface {
	OnEdgeChange()
	Drain(trigger int32) int
	Reset()
	Invalid() uint32
}

// Button is the debounced push switch.
type Button interface {
	Resync(nowMs int64) bool
	TakePressed() bool
	ClearPressed()
}

type Deps struct {
	Display oled.Surface // nil runs headless
	Encoder Encoder
	Button  Button
	Clock   timex.Clock // nil uses the system clock
	Catalog *Catalog
	Log     *slog.Logger
}

type Engine struct {
	cfg   Config
	d     oled.Surface
	enc   Encoder
	btn   Button
	clock timex.Clock
	cat   *Catalog
	log   *slog.Logger

	m      Model
	prompt Prompt
}

func NewEngine(cfg Config, deps Deps) *Engine {
	if cfg.ItemTrigger < 1 {
		cfg.ItemTrigger = 1
	}
	if cfg.MaxItems < 1 {
		cfg.MaxItems = 1
	}
	if cfg.DisplayMaxLines < 1 {
		cfg.DisplayMaxLines = 1
	}
	e := &Engine{
		cfg:   cfg,
		d:     deps.Display,
		enc:   deps.Encoder,
		btn:   deps.Button,
		clock: deps.Clock,
		cat:   deps.Catalog,
		log:   logx.Component(deps.Log, "ui"),
	}
	if e.d == nil {
		e.d = oled.Headless{}
	}
	if e.clock == nil {
		e.clock = timex.NewSystem()
	}
	if e.cat == nil {
		e.cat = NewCatalog(MenuNone)
	}
	e.m.Items = make([]Item, 1, cfg.MaxItems+1)
	e.Reset()
	return e
}

// OnEdgeChange is the interrupt entry point for both encoder pins.
func (e *Engine) OnEdgeChange() { e.enc.OnEdgeChange() }

func (e *Engine) Mode() Mode   { return e.m.Mode }
func (e *Engine) State() State { return e.m.snapshot() }

// Invalid is the encoder's invalid-transition count.
func (e *Engine) Invalid() uint32 { return e.enc.Invalid() }

// ClampIndex limits a 1-based index to [1, n]. With n < 1 it returns 1.
func ClampIndex(i, n int) int {
	if i > n {
		i = n
	}
	if i < 1 {
		i = 1
	}
	return i
}

func (e *Engine) touch(now int64) { e.m.LastActivity = now }

// Tick advances the state machine once. It never blocks.
func (e *Engine) Tick() {
	now := e.clock.NowMs()
	if e.btn.Resync(now) && e.m.Mode == ModeOff {
		e.OpenDefault()
	}
	if e.m.Mode == ModeOff {
		return
	}
	if timex.ElapsedMs(e.clock, e.m.LastActivity) >= e.cfg.Timeout.Milliseconds() {
		e.log.Debug("inactivity timeout", "mode", e.m.Mode.String())
		e.Reset()
		return
	}

	switch e.m.Mode {
	case ModeMenu:
		e.tickMenu(now)
	case ModeValue:
		e.tickValue(now)
	case ModeMessage:
		if e.btn.TakePressed() {
			e.Reset()
		}
	}
}

func (e *Engine) tickMenu(now int64) {
	switch e.enc.Drain(e.cfg.ItemTrigger) {
	case +1:
		e.m.Highlighted++
		e.touch(now)
	case -1:
		e.m.Highlighted--
		e.touch(now)
	}
	e.m.Highlighted = ClampIndex(e.m.Highlighted, e.m.ItemCount)

	if e.btn.TakePressed() {
		e.m.Selected = e.m.Highlighted
		e.touch(now)
		e.log.Debug("item selected", "menu", e.m.Title, "item", e.m.label(e.m.Selected))
	}
	e.renderMenu()
	if e.m.Selected != 0 {
		e.dispatch()
	}
}

func (e *Engine) dispatch() {
	sel := e.m.Selected
	var act Action
	if sel >= 1 && sel <= e.m.ItemCount {
		act = e.m.Items[sel].Action
	}
	e.m.Selected = 0
	if act != nil {
		act(e)
	}
}

// stepValue applies one drained encoder step and clamps.
func (e *Engine) stepValue(now int64) {
	switch e.enc.Drain(e.cfg.ItemTrigger) {
	case +1:
		e.m.Value += e.m.Step
		e.touch(now)
	case -1:
		e.m.Value -= e.m.Step
		e.touch(now)
	}
	e.m.Value = mathx.Clamp(e.m.Value, e.m.Low, e.m.High)
}

func (e *Engine) tickValue(now int64) {
	e.stepValue(now)
	e.renderValue()
	if !e.btn.TakePressed() {
		return
	}
	v := e.m.Value
	p := e.prompt
	e.log.Debug("value entered", "prompt", p.Title, "value", v)
	if p.Commit != nil {
		p.Commit(e, v)
	}
	if e.m.Mode == ModeValue {
		// commit left us here; confirm with a plain message
		e.ShowMessage(p.Title, "")
	}
}

// Reset turns the UI off: mode Off, counters zeroed, pending encoder
// movement and button press discarded, display blanked.
func (e *Engine) Reset() {
	e.reset()
	e.d.Clear()
	e.present()
}

// reset is Reset without the blank frame, for callers that draw the next
// screen straight away.
func (e *Engine) reset() {
	e.m.clear()
	e.prompt = Prompt{}
	e.enc.Reset()
	e.btn.ClearPressed()
	e.touch(e.clock.NowMs())
}

// OpenDefault opens the catalog's default menu.
func (e *Engine) OpenDefault() {
	if err := e.OpenMenu(e.cat.Default); err != nil {
		e.log.Warn("no default menu", "err", err)
	}
}

// OpenMenu resets and shows menu id with item 1 highlighted.
func (e *Engine) OpenMenu(id MenuID) error {
	menu, ok := e.cat.Menu(id)
	if !ok {
		return &errcode.E{C: errcode.UnknownMenu, Op: "ui.open_menu"}
	}
	e.reset()
	items := menu.Items
	if len(items) > e.cfg.MaxItems {
		e.log.Warn("menu truncated", "menu", menu.Title, "items", len(items), "max", e.cfg.MaxItems)
		items = items[:e.cfg.MaxItems]
	}
	e.m.Mode = ModeMenu
	e.m.Menu = id
	e.m.Title = menu.Title
	e.m.Items = append(e.m.Items[:1], items...)
	e.m.ItemCount = len(items)
	e.m.Highlighted = 1
	e.renderMenu()
	return nil
}

// EnterValue resets and starts non-blocking entry for prompt id, drawing
// the value screen at once. The initial value is clamped into the
// prompt's range.
func (e *Engine) EnterValue(id PromptID) error {
	p, ok := e.cat.Prompt(id)
	if !ok {
		return &errcode.E{C: errcode.UnknownPrompt, Op: "ui.enter_value"}
	}
	e.reset()
	e.beginValue(p)
	e.m.Mode = ModeValue
	e.renderValue()
	return nil
}

func (e *Engine) beginValue(p Prompt) {
	if p.High < p.Low {
		p.Low, p.High = p.High, p.Low
	}
	if p.Step < 1 {
		p.Step = 1
	}
	e.prompt = p
	e.m.Prompt = p.ID
	e.m.Title = p.Title
	e.m.Low, e.m.High, e.m.Step = p.Low, p.High, p.Step
	v := p.Low
	if p.Initial != nil {
		v = p.Initial()
	}
	e.m.Value = mathx.Clamp(v, p.Low, p.High)
}

// ShowMessage resets and draws a title and body once. Any press then
// turns the UI off.
func (e *Engine) ShowMessage(title, body string) {
	e.reset()
	e.m.Mode = ModeMessage
	e.m.Title = title
	e.m.Body = body
	e.renderMessage()
}

// PromptForValue runs value entry synchronously until a press or until
// timeout passes without input (0 uses the configured timeout). Nothing
// else in the main loop runs meanwhile. The UI is off on return.
func (e *Engine) PromptForValue(p Prompt, timeout time.Duration) int {
	if timeout <= 0 {
		timeout = e.cfg.Timeout
	}
	limit := timeout.Milliseconds()

	e.reset()
	e.beginValue(p)
	e.m.Mode = ModeBlocking
	e.touch(e.clock.NowMs())
	for {
		now := e.clock.NowMs()
		e.stepValue(now)
		e.renderValue()
		e.btn.Resync(now)
		if e.btn.TakePressed() {
			break
		}
		if timex.ElapsedMs(e.clock, e.m.LastActivity) >= limit {
			e.log.Debug("blocking prompt timed out", "prompt", p.Title)
			break
		}
	}
	v := e.m.Value
	e.Reset()
	return v
}
