package ui

// Mode selects which part of the state machine handles a tick.
type Mode uint8

const (
	ModeOff Mode = iota
	ModeMenu
	ModeValue
	ModeMessage
	ModeBlocking
)

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeMenu:
		return "menu"
	case ModeValue:
		return "value"
	case ModeMessage:
		return "message"
	case ModeBlocking:
		return "blocking"
	default:
		return "unknown"
	}
}

// MenuID identifies a catalog menu. Dispatch goes by ID; titles are only
// displayed.
type MenuID uint8

const (
	MenuNone MenuID = iota
	MenuControl
)

// PromptID identifies a catalog value prompt.
type PromptID uint8

const (
	PromptNone PromptID = iota
	PromptVolume
)

// Action runs when its item is selected. It may reset the engine or move
// it to another mode.
type Action func(e *Engine)

// Item is one selectable menu row.
type Item struct {
	Label  string
	Action Action
}

// Menu is a titled list of items opened by ID.
type Menu struct {
	ID    MenuID
	Title string
	Items []Item
}

// Prompt describes a bounded numeric entry.
type Prompt struct {
	ID      PromptID
	Title   string
	Low     int
	High    int
	Step    int
	Initial func() int
	Commit  func(e *Engine, v int)
}

// Model is the single active menu or widget. Items are 1-indexed; index 0
// is unused.
type Model struct {
	Mode   Mode
	Title  string
	Menu   MenuID
	Prompt PromptID

	Items       []Item
	ItemCount   int
	Highlighted int
	Selected    int // 0 = nothing pending

	LastActivity int64

	Value, Low, High, Step int

	Body string // message text
}

// State is a copy of the visible parts of the model.
type State struct {
	Mode        Mode
	Title       string
	Menu        MenuID
	Prompt      PromptID
	Highlighted int
	Selected    int
	ItemCount   int
	Value       int
	Low         int
	High        int
	Body        string
}

func (m *Model) snapshot() State {
	return State{
		Mode:        m.Mode,
		Title:       m.Title,
		Menu:        m.Menu,
		Prompt:      m.Prompt,
		Highlighted: m.Highlighted,
		Selected:    m.Selected,
		ItemCount:   m.ItemCount,
		Value:       m.Value,
		Low:         m.Low,
		High:        m.High,
		Body:        m.Body,
	}
}

// label returns the text of item i, or "" when out of range.
func (m *Model) label(i int) string {
	if i < 1 || i > m.ItemCount || i >= len(m.Items) {
		return ""
	}
	return m.Items[i].Label
}

// clear resets everything except LastActivity.
func (m *Model) clear() {
	items := m.Items[:0]
	*m = Model{Items: items, LastActivity: m.LastActivity}
}
