package types

// ------------------------
// Bus payloads published by the menu firmware
// ------------------------

// UIState is retained on ui/state whenever the visible UI changes.
type UIState struct {
	Mode        string `json:"mode"`
	Title       string `json:"title"`
	Highlighted int    `json:"highlighted"`
	ItemCount   int    `json:"item_count"`
	Value       int    `json:"value"`
	Low         int    `json:"low"`
	High        int    `json:"high"`
	// InvalidTransitions is the encoder's running count of skipped states.
	InvalidTransitions uint32 `json:"invalid_transitions"`
}

// AudioState is retained on audio/state after every sink command.
type AudioState struct {
	Playing bool `json:"playing"`
	Volume  int  `json:"volume"` // 0..100
}

// LEDState is published (not retained) by the heartbeat on each toggle.
type LEDState struct {
	On bool `json:"on"`
}
