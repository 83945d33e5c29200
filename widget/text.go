package widget

// Text is a status bar element showing one line of text
type Text struct {
	name     string
	instance string
	text     string
	state    State
}

func NewText(name, instance string) *Text {
	return &Text{
		name:     name,
		instance: instance,
		state:    Idle,
	}
}

// WithText sets the text displayed before the first update
func (w *Text) WithText(text string) *Text {
	w.text = text
	return w
}

func (w *Text) SetText(text string) {
	w.text = text
}

func (w *Text) SetState(state State) {
	w.state = state
}

func (w *Text) Text() string {
	return w.text
}

func (w *Text) State() State {
	return w.state
}

// I3BarBlock is one block of the i3bar protocol
type I3BarBlock struct {
	FullText string `json:"full_text"`
	Name     string `json:"name,omitempty"`
	Instance string `json:"instance,omitempty"`
	Color    string `json:"color,omitempty"`
}

func (w *Text) I3Bar() I3BarBlock {
	return I3BarBlock{
		FullText: w.text,
		Name:     w.name,
		Instance: w.instance,
		Color:    w.state.Color(),
	}
}
