package controls

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrUnknownWidget is returned when a label matches no widget of the expected kind.
var ErrUnknownWidget = errors.New("unknown widget")

// Section groups consecutive widgets under a title.
type Section struct {
	Title      string
	StartIndex int // first widget of the section
	EndIndex   int // one past the last widget
}

// Panel is an ordered collection of widgets addressed by label.
type Panel struct {
	Title string

	mu       sync.RWMutex
	widgets  []Widget
	byLabel  map[string]Widget
	sections []Section
}

// NewPanel creates an empty panel.
func NewPanel(title string) *Panel {
	return &Panel{Title: title, byLabel: make(map[string]Widget)}
}

// AddSection starts a new section; widgets added afterward belong to it.
func (p *Panel) AddSection(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeSection()
	p.sections = append(p.sections, Section{Title: title, StartIndex: len(p.widgets), EndIndex: -1})
}

// EndSection closes the current section.
func (p *Panel) EndSection() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeSection()
}

func (p *Panel) closeSection() {
	if n := len(p.sections); n > 0 && p.sections[n-1].EndIndex < 0 {
		p.sections[n-1].EndIndex = len(p.widgets)
	}
}

func (p *Panel) add(w Widget) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.widgets = append(p.widgets, w)
	p.byLabel[normalize(w.Label())] = w
}

// AddSlider adds a slider and returns it.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(label, min, max, value)
	p.add(s)
	return s
}

// AddCheckbox adds a checkbox and returns it.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(label, value)
	p.add(c)
	return c
}

// AddButton adds a button and returns it.
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(label, onClick)
	p.add(b)
	return b
}

// Widget looks a widget up by label, ignoring case and surrounding spaces.
func (p *Panel) Widget(label string) (Widget, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	w, ok := p.byLabel[normalize(label)]
	return w, ok
}

// Set parses value into the widget called label.
func (p *Panel) Set(label, value string) error {
	w, ok := p.Widget(label)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWidget, label)
	}
	return w.Set(value)
}

// Apply parses an assignment of the form "label=value" and applies it.
func (p *Panel) Apply(assignment string) error {
	label, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("expected label=value, got %q", assignment)
	}
	return p.Set(label, value)
}

// SliderValue returns the value of the slider called label.
func (p *Panel) SliderValue(label string) (float64, error) {
	w, _ := p.Widget(label)
	s, ok := w.(*Slider)
	if !ok {
		return 0, fmt.Errorf("%w: slider %q", ErrUnknownWidget, label)
	}
	return s.Value(), nil
}

// CheckboxValue returns the value of the checkbox called label.
func (p *Panel) CheckboxValue(label string) (bool, error) {
	w, _ := p.Widget(label)
	c, ok := w.(*Checkbox)
	if !ok {
		return false, fmt.Errorf("%w: checkbox %q", ErrUnknownWidget, label)
	}
	return c.Value(), nil
}

// Press presses the button called label.
func (p *Panel) Press(label string) error {
	w, _ := p.Widget(label)
	b, ok := w.(*Button)
	if !ok {
		return fmt.Errorf("%w: button %q", ErrUnknownWidget, label)
	}
	b.Press()
	return nil
}

// Widgets returns the widgets in insertion order.
func (p *Panel) Widgets() []Widget {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Widget(nil), p.widgets...)
}

// Sections returns the sections with open ones closed at the current end.
func (p *Panel) Sections() []Section {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := append([]Section(nil), p.sections...)
	for i := range out {
		if out[i].EndIndex < 0 {
			out[i].EndIndex = len(p.widgets)
		}
	}
	return out
}

// String lists every section and widget, one per line.
func (p *Panel) String() string {
	widgets := p.Widgets()
	var sb strings.Builder
	sb.WriteString(p.Title)
	sb.WriteByte('\n')
	seen := 0
	for _, s := range p.Sections() {
		for ; seen < s.StartIndex; seen++ {
			fmt.Fprintf(&sb, "  %s\n", widgets[seen])
		}
		fmt.Fprintf(&sb, "  -- %s --\n", s.Title)
		for ; seen < s.EndIndex; seen++ {
			fmt.Fprintf(&sb, "    %s\n", widgets[seen])
		}
	}
	for ; seen < len(widgets); seen++ {
		fmt.Fprintf(&sb, "  %s\n", widgets[seen])
	}
	return sb.String()
}

func normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
