// Package controls holds the live-tunable knobs of a running simulation: sliders,
// checkboxes and buttons grouped in a Panel. Widgets are safe for concurrent use, so a
// controller can write them while the simulation loop reads them.
package controls

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// Widget is anything that can live in a Panel.
type Widget interface {
	Label() string
	// Set parses value and applies it.
	Set(value string) error
	String() string
}

// Slider is a bounded float value.
type Slider struct {
	label    string
	Min, Max float64

	mu    sync.RWMutex
	value float64
}

// NewSlider creates a slider with value clamped into [min, max].
func NewSlider(label string, min, max, value float64) *Slider {
	if max < min {
		min, max = max, min
	}
	s := &Slider{label: label, Min: min, Max: max}
	s.SetValue(value)
	return s
}

func (s *Slider) Label() string { return s.label }

// Value returns the current position.
func (s *Slider) Value() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// SetValue moves the slider, clamping to its bounds. NaN is ignored.
func (s *Slider) SetValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	v = math.Max(s.Min, math.Min(s.Max, v))
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
}

// Ratio returns the position as a fraction of the range, 0 when the range is empty.
func (s *Slider) Ratio() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value() - s.Min) / (s.Max - s.Min)
}

func (s *Slider) Set(value string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("slider %q: %w", s.label, err)
	}
	s.SetValue(v)
	return nil
}

func (s *Slider) String() string {
	return fmt.Sprintf("%s = %.3f [%g, %g]", s.label, s.Value(), s.Min, s.Max)
}

// Checkbox is an on/off value.
type Checkbox struct {
	label string

	mu    sync.RWMutex
	value bool
}

// NewCheckbox creates a checkbox.
func NewCheckbox(label string, value bool) *Checkbox {
	return &Checkbox{label: label, value: value}
}

func (c *Checkbox) Label() string { return c.label }

// Value reports whether the box is checked.
func (c *Checkbox) Value() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// SetValue checks or unchecks the box.
func (c *Checkbox) SetValue(v bool) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
}

// Toggle flips the box and returns the new value.
func (c *Checkbox) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = !c.value
	return c.value
}

func (c *Checkbox) Set(value string) error {
	v, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("checkbox %q: %w", c.label, err)
	}
	c.SetValue(v)
	return nil
}

func (c *Checkbox) String() string {
	return fmt.Sprintf("%s = %t", c.label, c.Value())
}

// Button runs OnClick when pressed.
type Button struct {
	label   string
	OnClick func()

	mu      sync.Mutex
	presses int
}

// NewButton creates a button.
func NewButton(label string, onClick func()) *Button {
	return &Button{label: label, OnClick: onClick}
}

func (b *Button) Label() string { return b.label }

// Press fires OnClick once.
func (b *Button) Press() {
	b.mu.Lock()
	b.presses++
	b.mu.Unlock()
	if b.OnClick != nil {
		b.OnClick()
	}
}

// Presses returns how many times the button was pressed.
func (b *Button) Presses() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.presses
}

// Set presses the button; the value is ignored.
func (b *Button) Set(string) error {
	b.Press()
	return nil
}

func (b *Button) String() string {
	return fmt.Sprintf("[%s]", b.label)
}
