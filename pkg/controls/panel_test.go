package controls

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlider_Clamps(t *testing.T) {
	s := NewSlider("View radius", 0, 500, 900)
	assert.Equal(t, 500.0, s.Value())

	s.SetValue(-3)
	assert.Equal(t, 0.0, s.Value())

	require.NoError(t, s.Set(" 250 "))
	assert.Equal(t, 250.0, s.Value())
	assert.InDelta(t, 0.5, s.Ratio(), 1e-12)

	assert.Error(t, s.Set("lots"))
	assert.Equal(t, 250.0, s.Value(), "a bad value leaves the slider alone")
}

func TestCheckbox(t *testing.T) {
	c := NewCheckbox("Center", true)
	assert.False(t, c.Toggle())
	require.NoError(t, c.Set("true"))
	assert.True(t, c.Value())
	assert.Error(t, c.Set("maybe"))
}

func TestPanel_SetAndLookup(t *testing.T) {
	pressed := 0
	p := NewPanel("Knobs")
	p.AddSection("Steering")
	p.AddSlider("Push", 0, 1, 0.5)
	p.AddCheckbox("Center", false)
	p.EndSection()
	p.AddSection("Actions")
	p.AddButton("Scramble", func() { pressed++ })

	require.NoError(t, p.Set("push", "0.75"))
	v, err := p.SliderValue("PUSH")
	require.NoError(t, err)
	assert.Equal(t, 0.75, v)

	require.NoError(t, p.Apply("center=true"))
	on, err := p.CheckboxValue("Center")
	require.NoError(t, err)
	assert.True(t, on)

	require.NoError(t, p.Press("scramble"))
	require.NoError(t, p.Apply("Scramble="))
	assert.Equal(t, 2, pressed)

	assert.ErrorIs(t, p.Set("pull", "1"), ErrUnknownWidget)
	_, err = p.SliderValue("center")
	assert.ErrorIs(t, err, ErrUnknownWidget, "a checkbox is not a slider")
	assert.Error(t, p.Apply("push"))

	sections := p.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, Section{Title: "Steering", StartIndex: 0, EndIndex: 2}, sections[0])
	assert.Equal(t, Section{Title: "Actions", StartIndex: 2, EndIndex: 3}, sections[1])

	out := p.String()
	assert.Contains(t, out, "-- Steering --")
	assert.Contains(t, out, "Push = 0.750")
	assert.Contains(t, out, "[Scramble]")
}

func TestPanel_ConcurrentUse(t *testing.T) {
	p := NewPanel("Knobs")
	s := p.AddSlider("Radius", 0, 100, 10)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := range 100 {
				_ = p.Set("radius", string(rune('0'+(i+j)%10)))
			}
		}()
		go func() {
			defer wg.Done()
			for range 100 {
				v := s.Value()
				assert.True(t, v >= 0 && v <= 100)
			}
		}()
	}
	wg.Wait()
}
