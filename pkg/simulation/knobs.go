package simulation

import (
	"github.com/lao-tseu-is-alive/go-boids3d/pb"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/controls"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/flock"
)

// Knob labels, matching the configuration keys.
const (
	KnobViewRadius    = "viewRadius"
	KnobPushScale     = "pushScale"
	KnobPullScale     = "pullScale"
	KnobCenterEnabled = "centerEnabled"
	KnobAgentScale    = "agentScale"
	ButtonScramble    = "scramble"
)

// KnobPanel is the control panel of a running flock.
type KnobPanel struct {
	*controls.Panel

	viewRadius    *controls.Slider
	pushScale     *controls.Slider
	pullScale     *controls.Slider
	centerEnabled *controls.Checkbox
	agentScale    *controls.Slider
	scramble      *controls.Button
}

// NewKnobPanel builds the panel from the initial knob positions in cfg. onScramble runs
// when the scramble button is pressed; it may be nil.
func NewKnobPanel(cfg *Config, onScramble func()) *KnobPanel {
	panel := controls.NewPanel("Flock")

	panel.AddSection("Steering")
	viewRadius := panel.AddSlider(KnobViewRadius, 0, flock.MaxViewRadius, cfg.ViewRadius)
	pushScale := panel.AddSlider(KnobPushScale, 0, 1, cfg.PushScale)
	pullScale := panel.AddSlider(KnobPullScale, 0, 1, cfg.PullScale)
	centerEnabled := panel.AddCheckbox(KnobCenterEnabled, cfg.CenterEnabled)
	panel.EndSection()

	panel.AddSection("Appearance")
	agentScale := panel.AddSlider(KnobAgentScale, flock.MinAgentScale, flock.MaxAgentScale, cfg.BoidSize)
	panel.EndSection()

	panel.AddSection("Actions")
	scramble := panel.AddButton(ButtonScramble, onScramble)
	panel.EndSection()

	return &KnobPanel{
		Panel:         panel,
		viewRadius:    viewRadius,
		pushScale:     pushScale,
		pullScale:     pullScale,
		centerEnabled: centerEnabled,
		agentScale:    agentScale,
		scramble:      scramble,
	}
}

// Knobs reads the current positions.
func (k *KnobPanel) Knobs() flock.Knobs {
	return flock.Knobs{
		ViewRadius:    k.viewRadius.Value(),
		PushScale:     k.pushScale.Value(),
		PullScale:     k.pullScale.Value(),
		CenterEnabled: k.centerEnabled.Value(),
		AgentScale:    k.agentScale.Value(),
	}
}

// UpdateConfig is the message carrying the current positions to the world.
func (k *KnobPanel) UpdateConfig() *pb.UpdateConfig {
	return KnobsToProto(k.Knobs())
}

// Scramble presses the scramble button.
func (k *KnobPanel) Scramble() {
	k.scramble.Press()
}
