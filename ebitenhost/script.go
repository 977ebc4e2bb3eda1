package ebitenhost

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/starfan"
)

// scriptStep is one action of a replay script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays presses, waits and screenshots across frames, for demos
// and visual checks without a human at the mouse. Actions:
//
//	click      press at (x, y) in window coordinates
//	toggle     flip the fan directly
//	wait       let `frames` frames pass
//	screenshot queue a screenshot named `label`
//	quit       close the window
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	quit      bool
	done      bool
}

// LoadScript parses a JSON replay script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "click", "toggle", "wait", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// LoadScriptFile reads and parses a replay script from disk.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return LoadScript(data)
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// SetScript attaches a replay script. It runs from the next Update.
func (g *Game) SetScript(s *Script) {
	g.script = s
}

// InjectPress queues a synthetic press at window coordinates. One queued
// press is consumed per Update, before real input.
func (g *Game) InjectPress(x, y float64) {
	g.injected = append(g.injected, starfan.Point{X: x, Y: y})
}

// step runs at most one script action per frame. It returns
// ebiten.Termination once a quit step has run.
func (s *Script) step(g *Game) error {
	if s.quit {
		return ebiten.Termination
	}
	if s.done || len(g.injected) > 0 {
		return nil
	}
	if s.waitCount > 0 {
		s.waitCount--
		return nil
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return nil
	}

	st := s.steps[s.cursor]
	s.cursor++
	switch st.Action {
	case "click":
		g.InjectPress(st.X, st.Y)
	case "toggle":
		g.scene.ChangeEnableStatus()
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		g.Screenshot(st.Label)
	case "quit":
		s.quit = true
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(g.injected) == 0 {
		s.done = true
	}
	return nil
}
