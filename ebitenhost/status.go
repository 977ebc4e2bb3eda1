package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/starfan"
)

// statusInterval is how often, in seconds, the status text is rebuilt.
const statusInterval = 0.5

// statusLine is the throttled overlay in the top-left corner: star count,
// fan state and the measured frame rates.
type statusLine struct {
	elapsed float64
	text    string
}

// update advances the timer by dt seconds and rebuilds the text when the
// interval has passed or nothing has been built yet.
func (s *statusLine) update(dt float64, scene *starfan.Composition) {
	s.elapsed += dt
	if s.text != "" && s.elapsed < statusInterval {
		return
	}
	s.elapsed = 0
	s.text = formatStatus(scene, ebiten.ActualFPS(), ebiten.ActualTPS())
}

func formatStatus(scene *starfan.Composition, fps, tps float64) string {
	fan := "off"
	if scene.Fan().IsEnabled() {
		fan = "on"
	}
	return fmt.Sprintf("stars: %d  fan: %s\nFPS: %.1f  TPS: %.1f", scene.StarCount(), fan, fps, tps)
}
