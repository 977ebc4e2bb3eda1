// Package ebitenhost runs a starfan scene in an Ebitengine window.
package ebitenhost

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/starfan"
)

// Game adapts a starfan.Composition to ebiten.Game. Update ticks the scene,
// Draw paints it, and Layout keeps its bounding square in sync with the
// window size.
type Game struct {
	scene   *starfan.Composition
	surface *ImageSurface
	cfg     RunConfig

	width, height int
	touches       []ebiten.TouchID
	err           error

	status   statusLine
	script   *Script
	injected []starfan.Point
	shots    []string
}

// NewGame builds the scene for a window of the configured size.
func NewGame(cfg RunConfig) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	rect := starfan.DrawRect(float64(cfg.Width), float64(cfg.Height), cfg.Margin)
	scene, err := cfg.Scene.NewComposition(rect)
	if err != nil {
		return nil, err
	}
	return &Game{
		scene:   scene,
		surface: NewImageSurface(nil),
		cfg:     cfg,
		width:   cfg.Width,
		height:  cfg.Height,
	}, nil
}

// Scene returns the composition driven by the game.
func (g *Game) Scene() *starfan.Composition {
	return g.scene
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.script != nil {
		if err := g.script.step(g); err != nil {
			return err
		}
	}
	if len(g.injected) > 0 {
		g.scene.HandlePress(g.injected[0])
		g.injected = g.injected[1:]
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.scene.HandlePress(starfan.Point{X: float64(x), Y: float64(y)})
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.scene.HandlePress(starfan.Point{X: float64(x), Y: float64(y)})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.ChangeEnableStatus()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.Screenshot("frame")
	}
	if err := g.scene.Tick(); err != nil {
		return err
	}
	if g.cfg.ShowStatus {
		g.status.update(1/float64(g.cfg.TPS), g.scene)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	g.surface.SetTarget(screen)
	g.scene.DrawFrame(g.surface)
	g.scene.Draw(g.surface)
	g.surface.Flush()

	// Screenshots capture the scene without the overlay.
	g.flushScreenshots(screen)

	if g.cfg.ShowStatus {
		ebitenutil.DebugPrintAt(screen, g.status.text, 4, 4)
	}
}

// Layout uses the window size as the logical screen size and relays the
// scene out whenever it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.relayout()
	}
	return g.width, g.height
}

func (g *Game) relayout() {
	rect := starfan.DrawRect(float64(g.width), float64(g.height), g.cfg.Margin)
	if err := g.scene.UpdateComponents(rect); err != nil {
		g.err = fmt.Errorf("ebitenhost: layout %dx%d: %w", g.width, g.height, err)
	}
}

// Run opens the window and blocks until it is closed or a replay script
// quits.
func Run(cfg RunConfig) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}
	if cfg.Script != "" {
		script, err := LoadScriptFile(cfg.Script)
		if err != nil {
			return err
		}
		g.SetScript(script)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowSizeLimits(cfg.MinWidth, cfg.MinHeight, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
