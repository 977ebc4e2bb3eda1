// Package termhost runs a starfan scene in a terminal with tcell. Every cell
// shows two canvas pixels with an upper half block, so one scene unit is one
// column wide and half a row tall and the bounding square stays square.
package termhost

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/starfan"
)

const halfBlock = '▀'

// App owns the screen, the scene and the canvas the scene is rasterised
// into.
type App struct {
	screen  tcell.Screen
	scene   *starfan.Composition
	canvas  *Canvas
	surface *CellSurface
	cfg     RunConfig

	buttons tcell.ButtonMask
}

// NewApp builds a scene sized to screen, which must already be initialized.
func NewApp(screen tcell.Screen, cfg RunConfig) (*App, error) {
	a := &App{
		screen: screen,
		canvas: NewCanvas(0, 0),
		cfg:    cfg,
	}
	a.surface = NewCellSurface(a.canvas)
	scene, err := cfg.Scene.NewComposition(a.resizeCanvas())
	if err != nil {
		return nil, err
	}
	a.scene = scene
	return a, nil
}

// Scene returns the composition driven by the app.
func (a *App) Scene() *starfan.Composition { return a.scene }

// sceneRows is the number of terminal rows given to the canvas.
func (a *App) sceneRows(rows int) int {
	if a.cfg.ShowStatus {
		rows--
	}
	return max(rows, 0)
}

// resizeCanvas matches the canvas to the screen and returns the new
// bounding square.
func (a *App) resizeCanvas() starfan.Rect {
	cols, rows := a.screen.Size()
	w, h := cols, 2*a.sceneRows(rows)
	a.canvas.Resize(w, h)
	return starfan.DrawRect(float64(w), float64(h), a.cfg.CellMargin)
}

func (a *App) layout() error {
	if err := a.scene.UpdateComponents(a.resizeCanvas()); err != nil {
		return fmt.Errorf("termhost: layout: %w", err)
	}
	return nil
}

// cellPoint maps a terminal cell to the scene point at its center.
func cellPoint(x, y int) starfan.Point {
	return starfan.Point{X: float64(x) + 0.5, Y: float64(2*y) + 1}
}

// HandleEvent applies one terminal event. It reports whether the app should
// quit.
func (a *App) HandleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true, nil
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return true, nil
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			a.scene.ChangeEnableStatus()
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
		a.buttons = buttons
		if pressed {
			x, y := ev.Position()
			a.scene.HandlePress(cellPoint(x, y))
		}

	case *tcell.EventResize:
		a.screen.Sync()
		if err := a.layout(); err != nil {
			return true, err
		}
	}
	return false, nil
}

// Render paints the current frame and shows it.
func (a *App) Render() {
	a.canvas.Clear(colorful.Color{R: 1, G: 1, B: 1})
	a.scene.DrawFrame(a.surface)
	a.scene.Draw(a.surface)
	a.blit()
	if a.cfg.ShowStatus {
		a.drawStatus()
	}
	a.screen.Show()
}

func (a *App) blit() {
	w, h := a.canvas.Size()
	for row := 0; row < h/2; row++ {
		for x := 0; x < w; x++ {
			style := tcell.StyleDefault.
				Foreground(toTcell(a.canvas.At(x, 2*row))).
				Background(toTcell(a.canvas.At(x, 2*row+1)))
			a.screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
}

func (a *App) drawStatus() {
	cols, rows := a.screen.Size()
	if rows == 0 {
		return
	}
	fan := "off"
	if a.scene.Fan().IsEnabled() {
		fan = "on"
	}
	text := []rune(fmt.Sprintf(" stars: %d  fan: %s  [click/space] toggle  [q] quit",
		a.scene.StarCount(), fan))
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(text) {
			r = text[x]
		}
		a.screen.SetContent(x, rows-1, r, nil, style)
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Loop ticks and renders at the configured rate until a quit key is pressed
// or the event source is closed.
func (a *App) Loop() error {
	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.TPS))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	a.Render()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := a.HandleEvent(ev)
			if err != nil || quit {
				return err
			}

		case <-ticker.C:
			if err := a.scene.Tick(); err != nil {
				return err
			}
			a.Render()
		}
	}
}

// Run opens the terminal, runs the scene and restores the terminal on exit.
func Run(cfg RunConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	app, err := NewApp(screen, cfg)
	if err != nil {
		return err
	}
	return app.Loop()
}
