package ebitenhost

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks for a PNG of the next drawn frame, named after label and
// the scene tick, in RunConfig.ScreenshotDir.
func (g *Game) Screenshot(label string) {
	g.shots = append(g.shots, label)
}

// flushScreenshots saves the pending shots. Failures are reported on stderr
// and never stop the game.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.shots) == 0 {
		return
	}
	if err := g.saveShots(snapshot(screen)); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[starfan] screenshot: %v\n", err)
	}
	g.shots = g.shots[:0]
}

func (g *Game) saveShots(img image.Image) error {
	if err := os.MkdirAll(g.cfg.ScreenshotDir, 0o755); err != nil {
		return err
	}
	var errs []error
	for _, label := range g.shots {
		name := shotName(label, g.scene.TickCount())
		errs = append(errs, savePNG(filepath.Join(g.cfg.ScreenshotDir, name), img))
	}
	return errors.Join(errs...)
}

// snapshot copies the screen into a premultiplied RGBA image, which is the
// layout ReadPixels produces.
func snapshot(screen *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	return img
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// shotName builds "<label>_t<tick>.png". Runes outside [A-Za-z0-9.-] in the
// label become '_'; a blank label is "frame".
func shotName(label string, tick uint64) string {
	label = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, strings.TrimSpace(label))
	if label == "" {
		label = "frame"
	}
	return fmt.Sprintf("%s_t%06d.png", label, tick)
}
