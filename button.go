package starfan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ButtonFadeDuration is how long, in seconds, the button takes to blend
// between its disabled and enabled colors.
const ButtonFadeDuration float32 = 0.25

// Default button fills.
var (
	ButtonEnableBrush  = Brush{Color: ColorGreen}
	ButtonDisableBrush = Brush{Color: ColorRed}
)

// ToggleButton is a clickable circle that flips between disabled (red) and
// enabled (green) on every press and calls its press callback. It owns a
// Circle for its geometry rather than being one.
type ToggleButton struct {
	circle  *Circle
	enabled bool
	onPress func()
	state   func() bool

	tweens [4]*gween.Tween
	fading bool

	EnableBrush  Brush
	DisableBrush Brush
}

// NewToggleButton creates a disabled button. onPress may be nil.
func NewToggleButton(center Point, radius float64, pen Pen, onPress func()) (*ToggleButton, error) {
	c, err := NewCircle(center, radius, pen, ButtonDisableBrush)
	if err != nil {
		return nil, err
	}
	return &ToggleButton{
		circle:       c,
		onPress:      onPress,
		EnableBrush:  ButtonEnableBrush,
		DisableBrush: ButtonDisableBrush,
	}, nil
}

// Circle returns the button's geometry.
func (b *ToggleButton) Circle() *Circle { return b.circle }

// IsEnabled reports the button's state.
func (b *ToggleButton) IsEnabled() bool { return b.enabled }

// SetOnPress replaces the press callback.
func (b *ToggleButton) SetOnPress(fn func()) { b.onPress = fn }

// SetStateFunc makes the button mirror an external on/off state, such as
// Fan.IsEnabled. The state is read after every press and on every Update, so
// changes made behind the button's back still repaint it.
func (b *ToggleButton) SetStateFunc(fn func() bool) { b.state = fn }

// SetGeometry moves and resizes the button.
func (b *ToggleButton) SetGeometry(center Point, radius float64) error {
	if err := b.circle.SetRadius(radius); err != nil {
		return err
	}
	return b.circle.SetCenter(center)
}

// Contains reports whether p hits the button.
func (b *ToggleButton) Contains(p Point) bool {
	return b.circle.Contains(p)
}

// Press calls the press callback, then takes the new state from the state
// func (or flips it when there is none) and starts fading the fill toward
// that state's brush.
func (b *ToggleButton) Press() {
	if b.onPress != nil {
		b.onPress()
	}
	next := !b.enabled
	if b.state != nil {
		next = b.state()
	}
	b.setEnabled(next)
}

func (b *ToggleButton) setEnabled(on bool) {
	b.enabled = on
	target := b.DisableBrush
	if on {
		target = b.EnableBrush
	}
	b.fadeTo(target.Color)
}

func (b *ToggleButton) fadeTo(to Color) {
	from := b.circle.Brush.Color
	b.tweens[0] = gween.New(float32(from.R), float32(to.R), ButtonFadeDuration, ease.OutQuad)
	b.tweens[1] = gween.New(float32(from.G), float32(to.G), ButtonFadeDuration, ease.OutQuad)
	b.tweens[2] = gween.New(float32(from.B), float32(to.B), ButtonFadeDuration, ease.OutQuad)
	b.tweens[3] = gween.New(float32(from.A), float32(to.A), ButtonFadeDuration, ease.OutQuad)
	b.fading = true
}

// Fading reports whether a color transition is in progress.
func (b *ToggleButton) Fading() bool { return b.fading }

// Update resyncs with the state func, then advances the color transition by
// dt seconds.
func (b *ToggleButton) Update(dt float32) {
	if b.state != nil && b.state() != b.enabled {
		b.setEnabled(!b.enabled)
	}
	if !b.fading {
		return
	}
	var vals [4]float64
	done := true
	for i, tw := range b.tweens {
		v, finished := tw.Update(dt)
		vals[i] = float64(v)
		if !finished {
			done = false
		}
	}
	b.circle.Brush.Color = Color{R: clamp01(vals[0]), G: clamp01(vals[1]), B: clamp01(vals[2]), A: clamp01(vals[3])}
	b.fading = !done
}

func (b *ToggleButton) Draw(s Surface) {
	b.circle.Draw(s)
}

func (b *ToggleButton) DrawWithAffine(m Matrix, s Surface) {
	b.circle.DrawWithAffine(m, s)
}

func (b *ToggleButton) Rotate(float64) {}
