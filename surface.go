package starfan

// AngleUnit is the number of surface angle units per degree. Pie angles are
// expressed in sixteenths of a degree, counter-clockwise on screen, with 0
// pointing along +X.
const AngleUnit = 16

// Surface is the drawing target the scene paints into. Hosts implement it
// over their own canvas; acquiring and releasing the canvas around a frame
// is the host's job.
type Surface interface {
	// SetPen sets the outline style used by subsequent draw calls.
	SetPen(Pen)
	// SetBrush sets the fill style used by subsequent draw calls.
	SetBrush(Brush)
	// DrawEllipse fills and outlines the ellipse with radii rx, ry.
	DrawEllipse(center Point, rx, ry float64)
	// DrawLine strokes a segment with the current pen.
	DrawLine(p1, p2 Point)
	// DrawPolygon fills and outlines a closed polygon. The edge from the
	// last point back to the first is always drawn.
	DrawPolygon(points []Point)
	// DrawRect fills and outlines r.
	DrawRect(r Rect)
	// FillRect fills r with b, ignoring the current pen and brush.
	FillRect(r Rect, b Brush)
	// DrawPie fills and outlines the sector of the ellipse inscribed in r,
	// starting at start and spanning sweep, both in AngleUnit.
	DrawPie(r Rect, start, sweep float64)
}

// CommandType identifies the kind of recorded surface call.
type CommandType uint8

const (
	CommandSetPen   CommandType = iota // SetPen
	CommandSetBrush                    // SetBrush
	CommandEllipse                     // DrawEllipse
	CommandLine                        // DrawLine
	CommandPolygon                     // DrawPolygon
	CommandRect                        // DrawRect
	CommandFillRect                    // FillRect
	CommandPie                         // DrawPie
)

var commandNames = [...]string{
	CommandSetPen:   "SetPen",
	CommandSetBrush: "SetBrush",
	CommandEllipse:  "DrawEllipse",
	CommandLine:     "DrawLine",
	CommandPolygon:  "DrawPolygon",
	CommandRect:     "DrawRect",
	CommandFillRect: "FillRect",
	CommandPie:      "DrawPie",
}

func (c CommandType) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "Unknown"
}

// DrawCommand is a single recorded surface call. Only the fields relevant to
// Type are set.
type DrawCommand struct {
	Type   CommandType
	Pen    Pen
	Brush  Brush
	Points []Point // ellipse center, line ends or polygon vertices
	Rect   Rect
	RX, RY float64
	Start  float64
	Sweep  float64
}

// RecordingSurface records every call it receives in order. Replay sends the
// recording to another surface, which lets a host record a frame once and
// paint it more than once.
type RecordingSurface struct {
	Commands []DrawCommand
	pen      Pen
	brush    Brush
}

// NewRecordingSurface creates an empty recording.
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{Commands: make([]DrawCommand, 0, 64)}
}

// Reset drops all recorded commands and keeps the backing array.
func (r *RecordingSurface) Reset() {
	r.Commands = r.Commands[:0]
	r.pen = Pen{}
	r.brush = Brush{}
}

// Pen returns the most recently set pen.
func (r *RecordingSurface) Pen() Pen { return r.pen }

// Brush returns the most recently set brush.
func (r *RecordingSurface) Brush() Brush { return r.brush }

func (r *RecordingSurface) SetPen(p Pen) {
	r.pen = p
	r.Commands = append(r.Commands, DrawCommand{Type: CommandSetPen, Pen: p})
}

func (r *RecordingSurface) SetBrush(b Brush) {
	r.brush = b
	r.Commands = append(r.Commands, DrawCommand{Type: CommandSetBrush, Brush: b})
}

func (r *RecordingSurface) DrawEllipse(center Point, rx, ry float64) {
	r.Commands = append(r.Commands, DrawCommand{
		Type: CommandEllipse, Pen: r.pen, Brush: r.brush,
		Points: []Point{center}, RX: rx, RY: ry,
	})
}

func (r *RecordingSurface) DrawLine(p1, p2 Point) {
	r.Commands = append(r.Commands, DrawCommand{
		Type: CommandLine, Pen: r.pen, Points: []Point{p1, p2},
	})
}

func (r *RecordingSurface) DrawPolygon(points []Point) {
	cp := make([]Point, len(points))
	copy(cp, points)
	r.Commands = append(r.Commands, DrawCommand{
		Type: CommandPolygon, Pen: r.pen, Brush: r.brush, Points: cp,
	})
}

func (r *RecordingSurface) DrawRect(rect Rect) {
	r.Commands = append(r.Commands, DrawCommand{
		Type: CommandRect, Pen: r.pen, Brush: r.brush, Rect: rect,
	})
}

func (r *RecordingSurface) FillRect(rect Rect, b Brush) {
	r.Commands = append(r.Commands, DrawCommand{
		Type: CommandFillRect, Brush: b, Rect: rect,
	})
}

func (r *RecordingSurface) DrawPie(rect Rect, start, sweep float64) {
	r.Commands = append(r.Commands, DrawCommand{
		Type: CommandPie, Pen: r.pen, Brush: r.brush, Rect: rect,
		Start: start, Sweep: sweep,
	})
}

// Count returns how many commands of type typ were recorded.
func (r *RecordingSurface) Count(typ CommandType) int {
	n := 0
	for i := range r.Commands {
		if r.Commands[i].Type == typ {
			n++
		}
	}
	return n
}

// Filter returns the recorded commands of type typ in order.
func (r *RecordingSurface) Filter(typ CommandType) []DrawCommand {
	var out []DrawCommand
	for _, c := range r.Commands {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}

// Replay sends every recorded command to dst in order.
func (r *RecordingSurface) Replay(dst Surface) {
	for i := range r.Commands {
		c := &r.Commands[i]
		switch c.Type {
		case CommandSetPen:
			dst.SetPen(c.Pen)
		case CommandSetBrush:
			dst.SetBrush(c.Brush)
		case CommandEllipse:
			dst.DrawEllipse(c.Points[0], c.RX, c.RY)
		case CommandLine:
			dst.DrawLine(c.Points[0], c.Points[1])
		case CommandPolygon:
			dst.DrawPolygon(c.Points)
		case CommandRect:
			dst.DrawRect(c.Rect)
		case CommandFillRect:
			dst.FillRect(c.Rect, c.Brush)
		case CommandPie:
			dst.DrawPie(c.Rect, c.Start, c.Sweep)
		}
	}
}
