// Package layout turns a fully resolved invoice view into an ordered
// sequence of absolute-positioned drawing instructions and executes
// them against a document sink. The only production sink wraps gofpdf;
// tests consume the instruction stream directly.
package layout

// Align selects horizontal alignment for a text cell.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Instruction is one drawing directive. The concrete types below are
// the full instruction vocabulary.
type Instruction interface {
	apply(Sink)
}

// SetFont selects the font family, style ("", "B", "I") and size in
// points for subsequent text.
type SetFont struct {
	Family string
	Style  string
	Size   float64
}

// SetTextColor selects the fill color for subsequent text.
type SetTextColor struct {
	R, G, B int
}

// Text draws a string. Coordinates are millimeters from the page's
// top-left corner. When W is positive the string is aligned inside a
// cell of that width; otherwise it is drawn left-aligned at X.
type Text struct {
	X, Y  float64
	W     float64
	Align Align
	Text  string
}

// Line draws a straight line between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
}

func (i SetFont) apply(s Sink)      { s.SetFont(i.Family, i.Style, i.Size) }
func (i SetTextColor) apply(s Sink) { s.SetTextColor(i.R, i.G, i.B) }
func (i Text) apply(s Sink)         { s.Text(i.X, i.Y, i.W, i.Align, i.Text) }
func (i Line) apply(s Sink)         { s.Line(i.X1, i.Y1, i.X2, i.Y2) }

// Sink consumes drawing instructions. The core treats it purely as a
// write-only target and never reads back from it except for the final
// encoded bytes (see PDFDocument.Bytes).
type Sink interface {
	SetFont(family, style string, size float64)
	SetTextColor(r, g, b int)
	Text(x, y, w float64, align Align, text string)
	Line(x1, y1, x2, y2 float64)
}

// Replay executes the instruction stream against a sink in order.
func Replay(instructions []Instruction, sink Sink) {
	for _, in := range instructions {
		in.apply(sink)
	}
}
