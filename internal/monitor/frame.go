package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rileyhilliard/sysdash/internal/layout"
)

// Alignment places a run's text inside its region.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Role tells the sink how to style a run beyond its severity.
type Role int

const (
	RoleText Role = iota
	RoleBorder
	RoleTitle
	RoleHeader
)

// StyledRun is a piece of text drawn into a region. Text may hold several
// lines; line i lands on row i of the region and rows past the region are
// dropped. Later runs overwrite the cells of earlier ones.
type StyledRun struct {
	Text   string
	Region layout.Rect
	Tier   Severity
	Align  Alignment
	Role   Role
}

// Span is one differently styled piece of a line.
type Span struct {
	Text string
	Tier Severity
	Role Role
}

// Plain returns an unstyled span.
func Plain(text string) Span {
	return Span{Text: text}
}

// Classified returns a span colored by tier.
func Classified(text string, tier Severity) Span {
	return Span{Text: text, Tier: tier}
}

// Frame is the ordered list of runs for one render pass over a viewport.
type Frame struct {
	Viewport layout.Rect
	Runs     []StyledRun
}

// NewFrame returns an empty frame for the viewport.
func NewFrame(viewport layout.Rect) *Frame {
	return &Frame{Viewport: viewport}
}

// Add appends a run. Runs over an empty region are dropped since they can't
// draw anything.
func (f *Frame) Add(run StyledRun) {
	if run.Region.IsEmpty() {
		return
	}
	f.Runs = append(f.Runs, run)
}

// Text adds a single unstyled run.
func (f *Frame) Text(region layout.Rect, text string, align Alignment) {
	f.Add(StyledRun{Text: text, Region: region, Align: align})
}

// Line lays spans out on the first row of region, one run per span.
// Right-aligned lines that don't fit fall back to left alignment so the
// start of the line stays visible; the tail is clipped at the region edge.
func (f *Frame) Line(region layout.Rect, align Alignment, spans ...Span) {
	row := region.Row(0)
	if row.IsEmpty() {
		return
	}

	total := 0
	for _, s := range spans {
		total += textWidth(s.Text)
	}

	x := row.X
	if align == AlignRight && total < row.Width {
		x = row.Right() - total
	}

	for _, s := range spans {
		w := textWidth(s.Text)
		start := min(x, row.Right())
		width := min(w, row.Right()-start)
		f.Add(StyledRun{
			Text:   s.Text,
			Region: layout.Rect{X: start, Y: row.Y, Width: width, Height: 1},
			Tier:   s.Tier,
			Align:  AlignLeft,
			Role:   s.Role,
		})
		x += w
	}
}

// LabelValue draws a left-aligned label and a right-aligned value, each in
// its own region.
func (f *Frame) LabelValue(labelRegion, valueRegion layout.Rect, label string, value ...Span) {
	f.Line(labelRegion, AlignLeft, Plain(label))
	f.Line(valueRegion, AlignRight, value...)
}

// Block draws a single-line border around region with the title set into the
// top edge, and returns the region inside the border. Regions too small to
// hold a border are left alone and come back as the empty interior.
func (f *Frame) Block(region layout.Rect, title string) layout.Rect {
	inner := region.Inner(layout.Uniform(1))
	if region.Width < 2 || region.Height < 2 {
		return inner
	}

	b := lipgloss.NormalBorder()
	span := region.Width - 2

	f.Add(StyledRun{
		Text:   b.TopLeft + strings.Repeat(b.Top, span) + b.TopRight,
		Region: region.Row(0),
		Role:   RoleBorder,
	})
	f.Add(StyledRun{
		Text:   b.BottomLeft + strings.Repeat(b.Bottom, span) + b.BottomRight,
		Region: region.Row(region.Height - 1),
		Role:   RoleBorder,
	})

	if sides := region.Height - 2; sides > 0 {
		column := strings.TrimSuffix(strings.Repeat(b.Left+"\n", sides), "\n")
		f.Add(StyledRun{
			Text:   column,
			Region: layout.Rect{X: region.X, Y: region.Y + 1, Width: 1, Height: sides},
			Role:   RoleBorder,
		})
		column = strings.TrimSuffix(strings.Repeat(b.Right+"\n", sides), "\n")
		f.Add(StyledRun{
			Text:   column,
			Region: layout.Rect{X: region.Right() - 1, Y: region.Y + 1, Width: 1, Height: sides},
			Role:   RoleBorder,
		})
	}

	if title != "" && span > 0 {
		title = runewidth.Truncate(title, span, "")
		f.Add(StyledRun{
			Text:   title,
			Region: layout.Rect{X: region.X + 1, Y: region.Y, Width: textWidth(title), Height: 1},
			Role:   RoleTitle,
		})
	}

	return inner
}
