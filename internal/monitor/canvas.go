package monitor

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rileyhilliard/sysdash/internal/layout"
)

type cell struct {
	text string // empty for the trailing half of a wide rune
	role Role
	tier Severity
}

// canvas is a grid of cells the runs of a frame are painted onto.
type canvas struct {
	width  int
	height int
	cells  [][]cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(width, 0), height: max(height, 0)}
	c.cells = make([][]cell, c.height)
	for y := range c.cells {
		row := make([]cell, c.width)
		for x := range row {
			row[x] = cell{text: " "}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) set(x, y int, v cell) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = v
}

// draw paints run's text inside its region. Only cells covered by text are
// touched.
func (c *canvas) draw(run StyledRun) {
	r := run.Region
	for i, line := range strings.Split(run.Text, "\n") {
		if i >= r.Height {
			break
		}
		line = runewidth.Truncate(line, r.Width, "")
		x := r.X
		if run.Align == AlignRight {
			x += r.Width - textWidth(line)
		}
		y := r.Y + i

		for _, ch := range line {
			w := runewidth.RuneWidth(ch)
			if w == 0 {
				continue
			}
			c.set(x, y, cell{text: string(ch), role: run.Role, tier: run.Tier})
			for k := 1; k < w; k++ {
				c.set(x+k, y, cell{role: run.Role, tier: run.Tier})
			}
			x += w
		}
	}
}

// render joins the grid into lines, styling each stretch of cells that share
// a role and tier.
func (c *canvas) render(p Palette) string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		for x := 0; x < len(row); {
			start := x
			var seg strings.Builder
			for x < len(row) && row[x].role == row[start].role && row[x].tier == row[start].tier {
				seg.WriteString(row[x].text)
				x++
			}
			if row[start].role == RoleText && row[start].tier == SeverityNone {
				b.WriteString(seg.String())
				continue
			}
			b.WriteString(p.Style(row[start].role, row[start].tier).Render(seg.String()))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Render paints the frame onto a grid the size of its viewport and returns
// the styled screen contents, one line per row.
func (f Frame) Render(p Palette) string {
	vp := f.Viewport
	c := newCanvas(vp.Width, vp.Height)
	for _, run := range f.Runs {
		shifted := run
		shifted.Region = layout.Rect{
			X:      run.Region.X - vp.X,
			Y:      run.Region.Y - vp.Y,
			Width:  run.Region.Width,
			Height: run.Region.Height,
		}
		c.draw(shifted)
	}
	return c.render(p)
}
