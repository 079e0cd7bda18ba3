package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille pixel canvas with one color per character cell.
// Sub-pixel resolution is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	grid          [][]rune
	colors        [][]string
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		grid:   make([][]rune, h),
		colors: make([][]string, h),
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		c.colors[i] = make([]string, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y) in the given color. The last
// writer to a cell wins its color.
func (c *Canvas) Set(x, y int, color string) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.colors[row][col] = color
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
			c.colors[i][j] = ""
		}
	}
}

// DrawLine draws a line in sub-pixel space using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, color string) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle draws a filled disc in sub-pixel space.
func (c *Canvas) FillCircle(cx, cy, r int, color string) {
	if r < 1 {
		r = 1
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy, color)
			}
		}
	}
}

// Lit reports whether the sub-pixel at (x, y) is set. Out-of-range
// coordinates are unlit.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

// String renders the canvas, styling contiguous same-color runs with
// lipgloss.
func (c *Canvas) String() string {
	styles := make(map[string]lipgloss.Style)
	style := func(color string) lipgloss.Style {
		s, ok := styles[color]
		if !ok {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			styles[color] = s
		}
		return s
	}

	var b strings.Builder
	for row := range c.grid {
		col := 0
		for col < c.Width {
			color := c.colors[row][col]
			end := col
			for end < c.Width && c.colors[row][end] == color {
				end++
			}
			run := string(c.grid[row][col:end])
			if color == "" {
				b.WriteString(run)
			} else {
				b.WriteString(style(color).Render(run))
			}
			col = end
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
