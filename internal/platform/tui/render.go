package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/tetris"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Layout constants, in screen characters.
const (
	cellWidth    = 2 // Each field cell is drawn two characters wide
	sidebarGap   = 2
	sidebarWidth = 16
	statsLines   = 9
)

// layout positions the field and the sidebar on the screen.
type layout struct {
	field   core.Rect // Field box including its border
	next    core.Rect // Next-figure box including its border
	statsX  int
	statsY  int
	width   int
	height  int
	figSize int
}

func newLayout(rules tetris.Rules, figSize int) layout {
	fieldW := rules.Width*cellWidth + 2
	fieldH := rules.Height + 2
	nextW := max(figSize*cellWidth+2, sidebarWidth)
	nextH := figSize + 2

	l := layout{
		field:   core.NewRect(0, 0, fieldW, fieldH),
		next:    core.NewRect(fieldW+sidebarGap, 0, nextW, nextH),
		figSize: figSize,
	}
	l.statsX = l.next.X
	l.statsY = l.next.Bottom() + 1
	l.width = l.next.Right()
	l.height = max(fieldH, l.statsY+statsLines)
	return l
}

// fits reports whether the layout can be drawn on a w x h screen.
func (l layout) fits(w, h int) bool {
	return l.width <= w && l.height <= h
}

// center moves the layout to the middle of a w x h screen.
func (l *layout) center(w, h int) {
	dx := core.Clamp((w-l.width)/2, 0, w)
	dy := core.Clamp((h-l.height)/2, 0, h)
	l.field.X += dx
	l.field.Y += dy
	l.next.X += dx
	l.next.Y += dy
	l.statsX += dx
	l.statsY += dy
}

// renderGame draws a snapshot: the field with its active piece, the next
// figure and the score panel.
func renderGame(dst *core.Screen, l layout, snap tetris.Snapshot) {
	dst.DrawBox(l.field, core.ColorGray)
	for y, row := range snap.Field {
		for x, id := range row {
			drawCell(dst, l.field.X+1+x*cellWidth, l.field.Y+1+y, id)
		}
	}

	dst.DrawBox(l.next, core.ColorGray)
	dst.DrawTextColored(l.next.X+2, l.next.Y, " NEXT ", core.ColorWhite)
	padX := (l.next.W - 2 - l.figSize*cellWidth) / 2
	for y, row := range snap.Next {
		for x, id := range row {
			if id != 0 {
				drawCell(dst, l.next.X+1+padX+x*cellWidth, l.next.Y+1+y, id)
			}
		}
	}

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", snap.Score},
		{"HIGH", snap.HighScore},
		{"LEVEL", snap.Level},
		{"SPEED", snap.Speed},
	}
	for i, s := range stats {
		y := l.statsY + i*2
		dst.DrawTextColored(l.statsX, y, s.label, core.ColorGray)
		dst.DrawTextColored(l.statsX, y+1, fmt.Sprintf("%d", s.value), core.ColorBrightWhite)
	}
	if snap.Score > 0 && snap.Score >= snap.HighScore {
		dst.DrawTextColored(l.statsX+8, l.statsY+3, "NEW!", core.ColorBrightYellow)
	}
}

// drawCell draws one field cell; empty cells get a faint dot.
func drawCell(dst *core.Screen, x, y, id int) {
	if id == 0 {
		dst.SetColored(x, y, ' ', core.ColorDefault)
		dst.SetColored(x+1, y, '·', core.ColorGray)
		return
	}
	c := core.FigureColor(id)
	dst.SetColored(x, y, '█', c)
	dst.SetColored(x+1, y, '█', c)
}

// renderOverlay draws a two-line message box centered on area.
func renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 4
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColored(box.X+(boxW-len(line1))/2, box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextColored(box.X+(boxW-len(line2))/2, box.Y+2, line2, core.ColorWhite)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
