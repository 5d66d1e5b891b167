package model

import (
	"fmt"
	"io"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// Move the cursor home and clear the screen.
	ansiClear = "\033[H\033[2J"
)

// Render converts g to text notation: one line per row, cells joined by a single space,
// "x" for alive and "o" for dead.
func Render(g *Grid) []string {
	lines := make([]string, g.height)
	tokens := make([]string, g.width)
	for y := range g.height {
		for x := range g.width {
			tokens[x] = g.cells[y*g.width+x].Symbol()
		}
		lines[y] = strings.Join(tokens, " ")
	}
	return lines
}

// FromText builds a grid from text notation. Each line is a row of whitespace separated
// tokens; "x" is alive and any other token is dead.
func FromText(lines []string) (*Grid, error) {
	states := make([][]CellState, len(lines))
	for y, line := range lines {
		tokens := strings.Fields(line)
		states[y] = make([]CellState, len(tokens))
		for x, token := range tokens {
			states[y][x] = StateFromToken(token)
		}
	}
	return FromStates(states)
}

// Parse is the inverse of Render.
func Parse(lines []string) (*Grid, error) {
	return FromText(lines)
}

// ParseString splits s into lines, ignoring blank ones, and parses them.
func ParseString(s string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return FromText(lines)
}

// DescribeNeighbors renders, for every cell, its coordinate, its neighbor count and the
// directions of its neighbors, e.g. "(0,0)(3:E,S,SE)". Useful when checking edge handling.
func DescribeNeighbors(g *Grid) []string {
	lines := make([]string, g.height)
	entries := make([]string, g.width)
	for y := range g.height {
		for x := range g.width {
			c := At(y, x)
			neighbors := LabeledNeighborsOf(g, c)
			labels := make([]string, len(neighbors))
			for i, n := range neighbors {
				labels[i] = n.Direction.String()
			}
			entries[x] = fmt.Sprintf("%v(%d:%s)", c, len(neighbors), strings.Join(labels, ","))
		}
		lines[y] = strings.Join(entries, " ")
	}
	return lines
}

// TerminalRenderer draws grids as blocks on a terminal.
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	var sb strings.Builder
	for y := range g.height {
		for x := range g.width {
			if g.cells[y*g.width+x] == Alive {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(r.Out, sb.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, ansiClear)
}
