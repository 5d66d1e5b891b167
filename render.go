package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/lifegrid/model"
)

// renderer draws one frame per generation
type renderer interface {
	Draw(grid *model.Grid, status []string)
	// Done is closed when the user asks to quit from the renderer itself. It may be nil.
	Done() <-chan struct{}
	Close()
}

// textRenderer prints frames to a plain terminal
type textRenderer struct {
	out      io.Writer
	terminal *model.TerminalRenderer
}

func newTextRenderer(out io.Writer) *textRenderer {
	return &textRenderer{out: out, terminal: &model.TerminalRenderer{Out: out}}
}

func (r *textRenderer) Draw(grid *model.Grid, status []string) {
	r.terminal.Clear()
	for _, line := range status {
		fmt.Fprintln(r.out, line)
	}
	fmt.Fprintln(r.out)
	r.terminal.Display(grid)
}

func (r *textRenderer) Done() <-chan struct{} { return nil }

func (r *textRenderer) Close() {}

// screenRenderer draws frames with tcell, two columns per cell, and quits on Esc, q or Ctrl+C
type screenRenderer struct {
	screen tcell.Screen
	done   chan struct{}
	once   sync.Once
}

func newScreenRenderer() (*screenRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err = screen.Init(); err != nil {
		return nil, err
	}
	screen.Clear()

	r := &screenRenderer{screen: screen, done: make(chan struct{})}
	go r.pollEvents()
	return r, nil
}

func (r *screenRenderer) pollEvents() {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				r.once.Do(func() { close(r.done) })
				return
			}
		}
	}
}

var (
	styleAlive  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleDead   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func (r *screenRenderer) Draw(grid *model.Grid, status []string) {
	r.screen.Clear()

	for row, line := range status {
		for col, ch := range []rune(line) {
			r.screen.SetContent(col, row, ch, nil, styleStatus)
		}
	}

	top := len(status) + 1
	for _, c := range grid.Coordinates() {
		style := styleDead
		if grid.State(c) == model.Alive {
			style = styleAlive
		}
		r.screen.SetContent(c.Col*2, top+c.Row, ' ', nil, style)
		r.screen.SetContent(c.Col*2+1, top+c.Row, ' ', nil, style)
	}
	r.screen.Show()
}

func (r *screenRenderer) Done() <-chan struct{} { return r.done }

func (r *screenRenderer) Close() {
	r.screen.Fini()
}
