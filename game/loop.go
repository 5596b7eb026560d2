package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-gol-tui/model"
)

// Loop drives a Controller from terminal events and paints after every change.
type Loop struct {
	controller *Controller
	renderer   *model.TerminalRenderer
	grid       *model.Grid
}

func NewLoop(controller *Controller, renderer *model.TerminalRenderer, grid *model.Grid) *Loop {
	return &Loop{controller: controller, renderer: renderer, grid: grid}
}

// Run processes events until the user quits, the event channel closes, or
// ctx is cancelled.
func (l *Loop) Run(ctx context.Context, events <-chan tcell.Event) error {
	timer := time.NewTimer(l.controller.Wait())
	defer timer.Stop()

	for {
		l.renderer.Display(l.grid, l.controller.Status())

		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if l.controller.Apply(ActionForKey(ev)) {
					return nil
				}
			case *tcell.EventResize:
				l.renderer.Sync()
			}
		case <-timer.C:
			l.controller.Tick()
			timer.Reset(l.controller.Wait())
		}
	}
}
