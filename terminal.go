package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
)

// runTerminal drives the game on the controlling terminal until the user
// quits, ctx is cancelled or the generation limit is reached
func runTerminal(ctx context.Context, d *driver) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runTerminal] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runTerminal] failed to initialise screen")
	}
	defer screen.Fini()

	return runTerminalLoop(ctx, d, screen)
}

// runTerminalLoop renders the first generation, then evolves and renders once
// per frame. Only the ticking goroutine touches the grid.
func runTerminalLoop(ctx context.Context, d *driver, screen tcell.Screen) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := model.NewTerminalRenderer(screen)
	events := make(chan tcell.Event, 16)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		screen.ChannelEvents(events, ctx.Done())
		return nil
	})
	eg.Go(func() error {
		defer cancel()

		if err := renderer.Display(d.grid, d.status()); err != nil {
			return err
		}

		ticker := time.NewTicker(d.config.FrameRate)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok || isQuit(ev) {
					return nil
				}
				if _, resized := ev.(*tcell.EventResize); resized {
					screen.Sync()
				}
			case <-ticker.C:
				more, err := d.tick()
				if err != nil {
					return err
				}
				if !more {
					return nil
				}
				if err = renderer.Display(d.grid, d.status()); err != nil {
					return err
				}
			}
		}
	})
	return eg.Wait()
}

func isQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q'
	}
	return false
}
