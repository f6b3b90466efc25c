package browser

import (
	"context"
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Pause waits for a random duration in [min, max] or until ctx is done.
func Pause(ctx context.Context, min, max time.Duration) error {
	d := min
	if max > min {
		d += time.Duration(rand.Int63n(int64(max - min + 1)))
	}
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// MouseJiggle moves the mouse around so the page does not look idle
func MouseJiggle(ctx context.Context, page playwright.Page) error {
	viewportSize := page.ViewportSize()
	if viewportSize == nil || viewportSize.Width <= 0 || viewportSize.Height <= 0 {
		return nil
	}
	for i := 0; i < 3; i++ {
		x := rand.Intn(viewportSize.Width)
		y := rand.Intn(viewportSize.Height)
		if err := page.Mouse().Move(float64(x), float64(y)); err != nil {
			return err
		}
		if err := Pause(ctx, 100*time.Millisecond, 300*time.Millisecond); err != nil {
			return err
		}
	}
	return nil
}
