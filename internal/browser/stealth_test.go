package browser

import (
	"context"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMouse counts moves; everything else panics through the nil interface
type fakeMouse struct {
	playwright.Mouse
	moves int
}

func (m *fakeMouse) Move(x, y float64, options ...playwright.MouseMoveOptions) error {
	m.moves++
	return nil
}

type fakePage struct {
	playwright.Page
	mouse *fakeMouse
	size  *playwright.Size
}

func (p *fakePage) ViewportSize() *playwright.Size { return p.size }
func (p *fakePage) Mouse() playwright.Mouse        { return p.mouse }

func newFakePage() *fakePage {
	return &fakePage{
		mouse: &fakeMouse{},
		size:  &playwright.Size{Width: 1920, Height: 1080},
	}
}

func TestMouseJiggle(t *testing.T) {
	page := newFakePage()

	require.NoError(t, MouseJiggle(context.Background(), page))
	assert.Equal(t, 3, page.mouse.moves)
}

func TestMouseJiggle_StopsOnCancel(t *testing.T) {
	page := newFakePage()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := MouseJiggle(ctx, page)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, page.mouse.moves)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestMouseJiggle_NoViewport(t *testing.T) {
	page := newFakePage()
	page.size = nil

	assert.NoError(t, MouseJiggle(context.Background(), page))
	assert.Zero(t, page.mouse.moves)
}
