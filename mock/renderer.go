package mock

import (
	"context"

	"github.com/fwojciec/mkdict"
)

var _ mkdict.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of mkdict.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url, readySelector string) (string, error)
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, url, readySelector string) (string, error) {
	return r.RenderFn(ctx, url, readySelector)
}

func (r *Renderer) Close() error {
	return r.CloseFn()
}
