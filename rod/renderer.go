package rod

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/mkdict"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultTimeout bounds a single Render call.
const DefaultTimeout = 30 * time.Second

// Ensure Renderer implements mkdict.Renderer at compile time.
var _ mkdict.Renderer = (*Renderer)(nil)

// Renderer renders pages in the browser owned by a BrowserManager.
// Calls are serialized: only one page is ever loading at a time.
type Renderer struct {
	mu      sync.Mutex
	manager *BrowserManager
	timeout time.Duration
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithTimeout sets the upper bound for loading a page and waiting for its
// readiness selector. Zero disables the bound.
func WithTimeout(d time.Duration) RendererOption {
	return func(r *Renderer) {
		r.timeout = d
	}
}

// NewRenderer creates a Renderer on top of manager. The Renderer takes
// ownership of manager and closes it on Close.
func NewRenderer(manager *BrowserManager, opts ...RendererOption) *Renderer {
	r := &Renderer{
		manager: manager,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render opens url in a fresh tab, waits for readySelector, and returns the
// tab's serialized DOM. A fresh tab per call guarantees a fragment-addressed
// page is never read from a previous route.
func (r *Renderer) Render(ctx context.Context, url, readySelector string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", mkdict.WrapError(mkdict.ENAVIGATION, err, "render %s", url)
	}

	browser, ok := r.manager.Browser()
	if !ok {
		return "", mkdict.Errorf(mkdict.EINVALID, "renderer closed")
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	tab, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", mkdict.WrapError(mkdict.ENAVIGATION, err, "open tab for %s", url)
	}
	defer func() {
		_ = tab.Close()
		r.manager.PageDone()
	}()
	page := tab.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", mkdict.WrapError(mkdict.ENAVIGATION, err, "navigate to %s", url)
	}
	if err := page.WaitLoad(); err != nil {
		return "", mkdict.WrapError(mkdict.ENAVIGATION, err, "load %s", url)
	}
	// Element retries until the selector matches or the context ends.
	if _, err := page.Element(readySelector); err != nil {
		return "", mkdict.WrapError(mkdict.ENAVIGATION, err, "wait for %s on %s", readySelector, url)
	}

	html, err := page.HTML()
	if err != nil {
		return "", mkdict.WrapError(mkdict.ENAVIGATION, err, "read DOM of %s", url)
	}
	return html, nil
}

// Close releases the browser. Close is safe to call multiple times.
func (r *Renderer) Close() error {
	return r.manager.Close()
}
