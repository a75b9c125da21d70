package mkdict

import "context"

// Renderer loads pages in a full DOM environment.
// Implementations drive a single browser session and are not expected to
// serve overlapping calls.
type Renderer interface {
	// Render navigates to url, waits until readySelector matches an element,
	// and returns the serialized live DOM.
	// Any failure is reported as a single error with code ENAVIGATION.
	Render(ctx context.Context, url, readySelector string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Renderer is no longer needed.
	Close() error
}
