package capture

import "context"

// Noop implements Renderer but always reports the capability as absent. It
// stands in when headless Chrome could not be launched.
type Noop struct{}

// NewNoop creates a new Noop renderer.
func NewNoop() *Noop {
	return &Noop{}
}

// Capture returns ErrUnavailable since this is a stub implementation.
func (Noop) Capture(context.Context, string, bool) ([]byte, error) {
	return nil, ErrUnavailable
}

// Close implements Renderer; it performs no action.
func (Noop) Close(context.Context) error {
	return nil
}
