package translator

import "context"

// System defines the public contract for terminology-preserving translation.
type System interface {
	Handler() *Handler

	// Translate converts an English report to the target language while
	// preserving dictionary terminology exactly.
	Translate(ctx context.Context, text string) (*Result, error)
}
