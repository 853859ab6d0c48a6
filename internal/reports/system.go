package reports

import "context"

// System defines the public contract for report composition.
type System interface {
	Handler() *Handler

	// Compose builds a customer-facing English report from incident codes.
	Compose(ctx context.Context, req IncidentDescription) (*Report, error)
}
