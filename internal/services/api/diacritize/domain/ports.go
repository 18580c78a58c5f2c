package domain

import "context"

// ServicePort defines the service contract for diacritize
type ServicePort interface {
	// Diacritize runs the engine on text, returning engine errors verbatim
	Diacritize(ctx context.Context, text string) (Result, error)
	// Rejected records a request that never reached the engine
	Rejected(ctx context.Context, reason error)
}
