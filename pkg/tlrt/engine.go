package tlrt

import "context"

// Engine is the client/protocol engine generated clients call into
type Engine interface {
	// Send submits a request and blocks until its result arrives or ctx is done
	Send(ctx context.Context, request Function) (Object, error)

	// Execute runs a request that needs no network round-trip
	Execute(request Object) (Object, error)
}
