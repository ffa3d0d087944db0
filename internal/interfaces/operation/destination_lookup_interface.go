// Package operation
package operation

import "context"

// DestinationLookupInterface reports whether a launch target is a known destination
type DestinationLookupInterface interface {
	DestinationExists(ctx context.Context, destination string) (bool, error)
}
