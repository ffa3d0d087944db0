package launch

import (
	"context"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
)

var _ operation.DestinationLookupInterface = (*StaticDestinations)(nil)

// StaticDestinations is a fixed set of destination names, matched exactly
type StaticDestinations struct {
	names map[string]struct{}
}

func NewStaticDestinations(names []string) *StaticDestinations {
	destinations := &StaticDestinations{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		destinations.names[name] = struct{}{}
	}
	return destinations
}

func (destinations *StaticDestinations) DestinationExists(_ context.Context, destination string) (bool, error) {
	_, ok := destinations.names[destination]
	return ok, nil
}

func (destinations *StaticDestinations) Len() int {
	return len(destinations.names)
}
