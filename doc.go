// Package rframe provides a façade over the streaming frame codec:
// ring-buffered parsing, static command dispatch, and the matching
// serializer, built for the RoboMaster referee-system wire protocol.
package rframe

import (
	"github.com/basestationlabs/rframe/arena"
	"github.com/basestationlabs/rframe/parser"
	"github.com/basestationlabs/rframe/registry"
	"github.com/basestationlabs/rframe/serializer"
)

// Re-export the core types so callers depend on a single package path.
type (
	Registry   = registry.Registry
	Builder    = registry.Builder
	Payload    = registry.Payload
	Arena      = arena.Arena
	Parser     = parser.Parser
	Serializer = serializer.Serializer
	Metrics    = parser.Metrics
)

// Re-export constructors.
var (
	NewBuilder    = registry.NewBuilder
	NewArena      = arena.New
	NewParser     = parser.New
	NewSerializer = serializer.New
)

// Register re-exports registry.Register for callers that only import
// the façade package.
func Register[T any, PT interface {
	*T
	Payload
}](b *Builder) {
	registry.Register[T, PT](b)
}
