// Package host reaches the external application: the interpreter that runs
// compiled programs and the plugin registry that seeds the catalog. Both are
// opaque collaborators; this tool never interprets their side effects.
package host

import "context"

// Interpreter executes a compiled program. The call is atomic and blocking
// from the compiler's perspective; its result and side effects are opaque.
type Interpreter interface {
	Run(ctx context.Context, program string) error
}

// PluginSource enumerates the host's node-class names at startup.
type PluginSource interface {
	ListPlugins(ctx context.Context) ([]string, error)
}
