// Package themes resolves which template module renders a given view.
//
// A template module is a directory of named views (list, view, form). The
// module comes from a per-session override when one was stored, otherwise
// from the configured default.
package themes

import (
	"fmt"
	"slices"
)

// Resolver holds the fixed template-module allow-list and the configured
// default. It is immutable after construction and safe for concurrent use.
type Resolver struct {
	available []string
	def       string
}

// NewResolver builds a Resolver. The default module must belong to the
// allow-list; callers treat an error here as a fatal configuration problem.
func NewResolver(available []string, def string) (*Resolver, error) {
	if len(available) == 0 {
		return nil, fmt.Errorf("template module allow-list is empty")
	}
	if !slices.Contains(available, def) {
		return nil, fmt.Errorf("default template module %q is not in the available set %v", def, available)
	}
	return &Resolver{available: slices.Clone(available), def: def}, nil
}

// Resolve returns the template name for a view: "<module>/<view>". A
// non-empty override is used verbatim - it was validated when written, and is
// not re-checked here. A stored override that stopped being valid (for
// example after the allow-list shrank across a deployment) therefore resolves
// to a missing module and surfaces as the renderer's template-not-found
// error, not as a Resolver error.
func (r *Resolver) Resolve(view, override string) string {
	module := r.def
	if override != "" {
		module = override
	}
	return module + "/" + view
}

// Valid reports whether name belongs to the allow-list.
func (r *Resolver) Valid(name string) bool {
	return slices.Contains(r.available, name)
}

// Modules returns a copy of the allow-list, in configured order.
func (r *Resolver) Modules() []string {
	return slices.Clone(r.available)
}

// Default returns the configured default module.
func (r *Resolver) Default() string {
	return r.def
}
