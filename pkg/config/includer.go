package config

import "fmt"

// Includer resolves an include directive to the object it contributes to
// the including file. Returning (nil, nil) declines the name and lets the
// next includer in the chain try. The built-in filesystem includer is
// appended to every chain during option fix-up, so a name nobody else
// handles still resolves there.
type Includer interface {
	Include(ctx IncludeContext, name string) (*Object, error)
}

// IncluderFunc adapts a function to the Includer interface.
type IncluderFunc func(ctx IncludeContext, name string) (*Object, error)

// Include calls f.
func (f IncluderFunc) Include(ctx IncludeContext, name string) (*Object, error) {
	return f(ctx, name)
}

// IncludeContext gives an includer access to the file being parsed: where
// it lives and which options it was parsed with.
type IncludeContext interface {
	// RelativeTo maps an include target to a source: absolute paths stand
	// alone, relative ones are joined to the including file's directory.
	// The result inherits the in-flight include recursion guard, so
	// parsing it counts against the nesting bound.
	RelativeTo(name string) Parseable

	// ParseOptions returns the including source's effective options.
	ParseOptions() ParseOptions
}

// Parseable is the capability an includer needs from a source: its
// identity and a recursion-guarded parse.
type Parseable interface {
	Options() ParseOptions
	Origin() *Origin
	ParseWith(opts ParseOptions) (*Object, error)
}

// includerChain consults each element in order; the first error or non-nil
// object wins.
type includerChain []Includer

func (c includerChain) Include(ctx IncludeContext, name string) (*Object, error) {
	for _, inc := range c {
		obj, err := inc.Include(ctx, name)
		if err != nil {
			return nil, err
		}
		if obj != nil {
			return obj, nil
		}
	}
	return nil, fmt.Errorf("include %q was not handled by any includer", name)
}
