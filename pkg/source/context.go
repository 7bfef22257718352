package source

import "github.com/hoconlabs/hocon/pkg/config"

// includeContext is the per-source state handed to includers: a
// back-reference to the owning source for relative resolution, and the
// current directory that relative include targets join. One exists per
// Source. The directory mutates only at construction and through
// Source.SetCurrentDir.
type includeContext struct {
	owner  *Source
	curDir string
}

var _ config.IncludeContext = (*includeContext)(nil)

// RelativeTo resolves an include target against the owning source.
func (c *includeContext) RelativeTo(name string) config.Parseable {
	return c.owner.RelativeTo(name)
}

// ParseOptions returns the owning source's effective options, so includers
// can construct follow-on sources that behave like their parent.
func (c *includeContext) ParseOptions() config.ParseOptions {
	return c.owner.options
}
