package source

import (
	"github.com/hoconlabs/hocon/pkg/config"
	"github.com/hoconlabs/hocon/pkg/trace"
)

// fsIncluder terminates every includer chain: it resolves the include name
// to a file relative to the including source and runs a recursion-guarded
// parse. Option fix-up appends it exactly once, so application includers
// that decline a name still end up here instead of losing the include.
type fsIncluder struct{}

var _ config.Includer = fsIncluder{}

func (fsIncluder) Include(ctx config.IncludeContext, name string) (*config.Object, error) {
	if ctx == nil {
		// Nothing to resolve relative names against; decline.
		return nil, nil
	}
	if name == "" {
		sentinel := NewNotFoundSource("include ''", "include was not found: ''", ctx.ParseOptions())
		return sentinel.ParseWith(sentinel.Options())
	}
	target := ctx.RelativeTo(name)
	log := trace.Logger(trace.TopicIncludes)
	log.Debug().
		Str("name", name).
		Str("resolved", target.Origin().Description()).
		Msg("resolving include")
	return target.ParseWith(target.Options())
}
