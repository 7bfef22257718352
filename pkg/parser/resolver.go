package parser

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hoconlabs/hocon/pkg/config"
	"github.com/hoconlabs/hocon/pkg/trace"
)

// Resolve returns a copy of root with every ${path} substitution replaced
// by the value at its path, looked up from root itself. Optional ${?path}
// references to missing paths drop the field or list element holding them
// and contribute nothing to concatenations; required references to missing
// paths fail with an UnresolvedError, as do reference cycles.
func Resolve(root *config.Object) (*config.Object, error) {
	r := &resolver{
		root:     root,
		inFlight: make(map[string]bool),
		log:      trace.Logger(trace.TopicSubstitutions),
	}
	resolved, _, err := r.resolveValue(root)
	if err != nil {
		return nil, err
	}
	return resolved.(*config.Object), nil
}

type resolver struct {
	root *config.Object
	// inFlight holds the substitution paths currently being resolved, for
	// cycle detection.
	inFlight map[string]bool
	log      zerolog.Logger
}

// resolveValue rewrites v without substitutions. dropped reports that v was
// an optional reference to a missing path and should vanish from its
// container.
func (r *resolver) resolveValue(v config.Value) (result config.Value, dropped bool, err error) {
	switch val := v.(type) {
	case *config.Object:
		return r.resolveObject(val)
	case *config.List:
		return r.resolveList(val)
	case *config.Substitution:
		return r.lookup(val)
	case *config.Concatenation:
		return r.resolveConcatenation(val)
	default:
		return v, false, nil
	}
}

func (r *resolver) resolveObject(obj *config.Object) (config.Value, bool, error) {
	keys := make([]string, 0, obj.Len())
	entries := make(map[string]config.Value, obj.Len())
	for _, k := range obj.Keys() {
		resolved, dropped, err := r.resolveValue(obj.Get(k))
		if err != nil {
			return nil, false, err
		}
		if dropped {
			continue
		}
		keys = append(keys, k)
		entries[k] = resolved
	}
	return config.NewObject(obj.Origin(), keys, entries), false, nil
}

func (r *resolver) resolveList(list *config.List) (config.Value, bool, error) {
	items := make([]config.Value, 0, list.Len())
	for _, item := range list.Items() {
		resolved, dropped, err := r.resolveValue(item)
		if err != nil {
			return nil, false, err
		}
		if dropped {
			continue
		}
		items = append(items, resolved)
	}
	return config.NewList(list.Origin(), items), false, nil
}

func (r *resolver) resolveConcatenation(cat *config.Concatenation) (config.Value, bool, error) {
	var sb strings.Builder
	for _, piece := range cat.Pieces() {
		resolved, dropped, err := r.resolveValue(piece)
		if err != nil {
			return nil, false, err
		}
		if dropped {
			continue
		}
		text, err := stringify(resolved)
		if err != nil {
			return nil, false, err
		}
		sb.WriteString(text)
	}
	return config.NewString(cat.Origin(), sb.String()), false, nil
}

// lookup resolves one substitution against the root. The referenced path is
// held in flight while its value resolves, so reference loops surface as
// errors instead of recursing forever. Path steps that are themselves
// substitutions resolve before the walk continues.
func (r *resolver) lookup(sub *config.Substitution) (config.Value, bool, error) {
	path := sub.Path()
	if r.inFlight[path] {
		return nil, false, &config.UnresolvedError{
			Origin:  sub.Origin(),
			Path:    path,
			Message: "substitution ${" + path + "} is part of a reference cycle",
		}
	}
	r.inFlight[path] = true
	defer delete(r.inFlight, path)

	var cur config.Value = r.root
	for _, seg := range strings.Split(path, ".") {
		stepped, dropped, err := r.step(cur)
		if err != nil {
			return nil, false, err
		}
		if dropped {
			cur = nil
			break
		}
		obj, ok := stepped.(*config.Object)
		if !ok {
			cur = nil
			break
		}
		cur = obj.Get(seg)
		if cur == nil {
			break
		}
	}

	if cur != nil {
		resolved, dropped, err := r.resolveValue(cur)
		if err != nil {
			return nil, false, err
		}
		if !dropped {
			r.log.Debug().Str("path", path).Str("type", string(resolved.ValueType())).Msg("substitution resolved")
			return resolved, false, nil
		}
	}

	if sub.Optional() {
		r.log.Debug().Str("path", path).Msg("optional substitution missing, dropping")
		return nil, true, nil
	}
	return nil, false, &config.UnresolvedError{
		Origin:  sub.Origin(),
		Path:    path,
		Message: "could not resolve substitution ${" + path + "} to a value",
	}
}

// step resolves a path-walk intermediate just enough to descend through it.
func (r *resolver) step(v config.Value) (config.Value, bool, error) {
	switch v.(type) {
	case *config.Substitution, *config.Concatenation:
		return r.resolveValue(v)
	}
	return v, false, nil
}

// stringify converts a resolved concatenation piece to its text form.
func stringify(v config.Value) (string, error) {
	switch val := v.(type) {
	case *config.String:
		return val.Value(), nil
	case *config.Number:
		if val.IsWhole() {
			return strconv.FormatInt(val.Int64(), 10), nil
		}
		return strconv.FormatFloat(val.Float64(), 'g', -1, 64), nil
	case *config.Boolean:
		return strconv.FormatBool(val.Value()), nil
	case *config.Null:
		return "null", nil
	default:
		return "", &config.WrongTypeError{
			Origin:   v.Origin(),
			Expected: "a simple value to concatenate into a string",
			Actual:   string(v.ValueType()),
		}
	}
}
