package source

import (
	"github.com/hoconlabs/hocon/pkg/config"
	"github.com/hoconlabs/hocon/pkg/parser"
)

// ParseString parses in-memory configuration text into its resolved root
// object: includes followed, duplicate keys merged, every substitution
// replaced by the value at its path.
func ParseString(content string, opts config.ParseOptions) (*config.Object, error) {
	return parseResolved(NewStringSource(content, opts))
}

// ParseFile does the same for the file at path.
func ParseFile(path string, opts config.ParseOptions) (*config.Object, error) {
	return parseResolved(NewFileSource(path, opts))
}

func parseResolved(s *Source) (*config.Object, error) {
	obj, err := s.Parse()
	if err != nil {
		return nil, err
	}
	return parser.Resolve(obj)
}
