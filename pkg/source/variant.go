package source

import (
	"io"
	"os"
	"strings"

	"github.com/hoconlabs/hocon/pkg/config"
)

// variant is the capability each source kind supplies: acquiring the
// character stream, naming itself, and hinting at its syntax. The set of
// implementations is closed (file, string, resource, not-found), and the
// orchestration on Source treats every variant uniformly.
type variant interface {
	// reader opens the character stream. Acquisition failures are
	// NotFoundError so the orchestrator's missing-source fallback can
	// recognize them.
	reader() (io.ReadCloser, error)
	// defaultDescription is the origin description used when the options
	// carry no override.
	defaultDescription() string
	// initialCurrentDir seeds the include context's current directory.
	initialCurrentDir() string
	// guessSyntax reports the syntax implied by the source itself, or
	// SyntaxUnspecified.
	guessSyntax() config.Syntax
	// contentType reports a syntax declared by the stream itself. No
	// current variant does; the hook stays so a stream-typed variant can
	// slot into the existing precedence later.
	contentType() config.Syntax
	// traceDescription names the source in cycle traces and logs.
	traceDescription() string
}

// fileVariant reads from the filesystem.
type fileVariant struct {
	path string
}

func (v fileVariant) reader() (io.ReadCloser, error) {
	f, err := os.Open(v.path)
	if err != nil {
		return nil, &config.NotFoundError{What: "file '" + v.path + "'", Err: err}
	}
	return f, nil
}

func (v fileVariant) defaultDescription() string { return "file: " + v.path }

func (v fileVariant) initialCurrentDir() string {
	dir, _ := splitFilePath(v.path)
	return dir
}

func (v fileVariant) guessSyntax() config.Syntax {
	return config.SyntaxFromExtension(v.path)
}

func (v fileVariant) contentType() config.Syntax { return config.SyntaxUnspecified }

func (v fileVariant) traceDescription() string { return "file '" + v.path + "'" }

// stringVariant wraps in-memory text; acquisition cannot fail.
type stringVariant struct {
	content string
}

func (v stringVariant) reader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(v.content)), nil
}

func (v stringVariant) defaultDescription() string { return "string" }
func (v stringVariant) initialCurrentDir() string  { return "" }
func (v stringVariant) guessSyntax() config.Syntax { return config.SyntaxUnspecified }
func (v stringVariant) contentType() config.Syntax { return config.SyntaxUnspecified }
func (v stringVariant) traceDescription() string   { return "string source" }

// resourceVariant names a resource that an includer above this layer must
// resolve; reading it directly is always an error.
type resourceVariant struct {
	name string
}

func (v resourceVariant) reader() (io.ReadCloser, error) {
	return nil, &config.NotFoundError{
		What:    "resource '" + v.name + "'",
		Message: "reader should not be called on resource '" + v.name + "'",
	}
}

func (v resourceVariant) defaultDescription() string { return v.name }
func (v resourceVariant) initialCurrentDir() string  { return "" }
func (v resourceVariant) guessSyntax() config.Syntax { return config.SyntaxUnspecified }
func (v resourceVariant) contentType() config.Syntax { return config.SyntaxUnspecified }
func (v resourceVariant) traceDescription() string   { return "resource '" + v.name + "'" }

// notFoundVariant is the sentinel for a confirmed-absent include target;
// reading it reports the supplied message through the standard fallback.
type notFoundVariant struct {
	what    string
	message string
}

func (v notFoundVariant) reader() (io.ReadCloser, error) {
	return nil, &config.NotFoundError{What: v.what, Message: v.message}
}

func (v notFoundVariant) defaultDescription() string { return v.what }
func (v notFoundVariant) initialCurrentDir() string  { return "" }
func (v notFoundVariant) guessSyntax() config.Syntax { return config.SyntaxUnspecified }
func (v notFoundVariant) contentType() config.Syntax { return config.SyntaxUnspecified }
func (v notFoundVariant) traceDescription() string   { return "not-found source '" + v.what + "'" }

// splitFilePath splits a path at its last separator into the directory
// (trailing separator kept) and the leaf name. A path without separators is
// all leaf.
func splitFilePath(path string) (dir, leaf string) {
	idx := strings.LastIndexByte(path, '/')
	if idx < 0 {
		return "", path
	}
	return path[:idx+1], path[idx+1:]
}
