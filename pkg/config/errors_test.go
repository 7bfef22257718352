package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	origin := NewOrigin("file: app.conf")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "parse error with line",
			err:  NewParseError(origin.WithLineNumber(3), "expecting %q", "}"),
			want: `file: app.conf: 3: expecting "}"`,
		},
		{
			name: "io error",
			err:  &IOError{Origin: origin, Err: errors.New("open app.conf: no such file or directory")},
			want: "file: app.conf: open app.conf: no such file or directory",
		},
		{
			name: "load error",
			err:  &LoadError{Origin: origin, Err: errors.New("boom")},
			want: "error loading file: app.conf: boom",
		},
		{
			name: "not found with message",
			err:  &NotFoundError{What: "settings", Message: "resource settings is not resolvable"},
			want: "resource settings is not resolvable",
		},
		{
			name: "not found default text",
			err:  &NotFoundError{What: "file 'app.conf'"},
			want: "file 'app.conf' was not found",
		},
		{
			name: "wrong type at root",
			err:  &WrongTypeError{Origin: origin, Expected: "object at file root", Actual: "list"},
			want: "file: app.conf: expected object at file root, got list",
		},
		{
			name: "wrong type at path",
			err:  &WrongTypeError{Origin: origin, Path: "server.port", Expected: "number", Actual: "string"},
			want: "file: app.conf: server.port has type string rather than number",
		},
		{
			name: "unresolved substitution",
			err:  &UnresolvedError{Origin: origin, Path: "a.b"},
			want: "file: app.conf: substitution ${a.b} was not resolved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCycleError_Message(t *testing.T) {
	err := &CycleError{
		Origin: NewOrigin("file: a.conf"),
		Depth:  50,
		Chain:  []string{"file 'a.conf'", "file 'b.conf'"},
	}
	msg := err.Error()
	if !strings.Contains(msg, "nested more than 50 times") {
		t.Errorf("message should state the bound: %q", msg)
	}
	if !strings.Contains(msg, "\n\tfile 'a.conf'\n\tfile 'b.conf'") {
		t.Errorf("message should list the chain in push order: %q", msg)
	}
	if !strings.HasPrefix(msg, "file: a.conf: ") {
		t.Errorf("message should be origin-qualified: %q", msg)
	}
}

func TestErrorPredicates(t *testing.T) {
	notFound := &NotFoundError{What: "file 'x.conf'"}
	cycle := &CycleError{Origin: testOrigin(), Depth: 50}
	wrongType := &WrongTypeError{Origin: testOrigin(), Expected: "object", Actual: "list"}

	tests := []struct {
		name string
		err  error
		pred func(error) bool
		want bool
	}{
		{"not found direct", notFound, IsNotFound, true},
		{"not found wrapped", fmt.Errorf("context: %w", notFound), IsNotFound, true},
		{"not found behind io error", &IOError{Origin: testOrigin(), Err: notFound}, IsNotFound, true},
		{"not found mismatch", errors.New("other"), IsNotFound, false},
		{"cycle direct", cycle, IsCycle, true},
		{"cycle mismatch", notFound, IsCycle, false},
		{"wrong type direct", wrongType, IsWrongType, true},
		{"wrong type mismatch", cycle, IsWrongType, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrapChains(t *testing.T) {
	cause := fmt.Errorf("open app.conf: %w", fs.ErrNotExist)
	ioErr := &IOError{Origin: testOrigin(), Err: &NotFoundError{What: "file 'app.conf'", Message: cause.Error(), Err: cause}}
	if !errors.Is(ioErr, fs.ErrNotExist) {
		t.Error("IOError should unwrap through NotFoundError to fs.ErrNotExist")
	}

	loadErr := &LoadError{Origin: testOrigin(), Err: cause}
	if !errors.Is(loadErr, fs.ErrNotExist) {
		t.Error("LoadError should unwrap to fs.ErrNotExist")
	}
}
