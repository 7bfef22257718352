package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/hoconlabs/hocon/pkg/config"
)

func resolveText(t *testing.T, text string) *config.Object {
	t.Helper()
	resolved, err := Resolve(parseObject(t, text))
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", text, err)
	}
	return resolved
}

func resolveErr(t *testing.T, text string) error {
	t.Helper()
	_, err := Resolve(parseObject(t, text))
	if err == nil {
		t.Fatalf("Resolve(%q) succeeded, want error", text)
	}
	return err
}

func TestResolveSimple(t *testing.T) {
	obj := resolveText(t, "a = 1\nb = ${a}\n")
	if n, ok := obj.Get("b").(*config.Number); !ok || n.Int64() != 1 {
		t.Errorf("b = %#v, want the number behind a", obj.Get("b"))
	}
}

func TestResolveKeepsType(t *testing.T) {
	obj := resolveText(t, "flag = true\ncopy = ${flag}\n")
	if b, ok := obj.Get("copy").(*config.Boolean); !ok || !b.Value() {
		t.Errorf("copy = %#v, want boolean true", obj.Get("copy"))
	}
}

func TestResolveNestedPath(t *testing.T) {
	obj := resolveText(t, "a { b { c = hi } }\nx = ${a.b.c}\n")
	if s, ok := obj.Get("x").(*config.String); !ok || s.Value() != "hi" {
		t.Errorf("x = %#v, want hi", obj.Get("x"))
	}
}

func TestResolveIntoConcatenation(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
		want string
	}{
		{"string piece", "a = world\ngreet = hello ${a}", "greet", "hello world"},
		{"number piece", "n = 10\ns = port ${n}", "s", "port 10"},
		{"bool piece", "b = false\ns = flag ${b}", "s", "flag false"},
		{"no spacing", "a = b\ns = x${a}y", "s", "xby"},
		{"optional missing contributes nothing", "s = x${?nope}y", "s", "xy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := resolveText(t, tt.text)
			s, ok := obj.Get(tt.key).(*config.String)
			if !ok {
				t.Fatalf("%s = %#v, want *config.String", tt.key, obj.Get(tt.key))
			}
			if s.Value() != tt.want {
				t.Errorf("%s = %q, want %q", tt.key, s.Value(), tt.want)
			}
		})
	}
}

func TestResolveOptionalMissingDropsField(t *testing.T) {
	obj := resolveText(t, "a = ${?nope}\nb = 1\n")
	if obj.Get("a") != nil {
		t.Errorf("a = %#v, want the field dropped", obj.Get("a"))
	}
	if got, want := obj.Keys(), []string{"b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestResolveOptionalMissingDropsElement(t *testing.T) {
	obj := resolveText(t, "l = [1, ${?nope}, 2]\n")
	list := obj.Get("l").(*config.List)
	got, err := list.Unwrapped()
	if err != nil {
		t.Fatalf("Unwrapped failed: %v", err)
	}
	if want := []any{int64(1), int64(2)}; !reflect.DeepEqual(got, want) {
		t.Errorf("l = %v, want %v", got, want)
	}
}

func TestResolveOptionalPresent(t *testing.T) {
	obj := resolveText(t, "a = 1\nb = ${?a}\n")
	if n, ok := obj.Get("b").(*config.Number); !ok || n.Int64() != 1 {
		t.Errorf("b = %#v, want 1", obj.Get("b"))
	}
}

func TestResolveRequiredMissing(t *testing.T) {
	err := resolveErr(t, "a = ${nope}\n")
	var unresolved *config.UnresolvedError
	if !errors.As(err, &unresolved) {
		t.Fatalf("error is %T, want *config.UnresolvedError", err)
	}
	if unresolved.Path != "nope" {
		t.Errorf("Path = %q, want nope", unresolved.Path)
	}
}

func TestResolveRequiredThroughDroppedChain(t *testing.T) {
	err := resolveErr(t, "a = ${?missing}\nb = ${a}\n")
	var unresolved *config.UnresolvedError
	if !errors.As(err, &unresolved) {
		t.Fatalf("error is %T, want *config.UnresolvedError", err)
	}
}

func TestResolveChain(t *testing.T) {
	obj := resolveText(t, "a = ${b}\nb = ${c}\nc = 42\n")
	if n, ok := obj.Get("a").(*config.Number); !ok || n.Int64() != 42 {
		t.Errorf("a = %#v, want 42 through the chain", obj.Get("a"))
	}
}

func TestResolveThroughSubstitutedObject(t *testing.T) {
	obj := resolveText(t, "a = ${b}\nb { x = 1 }\ny = ${a.x}\n")
	if n, ok := obj.Get("y").(*config.Number); !ok || n.Int64() != 1 {
		t.Errorf("y = %#v, want 1 via the substituted object", obj.Get("y"))
	}
}

func TestResolveObjectValue(t *testing.T) {
	obj := resolveText(t, "a { x = 1 }\nb = ${a}\n")
	inner, ok := obj.Get("b").(*config.Object)
	if !ok {
		t.Fatalf("b = %#v, want object", obj.Get("b"))
	}
	if n, ok := inner.Get("x").(*config.Number); !ok || n.Int64() != 1 {
		t.Errorf("b.x = %#v, want 1", inner.Get("x"))
	}
}

func TestResolveCycles(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"two fields", "a = ${b}\nb = ${a}\n"},
		{"self reference", "a = ${a}\n"},
		{"through path", "a = ${a.b}\n"},
		{"object member", "a { b = ${a} }\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := resolveErr(t, tt.text)
			var unresolved *config.UnresolvedError
			if !errors.As(err, &unresolved) {
				t.Fatalf("error is %T, want *config.UnresolvedError: %v", err, err)
			}
			if !strings.Contains(err.Error(), "cycle") {
				t.Errorf("error %q should mention the cycle", err.Error())
			}
		})
	}
}

func TestResolveObjectInConcatenationFails(t *testing.T) {
	err := resolveErr(t, "a { }\nb = text ${a}\n")
	if !config.IsWrongType(err) {
		t.Errorf("error %v, want a WrongTypeError", err)
	}
}

func TestResolveLeavesPlainValues(t *testing.T) {
	obj := resolveText(t, "a = 1\nb { c = [true, null] }\n")
	got, err := obj.Unwrapped()
	if err != nil {
		t.Fatalf("Unwrapped failed: %v", err)
	}
	want := map[string]any{
		"a": int64(1),
		"b": map[string]any{"c": []any{true, nil}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Unwrapped() = %v, want %v", got, want)
	}
}
