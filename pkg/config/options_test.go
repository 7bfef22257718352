package config

import (
	"strings"
	"testing"
)

func TestParseOptions_CopyOnWrite(t *testing.T) {
	base := DefaultParseOptions()
	mod := base.
		WithSyntax(SyntaxJSON).
		WithAllowMissing(false).
		WithOriginDescription("override")

	if base.Syntax() != SyntaxUnspecified {
		t.Errorf("base syntax mutated: %q", base.Syntax())
	}
	if !base.AllowMissing() {
		t.Error("base allow-missing mutated")
	}
	if base.OriginDescription() != "" {
		t.Errorf("base origin description mutated: %q", base.OriginDescription())
	}

	if mod.Syntax() != SyntaxJSON {
		t.Errorf("modified syntax = %q, want %q", mod.Syntax(), SyntaxJSON)
	}
	if mod.AllowMissing() {
		t.Error("modified allow-missing not applied")
	}
	if mod.OriginDescription() != "override" {
		t.Errorf("modified origin description = %q", mod.OriginDescription())
	}
}

func TestParseOptions_DefaultAllowsMissing(t *testing.T) {
	if !DefaultParseOptions().AllowMissing() {
		t.Error("default options should allow missing sources")
	}
}

func TestParseOptions_AppendIncluderDoesNotMutate(t *testing.T) {
	first := IncluderFunc(func(IncludeContext, string) (*Object, error) { return nil, nil })
	second := IncluderFunc(func(IncludeContext, string) (*Object, error) { return nil, nil })

	base := DefaultParseOptions().WithIncluders(first)
	mod := base.AppendIncluder(second)

	if got := len(base.Includers()); got != 1 {
		t.Errorf("base chain length = %d, want 1", got)
	}
	if got := len(mod.Includers()); got != 2 {
		t.Errorf("modified chain length = %d, want 2", got)
	}
}

func TestParseOptions_IncluderChainOrder(t *testing.T) {
	want := objectOf([]string{"k"}, map[string]Value{"k": NewIntNumber(testOrigin(), 1)})
	var thirdConsulted bool

	declines := IncluderFunc(func(IncludeContext, string) (*Object, error) { return nil, nil })
	answers := IncluderFunc(func(_ IncludeContext, name string) (*Object, error) {
		if name != "settings" {
			t.Errorf("includer received name %q", name)
		}
		return want, nil
	})
	never := IncluderFunc(func(IncludeContext, string) (*Object, error) {
		thirdConsulted = true
		return nil, nil
	})

	chain := DefaultParseOptions().WithIncluders(declines, answers, never).Includer()
	got, err := chain.Include(nil, "settings")
	if err != nil {
		t.Fatalf("Include() error = %v", err)
	}
	if got != want {
		t.Errorf("Include() returned wrong object")
	}
	if thirdConsulted {
		t.Error("chain consulted an includer after one answered")
	}
}

func TestParseOptions_IncluderChainExhausted(t *testing.T) {
	declines := IncluderFunc(func(IncludeContext, string) (*Object, error) { return nil, nil })
	chain := DefaultParseOptions().WithIncluders(declines).Includer()
	_, err := chain.Include(nil, "nobody")
	if err == nil {
		t.Fatal("Include() should fail when every includer declines")
	}
	if !strings.Contains(err.Error(), "nobody") {
		t.Errorf("error should name the include target: %v", err)
	}
}

func TestSyntaxFromExtension(t *testing.T) {
	tests := []struct {
		name string
		file string
		want Syntax
	}{
		{"conf extension", "app.conf", SyntaxConf},
		{"json extension", "app.json", SyntaxJSON},
		{"unknown extension", "app.txt", SyntaxUnspecified},
		{"no extension", "app", SyntaxUnspecified},
		{"nested path", "etc/configs/app.conf", SyntaxConf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SyntaxFromExtension(tt.file); got != tt.want {
				t.Errorf("SyntaxFromExtension(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}

func TestOrigin_Description(t *testing.T) {
	origin := NewOrigin("file: app.conf")
	if got := origin.Description(); got != "file: app.conf" {
		t.Errorf("Description() = %q", got)
	}
	at := origin.WithLineNumber(12)
	if got := at.Description(); got != "file: app.conf: 12" {
		t.Errorf("Description() = %q", got)
	}
	if origin.LineNumber() != 0 {
		t.Error("WithLineNumber mutated the receiver")
	}
	if at.LineNumber() != 12 {
		t.Errorf("LineNumber() = %d, want 12", at.LineNumber())
	}
}
