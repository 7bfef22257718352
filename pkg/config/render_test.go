package config

import "testing"

func TestRender_Concise(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{
			name: "flat object",
			value: objectOf([]string{"a", "b"}, map[string]Value{
				"a": NewIntNumber(testOrigin(), 1),
				"b": NewString(testOrigin(), "x"),
			}),
			want: `{"a":1,"b":"x"}`,
		},
		{
			name:  "empty object",
			value: objectOf(nil, nil),
			want:  "{}",
		},
		{
			name: "list",
			value: NewList(testOrigin(), []Value{
				NewIntNumber(testOrigin(), 1),
				NewBoolean(testOrigin(), true),
				NewNull(testOrigin()),
			}),
			want: "[1,true,null]",
		},
		{
			name:  "float formatting",
			value: NewFloatNumber(testOrigin(), 1.5),
			want:  "1.5",
		},
		{
			name:  "string escaping",
			value: NewString(testOrigin(), "a\"b\nc"),
			want:  `"a\"b\nc"`,
		},
		{
			name: "nested",
			value: objectOf([]string{"o"}, map[string]Value{
				"o": objectOf([]string{"k"}, map[string]Value{"k": NewString(testOrigin(), "v")}),
			}),
			want: `{"o":{"k":"v"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Render(ConciseRenderOptions()); got != tt.want {
				t.Errorf("Render() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRender_CompactConf(t *testing.T) {
	value := objectOf([]string{"a", "need quotes"}, map[string]Value{
		"a":           NewIntNumber(testOrigin(), 1),
		"need quotes": NewString(testOrigin(), "x"),
	})
	want := `{a=1,"need quotes"="x"}`
	if got := value.Render(RenderOptions{}); got != want {
		t.Errorf("Render() = %s, want %s", got, want)
	}
}

func TestRender_FormattedJSON(t *testing.T) {
	value := objectOf([]string{"a", "b"}, map[string]Value{
		"a": NewIntNumber(testOrigin(), 1),
		"b": objectOf([]string{"c"}, map[string]Value{"c": NewBoolean(testOrigin(), true)}),
	})
	want := "{\n" +
		"  \"a\": 1,\n" +
		"  \"b\": {\n" +
		"    \"c\": true\n" +
		"  }\n" +
		"}"
	got := value.Render(DefaultRenderOptions().WithOriginComments(false))
	if got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_FormattedConf(t *testing.T) {
	value := objectOf([]string{"a"}, map[string]Value{"a": NewIntNumber(testOrigin(), 1)})
	want := "{\n  a = 1\n}"
	opts := RenderOptions{}.WithFormatted(true)
	if got := value.Render(opts); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_OriginComments(t *testing.T) {
	origin := NewOrigin("file: app.conf").WithLineNumber(3)
	value := objectOf([]string{"a"}, map[string]Value{"a": NewString(origin, "x")})
	want := "{\n" +
		"  # file: app.conf: 3\n" +
		"  \"a\": \"x\"\n" +
		"}"
	if got := value.Render(DefaultRenderOptions()); got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_OriginCommentsNeedCommentsEnabled(t *testing.T) {
	origin := NewOrigin("file: app.conf")
	value := objectOf([]string{"a"}, map[string]Value{"a": NewString(origin, "x")})
	opts := DefaultRenderOptions().WithComments(false)
	want := "{\n  \"a\": \"x\"\n}"
	if got := value.Render(opts); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_FormattedList(t *testing.T) {
	value := NewList(testOrigin(), []Value{NewIntNumber(testOrigin(), 1), NewIntNumber(testOrigin(), 2)})
	want := "[\n  1,\n  2\n]"
	got := value.Render(DefaultRenderOptions().WithOriginComments(false))
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_Substitution(t *testing.T) {
	opts := RenderOptions{}
	if got := NewSubstitution(testOrigin(), "a.b", false).Render(opts); got != "${a.b}" {
		t.Errorf("Render() = %q, want %q", got, "${a.b}")
	}
	if got := NewSubstitution(testOrigin(), "a.b", true).Render(opts); got != "${?a.b}" {
		t.Errorf("Render() = %q, want %q", got, "${?a.b}")
	}
}

func TestRender_Concatenation(t *testing.T) {
	value := NewConcatenation(testOrigin(), []Value{
		NewString(testOrigin(), "host-"),
		NewSubstitution(testOrigin(), "id", false),
	})
	want := `"host-" ${id}`
	if got := value.Render(RenderOptions{}); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderOptions_CopyOnWrite(t *testing.T) {
	base := DefaultRenderOptions()
	mod := base.WithJSON(false).WithFormatted(false).WithComments(false).WithOriginComments(false)
	if !base.JSON() || !base.Formatted() || !base.Comments() || !base.OriginComments() {
		t.Errorf("base options mutated: %+v", base)
	}
	if mod.JSON() || mod.Formatted() || mod.Comments() || mod.OriginComments() {
		t.Errorf("modified options incomplete: %+v", mod)
	}
}
