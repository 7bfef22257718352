package source_test

import (
	"fmt"

	"github.com/hoconlabs/hocon/pkg/config"
	"github.com/hoconlabs/hocon/pkg/source"
)

// ExampleParseString parses CONF text and resolves its substitutions.
func ExampleParseString() {
	text := `
host = localhost
port = 8080
url = ${host}":"${port}
`
	obj, err := source.ParseString(text, config.DefaultParseOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	url, _ := obj.Get("url").Unwrapped()
	port, _ := obj.Get("port").Unwrapped()
	fmt.Println(url)
	fmt.Println(port)
	// Output:
	// localhost:8080
	// 8080
}

// Example_jsonSource forces strict JSON regardless of the source's own
// syntax guess.
func Example_jsonSource() {
	text := `{"service": {"name": "demo", "replicas": 3}}`
	src := source.NewStringSource(text, config.DefaultParseOptions().WithSyntax(config.SyntaxJSON))
	obj, err := src.Parse()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	name, _ := obj.GetPath("service.name").Unwrapped()
	replicas, _ := obj.GetPath("service.replicas").Unwrapped()
	fmt.Println(name, replicas)
	// Output: demo 3
}

// Example_missingSource shows the allow-missing fallback: a file that does
// not exist parses as an empty object tagged with a not-found origin.
func Example_missingSource() {
	src := source.NewFileSource("nonexistent.conf", config.DefaultParseOptions())
	obj, err := src.Parse()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(obj.IsEmpty())
	fmt.Println(obj.Origin().Description())
	// Output:
	// true
	// file: nonexistent.conf (not found)
}

// Example_document parses into the edit-preserving tree, which renders the
// source text back byte for byte.
func Example_document() {
	text := "# ports\nhttp = 8080\n"
	doc, err := source.NewStringSource(text, config.DefaultParseOptions()).ParseDocument()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(doc.Render())
	// Output:
	// # ports
	// http = 8080
}
