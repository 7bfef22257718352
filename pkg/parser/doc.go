// Package parser turns syntax trees into value trees.
//
// Parse walks a document.Document and produces config values: fields with
// dotted keys expand into nested objects, duplicate keys merge with the
// later field winning (objects merge recursively), include directives run
// through the options' includer and merge their fields in place, and runs
// of values on one line become strings or pending concatenations.
//
// Resolve is the separate second step that replaces ${path} substitutions
// with the values at their paths. Parsing never resolves implicitly; a
// caller that wants unresolved values, for example to inspect or re-render
// them, simply skips Resolve.
package parser
