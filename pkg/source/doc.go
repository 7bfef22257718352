// Package source resolves configuration sources and orchestrates parsing,
// including the recursive resolution of include directives.
//
// # Sources
//
// A Source is one origin of configuration text. Four variants exist: a
// file on disk, an in-memory string, a named resource whose bytes an
// application includer must supply, and a not-found sentinel standing in
// for an include target that is known to be absent. Factories normalize
// the parse options once (explicit syntax beats the extension guess beats
// CONF, and the includer chain always terminates in the built-in
// filesystem includer), compute the origin every parsed value and error
// will carry, and seed the include context used to resolve relative
// include targets.
//
// # Parsing
//
// Parse and ParseWith produce the source's root object; ParseValue allows
// any root shape; ParseDocument stops at the edit-preserving document tree
// without touching includes or substitutions. Substitution resolution is a
// separate explicit step (see ParseString and ParseFile for the assembled
// pipeline).
//
// # Includes and cycles
//
// An include directive reaches the options' includer chain, which resolves
// the name to a new source via RelativeTo and parses it with ParseWith.
// ParseWith counts against a recursion guard shared down the include
// chain; at MaxIncludeDepth in-flight parses it fails with a CycleError
// listing the whole chain. Independent factory-built sources carry
// independent guards, so concurrent parses never perturb each other's
// depth.
//
// # Missing sources
//
// A source whose stream cannot be acquired parses as an empty object (or
// empty document) tagged "<origin> (not found)" when the options allow
// missing sources, the default. With allow-missing off the failure
// surfaces as an IOError on the value path and a LoadError on the document
// path. Malformed content is never downgraded: a syntax error in an
// optional include still fails the parse.
package source
