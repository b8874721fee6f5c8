// Package compiler loads a kurel package from disk and compiles it to a
// single JSON document.
//
// A package bundles a package spec (kcp.json), an optional JSON-Schema and
// example input, a Jsonnet entry template (templates/main.jsonnet), and
// auxiliary file templates and libraries (files/, lib/, vendor/). Compile
// validates the caller-supplied input against the schema (when present),
// builds a Jsonnet evaluation context carrying package metadata, release
// scope, input, and the files/include host callables, and runs the
// template through the evaluator in pkg/compiler/evaluator.go.
//
// The three collaborating pieces are the schema validator (schema.go), the
// template evaluator (evaluator.go), and the package loader/compiler proper
// (loader.go, compiler.go, files.go, archive.go); the include callable is
// implemented in compiler.go.
package compiler
