// Package interpreter executes SimpleLang programs by walking the AST
// produced by pkg/parser. Evaluation is single-threaded and strictly in
// program order; every failure is a classified RuntimeError returned through
// the call chain to the caller, never a panic. The environment is one flat
// mapping per run, matching the language's deliberate lack of block scoping.
package interpreter
