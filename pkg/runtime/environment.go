package runtime

import "sort"

// Environment is the single flat name-to-value mapping for one program run.
// SimpleLang has no lexical scoping: blocks (including if/else bodies) share
// this mapping, so a declaration anywhere stays visible for the rest of the
// run. There is deliberately no parent chain and no delete operation.
type Environment struct {
	values map[string]Value
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Define inserts or overwrites a binding. Overwriting with a value of a
// different kind is legal; kind checking happens at the declaration site
// against the declared type keyword, not here.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks up a binding. The second result reports whether the name has
// been declared.
func (e *Environment) Get(name string) (Value, bool) {
	value, ok := e.values[name]
	return value, ok
}

// Len reports the number of declared variables.
func (e *Environment) Len() int {
	return len(e.values)
}

// Names returns the declared variable names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
