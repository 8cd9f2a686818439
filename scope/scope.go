// Package scope implements Kyaro's frame chain: each frame is a binding
// table plus an optional parent pointer, exactly the Frame the glossary
// describes. Frames are never destroyed while anything still references
// them, which is what lets a returned closure keep seeing its captured
// bindings after the call that created it returns.
package scope

import "github.com/kyarolang/kyaro/value"

// Scope is one frame in the chain.
type Scope struct {
	Variables map[string]value.Value
	Parent    *Scope
}

// New creates a frame whose parent is the given scope (nil for the global
// frame).
func New(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]value.Value),
		Parent:    parent,
	}
}

// Define inserts name into the current frame, overwriting any binding
// already present at this level. It never walks up the chain and never
// errors: spec's `let` always succeeds.
func (s *Scope) Define(name string, val value.Value) {
	s.Variables[name] = val
}

// Get walks the chain from this frame outward, returning the first binding
// found. ok is false if no frame in the chain holds the name.
func (s *Scope) Get(name string) (value.Value, bool) {
	for frame := s; frame != nil; frame = frame.Parent {
		if val, ok := frame.Variables[name]; ok {
			return val, true
		}
	}
	return nil, false
}

// Set walks the chain to find the frame that already holds name and
// updates it there. It never creates a new binding: ok is false if no
// frame in the chain holds the name, which the evaluator turns into a
// RuntimeError.
func (s *Scope) Set(name string, val value.Value) bool {
	for frame := s; frame != nil; frame = frame.Parent {
		if _, ok := frame.Variables[name]; ok {
			frame.Variables[name] = val
			return true
		}
	}
	return false
}

// Exists reports whether name is bound anywhere in the chain, without
// raising.
func (s *Scope) Exists(name string) bool {
	_, ok := s.Get(name)
	return ok
}
