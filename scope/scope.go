// Package scope classifies identifiers as commands or operators and attaches
// source positions to tokens.
//
// The scope descriptor is supplied by the embedder. Braces open and close
// nested frames; lookups walk the frames from innermost to outermost.
package scope

import (
	"fmt"
	"sort"
)

// ElementKind distinguishes the entries of a scope descriptor.
type ElementKind int

const (
	// CommandElement marks a name as a command.
	CommandElement ElementKind = iota + 1
	// OperatorElement marks a name as an operator.
	OperatorElement
)

func (k ElementKind) String() string {
	switch k {
	case CommandElement:
		return "command"
	case OperatorElement:
		return "operator"
	default:
		return fmt.Sprintf("ElementKind(%d)", int(k))
	}
}

// Element describes the role of a name within a scope.
type Element struct {
	Kind ElementKind
	// IgnoresLineBefore lets an operator continue the statement from the
	// previous line.
	IgnoresLineBefore bool
	// IgnoresLineAfter lets an operator continue the statement on the next
	// line.
	IgnoresLineAfter bool
}

// Command returns a command element.
func Command() Element {
	return Element{Kind: CommandElement}
}

// Operator returns an operator element.
func Operator(ignoresLineBefore, ignoresLineAfter bool) Element {
	return Element{
		Kind:              OperatorElement,
		IgnoresLineBefore: ignoresLineBefore,
		IgnoresLineAfter:  ignoresLineAfter,
	}
}

func (e Element) String() string {
	if e.Kind != OperatorElement {
		return e.Kind.String()
	}
	return fmt.Sprintf("operator(before=%t, after=%t)", e.IgnoresLineBefore, e.IgnoresLineAfter)
}

// Scope maps names to their element. A name missing from the map has no
// entry in that frame.
type Scope map[string]Element

// Names returns the names declared in the scope, sorted.
func (s Scope) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new scope holding the entries of s overlaid by other.
func (s Scope) Merge(other Scope) Scope {
	result := make(Scope, len(s)+len(other))
	for name, e := range s {
		result[name] = e
	}
	for name, e := range other {
		result[name] = e
	}
	return result
}

// Stack is an ordered stack of scope frames. The root frame is never popped
// and pushed frames start empty. Nothing can declare names in a frame, so
// the root scope handed to NewStack is only read.
type Stack struct {
	frames []Scope
}

// NewStack returns a stack whose root frame is root.
func NewStack(root Scope) *Stack {
	if root == nil {
		root = Scope{}
	}
	return &Stack{frames: []Scope{root}}
}

// Push adds an empty frame.
func (s *Stack) Push() {
	s.frames = append(s.frames, Scope{})
}

// Pop removes the innermost frame. It returns false if only the root frame
// remains, in which case nothing is removed.
func (s *Stack) Pop() bool {
	if len(s.frames) == 1 {
		return false
	}
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
	return true
}

// Get looks name up from the innermost frame outwards.
func (s *Stack) Get(name string) (Element, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if e, ok := s.frames[i][name]; ok {
			return e, true
		}
	}
	return Element{}, false
}

// Depth returns the number of frames, including the root frame.
func (s *Stack) Depth() int {
	return len(s.frames)
}
