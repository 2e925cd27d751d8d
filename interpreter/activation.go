// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// The interpreter package provides functions to evaluate CEL programs against
// a series of inputs and functions supplied at runtime.
package interpreter

import (
	"fmt"

	"github.com/taichimaeda/cel/common/types/ref"
)

// Activation used to resolve identifiers by name and references by id.
//
// An Activation is the primary mechanism by which a caller supplies input
// into a CEL program.
type Activation interface {
	// ResolveName returns a value from the activation by qualified name, or
	// false if the name could not be found.
	ResolveName(name string) (any, bool)

	// Parent returns the parent of the current activation, may be nil.
	// If non-nil, the parent will be searched during resolve calls.
	Parent() Activation
}

// EmptyActivation returns a variable-free activation.
func EmptyActivation() Activation {
	return emptyActivation{}
}

type emptyActivation struct{}

func (emptyActivation) ResolveName(string) (any, bool) { return nil, false }
func (emptyActivation) Parent() Activation             { return nil }

// NewActivation returns an activation based on a map-based binding where the
// map keys are expected to be qualified names used with ResolveName calls.
//
// The input `bindings` may either be of type `Activation` or `map[string]any`. Named
// bindings may lazily supply values by providing a `func() any` or `func() ref.Val` which
// accepts no arguments; the function is invoked once on first resolution and memoized.
func NewActivation(bindings any) (Activation, error) {
	if bindings == nil {
		return nil, fmt.Errorf("bindings must be non-nil")
	}
	if a, isActivation := bindings.(Activation); isActivation {
		return a, nil
	}
	m, isMap := bindings.(map[string]any)
	if !isMap {
		return nil, fmt.Errorf("activation input must be an activation or map[string]any: got %T", bindings)
	}
	return &mapActivation{bindings: m}, nil
}

// mapActivation which implements Activation and maps of named values.
type mapActivation struct {
	bindings map[string]any
}

func (a *mapActivation) Parent() Activation {
	return nil
}

func (a *mapActivation) ResolveName(name string) (any, bool) {
	object, found := a.bindings[name]
	if !found {
		return nil, false
	}
	switch fn := object.(type) {
	case func() ref.Val:
		val := fn()
		a.bindings[name] = val
		return val, true
	case func() any:
		val := fn()
		a.bindings[name] = val
		return val, true
	default:
		return object, true
	}
}

// hierarchicalActivation which implements Activation and contains a parent and child
// activation, checking the child first and falling back to the parent.
type hierarchicalActivation struct {
	parent Activation
	child  Activation
}

func (a *hierarchicalActivation) Parent() Activation {
	return a.parent
}

func (a *hierarchicalActivation) ResolveName(name string) (any, bool) {
	if object, found := a.child.ResolveName(name); found {
		return object, found
	}
	return a.parent.ResolveName(name)
}

// NewHierarchicalActivation takes two activations and produces a new one which prioritizes
// resolution in the child first and parent second.
func NewHierarchicalActivation(parent Activation, child Activation) Activation {
	return &hierarchicalActivation{parent: parent, child: child}
}

// PartialActivation represents an Activation which may have unknown (missing) attribute
// values whose presence is indicated by UnknownAttributePatterns.
type PartialActivation interface {
	Activation

	// UnknownAttributePatterns returns a set of AttributePattern values which match Attribute
	// expressions that have not yet been resolved.
	UnknownAttributePatterns() []*AttributePattern
}

// NewPartialActivation returns an Activation which contains a list of AttributePattern values
// representing field and index operations that should result in an unknown result.
func NewPartialActivation(bindings any, unknowns ...*AttributePattern) (PartialActivation, error) {
	a, err := NewActivation(bindings)
	if err != nil {
		return nil, err
	}
	return &partActivation{Activation: a, unknowns: unknowns}, nil
}

type partActivation struct {
	Activation
	unknowns []*AttributePattern
}

func (a *partActivation) UnknownAttributePatterns() []*AttributePattern {
	return a.unknowns
}

// AsPartialActivation walks the Activation hierarchy, parent by parent, and returns the first
// PartialActivation found, if any.
func AsPartialActivation(vars Activation) (PartialActivation, bool) {
	if part, ok := vars.(PartialActivation); ok {
		return part, true
	}
	if parent := vars.Parent(); parent != nil {
		return AsPartialActivation(parent)
	}
	return nil, false
}
