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

// Package ref contains the reference interfaces used throughout the
// CEL runtime and type-check stages: the Val and Type tagged-union
// interfaces every concrete value and type implements.
package ref

import "reflect"

// Type interface indicating the runtime type of a value.
type Type interface {
	// HasTrait returns whether the type supports the given trait bitmask.
	HasTrait(trait int) bool

	// TypeName returns the qualified type name of the type.
	TypeName() string
}

// Val interface defining the functions supported by all expression values.
// Val implementations may vary depending on the underlying representation
// of the value, and the interface only defines the minimum set of
// functions required to operate on the value.
type Val interface {
	// ConvertToNative converts the Value to a native Go struct according to
	// the reflected type description, or error if the conversion is not
	// feasible.
	ConvertToNative(typeDesc reflect.Type) (interface{}, error)

	// ConvertToType supports type conversions between CEL value types
	// supported by the expression language.
	ConvertToType(typeValue Type) Val

	// Equal returns true if the `other` value has the same type and content
	// as the implementing struct.
	Equal(other Val) Val

	// Type returns the TypeValue of the value.
	Type() Type

	// Value returns the raw value of the instance which may not be directly
	// compatible with the expression language types.
	Value() interface{}
}
