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

// Package traits defines interfaces that a type may implement to
// participate in CEL's built-in operator overloads (+, -, *, /, %, <,
// in, [], size(), etc). A value's ref.Type reports which traits it
// supports via a bitmask; the standard-library overloads in
// common/stdlib dispatch to these interfaces rather than switching on
// concrete Go types.
package traits

import "github.com/taichimaeda/cel/common/types/ref"

const (
	// AdderType types provide a '+' operator overload.
	AdderType = 1 << iota

	// ComparerType types support ordering comparisons '<', '<=', '>', '>='.
	ComparerType

	// ContainerType types support 'in' membership tests.
	ContainerType

	// DividerType types support '/' operator overloads.
	DividerType

	// FieldTesterType types support the 'has' macro's presence test.
	FieldTesterType

	// IndexerType types support index access via '[]'.
	IndexerType

	// IterableType types support iteration via an Iterator.
	IterableType

	// IteratorType types support the iteration protocol itself.
	IteratorType

	// MatcherType types support pattern matching via 'matches'.
	MatcherType

	// ModderType types support the '%' modulo operator overload.
	ModderType

	// MultiplierType types support the '*' operator overload.
	MultiplierType

	// NegatorType types support either negation (-num) or complement (!bool).
	NegatorType

	// ReceiverType types support dynamic dispatch to instance methods.
	ReceiverType

	// SizerType types support the size() function.
	SizerType

	// SubtractorType types support '-' operator overloads.
	SubtractorType

	// ZeroerType types can generate a zero-value instance of themselves.
	ZeroerType
)

// Adder interface to support '+' operator overloads.
type Adder interface {
	// Add returns a combination of the current value and other value.
	Add(other ref.Val) ref.Val
}

// Comparer interface to support '<', '<=', '>', '>=' overloads.
type Comparer interface {
	// Compare returns an Int value which is -1, 0, or 1 if this value
	// is less than, equal to, or greater than the other value, or an
	// Err or Unknown if comparison is not possible.
	Compare(other ref.Val) ref.Val
}

// Container interface to support 'in' operator.
type Container interface {
	// Contains returns true if the value exists within the object.
	Contains(value ref.Val) ref.Val
}

// Divider interface to support '/' operator overloads.
type Divider interface {
	// Divide returns the result of dividing this value by the
	// denominator value.
	Divide(denominator ref.Val) ref.Val
}

// FieldTester interface for types which support the 'has' macro's
// presence test semantics distinct from equality against a default
// value.
type FieldTester interface {
	// IsSet returns a bool, error, or unknown indicating whether the
	// field is set.
	IsSet(field ref.Val) ref.Val
}

// Indexer permits indexed access into a value via '[]'.
type Indexer interface {
	// Get returns the value at the given index or an error/unknown.
	Get(index ref.Val) ref.Val
}

// Iterable aggregate types permit traversal of their member values.
type Iterable interface {
	// Iterator returns a new iterator view over the aggregate type.
	Iterator() Iterator
}

// Iterator permits safe traversal over the values of an aggregate type.
type Iterator interface {
	ref.Val

	// HasNext returns true if there are unvisited elements remaining.
	HasNext() ref.Val

	// Next returns the next element.
	Next() ref.Val
}

// Lister interface which aggregates the traits a list must support to
// participate in comprehensions, indexing, concatenation and size().
type Lister interface {
	ref.Val
	Adder
	Container
	Indexer
	Iterable
	Sizer
}

// Mapper interface which aggregates the traits a map must support to
// participate in field presence tests, indexing, comprehensions and
// size().
type Mapper interface {
	ref.Val
	Container
	Indexer
	Iterable
	Sizer

	// Find returns a value, if one exists, for the input key.
	//
	// If the key is not found the function returns (nil, false).
	Find(key ref.Val) (ref.Val, bool)
}

// Matcher interface to support 'matches' regex overloads.
type Matcher interface {
	// Match returns true if the string matches the regex pattern.
	Match(pattern ref.Val) ref.Val
}

// Modder interface to support '%' operator overloads.
type Modder interface {
	// Modulo returns the result of taking the modulus of this value by
	// the denominator value.
	Modulo(denominator ref.Val) ref.Val
}

// Multiplier interface to support '*' operator overloads.
type Multiplier interface {
	// Multiply returns the result of multiplying this and the other value.
	Multiply(other ref.Val) ref.Val
}

// Negater interface to support either negation (-num) or complement (!bool).
type Negater interface {
	// Negate returns the complement of the value.
	Negate() ref.Val
}

// Receiver interface to support dynamic dispatch of function calls
// encoded in function overloads bound to a singleton.
type Receiver interface {
	// Receive accepts a function name, overload id, and arguments and
	// returns a value.
	Receive(function string, overload string, args []ref.Val) ref.Val
}

// Sizer interface to support the size() method.
type Sizer interface {
	// Size returns the number of elements or length of the value.
	Size() ref.Val
}

// Subtractor interface to support '-' operator overloads.
type Subtractor interface {
	// Subtract returns the result of subtracting the other value from
	// this value.
	Subtract(subtrahend ref.Val) ref.Val
}

// Zeroer interface to report whether a value is its type's zero value.
type Zeroer interface {
	// IsZeroValue indicates whether the object is the zero value for its type.
	IsZeroValue() bool
}
