// Copyright 2019 Google LLC
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

// Package functions defines the standard function signatures that
// built-in and extension overloads bind to at runtime: zero, one, or
// two-argument forms plus the fully-variadic form used by comprehension
// accumulators and variadic overloads.
package functions

import "github.com/taichimaeda/cel/common/types/ref"

// UnaryOp is a function that takes a single value and produces an
// output value, or error if the operation is unsuccessful.
type UnaryOp func(value ref.Val) ref.Val

// BinaryOp is a function that takes two values and produces an
// output value, or error if the operation is unsuccessful.
type BinaryOp func(lhs ref.Val, rhs ref.Val) ref.Val

// FunctionOp is a function with accepts zero or more arguments and
// produces a value or error as a result.
type FunctionOp func(values ...ref.Val) ref.Val

// Overload defines a named overload of a function, indicating an
// operand trait which must be present on the first argument to the
// overload as well as one of either a unary, binary, or function
// implementation.
//
// The majority of operators within the expression language are unary
// or binary and the common functions can be represented naturally as
// such. However, some functions, such as list append, are more
// generally applicable to a range of argument types and counts, and
// for these a variadic FunctionOp is used instead.
type Overload struct {
	// Operator name as written in an expression or defined within
	// operators.go.
	Operator string

	// Operand trait used to dispatch the overload, or 0 for any.
	OperandTrait int

	// Unary defines the startup operation, optional.
	Unary UnaryOp

	// Binary defines the startup operation, optional.
	Binary BinaryOp

	// Function defines the startup operation, optional.
	Function FunctionOp

	// NonStrict specifies whether the Overload will tolerate arguments
	// that are types.Err or types.Unknown.
	NonStrict bool
}
