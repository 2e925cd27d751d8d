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

// Package operators defines the canonical function names for binary,
// unary and ternary operators lowered from surface syntax, as well as
// the macro-equivalent function names the parser emits when it cannot
// statically expand a call (e.g. dynamic dispatch on `has`).
package operators

// Operator names that are known to the parser and checker.
const (
	// Conditional operator, corresponding to the ternary '?:' expression.
	Conditional = "_?_:_"

	LogicalAnd = "_&&_"
	LogicalOr  = "_||_"
	LogicalNot = "!_"

	// Equality / inequality.
	Equals    = "_==_"
	NotEquals = "_!=_"

	// Relational operators.
	Less         = "_<_"
	LessEquals   = "_<=_"
	Greater      = "_>_"
	GreaterEquals = "_>=_"

	// Arithmetic operators.
	Add      = "_+_"
	Subtract = "_-_"
	Multiply = "_*_"
	Divide   = "_/_"
	Modulo   = "_%_"
	Negate   = "-_"

	// Index operators.
	Index    = "_[_]"
	OptIndex = "_[?_]"
	OptSelect = "_?._"

	// Collection operators.
	In = "@in"

	// Historical name for 'in' retained for backwards-compatible macro
	// rewrites produced by older CEL expressions.
	OldIn = "_in_"

	// NotStrictlyFalse is the name applied to the generated logic-and/or
	// guard functions; the name was changed between CEL releases, so both
	// the current and historical names are retained here.
	NotStrictlyFalse    = "@not_strictly_false"
	OldNotStrictlyFalse = "__not_strictly_false__"
)

// Macro-function names, populated into calls by macro expansion so the
// resulting AST still records which comprehension macro produced it.
const (
	Has       = "has"
	All       = "all"
	Exists    = "exists"
	ExistsOne = "exists_one"
	Map       = "map"
	Filter    = "filter"
)

// Find returns the function name for the given operator, it returns
// false if one does not exist.
func Find(symbol string) (string, bool) {
	op, found := operators[symbol]
	return op, found
}

// FindReverse returns the unmangled, human-readable symbol for the
// given operator function name, it returns false if one does not
// exist.
func FindReverse(function string) (string, bool) {
	op, found := operatorReverse[function]
	return op, found
}

// FindReverseBinaryOperator returns the unmangled, human-readable
// symbol for a binary operator that matches the given function name,
// it returns false if one does not exist, and exclude those operators not
// really binary operator, eg: select, index.
func FindReverseBinaryOperator(function string) (string, bool) {
	if function == Index || function == OptIndex || function == OptSelect {
		return "", false
	}
	op, found := operatorReverse[function]
	if !found || symbolArity[function] != 2 {
		return "", false
	}
	return op, found
}

// Precedence returns the operator precedence, with higher precedence
// binding tighter, or 0 if the function is not a recognized operator.
func Precedence(function string) int {
	p, found := precedence[function]
	if !found {
		return 0
	}
	return p
}

var operators = map[string]string{
	"+":  Add,
	"/":  Divide,
	"==": Equals,
	">":  Greater,
	">=": GreaterEquals,
	"in": In,
	"<":  Less,
	"<=": LessEquals,
	"%":  Modulo,
	"*":  Multiply,
	"!=": NotEquals,
	"-":  Subtract,
	"!":  LogicalNot,
	"&&": LogicalAnd,
	"||": LogicalOr,
}

var operatorReverse = map[string]string{
	Add:           "+",
	Divide:        "/",
	Equals:        "==",
	Greater:       ">",
	GreaterEquals: ">=",
	In:            "in",
	Less:          "<",
	LessEquals:    "<=",
	LogicalAnd:    "&&",
	LogicalNot:    "!",
	LogicalOr:     "||",
	Modulo:        "%",
	Multiply:      "*",
	Negate:        "-",
	NotEquals:     "!=",
	Subtract:      "-",
}

var symbolArity = map[string]int{
	Conditional:   3,
	LogicalAnd:    2,
	LogicalOr:     2,
	LogicalNot:    1,
	Equals:        2,
	NotEquals:     2,
	Less:          2,
	LessEquals:    2,
	Greater:       2,
	GreaterEquals: 2,
	Add:           2,
	Subtract:      2,
	Multiply:      2,
	Divide:        2,
	Modulo:        2,
	Negate:        1,
	Index:         2,
	In:            2,
}

// precedence of the operator, where higher numbers bind tighter. Grouped
// to mirror the precedence climbing table in the expression grammar:
// unary operators bind tightest, followed by multiplicative, additive,
// relational, equality, logical-and, logical-or, then the conditional
// operator last.
var precedence = map[string]int{
	LogicalOr:     7,
	LogicalAnd:    6,
	Equals:        5,
	Greater:       5,
	GreaterEquals: 5,
	In:            5,
	Less:          5,
	LessEquals:    5,
	NotEquals:     5,
	Add:           4,
	Subtract:      4,
	Divide:        3,
	Modulo:        3,
	Multiply:      3,
	LogicalNot:    2,
	Negate:        2,
	Index:         1,
	OptIndex:      1,
	OptSelect:     1,
}
