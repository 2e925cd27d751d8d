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

package parser

import (
	"fmt"

	"github.com/taichimaeda/cel/common"
	"github.com/taichimaeda/cel/common/ast"
	"github.com/taichimaeda/cel/common/operators"
)

// ExprHelper assists with the manipulation of proto-free expression trees within macro
// expander functions.
type ExprHelper interface {
	// LiteralBool creates a boolean literal Expr value.
	LiteralBool(value bool) ast.Expr

	// LiteralBytes creates a bytes literal Expr value.
	LiteralBytes(value []byte) ast.Expr

	// LiteralDouble creates a double literal Expr value.
	LiteralDouble(value float64) ast.Expr

	// LiteralInt creates an int literal Expr value.
	LiteralInt(value int64) ast.Expr

	// LiteralString creates a string literal Expr value.
	LiteralString(value string) ast.Expr

	// LiteralUint creates a uint literal Expr value.
	LiteralUint(value uint64) ast.Expr

	// NewList creates a list literal Expr value with the given elements.
	NewList(elems ...ast.Expr) ast.Expr

	// NewMap creates a map literal Expr value with the given entries.
	NewMap(entries ...ast.EntryExpr) ast.Expr

	// NewMapEntry creates a map literal entry with the given key and value expressions.
	NewMapEntry(key ast.Expr, val ast.Expr) ast.EntryExpr

	// NewObject creates a new typed Expr value with a given type name and set of field initializers.
	NewObject(typeName string, fieldInits ...ast.EntryExpr) ast.Expr

	// NewObjectFieldInit creates a new Expr object field initializer from the field name and value.
	NewObjectFieldInit(field string, init ast.Expr) ast.EntryExpr

	// Fold creates a fold comprehension instruction.
	Fold(iterVar string,
		iterRange ast.Expr,
		accuVar string,
		accuInit ast.Expr,
		condition ast.Expr,
		step ast.Expr,
		result ast.Expr) ast.Expr

	// Ident creates an identifier Expr value.
	Ident(name string) ast.Expr

	// GlobalCall creates a global function call Expr value for the given function and arguments.
	GlobalCall(function string, args ...ast.Expr) ast.Expr

	// ReceiverCall creates a function call Expr value for the given function, target, and arguments.
	ReceiverCall(function string, target ast.Expr, args ...ast.Expr) ast.Expr

	// PresenceTest creates a test-only select expression for a given operand and field.
	PresenceTest(operand ast.Expr, field string) ast.Expr

	// Select create a field traversal Expr value.
	Select(operand ast.Expr, field string) ast.Expr

	// OffsetLocation returns the Location of the expression identifier.
	OffsetLocation(exprID int64) common.Location
}

// MacroExpander converts a call and its arguments to a new Expr value, or an error if the
// call expression is not a valid macro call.
type MacroExpander func(eh ExprHelper, target ast.Expr, args []ast.Expr) (ast.Expr, *common.Error)

// Macro describes a function signature to match and the MacroExpander to apply an
// expansion.
type Macro interface {
	// MacroKey returns the macro key, used as a map key to look up the macro by function name and
	// argument count.
	MacroKey() string

	// Expander returns the MacroExpander to apply when the macro key matches the parsed call
	// signature.
	Expander() MacroExpander

	// IsReceiverStyle returns whether the macro matches a receiver-style function call.
	IsReceiverStyle() bool

	// Function returns the function name used to match the macro call signature.
	Function() string

	// ArgCount returns the number of arguments the macro expects, excluding the target.
	ArgCount() int
}

type macro struct {
	function      string
	instanceStyle bool
	args          int
	expander      MacroExpander
}

func (m *macro) MacroKey() string {
	return makeMacroKey(m.function, m.args, m.instanceStyle)
}

func (m *macro) Expander() MacroExpander {
	return m.expander
}

func (m *macro) IsReceiverStyle() bool {
	return m.instanceStyle
}

func (m *macro) Function() string {
	return m.function
}

func (m *macro) ArgCount() int {
	return m.args
}

func makeMacroKey(name string, args int, instanceStyle bool) string {
	return fmt.Sprintf("%s:%d:%v", name, args, instanceStyle)
}

// NewGlobalMacro creates a Macro for a global function with the specified arg count.
func NewGlobalMacro(function string, argCount int, expander MacroExpander) Macro {
	return &macro{function: function, args: argCount, expander: expander}
}

// NewReceiverMacro creates a Macro for a receiver function with the specified arg count.
func NewReceiverMacro(function string, argCount int, expander MacroExpander) Macro {
	return &macro{function: function, instanceStyle: true, args: argCount, expander: expander}
}

// AllMacros includes the list of macros built into the parser.
var AllMacros = []Macro{
	// The macro "has(m.f)" tests the presence of a field, avoiding the need to specify
	// the field as a string.
	NewGlobalMacro(operators.Has, 1, makeHas),

	// The macro "range.all(var, predicate)" is true if the predicate holds for every element.
	NewReceiverMacro(operators.All, 2, makeAll),

	// The macro "range.exists(var, predicate)" is true if the predicate holds for at least one
	// element in range.
	NewReceiverMacro(operators.Exists, 2, makeExists),

	// The macro "range.exists_one(var, predicate)" is true if the predicate holds for exactly one
	// element in range.
	NewReceiverMacro(operators.ExistsOne, 2, makeExistsOne),

	// The macro "range.map(var, function)" applies the function to the vars in the range.
	NewReceiverMacro(operators.Map, 2, makeMap),

	// The macro "range.map(var, predicate, function)" applies the function to the vars in the
	// range for which the predicate holds true; the other variables are filtered out.
	NewReceiverMacro(operators.Map, 3, makeMap),

	// The macro "range.filter(var, predicate)" filters out the variables for which the predicate
	// is false.
	NewReceiverMacro(operators.Filter, 2, makeFilter),
}

// NoMacros is an empty list of macros.
var NoMacros = []Macro{}

// Field presence.

func makeHas(eh ExprHelper, target ast.Expr, args []ast.Expr) (ast.Expr, *common.Error) {
	if args[0].Kind() != ast.SelectKind {
		return nil, &common.Error{Message: "invalid argument to has(), must be a field selection", Location: eh.OffsetLocation(args[0].ID())}
	}
	s := args[0].AsSelect()
	return eh.PresenceTest(s.Operand(), s.FieldName()), nil
}

// Logical quantifiers.

const accumulatorName = "__result__"

type quantifierKind int

const (
	quantifierAll quantifierKind = iota
	quantifierExists
	quantifierExistsOne
)

func makeAll(eh ExprHelper, target ast.Expr, args []ast.Expr) (ast.Expr, *common.Error) {
	return makeQuantifier(quantifierAll, eh, target, args)
}

func makeExists(eh ExprHelper, target ast.Expr, args []ast.Expr) (ast.Expr, *common.Error) {
	return makeQuantifier(quantifierExists, eh, target, args)
}

func makeExistsOne(eh ExprHelper, target ast.Expr, args []ast.Expr) (ast.Expr, *common.Error) {
	return makeQuantifier(quantifierExistsOne, eh, target, args)
}

func makeQuantifier(kind quantifierKind, eh ExprHelper, target ast.Expr, args []ast.Expr) (ast.Expr, *common.Error) {
	v, found := extractIdent(args[0])
	if !found {
		return nil, &common.Error{Message: "argument must be a simple name", Location: eh.OffsetLocation(args[0].ID())}
	}

	accu := func() ast.Expr { return eh.Ident(accumulatorName) }

	var init, condition, step, result ast.Expr
	switch kind {
	case quantifierAll:
		init = eh.LiteralBool(true)
		condition = accu()
		step = eh.GlobalCall(operators.LogicalAnd, accu(), args[1])
		result = accu()
	case quantifierExists:
		init = eh.LiteralBool(false)
		condition = eh.GlobalCall(operators.LogicalNot, accu())
		step = eh.GlobalCall(operators.LogicalOr, accu(), args[1])
		result = accu()
	case quantifierExistsOne:
		zero := eh.LiteralInt(0)
		one := eh.LiteralInt(1)
		init = zero
		condition = eh.GlobalCall(operators.LessEquals, accu(), one)
		step = eh.GlobalCall(operators.Conditional, args[1],
			eh.GlobalCall(operators.Add, accu(), one), accu())
		result = eh.GlobalCall(operators.Equals, accu(), one)
	default:
		panic("unrecognized quantifier")
	}
	return eh.Fold(v, target, accumulatorName, init, condition, step, result), nil
}

// Map and filter.

func makeMap(eh ExprHelper, target ast.Expr, args []ast.Expr) (ast.Expr, *common.Error) {
	v, found := extractIdent(args[0])
	if !found {
		return nil, &common.Error{Message: "argument is not an identifier", Location: eh.OffsetLocation(args[0].ID())}
	}

	var fn ast.Expr
	var filter ast.Expr
	if len(args) == 3 {
		filter = args[1]
		fn = args[2]
	} else {
		fn = args[1]
	}

	accu := eh.Ident(accumulatorName)
	init := eh.NewList()
	condition := eh.LiteralBool(true)
	step := eh.GlobalCall(operators.Add, accu, eh.NewList(fn))
	if filter != nil {
		step = eh.GlobalCall(operators.Conditional, filter, step, accu)
	}
	return eh.Fold(v, target, accumulatorName, init, condition, step, accu), nil
}

func makeFilter(eh ExprHelper, target ast.Expr, args []ast.Expr) (ast.Expr, *common.Error) {
	v, found := extractIdent(args[0])
	if !found {
		return nil, &common.Error{Message: "argument is not an identifier", Location: eh.OffsetLocation(args[0].ID())}
	}

	filter := args[1]
	accu := eh.Ident(accumulatorName)
	init := eh.NewList()
	condition := eh.LiteralBool(true)
	step := eh.GlobalCall(operators.Add, accu, eh.NewList(args[0]))
	step = eh.GlobalCall(operators.Conditional, filter, step, accu)
	return eh.Fold(v, target, accumulatorName, init, condition, step, accu), nil
}

func extractIdent(e ast.Expr) (string, bool) {
	if e.Kind() != ast.IdentKind {
		return "", false
	}
	return e.AsIdent(), true
}
