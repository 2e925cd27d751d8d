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
	"sync"

	"github.com/antlr/antlr4/runtime/Go/antlr"
	"github.com/taichimaeda/cel/common"
	"github.com/taichimaeda/cel/common/ast"
	"github.com/taichimaeda/cel/common/types"
)

type parserHelper struct {
	source    common.Source
	nextID    int64
	positions map[int64]int32
	fac       ast.ExprFactory
	errors    *ParseErrors
}

func newParserHelper(source common.Source) *parserHelper {
	return &parserHelper{
		source:    source,
		nextID:    1,
		positions: make(map[int64]int32),
		fac:       ast.NewExprFactory(),
		errors:    &ParseErrors{common.NewErrors(source)},
	}
}

// SyntaxError implements antlr.ErrorListener, recording lexer/parser syntax errors as
// ParseErrors so that Parse can surface them alongside macro-expansion errors.
func (p *parserHelper) SyntaxError(recognizer antlr.Recognizer, offendingSymbol interface{}, line, column int, msg string, e antlr.RecognitionException) {
	l := common.NewLocation(line, column)
	p.errors.syntaxError(l, msg)
}

func (p *parserHelper) ReportAmbiguity(recognizer antlr.Parser, dfa *antlr.DFA, startIndex, stopIndex int, exact bool, ambigAlts *antlr.BitSet, configs antlr.ATNConfigSet) {
}

func (p *parserHelper) ReportAttemptingFullContext(recognizer antlr.Parser, dfa *antlr.DFA, startIndex, stopIndex int, conflictingAlts *antlr.BitSet, configs antlr.ATNConfigSet) {
}

func (p *parserHelper) ReportContextSensitivity(recognizer antlr.Parser, dfa *antlr.DFA, startIndex, stopIndex int, prediction int, configs antlr.ATNConfigSet) {
}

// reportError records a parse-time error at the location implied by ctx and returns an
// unspecified Expr so that Visit methods can return a placeholder node inline.
func (p *parserHelper) reportError(ctx interface{}, format string, args ...interface{}) ast.Expr {
	var l common.Location
	switch c := ctx.(type) {
	case common.Location:
		l = c
	default:
		id := p.id(ctx)
		l = p.getLocation(id)
	}
	p.errors.ReportError(l, format, args...)
	return p.fac.NewUnspecifiedExpr(p.nextID)
}

func (p *parserHelper) getSourceInfo() *ast.SourceInfo {
	info := ast.NewSourceInfo(p.source)
	for id, offset := range p.positions {
		info.SetOffsetRange(id, ast.OffsetRange{Start: offset, Stop: offset})
	}
	return info
}

func (p *parserHelper) newLiteralBool(ctx interface{}, value bool) ast.Expr {
	return p.fac.NewLiteral(p.id(ctx), types.Bool(value))
}

func (p *parserHelper) newLiteralString(ctx interface{}, value string) ast.Expr {
	return p.fac.NewLiteral(p.id(ctx), types.String(value))
}

func (p *parserHelper) newLiteralBytes(ctx interface{}, value []byte) ast.Expr {
	return p.fac.NewLiteral(p.id(ctx), types.Bytes(value))
}

func (p *parserHelper) newLiteralInt(ctx interface{}, value int64) ast.Expr {
	return p.fac.NewLiteral(p.id(ctx), types.Int(value))
}

func (p *parserHelper) newLiteralUint(ctx interface{}, value uint64) ast.Expr {
	return p.fac.NewLiteral(p.id(ctx), types.Uint(value))
}

func (p *parserHelper) newLiteralDouble(ctx interface{}, value float64) ast.Expr {
	return p.fac.NewLiteral(p.id(ctx), types.Double(value))
}

func (p *parserHelper) newIdent(ctx interface{}, name string) ast.Expr {
	return p.fac.NewIdent(p.id(ctx), name)
}

func (p *parserHelper) newSelect(ctx interface{}, operand ast.Expr, field string) ast.Expr {
	return p.fac.NewSelect(p.id(ctx), operand, field)
}

func (p *parserHelper) newPresenceTest(ctx interface{}, operand ast.Expr, field string) ast.Expr {
	return p.fac.NewPresenceTest(p.id(ctx), operand, field)
}

func (p *parserHelper) newGlobalCall(ctx interface{}, function string, args ...ast.Expr) ast.Expr {
	return p.fac.NewCall(p.id(ctx), function, args...)
}

func (p *parserHelper) newReceiverCall(ctx interface{}, function string, target ast.Expr, args ...ast.Expr) ast.Expr {
	return p.fac.NewMemberCall(p.id(ctx), function, target, args...)
}

func (p *parserHelper) newList(ctx interface{}, elements ...ast.Expr) ast.Expr {
	return p.fac.NewList(p.id(ctx), elements, nil)
}

func (p *parserHelper) newMap(ctx interface{}, entries ...ast.EntryExpr) ast.Expr {
	return p.fac.NewMap(p.id(ctx), entries)
}

func (p *parserHelper) newMapEntry(ctx interface{}, key ast.Expr, value ast.Expr) ast.EntryExpr {
	return p.fac.NewMapEntry(p.id(ctx), key, value, false)
}

func (p *parserHelper) newObject(ctx interface{}, typeName string, entries ...ast.EntryExpr) ast.Expr {
	return p.fac.NewStruct(p.id(ctx), typeName, entries)
}

func (p *parserHelper) newObjectField(ctx interface{}, field string, value ast.Expr) ast.EntryExpr {
	return p.fac.NewStructField(p.id(ctx), field, value, false)
}

func (p *parserHelper) newComprehension(ctx interface{}, iterVar string,
	iterRange ast.Expr,
	accuVar string,
	accuInit ast.Expr,
	condition ast.Expr,
	step ast.Expr,
	result ast.Expr) ast.Expr {
	return p.fac.NewComprehension(p.id(ctx), iterRange, iterVar, accuVar, accuInit, condition, step, result)
}

func (p *parserHelper) id(ctx interface{}) int64 {
	var token antlr.Token
	switch ctx.(type) {
	case antlr.ParserRuleContext:
		token = (ctx.(antlr.ParserRuleContext)).GetStart()
	case antlr.Token:
		token = ctx.(antlr.Token)
	case int64:
		return ctx.(int64)
	default:
		// This should only happen if the ctx is nil
		return -1
	}
	id := p.nextID
	p.positions[id] = int32(token.GetStart())
	p.nextID++
	return id
}

func (p *parserHelper) getLocation(id int64) common.Location {
	offset := p.positions[id]
	location, found := p.source.OffsetLocation(offset)
	if !found {
		return common.NoLocation
	}
	return location
}

// balancer performs tree balancing on operators whose arguments are of equal precedence.
//
// The purpose of the balancer is to ensure a compact serialization format for the logical &&, ||
// operators which have a tendency to create long DAGs which are skewed in one direction. Since the
// operators are commutative re-ordering the terms *must not* affect the evaluation result.
//
// Re-balancing the terms is a safe, if somewhat controversial choice. A better solution would be
// to make these functions variadic and update both the checker and interpreter to understand this;
// however, this is a more complex change.
type balancer struct {
	helper   *parserHelper
	function string
	terms    []ast.Expr
	ops      []int64
}

// newBalancer creates a balancer instance bound to a specific function and its first term.
func newBalancer(h *parserHelper, function string, term ast.Expr) *balancer {
	return &balancer{
		helper:   h,
		function: function,
		terms:    []ast.Expr{term},
		ops:      []int64{},
	}
}

// addTerm adds an operation identifier and term to the set of terms to be balanced.
func (b *balancer) addTerm(op int64, term ast.Expr) {
	b.terms = append(b.terms, term)
	b.ops = append(b.ops, op)
}

// balance creates a balanced tree from the sub-terms and returns the final Expr value.
func (b *balancer) balance() ast.Expr {
	if len(b.terms) == 1 {
		return b.terms[0]
	}
	return b.balancedTree(0, len(b.ops)-1)
}

// balancedTree recursively balances the terms provided to a commutative operator.
func (b *balancer) balancedTree(lo, hi int) ast.Expr {
	mid := (lo + hi + 1) / 2

	var left ast.Expr
	if mid == lo {
		left = b.terms[mid]
	} else {
		left = b.balancedTree(lo, mid-1)
	}

	var right ast.Expr
	if mid == hi {
		right = b.terms[mid+1]
	} else {
		right = b.balancedTree(mid+1, hi)
	}
	return b.helper.newGlobalCall(b.ops[mid], b.function, left, right)
}

type exprHelper struct {
	*parserHelper
	ctx interface{}
}

// LiteralBool implements the ExprHelper interface method.
func (e *exprHelper) LiteralBool(value bool) ast.Expr {
	return e.parserHelper.newLiteralBool(e.ctx, value)
}

// LiteralBytes implements the ExprHelper interface method.
func (e *exprHelper) LiteralBytes(value []byte) ast.Expr {
	return e.parserHelper.newLiteralBytes(e.ctx, value)
}

// LiteralDouble implements the ExprHelper interface method.
func (e *exprHelper) LiteralDouble(value float64) ast.Expr {
	return e.parserHelper.newLiteralDouble(e.ctx, value)
}

// LiteralInt implements the ExprHelper interface method.
func (e *exprHelper) LiteralInt(value int64) ast.Expr {
	return e.parserHelper.newLiteralInt(e.ctx, value)
}

// LiteralString implements the ExprHelper interface method.
func (e *exprHelper) LiteralString(value string) ast.Expr {
	return e.parserHelper.newLiteralString(e.ctx, value)
}

// LiteralUint implements the ExprHelper interface method.
func (e *exprHelper) LiteralUint(value uint64) ast.Expr {
	return e.parserHelper.newLiteralUint(e.ctx, value)
}

// NewList implements the ExprHelper interface method.
func (e *exprHelper) NewList(elems ...ast.Expr) ast.Expr {
	return e.parserHelper.newList(e.ctx, elems...)
}

// NewMap implements the ExprHelper interface method.
func (e *exprHelper) NewMap(entries ...ast.EntryExpr) ast.Expr {
	return e.parserHelper.newMap(e.ctx, entries...)
}

// NewMapEntry implements the ExprHelper interface method.
func (e *exprHelper) NewMapEntry(key ast.Expr, val ast.Expr) ast.EntryExpr {
	return e.parserHelper.newMapEntry(e.ctx, key, val)
}

// NewObject implements the ExprHelper interface method.
func (e *exprHelper) NewObject(typeName string, fieldInits ...ast.EntryExpr) ast.Expr {
	return e.parserHelper.newObject(e.ctx, typeName, fieldInits...)
}

// NewObjectFieldInit implements the ExprHelper interface method.
func (e *exprHelper) NewObjectFieldInit(field string, init ast.Expr) ast.EntryExpr {
	return e.parserHelper.newObjectField(e.ctx, field, init)
}

// Fold implements the ExprHelper interface method.
func (e *exprHelper) Fold(iterVar string,
	iterRange ast.Expr,
	accuVar string,
	accuInit ast.Expr,
	condition ast.Expr,
	step ast.Expr,
	result ast.Expr) ast.Expr {
	return e.parserHelper.newComprehension(
		e.ctx, iterVar, iterRange, accuVar, accuInit, condition, step, result)
}

// Ident implements the ExprHelper interface method.
func (e *exprHelper) Ident(name string) ast.Expr {
	return e.parserHelper.newIdent(e.ctx, name)
}

// GlobalCall implements the ExprHelper interface method.
func (e *exprHelper) GlobalCall(function string, args ...ast.Expr) ast.Expr {
	return e.parserHelper.newGlobalCall(e.ctx, function, args...)
}

// ReceiverCall implements the ExprHelper interface method.
func (e *exprHelper) ReceiverCall(function string, target ast.Expr, args ...ast.Expr) ast.Expr {
	return e.parserHelper.newReceiverCall(e.ctx, function, target, args...)
}

// PresenceTest implements the ExprHelper interface method.
func (e *exprHelper) PresenceTest(operand ast.Expr, field string) ast.Expr {
	return e.parserHelper.newPresenceTest(e.ctx, operand, field)
}

// Select implements the ExprHelper interface method.
func (e *exprHelper) Select(operand ast.Expr, field string) ast.Expr {
	return e.parserHelper.newSelect(e.ctx, operand, field)
}

// OffsetLocation implements the ExprHelper interface method.
func (e *exprHelper) OffsetLocation(exprID int64) common.Location {
	offset := e.parserHelper.positions[exprID]
	location, _ := e.parserHelper.source.OffsetLocation(offset)
	return location
}

var (
	// Thread-safe pool of ExprHelper values to minimize alloc overhead of ExprHelper creations.
	exprHelperPool = &sync.Pool{
		New: func() interface{} {
			return &exprHelper{}
		},
	}
)
