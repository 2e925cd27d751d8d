// Copyright 2023 Google LLC
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

package ast

import (
	"github.com/taichimaeda/cel/common"
	"github.com/taichimaeda/cel/common/types"
	"github.com/taichimaeda/cel/common/types/ref"
)

// AST contains a protobuf-independent representation of a parsed and
// optionally checked CEL expression, its SourceInfo, and (once
// checked) its per-node type and reference annotations.
type AST struct {
	expr       Expr
	sourceInfo *SourceInfo
	typeMap    map[int64]*types.Type
	refMap     map[int64]*ReferenceInfo
}

// NewAST creates an AST from a parsed expression and source info, with
// no type or reference annotations -- the result of the parse stage,
// before type-checking.
func NewAST(expr Expr, sourceInfo *SourceInfo) *AST {
	if expr == nil {
		expr = nilExpr
	}
	if sourceInfo == nil {
		sourceInfo = NewSourceInfo(nil)
	}
	return &AST{
		expr:       expr,
		sourceInfo: sourceInfo,
		typeMap:    make(map[int64]*types.Type),
		refMap:     make(map[int64]*ReferenceInfo),
	}
}

// NewCheckedAST wraps the parsed AST with the type and reference maps
// produced by the checker.
func NewCheckedAST(parsed *AST, typeMap map[int64]*types.Type, refMap map[int64]*ReferenceInfo) *AST {
	if typeMap == nil {
		typeMap = make(map[int64]*types.Type)
	}
	if refMap == nil {
		refMap = make(map[int64]*ReferenceInfo)
	}
	return &AST{
		expr:       parsed.expr,
		sourceInfo: parsed.sourceInfo,
		typeMap:    typeMap,
		refMap:     refMap,
	}
}

// Expr returns the root expression node of the AST.
func (a *AST) Expr() Expr {
	if a == nil {
		return nilExpr
	}
	return a.expr
}

// SourceInfo returns the source metadata attached to the AST, such as
// character offsets and macro call records.
func (a *AST) SourceInfo() *SourceInfo {
	if a == nil {
		return nil
	}
	return a.sourceInfo
}

// IsChecked returns whether the AST carries any type annotations,
// i.e. whether it has been through the checker stage.
func (a *AST) IsChecked() bool {
	return a != nil && len(a.typeMap) > 0
}

// TypeMap returns the full set of type annotations produced by the
// checker, keyed by expression id.
func (a *AST) TypeMap() map[int64]*types.Type {
	if a == nil {
		return map[int64]*types.Type{}
	}
	return a.typeMap
}

// ReferenceMap returns the full set of identifier and function
// overload resolutions produced by the checker, keyed by expression
// id.
func (a *AST) ReferenceMap() map[int64]*ReferenceInfo {
	if a == nil {
		return map[int64]*ReferenceInfo{}
	}
	return a.refMap
}

// GetType returns the type associated with the given expression id, or
// types.DynType if the expression has not been type-checked.
func (a *AST) GetType(id int64) *types.Type {
	if t, found := a.typeMap[id]; found {
		return t
	}
	return types.DynType
}

// SetType sets the type of the expression with the given id.
func (a *AST) SetType(id int64, t *types.Type) {
	a.typeMap[id] = t
}

// GetRef returns the reference associated with the given expression
// id, if any.
func (a *AST) GetRef(id int64) (*ReferenceInfo, bool) {
	r, found := a.refMap[id]
	return r, found
}

// SetRef sets the reference of the expression with the given id.
func (a *AST) SetRef(id int64, r *ReferenceInfo) {
	a.refMap[id] = r
}

// NativeRep returns the AST as the Expr/SourceInfo pair used by
// planner and pretty-printer internals without needing to call each
// accessor individually.
func (a *AST) NativeRep() (Expr, *SourceInfo) {
	return a.Expr(), a.SourceInfo()
}

// OffsetRange captures the start and stop byte offsets of an
// expression node relative to the start of the source text.
type OffsetRange struct {
	Start int32
	Stop  int32
}

// SourceInfo records the information needed to map expression ids back
// to the original source text: byte offsets per expression, the line
// boundary table used to turn an offset into a line:column location,
// and the macro call records needed to unparse a macro-expanded AST
// back into its original call syntax.
type SourceInfo struct {
	syntax         string
	description    string
	lineOffsets    []int32
	positions      map[int64]int32
	macroCalls     map[int64]Expr
}

// NewSourceInfo creates a new SourceInfo instance primarily used for
// testing and detached AST operations; when parsing, source info is
// populated by the parser from the common.Source it is given.
func NewSourceInfo(src common.Source) *SourceInfo {
	var lineOffsets []int32
	var desc string
	if src != nil {
		desc = src.Description()
		lineOffsets = src.LineOffsets()
	}
	return &SourceInfo{
		description: desc,
		lineOffsets: lineOffsets,
		positions:   make(map[int64]int32),
		macroCalls:  make(map[int64]Expr),
	}
}

// SyntaxVersion returns the syntax version declared for the source,
// e.g. `cel1`, which dictates which macros and language features are
// enabled; empty if unset.
func (s *SourceInfo) SyntaxVersion() string {
	return s.syntax
}

// SetSyntaxVersion records the syntax version string for the source.
func (s *SourceInfo) SetSyntaxVersion(syntax string) {
	s.syntax = syntax
}

// Description returns a brief description of the source, e.g. its
// filename.
func (s *SourceInfo) Description() string {
	return s.description
}

// LineOffsets returns the byte offset of the first character of each
// line of the source, used to translate a byte offset into a line
// number.
func (s *SourceInfo) LineOffsets() []int32 {
	return s.lineOffsets
}

// GetStartLocation finds the start location for the given expression
// id, or the zero-value location if the id is unset.
func (s *SourceInfo) GetStartLocation(exprID int64) common.Location {
	if offset, found := s.GetOffsetRange(exprID); found {
		return s.offsetToLocation(offset.Start)
	}
	return common.NoLocation
}

// GetStopLocation finds the stop location for the given expression id,
// or the zero-value location if the id is unset.
func (s *SourceInfo) GetStopLocation(exprID int64) common.Location {
	if offset, found := s.GetOffsetRange(exprID); found {
		return s.offsetToLocation(offset.Stop)
	}
	return common.NoLocation
}

func (s *SourceInfo) offsetToLocation(offset int32) common.Location {
	line := 1
	col := int(offset)
	for _, lineStart := range s.lineOffsets {
		if offset < lineStart {
			break
		}
		line++
		col = int(offset - lineStart)
	}
	return common.NewLocation(line, col)
}

// GetOffsetRange returns the (start, stop) byte offset pair associated
// with an expression id, if set.
func (s *SourceInfo) GetOffsetRange(exprID int64) (OffsetRange, bool) {
	start, found := s.positions[exprID]
	if !found {
		return OffsetRange{}, false
	}
	stop, found := s.positions[-exprID]
	if !found {
		return OffsetRange{Start: start, Stop: start}, true
	}
	return OffsetRange{Start: start, Stop: stop}, true
}

// SetOffsetRange records the (start, stop) byte offset pair for an
// expression id. The stop offset is keyed under the negated id so a
// single int64-keyed map can carry both without widening the key type.
func (s *SourceInfo) SetOffsetRange(exprID int64, offset OffsetRange) {
	s.positions[exprID] = offset.Start
	s.positions[-exprID] = offset.Stop
}

// GetStartOffset is a convenience accessor equivalent to
// GetOffsetRange(exprID).Start, used by positions that only care about
// the start of an expression.
func (s *SourceInfo) GetStartOffset(exprID int64) (int32, bool) {
	offset, found := s.GetOffsetRange(exprID)
	return offset.Start, found
}

// MacroCalls returns the map of macro-expanded expression ids to the
// original (unexpanded) call expression, used to unparse macro calls
// back to their surface syntax.
func (s *SourceInfo) MacroCalls() map[int64]Expr {
	return s.macroCalls
}

// GetMacroCall returns the original call expression recorded for a
// macro-expanded expression id.
func (s *SourceInfo) GetMacroCall(exprID int64) (Expr, bool) {
	e, found := s.macroCalls[exprID]
	return e, found
}

// SetMacroCall records the original call expression for a
// macro-expanded expression id.
func (s *SourceInfo) SetMacroCall(exprID int64, expr Expr) {
	s.macroCalls[exprID] = expr
}

// ClearMacroCall removes any recorded macro call for the given
// expression id.
func (s *SourceInfo) ClearMacroCall(exprID int64) {
	delete(s.macroCalls, exprID)
}

// ReferenceInfo contains the checker's resolution of an identifier or
// function call expression: either the set of overload ids a call node
// resolved to, or the name (and constant value, if any) an identifier
// node resolved to.
type ReferenceInfo struct {
	// Name is the fully-qualified name of a resolved identifier.
	Name string

	// OverloadIDs is the set of function overloads this call expression
	// could resolve to; more than one entry indicates a dynamic
	// dispatch the interpreter must resolve at eval time.
	OverloadIDs []string

	// Value holds the constant value of a resolved identifier, if the
	// identifier names a compile-time constant (e.g. an enum value).
	Value ref.Val
}

// NewFunctionReference creates a ReferenceInfo for a resolved function
// call with the given overload ids.
func NewFunctionReference(overloads ...string) *ReferenceInfo {
	info := &ReferenceInfo{}
	for _, o := range overloads {
		info.AddOverload(o)
	}
	return info
}

// NewIdentReference creates a ReferenceInfo for a resolved identifier,
// optionally carrying its constant value.
func NewIdentReference(name string, value ref.Val) *ReferenceInfo {
	return &ReferenceInfo{Name: name, Value: value}
}

// AddOverload adds an overload id to the reference if not already
// present.
func (r *ReferenceInfo) AddOverload(overloadID string) {
	for _, id := range r.OverloadIDs {
		if id == overloadID {
			return
		}
	}
	r.OverloadIDs = append(r.OverloadIDs, overloadID)
}

// Equals returns whether two references are equivalent.
func (r *ReferenceInfo) Equals(other *ReferenceInfo) bool {
	if r.Name != other.Name {
		return false
	}
	if len(r.OverloadIDs) != len(other.OverloadIDs) {
		return false
	}
	if len(r.OverloadIDs) != 0 {
		overloadMap := make(map[string]struct{}, len(r.OverloadIDs))
		for _, id := range r.OverloadIDs {
			overloadMap[id] = struct{}{}
		}
		for _, id := range other.OverloadIDs {
			if _, found := overloadMap[id]; !found {
				return false
			}
		}
	}
	if r.Value == nil && other.Value == nil {
		return true
	}
	if r.Value == nil || other.Value == nil {
		return false
	}
	return r.Value.Equal(other.Value) == types.True
}
