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

package interpreter

import (
	"errors"
	"fmt"

	"github.com/taichimaeda/cel/common/containers"
	"github.com/taichimaeda/cel/common/types"
	"github.com/taichimaeda/cel/common/types/ref"
	"github.com/taichimaeda/cel/common/types/traits"
)

// AttributeFactory produces Attribute and Qualifier values used to efficiently resolve
// identifiers and perform field, index, and key selections against activation values at
// evaluation time.
type AttributeFactory interface {
	// AbsoluteAttribute refers to a variable value and an optional qualifier path, where the
	// name could refer to any of the qualified names the variable may have within a given
	// container.
	AbsoluteAttribute(id int64, names ...string) NamespacedAttribute

	// ConditionalAttribute supports the case where an attribute selection may occur on a
	// conditional expression, e.g. (cond ? a : b).c
	ConditionalAttribute(id int64, expr Interpretable, t, f Attribute) Attribute

	// MaybeAttribute creates an attribute that refers to a set of one or more NamespacedAttribute
	// values. These options allow the Attribute to be resolved to a qualified name which may
	// succeed or fail at evaluation time.
	MaybeAttribute(id int64, name string) Attribute

	// RelativeAttribute refers to an expression and an optional qualifier path.
	RelativeAttribute(id int64, operand Interpretable) Attribute

	// NewQualifier creates a qualifier on the target object with a given value.
	//
	// The 'val' may be an Attribute or any immediate value supported by a qualified selection,
	// e.g. bool, int, string, uint.
	NewQualifier(objType *types.Type, qualID int64, val any, opt bool) (Qualifier, error)
}

// Qualifier marker interface for designating different qualifier values and where they appear
// within expressions.
type Qualifier interface {
	// ID where the qualifier appears within an expression.
	ID() int64

	// IsOptional indicates whether the qualifier is an optional key or index selection.
	IsOptional() bool

	// Qualify resolves the qualifier and performs the selection against the input obj.
	Qualify(vars Activation, obj any) (any, error)

	// QualifyIfPresent qualifies the object if the qualifier is present on the object, returning
	// whether the selection was found and an error, if one occurred while qualifying the value.
	QualifyIfPresent(vars Activation, obj any, presenceOnly bool) (any, bool, error)
}

// ConstantQualifier interface embeds the Qualifier interface and provides an option to inspect
// the qualifier's constant value.
type ConstantQualifier interface {
	Qualifier

	// Value returns the constant value associated with the qualifier.
	Value() ref.Val
}

// Attribute values are a variable or value with an optional set of qualifiers, such as field,
// key, or index accesses.
type Attribute interface {
	Qualifier

	// AddQualifier adds a qualifier on the Attribute or error if the qualification is not
	// a supported qualifier type.
	AddQualifier(Qualifier) (Attribute, error)

	// Resolve returns the value of the Attribute given the current Activation.
	Resolve(Activation) (any, error)
}

// NamespacedAttribute values are a variable with a set of optional qualifiers. The namespaced
// portion of the name may be resolved against any of a set of candidate names, determined by
// the container in which the attribute was planned.
type NamespacedAttribute interface {
	Attribute

	// CandidateVariableNames returns the namespaced variable names in the order in which they
	// should be tested for presence.
	CandidateVariableNames() []string

	// Qualifiers returns the list of qualifiers associated with the Attribute.
	Qualifiers() []Qualifier

	// TryResolve attempts to resolve the attribute value or return false if the attribute could
	// not be resolved.
	TryResolve(Activation) (any, bool, error)
}

// NewAttributeFactory returns a default AttributeFactory which is capable of resolving types by
// simple names and can resolve qualifiers on CEL values of the common scalar and composite
// types.
func NewAttributeFactory(container *containers.Container, a types.Adapter, p types.Provider) AttributeFactory {
	return &attrFactory{
		container: container,
		adapter:   a,
		provider:  p,
	}
}

type attrFactory struct {
	container *containers.Container
	adapter   types.Adapter
	provider  types.Provider
}

func (r *attrFactory) AbsoluteAttribute(id int64, names ...string) NamespacedAttribute {
	return &absoluteAttribute{
		id:             id,
		namespaceNames: names,
		qualifiers:     []Qualifier{},
		adapter:        r.adapter,
		provider:       r.provider,
		fac:            r,
	}
}

func (r *attrFactory) ConditionalAttribute(id int64, expr Interpretable, t, f Attribute) Attribute {
	return &conditionalAttribute{
		id:     id,
		expr:   expr,
		truthy: t,
		falsy:  f,
		adapter: r.adapter,
		fac:    r,
	}
}

func (r *attrFactory) MaybeAttribute(id int64, name string) Attribute {
	names := []string{name}
	if r.container != nil {
		names = r.container.ResolveCandidateNames(name)
	}
	return &maybeAttribute{
		id: id,
		attrs: []NamespacedAttribute{
			r.AbsoluteAttribute(id, names...),
		},
		adapter:  r.adapter,
		provider: r.provider,
		fac:      r,
	}
}

func (r *attrFactory) RelativeAttribute(id int64, operand Interpretable) Attribute {
	return &relativeAttribute{
		id:         id,
		operand:    operand,
		qualifiers: []Qualifier{},
		adapter:    r.adapter,
		fac:        r,
	}
}

func (r *attrFactory) NewQualifier(objType *types.Type, qualID int64, val any, opt bool) (Qualifier, error) {
	return newQualifier(r.adapter, qualID, val, opt)
}

type absoluteAttribute struct {
	id             int64
	namespaceNames []string
	qualifiers     []Qualifier
	adapter        types.Adapter
	provider       types.Provider
	fac            AttributeFactory
}

func (a *absoluteAttribute) ID() int64 {
	return a.id
}

func (a *absoluteAttribute) IsOptional() bool {
	return false
}

func (a *absoluteAttribute) Qualifiers() []Qualifier {
	return a.qualifiers
}

func (a *absoluteAttribute) CandidateVariableNames() []string {
	return a.namespaceNames
}

func (a *absoluteAttribute) AddQualifier(qual Qualifier) (Attribute, error) {
	a.qualifiers = append(a.qualifiers, qual)
	return a, nil
}

// Resolve iterates through the namespaced variable names until one is found in the Activation,
// and then applies the qualifier resolution logic in order. If no variable name matches, an
// error is returned.
func (a *absoluteAttribute) Resolve(vars Activation) (any, error) {
	obj, found, err := a.TryResolve(vars)
	if err != nil {
		return nil, err
	}
	if found {
		return obj, nil
	}
	return nil, fmt.Errorf("no such attribute: %v", a.namespaceNames)
}

func (a *absoluteAttribute) TryResolve(vars Activation) (any, bool, error) {
	for _, nm := range a.namespaceNames {
		op, found := vars.ResolveName(nm)
		if found {
			if types.IsUnknown(toVal(op)) {
				return op, true, nil
			}
			var err error
			for _, qual := range a.qualifiers {
				op, err = qual.Qualify(vars, op)
				if err != nil {
					return nil, true, err
				}
			}
			return op, true, nil
		}
		if typ, found := a.provider.FindIdent(nm); found {
			if len(a.qualifiers) == 0 {
				return typ, true, nil
			}
			return nil, false, fmt.Errorf("no such attribute: %v", typ)
		}
	}
	return nil, false, nil
}

func (a *absoluteAttribute) Qualify(vars Activation, obj any) (any, error) {
	val, err := a.Resolve(vars)
	if err != nil {
		return nil, err
	}
	qual, err := newQualifier(a.adapter, a.id, val, false)
	if err != nil {
		return nil, err
	}
	return qual.Qualify(vars, obj)
}

func (a *absoluteAttribute) QualifyIfPresent(vars Activation, obj any, presenceOnly bool) (any, bool, error) {
	val, found, err := a.TryResolve(vars)
	if err != nil || !found {
		return nil, found, err
	}
	qual, err := newQualifier(a.adapter, a.id, val, false)
	if err != nil {
		return nil, false, err
	}
	return qual.QualifyIfPresent(vars, obj, presenceOnly)
}

type conditionalAttribute struct {
	id      int64
	expr    Interpretable
	truthy  Attribute
	falsy   Attribute
	adapter types.Adapter
	fac     AttributeFactory
}

func (a *conditionalAttribute) ID() int64 {
	return a.id
}

func (a *conditionalAttribute) IsOptional() bool {
	return false
}

func (a *conditionalAttribute) AddQualifier(qual Qualifier) (Attribute, error) {
	if _, err := a.truthy.AddQualifier(qual); err != nil {
		return nil, err
	}
	if _, err := a.falsy.AddQualifier(qual); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *conditionalAttribute) Resolve(vars Activation) (any, error) {
	val := a.expr.Eval(vars)
	if types.IsError(val) {
		return nil, val.Value().(error)
	}
	if val == types.True {
		return a.truthy.Resolve(vars)
	}
	if val == types.False {
		return a.falsy.Resolve(vars)
	}
	if types.IsUnknown(val) {
		return val, nil
	}
	return nil, types.ValOrErr(val, "no such overload").Value().(error)
}

func (a *conditionalAttribute) Qualify(vars Activation, obj any) (any, error) {
	val, err := a.Resolve(vars)
	if err != nil {
		return nil, err
	}
	qual, err := newQualifier(a.adapter, a.id, val, false)
	if err != nil {
		return nil, err
	}
	return qual.Qualify(vars, obj)
}

func (a *conditionalAttribute) QualifyIfPresent(vars Activation, obj any, presenceOnly bool) (any, bool, error) {
	val, err := a.Resolve(vars)
	if err != nil {
		return nil, false, err
	}
	qual, err := newQualifier(a.adapter, a.id, val, false)
	if err != nil {
		return nil, false, err
	}
	return qual.QualifyIfPresent(vars, obj, presenceOnly)
}

// maybeAttribute collects variants of unchecked AbsoluteAttribute values which could either be
// direct variable accesses or some combination of variable access with qualification.
type maybeAttribute struct {
	id       int64
	attrs    []NamespacedAttribute
	adapter  types.Adapter
	provider types.Provider
	fac      AttributeFactory
}

func (a *maybeAttribute) ID() int64 {
	return a.attrs[0].ID()
}

func (a *maybeAttribute) IsOptional() bool {
	return false
}

// AddQualifier adds a qualifier to each possible attribute variant, and also creates a new
// namespaced variable from the qualified value when the qualifier is a simple string field name.
func (a *maybeAttribute) AddQualifier(qual Qualifier) (Attribute, error) {
	str, isStr := qual.(*stringQualifier)
	augmentedNames := []string(nil)
	for _, attr := range a.attrs {
		if isStr {
			if absAttr, ok := attr.(*absoluteAttribute); ok && len(absAttr.qualifiers) == 0 {
				augmentedNames = make([]string, len(absAttr.namespaceNames))
				for i, name := range absAttr.namespaceNames {
					augmentedNames[i] = fmt.Sprintf("%s.%s", name, str.value)
				}
			}
		}
		if _, err := attr.AddQualifier(qual); err != nil {
			return nil, err
		}
	}
	if len(augmentedNames) > 0 {
		a.attrs = append([]NamespacedAttribute{
			&absoluteAttribute{
				id:             qual.ID(),
				namespaceNames: augmentedNames,
				qualifiers:     []Qualifier{},
				adapter:        a.adapter,
				provider:       a.provider,
				fac:            a.fac,
			},
		}, a.attrs...)
	}
	return a, nil
}

func (a *maybeAttribute) Resolve(vars Activation) (any, error) {
	for _, attr := range a.attrs {
		obj, found, err := attr.TryResolve(vars)
		if err != nil {
			return nil, err
		}
		if found {
			return obj, nil
		}
	}
	return nil, fmt.Errorf("no such attribute: %v", a)
}

func (a *maybeAttribute) Qualify(vars Activation, obj any) (any, error) {
	val, err := a.Resolve(vars)
	if err != nil {
		return nil, err
	}
	qual, err := newQualifier(a.adapter, a.ID(), val, false)
	if err != nil {
		return nil, err
	}
	return qual.Qualify(vars, obj)
}

func (a *maybeAttribute) QualifyIfPresent(vars Activation, obj any, presenceOnly bool) (any, bool, error) {
	for _, attr := range a.attrs {
		val, found, err := attr.TryResolve(vars)
		if err != nil {
			return nil, false, err
		}
		if !found {
			continue
		}
		qual, err := newQualifier(a.adapter, a.ID(), val, false)
		if err != nil {
			return nil, false, err
		}
		return qual.QualifyIfPresent(vars, obj, presenceOnly)
	}
	return nil, false, nil
}

type relativeAttribute struct {
	id         int64
	operand    Interpretable
	qualifiers []Qualifier
	adapter    types.Adapter
	fac        AttributeFactory
	optional   bool
}

func (a *relativeAttribute) ID() int64 {
	return a.id
}

func (a *relativeAttribute) IsOptional() bool {
	return a.optional
}

func (a *relativeAttribute) AddQualifier(qual Qualifier) (Attribute, error) {
	a.qualifiers = append(a.qualifiers, qual)
	return a, nil
}

func (a *relativeAttribute) Resolve(vars Activation) (any, error) {
	v := a.operand.Eval(vars)
	if types.IsError(v) {
		return nil, v.Value().(error)
	}
	if types.IsUnknown(v) {
		return v, nil
	}
	var err error
	var obj any = v
	for _, qual := range a.qualifiers {
		obj, err = qual.Qualify(vars, obj)
		if err != nil {
			return nil, err
		}
	}
	return obj, nil
}

func (a *relativeAttribute) Qualify(vars Activation, obj any) (any, error) {
	val, err := a.Resolve(vars)
	if err != nil {
		return nil, err
	}
	qual, err := newQualifier(a.adapter, a.id, val, false)
	if err != nil {
		return nil, err
	}
	return qual.Qualify(vars, obj)
}

func (a *relativeAttribute) QualifyIfPresent(vars Activation, obj any, presenceOnly bool) (any, bool, error) {
	val, err := a.Resolve(vars)
	if err != nil {
		return nil, false, err
	}
	qual, err := newQualifier(a.adapter, a.id, val, false)
	if err != nil {
		return nil, false, err
	}
	return qual.QualifyIfPresent(vars, obj, presenceOnly)
}

func newQualifier(adapter types.Adapter, id int64, v any, opt bool) (Qualifier, error) {
	var qual Qualifier
	switch val := v.(type) {
	case Attribute:
		return val, nil
	case Qualifier:
		return val, nil
	case string:
		qual = &stringQualifier{id: id, value: val, celValue: types.String(val), adapter: adapter, optional: opt}
	case int:
		qual = &intQualifier{id: id, value: int64(val), celValue: types.Int(val), adapter: adapter, optional: opt}
	case int32:
		qual = &intQualifier{id: id, value: int64(val), celValue: types.Int(val), adapter: adapter, optional: opt}
	case int64:
		qual = &intQualifier{id: id, value: val, celValue: types.Int(val), adapter: adapter, optional: opt}
	case uint:
		qual = &uintQualifier{id: id, value: uint64(val), celValue: types.Uint(val), adapter: adapter, optional: opt}
	case uint32:
		qual = &uintQualifier{id: id, value: uint64(val), celValue: types.Uint(val), adapter: adapter, optional: opt}
	case uint64:
		qual = &uintQualifier{id: id, value: val, celValue: types.Uint(val), adapter: adapter, optional: opt}
	case bool:
		qual = &boolQualifier{id: id, value: val, celValue: types.Bool(val), adapter: adapter, optional: opt}
	case types.String:
		qual = &stringQualifier{id: id, value: string(val), celValue: val, adapter: adapter, optional: opt}
	case types.Int:
		qual = &intQualifier{id: id, value: int64(val), celValue: val, adapter: adapter, optional: opt}
	case types.Uint:
		qual = &uintQualifier{id: id, value: uint64(val), celValue: val, adapter: adapter, optional: opt}
	case types.Bool:
		qual = &boolQualifier{id: id, value: bool(val), celValue: val, adapter: adapter, optional: opt}
	default:
		return nil, fmt.Errorf("invalid qualifier type: %T", v)
	}
	return qual, nil
}

type stringQualifier struct {
	id       int64
	value    string
	celValue ref.Val
	adapter  types.Adapter
	optional bool
}

func (q *stringQualifier) ID() int64 {
	return q.id
}

func (q *stringQualifier) IsOptional() bool {
	return q.optional
}

func (q *stringQualifier) Value() ref.Val {
	return q.celValue
}

func (q *stringQualifier) Qualify(vars Activation, obj any) (any, error) {
	val, found, err := q.QualifyIfPresent(vars, obj, false)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("no such key: %v", q.value)
	}
	return val, nil
}

func (q *stringQualifier) QualifyIfPresent(vars Activation, obj any, presenceOnly bool) (any, bool, error) {
	s := q.value
	switch o := obj.(type) {
	case map[string]any:
		v, found := o[s]
		return v, found, nil
	case types.Unknown:
		return o, true, nil
	default:
		return refResolveIfPresent(q.adapter, q.celValue, obj, presenceOnly)
	}
}

type intQualifier struct {
	id       int64
	value    int64
	celValue ref.Val
	adapter  types.Adapter
	optional bool
}

func (q *intQualifier) ID() int64 {
	return q.id
}

func (q *intQualifier) IsOptional() bool {
	return q.optional
}

func (q *intQualifier) Value() ref.Val {
	return q.celValue
}

func (q *intQualifier) Qualify(vars Activation, obj any) (any, error) {
	val, found, err := q.QualifyIfPresent(vars, obj, false)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("index out of bounds: %v", q.value)
	}
	return val, nil
}

func (q *intQualifier) QualifyIfPresent(vars Activation, obj any, presenceOnly bool) (any, bool, error) {
	i := q.value
	switch o := obj.(type) {
	case map[int64]any:
		v, found := o[i]
		return v, found, nil
	case []any:
		if i >= 0 && i < int64(len(o)) {
			return o[i], true, nil
		}
		return nil, false, nil
	case types.Unknown:
		return o, true, nil
	default:
		return refResolveIfPresent(q.adapter, q.celValue, obj, presenceOnly)
	}
}

type uintQualifier struct {
	id       int64
	value    uint64
	celValue ref.Val
	adapter  types.Adapter
	optional bool
}

func (q *uintQualifier) ID() int64 {
	return q.id
}

func (q *uintQualifier) IsOptional() bool {
	return q.optional
}

func (q *uintQualifier) Value() ref.Val {
	return q.celValue
}

func (q *uintQualifier) Qualify(vars Activation, obj any) (any, error) {
	val, found, err := q.QualifyIfPresent(vars, obj, false)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("no such key: %v", q.value)
	}
	return val, nil
}

func (q *uintQualifier) QualifyIfPresent(vars Activation, obj any, presenceOnly bool) (any, bool, error) {
	switch o := obj.(type) {
	case map[uint64]any:
		v, found := o[q.value]
		return v, found, nil
	case types.Unknown:
		return o, true, nil
	default:
		return refResolveIfPresent(q.adapter, q.celValue, obj, presenceOnly)
	}
}

type boolQualifier struct {
	id       int64
	value    bool
	celValue ref.Val
	adapter  types.Adapter
	optional bool
}

func (q *boolQualifier) ID() int64 {
	return q.id
}

func (q *boolQualifier) IsOptional() bool {
	return q.optional
}

func (q *boolQualifier) Value() ref.Val {
	return q.celValue
}

func (q *boolQualifier) Qualify(vars Activation, obj any) (any, error) {
	val, found, err := q.QualifyIfPresent(vars, obj, false)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("no such key: %v", q.value)
	}
	return val, nil
}

func (q *boolQualifier) QualifyIfPresent(vars Activation, obj any, presenceOnly bool) (any, bool, error) {
	switch o := obj.(type) {
	case map[bool]any:
		v, found := o[q.value]
		return v, found, nil
	case types.Unknown:
		return o, true, nil
	default:
		return refResolveIfPresent(q.adapter, q.celValue, obj, presenceOnly)
	}
}

// fieldQualifier indicates that the qualification is a well-defined struct field. Field
// resolution falls back to the generic ref.Val indexing path below, since the provider
// interface in this codebase does not expose typed field accessors.
type fieldQualifier struct {
	id       int64
	Name     string
	adapter  types.Adapter
	optional bool
}

func (q *fieldQualifier) ID() int64 {
	return q.id
}

func (q *fieldQualifier) IsOptional() bool {
	return q.optional
}

func (q *fieldQualifier) Value() ref.Val {
	return types.String(q.Name)
}

func (q *fieldQualifier) Qualify(vars Activation, obj any) (any, error) {
	sq := &stringQualifier{id: q.id, value: q.Name, celValue: types.String(q.Name), adapter: q.adapter, optional: q.optional}
	return sq.Qualify(vars, obj)
}

func (q *fieldQualifier) QualifyIfPresent(vars Activation, obj any, presenceOnly bool) (any, bool, error) {
	sq := &stringQualifier{id: q.id, value: q.Name, celValue: types.String(q.Name), adapter: q.adapter, optional: q.optional}
	return sq.QualifyIfPresent(vars, obj, presenceOnly)
}

func refResolveIfPresent(adapter types.Adapter, idx ref.Val, obj any, presenceOnly bool) (any, bool, error) {
	celVal := adapter.NativeToValue(obj)
	if mapper, isMapper := celVal.(traits.Mapper); isMapper {
		elem, found := mapper.Find(idx)
		if !found {
			return nil, false, nil
		}
		if types.IsError(elem) {
			return nil, false, elem.Value().(error)
		}
		if presenceOnly {
			return nil, true, nil
		}
		return elem, true, nil
	}
	if indexer, isIndexer := celVal.(traits.Indexer); isIndexer {
		elem := indexer.Get(idx)
		if types.IsError(elem) {
			return nil, false, elem.Value().(error)
		}
		if presenceOnly {
			return nil, true, nil
		}
		return elem, true, nil
	}
	return nil, false, errors.New("no such overload")
}

func toVal(v any) ref.Val {
	if rv, ok := v.(ref.Val); ok {
		return rv
	}
	return nil
}
