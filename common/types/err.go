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

package types

import (
	"fmt"
	"reflect"

	"github.com/taichimaeda/cel/common/types/ref"
)

// Err type which extends the built-in go error and implements ref.Val,
// per spec: errors are first-class values, not a side-channel, so a
// CEL error propagates as the result of an expression the same way any
// other value would.
type Err struct {
	error
	// id identifies the expression node that produced the error, 0 if
	// unset.
	id int64
}

var (
	// errIntOverflow is returned when checked int64/uint64 arithmetic in
	// overflow.go reports overflow for a plain numeric operation.
	errIntOverflow = NewErr("integer overflow")

	// errUintOverflow is returned converting a negative Int to UintType.
	errUintOverflow = NewErr("unsigned integer overflow")

	// errTimestampOverflow is returned when a Timestamp computation lands
	// outside [minUnixTime, maxUnixTime] despite fitting in an int64.
	errTimestampOverflow = NewErr("timestamp overflow")
)

var _ ref.Val = &Err{}

// NewErr creates a new Err described by the format string and args.
func NewErr(format string, args ...any) ref.Val {
	return &Err{error: fmt.Errorf(format, args...)}
}

// NewErrWithNodeID creates a new Err described by the format string,
// args and associated with a given expression id.
func NewErrWithNodeID(id int64, format string, args ...any) ref.Val {
	return &Err{error: fmt.Errorf(format, args...), id: id}
}

// LabelErrNode returns val unmodified if val is not an Err, otherwise
// it returns a copy of val with its node id set, provided the Err does
// not already carry one. Used by the interpreter to annotate which
// expression produced an error once it reaches the top of the
// evaluation stack.
func LabelErrNode(nodeID int64, val ref.Val) ref.Val {
	if err, ok := val.(*Err); ok && err.id == 0 {
		return &Err{error: err.error, id: nodeID}
	}
	return val
}

// NoSuchOverloadErr returns a new types.Err instance with a no such
// overload message.
func NoSuchOverloadErr() ref.Val {
	return NewErr("no such overload")
}

// MaybeNoSuchOverloadErr returns the error or unknown if the input
// ref.Val is one of these types, otherwise a new no such overload
// error is generated.
func MaybeNoSuchOverloadErr(val ref.Val) ref.Val {
	return ValOrErr(val, "no such overload")
}

// ValOrErr either returns the existing error or unknown, or creates a
// new error with the given format and args.
func ValOrErr(val ref.Val, format string, args ...any) ref.Val {
	if val == nil {
		return NewErr(format, args...)
	}
	switch val.Type() {
	case ErrType, UnknownType:
		return val
	}
	return NewErr(format, args...)
}

// WrapErr wraps an existing Go error value into a CEL error.
func WrapErr(err error) ref.Val {
	return &Err{error: err}
}

// ID returns the expression id of the originating node, or 0 if unset.
func (e *Err) ID() int64 {
	return e.id
}

// ConvertToNative implements ref.Val.ConvertToNative.
func (e *Err) ConvertToNative(typeDesc reflect.Type) (any, error) {
	return nil, e.error
}

// ConvertToType implements ref.Val.ConvertToType.
func (e *Err) ConvertToType(typeVal ref.Type) ref.Val {
	// Errors are not convertible to other representations.
	return e
}

// Equal implements ref.Val.Equal.
func (e *Err) Equal(other ref.Val) ref.Val {
	// An error cannot be equal to any other value, so it returns itself.
	return e
}

// String implements fmt.Stringer.
func (e *Err) String() string {
	return e.error.Error()
}

// Type implements ref.Val.Type.
func (e *Err) Type() ref.Type {
	return ErrType
}

// Value implements ref.Val.Value.
func (e *Err) Value() any {
	return e.error
}

// Is reports whether the wrapped error matches target, delegating to
// string comparison since CEL errors do not form a typed hierarchy.
func (e *Err) Is(target error) bool {
	return e.error.Error() == target.Error()
}

// IsError returns whether the input element ref.Val is an error value.
func IsError(val ref.Val) bool {
	switch val.(type) {
	case *Err:
		return true
	default:
		return false
	}
}

// IsUnknown returns whether the input element ref.Val is an unknown value.
func IsUnknown(val ref.Val) bool {
	switch val.(type) {
	case *Unknown:
		return true
	default:
		return false
	}
}

// IsUnknownOrError returns whether the input element ref.Val is an
// unknown or error value.
func IsUnknownOrError(val ref.Val) bool {
	return IsUnknown(val) || IsError(val)
}
