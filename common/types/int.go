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
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/taichimaeda/cel/common/types/ref"
	"github.com/taichimaeda/cel/common/types/traits"
)

// Int type that implements ref.Val as well as comparison and math
// operators. All arithmetic is checked for 64-bit overflow per spec
// (no silent wraparound) via overflow.go's checked helpers.
type Int int64

const (
	// Int constants used for comparison results.
	IntZero   = Int(0)
	IntOne    = Int(1)
	IntNegOne = Int(-1)
)

// Add implements traits.Adder.Add.
func (i Int) Add(other ref.Val) ref.Val {
	otherInt, ok := other.(Int)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	val, ok := addInt64Checked(int64(i), int64(otherInt))
	if !ok {
		return errIntOverflow
	}
	return Int(val)
}

// Compare implements traits.Comparer.Compare, supporting same-kind and
// cross-kind numeric comparisons against Uint and Double.
func (i Int) Compare(other ref.Val) ref.Val {
	switch ov := other.(type) {
	case Int:
		return compareInt64(int64(i), int64(ov))
	case Double:
		return compareIntDouble(int64(i), float64(ov))
	case Uint:
		return compareIntUint(int64(i), uint64(ov))
	default:
		return MaybeNoSuchOverloadErr(other)
	}
}

// ConvertToNative implements ref.Val.ConvertToNative.
func (i Int) ConvertToNative(typeDesc reflect.Type) (any, error) {
	switch typeDesc.Kind() {
	case reflect.Int, reflect.Int32, reflect.Int64:
		v := reflect.ValueOf(int64(i))
		if v.OverflowInt(typeDesc.Bits()) {
			return nil, fmt.Errorf("integer overflow converting %d to %v", int64(i), typeDesc)
		}
		return v.Convert(typeDesc).Interface(), nil
	case reflect.Ptr:
		switch typeDesc.Elem().Kind() {
		case reflect.Int32:
			p := int32(i)
			return &p, nil
		case reflect.Int64:
			p := int64(i)
			return &p, nil
		}
	case reflect.Interface:
		if reflect.TypeOf(i).Implements(typeDesc) {
			return i, nil
		}
	}
	if reflect.TypeOf(i).AssignableTo(typeDesc) {
		return i, nil
	}
	return nil, fmt.Errorf("unsupported type conversion from 'int' to %v", typeDesc)
}

// ConvertToType implements ref.Val.ConvertToType.
func (i Int) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case IntType:
		return i
	case UintType:
		if i < 0 {
			return errUintOverflow
		}
		return Uint(i)
	case DoubleType:
		return Double(i)
	case StringType:
		return String(strconv.FormatInt(int64(i), 10))
	case TimestampType:
		sec := int64(i)
		if sec < minUnixTime || sec > maxUnixTime {
			return errTimestampOverflow
		}
		return timestampOf(time.Unix(sec, 0).UTC())
	case TypeType:
		return IntType
	}
	return NewErr("type conversion error from '%s' to '%s'", IntType, typeVal)
}

// Divide implements traits.Divider.Divide.
func (i Int) Divide(other ref.Val) ref.Val {
	otherInt, ok := other.(Int)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	if otherInt == IntZero {
		return NewErr("divide by zero")
	}
	val, ok := divideInt64Checked(int64(i), int64(otherInt))
	if !ok {
		return errIntOverflow
	}
	return Int(val)
}

// Equal implements ref.Val.Equal.
func (i Int) Equal(other ref.Val) ref.Val {
	switch ov := other.(type) {
	case Int:
		return Bool(i == ov)
	case Double, Uint:
		return Bool(i.Compare(other) == IntZero)
	default:
		return False
	}
}

// Modulo implements traits.Modder.Modulo.
func (i Int) Modulo(other ref.Val) ref.Val {
	otherInt, ok := other.(Int)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	if otherInt == IntZero {
		return NewErr("modulus by zero")
	}
	val, ok := moduloInt64Checked(int64(i), int64(otherInt))
	if !ok {
		return errIntOverflow
	}
	return Int(val)
}

// Multiply implements traits.Multiplier.Multiply.
func (i Int) Multiply(other ref.Val) ref.Val {
	otherInt, ok := other.(Int)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	val, ok := multiplyInt64Checked(int64(i), int64(otherInt))
	if !ok {
		return errIntOverflow
	}
	return Int(val)
}

// Negate implements traits.Negater.Negate.
func (i Int) Negate() ref.Val {
	val, ok := negateInt64Checked(int64(i))
	if !ok {
		return errIntOverflow
	}
	return Int(val)
}

// Subtract implements traits.Subtractor.Subtract.
func (i Int) Subtract(subtrahend ref.Val) ref.Val {
	otherInt, ok := subtrahend.(Int)
	if !ok {
		return MaybeNoSuchOverloadErr(subtrahend)
	}
	val, ok := subtractInt64Checked(int64(i), int64(otherInt))
	if !ok {
		return errIntOverflow
	}
	return Int(val)
}

// Type implements ref.Val.Type.
func (i Int) Type() ref.Type {
	return IntType
}

// Value implements ref.Val.Value.
func (i Int) Value() any {
	return int64(i)
}

func compareInt64(a, b int64) ref.Val {
	switch {
	case a < b:
		return IntNegOne
	case a > b:
		return IntOne
	default:
		return IntZero
	}
}

func compareIntDouble(a int64, b float64) ref.Val {
	if math.IsNaN(b) {
		return NewErr("NaN values cannot be ordered")
	}
	af := float64(a)
	switch {
	case af < b:
		return IntNegOne
	case af > b:
		return IntOne
	default:
		return IntZero
	}
}

func compareIntUint(a int64, b uint64) ref.Val {
	if a < 0 {
		return IntNegOne
	}
	return compareUint64(uint64(a), b)
}

var _ = traits.Comparer(Int(0))
