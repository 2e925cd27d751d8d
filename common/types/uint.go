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

	"github.com/taichimaeda/cel/common/types/ref"
)

// Uint type implementation which supports comparison and math operators.
type Uint uint64

const uintZero = Uint(0)

// Add implements traits.Adder.Add.
func (i Uint) Add(other ref.Val) ref.Val {
	otherUint, ok := other.(Uint)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	val, ok := addUint64Checked(uint64(i), uint64(otherUint))
	if !ok {
		return errUintOverflow
	}
	return Uint(val)
}

// Compare implements traits.Comparer.Compare, supporting same-kind and
// cross-kind numeric comparisons against Int and Double.
func (i Uint) Compare(other ref.Val) ref.Val {
	switch ov := other.(type) {
	case Uint:
		return compareUint64(uint64(i), uint64(ov))
	case Int:
		return negateComparison(compareIntUint(int64(ov), uint64(i)))
	case Double:
		return compareUintDouble(uint64(i), float64(ov))
	default:
		return MaybeNoSuchOverloadErr(other)
	}
}

// ConvertToNative implements ref.Val.ConvertToNative.
func (i Uint) ConvertToNative(typeDesc reflect.Type) (any, error) {
	switch typeDesc.Kind() {
	case reflect.Uint, reflect.Uint32, reflect.Uint64:
		return reflect.ValueOf(uint64(i)).Convert(typeDesc).Interface(), nil
	}
	if reflect.TypeOf(i).AssignableTo(typeDesc) {
		return i, nil
	}
	return nil, fmt.Errorf("unsupported type conversion from 'uint' to %v", typeDesc)
}

// ConvertToType implements ref.Val.ConvertToType.
func (i Uint) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case IntType:
		if i > math.MaxInt64 {
			return NewErr("range error converting %d to int", uint64(i))
		}
		return Int(i)
	case UintType:
		return i
	case DoubleType:
		return Double(i)
	case StringType:
		return String(strconv.FormatUint(uint64(i), 10))
	case TypeType:
		return UintType
	}
	return NewErr("type conversion error from '%s' to '%s'", UintType, typeVal)
}

// Divide implements traits.Divider.Divide.
func (i Uint) Divide(other ref.Val) ref.Val {
	otherUint, ok := other.(Uint)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	if otherUint == uintZero {
		return NewErr("divide by zero")
	}
	return i / otherUint
}

// Equal implements ref.Val.Equal.
func (i Uint) Equal(other ref.Val) ref.Val {
	switch other.(type) {
	case Uint, Int, Double:
		return Bool(i.Compare(other) == IntZero)
	default:
		return False
	}
}

// Modulo implements traits.Modder.Modulo.
func (i Uint) Modulo(other ref.Val) ref.Val {
	otherUint, ok := other.(Uint)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	if otherUint == uintZero {
		return NewErr("modulus by zero")
	}
	return i % otherUint
}

// Multiply implements traits.Multiplier.Multiply.
func (i Uint) Multiply(other ref.Val) ref.Val {
	otherUint, ok := other.(Uint)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	val, ok := multiplyUint64Checked(uint64(i), uint64(otherUint))
	if !ok {
		return errUintOverflow
	}
	return Uint(val)
}

// Subtract implements traits.Subtractor.Subtract.
func (i Uint) Subtract(subtrahend ref.Val) ref.Val {
	otherUint, ok := subtrahend.(Uint)
	if !ok {
		return MaybeNoSuchOverloadErr(subtrahend)
	}
	val, ok := subtractUint64Checked(uint64(i), uint64(otherUint))
	if !ok {
		return errUintOverflow
	}
	return Uint(val)
}

// Type implements ref.Val.Type.
func (i Uint) Type() ref.Type {
	return UintType
}

// Value implements ref.Val.Value.
func (i Uint) Value() any {
	return uint64(i)
}

func compareUint64(a, b uint64) ref.Val {
	switch {
	case a < b:
		return IntNegOne
	case a > b:
		return IntOne
	default:
		return IntZero
	}
}

func compareUintDouble(a uint64, b float64) ref.Val {
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

func negateComparison(v ref.Val) ref.Val {
	switch v {
	case IntNegOne:
		return IntOne
	case IntOne:
		return IntNegOne
	default:
		return v
	}
}
