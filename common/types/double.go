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

// Double type that implements ref.Val, comparison, and mathematical
// operations. Double arithmetic follows IEEE 754 semantics rather than
// overflow.go's checked integer helpers: division by zero yields
// +/-Inf or NaN rather than an error.
type Double float64

// Add implements traits.Adder.Add.
func (d Double) Add(other ref.Val) ref.Val {
	otherDouble, ok := other.(Double)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	return d + otherDouble
}

// Compare implements traits.Comparer.Compare, supporting same-kind and
// cross-kind numeric comparisons against Int and Uint.
func (d Double) Compare(other ref.Val) ref.Val {
	switch ov := other.(type) {
	case Double:
		if math.IsNaN(float64(d)) || math.IsNaN(float64(ov)) {
			return NewErr("NaN values cannot be ordered")
		}
		switch {
		case d < ov:
			return IntNegOne
		case d > ov:
			return IntOne
		default:
			return IntZero
		}
	case Int:
		return negateComparison(compareIntDouble(int64(ov), float64(d)))
	case Uint:
		return negateComparison(compareUintDouble(uint64(ov), float64(d)))
	default:
		return MaybeNoSuchOverloadErr(other)
	}
}

// ConvertToNative implements ref.Val.ConvertToNative.
func (d Double) ConvertToNative(typeDesc reflect.Type) (any, error) {
	switch typeDesc.Kind() {
	case reflect.Float32:
		return float32(d), nil
	case reflect.Float64:
		return float64(d), nil
	case reflect.Interface:
		if reflect.TypeOf(d).Implements(typeDesc) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("type conversion error from Double to '%v'", typeDesc)
}

// ConvertToType implements ref.Val.ConvertToType.
func (d Double) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case IntType:
		if math.IsNaN(float64(d)) || d < math.MinInt64 || d > math.MaxInt64 {
			return NewErr("range error converting %g to int", float64(d))
		}
		return Int(d)
	case UintType:
		if math.IsNaN(float64(d)) || d < 0 || d > math.MaxUint64 {
			return NewErr("range error converting %g to uint", float64(d))
		}
		return Uint(d)
	case DoubleType:
		return d
	case StringType:
		return String(strconv.FormatFloat(float64(d), 'g', -1, 64))
	case TypeType:
		return DoubleType
	}
	return NewErr("type conversion error from '%s' to '%s'", DoubleType, typeVal)
}

// Divide implements traits.Divider.Divide.
func (d Double) Divide(other ref.Val) ref.Val {
	otherDouble, ok := other.(Double)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	return d / otherDouble
}

// Equal implements ref.Val.Equal.
func (d Double) Equal(other ref.Val) ref.Val {
	switch other.(type) {
	case Double, Int, Uint:
		cmp := d.Compare(other)
		if IsError(cmp) {
			return False
		}
		return Bool(cmp == IntZero)
	default:
		return False
	}
}

// Multiply implements traits.Multiplier.Multiply.
func (d Double) Multiply(other ref.Val) ref.Val {
	otherDouble, ok := other.(Double)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	return d * otherDouble
}

// Negate implements traits.Negater.Negate.
func (d Double) Negate() ref.Val {
	return -d
}

// Subtract implements traits.Subtractor.Subtract.
func (d Double) Subtract(subtrahend ref.Val) ref.Val {
	otherDouble, ok := subtrahend.(Double)
	if !ok {
		return MaybeNoSuchOverloadErr(subtrahend)
	}
	return d - otherDouble
}

// Type implements ref.Val.Type.
func (d Double) Type() ref.Type {
	return DoubleType
}

// Value implements ref.Val.Value.
func (d Double) Value() any {
	return float64(d)
}
