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
	"strconv"
	"time"

	"github.com/taichimaeda/cel/common/overloads"
	"github.com/taichimaeda/cel/common/types/ref"
)

// Duration type that implements ref.Val and supports add, compare, negate,
// and subtract operators. This type is also a receiver which means it can
// participate in dispatch to receiver functions.
type Duration struct {
	time.Duration
}

// Add implements traits.Adder.Add.
func (d Duration) Add(other ref.Val) ref.Val {
	switch ov := other.(type) {
	case Duration:
		val, ok := addDurationChecked(d.Duration, ov.Duration)
		if !ok {
			return errIntOverflow
		}
		return Duration{Duration: val}
	case Timestamp:
		return ov.Add(d)
	default:
		return MaybeNoSuchOverloadErr(other)
	}
}

// Compare implements traits.Comparer.Compare.
func (d Duration) Compare(other ref.Val) ref.Val {
	otherDur, ok := other.(Duration)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	switch {
	case d.Duration < otherDur.Duration:
		return IntNegOne
	case d.Duration > otherDur.Duration:
		return IntOne
	default:
		return IntZero
	}
}

// ConvertToNative implements ref.Val.ConvertToNative.
func (d Duration) ConvertToNative(typeDesc reflect.Type) (any, error) {
	if typeDesc.Kind() == reflect.Int64 {
		return int64(d.Duration), nil
	}
	if reflect.TypeOf(d.Duration).AssignableTo(typeDesc) {
		return d.Duration, nil
	}
	if reflect.TypeOf(d).AssignableTo(typeDesc) {
		return d, nil
	}
	return nil, fmt.Errorf("type conversion error from "+
		"'google.protobuf.Duration' to '%v'", typeDesc)
}

// ConvertToType implements ref.Val.ConvertToType.
func (d Duration) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case StringType:
		return String(strconv.FormatFloat(d.Duration.Seconds(), 'f', -1, 64) + "s")
	case IntType:
		return Int(d.Duration)
	case DurationType:
		return d
	case TypeType:
		return DurationType
	}
	return NewErr("type conversion error from '%s' to '%s'", DurationType, typeVal)
}

// Equal implements ref.Val.Equal.
func (d Duration) Equal(other ref.Val) ref.Val {
	otherDur, ok := other.(Duration)
	if !ok {
		return False
	}
	return Bool(d.Duration == otherDur.Duration)
}

// Negate implements traits.Negater.Negate.
func (d Duration) Negate() ref.Val {
	val, ok := negateDurationChecked(d.Duration)
	if !ok {
		return errIntOverflow
	}
	return Duration{Duration: val}
}

// IsZeroValue returns true if the duration is zero-length.
func (d Duration) IsZeroValue() bool {
	return d.Duration == 0
}

// Receive implements traits.Receiver.Receive.
func (d Duration) Receive(function string, overload string, args []ref.Val) ref.Val {
	if len(args) == 0 {
		if f, found := durationZeroArgOverloads[function]; found {
			return f(d.Duration)
		}
	}
	return NewErr("no such overload: %s", function)
}

// Subtract implements traits.Subtractor.Subtract.
func (d Duration) Subtract(subtrahend ref.Val) ref.Val {
	otherDur, ok := subtrahend.(Duration)
	if !ok {
		return MaybeNoSuchOverloadErr(subtrahend)
	}
	val, ok := subtractDurationChecked(d.Duration, otherDur.Duration)
	if !ok {
		return errIntOverflow
	}
	return Duration{Duration: val}
}

// Type implements ref.Val.Type.
func (d Duration) Type() ref.Type {
	return DurationType
}

// Value implements ref.Val.Value.
func (d Duration) Value() any {
	return d.Duration
}

// durationOf wraps a time.Duration as a Duration value.
func durationOf(d time.Duration) Duration {
	return Duration{Duration: d}
}

var durationZeroArgOverloads = map[string]func(time.Duration) ref.Val{
	overloads.TimeGetHours: func(dur time.Duration) ref.Val {
		return Int(dur.Hours())
	},
	overloads.TimeGetMinutes: func(dur time.Duration) ref.Val {
		return Int(dur.Minutes())
	},
	overloads.TimeGetSeconds: func(dur time.Duration) ref.Val {
		return Int(dur.Seconds())
	},
	overloads.TimeGetMilliseconds: func(dur time.Duration) ref.Val {
		return Int(dur.Nanoseconds() / 1000000)
	},
}
