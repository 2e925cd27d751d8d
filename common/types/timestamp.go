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
	"strings"
	"time"

	"github.com/taichimaeda/cel/common/overloads"
	"github.com/taichimaeda/cel/common/types/ref"
)

// Timestamp type implementation which supports add, compare, and subtract
// operations. Timestamps are also capable of participating in dynamic
// function dispatch to instance methods.
type Timestamp struct {
	time.Time
}

// Unix time range accepted by timestampOf and the checked overflow helpers
// in overflow.go, matching the proto3 Timestamp well-known type's bounds.
const (
	minUnixTime int64 = -62135596800
	maxUnixTime int64 = 253402300799
)

// timestampOf wraps a time.Time as a Timestamp value.
func timestampOf(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// addTimeDurationCheckedVal mirrors addTimeDurationChecked but distinguishes
// a raw int64 seconds/nanosecond-carry overflow from a result that falls
// outside the acceptable Unix time range, returning the specific error value
// for each case instead of a bare bool.
func addTimeDurationCheckedVal(x time.Time, y time.Duration) (time.Time, ref.Val) {
	sec1 := x.Truncate(time.Second).Unix()
	nsec1 := x.Sub(x.Truncate(time.Second)).Nanoseconds()

	sec2 := int64(y) / int64(time.Second)
	nsec2 := int64(y) % int64(time.Second)

	sec, ok := addInt64Checked(sec1, sec2)
	if !ok {
		return time.Time{}, errIntOverflow
	}

	nsec := nsec1 + nsec2
	if nsec < 0 || nsec >= int64(time.Second) {
		sec, ok = addInt64Checked(sec, nsec/int64(time.Second))
		if !ok {
			return time.Time{}, errIntOverflow
		}
		nsec -= (nsec / int64(time.Second)) * int64(time.Second)
		if nsec < 0 {
			sec, ok = addInt64Checked(sec, -1)
			if !ok {
				return time.Time{}, errIntOverflow
			}
			nsec += int64(time.Second)
		}
	}

	if sec < minUnixTime || sec > maxUnixTime {
		return time.Time{}, errTimestampOverflow
	}
	return time.Unix(sec, nsec).In(x.Location()), nil
}

// Add implements traits.Adder.Add.
func (t Timestamp) Add(other ref.Val) ref.Val {
	otherDur, ok := other.(Duration)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	val, errVal := addTimeDurationCheckedVal(t.Time, otherDur.Duration)
	if errVal != nil {
		return errVal
	}
	return Timestamp{Time: val}
}

// Compare implements traits.Comparer.Compare.
func (t Timestamp) Compare(other ref.Val) ref.Val {
	otherTs, ok := other.(Timestamp)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	switch {
	case t.Time.Before(otherTs.Time):
		return IntNegOne
	case t.Time.After(otherTs.Time):
		return IntOne
	default:
		return IntZero
	}
}

// ConvertToNative implements ref.Val.ConvertToNative.
func (t Timestamp) ConvertToNative(typeDesc reflect.Type) (any, error) {
	if reflect.TypeOf(t.Time).AssignableTo(typeDesc) {
		return t.Time, nil
	}
	if reflect.TypeOf(t).AssignableTo(typeDesc) {
		return t, nil
	}
	return nil, fmt.Errorf("type conversion error from "+
		"'google.protobuf.Timestamp' to '%v'", typeDesc)
}

// ConvertToType implements ref.Val.ConvertToType.
func (t Timestamp) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case StringType:
		return String(t.Time.Format(time.RFC3339Nano))
	case IntType:
		return Int(t.Time.Unix())
	case TimestampType:
		return t
	case TypeType:
		return TimestampType
	}
	return NewErr("type conversion error from '%s' to '%s'", TimestampType, typeVal)
}

// Equal implements ref.Val.Equal.
func (t Timestamp) Equal(other ref.Val) ref.Val {
	otherTs, ok := other.(Timestamp)
	if !ok {
		return False
	}
	return Bool(t.Time.Equal(otherTs.Time))
}

// Receive implements traits.Receiver.Receive.
func (t Timestamp) Receive(function string, overload string, args []ref.Val) ref.Val {
	switch len(args) {
	case 0:
		if f, found := timestampZeroArgOverloads[function]; found {
			return f(t.Time)
		}
	case 1:
		if f, found := timestampOneArgOverloads[function]; found {
			return f(t.Time, args[0])
		}
	}
	return NewErr("no such overload: %s", function)
}

// Subtract implements traits.Subtractor.Subtract.
func (t Timestamp) Subtract(subtrahend ref.Val) ref.Val {
	switch ov := subtrahend.(type) {
	case Duration:
		negated, ok := negateDurationChecked(ov.Duration)
		if !ok {
			return errIntOverflow
		}
		val, errVal := addTimeDurationCheckedVal(t.Time, negated)
		if errVal != nil {
			return errVal
		}
		return Timestamp{Time: val}
	case Timestamp:
		val, ok := subtractTimeChecked(t.Time, ov.Time)
		if !ok {
			return errIntOverflow
		}
		return Duration{Duration: val}
	default:
		return MaybeNoSuchOverloadErr(subtrahend)
	}
}

// Type implements ref.Val.Type.
func (t Timestamp) Type() ref.Type {
	return TimestampType
}

// Value implements ref.Val.Value.
func (t Timestamp) Value() any {
	return t.Time
}

var timestampZeroArgOverloads = map[string]func(time.Time) ref.Val{
	overloads.TimeGetFullYear:     timestampGetFullYear,
	overloads.TimeGetMonth:        timestampGetMonth,
	overloads.TimeGetDayOfYear:    timestampGetDayOfYear,
	overloads.TimeGetDate:         timestampGetDayOfMonthOneBased,
	overloads.TimeGetDayOfMonth:   timestampGetDayOfMonthZeroBased,
	overloads.TimeGetDayOfWeek:    timestampGetDayOfWeek,
	overloads.TimeGetHours:        timestampGetHours,
	overloads.TimeGetMinutes:      timestampGetMinutes,
	overloads.TimeGetSeconds:      timestampGetSeconds,
	overloads.TimeGetMilliseconds: timestampGetMilliseconds,
}

var timestampOneArgOverloads = map[string]func(time.Time, ref.Val) ref.Val{
	overloads.TimeGetFullYear:     timestampGetFullYearWithTz,
	overloads.TimeGetMonth:        timestampGetMonthWithTz,
	overloads.TimeGetDayOfYear:    timestampGetDayOfYearWithTz,
	overloads.TimeGetDate:         timestampGetDayOfMonthOneBasedWithTz,
	overloads.TimeGetDayOfMonth:   timestampGetDayOfMonthZeroBasedWithTz,
	overloads.TimeGetDayOfWeek:    timestampGetDayOfWeekWithTz,
	overloads.TimeGetHours:        timestampGetHoursWithTz,
	overloads.TimeGetMinutes:      timestampGetMinutesWithTz,
	overloads.TimeGetSeconds:      timestampGetSecondsWithTz,
	overloads.TimeGetMilliseconds: timestampGetMillisecondsWithTz,
}

type timestampVisitor func(time.Time) ref.Val

func timestampGetFullYear(t time.Time) ref.Val {
	return Int(t.Year())
}

// timestampGetMonth returns a 0-based month, since CEL's month getter is
// 0-based while time.Time's Month() is 1-based.
func timestampGetMonth(t time.Time) ref.Val {
	return Int(t.Month() - 1)
}
func timestampGetDayOfYear(t time.Time) ref.Val {
	return Int(t.YearDay() - 1)
}
func timestampGetDayOfMonthZeroBased(t time.Time) ref.Val {
	return Int(t.Day() - 1)
}
func timestampGetDayOfMonthOneBased(t time.Time) ref.Val {
	return Int(t.Day())
}
func timestampGetDayOfWeek(t time.Time) ref.Val {
	return Int(t.Weekday())
}
func timestampGetHours(t time.Time) ref.Val {
	return Int(t.Hour())
}
func timestampGetMinutes(t time.Time) ref.Val {
	return Int(t.Minute())
}
func timestampGetSeconds(t time.Time) ref.Val {
	return Int(t.Second())
}
func timestampGetMilliseconds(t time.Time) ref.Val {
	return Int(t.Nanosecond() / 1000000)
}

func timestampGetFullYearWithTz(t time.Time, tz ref.Val) ref.Val {
	return timeZone(tz, timestampGetFullYear)(t)
}
func timestampGetMonthWithTz(t time.Time, tz ref.Val) ref.Val {
	return timeZone(tz, timestampGetMonth)(t)
}
func timestampGetDayOfYearWithTz(t time.Time, tz ref.Val) ref.Val {
	return timeZone(tz, timestampGetDayOfYear)(t)
}
func timestampGetDayOfMonthZeroBasedWithTz(t time.Time, tz ref.Val) ref.Val {
	return timeZone(tz, timestampGetDayOfMonthZeroBased)(t)
}
func timestampGetDayOfMonthOneBasedWithTz(t time.Time, tz ref.Val) ref.Val {
	return timeZone(tz, timestampGetDayOfMonthOneBased)(t)
}
func timestampGetDayOfWeekWithTz(t time.Time, tz ref.Val) ref.Val {
	return timeZone(tz, timestampGetDayOfWeek)(t)
}
func timestampGetHoursWithTz(t time.Time, tz ref.Val) ref.Val {
	return timeZone(tz, timestampGetHours)(t)
}
func timestampGetMinutesWithTz(t time.Time, tz ref.Val) ref.Val {
	return timeZone(tz, timestampGetMinutes)(t)
}
func timestampGetSecondsWithTz(t time.Time, tz ref.Val) ref.Val {
	return timeZone(tz, timestampGetSeconds)(t)
}
func timestampGetMillisecondsWithTz(t time.Time, tz ref.Val) ref.Val {
	return timeZone(tz, timestampGetMilliseconds)(t)
}

// timeZone resolves a timezone argument, either an IANA location name or a
// numeric +/-HH:MM offset from UTC, and applies visitor to the shifted time.
func timeZone(tz ref.Val, visitor timestampVisitor) timestampVisitor {
	return func(t time.Time) ref.Val {
		tzStr, ok := tz.(String)
		if !ok {
			return MaybeNoSuchOverloadErr(tz)
		}
		val := string(tzStr)
		ind := strings.Index(val, ":")
		if ind == -1 {
			loc, err := time.LoadLocation(val)
			if err != nil {
				return WrapErr(err)
			}
			return visitor(t.In(loc))
		}
		// A numerical offset from UTC in the form (+|-)HH:MM.
		hr, err := strconv.Atoi(val[0:ind])
		if err != nil {
			return WrapErr(err)
		}
		min, err := strconv.Atoi(val[ind+1:])
		if err != nil {
			return WrapErr(err)
		}
		var offsetMinutes int
		if strings.HasPrefix(val, "-") {
			offsetMinutes = hr*60 - min
		} else {
			offsetMinutes = hr*60 + min
		}
		secondsEastOfUTC := int((time.Duration(offsetMinutes) * time.Minute).Seconds())
		loc := time.FixedZone("", secondsEastOfUTC)
		return visitor(t.In(loc))
	}
}
