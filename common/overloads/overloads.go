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

// Package overloads defines the internal overload identifiers used by
// the standard library of CEL functions (common/stdlib). Overload ids
// are opaque strings used to index dispatch in a dynamic dispatcher
// (interpreter) and describe the function signature for the purposes
// of type-checking (checker).
package overloads

// Boolean / conditional overloads.
const (
	Conditional         = "conditional"
	LogicalAnd          = "logical_and"
	LogicalOr           = "logical_or"
	LogicalNot          = "logical_not"
	NotStrictlyFalse    = "not_strictly_false"
	Equals              = "equals"
	NotEquals           = "not_equals"
)

// Arithmetic overloads, organized by operand kind.
const (
	AddInt64             = "add_int64"
	AddUint64            = "add_uint64"
	AddDouble            = "add_double"
	AddString            = "add_string"
	AddBytes             = "add_bytes"
	AddList              = "add_list"
	AddTimestampDuration = "add_timestamp_duration"
	AddDurationTimestamp = "add_duration_timestamp"
	AddDurationDuration  = "add_duration_duration"

	SubtractInt64              = "subtract_int64"
	SubtractUint64             = "subtract_uint64"
	SubtractDouble             = "subtract_double"
	SubtractTimestampDuration  = "subtract_timestamp_duration"
	SubtractTimestampTimestamp = "subtract_timestamp_timestamp"
	SubtractDurationDuration   = "subtract_duration_duration"

	MultiplyInt64  = "multiply_int64"
	MultiplyUint64 = "multiply_uint64"
	MultiplyDouble = "multiply_double"

	DivideInt64  = "divide_int64"
	DivideUint64 = "divide_uint64"
	DivideDouble = "divide_double"

	ModuloInt64  = "modulo_int64"
	ModuloUint64 = "modulo_uint64"

	NegateInt64  = "negate_int64"
	NegateDouble = "negate_double"
)

// Relational overloads: each comparison operator carries a same-kind
// overload plus the cross-kind numeric overloads enabled by
// CrossTypeNumericComparisons.
const (
	LessBool     = "less_bool"
	LessInt64    = "less_int64"
	LessInt64Double = "less_int64_double"
	LessInt64Uint64 = "less_int64_uint64"
	LessUint64   = "less_uint64"
	LessUint64Double = "less_uint64_double"
	LessUint64Int64  = "less_uint64_int64"
	LessDouble   = "less_double"
	LessDoubleInt64 = "less_double_int64"
	LessDoubleUint64 = "less_double_uint64"
	LessString   = "less_string"
	LessBytes    = "less_bytes"
	LessTimestamp = "less_timestamp"
	LessDuration = "less_duration"

	LessEqualsBool     = "less_equals_bool"
	LessEqualsInt64    = "less_equals_int64"
	LessEqualsInt64Double = "less_equals_int64_double"
	LessEqualsInt64Uint64 = "less_equals_int64_uint64"
	LessEqualsUint64   = "less_equals_uint64"
	LessEqualsUint64Double = "less_equals_uint64_double"
	LessEqualsUint64Int64  = "less_equals_uint64_int64"
	LessEqualsDouble   = "less_equals_double"
	LessEqualsDoubleInt64 = "less_equals_double_int64"
	LessEqualsDoubleUint64 = "less_equals_double_uint64"
	LessEqualsString   = "less_equals_string"
	LessEqualsBytes    = "less_equals_bytes"
	LessEqualsTimestamp = "less_equals_timestamp"
	LessEqualsDuration = "less_equals_duration"

	GreaterBool     = "greater_bool"
	GreaterInt64    = "greater_int64"
	GreaterInt64Double = "greater_int64_double"
	GreaterInt64Uint64 = "greater_int64_uint64"
	GreaterUint64   = "greater_uint64"
	GreaterUint64Double = "greater_uint64_double"
	GreaterUint64Int64  = "greater_uint64_int64"
	GreaterDouble   = "greater_double"
	GreaterDoubleInt64 = "greater_double_int64"
	GreaterDoubleUint64 = "greater_double_uint64"
	GreaterString   = "greater_string"
	GreaterBytes    = "greater_bytes"
	GreaterTimestamp = "greater_timestamp"
	GreaterDuration = "greater_duration"

	GreaterEqualsBool     = "greater_equals_bool"
	GreaterEqualsInt64    = "greater_equals_int64"
	GreaterEqualsInt64Double = "greater_equals_int64_double"
	GreaterEqualsInt64Uint64 = "greater_equals_int64_uint64"
	GreaterEqualsUint64   = "greater_equals_uint64"
	GreaterEqualsUint64Double = "greater_equals_uint64_double"
	GreaterEqualsUint64Int64  = "greater_equals_uint64_int64"
	GreaterEqualsDouble   = "greater_equals_double"
	GreaterEqualsDoubleInt64 = "greater_equals_double_int64"
	GreaterEqualsDoubleUint64 = "greater_equals_double_uint64"
	GreaterEqualsString   = "greater_equals_string"
	GreaterEqualsBytes    = "greater_equals_bytes"
	GreaterEqualsTimestamp = "greater_equals_timestamp"
	GreaterEqualsDuration = "greater_equals_duration"
)

// Container / indexing overloads.
const (
	InList = "in_list"
	InMap  = "in_map"

	// DeprecatedIn / OldIn are retained to dispatch `_in_` calls produced
	// by expressions compiled against earlier CEL releases.
	DeprecatedIn = "deprecated_in"

	IndexList = "index_list"
	IndexMap  = "index_map"

	IndexMessage = "index_message"
	InMessage    = "in_message"
)

// Size, string and regex overloads.
const (
	SizeString = "size_string"
	SizeBytes  = "size_bytes"
	SizeList   = "size_list"
	SizeMap    = "size_map"

	SizeStringInst = "string_size"
	SizeBytesInst  = "bytes_size"
	SizeListInst   = "list_size"
	SizeMapInst    = "map_size"

	ContainsString   = "contains_string"
	EndsWithString   = "ends_with_string"
	StartsWithString = "starts_with_string"
	MatchesString    = "matches_string"

	Contains   = "contains"
	EndsWith   = "ends_with"
	StartsWith = "starts_with"
	Matches    = "matches"

	// Iterator protocol overloads, bound on comprehension range values.
	Iterator = "iterator"
	HasNext  = "hasNext"
	Next     = "next"

	MatchString = "match_string"
)

// ext.strings extension overloads.
const (
	ExtFormatString = "format_string"
	ExtQuoteString  = "string_quote"
)

// Type-conversion overloads. The function name is always `<type>`, e.g.
// `int(x)`; the overload id disambiguates by source kind.
const (
	TypeConvertInt       = "type_convert_int"
	TypeConvertUint      = "type_convert_uint"
	TypeConvertDouble    = "type_convert_double"
	TypeConvertBool      = "type_convert_bool"
	TypeConvertString    = "type_convert_string"
	TypeConvertBytes     = "type_convert_bytes"
	TypeConvertTimestamp = "type_convert_timestamp"
	TypeConvertDuration  = "type_convert_duration"
	TypeConvertType      = "type_convert_type"
	TypeConvertDyn       = "type_convert_dyn"

	BoolToBool   = "bool_to_bool"
	BoolToString = "bool_to_string"

	BytesToBytes  = "bytes_to_bytes"
	BytesToString = "bytes_to_string"

	DoubleToDouble = "double_to_double"
	DoubleToInt    = "double_to_int"
	DoubleToString = "double_to_string"
	DoubleToUint   = "double_to_uint"

	IntToInt       = "int64_to_int64"
	IntToDouble    = "int64_to_double"
	IntToDuration  = "int64_to_duration"
	IntToString    = "int64_to_string"
	IntToTimestamp = "int64_to_timestamp"
	IntToUint      = "int64_to_uint64"

	StringToBool      = "string_to_bool"
	StringToBytes     = "string_to_bytes"
	StringToDouble    = "string_to_double"
	StringToDuration  = "string_to_duration"
	StringToInt       = "string_to_int64"
	StringToString    = "string_to_string"
	StringToTimestamp = "string_to_timestamp"
	StringToUint      = "string_to_uint64"

	UintToUint   = "uint64_to_uint64"
	UintToDouble = "uint64_to_double"
	UintToInt    = "uint64_to_int64"
	UintToString = "uint64_to_string"

	DurationToDuration = "duration_to_duration"
	DurationToString   = "duration_to_string"
	DurationToInt      = "duration_to_int64"

	TimestampToTimestamp = "timestamp_to_timestamp"
	TimestampToString    = "timestamp_to_string"
	TimestampToInt       = "timestamp_to_int64"

	// ToDyn wraps a value with the dyn() conversion, used to relax
	// static type inference; it is a macro-level name, not a runtime
	// dispatch target, recorded here because the checker's dyn()
	// handling shares this constant name with the overload table.
	ToDyn = "to_dyn"

	IsTypeConversionFunction = "is_type_conversion_function"
)

// Timestamp and duration accessor overloads. Each accessor has a
// "local" member overload plus a `*WithTz` variant taking a timezone
// string argument; durations only support the sub-day accessors.
const (
	TimeGetFullYear  = "timestamp_to_year"
	TimeGetMonth     = "timestamp_to_month"
	TimeGetDayOfYear = "timestamp_to_day_of_year"
	TimeGetDate      = "timestamp_to_day_of_month_1_based"
	TimeGetDayOfMonth = "timestamp_to_day_of_month_0_based"
	TimeGetDayOfWeek = "timestamp_to_day_of_week"
	TimeGetHours     = "timestamp_to_hours"
	TimeGetMinutes   = "timestamp_to_minutes"
	TimeGetSeconds   = "timestamp_to_seconds"
	TimeGetMilliseconds = "timestamp_to_milliseconds"

	TimestampToYear  = TimeGetFullYear
	TimestampToYearWithTz = "timestamp_to_year_with_tz"

	TimestampToMonth        = TimeGetMonth
	TimestampToMonthWithTz  = "timestamp_to_month_with_tz"

	TimestampToDayOfYear       = TimeGetDayOfYear
	TimestampToDayOfYearWithTz = "timestamp_to_day_of_year_with_tz"

	TimestampToDayOfMonthOneBased       = TimeGetDate
	TimestampToDayOfMonthOneBasedWithTz = "timestamp_to_day_of_month_1_based_with_tz"

	TimestampToDayOfMonthZeroBased       = TimeGetDayOfMonth
	TimestampToDayOfMonthZeroBasedWithTz = "timestamp_to_day_of_month_0_based_with_tz"

	TimestampToDayOfWeek       = TimeGetDayOfWeek
	TimestampToDayOfWeekWithTz = "timestamp_to_day_of_week_with_tz"

	TimestampToHours       = TimeGetHours
	TimestampToHoursWithTz = "timestamp_to_hours_with_tz"

	TimestampToMinutes       = TimeGetMinutes
	TimestampToMinutesWithTz = "timestamp_to_minutes_with_tz"

	TimestampToSeconds       = TimeGetSeconds
	TimestampToSecondsWithTz = "timestamp_to_seconds_with_tz"

	TimestampToMilliseconds       = TimeGetMilliseconds
	TimestampToMillisecondsWithTz = "timestamp_to_milliseconds_with_tz"

	DurationToHours        = "duration_to_hours"
	DurationToMinutes      = "duration_to_minutes"
	DurationToSeconds      = "duration_to_seconds"
	DurationToMilliseconds = "duration_to_milliseconds"
)

// IsTypeConversionOverload returns whether the overload id refers to a
// type-conversion function, used by the checker to apply conversion
// type-checking rules uniformly.
func IsTypeConversionOverload(overloadID string) bool {
	switch overloadID {
	case TypeConvertInt, TypeConvertUint, TypeConvertDouble, TypeConvertBool,
		TypeConvertString, TypeConvertBytes, TypeConvertTimestamp,
		TypeConvertDuration, TypeConvertType, TypeConvertDyn:
		return true
	}
	return false
}
