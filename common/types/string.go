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
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/taichimaeda/cel/common/types/ref"
)

// String type implementation which supports addition, comparison, matching,
// and size functions.
type String string

// Add implements traits.Adder.Add.
func (s String) Add(other ref.Val) ref.Val {
	otherString, ok := other.(String)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	return s + otherString
}

// Compare implements traits.Comparer.Compare.
func (s String) Compare(other ref.Val) ref.Val {
	otherString, ok := other.(String)
	if !ok {
		return MaybeNoSuchOverloadErr(other)
	}
	return Int(strings.Compare(string(s), string(otherString)))
}

// ConvertToNative implements ref.Val.ConvertToNative.
func (s String) ConvertToNative(typeDesc reflect.Type) (any, error) {
	switch typeDesc.Kind() {
	case reflect.String:
		return string(s), nil
	case reflect.Slice:
		if typeDesc.Elem().Kind() == reflect.Uint8 {
			return []byte(s), nil
		}
	case reflect.Interface:
		if reflect.TypeOf(s).Implements(typeDesc) {
			return s, nil
		}
	}
	return nil, fmt.Errorf(
		"unsupported native conversion from string to '%v'", typeDesc)
}

// ConvertToType implements ref.Val.ConvertToType.
func (s String) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case IntType:
		if n, err := strconv.ParseInt(string(s), 10, 64); err == nil {
			return Int(n)
		}
	case UintType:
		if n, err := strconv.ParseUint(string(s), 10, 64); err == nil {
			return Uint(n)
		}
	case DoubleType:
		if n, err := strconv.ParseFloat(string(s), 64); err == nil {
			return Double(n)
		}
	case BoolType:
		if b, err := strconv.ParseBool(string(s)); err == nil {
			return Bool(b)
		}
	case BytesType:
		return Bytes(s)
	case DurationType:
		if d, err := time.ParseDuration(string(s)); err == nil {
			return Duration{Duration: d}
		}
	case TimestampType:
		if t, err := time.Parse(time.RFC3339, string(s)); err == nil {
			return Timestamp{Time: t.UTC()}
		}
	case StringType:
		return s
	case TypeType:
		return StringType
	}
	return NewErr("type conversion error from '%s' to '%s'", StringType, typeVal)
}

// Equal implements ref.Val.Equal.
func (s String) Equal(other ref.Val) ref.Val {
	otherString, ok := other.(String)
	if !ok {
		return False
	}
	return Bool(s == otherString)
}

// IsZeroValue returns true if the string is empty.
func (s String) IsZeroValue() bool {
	return len(s) == 0
}

// Match implements traits.Matcher.Match.
func (s String) Match(pattern ref.Val) ref.Val {
	patternString, ok := pattern.(String)
	if !ok {
		return MaybeNoSuchOverloadErr(pattern)
	}
	matched, err := regexp.MatchString(string(patternString), string(s))
	if err != nil {
		return WrapErr(err)
	}
	return Bool(matched)
}

// Size implements traits.Sizer.Size, counting Unicode code points
// rather than bytes, so multi-byte characters count as one.
func (s String) Size() ref.Val {
	return Int(utf8.RuneCountInString(string(s)))
}

// Type implements ref.Val.Type.
func (s String) Type() ref.Type {
	return StringType
}

// Value implements ref.Val.Value.
func (s String) Value() any {
	return string(s)
}

// StringContains returns whether the receiver string contains the
// given substring, bound as the `contains` member overload.
func StringContains(s, substr ref.Val) ref.Val {
	lhs, ok := s.(String)
	if !ok {
		return MaybeNoSuchOverloadErr(s)
	}
	rhs, ok := substr.(String)
	if !ok {
		return MaybeNoSuchOverloadErr(substr)
	}
	return Bool(strings.Contains(string(lhs), string(rhs)))
}

// StringEndsWith returns whether the receiver string ends with the
// given suffix, bound as the `endsWith` member overload.
func StringEndsWith(s, suffix ref.Val) ref.Val {
	lhs, ok := s.(String)
	if !ok {
		return MaybeNoSuchOverloadErr(s)
	}
	rhs, ok := suffix.(String)
	if !ok {
		return MaybeNoSuchOverloadErr(suffix)
	}
	return Bool(strings.HasSuffix(string(lhs), string(rhs)))
}

// StringStartsWith returns whether the receiver string starts with the
// given prefix, bound as the `startsWith` member overload.
func StringStartsWith(s, prefix ref.Val) ref.Val {
	lhs, ok := s.(String)
	if !ok {
		return MaybeNoSuchOverloadErr(s)
	}
	rhs, ok := prefix.(String)
	if !ok {
		return MaybeNoSuchOverloadErr(prefix)
	}
	return Bool(strings.HasPrefix(string(lhs), string(rhs)))
}
