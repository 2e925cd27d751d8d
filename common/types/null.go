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

// Null type implementation, representing CEL's null_type singleton value.
type Null struct{}

// NullValue is the sole value inhabiting NullType.
var NullValue = Null{}

// ConvertToNative implements ref.Val.ConvertToNative.
func (n Null) ConvertToNative(typeDesc reflect.Type) (any, error) {
	switch typeDesc.Kind() {
	case reflect.Interface:
		if reflect.TypeOf(n).Implements(typeDesc) || typeDesc.NumMethod() == 0 {
			return n, nil
		}
	case reflect.Ptr, reflect.Struct:
		if reflect.TypeOf(n).AssignableTo(typeDesc) {
			return n, nil
		}
	}
	return nil, fmt.Errorf("type conversion error from 'null_type' to '%v'", typeDesc)
}

// ConvertToType implements ref.Val.ConvertToType.
func (n Null) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal {
	case StringType:
		return String("null")
	case NullType:
		return n
	case TypeType:
		return NullType
	}
	return NewErr("type conversion error from '%s' to '%s'", NullType, typeVal)
}

// Equal implements ref.Val.Equal.
func (n Null) Equal(other ref.Val) ref.Val {
	return Bool(NullType == other.Type())
}

// IsZeroValue returns true, since null is its own zero value.
func (n Null) IsZeroValue() bool {
	return true
}

// Type implements ref.Val.Type.
func (n Null) Type() ref.Type {
	return NullType
}

// Value implements ref.Val.Value.
func (n Null) Value() any {
	return nil
}
