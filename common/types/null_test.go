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
	"testing"
)

func TestNullConvertToNative(t *testing.T) {
	tests := []struct {
		goType  reflect.Type
		out     any
		wantErr bool
	}{
		{
			goType: reflect.TypeOf(NullValue),
			out:    NullValue,
		},
		{
			goType: reflect.TypeOf((*any)(nil)).Elem(),
			out:    NullValue,
		},
		{
			goType:  reflect.TypeOf(1),
			wantErr: true,
		},
	}

	for i, tst := range tests {
		tc := tst
		t.Run(fmt.Sprintf("[%d]", i), func(t *testing.T) {
			out, err := NullValue.ConvertToNative(tc.goType)
			if err != nil {
				if !tc.wantErr {
					t.Fatalf("NullValue.ConvertToNative(%v) failed: %v", tc.goType, err)
				}
				return
			}
			if tc.wantErr {
				t.Fatalf("NullValue.ConvertToNative(%v) succeeded, wanted error", tc.goType)
			}
			if out != tc.out {
				t.Errorf("NullValue.ConvertToNative(%v) got %v, wanted %v", tc.goType, out, tc.out)
			}
		})
	}
}

func TestNullConvertToType(t *testing.T) {
	if !NullValue.ConvertToType(NullType).Equal(NullValue).(Bool) {
		t.Error("Failed to get NullType of NullValue.")
	}

	if !NullValue.ConvertToType(StringType).Equal(String("null")).(Bool) {
		t.Error("Failed to get StringType of NullValue.")
	}
	if !NullValue.ConvertToType(TypeType).Equal(NullType).(Bool) {
		t.Error("Failed to convert NullValue to type.")
	}
}

func TestNullEqual(t *testing.T) {
	if !NullValue.Equal(NullValue).(Bool) {
		t.Error("NullValue does not equal to itself.")
	}
}

func TestNullIsZeroValue(t *testing.T) {
	if !NullValue.IsZeroValue() {
		t.Error("NullValue.IsZeroValue() returned false, wanted true")
	}
}

func TestNullType(t *testing.T) {
	if NullValue.Type() != NullType {
		t.Error("NullValue gets incorrect type.")
	}
}

func TestNullValue(t *testing.T) {
	if NullValue.Value() != nil {
		t.Error("NullValue gets incorrect value.")
	}
}
