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

package common

import (
	"fmt"
)

// Errors is the main error collector mechanism, bound to the source that produced them so
// that diagnostics can be rendered with a snippet of the offending line.
type Errors struct {
	source            Source
	errors            []Error
	maxErrorsToReport int
}

// NewErrors returns a new Errors instance bound to the given source.
func NewErrors(source Source) *Errors {
	return &Errors{
		source:            source,
		errors:            []Error{},
		maxErrorsToReport: 100,
	}
}

// ReportError captures an error report from the caller.
func (e *Errors) ReportError(l Location, format string, args ...interface{}) {
	e.reportErrorInstance(Error{
		Location: l,
		Message:  fmt.Sprintf(format, args...),
	})
}

// GetErrors returns all the errors that are accumulated so far.
func (e *Errors) GetErrors() []Error {
	return e.errors[:]
}

func (e *Errors) reportErrorInstance(err Error) {
	e.errors = append(e.errors, err)
}

// Append adds the given errors to the current set, retaining the bound source.
func (e *Errors) Append(errs []Error) *Errors {
	return &Errors{
		source:            e.source,
		errors:            append(e.errors, errs...),
		maxErrorsToReport: e.maxErrorsToReport,
	}
}

// ToDisplayString renders the accumulated errors, truncating the output once
// maxErrorsToReport is exceeded.
func (e *Errors) ToDisplayString() string {
	result := ""
	errorCap := len(e.errors)
	if errorCap > e.maxErrorsToReport {
		errorCap = e.maxErrorsToReport
	}
	for i := 0; i < errorCap; i++ {
		if i > 0 {
			result += "\n"
		}
		result += e.errors[i].ToDisplayString(e.source)
	}
	if len(e.errors) > e.maxErrorsToReport {
		extra := len(e.errors) - e.maxErrorsToReport
		plural := "s"
		if extra == 1 {
			plural = ""
		}
		result += fmt.Sprintf("\n%d more error%s were truncated", extra, plural)
	}
	return result
}
