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
	"strings"
	"unicode/utf8"
)

// Source interface for filter source contents.
type Source interface {
	// Content returns the source content represented as a string.
	Content() string

	// Description gives a brief description of the source.
	Description() string

	// LineOffsets gives the character offsets at which each line begins.
	LineOffsets() []int32

	// LocationOffset translates a Location to an offset.
	LocationOffset(location Location) (int32, bool)

	// OffsetLocation translates a character offset to a Location, or false if the conversion
	// was not feasible.
	OffsetLocation(offset int32) (Location, bool)

	// Snippet returns a line of content and whether the line was found.
	Snippet(line int) (string, bool)
}

// textSource implements the Source interface over a plain string of text.
type textSource struct {
	content     string
	description string
	lineOffsets []int32
}

var _ Source = &textSource{}

// NewTextSource creates a new Source from the given contents, using the contents themselves
// as the source description.
func NewTextSource(text string) Source {
	return NewStringSource(text, "<input>")
}

// NewStringSource creates a new Source from the given contents and description.
func NewStringSource(contents string, description string) Source {
	return &textSource{
		content:     contents,
		description: description,
		lineOffsets: computeLineOffsets(contents),
	}
}

func computeLineOffsets(contents string) []int32 {
	lines := strings.Split(contents, "\n")
	offsets := make([]int32, len(lines))
	var offset int32
	for i, line := range lines {
		offset += int32(utf8.RuneCountInString(line)) + 1
		offsets[i] = offset
	}
	return offsets
}

func (s *textSource) Content() string {
	return s.content
}

func (s *textSource) Description() string {
	return s.description
}

func (s *textSource) LineOffsets() []int32 {
	return s.lineOffsets
}

func (s *textSource) LocationOffset(location Location) (int32, bool) {
	if location.Line() == 1 {
		return int32(location.Column()), true
	}
	if location.Line() < 1 || location.Line()-2 >= len(s.lineOffsets) {
		return -1, false
	}
	return s.lineOffsets[location.Line()-2] + int32(location.Column()), true
}

func (s *textSource) OffsetLocation(offset int32) (Location, bool) {
	line := 1
	col := int(offset)
	for _, lineStart := range s.lineOffsets {
		if offset < lineStart {
			break
		}
		line++
		col = int(offset - lineStart)
	}
	return NewLocation(line, col), true
}

func (s *textSource) Snippet(line int) (string, bool) {
	lines := strings.Split(s.content, "\n")
	if line < 1 || line > len(lines) {
		return "", false
	}
	return lines[line-1], true
}
