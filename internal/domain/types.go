/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package domain holds the plain value types shared by the settings dialogs,
// the configuration map and the note collection.
package domain

import (
	"fmt"
	"sort"
)

// ImageDimensions describes the source image being pasted. It is supplied by
// the image source before a paste dialog is constructed and never mutated.
type ImageDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (d ImageDimensions) String() string { return fmt.Sprintf("%d x %d px", d.Width, d.Height) }

// ScaleParams are the three tunable conversion parameters. A zero Width or
// Height means "derive from the aspect ratio".
type ScaleParams struct {
	Width   int `json:"image_width" yaml:"image_width"`
	Height  int `json:"image_height" yaml:"image_height"`
	Quality int `json:"image_quality" yaml:"image_quality"`
}

// Preset is a named snapshot of ScaleParams. Names need not be unique;
// presets are addressed by list position.
type Preset struct {
	Name   string      `json:"name" yaml:"name"`
	Params ScaleParams `json:"params" yaml:"params"`
}

// Field is one named text field of a note.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Note is an opaque string-keyed record from the host collection.
type Note struct {
	ID     int64   `json:"id"`
	Fields []Field `json:"fields"`
}

// Keys returns the note's field names in field order.
func (n Note) Keys() []string {
	keys := make([]string, 0, len(n.Fields))
	for _, f := range n.Fields {
		keys = append(keys, f.Name)
	}
	return keys
}

// FieldNames returns the sorted union of field names across notes.
func FieldNames(notes []Note) []string {
	seen := make(map[string]struct{})
	for _, n := range notes {
		for _, f := range n.Fields {
			seen[f.Name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
