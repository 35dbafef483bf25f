/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
)

// ErrUnknownOption is returned when a stored value matches no enumerated option.
var ErrUnknownOption = errors.New("unknown option")

// ShowOption is the closed set of "show this dialog" choices. The stored
// value is the option's Value; the UI shows its Label.
type ShowOption int

const (
	ShowAlways ShowOption = iota
	ShowMenus
	ShowDragAndDrop
	ShowNever
)

var showOptionValues = [...]string{"always", "menus", "drag_and_drop", "never"}
var showOptionLabels = [...]string{"Always", "Toolbar and menus", "On drag and drop", "Never"}

// ShowOptions lists every option in display order.
func ShowOptions() []ShowOption {
	return []ShowOption{ShowAlways, ShowMenus, ShowDragAndDrop, ShowNever}
}

func (o ShowOption) valid() bool { return o >= ShowAlways && o <= ShowNever }

func (o ShowOption) Value() string {
	if !o.valid() {
		return ""
	}
	return showOptionValues[o]
}

func (o ShowOption) Label() string {
	if !o.valid() {
		return ""
	}
	return showOptionLabels[o]
}

func (o ShowOption) String() string { return o.Value() }

// ParseShowOption maps a stored value back to its option.
func ParseShowOption(v string) (ShowOption, error) {
	for _, o := range ShowOptions() {
		if o.Value() == v {
			return o, nil
		}
	}
	return ShowAlways, fmt.Errorf("%w: show_settings %q", ErrUnknownOption, v)
}

// FilenamePattern is the closed set of naming patterns for converted images.
// The configuration stores the pattern's index.
type FilenamePattern int

const (
	FilenamePaste FilenamePattern = iota
	FilenameSortField
	FilenameCurrentField
)

var filenamePatterns = [...]string{
	"paste_{date_time}",
	"{sort_field}_{date_time}",
	"{current_field}_{date_time}",
}

// FilenamePatterns lists every pattern in display order.
func FilenamePatterns() []FilenamePattern {
	return []FilenamePattern{FilenamePaste, FilenameSortField, FilenameCurrentField}
}

func (p FilenamePattern) valid() bool { return p >= FilenamePaste && p <= FilenameCurrentField }

// Pattern returns the template text with its placeholders.
func (p FilenamePattern) Pattern() string {
	if !p.valid() {
		return ""
	}
	return filenamePatterns[p]
}

func (p FilenamePattern) Label() string { return p.Pattern() }

// Index is the value persisted under filename_pattern_num.
func (p FilenamePattern) Index() int { return int(p) }

func (p FilenamePattern) String() string { return p.Pattern() }

// FilenamePatternAt returns the pattern stored as index i.
func FilenamePatternAt(i int) (FilenamePattern, error) {
	p := FilenamePattern(i)
	if !p.valid() {
		return FilenamePaste, fmt.Errorf("%w: filename_pattern_num %d", ErrUnknownOption, i)
	}
	return p, nil
}
