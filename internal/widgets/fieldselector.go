/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package widgets

// FieldSelector is a checkable list of note field names. When unchecked the
// bulk conversion applies to every field; when checked only the selected
// fields are converted. Selected is always a subset of available.
type FieldSelector struct {
	title     string
	checked   bool
	available []string
	selected  map[string]bool
}

func NewFieldSelector(title string) *FieldSelector {
	return &FieldSelector{title: title, selected: make(map[string]bool)}
}

func (s *FieldSelector) Title() string { return s.title }

// AddFields appends names to the available list, skipping ones already present.
func (s *FieldSelector) AddFields(names []string) {
	for _, n := range names {
		if !s.has(n) {
			s.available = append(s.available, n)
		}
	}
}

// SetFields pre-checks a previously saved subset. Names no longer available
// are ignored. A non-empty saved list also enables the restriction.
func (s *FieldSelector) SetFields(saved []string) {
	s.selected = make(map[string]bool)
	for _, n := range saved {
		if s.has(n) {
			s.selected[n] = true
		}
	}
	s.checked = len(saved) > 0
}

// SetSelected checks or unchecks one field; unknown names are ignored.
func (s *FieldSelector) SetSelected(name string, on bool) bool {
	if !s.has(name) {
		return false
	}
	if on {
		s.selected[name] = true
	} else {
		delete(s.selected, name)
	}
	return true
}

func (s *FieldSelector) IsSelected(name string) bool { return s.selected[name] }

// Available returns the field names in display order.
func (s *FieldSelector) Available() []string { return append([]string(nil), s.available...) }

// SelectedFields returns the checked names in display order.
func (s *FieldSelector) SelectedFields() []string {
	out := make([]string, 0, len(s.selected))
	for _, n := range s.available {
		if s.selected[n] {
			out = append(out, n)
		}
	}
	return out
}

// IsChecked reports whether the field restriction is enabled.
func (s *FieldSelector) IsChecked() bool { return s.checked }

func (s *FieldSelector) SetChecked(v bool) { s.checked = v }

func (s *FieldSelector) has(name string) bool {
	for _, n := range s.available {
		if n == name {
			return true
		}
	}
	return false
}
