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

// Slider is a bounded integer parameter with a title, unit and tooltip.
// Its value always satisfies 0 <= value <= limit.
type Slider struct {
	title     string
	unit      string
	tooltip   string
	limit     int
	value     int
	listeners []func(int)
}

// NewSlider returns a slider at 0. A negative limit is treated as 0.
func NewSlider(title, unit string, limit int) *Slider {
	if limit < 0 {
		limit = 0
	}
	return &Slider{title: title, unit: unit, limit: limit}
}

func (s *Slider) Title() string { return s.title }
func (s *Slider) Unit() string { return s.unit }
func (s *Slider) Tooltip() string { return s.tooltip }
func (s *Slider) Limit() int { return s.limit }
func (s *Slider) Value() int { return s.value }

func (s *Slider) SetTooltip(text string) { s.tooltip = text }

// SetValue stores v clamped to [0, limit].
func (s *Slider) SetValue(v int) {
	v = clamp(v, 0, s.limit)
	if v == s.value {
		return
	}
	s.value = v
	for _, fn := range s.listeners {
		fn(v)
	}
}

// OnChanged registers fn to run after every value change.
func (s *Slider) OnChanged(fn func(int)) { s.listeners = append(s.listeners, fn) }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
