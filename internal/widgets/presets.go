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

import (
	"fmt"
	"strings"

	"github.com/jcznk/PasteImagesAsWebP/internal/domain"
)

// PresetsEditor keeps an ordered list of named ScaleParams snapshots bound to
// a live ScaleParameterPanel. Presets are addressed by position, so
// duplicate names are fine.
type PresetsEditor struct {
	title     string
	panel     *ScaleParameterPanel
	items     []domain.Preset
	listeners []func()
}

func NewPresetsEditor(title string, panel *ScaleParameterPanel) *PresetsEditor {
	return &PresetsEditor{title: title, panel: panel}
}

func (e *PresetsEditor) Title() string { return e.title }
func (e *PresetsEditor) Len() int { return len(e.items) }

// AddItems appends records in the given order.
func (e *PresetsEditor) AddItems(records []domain.Preset) {
	if len(records) == 0 {
		return
	}
	e.items = append(e.items, records...)
	e.changed()
}

// AsList returns a copy of the presets in display order.
func (e *PresetsEditor) AsList() []domain.Preset {
	return append([]domain.Preset{}, e.items...)
}

// Add snapshots the panel's current values under name. A blank name gets a
// positional default.
func (e *PresetsEditor) Add(name string) domain.Preset {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Preset %d", len(e.items)+1)
	}
	p := domain.Preset{Name: name, Params: e.panel.Params()}
	e.items = append(e.items, p)
	e.changed()
	return p
}

// Apply copies preset i into the panel. It does not commit anything and
// reports false for an index outside the list.
func (e *PresetsEditor) Apply(i int) bool {
	if i < 0 || i >= len(e.items) {
		return false
	}
	e.panel.ApplyParams(e.items[i].Params)
	return true
}

// Remove deletes preset i and reports whether it existed.
func (e *PresetsEditor) Remove(i int) bool {
	if i < 0 || i >= len(e.items) {
		return false
	}
	e.items = append(e.items[:i], e.items[i+1:]...)
	e.changed()
	return true
}

// OnChanged registers fn to run after the list changes.
func (e *PresetsEditor) OnChanged(fn func()) { e.listeners = append(e.listeners, fn) }

func (e *PresetsEditor) changed() {
	for _, fn := range e.listeners {
		fn()
	}
}
