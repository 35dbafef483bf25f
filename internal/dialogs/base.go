/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package dialogs

import (
	"github.com/jcznk/PasteImagesAsWebP/internal/config"
	"github.com/jcznk/PasteImagesAsWebP/internal/widgets"
)

// Base is the content every settings dialog shares: the image parameter
// panel and the presets editor. Editors hold a *Base and call its phase
// methods explicitly before adding their own work.
type Base struct {
	cfg     config.Map
	panel   *widgets.ScaleParameterPanel
	presets *widgets.PresetsEditor
	layout  *Layout
}

// NewBase creates the shared controls. Slider limits come from
// max_image_width and max_image_height.
func NewBase(cfg config.Map) (*Base, error) {
	maxW, err := cfg.Int(config.KeyMaxImageWidth)
	if err != nil {
		return nil, err
	}
	maxH, err := cfg.Int(config.KeyMaxImageHeight)
	if err != nil {
		return nil, err
	}
	panel := widgets.NewScaleParameterPanel("Image parameters", maxW, maxH)
	return &Base{
		cfg:     cfg,
		panel:   panel,
		presets: widgets.NewPresetsEditor("Presets", panel),
	}, nil
}

func (b *Base) Config() config.Map { return b.cfg }
func (b *Base) Panel() *widgets.ScaleParameterPanel { return b.panel }
func (b *Base) Presets() *widgets.PresetsEditor { return b.presets }
func (b *Base) Layout() *Layout { return b.layout }

// BuildLayout creates the empty layout and its action bar.
func (b *Base) BuildLayout() { b.layout = NewLayout() }

// PopulateLayout inserts the parameter panel and the presets editor.
func (b *Base) PopulateLayout() { b.layout.Append(b.panel, b.presets) }

// WireInteractions binds confirm to commit, cancel to a plain close and
// focuses the confirm button.
func (b *Base) WireInteractions(commit func() (config.Map, error)) {
	b.layout.Actions().OnConfirm(commit)
	b.layout.Actions().OnCancel(func() {})
	b.layout.SetFocus(ActionConfirm)
}

// LoadInitialValues reads the sliders and the saved presets.
func (b *Base) LoadInitialValues() error {
	if err := b.panel.LoadFrom(b.cfg); err != nil {
		return err
	}
	presets, err := b.cfg.Presets(config.KeySavedPresets)
	if err != nil {
		return err
	}
	b.presets.AddItems(presets)
	return nil
}

// Commit writes the slider values, the preset list and extra into the
// configuration in one step and returns the updated map.
func (b *Base) Commit(extra config.Map) (config.Map, error) {
	updates := b.panel.ValuesAsMap()
	updates[config.KeySavedPresets] = config.EncodePresets(b.presets.AsList())
	updates.Update(extra)
	b.cfg.Update(updates)
	return b.cfg, nil
}
