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
	"log/slog"

	"github.com/jcznk/PasteImagesAsWebP/internal/config"
	applog "github.com/jcznk/PasteImagesAsWebP/internal/log"
	"github.com/jcznk/PasteImagesAsWebP/internal/widgets"
)

// behaviorToggle binds a checkbox to a boolean configuration key.
type behaviorToggle struct {
	key string
	box *widgets.Checkbox
}

// GlobalSettingsEditor edits the add-on wide behavior on top of the default
// image parameters.
type GlobalSettingsEditor struct {
	base     *Base
	show     *widgets.Choice[config.ShowOption]
	pattern  *widgets.Choice[config.FilenamePattern]
	toggles  []behaviorToggle
	behavior *widgets.Group
}

func NewGlobalSettingsEditor(cfg config.Map) (*GlobalSettingsEditor, error) {
	base, err := NewBase(cfg)
	if err != nil {
		return nil, err
	}
	e := &GlobalSettingsEditor{
		base:    base,
		show:    widgets.NewChoice("Show this dialog", config.ShowOptions()),
		pattern: widgets.NewChoice("Filename pattern", config.FilenamePatterns()),
		toggles: []behaviorToggle{
			{key: config.KeyDragAndDrop, box: widgets.NewCheckbox("Convert images on drag and drop")},
			{key: config.KeyCopyPaste, box: widgets.NewCheckbox("Convert images on copy-paste")},
			{key: config.KeyAvoidUpscaling, box: widgets.NewCheckbox("Avoid upscaling")},
			{key: config.KeyPreserveOriginalFilenames, box: widgets.NewCheckbox("Preserve original filenames, if available")},
		},
	}
	e.behavior = widgets.NewGroup("Behavior", e.show, e.pattern)
	for _, t := range e.toggles {
		e.behavior.Add(t.box)
	}
	return e, nil
}

func (e *GlobalSettingsEditor) Name() string { return "global" }
func (e *GlobalSettingsEditor) Layout() *Layout { return e.base.Layout() }
func (e *GlobalSettingsEditor) Base() *Base { return e.base }
func (e *GlobalSettingsEditor) ShowChoice() *widgets.Choice[config.ShowOption] { return e.show }
func (e *GlobalSettingsEditor) PatternChoice() *widgets.Choice[config.FilenamePattern] { return e.pattern }

// Toggle returns the checkbox bound to key, or nil.
func (e *GlobalSettingsEditor) Toggle(key string) *widgets.Checkbox {
	for _, t := range e.toggles {
		if t.key == key {
			return t.box
		}
	}
	return nil
}

func (e *GlobalSettingsEditor) BuildLayout() { e.base.BuildLayout() }

func (e *GlobalSettingsEditor) PopulateLayout() {
	e.base.PopulateLayout()
	e.base.Layout().Append(e.behavior)
}

func (e *GlobalSettingsEditor) WireInteractions() { e.base.WireInteractions(e.Commit) }

// LoadInitialValues restores both choices and every toggle. Stored values
// outside the enumerations fall back to the first option.
func (e *GlobalSettingsEditor) LoadInitialValues() error {
	cfg := e.base.Config()
	lg := applog.WithOperation(applog.WithComponent("dialogs"), "global_load")

	showValue, err := cfg.Text(config.KeyShowSettings)
	if err != nil {
		return err
	}
	patternNum, err := cfg.Int(config.KeyFilenamePatternNum)
	if err != nil {
		return err
	}
	states := make([]bool, len(e.toggles))
	for i, t := range e.toggles {
		if states[i], err = cfg.Bool(t.key); err != nil {
			return err
		}
	}
	if err := e.base.LoadInitialValues(); err != nil {
		return err
	}

	show, err := config.ParseShowOption(showValue)
	if err != nil {
		lg.Warn("unknown show option", slog.String("value", showValue))
	}
	e.show.Select(show)
	pattern, err := config.FilenamePatternAt(patternNum)
	if err != nil {
		lg.Warn("unknown filename pattern", slog.Int("index", patternNum))
	}
	e.pattern.Select(pattern)
	for i, t := range e.toggles {
		t.box.SetChecked(states[i])
	}
	return nil
}

func (e *GlobalSettingsEditor) Commit() (config.Map, error) {
	extra := config.Map{
		config.KeyShowSettings:       e.show.Selected().Value(),
		config.KeyFilenamePatternNum: e.pattern.Selected().Index(),
	}
	for _, t := range e.toggles {
		extra[t.key] = t.box.IsChecked()
	}
	return e.base.Commit(extra)
}
