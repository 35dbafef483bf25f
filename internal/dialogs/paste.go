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
	"fmt"
	"math"
	"strconv"

	"github.com/jcznk/PasteImagesAsWebP/internal/config"
	"github.com/jcznk/PasteImagesAsWebP/internal/domain"
	"github.com/jcznk/PasteImagesAsWebP/internal/widgets"
)

// ScaleFactors are the multipliers offered by the paste dialog, in button order.
var ScaleFactors = []float64{1.0 / 8, 1.0 / 4, 1.0 / 2, 1, 1.5, 2}

const scaleGridColumns = 3

// ScaleDimensions derives new target dimensions from the original image
// size. A zero (auto) dimension stays zero; a non-zero one becomes
// round(original * factor).
func ScaleDimensions(width, height int, original domain.ImageDimensions, factor float64) (int, int) {
	if width > 0 {
		width = int(math.Round(float64(original.Width) * factor))
	}
	if height > 0 {
		height = int(math.Round(float64(original.Height) * factor))
	}
	return width, height
}

// ScaleFactorLabel renders a factor the way the buttons show it, e.g. "0.125x".
func ScaleFactorLabel(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + "x"
}

// PasteEditor is shown when an image is pasted. On top of the shared content
// it offers a grid of scale buttons relative to the pasted image.
type PasteEditor struct {
	base  *Base
	image domain.ImageDimensions
	grid  *widgets.ButtonGrid
}

func NewPasteEditor(cfg config.Map, image domain.ImageDimensions) (*PasteEditor, error) {
	base, err := NewBase(cfg)
	if err != nil {
		return nil, err
	}
	e := &PasteEditor{base: base, image: image}
	buttons := make([]*widgets.Button, 0, len(ScaleFactors))
	for _, f := range ScaleFactors {
		f := f // per-iteration copy; go.mod targets go 1.21 loop semantics
		buttons = append(buttons, widgets.NewButton(ScaleFactorLabel(f), func() { e.AdjustSliders(f) }))
	}
	e.grid = widgets.NewButtonGrid(fmt.Sprintf("Original size: %s", image), scaleGridColumns, buttons...)
	return e, nil
}

func (e *PasteEditor) Name() string { return "paste" }
func (e *PasteEditor) Layout() *Layout { return e.base.Layout() }
func (e *PasteEditor) Base() *Base { return e.base }
func (e *PasteEditor) Image() domain.ImageDimensions { return e.image }
func (e *PasteEditor) ScaleGrid() *widgets.ButtonGrid { return e.grid }

func (e *PasteEditor) BuildLayout() { e.base.BuildLayout() }

func (e *PasteEditor) PopulateLayout() {
	e.base.PopulateLayout()
	e.base.Layout().Append(e.grid)
}

func (e *PasteEditor) WireInteractions() { e.base.WireInteractions(e.Commit) }

func (e *PasteEditor) LoadInitialValues() error { return e.base.LoadInitialValues() }

func (e *PasteEditor) Commit() (config.Map, error) { return e.base.Commit(nil) }

// AdjustSliders applies factor to the panel's non-zero dimensions. Results
// above a slider's limit are clamped by the slider.
func (e *PasteEditor) AdjustSliders(factor float64) {
	panel := e.base.Panel()
	w, h := ScaleDimensions(panel.Width(), panel.Height(), e.image, factor)
	panel.SetWidth(w)
	panel.SetHeight(h)
}

// PressScale clicks the button for ScaleFactors[i].
func (e *PasteEditor) PressScale(i int) bool {
	buttons := e.grid.Buttons()
	if i < 0 || i >= len(buttons) {
		return false
	}
	buttons[i].Click()
	return true
}
