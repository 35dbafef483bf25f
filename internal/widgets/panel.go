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

	"github.com/jcznk/PasteImagesAsWebP/internal/config"
	"github.com/jcznk/PasteImagesAsWebP/internal/domain"
)

const sideTooltip = "Desired %s.\n" +
	"If either of the width or height parameters is 0,\n" +
	"the value will be calculated preserving the aspect-ratio.\n" +
	"If both values are 0, no resizing is performed (not recommended)."

const qualityTooltip = "Specify the compression factor between 0 and 100.\n" +
	"A small factor produces a smaller file with lower quality.\n" +
	"Best quality is achieved by using a value of 100."

// ScaleParameterPanel owns the width, height and quality sliders and maps
// them to and from the image_* configuration keys.
type ScaleParameterPanel struct {
	title   string
	width   *Slider
	height  *Slider
	quality *Slider
}

func NewScaleParameterPanel(title string, maxWidth, maxHeight int) *ScaleParameterPanel {
	p := &ScaleParameterPanel{
		title:   title,
		width:   NewSlider("Width", "px", maxWidth),
		height:  NewSlider("Height", "px", maxHeight),
		quality: NewSlider("Quality", "%", config.MaxQuality),
	}
	p.width.SetTooltip(fmt.Sprintf(sideTooltip, "width"))
	p.height.SetTooltip(fmt.Sprintf(sideTooltip, "height"))
	p.quality.SetTooltip(qualityTooltip)
	return p
}

func (p *ScaleParameterPanel) Title() string { return p.title }

// Sliders returns width, height and quality in display order.
func (p *ScaleParameterPanel) Sliders() []*Slider {
	return []*Slider{p.width, p.height, p.quality}
}

func (p *ScaleParameterPanel) Width() int { return p.width.Value() }
func (p *ScaleParameterPanel) SetWidth(v int) { p.width.SetValue(v) }
func (p *ScaleParameterPanel) Height() int { return p.height.Value() }
func (p *ScaleParameterPanel) SetHeight(v int) { p.height.SetValue(v) }
func (p *ScaleParameterPanel) Quality() int { return p.quality.Value() }

// Params returns the current slider values.
func (p *ScaleParameterPanel) Params() domain.ScaleParams {
	return domain.ScaleParams{Width: p.Width(), Height: p.Height(), Quality: p.Quality()}
}

// ApplyParams sets all three sliders; each value is clamped by its slider.
func (p *ScaleParameterPanel) ApplyParams(sp domain.ScaleParams) {
	p.width.SetValue(sp.Width)
	p.height.SetValue(sp.Height)
	p.quality.SetValue(sp.Quality)
}

// ValuesAsMap returns {image_width, image_height, image_quality}.
func (p *ScaleParameterPanel) ValuesAsMap() config.Map {
	return config.Map{
		config.KeyImageWidth:   p.Width(),
		config.KeyImageHeight:  p.Height(),
		config.KeyImageQuality: p.Quality(),
	}
}

// LoadFrom reads the three image_* keys from m. Nothing is changed unless
// all three are present and integral.
func (p *ScaleParameterPanel) LoadFrom(m config.Map) error {
	w, err := m.Int(config.KeyImageWidth)
	if err != nil {
		return err
	}
	h, err := m.Int(config.KeyImageHeight)
	if err != nil {
		return err
	}
	q, err := m.Int(config.KeyImageQuality)
	if err != nil {
		return err
	}
	p.ApplyParams(domain.ScaleParams{Width: w, Height: h, Quality: q})
	return nil
}
