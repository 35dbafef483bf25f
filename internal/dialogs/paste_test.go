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
	"testing"

	"github.com/jcznk/PasteImagesAsWebP/internal/config"
	"github.com/jcznk/PasteImagesAsWebP/internal/domain"
)

func openPaste(t *testing.T, cfg config.Map, img domain.ImageDimensions) (*PasteEditor, *Session) {
	t.Helper()
	e, err := NewPasteEditor(cfg, img)
	if err != nil {
		t.Fatalf("NewPasteEditor: %v", err)
	}
	s, err := Open(e)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return e, s
}

func TestScaleGridLayout(t *testing.T) {
	e, _ := openPaste(t, config.Defaults(), domain.ImageDimensions{Width: 800, Height: 600})
	g := e.ScaleGrid()
	if g.Title() != "Original size: 800 x 600 px" {
		t.Fatalf("grid title = %q", g.Title())
	}
	if g.Columns() != 3 || g.Rows() != 2 {
		t.Fatalf("grid = %dx%d, want 3 columns 2 rows", g.Columns(), g.Rows())
	}
	want := []string{"0.125x", "0.25x", "0.5x", "1x", "1.5x", "2x"}
	buttons := g.Buttons()
	if len(buttons) != len(want) {
		t.Fatalf("buttons = %d, want %d", len(buttons), len(want))
	}
	for i, b := range buttons {
		if b.Title() != want[i] {
			t.Fatalf("button %d = %q, want %q", i, b.Title(), want[i])
		}
		row, col := g.Cell(i)
		if row != i/3 || col != i%3 {
			t.Fatalf("button %d at (%d,%d)", i, row, col)
		}
	}
	sections := e.Layout().Sections()
	if sections[len(sections)-1] != g {
		t.Fatalf("scale grid must be appended after base content")
	}
}

func TestScaleDerivation(t *testing.T) {
	img := domain.ImageDimensions{Width: 800, Height: 600}
	tests := []struct {
		name         string
		w, h         int
		button       int
		wantW, wantH int
	}{
		{"half", 800, 600, 2, 400, 300},
		{"double", 800, 600, 5, 1600, 1200},
		{"eighth", 800, 600, 0, 100, 75},
		{"width auto", 0, 600, 4, 0, 900},
		{"height auto", 10, 0, 1, 200, 0},
		{"both auto", 0, 0, 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			cfg[config.KeyImageWidth] = tt.w
			cfg[config.KeyImageHeight] = tt.h
			e, _ := openPaste(t, cfg, img)
			if !e.PressScale(tt.button) {
				t.Fatalf("PressScale(%d) = false", tt.button)
			}
			p := e.Base().Panel()
			if p.Width() != tt.wantW || p.Height() != tt.wantH {
				t.Fatalf("after %s: %dx%d, want %dx%d", ScaleFactorLabel(ScaleFactors[tt.button]), p.Width(), p.Height(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestScaleDoesNotCommit(t *testing.T) {
	cfg := config.Defaults()
	cfg[config.KeyImageWidth] = 800
	before := cfg.Clone()
	e, s := openPaste(t, cfg, domain.ImageDimensions{Width: 800, Height: 600})
	e.PressScale(2)
	if !cfg.Equal(before) {
		t.Fatalf("scale button changed configuration")
	}
	if _, err := s.Accept(); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if w, _ := cfg.Int(config.KeyImageWidth); w != 400 {
		t.Fatalf("image_width = %d, want 400", w)
	}
	if h, _ := cfg.Int(config.KeyImageHeight); h != 300 {
		t.Fatalf("image_height = %d, want 300", h)
	}
}

func TestScaleClampsToSliderLimit(t *testing.T) {
	cfg := config.Defaults()
	cfg[config.KeyImageWidth] = 1
	cfg[config.KeyImageHeight] = 1
	e, _ := openPaste(t, cfg, domain.ImageDimensions{Width: 1500, Height: 900})
	e.AdjustSliders(2)
	p := e.Base().Panel()
	if p.Width() != 1920 || p.Height() != 1800 {
		t.Fatalf("after 2x: %dx%d, want 1920x1800", p.Width(), p.Height())
	}
}

func TestScaleDimensionsRounds(t *testing.T) {
	w, h := ScaleDimensions(1, 1, domain.ImageDimensions{Width: 3, Height: 5}, 0.5)
	if w != 2 || h != 3 {
		t.Fatalf("ScaleDimensions = %d,%d, want 2,3", w, h)
	}
	if w, h := ScaleDimensions(0, 0, domain.ImageDimensions{Width: 3, Height: 5}, 2); w != 0 || h != 0 {
		t.Fatalf("auto dimensions changed: %d,%d", w, h)
	}
}

func TestPressScaleOutOfRange(t *testing.T) {
	e, _ := openPaste(t, config.Defaults(), domain.ImageDimensions{Width: 8, Height: 8})
	if e.PressScale(-1) || e.PressScale(len(ScaleFactors)) {
		t.Fatalf("out of range press must report false")
	}
}
