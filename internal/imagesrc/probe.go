/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package imagesrc reads the dimensions of a source image without decoding
// its pixels, and computes the size a conversion would produce.
package imagesrc

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/jcznk/PasteImagesAsWebP/internal/domain"
)

// ErrEmptyImage is returned for images with a zero width or height.
var ErrEmptyImage = errors.New("image has no pixels")

// Info is what a probe learns about an image.
type Info struct {
	Format string
	Size   domain.ImageDimensions
}

// Probe reads the image header from r.
func Probe(r io.Reader) (Info, error) {
	cfg, format, err := image.DecodeConfig(bufio.NewReader(r))
	if err != nil {
		return Info{}, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Info{}, ErrEmptyImage
	}
	return Info{Format: format, Size: domain.ImageDimensions{Width: cfg.Width, Height: cfg.Height}}, nil
}

// ProbeFile opens path and probes it.
func ProbeFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer func() { _ = f.Close() }()
	info, err := Probe(f)
	if err != nil {
		return Info{}, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}

// TargetSize returns the size an image of orig would be converted to under
// p. A zero width or height follows the aspect ratio; both zero keeps the
// original size. With avoidUpscaling the result never exceeds orig.
func TargetSize(orig domain.ImageDimensions, p domain.ScaleParams, avoidUpscaling bool) domain.ImageDimensions {
	if orig.Width <= 0 || orig.Height <= 0 {
		return domain.ImageDimensions{}
	}
	ratio := float64(orig.Width) / float64(orig.Height)
	w, h := p.Width, p.Height
	switch {
	case w == 0 && h == 0:
		return orig
	case w == 0:
		w = int(math.Round(float64(h) * ratio))
	case h == 0:
		h = int(math.Round(float64(w) / ratio))
	}
	if avoidUpscaling && (w > orig.Width || h > orig.Height) {
		return orig
	}
	return domain.ImageDimensions{Width: w, Height: h}
}
