/*
 * Copyright © 2024 The qrencode Authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package raster turns a finished qrcode.Symbol into an image, SVG
// document, or terminal rendering.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/qrkit/qrencode"
)

// MinScale is the smallest module scale PNG will ever use, regardless
// of the requested resolution: below this a symbol is unreadable by
// most scanners.
const MinScale = 10

// scaleFor picks the per-module pixel scale targetResolution/(size+4),
// rounded down and clamped to at least MinScale. The divisor is
// fixed at size+4 regardless of the requested border, matching the
// reference rasterization contract: only the final image dimension
// (size+2*border)*scale grows with a non-default border, not the
// density the scale is chosen at.
func scaleFor(targetResolution, size int) int {
	s := targetResolution / (size + 4)
	if s < MinScale {
		s = MinScale
	}
	return s
}

// PNG renders sym as a paletted (1-bit) PNG image surrounded by a
// border-module quiet zone. The image is (size+2*border)*scale pixels
// square, with scale chosen by scaleFor; it can be larger or smaller
// than targetResolution.
func PNG(sym *qrcode.Symbol, targetResolution, border int) (image.Image, error) {
	if border < 0 {
		return nil, &qrcode.InvariantError{Msg: "raster: border must be non-negative"}
	}

	size := sym.Size()
	scale := scaleFor(targetResolution, size)
	dim := (size + 2*border) * scale

	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{
		color.White,
		color.Black,
	})
	for i := range img.Pix {
		img.Pix[i] = 0
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !sym.Module(x, y) {
				continue
			}
			startX := (x + border) * scale
			startY := (y + border) * scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetColorIndex(startX+dx, startY+dy, 1)
				}
			}
		}
	}

	return img, nil
}

// EncodePNG renders sym and writes it to w as a PNG file.
func EncodePNG(w io.Writer, sym *qrcode.Symbol, targetResolution, border int) error {
	img, err := PNG(sym, targetResolution, border)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
