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

package raster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qrencode "github.com/qrkit/qrencode"
)

func testSymbol(t *testing.T) *qrencode.Symbol {
	t.Helper()
	sym, err := qrencode.Encode([]byte("HELLO WORLD"), qrencode.MinVersion, qrencode.MaxVersion, qrencode.Medium)
	require.NoError(t, err)
	return sym
}

func TestPNGDimensionsMatchScale(t *testing.T) {
	sym := testSymbol(t)
	img, err := PNG(sym, 400, 4)
	require.NoError(t, err)

	bounds := img.Bounds()
	scale := scaleFor(400, sym.Size())
	wantDim := (sym.Size() + 8) * scale
	assert.Equal(t, wantDim, bounds.Dx())
	assert.Equal(t, wantDim, bounds.Dy())
}

func TestPNGRejectsNegativeBorder(t *testing.T) {
	sym := testSymbol(t)
	_, err := PNG(sym, 400, -1)
	require.Error(t, err)
	assert.IsType(t, &qrencode.InvariantError{}, err)
}

func TestPNGScaleNeverBelowMinScale(t *testing.T) {
	sym := testSymbol(t)
	img, err := PNG(sym, 1, 4) // absurdly small target.
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, (sym.Size()+8)*MinScale, bounds.Dx())
}

func TestEncodePNGWritesValidPNGHeader(t *testing.T) {
	sym := testSymbol(t)
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, sym, 200, 4))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestSVGIsWellFormed(t *testing.T) {
	sym := testSymbol(t)
	out, err := SVG(sym, 4, true)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "M")
}

func TestSVGWithoutDocType(t *testing.T) {
	sym := testSymbol(t)
	out, err := SVG(sym, 4, false)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(out, "<?xml"))
	assert.True(t, strings.HasPrefix(out, "<svg"))
}

func TestSVGRejectsNegativeBorder(t *testing.T) {
	sym := testSymbol(t)
	_, err := SVG(sym, -1, false)
	require.Error(t, err)
}

func TestHalfBlockProducesOneLinePerTwoModuleRows(t *testing.T) {
	sym := testSymbol(t)
	var buf bytes.Buffer
	require.NoError(t, HalfBlock(&buf, sym, 0))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, (sym.Size()+1)/2, len(lines))
}

func TestHalfBlockRejectsNegativeBorder(t *testing.T) {
	sym := testSymbol(t)
	var buf bytes.Buffer
	err := HalfBlock(&buf, sym, -1)
	require.Error(t, err)
}
