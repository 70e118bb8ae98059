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

package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHelloWorldUpgradesToQuartile(t *testing.T) {
	sym, err := Encode([]byte("HELLO WORLD"), MinVersion, MaxVersion, Medium)
	require.NoError(t, err)
	assert.Equal(t, 1, sym.Version())
	assert.Equal(t, Quartile, sym.ECL())
}

func TestEncodeNumericStringUpgradesToQuartile(t *testing.T) {
	sym, err := Encode([]byte("1234567890"), MinVersion, MaxVersion, Low)
	require.NoError(t, err)
	assert.Equal(t, 1, sym.Version())
	assert.Equal(t, Quartile, sym.ECL())
}

func TestEncodeLongPayloadPicksVersionTen(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = 'A'
	}
	sym, err := Encode(data, MinVersion, MaxVersion, Low)
	require.NoError(t, err)
	assert.Equal(t, 10, sym.Version())
	assert.Equal(t, Low, sym.ECL())
}

func TestEncodeEmptyDataUpgradesToHigh(t *testing.T) {
	sym, err := Encode(nil, MinVersion, MaxVersion, Low)
	require.NoError(t, err)
	assert.Equal(t, 1, sym.Version())
	assert.Equal(t, High, sym.ECL())
}

func TestEncodeCapacityErrorWhenMaxVersionTooSmall(t *testing.T) {
	data := make([]byte, 255)
	for i := range data {
		data[i] = byte(i)
	}
	_, err := Encode(data, MinVersion, 5, High)
	require.Error(t, err)
	assert.IsType(t, &CapacityError{}, err)
}

func TestEncodeLargePayloadSucceedsAtHighEcl(t *testing.T) {
	data := make([]byte, 255)
	for i := range data {
		data[i] = byte(i)
	}
	sym, err := Encode(data, MinVersion, MaxVersion, High)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, sym.Version(), 10)
	assert.Equal(t, High, sym.ECL())
}

func TestEncodeRejectsInvalidVersionRange(t *testing.T) {
	_, err := Encode([]byte("x"), 0, 40, Low)
	require.Error(t, err)
	assert.IsType(t, &InvariantError{}, err)

	_, err = Encode([]byte("x"), 10, 5, Low)
	require.Error(t, err)
	assert.IsType(t, &InvariantError{}, err)

	_, err = Encode([]byte("x"), 1, 41, Low)
	require.Error(t, err)
}

func TestEncodeProducesSquareGridMatchingVersion(t *testing.T) {
	for _, text := range []string{"HELLO WORLD", "1234567890", ""} {
		sym, err := Encode([]byte(text), MinVersion, MaxVersion, Medium)
		require.NoError(t, err)
		assert.Equal(t, sym.version*4+17, sym.Size())
		for y := 0; y < sym.Size(); y++ {
			for x := 0; x < sym.Size(); x++ {
				_ = sym.Module(x, y) // must not panic for any in-range coordinate.
			}
		}
	}
}
