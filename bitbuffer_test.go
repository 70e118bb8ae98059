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

func TestBitBufferAppendBits(t *testing.T) {
	var bb bitBuffer

	require.NoError(t, bb.appendBits(0, 0))
	assert.Equal(t, 0, bb.len())

	require.NoError(t, bb.appendBits(1, 1))
	assert.Equal(t, []byte{1}, []byte(bb))

	require.NoError(t, bb.appendBits(0, 1))
	assert.Equal(t, []byte{1, 0}, []byte(bb))

	require.NoError(t, bb.appendBits(5, 3))
	assert.Equal(t, []byte{1, 0, 1, 0, 1}, []byte(bb))

	require.NoError(t, bb.appendBits(6, 3))
	assert.Equal(t, []byte{1, 0, 1, 0, 1, 1, 1, 0}, []byte(bb))
}

func TestBitBufferAppendBitsRejectsOutOfRange(t *testing.T) {
	var bb bitBuffer

	err := bb.appendBits(-1, 3)
	require.Error(t, err)
	assert.IsType(t, &InvariantError{}, err)

	err = bb.appendBits(8, 3) // 8 does not fit in 3 bits.
	require.Error(t, err)

	err = bb.appendBits(0, -1)
	require.Error(t, err)
}

func TestBitBufferToBytes(t *testing.T) {
	var bb bitBuffer
	require.NoError(t, bb.appendBits(0xA5, 8))
	require.NoError(t, bb.appendBits(0x3, 2))

	_, err := bb.toBytes()
	assert.Error(t, err) // 10 bits, not a multiple of 8.

	require.NoError(t, bb.appendBits(0, 6))
	out, err := bb.toBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA5, 0xC0}, out)
}

func TestBitBufferRoundTrip(t *testing.T) {
	cases := []struct {
		value, n int
	}{
		{0, 1}, {1, 1}, {0xFF, 8}, {0x1234, 16}, {7, 3},
	}
	for _, tc := range cases {
		var bb bitBuffer
		require.NoError(t, bb.appendBits(tc.value, tc.n))
		got := 0
		for _, bit := range bb {
			got = got<<1 | int(bit)
		}
		assert.Equal(t, tc.value, got)
	}
}
