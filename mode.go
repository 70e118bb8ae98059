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

// mode identifies a segment's encoding. This package implements byte
// mode only (see the package doc comment); numeric, alphanumeric, and
// kanji segmentation are out of scope.
type mode struct {
	indicator int8
	// charCountBits holds the character-count indicator width for
	// version ranges [1,9], [10,26], [27,40], in that order.
	charCountBits [3]int8
}

var byteMode = mode{0x4, [3]int8{8, 16, 16}}

func (m mode) charCountWidth(version int) int8 {
	switch {
	case version <= 9:
		return m.charCountBits[0]
	case version <= 26:
		return m.charCountBits[1]
	default:
		return m.charCountBits[2]
	}
}
