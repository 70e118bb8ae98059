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

// segment is one chunk of a symbol's payload: a mode indicator, a
// character count, and the mode-encoded bits. The public Encode entry
// point only ever constructs a single byteSegment; version/ECL
// selection and bit-stream assembly are written against []segment so
// a caller-visible multi-segment mode could be added later without
// reshaping this code path.
type segment struct {
	mode     mode
	numChars int
	data     bitBuffer
}

// totalBits returns the number of bits segs would occupy at the given
// version (mode indicator + character count + payload, summed across
// segments), or -1 if any segment's character count overflows its
// count-indicator width at this version.
func totalBits(segs []segment, version int) int {
	total := 0
	for _, seg := range segs {
		ccBits := seg.mode.charCountWidth(version)
		if seg.numChars >= 1<<uint(ccBits) {
			return -1
		}
		total += 4 + int(ccBits) + len(seg.data)
	}
	return total
}

func byteSegment(data []byte) segment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		_ = bb.appendBits(int(b), 8)
	}
	return segment{mode: byteMode, numChars: len(data), data: bb}
}
