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

// MinVersion and MaxVersion bound the QR code version range this package
// supports: version 1 is a 21x21 symbol, version 40 is 177x177.
const (
	MinVersion = 1
	MaxVersion = 40
)

// eccCodewordsPerBlock[ecl.tableOrdinal()][version-1] is the number of
// error-correction codewords appended to every block at that (version,
// ECL).
var eccCodewordsPerBlock = [4][40]int{
	// Low
	{7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28,
		28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	// Medium
	{10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26,
		26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	// Quartile
	{13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30,
		28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	// High
	{17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28,
		30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

// numErrorCorrectionBlocks[ecl.tableOrdinal()][version-1] is the number of
// blocks the data and ECC codewords are split across.
var numErrorCorrectionBlocks = [4][40]int{
	// Low
	{1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8,
		8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	// Medium
	{1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16,
		17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	// Quartile
	{1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20,
		23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	// High
	{1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25,
		25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// rawCapacityBits computes the number of data bits a symbol of the given
// version can hold before any codeword is assigned to data or ECC, i.e.
// the number of modules remaining once every functional pattern (finder,
// separator, timing, alignment, format, and for version>=7 version
// information) is excluded. The result is a multiple of 8 only after
// remainder bits are accounted for by the caller; see §4.1.
func rawCapacityBits(version int) int {
	result := (16*version+128)*version + 64
	if version >= 2 {
		numAlign := version/7 + 2
		result -= (25*numAlign-10)*numAlign - 55
		if version >= 7 {
			result -= 36
		}
	}
	return result
}

// dataCapacityBytes is the number of data (non-ECC) codeword bytes
// available at the given (version, ecl), with remainder bits discarded.
func dataCapacityBytes(version int, ecl ECL) int {
	e := ecl.tableOrdinal()
	return rawCapacityBits(version)/8 - eccCodewordsPerBlock[e][version-1]*numErrorCorrectionBlocks[e][version-1]
}

// alignmentPatternPositions returns the ascending list of row/column
// centers at which alignment patterns are drawn for the given version.
// Version 1 has none.
func alignmentPatternPositions(version int) []int {
	if version == 1 {
		return nil
	}

	n := version/7 + 2
	step := ((version*8 + 3*n + 5) / (4*n - 4)) * 2

	size := version*4 + 17
	positions := make([]int, n)
	positions[0] = 6
	pos := size - 7
	for i := n - 1; i >= 1; i-- {
		positions[i] = pos
		pos -= step
	}
	return positions
}
