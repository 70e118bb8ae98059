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

// ECL is the error correction level of a QR code symbol.
type ECL int8

// ECL values, ordered by increasing recovery capacity. This ordering is
// also the table ordinal used to index the capacity tables in tables.go.
const (
	Low      ECL = iota // Recovers ~7% of data.
	Medium              // Recovers ~15% of data.
	Quartile            // Recovers ~25% of data.
	High                // Recovers ~30% of data.
)

func (e ECL) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}

// tableOrdinal indexes eccCodewordsPerBlock/numErrorCorrectionBlocks.
func (e ECL) tableOrdinal() int {
	return int(e)
}

// formatOrdinal is the 2-bit value written into the format-information
// bits, per the standard's own (non-monotonic) ECL encoding.
func (e ECL) formatOrdinal() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("qrcode: unknown error correction level")
	}
}

func eclFromFormatOrdinal(v int) (ECL, bool) {
	switch v {
	case 1:
		return Low, true
	case 0:
		return Medium, true
	case 3:
		return Quartile, true
	case 2:
		return High, true
	default:
		return 0, false
	}
}
