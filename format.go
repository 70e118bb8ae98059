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

// formatBitsFor computes the 15-bit format payload for (ecl, mask):
// BCH(15,5) over the primitive polynomial x^10+x^8+x^5+x^4+x^2+x+1
// (0x537), XORed with the fixed mask 0x5412 so an all-zero symbol never
// produces an all-zero format field.
func formatBitsFor(ecl ECL, mask int) int {
	data := ecl.formatOrdinal()<<3 | mask
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*0x537
	}
	bits := (data<<10 | rem) ^ 0x5412
	if bits>>15 != 0 {
		panic("qrcode: format bits overflowed 15 bits")
	}
	return bits
}

// drawFormatBits writes both copies of the 15-bit format field for the
// given mask (reusing this symbol's already-chosen ECL), plus the
// always-dark module at (8, size-8).
func (g *grid) drawFormatBits(mask int) {
	g.drawFormatBitsForECL(g.ecl, mask)
}

// drawFormatBitsForECL writes both copies of the 15-bit format field for
// (ecl, mask), plus the always-dark module at (8, size-8). selectMask
// calls it directly with the ECL it was given.
func (g *grid) drawFormatBitsForECL(ecl ECL, mask int) {
	bits := formatBitsFor(ecl, mask)

	for i := 0; i <= 5; i++ {
		g.setFunctionModule(8, i, bitAt(bits, uint(i)))
	}
	g.setFunctionModule(8, 7, bitAt(bits, 6))
	g.setFunctionModule(8, 8, bitAt(bits, 7))
	g.setFunctionModule(7, 8, bitAt(bits, 8))
	for i := 9; i < 15; i++ {
		g.setFunctionModule(14-i, 8, bitAt(bits, uint(i)))
	}

	for i := 0; i < 8; i++ {
		g.setFunctionModule(g.size-1-i, 8, bitAt(bits, uint(i)))
	}
	for i := 8; i < 15; i++ {
		g.setFunctionModule(8, g.size-15+i, bitAt(bits, uint(i)))
	}
	g.setFunctionModule(8, g.size-8, true)
}

// versionBitsFor computes the 18-bit version-information payload: BCH(18,6)
// over the primitive polynomial x^12+x^11+x^10+x^9+x^8+x^6+x^5+x^2+1
// (0x1F25).
func versionBitsFor(version int) int {
	rem := version
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*0x1F25
	}
	bits := version<<12 | rem
	if bits>>18 != 0 {
		panic("qrcode: version bits overflowed 18 bits")
	}
	return bits
}

// drawVersionBits writes both copies of the version-information block.
// A no-op below version 7, which carries no version-information region.
func (g *grid) drawVersionBits() {
	if g.version < 7 {
		return
	}

	bits := versionBitsFor(g.version)
	for i := 0; i < 18; i++ {
		bit := bitAt(bits, uint(i))
		a := g.size - 11 + i%3
		b := i / 3
		g.setFunctionModule(a, b, bit)
		g.setFunctionModule(b, a, bit)
	}
}
