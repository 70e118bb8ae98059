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

// drawCodewords walks the serpentine placement path and writes data
// into every non-function cell, most significant bit first within each
// byte. Function modules must already be marked (drawFunctionPatterns)
// before this runs. The column pair at x==6 is skipped in favor of x==5
// because column 6 is the vertical timing track.
func (g *grid) drawCodewords(data []byte) {
	bitIndex := 0
	total := len(data) * 8

	for right := g.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}

		upward := (right+1)&2 == 0

		for vert := 0; vert < g.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j

				var y int
				if upward {
					y = g.size - 1 - vert
				} else {
					y = vert
				}

				if !g.isFunction[y][x] && bitIndex < total {
					g.modules[y][x] = bitAt(int(data[bitIndex>>3]), uint(7-bitIndex&7))
					bitIndex++
				}
				// Any remaining bits (0..7, the "remainder bits" of
				// §4.1) stay at their zero-initialized, light value.
			}
		}
	}
}
