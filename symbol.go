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

// Symbol is a finished, read-only QR code: the result of a single call
// to Encode. Unlike the construction-time grid, nothing about a Symbol
// is mutable, and no state is shared with any other Symbol.
type Symbol struct {
	version int
	ecl     ECL
	mask    int
	size    int
	modules [][]bool
}

// Version is the QR code version used, 1 to 40.
func (s *Symbol) Version() int { return s.version }

// ECL is the error correction level actually used, which may be
// stronger than the minimum requested to Encode.
func (s *Symbol) ECL() ECL { return s.ecl }

// Mask is the data-mask pattern selected, 0 to 7.
func (s *Symbol) Mask() int { return s.mask }

// Size is the symbol's side length in modules (4*Version()+17).
func (s *Symbol) Size() int { return s.size }

// Module reports whether the cell at (x, y) is dark. x and y must be in
// [0, Size()).
func (s *Symbol) Module(x, y int) bool {
	return s.modules[y][x]
}
