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

// grid is the mutable construction scratch space for one symbol: a
// size x size module matrix alongside a parallel boolean matrix marking
// which cells were written by functional-pattern drawing (and so must
// never be touched by payload placement or masking). It is never shared
// once the enclosing Symbol is returned to the caller.
type grid struct {
	version    int
	size       int
	ecl        ECL
	modules    [][]bool
	isFunction [][]bool
}

func newGrid(version int) *grid {
	size := version*4 + 17
	g := &grid{version: version, size: size, modules: make([][]bool, size), isFunction: make([][]bool, size)}
	for i := range g.modules {
		g.modules[i] = make([]bool, size)
		g.isFunction[i] = make([]bool, size)
	}
	return g
}

func (g *grid) setFunctionModule(x, y int, dark bool) {
	g.modules[y][x] = dark
	g.isFunction[y][x] = true
}

// drawFunctionPatterns paints every module whose value is dictated by
// the symbol's structure rather than its payload: timing tracks, the
// three finder patterns, alignment patterns, and placeholder format and
// version bits (the real format bits are overwritten once a mask is
// chosen; see mask.go).
func (g *grid) drawFunctionPatterns() {
	for i := 0; i < g.size; i++ {
		g.setFunctionModule(6, i, i%2 == 0)
		g.setFunctionModule(i, 6, i%2 == 0)
	}

	g.drawFinderPattern(3, 3)
	g.drawFinderPattern(g.size-4, 3)
	g.drawFinderPattern(3, g.size-4)

	positions := alignmentPatternPositions(g.version)
	n := len(positions)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			onFinderCorner := (i == 0 && j == 0) || (i == 0 && j == n-1) || (i == n-1 && j == 0)
			if !onFinderCorner {
				g.drawAlignmentPattern(positions[i], positions[j])
			}
		}
	}

	g.drawFormatBits(0) // Placeholder; overwritten after mask selection.
	g.drawVersionBits()
}

// drawFinderPattern draws a 9x9 finder-plus-separator footprint centered
// at (x, y), clipped to the grid. A cell is dark in the 3x3 center and
// the outer ring of the 7x7 glyph, light in the ring between them and
// in the one-module separator beyond the glyph.
func (g *grid) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= g.size || yy < 0 || yy >= g.size {
				continue
			}
			dist := maxInt(absInt(dx), absInt(dy))
			g.setFunctionModule(xx, yy, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (x, y):
// dark except for the ring one module out from the center.
func (g *grid) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			g.setFunctionModule(x+dx, y+dy, maxInt(absInt(dx), absInt(dy)) != 1)
		}
	}
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func bitAt(x int, i uint) bool {
	return x>>i&1 == 1
}
