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

func TestApplyMaskIsSelfInverse(t *testing.T) {
	for version := 1; version <= 5; version++ {
		g := newGrid(version)
		g.ecl = Medium
		g.drawFunctionPatterns()

		before := cloneModules(g.modules)
		for k := 0; k < 8; k++ {
			g.applyMask(k)
			g.applyMask(k)
			assert.Equal(t, before, g.modules, "mask %d applied twice must restore the grid", k)
		}
	}
}

func TestDrawFunctionPatternsMarksFunctionCells(t *testing.T) {
	for version := 1; version <= 40; version += 3 {
		g := newGrid(version)
		g.ecl = Low
		g.drawFunctionPatterns()

		hasDark, hasLight := false, false
		for y := 0; y < g.size; y++ {
			for x := 0; x < g.size; x++ {
				if g.modules[y][x] {
					hasDark = true
				} else {
					hasLight = true
				}
			}
		}
		assert.True(t, hasDark)
		assert.True(t, hasLight)
		assert.True(t, g.isFunction[g.size-8][8], "dark module must be a function cell")
		assert.True(t, g.modules[g.size-8][8], "dark module must always be dark")
	}
}

func TestPenaltyScoreIsDeterministicAndNonNegative(t *testing.T) {
	sym, err := Encode([]byte("HELLO WORLD"), 1, 40, Medium)
	require.NoError(t, err)

	g := newGrid(sym.version)
	g.ecl = sym.ecl
	g.modules = cloneModules(sym.modules)
	g.isFunction = make([][]bool, g.size)
	for i := range g.isFunction {
		g.isFunction[i] = make([]bool, g.size)
	}
	p1 := g.penaltyScore()
	p2 := g.penaltyScore()
	assert.Equal(t, p1, p2)
	assert.GreaterOrEqual(t, p1, 0)
}

func TestSelectMaskReturnsMaskInRange(t *testing.T) {
	for _, text := range []string{"HELLO WORLD", "", "1234567890"} {
		sym, err := Encode([]byte(text), 1, 40, Low)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sym.Mask(), 0)
		assert.LessOrEqual(t, sym.Mask(), 7)
	}
}

func cloneModules(m [][]bool) [][]bool {
	out := make([][]bool, len(m))
	for i, row := range m {
		out[i] = append([]bool(nil), row...)
	}
	return out
}
