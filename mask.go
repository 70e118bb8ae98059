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

const (
	penaltyN1 = 3  // Per same-color run of 5; each module beyond 5 adds 1 more.
	penaltyN2 = 3  // Per same-color 2x2 block.
	penaltyN3 = 40 // Per finder-like run pattern.
	penaltyN4 = 10 // Per 5% step the dark ratio sits away from 50%.
)

// maskPredicate returns whether mask k inverts the module at (x, y).
func maskPredicate(k, x, y int) bool {
	switch k {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("qrcode: mask value out of range")
	}
}

// applyMask XORs mask k into every non-function cell. Applying the same
// mask twice is its own inverse, which selectMask below relies on to
// score each candidate and then undo it.
func (g *grid) applyMask(k int) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if !g.isFunction[y][x] && maskPredicate(k, x, y) {
				g.modules[y][x] = !g.modules[y][x]
			}
		}
	}
}

// selectMask tries all 8 masks against the already-placed payload,
// scoring each by penaltyScore, and leaves the grid with the
// lowest-scoring mask applied and its format bits written. Ties favor
// the lower mask number, since that is whichever is tried first.
func (g *grid) selectMask(ecl ECL) int {
	g.ecl = ecl
	best := -1
	bestPenalty := int(^uint(0) >> 1) // math.MaxInt

	for k := 0; k < 8; k++ {
		g.applyMask(k)
		g.drawFormatBitsForECL(ecl, k)
		penalty := g.penaltyScore()
		if penalty < bestPenalty {
			best = k
			bestPenalty = penalty
		}
		g.applyMask(k) // Undo: XOR is its own inverse.
	}

	g.applyMask(best)
	g.drawFormatBitsForECL(ecl, best)
	return best
}

// penaltyScore sums the four standard penalty rules over the grid's
// current (masked) state.
func (g *grid) penaltyScore() int {
	result := 0

	for y := 0; y < g.size; y++ {
		result += g.runPenalty(func(i int) bool { return g.modules[y][i] })
	}
	for x := 0; x < g.size; x++ {
		result += g.runPenalty(func(i int) bool { return g.modules[i][x] })
	}

	// Rule 2: 2x2 blocks of identical modules.
	for y := 0; y < g.size-1; y++ {
		for x := 0; x < g.size-1; x++ {
			c := g.modules[y][x]
			if c == g.modules[y][x+1] && c == g.modules[y+1][x] && c == g.modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}

	// Rule 4: dark/light balance.
	dark := 0
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.modules[y][x] {
				dark++
			}
		}
	}
	total := g.size * g.size
	k := (absInt(dark*20-total*10) + total - 1) / total
	if k > 0 {
		k--
	}
	result += k * penaltyN4

	return result
}

// runPenalty scores one row or column (accessed via at) for rule 1
// (same-color runs of 5+) and rule 3 (finder-like run patterns),
// using a 7-entry sliding run-length history. History entry 0 is the
// most recently closed run; a fresh buffer implicitly starts with a
// virtual light run the width of the whole line, which is how the
// 4-module light guard required on both ends of a genuine finder-like
// pattern falls out of the recurrence without special-casing the first
// or last run.
func (g *grid) runPenalty(at func(int) bool) int {
	result := 0
	var history [7]int
	runColor := false
	runLen := 0

	for i := 0; i < g.size; i++ {
		if at(i) == runColor {
			runLen++
			if runLen == 5 {
				result += penaltyN1
			} else if runLen > 5 {
				result++
			}
		} else {
			g.pushRun(&history, runLen)
			if !runColor {
				result += g.finderLikeCount(&history) * penaltyN3
			}
			runColor = at(i)
			runLen = 1
		}
	}
	result += g.terminateRun(runColor, runLen, &history) * penaltyN3
	return result
}

func (g *grid) pushRun(history *[7]int, runLen int) {
	if history[0] == 0 {
		runLen += g.size
	}
	copy(history[1:], history[:6])
	history[0] = runLen
}

// finderLikeCount reports how many of the two possible finder-like
// matches (guard before the pattern, guard after) the current history
// completes: dark/light/dark/light/dark runs at ratio 1:1:3:1:1 (an
// n-wide dark run, n light, 3n dark, n light, n dark), with a light run
// at least 4n wide on one end and at least n wide on the other. Each end
// that carries the 4n guard counts once.
func (g *grid) finderLikeCount(history *[7]int) int {
	n := history[1]
	if n > g.size*3 {
		panic("qrcode: run history corrupted")
	}
	core := n > 0 && history[2] == n && history[3] == n*3 && history[4] == n && history[5] == n
	return boolToInt(core && history[0] >= n*4 && history[6] >= n) +
		boolToInt(core && history[6] >= n*4 && history[0] >= n)
}

func (g *grid) terminateRun(runColor bool, runLen int, history *[7]int) int {
	if runColor {
		g.pushRun(history, runLen)
		runLen = 0
	}
	runLen += g.size
	g.pushRun(history, runLen)
	return g.finderLikeCount(history)
}
