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

package raster

import (
	"fmt"
	"io"

	"github.com/qrkit/qrencode"
)

// HalfBlock writes sym to w as Unicode half-block characters, two
// module rows per printed line, surrounded by a border-module quiet
// zone of blank space.
func HalfBlock(w io.Writer, sym *qrcode.Symbol, border int) error {
	if border < 0 {
		return &qrcode.InvariantError{Msg: "raster: border must be non-negative"}
	}

	size := sym.Size()
	totalCols := size + 2*border

	for row := 0; row < border; row += 2 {
		writeBlankLine(w, totalCols)
	}

	at := func(x, y int) bool {
		if y < 0 || y >= size {
			return false
		}
		return sym.Module(x, y)
	}

	for row := 0; row < size; row += 2 {
		for col := 0; col < border; col++ {
			fmt.Fprint(w, "  ")
		}
		for col := 0; col < size; col++ {
			top := at(col, row)
			bot := at(col, row+1)
			switch {
			case top && bot:
				fmt.Fprint(w, "██")
			case top && !bot:
				fmt.Fprint(w, "▀▀")
			case !top && bot:
				fmt.Fprint(w, "▄▄")
			default:
				fmt.Fprint(w, "  ")
			}
		}
		for col := 0; col < border; col++ {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprintln(w)
	}

	for row := 0; row < border; row += 2 {
		writeBlankLine(w, totalCols)
	}

	return nil
}

func writeBlankLine(w io.Writer, cols int) {
	for col := 0; col < cols; col++ {
		fmt.Fprint(w, "  ")
	}
	fmt.Fprintln(w)
}
