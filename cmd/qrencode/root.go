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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	qrencode "github.com/qrkit/qrencode"
)

var rootCmd = &cobra.Command{
	Use:   "qrencode",
	Short: "Render text or binary data as a QR code symbol",
}

// Execute runs the root command, mapping errors to the exit codes
// documented for this CLI: 0 on success, 1 for a CapacityError (the
// input cannot fit in the requested version/ECL range), 2 for any
// other error (usage, I/O, or an internal invariant violation).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var capErr *qrencode.CapacityError
		if errors.As(err, &capErr) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(versionCmd)
}
