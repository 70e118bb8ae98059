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
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	qrencode "github.com/qrkit/qrencode"
	"github.com/qrkit/qrencode/internal/config"
	"github.com/qrkit/qrencode/raster"
)

// runBulkEncode batch-encodes flagFile's lines, one symbol per line,
// mirroring bulkgen.py's loop: validate UTF-8, encode, write
// qrcode_<i>.<format> into the configured output directory, and skip a
// bad line rather than aborting the whole file.
func runBulkEncode(cfg *config.Config) error {
	ecl, ok := eclFromFlag(cfg.ECL)
	if !ok {
		return fmt.Errorf("unknown error correction level %q (want L, M, Q, or H)", cfg.ECL)
	}

	f, err := os.Open(flagFile)
	if err != nil {
		return fmt.Errorf("opening --file: %w", err)
	}
	defer f.Close()

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	scanner := bufio.NewScanner(f)
	encoded, skipped := 0, 0
	for i := 0; scanner.Scan(); i++ {
		line := scanner.Text()

		if !utf8.ValidString(line) {
			slog.Error("skipping line: not valid UTF-8", "index", i)
			skipped++
			continue
		}

		sym, err := qrencode.Encode([]byte(line), cfg.MinVersion, cfg.MaxVersion, ecl)
		if err != nil {
			slog.Error("skipping line: encode failed", "index", i, "err", err)
			skipped++
			continue
		}

		outPath := filepath.Join(cfg.Output.Dir, fmt.Sprintf("qrcode_%d.%s", i, strings.ToLower(cfg.Format)))
		if err := renderToFile(sym, cfg, outPath); err != nil {
			slog.Error("skipping line: render failed", "index", i, "err", err)
			skipped++
			continue
		}

		slog.Info("encoded line", "index", i, "path", outPath, "version", sym.Version(), "ecl", sym.ECL())
		encoded++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading --file: %w", err)
	}

	slog.Info("bulk encoding complete", "dir", cfg.Output.Dir, "encoded", encoded, "skipped", skipped)
	return nil
}

// renderToFile writes sym to path in cfg's configured format. Unlike
// render (used by the single-<text> path), it always writes a file: bulk
// mode has no stdout destination to fall back to.
func renderToFile(sym *qrencode.Symbol, cfg *config.Config, path string) error {
	switch strings.ToLower(cfg.Format) {
	case "png":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return raster.EncodePNG(f, sym, cfg.Scale, cfg.Border)

	case "svg":
		out, err := raster.SVG(sym, cfg.Border, true)
		if err != nil {
			return err
		}
		return os.WriteFile(path, []byte(out), 0o644)

	case "term":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return raster.HalfBlock(f, sym, cfg.Border)

	default:
		return fmt.Errorf("unknown format %q (want png, svg, or term)", cfg.Format)
	}
}
