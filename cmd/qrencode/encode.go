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
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	qrencode "github.com/qrkit/qrencode"
	"github.com/qrkit/qrencode/internal/config"
	"github.com/qrkit/qrencode/raster"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text into a QR code symbol, or batch-encode a file's lines with --file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEncode,
}

var (
	flagECL        string
	flagMinVersion int
	flagMaxVersion int
	flagOut        string
	flagFormat     string
	flagScale      int
	flagBorder     int
	flagOpen       bool
	flagConfig     string
	flagFile       string
)

func init() {
	encodeCmd.Flags().StringVar(&flagECL, "ecl", "", "minimum error correction level: L, M, Q, or H (default from config)")
	encodeCmd.Flags().IntVar(&flagMinVersion, "min-version", 0, "smallest admissible version, 1-40 (default from config)")
	encodeCmd.Flags().IntVar(&flagMaxVersion, "max-version", 0, "largest admissible version, 1-40 (default from config)")
	encodeCmd.Flags().StringVar(&flagOut, "out", "", "output file (default: stdout for svg/term, qrcode.<format> otherwise)")
	encodeCmd.Flags().StringVar(&flagFormat, "format", "", "output format: png, svg, or term (default from config)")
	encodeCmd.Flags().IntVar(&flagScale, "scale", 0, "target PNG resolution in pixels (default from config)")
	encodeCmd.Flags().IntVar(&flagBorder, "border", -1, "quiet zone width in modules (default from config)")
	encodeCmd.Flags().BoolVar(&flagOpen, "open", false, "open the rendered PNG in the system viewer")
	encodeCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file overriding built-in defaults")
	encodeCmd.Flags().StringVar(&flagFile, "file", "", "batch-encode each line of this file instead of a single <text> argument")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg := config.Defaults()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	applyFlagOverrides(cfg)

	setupLogging(cfg.LogLevel)

	if flagFile != "" {
		if len(args) != 0 {
			return fmt.Errorf("--file cannot be combined with a <text> argument")
		}
		return runBulkEncode(cfg)
	}
	if len(args) != 1 {
		return fmt.Errorf("encode requires exactly one <text> argument, or --file for batch mode")
	}

	if !utf8.ValidString(args[0]) {
		return fmt.Errorf("data is not valid UTF-8")
	}

	ecl, ok := eclFromFlag(cfg.ECL)
	if !ok {
		return fmt.Errorf("unknown error correction level %q (want L, M, Q, or H)", cfg.ECL)
	}

	sym, err := qrencode.Encode([]byte(args[0]), cfg.MinVersion, cfg.MaxVersion, ecl)
	if err != nil {
		return err
	}
	slog.Info("encoded symbol", "version", sym.Version(), "ecl", sym.ECL(), "mask", sym.Mask())

	outPath, err := render(sym, cfg)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	if cfg.Output.Open {
		if outPath == "" {
			return fmt.Errorf("--open requires writing to a file, not stdout")
		}
		if err := browser.OpenFile(outPath); err != nil {
			slog.Warn("could not open output in system viewer", "err", err)
		}
	}

	return nil
}

func applyFlagOverrides(cfg *config.Config) {
	if flagECL != "" {
		cfg.ECL = flagECL
	}
	if flagMinVersion != 0 {
		cfg.MinVersion = flagMinVersion
	}
	if flagMaxVersion != 0 {
		cfg.MaxVersion = flagMaxVersion
	}
	if flagFormat != "" {
		cfg.Format = flagFormat
	}
	if flagScale != 0 {
		cfg.Scale = flagScale
	}
	if flagBorder >= 0 {
		cfg.Border = flagBorder
	}
	if flagOpen {
		cfg.Output.Open = true
	}
}

func eclFromFlag(s string) (qrencode.ECL, bool) {
	switch strings.ToUpper(s) {
	case "L":
		return qrencode.Low, true
	case "M":
		return qrencode.Medium, true
	case "Q":
		return qrencode.Quartile, true
	case "H":
		return qrencode.High, true
	default:
		return 0, false
	}
}

// render writes sym in cfg's configured format, honoring --out, and
// returns the path written to, or "" if it wrote to stdout.
func render(sym *qrencode.Symbol, cfg *config.Config) (string, error) {
	switch strings.ToLower(cfg.Format) {
	case "png":
		path := flagOut
		if path == "" {
			path = "qrcode.png"
		}
		f, err := os.Create(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		if err := raster.EncodePNG(f, sym, cfg.Scale, cfg.Border); err != nil {
			return "", err
		}
		return path, nil

	case "svg":
		out, err := raster.SVG(sym, cfg.Border, true)
		if err != nil {
			return "", err
		}
		return writeOrPrint(out)

	case "term":
		if flagOut == "" {
			return "", raster.HalfBlock(os.Stdout, sym, cfg.Border)
		}
		f, err := os.Create(flagOut)
		if err != nil {
			return "", err
		}
		defer f.Close()
		if err := raster.HalfBlock(f, sym, cfg.Border); err != nil {
			return "", err
		}
		return flagOut, nil

	default:
		return "", fmt.Errorf("unknown format %q (want png, svg, or term)", cfg.Format)
	}
}

func writeOrPrint(content string) (string, error) {
	if flagOut == "" {
		fmt.Print(content)
		return "", nil
	}
	if err := os.WriteFile(flagOut, []byte(content), 0o644); err != nil {
		return "", err
	}
	return flagOut, nil
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
