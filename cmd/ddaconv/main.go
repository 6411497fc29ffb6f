// SPDX-License-Identifier: EPL-2.0

// Command ddaconv converts a data logger dump into CSV, an Excel workbook,
// or channel audio.
//
// Usage:
//
//	ddaconv [flags] <input.dda>
//
// The output defaults to the input path with the format's extension. Use
// -o - to write to stdout. Settings can also come from DDALOG_* environment
// variables and a YAML file named by DDALOG_CONFIG; flags win.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/ddalog"
	"github.com/ik5/ddalog/formats/aiff"
	"github.com/ik5/ddalog/formats/dda"
	"github.com/ik5/ddalog/formats/wav"
	"github.com/ik5/ddalog/formats/xlsx"
	"github.com/ik5/ddalog/internal/config"
	"github.com/ik5/ddalog/internal/logging"
	"github.com/ik5/ddalog/telemetry"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// stdoutPath selects stdout as the output.
const stdoutPath = "-"

// errSameFile reports an output path that would overwrite the input.
var errSameFile = errors.New("output path is the input file")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "ddaconv: %v\n", err)
		return exitError
	}

	fs := flag.NewFlagSet("ddaconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: ddaconv [flags] <input.dda>")
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.Output, "o", cfg.Output, "output `path`, - for stdout (default input with the format extension)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: "+strings.Join(config.Formats, ", "))
	fields := fs.String("fields", strings.Join(cfg.Fields, ","), "comma separated channels for wav and aiff")
	fs.IntVar(&cfg.Rate, "rate", cfg.Rate, "frame rate in Hz for wav and aiff")
	fs.IntVar(&cfg.BitDepth, "bits", cfg.BitDepth, "bit depth for wav and aiff: 16, 24 or 32")
	fs.Int64Var(&cfg.Offset, "offset", cfg.Offset, "byte offset of the first record")
	fs.StringVar(&cfg.Sheet, "sheet", cfg.Sheet, "worksheet name for xlsx")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "log format: text or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg.Fields = strings.Split(*fields, ",")

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		fmt.Fprintf(stderr, "ddaconv: expected one input file, got %d\n", fs.NArg())
		fs.Usage()
		return exitUsage
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "ddaconv: %v\n", err)
		if errors.Is(err, config.ErrNoInput) {
			fs.Usage()
		}
		return exitUsage
	}

	logger, closer, err := logging.New(cfg.Logging, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "ddaconv: %v\n", err)
		return exitError
	}
	defer closer.Close()

	if err := convert(cfg, stdout, logger); err != nil {
		if errors.Is(err, errSameFile) {
			fmt.Fprintf(stderr, "ddaconv: %v\n", err)
			return exitUsage
		}
		logger.Error("conversion failed",
			slog.String("input", cfg.Input),
			slog.String("error", err.Error()))
		return exitError
	}

	return exitOK
}

func convert(cfg *config.Config, stdout io.Writer, logger *slog.Logger) error {
	enc, err := newEncoder(cfg)
	if err != nil {
		return err
	}

	path := cfg.Output
	if path == "" {
		path = ddalog.OutputPath(cfg.Input, enc.Extension())
	}
	if path != stdoutPath && samePath(path, cfg.Input) {
		return fmt.Errorf("%w: %s", errSameFile, path)
	}

	in, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := dda.NewDecoder(
		dda.WithOffset(cfg.Offset),
		dda.WithLogger(logger),
	).Open(in)
	if err != nil {
		return fmt.Errorf("opening %s: %w", cfg.Input, err)
	}

	if path == stdoutPath {
		_, err := ddalog.Convert(src, enc, stdout)
		return err
	}

	n, err := writeFile(path, src, enc)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	logger.Info("output written",
		slog.String("path", abs),
		slog.String("format", enc.Extension()),
		slog.Int("records", src.Records()),
		slog.Int("written", n),
		slog.Int("trailing_bytes", src.TrailingBytes()))

	fmt.Fprintf(stdout, "%s file written to %s\n", strings.ToUpper(enc.Extension()), abs)

	return nil
}

// samePath reports whether a and b name the same file, either by their
// cleaned absolute paths or, when both exist, by file identity.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}

	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}

// writeFile converts into a new file at path and removes it again if the
// conversion fails.
func writeFile(path string, src telemetry.Source, enc telemetry.Encoder) (int, error) {
	out, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	n, err := ddalog.Convert(src, enc, out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return n, err
	}

	return n, nil
}

// newEncoder looks the format up in the registry and applies the settings
// that format understands.
func newEncoder(cfg *config.Config) (telemetry.Encoder, error) {
	enc, ok := ddalog.NewRegistry().Get(cfg.Format)
	if !ok {
		return nil, fmt.Errorf("%w %q", config.ErrUnknownFormat, cfg.Format)
	}

	if !cfg.IsPCM() {
		if e, ok := enc.(xlsx.Encoder); ok {
			e.Sheet = cfg.Sheet
			return e, nil
		}
		return enc, nil
	}

	fields, err := cfg.ParsedFields()
	if err != nil {
		return nil, err
	}

	switch e := enc.(type) {
	case wav.Encoder:
		e.Fields, e.Rate, e.BitDepth = fields, cfg.Rate, cfg.BitDepth
		return e, nil
	case aiff.Encoder:
		e.Fields, e.Rate, e.BitDepth = fields, cfg.Rate, cfg.BitDepth
		return e, nil
	default:
		return enc, nil
	}
}
