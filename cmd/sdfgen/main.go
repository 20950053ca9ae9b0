// Command sdfgen converts a raster image into a single-channel 8-bit
// signed distance field via the Felzenszwalb-Huttenlocher 2-D Euclidean
// distance transform. It is the spiritual successor of the "chaq_sdf"
// C tool this package's algorithm is grounded on: the same input, output
// and spread core surface (as -in/-out/-spread), extended with format,
// quality, threshold channel/invert, worker and logging controls.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chaq-sdf/sdfgen"
	"github.com/chaq-sdf/sdfgen/sderr"
	"github.com/chaq-sdf/sdfgen/sdfimage"
)

var programName = "sdfgen"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var (
		in         = fs.String("in", "", "input image path (required)")
		out        = fs.String("out", "", "output image path (required)")
		spread     = fs.Int("spread", 4, "spread radius in pixels")
		quality    = fs.Int("quality", 100, "JPEG quality 1..100 (ignored for other formats)")
		formatTag  = fs.String("format", "", "output format: png|bmp|jpg|tga (default: inferred from -out extension, else png)")
		invert     = fs.Bool("invert", false, "invert the inside/outside test")
		luminance  = fs.Bool("luminance", false, "threshold the luminance channel instead of alpha")
		asymmetric = fs.Bool("asymmetric", false, "quantize against [0,spread] instead of [-spread,spread]")
		workers    = fs.Int("workers", 0, "worker pool size per side (0 means GOMAXPROCS)")
		logLevel   = fs.String("log-level", "warn", "log level: debug|info|warn|error")
	)

	if err := fs.Parse(args); err != nil {
		return 2
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		return 2
	}
	sdfgen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runConvert(ctx, *in, *out, *spread, *quality, *formatTag, *invert, *luminance, *asymmetric, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		return exitCode(err)
	}
	return 0
}

func runConvert(ctx context.Context, in, out string, spread, quality int, formatTag string, invert, luminance, asymmetric bool, workers int) error {
	if in == "" {
		return fmt.Errorf("%w: no input file specified", sderr.ErrInvalidArguments)
	}
	if out == "" {
		return fmt.Errorf("%w: no output file specified", sderr.ErrInvalidArguments)
	}
	if spread <= 0 {
		return fmt.Errorf("%w: spread must be a positive integer, got %d", sderr.ErrInvalidArguments, spread)
	}
	if quality < 1 || quality > 100 {
		return fmt.Errorf("%w: quality must be in 1..100, got %d", sderr.ErrInvalidArguments, quality)
	}

	format := sdfimage.FormatFromExtension(out)
	if formatTag != "" {
		f, ok := sdfimage.ParseFormat(formatTag)
		if !ok {
			return fmt.Errorf("%w: unknown format %q", sderr.ErrInvalidArguments, formatTag)
		}
		format = f
	}

	channel := sdfimage.Alpha
	if luminance {
		channel = sdfimage.Luminance
	}

	sdfgen.Logger().Info("resolved parameters",
		"in", in, "out", out, "spread", spread, "quality", quality,
		"invert", invert, "luminance", luminance, "asymmetric", asymmetric, "workers", workers)

	return sdfgen.ConvertFile(ctx, in, out, spread, format,
		sdfgen.WithChannel(channel),
		sdfgen.WithInvert(invert),
		sdfgen.WithAsymmetric(asymmetric),
		sdfgen.WithQuality(quality),
		sdfgen.WithWorkers(workers),
	)
}

func parseLogLevel(tag string) (slog.Level, error) {
	switch tag {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: unknown log level %q", sderr.ErrInvalidArguments, tag)
	}
}

// exitCode maps a top-level error to a process exit status: argument
// errors exit 2 (matching flag.ExitOnError's convention), every other
// sderr sentinel exits 1.
func exitCode(err error) int {
	if errors.Is(err, sderr.ErrInvalidArguments) {
		return 2
	}
	return 1
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "usage: %s -in file -out file [-spread n]\n", programName)
	fs.PrintDefaults()
}
