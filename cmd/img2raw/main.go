// img2raw converts common image containers to the img2raw binary pixel format.
//
// Usage:
//
//	img2raw [options] infile outfile
//
// Options:
//
//	--source-color-space NAME  color space of the input pixels (required)
//	--output-color-space NAME  color space to convert to (required)
//	--format NAME              output data format (required)
//	--header                   prepend the 16-byte img2raw header
//	--compress                 wrap the output file in a zlib envelope
//	--workers N                number of conversion workers (default: all CPUs)
//	-h, --help                 show this help message
//	--version                  show version information
//
// Color spaces: NonColor, CIEXYZ, SRGB, LinearSRGB.
// Data formats: R32F, RG32F, RGBA32F, R8, PackedR8, R16F, RG16F, RGBA16F,
// PackedR16F, RGBE8, RGBA8.
//
// Input containers are detected from magic bytes: PNG, JPEG, BMP, TIFF,
// PNM, Radiance HDR, JPEG 2000.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mrjoshuak/go-img2raw/load"
	"github.com/mrjoshuak/go-img2raw/raw"
	"github.com/mrjoshuak/go-img2raw/rawutil"
)

const version = "1.0.0"

type config struct {
	sourceColorSpace raw.ColorSpace
	outputColorSpace raw.ColorSpace
	outputDataFormat raw.DataFormat
	header           bool
	compress         bool
	workers          int
	inputFile        string
	outputFile       string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "img2raw: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		return err
	}

	if cfg.workers > 0 {
		pc := raw.DefaultParallelConfig()
		pc.NumWorkers = cfg.workers
		raw.SetParallelConfig(pc)
	}

	img, err := load.File(cfg.inputFile)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.inputFile, err)
	}

	if err := raw.ConvertImage(img, cfg.sourceColorSpace, cfg.outputColorSpace); err != nil {
		return err
	}

	err = rawutil.WriteFile(cfg.outputFile, img, rawutil.WriteOptions{
		ColorSpace: cfg.outputColorSpace,
		DataFormat: cfg.outputDataFormat,
		Header:     cfg.header,
		Compress:   cfg.compress,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.outputFile, err)
	}

	fmt.Printf("%s %s %d %d\n",
		cfg.outputColorSpace, cfg.outputDataFormat, img.Width, img.Height)
	return nil
}

func parseArgs(args []string) (*config, error) {
	cfg := &config{}
	var haveSource, haveOutput, haveFormat bool
	files := []string{}

	next := func(i *int, name string) (string, error) {
		*i++
		if *i >= len(args) {
			return "", fmt.Errorf("%s requires a value", name)
		}
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--source-color-space":
			v, err := next(&i, arg)
			if err != nil {
				return nil, err
			}
			cfg.sourceColorSpace, err = raw.ParseColorSpace(v)
			if err != nil {
				return nil, fmt.Errorf("unknown color space %q", v)
			}
			haveSource = true
		case "--output-color-space":
			v, err := next(&i, arg)
			if err != nil {
				return nil, err
			}
			cfg.outputColorSpace, err = raw.ParseColorSpace(v)
			if err != nil {
				return nil, fmt.Errorf("unknown color space %q", v)
			}
			haveOutput = true
		case "--format":
			v, err := next(&i, arg)
			if err != nil {
				return nil, err
			}
			cfg.outputDataFormat, err = raw.ParseDataFormat(v)
			if err != nil {
				return nil, fmt.Errorf("unknown data format %q", v)
			}
			haveFormat = true
		case "--header":
			cfg.header = true
		case "--compress":
			cfg.compress = true
		case "--workers":
			v, err := next(&i, arg)
			if err != nil {
				return nil, err
			}
			cfg.workers, err = strconv.Atoi(v)
			if err != nil || cfg.workers < 1 {
				return nil, fmt.Errorf("invalid worker count %q", v)
			}
		case "-h", "--help":
			printUsage()
			os.Exit(0)
		case "--version":
			fmt.Printf("img2raw version %s\n", version)
			os.Exit(0)
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("unknown option: %s", arg)
			}
			files = append(files, arg)
		}
	}

	if !haveSource || !haveOutput || !haveFormat {
		return nil, fmt.Errorf("--source-color-space, --output-color-space and --format are required")
	}
	if len(files) != 2 {
		return nil, fmt.Errorf("expected input and output file arguments")
	}
	cfg.inputFile = files[0]
	cfg.outputFile = files[1]
	return cfg, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: img2raw [options] infile outfile")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --source-color-space NAME  color space of the input pixels (required)")
	fmt.Fprintln(os.Stderr, "  --output-color-space NAME  color space to convert to (required)")
	fmt.Fprintln(os.Stderr, "  --format NAME              output data format (required)")
	fmt.Fprintln(os.Stderr, "  --header                   prepend the 16-byte img2raw header")
	fmt.Fprintln(os.Stderr, "  --compress                 wrap the output file in a zlib envelope")
	fmt.Fprintln(os.Stderr, "  --workers N                number of conversion workers")
	fmt.Fprintln(os.Stderr, "  -h, --help                 show this help message")
	fmt.Fprintln(os.Stderr, "  --version                  show version information")
}
