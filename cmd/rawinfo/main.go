// rawinfo inspects and validates img2raw files.
//
// Usage:
//
//	rawinfo [-q|--quiet] <filename> [<filename> ...]
//
// Options:
//
//	-q, --quiet   Only output errors. Exit code indicates pass/fail.
//	-h, --help    Show this help message.
//	--version     Show version information.
//
// Exit codes:
//
//	0: All files valid
//	1: One or more files invalid
//	2: Error (file not found, etc.)
//
// A file is valid when its header decodes, both enumeration codes resolve to
// known variants, and the pixel-data payload has exactly the byte length the
// header's format and dimensions require. Files wrapped in the zlib transport
// envelope are unwrapped transparently.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mrjoshuak/go-img2raw/rawutil"
)

const version = "1.0.0"

func main() {
	quiet := false
	files := []string{}

	for i := 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		switch arg {
		case "-q", "--quiet":
			quiet = true
		case "-h", "--help":
			printUsage()
			os.Exit(0)
		case "--version":
			fmt.Printf("rawinfo version %s\n", version)
			os.Exit(0)
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "Unknown option: %s\n", arg)
				printUsage()
				os.Exit(2)
			}
			files = append(files, arg)
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No input files specified")
		printUsage()
		os.Exit(2)
	}

	invalid := false
	errorOccurred := false

	for _, filename := range files {
		info, err := rawutil.ReadFileInfo(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: error: %v\n", filename, err)
			errorOccurred = true
			continue
		}

		issues := validate(info)
		if len(issues) > 0 {
			invalid = true
		}

		if !quiet {
			printInfo(info)
		}
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "%s: %s\n", filename, issue)
		}
	}

	switch {
	case errorOccurred:
		os.Exit(2)
	case invalid:
		os.Exit(1)
	}
}

// validate collects the problems that make a file invalid.
func validate(info *rawutil.FileInfo) []string {
	var issues []string
	if !info.ColorSpaceKnown {
		issues = append(issues, fmt.Sprintf("unknown color space code %d", info.Header.ColorSpace))
	}
	if !info.DataFormatKnown {
		issues = append(issues, fmt.Sprintf("unknown data format code %d", info.Header.DataFormat))
	}
	if info.DataFormatKnown && !info.SizeMatches() {
		issues = append(issues, fmt.Sprintf("payload is %d bytes, header requires %d",
			info.PayloadSize, info.ExpectedSize))
	}
	return issues
}

func printInfo(info *rawutil.FileInfo) {
	cs := "unknown"
	if info.ColorSpaceKnown {
		cs = info.ColorSpace.String()
	}
	df := "unknown"
	if info.DataFormatKnown {
		df = info.DataFormat.String()
	}
	fmt.Printf("%s:\n", info.Path)
	fmt.Printf("  color space: %s (%d)\n", cs, info.Header.ColorSpace)
	fmt.Printf("  data format: %s (%d)\n", df, info.Header.DataFormat)
	fmt.Printf("  dimensions:  %dx%d\n", info.Header.Width, info.Header.Height)
	fmt.Printf("  payload:     %d bytes\n", info.PayloadSize)
	if info.Compressed {
		fmt.Printf("  envelope:    zlib (%d bytes on disk)\n", info.FileSize)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: rawinfo [-q|--quiet] <filename> [<filename> ...]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -q, --quiet   Only output errors. Exit code indicates pass/fail.")
	fmt.Fprintln(os.Stderr, "  -h, --help    Show this help message.")
	fmt.Fprintln(os.Stderr, "  --version     Show version information.")
}
