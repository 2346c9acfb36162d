// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/asaddi/hardback/lib/config"
	"github.com/asaddi/hardback/lib/digest"
	"github.com/asaddi/hardback/lib/filter"
	"github.com/asaddi/hardback/lib/frame"
	"github.com/asaddi/hardback/lib/trailer"
	"github.com/asaddi/hardback/lib/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		decodeMode  bool
		outputPath  string
		width       int
		digestName  string
		filterName  string
		configPath  string
		verify      bool
		force       bool
		showVersion bool
		showHelp    bool
	)

	flagSet := pflag.NewFlagSet("hardback", pflag.ContinueOnError)
	flagSet.BoolVarP(&decodeMode, "decode", "d", false, "decode armor input back to binary")
	flagSet.StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	flagSet.IntVarP(&width, "width", "w", 0, "payload symbols per line, a positive multiple of 8")
	flagSet.StringVar(&digestName, "digest", "", "trailer digest algorithm: sha256, blake3, blake2b")
	flagSet.StringVarP(&filterName, "filter", "z", "", "pre-armor compression: none, lz4, zstd")
	flagSet.StringVar(&configPath, "config", "", "defaults file (overrides HARDBACK_CONFIG)")
	flagSet.BoolVar(&verify, "verify", false, "check length/digest trailers against the decoded output")
	flagSet.BoolVar(&force, "force", false, "allow decoded binary output on a terminal")
	flagSet.BoolVar(&showVersion, "version", false, "print version and exit")
	flagSet.BoolVarP(&showHelp, "help", "h", false, "show help")
	flagSet.Usage = func() { printUsage(flagSet) }

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if showHelp {
		printUsage(flagSet)
		return 0
	}
	if showVersion {
		fmt.Printf("hardback %s\n", version.Info())
		return 0
	}

	configuration, err := loadConfiguration(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if flagSet.Changed("width") {
		configuration.Width = width
	}
	if flagSet.Changed("digest") {
		configuration.Digest = digestName
	}
	if flagSet.Changed("filter") {
		configuration.Filter = filterName
	}
	if flagSet.Changed("verify") {
		configuration.Verify = verify
	}
	if err := configuration.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	arguments := flagSet.Args()
	if len(arguments) > 1 {
		fmt.Fprintf(os.Stderr, "error: at most one input file\n")
		printUsage(flagSet)
		return 2
	}

	// Decoded output is arbitrary binary; dumping it onto a terminal
	// can wedge the session.
	if decodeMode && outputPath == "" && !force && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "error: refusing to write decoded binary to a terminal (use --output or --force)\n")
		return 2
	}

	input := io.Reader(os.Stdin)
	if len(arguments) == 1 {
		file, err := os.Open(arguments[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		defer file.Close()
		input = file
	}

	if decodeMode {
		err = decodeStream(input, outputPath, configuration)
	} else {
		err = encodeStream(input, outputPath, configuration)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfiguration resolves defaults: an explicit --config path wins
// over the HARDBACK_CONFIG environment variable.
func loadConfiguration(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// withOutput runs write against the output file (or stdout when path
// is empty), propagating close errors so a full disk is not reported
// as success.
func withOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

// encodeStream armors everything from input: filter, frame into
// checksummed lines, append the trailer, and report length and digest
// on stderr for the operator's records.
func encodeStream(input io.Reader, outputPath string, configuration config.Config) error {
	data, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	// Validated by config.Validate.
	algorithm, _ := digest.Parse(configuration.Digest)
	filterKind, _ := filter.Parse(configuration.Filter)

	// The digest covers the original input; the codec and its
	// per-line CRC see the filtered bytes.
	digestHex := algorithm.Sum(data)

	filtered, err := filter.Compress(data, filterKind)
	if err != nil {
		return err
	}
	lines, err := frame.Encode(filtered, configuration.Width)
	if err != nil {
		return err
	}

	err = withOutput(outputPath, func(w io.Writer) error {
		buffered := bufio.NewWriter(w)
		for _, line := range lines {
			buffered.WriteString(line)
			buffered.WriteByte('\n')
		}
		info := trailer.Info{
			Length:    int64(len(data)),
			Algorithm: algorithm.String(),
			Digest:    digestHex,
			Filter:    filterKind.String(),
		}
		if err := trailer.Write(buffered, info); err != nil {
			return fmt.Errorf("writing trailer: %w", err)
		}
		if err := buffered.Flush(); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "# length: %d\n", len(data))
	fmt.Fprintf(os.Stderr, "# %s: %s\n", algorithm, digestHex)
	return nil
}

// decodeStream reverses encodeStream: filter the armor lines out of
// the input, frame-decode them, undo any recorded compression filter,
// optionally verify the trailer, and write the reconstructed bytes.
func decodeStream(input io.Reader, outputPath string, configuration config.Config) error {
	dataLines, comments, err := splitArmor(input)
	if err != nil {
		return err
	}

	raw, err := frame.Decode(dataLines)
	if err != nil {
		return err
	}

	info, err := trailer.Parse(comments)
	if err != nil {
		return err
	}
	filterKind, err := filter.Parse(info.Filter)
	if err != nil {
		return fmt.Errorf("filter trailer: %w", err)
	}
	decoded, err := filter.Decompress(raw, filterKind)
	if err != nil {
		return err
	}

	if configuration.Verify {
		if err := verifyTrailer(decoded, info); err != nil {
			return err
		}
	}

	err = withOutput(outputPath, func(w io.Writer) error {
		if _, err := w.Write(decoded); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Report with the declared algorithm when the trailer names one,
	// so the stderr line is comparable against the armor file.
	algorithm, _ := digest.Parse(configuration.Digest)
	if info.Algorithm != "" {
		algorithm, _ = digest.Parse(info.Algorithm)
	}
	fmt.Fprintf(os.Stderr, "# length: %d\n", len(decoded))
	fmt.Fprintf(os.Stderr, "# %s: %s\n", algorithm, algorithm.Sum(decoded))
	return nil
}

// splitArmor separates data lines from comment lines, trimming
// whitespace and dropping blanks. Comments keep their '#' for
// trailer.Parse.
func splitArmor(input io.Reader) (dataLines, comments []string, err error) {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, "#"):
			comments = append(comments, line)
		default:
			dataLines = append(dataLines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading input: %w", err)
	}
	return dataLines, comments, nil
}

// verifyTrailer checks the decoded output against the declared
// trailers. Requires at least one of length or digest to be present —
// silently "verifying" nothing would defeat the point of --verify.
func verifyTrailer(decoded []byte, info trailer.Info) error {
	if info.Length < 0 && info.Algorithm == "" {
		return fmt.Errorf("--verify: armor carries no length or digest trailer")
	}
	if info.Length >= 0 && info.Length != int64(len(decoded)) {
		return fmt.Errorf("length mismatch: decoded %d bytes, trailer declares %d", len(decoded), info.Length)
	}
	if info.Algorithm != "" {
		algorithm, err := digest.Parse(info.Algorithm)
		if err != nil {
			return fmt.Errorf("digest trailer: %w", err)
		}
		if sum := algorithm.Sum(decoded); sum != info.Digest {
			return fmt.Errorf("%s mismatch: decoded output does not match the trailer digest", algorithm)
		}
	}
	return nil
}

func printUsage(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, "usage: hardback [flags] [input]\n")
	fmt.Fprintf(os.Stderr, "\nEncodes binary data as hand-transcribable text armor (decodes with -d).\n")
	fmt.Fprintf(os.Stderr, "Reads from input (or stdin), writes to --output (or stdout).\n")
	fmt.Fprintf(os.Stderr, "\nflags:\n%s", flagSet.FlagUsages())
	fmt.Fprintf(os.Stderr, "\nenvironment:\n")
	fmt.Fprintf(os.Stderr, "  HARDBACK_CONFIG  defaults file (see --config)\n")
}
