package main

import (
	"bytes"
	"compress/gzip"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/suveshpratapa/tlv8/dump"
	"github.com/suveshpratapa/tlv8/profile"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to TLV8 input file (- for stdin; .zst and .gz are decompressed)")
		hexInput    = flag.String("hex", "", "Inline hex-encoded TLV8 input")
		profFile    = flag.String("profile", "", "Path to a TOML tag profile")
		contextName = flag.String("context", profile.RootContext, "Profile context to apply at the top level")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *inFile == "" && *hexInput == "" {
		fmt.Fprintln(os.Stderr, "Usage: tlvdump -in <file> [-profile tags.toml] [-context name]")
		fmt.Fprintln(os.Stderr, "       tlvdump -hex 060103000101 [-profile tags.toml]")
		fmt.Fprintln(os.Stderr, "       tlvdump -in <file> -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*inFile, *hexInput, *profFile, *contextName, *interactive, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, hexInput, profFile, contextName string, interactive, verbose bool) error {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		defer logger.Sync()
		dump.SetLogger(logger)
	}

	data, err := loadInput(inFile, hexInput)
	if err != nil {
		return err
	}

	var prof *profile.Profile
	if profFile != "" {
		prof, err = profile.Load(profFile)
		if err != nil {
			return err
		}
		if contextName != profile.RootContext && !prof.HasContext(contextName) {
			return fmt.Errorf("profile has no context %q", contextName)
		}
	}

	nodes, err := dump.Tree(data)
	if err != nil {
		return err
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		return runInteractive(nodes, prof, contextName)
	}

	return dump.RenderContext(os.Stdout, nodes, prof, contextName)
}

func loadInput(inFile, hexInput string) ([]byte, error) {
	if hexInput != "" {
		clean := strings.Map(func(r rune) rune {
			switch r {
			case ' ', '\t', '\n', ':':
				return -1
			}
			return r
		}, hexInput)
		data, err := hex.DecodeString(clean)
		if err != nil {
			return nil, fmt.Errorf("decode hex input: %w", err)
		}
		return data, nil
	}

	var raw []byte
	var err error
	if inFile == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(inFile)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return decompress(inFile, raw)
}

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
)

func decompress(path string, raw []byte) ([]byte, error) {
	switch {
	case strings.HasSuffix(path, ".zst") || bytes.HasPrefix(raw, zstdMagic):
		dec, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("open zstd input: %w", err)
		}
		defer dec.Close()
		out, err := io.ReadAll(dec)
		if err != nil {
			return nil, fmt.Errorf("decompress zstd input: %w", err)
		}
		return out, nil

	case strings.HasSuffix(path, ".gz") || bytes.HasPrefix(raw, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("open gzip input: %w", err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("decompress gzip input: %w", err)
		}
		return out, nil
	}
	return raw, nil
}
