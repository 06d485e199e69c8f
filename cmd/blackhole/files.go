package main

import (
	"fmt"
	"io"
	"os"

	"github.com/example/go-blackhole/internal/config"
	"github.com/example/go-blackhole/internal/dict"
	"github.com/example/go-blackhole/internal/entropy"
	"github.com/schollz/progressbar/v3"
)

// buildCoder constructs the entropy coder from configuration. Tests replace
// it with an identity coder to exercise the pipeline deterministically.
var buildCoder = func(cfg config.Config) (entropy.Coder, error) {
	ent, err := config.NormalizeEntropy(cfg.Compressor.Entropy)
	if err != nil {
		return nil, err
	}
	return entropy.NewKanzi(entropy.KanziOptions{
		Entropy:   ent,
		Transform: cfg.Compressor.Transform,
		BlockSize: uint(cfg.Compressor.BlockSize),
		Jobs:      uint(cfg.Compressor.Jobs),
		Checksum:  cfg.Compressor.Checksum,
	}), nil
}

// loadDictionary loads the word list at path with a byte progress bar on
// stderr, so large lists report like the rest of the pipeline.
func loadDictionary(path string, maxEntries int) (*dict.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dictionary %s: %w", path, err)
	}

	bar := progressbar.DefaultBytes(info.Size(), "loading dictionary")
	pr := progressbar.NewReader(f, bar)

	idx, err := dict.Read(&pr, maxEntries)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	return idx, nil
}

// readInput reads path fully, with a progress bar for regular files.
// "-" reads stdin instead.
func readInput(path string, stdin io.Reader, desc string) ([]byte, error) {
	if path == "-" {
		if stdin == nil {
			return nil, fmt.Errorf("stdin reader is nil")
		}
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat input %s: %w", path, err)
	}

	bar := progressbar.DefaultBytes(info.Size(), desc)
	pr := progressbar.NewReader(f, bar)

	b, err := io.ReadAll(&pr)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}
	return b, nil
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "-" {
		if stdout == nil {
			return fmt.Errorf("stdout writer is nil")
		}
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// resolveDictPath prefers the per-command flag over the configured path.
func resolveDictPath(flagPath string, cfg config.Config) string {
	if flagPath != "" {
		return flagPath
	}
	return cfg.Paths.Dictionary
}
