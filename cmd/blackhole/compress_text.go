package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/example/go-blackhole/internal/codec"
	"github.com/example/go-blackhole/internal/entropy"
	"github.com/example/go-blackhole/internal/integrity"
	"github.com/spf13/cobra"
)

func newCompressTextCmd() *cobra.Command {
	var in string
	var out string
	var dictPath string

	cmd := &cobra.Command{
		Use:   "compress-text",
		Short: "Compress a text file using the word dictionary",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			idx, err := loadDictionary(resolveDictPath(dictPath, cfg), cfg.Codec.MaxDictEntries)
			if err != nil {
				return err
			}

			raw, err := readInput(in, os.Stdin, "reading text")
			if err != nil {
				return err
			}
			text := string(raw)
			digest := integrity.SHA256Hex(raw)

			encoded := codec.Encode(codec.Tokenize(text), idx)

			coder, err := buildCoder(cfg)
			if err != nil {
				return err
			}
			sealed, err := entropy.Seal(coder, encoded)
			if err != nil {
				return fmt.Errorf("compress encoded stream: %w", err)
			}

			if err := writeOutput(out, sealed, os.Stdout); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			slog.Info("text compressed",
				"output", out,
				"original_bytes", len(raw),
				"encoded_bytes", len(encoded),
				"compressed_bytes", len(sealed),
				"sha256", digest,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Input text file ('-' for stdin)")
	cmd.Flags().StringVar(&out, "out", "", "Output compressed file ('-' for stdout)")
	cmd.Flags().StringVar(&dictPath, "dict", "", "Dictionary file (overrides config)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
