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

func newDecompressCmd() *cobra.Command {
	var in string
	var out string
	var dictPath string
	var useDict bool

	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "Decompress a file, optionally decoding the word dictionary stream",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			raw, err := readInput(in, os.Stdin, "reading compressed")
			if err != nil {
				return err
			}

			coder, err := buildCoder(cfg)
			if err != nil {
				return err
			}
			plain, err := entropy.Open(coder, raw)
			if err != nil {
				return fmt.Errorf("decompress input: %w", err)
			}

			if !useDict {
				if err := writeOutput(out, plain, os.Stdout); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				slog.Info("binary decompressed", "output", out, "bytes", len(plain))
				return nil
			}

			idx, err := loadDictionary(resolveDictPath(dictPath, cfg), cfg.Codec.MaxDictEntries)
			if err != nil {
				return err
			}

			res := codec.Decode(plain, idx)
			if res.Truncated {
				slog.Warn("record stream ended mid-record; output is a prefix of the original",
					"consumed_bytes", res.Consumed,
					"total_bytes", len(plain),
				)
			}

			if err := writeOutput(out, []byte(res.Text), os.Stdout); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			slog.Info("text decompressed",
				"output", out,
				"bytes", len(res.Text),
				"sha256", integrity.SHA256Hex([]byte(res.Text)),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Input compressed file ('-' for stdin)")
	cmd.Flags().StringVar(&out, "out", "", "Output file ('-' for stdout)")
	cmd.Flags().BoolVar(&useDict, "use-dict", false, "Decode the dictionary record stream back to text")
	cmd.Flags().StringVar(&dictPath, "dict", "", "Dictionary file (overrides config; must match the one used to compress)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
