package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/example/go-blackhole/internal/entropy"
	"github.com/spf13/cobra"
)

func newCompressBinaryCmd() *cobra.Command {
	var in string
	var out string

	cmd := &cobra.Command{
		Use:   "compress-binary",
		Short: "Compress a file byte-for-byte, without dictionary encoding",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			raw, err := readInput(in, os.Stdin, "reading input")
			if err != nil {
				return err
			}

			coder, err := buildCoder(cfg)
			if err != nil {
				return err
			}
			sealed, err := entropy.Seal(coder, raw)
			if err != nil {
				return fmt.Errorf("compress input: %w", err)
			}

			if err := writeOutput(out, sealed, os.Stdout); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			slog.Info("binary compressed",
				"output", out,
				"original_bytes", len(raw),
				"compressed_bytes", len(sealed),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Input file ('-' for stdin)")
	cmd.Flags().StringVar(&out, "out", "", "Output compressed file ('-' for stdout)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
