package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/example/go-blackhole/internal/doctor"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	var skipDict bool
	var outputDir string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Run local environment checks",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			result := doctor.Run(doctor.Config{
				DictionaryPath: cfg.Paths.Dictionary,
				MaxDictEntries: cfg.Codec.MaxDictEntries,
				SkipDictionary: skipDict,
				OutputDir:      outputDir,
			}, os.Stdout)

			if result.Failed() {
				for _, f := range result.Failures() {
					fmt.Fprintf(os.Stderr, "FAIL: %s\n", f)
				}

				return errors.New("doctor checks failed")
			}

			_, _ = fmt.Fprintln(os.Stdout, "doctor checks passed")

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipDict, "skip-dict", false, "Skip dictionary checks (binary-only workflows)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory to verify for writability")

	return cmd
}
