package main

import (
	"fmt"
	"os"

	"github.com/example/go-blackhole/internal/dict"
	"github.com/spf13/cobra"
)

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Dictionary inspection commands",
	}

	cmd.AddCommand(newDictInfoCmd())
	cmd.AddCommand(newDictLookupCmd())
	return cmd
}

func newDictInfoCmd() *cobra.Command {
	var dictPath string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Report dictionary size and id ceiling",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			path := resolveDictPath(dictPath, cfg)
			idx, err := loadDictionary(path, cfg.Codec.MaxDictEntries)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "dictionary: %s\n", path)
			fmt.Fprintf(os.Stdout, "words: %d\n", idx.Len())
			fmt.Fprintf(os.Stdout, "id ceiling: %d\n", dict.MaxEntries)
			return nil
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "", "Dictionary file (overrides config)")
	return cmd
}

func newDictLookupCmd() *cobra.Command {
	var dictPath string

	cmd := &cobra.Command{
		Use:   "lookup WORD...",
		Short: "Look up the ids assigned to words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			idx, err := loadDictionary(resolveDictPath(dictPath, cfg), cfg.Codec.MaxDictEntries)
			if err != nil {
				return err
			}

			for _, word := range args {
				if id, ok := idx.IDOf(word); ok {
					fmt.Fprintf(os.Stdout, "%s\t%d\n", word, id)
				} else {
					fmt.Fprintf(os.Stdout, "%s\t(not in dictionary)\n", word)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "", "Dictionary file (overrides config)")
	return cmd
}
