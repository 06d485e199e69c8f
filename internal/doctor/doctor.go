// Package doctor provides environment preflight checks for blackhole.
package doctor

import (
	"fmt"
	"io"
	"os"

	"github.com/example/go-blackhole/internal/dict"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// Config holds the inputs for each doctor check.
type Config struct {
	// DictionaryPath is the word-list file to verify.
	DictionaryPath string
	// MaxDictEntries caps the verification load, mirroring the codec config.
	MaxDictEntries int
	// SkipDictionary skips dictionary checks (binary-only workflows).
	SkipDictionary bool
	// OutputDir, when non-empty, is checked for existence and writability.
	OutputDir string
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

// AddFailure appends an external failure message to the result.
func (r *Result) AddFailure(msg string) { r.failures = append(r.failures, msg) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- dictionary -------------------------------------------------------
	if cfg.SkipDictionary {
		fmt.Fprintf(w, "%s dictionary: skipped\n", PassMark)
	} else if _, err := os.Stat(cfg.DictionaryPath); err != nil {
		res.fail(fmt.Sprintf("dictionary %q: %v", cfg.DictionaryPath, err))
		fmt.Fprintf(w, "%s dictionary %s: not found\n", FailMark, cfg.DictionaryPath)
	} else {
		idx, err := dict.Load(cfg.DictionaryPath, cfg.MaxDictEntries)
		switch {
		case err != nil:
			res.fail(fmt.Sprintf("dictionary %q: %v", cfg.DictionaryPath, err))
			fmt.Fprintf(w, "%s dictionary %s: unreadable (%v)\n", FailMark, cfg.DictionaryPath, err)
		case idx.Len() == 0:
			res.fail(fmt.Sprintf("dictionary %q: no words", cfg.DictionaryPath))
			fmt.Fprintf(w, "%s dictionary %s: contains no words\n", FailMark, cfg.DictionaryPath)
		default:
			fmt.Fprintf(w, "%s dictionary: %s (%d words)\n", PassMark, cfg.DictionaryPath, idx.Len())
		}
	}

	// ---- output directory -------------------------------------------------
	if cfg.OutputDir != "" {
		if err := checkWritableDir(cfg.OutputDir); err != nil {
			res.fail(fmt.Sprintf("output dir %q: %v", cfg.OutputDir, err))
			fmt.Fprintf(w, "%s output dir %s: %v\n", FailMark, cfg.OutputDir, err)
		} else {
			fmt.Fprintf(w, "%s output dir: %s\n", PassMark, cfg.OutputDir)
		}
	}

	return res
}

// checkWritableDir verifies dir exists, is a directory, and accepts a
// temporary file.
func checkWritableDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}
	f, err := os.CreateTemp(dir, ".blackhole-doctor-*")
	if err != nil {
		return fmt.Errorf("not writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return nil
}
