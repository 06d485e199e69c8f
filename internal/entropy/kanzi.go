package entropy

import (
	"bytes"
	"fmt"
	"io"

	kio "github.com/flanglet/kanzi-go/v2/io"
)

// KanziOptions selects the kanzi block-compressor parameters. Zero values
// fall back to TPAQ entropy, no transform, 4 MiB blocks and one job, which
// mirrors the single-threaded context-mixing setup the format was designed
// around.
type KanziOptions struct {
	Entropy   string
	Transform string
	BlockSize uint
	Jobs      uint
	Checksum  bool
}

// Kanzi is a Coder backed by the kanzi block compressor.
type Kanzi struct {
	opts KanziOptions
}

func NewKanzi(opts KanziOptions) *Kanzi {
	if opts.Entropy == "" {
		opts.Entropy = "TPAQ"
	}
	if opts.Transform == "" {
		opts.Transform = "NONE"
	}
	if opts.BlockSize == 0 {
		opts.BlockSize = 4 * 1024 * 1024
	}
	if opts.Jobs == 0 {
		opts.Jobs = 1
	}
	return &Kanzi{opts: opts}
}

func (k *Kanzi) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := kio.NewCompressedOutputStream(
		nopWriteCloser{&buf},
		k.opts.Entropy,
		k.opts.Transform,
		k.opts.BlockSize,
		k.opts.Jobs,
		k.opts.Checksum,
	)
	if err != nil {
		return nil, fmt.Errorf("create compressed writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress block: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("flush compressed stream: %w", err)
	}
	return buf.Bytes(), nil
}

func (k *Kanzi) Decompress(data []byte) ([]byte, error) {
	r, err := kio.NewCompressedInputStream(io.NopCloser(bytes.NewReader(data)), k.opts.Jobs)
	if err != nil {
		return nil, fmt.Errorf("open compressed stream: %w", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompress stream: %w", err)
	}
	if err := r.Close(); err != nil {
		return nil, fmt.Errorf("close compressed stream: %w", err)
	}
	return out, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
