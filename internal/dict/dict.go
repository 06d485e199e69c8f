// Package dict loads the word-list index used by the tagged-stream codec.
//
// The index maps each word to its 0-based line rank in the word-list file
// and back. Ranks count every line visited, including blank or malformed
// ones, so ids stay stable when commentary lines are interleaved with words.
package dict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxEntries is the hard ceiling on dictionary size. Ids are carried in a
// 3-byte wire field, so any rank at or above 1<<24 would be unrepresentable.
const MaxEntries = 1 << 24

// Index is the immutable word↔id mapping for one codec session.
type Index struct {
	ids   map[string]uint32
	words map[uint32]string
}

// Load reads the word list at path. maxEntries bounds the number of lines
// visited; values outside (0, MaxEntries] are clamped to MaxEntries.
func Load(path string, maxEntries int) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	idx, err := Read(f, maxEntries)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	return idx, nil
}

// Read builds an Index from a line-oriented word list. The first
// whitespace-delimited field of each line is the word; the rest of the line
// is ignored. Lines with no fields consume a rank but insert nothing. When a
// word repeats, the first occurrence keeps its id and later ones are ignored.
func Read(r io.Reader, maxEntries int) (*Index, error) {
	if maxEntries <= 0 || maxEntries > MaxEntries {
		maxEntries = MaxEntries
	}

	idx := &Index{
		ids:   make(map[string]uint32),
		words: make(map[uint32]string),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	rank := 0
	for rank < maxEntries && scanner.Scan() {
		line := rank
		rank++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		word := fields[0]
		if _, seen := idx.ids[word]; seen {
			continue
		}
		idx.ids[word] = uint32(line)
		idx.words[uint32(line)] = word
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}

	return idx, nil
}

// IDOf returns the id assigned to word, if present.
func (idx *Index) IDOf(word string) (uint32, bool) {
	id, ok := idx.ids[word]
	return id, ok
}

// WordOf returns the word assigned to id, if present.
func (idx *Index) WordOf(id uint32) (string, bool) {
	word, ok := idx.words[id]
	return word, ok
}

// Len returns the number of words in the index.
func (idx *Index) Len() int { return len(idx.ids) }
