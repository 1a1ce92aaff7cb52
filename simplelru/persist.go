package simplelru

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Codec converts keys and values to and from their single-line text
// form. Encoded fields must not contain tabs or newlines; the file
// format does no escaping, so such fields produce lines LoadFile cannot
// parse back.
type Codec[K comparable, V any] struct {
	EncodeKey   func(K) string
	DecodeKey   func(string) (K, error)
	EncodeValue func(V) string
	DecodeValue func(string) (V, error)
}

// StringCodec is the identity codec for string keys and values.
func StringCodec() Codec[string, string] {
	id := func(s string) (string, error) { return s, nil }
	return Codec[string, string]{
		EncodeKey:   func(s string) string { return s },
		DecodeKey:   id,
		EncodeValue: func(s string) string { return s },
		DecodeValue: id,
	}
}

// IntCodec is a codec for int keys and values.
func IntCodec() Codec[int, int] {
	return Codec[int, int]{
		EncodeKey:   strconv.Itoa,
		DecodeKey:   strconv.Atoi,
		EncodeValue: strconv.Itoa,
		DecodeValue: strconv.Atoi,
	}
}

// SaveFile writes every stored pair to path, one "key\tvalue" line per
// entry, replacing whatever the file held before.
//
// Lines are written sorted so saves diff cleanly, but file order carries
// no meaning: LoadFile replays lines through Add, so a save/load round
// trip preserves the key and value set, not the recency order.
func (c *LRU[K, V]) SaveFile(path string, codec Codec[K, V]) error {
	lines := make([]string, 0, len(c.table))
	for key, ent := range c.table {
		lines = append(lines, codec.EncodeKey(key)+"\t"+codec.EncodeValue(ent.value))
	}
	slices.Sort(lines)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("write cache file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close cache file: %w", err)
	}
	return nil
}

// LoadFile replays the pairs stored at path through Add. A missing file
// is a successful no-op.
//
// Each line is split on its first tab. Lines without a tab, and lines
// whose key or value fail to decode, are skipped. Because loading goes
// through Add, later lines end up more recently used, and a file with
// more lines than the capacity evicts the earlier ones exactly as live
// Adds would.
func (c *LRU[K, V]) LoadFile(path string, codec Codec[K, V]) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open cache file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rawKey, rawValue, found := strings.Cut(scanner.Text(), "\t")
		if !found {
			continue
		}
		key, err := codec.DecodeKey(rawKey)
		if err != nil {
			continue
		}
		value, err := codec.DecodeValue(rawValue)
		if err != nil {
			continue
		}
		c.Add(key, value)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read cache file: %w", err)
	}
	return nil
}
