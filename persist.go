package trie

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// Snapshot wire format, all integers big-endian:
//
//	header: magic (4) + version (1) + entry count (8)
//	entry:  key len (2) + value len (2) + checksum (4) + key + value
//
// The checksum is CRC-32 (IEEE) over the key and value bytes. Entries are
// written in traversal order and replayed through Set on load, which
// rebuilds an identical tree: pruning keeps the structure canonical for a
// given key set.
const (
	snapshotMagic   = "PTRI"
	snapshotVersion = 1

	headerSize      = 13
	entryHeaderSize = 8
)

// EncodeFunc serialises a key or value to bytes.
type EncodeFunc[T any] func(T) ([]byte, error)

// DecodeFunc reconstructs a key or value from bytes.
type DecodeFunc[T any] func([]byte) (T, error)

// Save writes every (key, value) pair to w using the snapshot format.
// encodeKey and encodeValue serialise the externally visible key and
// value; neither may produce more than 64 KiB per item.
func (t *Trie[S, K, V]) Save(w io.Writer, encodeKey EncodeFunc[K], encodeValue EncodeFunc[V]) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, headerSize)
	copy(header, snapshotMagic)
	header[4] = snapshotVersion
	binary.BigEndian.PutUint64(header[5:], uint64(t.Len()))
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}

	var encErr error
	entries := 0
	for k, v := range t.Items() {
		key, err := encodeKey(k)
		if err != nil {
			encErr = fmt.Errorf("failed to encode key: %w", err)
			break
		}
		value, err := encodeValue(v)
		if err != nil {
			encErr = fmt.Errorf("failed to encode value: %w", err)
			break
		}
		if err := writeEntry(bw, key, value); err != nil {
			encErr = err
			break
		}
		entries++
	}
	if encErr != nil {
		return encErr
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}
	log.Debug().Int("entries", entries).Msg("trie snapshot written")
	return nil
}

func writeEntry(w io.Writer, key, value []byte) error {
	if len(key) > 0xFFFF || len(value) > 0xFFFF {
		return fmt.Errorf("snapshot entry too large: key %d value %d bytes", len(key), len(value))
	}
	buf := make([]byte, entryHeaderSize+len(key)+len(value))
	binary.BigEndian.PutUint16(buf[0:], uint16(len(key)))
	binary.BigEndian.PutUint16(buf[2:], uint16(len(value)))
	copy(buf[entryHeaderSize:], key)
	copy(buf[entryHeaderSize+len(key):], value)
	checksum := crc32.ChecksumIEEE(buf[entryHeaderSize:])
	binary.BigEndian.PutUint32(buf[4:], checksum)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write snapshot entry: %w", err)
	}
	return nil
}

// Load reads a snapshot written by Save and rebuilds the trie, replaying
// each entry through Set. The codec must match the one the trie was
// built with for the reconstructed tree to address the same keys.
func Load[S comparable, K, V any](r io.Reader, codec Codec[S, K], decodeKey DecodeFunc[K], decodeValue DecodeFunc[V]) (*Trie[S, K, V], error) {
	br := bufio.NewReader(r)

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, fmt.Errorf("failed to read snapshot header: %w", err)
	}
	if string(header[:4]) != snapshotMagic {
		return nil, fmt.Errorf("bad snapshot magic %q", header[:4])
	}
	if header[4] != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", header[4])
	}
	count := binary.BigEndian.Uint64(header[5:])

	t := New[S, K, V](codec)
	for i := uint64(0); i < count; i++ {
		key, value, err := readEntry(br)
		if err != nil {
			return nil, err
		}
		k, err := decodeKey(key)
		if err != nil {
			return nil, fmt.Errorf("failed to decode key: %w", err)
		}
		v, err := decodeValue(value)
		if err != nil {
			return nil, fmt.Errorf("failed to decode value: %w", err)
		}
		t.Set(k, v)
	}
	return t, nil
}

func readEntry(r io.Reader) (key, value []byte, err error) {
	header := make([]byte, entryHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, nil, fmt.Errorf("failed to read snapshot entry: %w", err)
	}
	keyLen := binary.BigEndian.Uint16(header[0:])
	valueLen := binary.BigEndian.Uint16(header[2:])
	checksum := binary.BigEndian.Uint32(header[4:])

	payload := make([]byte, int(keyLen)+int(valueLen))
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, nil, fmt.Errorf("failed to read snapshot entry: %w", err)
	}
	if crc32.ChecksumIEEE(payload) != checksum {
		return nil, nil, fmt.Errorf("snapshot entry checksum mismatch")
	}
	return payload[:keyLen], payload[keyLen:], nil
}

// Save writes the word-count trie to w.
func (t *WordCountTrie) Save(w io.Writer) error {
	return t.Trie.Save(w, encodeStringKey, encodeCount)
}

// SaveFile writes the word-count trie to a snapshot file at path.
func (t *WordCountTrie) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()
	if err := t.Save(f); err != nil {
		return err
	}
	return f.Close()
}

// LoadWordCount reads a word-count snapshot written by Save.
func LoadWordCount(r io.Reader) (*WordCountTrie, error) {
	t := NewWordCount()
	loaded, err := Load[rune, string](r, t.codec, decodeStringKey, decodeCount)
	if err != nil {
		return nil, err
	}
	t.Trie = loaded
	return t, nil
}

// LoadWordCountFile reads a word-count snapshot from the file at path.
func LoadWordCountFile(path string) (*WordCountTrie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()
	t, err := LoadWordCount(f)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("words", t.Len()).Msg("trie snapshot loaded")
	return t, nil
}

func encodeStringKey(k string) ([]byte, error) { return []byte(k), nil }

func decodeStringKey(b []byte) (string, error) { return string(b), nil }

func encodeCount(n int) ([]byte, error) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(int64(n)))
	return buf, nil
}

func decodeCount(b []byte) (int, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("bad count encoding: %d bytes", len(b))
	}
	return int(int64(binary.BigEndian.Uint64(b))), nil
}
