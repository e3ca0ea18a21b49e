package trie

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Run("word count trie", func(t *testing.T) {
		src := FromText("cat cats catacomb apple cats")
		var buf bytes.Buffer
		require.NoError(t, src.Save(&buf))

		dst, err := LoadWordCount(&buf)
		require.NoError(t, err)
		assert.Equal(t, src.Len(), dst.Len())
		for k, v := range src.Items() {
			got, err := dst.Get(k)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
		// replaying entries through Set rebuilds the same traversal order
		srcKeys, _ := src.FindPrefix("")
		dstKeys, _ := dst.FindPrefix("")
		assert.Equal(t, srcKeys, dstKeys)
	})

	t.Run("empty trie", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWordCount().Save(&buf))
		dst, err := LoadWordCount(&buf)
		require.NoError(t, err)
		assert.Equal(t, 0, dst.Len())
	})

	t.Run("generic trie with custom codecs", func(t *testing.T) {
		src := New[byte, []byte, string](SliceCodec[byte]{})
		src.Set([]byte("ab"), "x")
		src.Set([]byte("abc"), "y")

		encode := func(b []byte) ([]byte, error) { return b, nil }
		decodeKey := func(b []byte) ([]byte, error) { return append([]byte(nil), b...), nil }
		encodeVal := func(s string) ([]byte, error) { return []byte(s), nil }
		decodeVal := func(b []byte) (string, error) { return string(b), nil }

		var buf bytes.Buffer
		require.NoError(t, src.Save(&buf, encode, encodeVal))
		dst, err := Load[byte, []byte, string](&buf, SliceCodec[byte]{}, decodeKey, decodeVal)
		require.NoError(t, err)
		v, err := dst.Get([]byte("abc"))
		require.NoError(t, err)
		assert.Equal(t, "y", v)
		assert.Equal(t, 2, dst.Len())
	})

	t.Run("file round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "trie.snap")
		src := FromText("alpha beta beta gamma")
		require.NoError(t, src.SaveFile(path))
		dst, err := LoadWordCountFile(path)
		require.NoError(t, err)
		n, err := dst.Get("beta")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestSnapshotCorruption(t *testing.T) {
	t.Run("bad magic", func(t *testing.T) {
		_, err := LoadWordCount(bytes.NewReader([]byte("XXXX\x01\x00\x00\x00\x00\x00\x00\x00\x00")))
		assert.ErrorContains(t, err, "magic")
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, err := LoadWordCount(bytes.NewReader([]byte("PTRI\x7f\x00\x00\x00\x00\x00\x00\x00\x00")))
		assert.ErrorContains(t, err, "version")
	})

	t.Run("truncated stream", func(t *testing.T) {
		src := FromText("cat dog")
		var buf bytes.Buffer
		require.NoError(t, src.Save(&buf))
		raw := buf.Bytes()
		_, err := LoadWordCount(bytes.NewReader(raw[:len(raw)-3]))
		assert.Error(t, err)
	})

	t.Run("flipped payload byte fails the checksum", func(t *testing.T) {
		src := FromText("cat dog")
		var buf bytes.Buffer
		require.NoError(t, src.Save(&buf))
		raw := buf.Bytes()
		raw[len(raw)-1] ^= 0xff
		_, err := LoadWordCount(bytes.NewReader(raw))
		assert.ErrorContains(t, err, "checksum")
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := LoadWordCount(bytes.NewReader(nil))
		assert.Error(t, err)
	})
}
