package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

var testData = bytes.Repeat([]byte("dmgcore rom image "), 512)

// compressWith compresses testData with the writer returned by newWriter.
func compressWith(t *testing.T, newWriter func(w io.Writer) (io.WriteCloser, error)) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := newWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(testData)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	zstdData := func(t *testing.T) []byte {
		enc, err := zstd.NewWriter(nil)
		require.NoError(t, err)
		defer enc.Close()
		return enc.EncodeAll(testData, nil)
	}

	tests := []struct {
		name string
		data func(t *testing.T) []byte
	}{
		{"rom.gb", func(t *testing.T) []byte { return testData }},
		{"rom.bin", func(t *testing.T) []byte { return testData }},
		{"rom.gb.gz", func(t *testing.T) []byte {
			return compressWith(t, func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil })
		}},
		{"rom.gb.xz", func(t *testing.T) []byte {
			return compressWith(t, func(w io.Writer) (io.WriteCloser, error) { return xz.NewWriter(w) })
		}},
		{"rom.gb.br", func(t *testing.T) []byte {
			return compressWith(t, func(w io.Writer) (io.WriteCloser, error) { return brotli.NewWriter(w), nil })
		}},
		{"rom.gb.lz4", func(t *testing.T) []byte {
			return compressWith(t, func(w io.Writer) (io.WriteCloser, error) { return lz4.NewWriter(w), nil })
		}},
		{"rom.gb.zst", zstdData},
		{"ROM.GB.GZ", func(t *testing.T) []byte {
			return compressWith(t, func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil })
		}},
		{"rom.zip", func(t *testing.T) []byte {
			var buf bytes.Buffer
			zw := zip.NewWriter(&buf)
			f, err := zw.Create("rom.gb")
			require.NoError(t, err)
			_, err = f.Write(testData)
			require.NoError(t, err)
			require.NoError(t, zw.Close())
			return buf.Bytes()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := LoadFile(writeFile(t, tt.name, tt.data(t)))
			require.NoError(t, err)
			assert.Equal(t, testData, data)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.gb"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("empty zip", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, zip.NewWriter(&buf).Close())

		_, err := LoadFile(writeFile(t, "empty.zip", buf.Bytes()))
		assert.ErrorIs(t, err, ErrEmptyArchive)
	})
	for _, name := range []string{"corrupt.gz", "corrupt.xz", "corrupt.7z", "corrupt.zip", "corrupt.zst"} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, name, []byte("definitely not compressed")))
			assert.Error(t, err)
		})
	}
}
