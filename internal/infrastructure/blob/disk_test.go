package blob

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"file-vault-api/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(zap.NewNop(), config.Storage{
		UploadsDir:     t.TempDir(),
		PublicBasePath: "/uploads",
	})
	require.NoError(t, err)
	return s
}

func TestAdmit_Table(t *testing.T) {
	tests := []struct {
		name      string
		mimeType  string
		sizeBytes int64
		wantErr   error
	}{
		{"pdf ok", "application/pdf", 1024, nil},
		{"jpeg ok", "image/jpeg", MaxSizeBytes, nil},
		{"png ok", "image/png", 2048, nil},
		{"text rejected", "text/plain", 10, ErrUnsupportedType},
		{"no type rejected", "", 10, ErrUnsupportedType},
		{"over 10MB rejected", "application/pdf", MaxSizeBytes + 1, ErrFileTooLarge},
		{"11MB pdf rejected", "application/pdf", int64(11 << 20), ErrFileTooLarge},
		{"empty rejected", "image/png", 0, ErrFileTooLarge},
	}

	s := newTestStore(t)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := s.Admit(tt.mimeType, tt.sizeBytes)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSave_WritesCountedBytes(t *testing.T) {
	s := newTestStore(t)
	payload := bytes.Repeat([]byte("a"), 2048)

	storedName, written, err := s.Save(bytes.NewReader(payload), "photo.PNG")
	require.NoError(t, err)
	assert.Equal(t, int64(2048), written)
	assert.True(t, strings.HasSuffix(storedName, ".png"), "extension is lowercased and kept: %s", storedName)
	assert.NotContains(t, storedName, "photo", "stored name must be opaque")

	b, err := os.ReadFile(filepath.Join(s.dir, storedName))
	require.NoError(t, err)
	assert.Equal(t, payload, b)
}

func TestSave_StoredNamesDoNotCollide(t *testing.T) {
	s := newTestStore(t)

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		name, _, err := s.Save(strings.NewReader("x"), "a.pdf")
		require.NoError(t, err)
		_, dup := seen[name]
		require.False(t, dup, "duplicate stored name %s", name)
		seen[name] = struct{}{}
	}
}

func TestSave_OversizeStreamLeavesNoFile(t *testing.T) {
	s := newTestStore(t)

	// declared size lies; the stream itself is over the cap
	r := io.LimitReader(neverEnding('b'), MaxSizeBytes+1)
	_, _, err := s.Save(r, "big.pdf")
	require.ErrorIs(t, err, ErrFileTooLarge)

	entries, err := os.ReadDir(s.dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "partial blob must be discarded")
}

func TestSave_ReadErrorLeavesNoFile(t *testing.T) {
	s := newTestStore(t)

	r := io.MultiReader(strings.NewReader("partial"), failingReader{})
	_, _, err := s.Save(r, "doc.pdf")
	require.Error(t, err)

	entries, err := os.ReadDir(s.dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "partial blob must be discarded on aborted stream")
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)

	storedName, _, err := s.Save(strings.NewReader("content"), "doc.pdf")
	require.NoError(t, err)

	require.NoError(t, s.Remove(storedName))
	_, err = os.Stat(filepath.Join(s.dir, storedName))
	require.True(t, os.IsNotExist(err))

	// already gone
	require.Error(t, s.Remove(storedName))
}

func TestRemove_IgnoresPathTraversal(t *testing.T) {
	s := newTestStore(t)

	outside := filepath.Join(filepath.Dir(s.dir), "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	_ = s.Remove("../victim.txt")

	_, err := os.Stat(outside)
	require.NoError(t, err, "remove must never escape the uploads dir")
}

func TestPublicURL(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, "/uploads/123-000000001.png", s.PublicURL("123-000000001.png"))
}

type neverEnding byte

func (b neverEnding) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(b)
	}
	return len(p), nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("client aborted") }
