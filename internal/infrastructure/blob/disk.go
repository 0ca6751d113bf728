package blob

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"file-vault-api/config"
)

// 10MB
const MaxSizeBytes = int64(10 << 20)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file exceeds the 10MB limit")

	allowedMimeTypes = map[string]struct{}{
		"application/pdf": {},
		"image/jpeg":      {},
		"image/png":       {},
	}
)

// Store keeps raw file bytes on local disk under generated collision-resistant
// names. The retrieval path is derived from the stored name and served
// statically outside this package.
type Store struct {
	logger   *zap.Logger
	dir      string
	basePath string
}

func New(logger *zap.Logger, cfg config.Storage) (*Store, error) {
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	return &Store{
		logger:   logger,
		dir:      cfg.UploadsDir,
		basePath: strings.TrimSuffix(cfg.PublicBasePath, "/"),
	}, nil
}

// Admit applies the type/size admission policy to declared values. The size
// is re-enforced against the actual stream in Save, so a forged declared
// size cannot bypass the cap.
func (s *Store) Admit(mimeType string, sizeBytes int64) error {
	if _, ok := allowedMimeTypes[mimeType]; !ok {
		return ErrUnsupportedType
	}
	if sizeBytes <= 0 || sizeBytes > MaxSizeBytes {
		return ErrFileTooLarge
	}

	return nil
}

// Save streams r to disk under a generated name and returns the name and the
// byte count actually written. A stream longer than the cap, a read error
// (client abort included) or a write error all leave no partial file behind.
func (s *Store) Save(r io.Reader, originalName string) (string, int64, error) {
	storedName := genStoredName(originalName)
	fpath := filepath.Join(s.dir, storedName)

	dst, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("blob write failed: %w", err)
	}

	written, err := io.Copy(dst, io.LimitReader(r, MaxSizeBytes+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		s.discard(fpath)
		return "", 0, fmt.Errorf("blob write failed: %w", err)
	}
	if written > MaxSizeBytes {
		s.discard(fpath)
		return "", 0, ErrFileTooLarge
	}

	return storedName, written, nil
}

// Remove deletes the blob. Callers decide whether a failure here is fatal;
// after a committed metadata delete it is logged only.
func (s *Store) Remove(storedName string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(storedName)))
}

func (s *Store) PublicURL(storedName string) string {
	return s.basePath + "/" + storedName
}

func (s *Store) discard(fpath string) {
	if err := os.Remove(fpath); err != nil {
		s.logger.Error("failed to discard partial blob", zap.String("path", fpath), zap.Error(err))
	}
}

// genStoredName mints "<unix-millis>-<9-digit random><ext>". The name is
// opaque: only the extension survives from the user-supplied file name.
func genStoredName(originalName string) string {
	ext := strings.ToLower(path.Ext(filepath.Base(originalName)))
	if len(ext) > 10 {
		ext = ""
	}

	return fmt.Sprintf("%d-%09d%s", time.Now().UnixMilli(), rand.Int63n(1e9), ext)
}
