package ports

import "io"

type BlobStore interface {
	Admit(mimeType string, sizeBytes int64) error
	Save(r io.Reader, originalName string) (storedName string, written int64, err error)
	Remove(storedName string) error
	PublicURL(storedName string) string
}
