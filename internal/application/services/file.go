package services

import (
	"context"
	"errors"
	"mime/multipart"
	"path"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"file-vault-api/internal/application/ports"
	domain "file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/mq"
	fileDTO "file-vault-api/internal/interface/api/rest/dto/file"
)

const maxBaseNameLen = 100

// ErrStorage hides blob/metadata I/O detail from callers; the cause is
// logged at the orchestration boundary, never returned upward.
var ErrStorage = errors.New("storage failure")

type FileService struct {
	logger         *zap.Logger
	blobs          ports.BlobStore
	fileRepository domain.Repository
	userRepository user.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewFileService(
	logger *zap.Logger,
	blobs ports.BlobStore,
	fileRepository domain.Repository,
	userRepository user.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		logger:         logger,
		blobs:          blobs,
		fileRepository: fileRepository,
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (fs *FileService) FindFiles(ctx context.Context, userUUID user.UUID, page int) (domain.Files, error) {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	fls, err := fs.fileRepository.FetchFilesByOwner(ctx, id, page)
	if err != nil {
		return nil, err
	}

	for _, f := range fls {
		f.DownloadURL = fs.blobs.PublicURL(f.StoredName)
	}

	return fls, nil
}

// UploadFile is a two-step saga: blob write first, metadata insert second.
// A failed insert triggers a best-effort removal of the freshly written blob
// so no orphan survives the request.
func (fs *FileService) UploadFile(
	ctx context.Context,
	userUUID user.UUID,
	in *multipart.FileHeader,
) (*domain.File, error) {
	mimeType := in.Header.Get("Content-Type")
	if err := fs.blobs.Admit(mimeType, in.Size); err != nil {
		return nil, err
	}

	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	originalName := sanitizeFileName(in.Filename)

	// Save re-counts the stream, so a forged declared size cannot pass.
	storedName, written, err := fs.blobs.Save(f, originalName)
	if err != nil {
		return nil, err
	}

	out, err := fs.fileRepository.CreateFile(ctx, id, &domain.File{
		StoredName:   storedName,
		OriginalName: originalName,
		MimeType:     mimeType,
		SizeBytes:    uint64(written),
	})
	if err != nil {
		if rmErr := fs.blobs.Remove(storedName); rmErr != nil {
			fs.logger.Error("failed to remove orphaned blob after insert failure",
				zap.String("stored_name", storedName), zap.Error(rmErr))
		}
		fs.logger.Error("file metadata insert failed", zap.Error(err))
		return nil, ErrStorage
	}
	out.DownloadURL = fs.blobs.PublicURL(out.StoredName)

	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  mq.ActionFileUploaded,
		UserID:  userUUID.String(),
		Payload: fileDTO.ToResponseFile(*out),
	}

	fs.mCounter.WithLabelValues("files_uploaded_total").Inc()

	return out, nil
}

// DeleteFile commits the metadata delete first. A blob removal failure
// afterwards leaves an orphaned file on disk: logged, not retried, and the
// operation still reports success.
func (fs *FileService) DeleteFile(ctx context.Context, userUUID user.UUID, fileUUID uuid.UUID) error {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return err
	}

	storedName, err := fs.fileRepository.DeleteOwnedFile(ctx, fileUUID, id)
	if err != nil {
		return err
	}

	if err = fs.blobs.Remove(storedName); err != nil {
		fs.logger.Error("failed to remove blob after metadata delete",
			zap.String("stored_name", storedName), zap.Error(err))
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  mq.ActionFileDeleted,
		UserID:  userUUID.String(),
		Payload: fileUUID.String(),
	}

	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return nil
}

// sanitizeFileName folds the untrusted user-supplied name into safe ASCII.
// The result is display metadata only; it never names anything on disk.
func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := strings.ToLower(path.Ext(s))
	base := strings.TrimSuffix(s, ext)

	//  [a-z0-9], '-' and '_', dot/space → '-'
	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-' || r == '_':
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		case r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "file"
	}

	for utf8.RuneCountInString(base)+len(ext) > maxBaseNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
