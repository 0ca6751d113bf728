package file

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"file-vault-api/internal/domain/file"
	"file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Pool
}

func NewRepository(db postgres.Pool) file.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFilesByOwner(ctx context.Context, ownerID user.ID, page int) (file.Files, error) {
	rows, err := r.db.Query(ctx, SelectFilesByOwner, ownerID, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.UUID,
			&f.UserID,

			&f.StoredName,
			&f.OriginalName,
			&f.MimeType,
			&f.SizeBytes,

			&f.CreatedAt,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) CreateFile(ctx context.Context, ownerID user.ID, req *file.File) (*file.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		ownerID, req.StoredName, req.OriginalName, req.MimeType, req.SizeBytes,
	).Scan(
		&f.ID,
		&f.UUID,
		&f.UserID,

		&f.StoredName,
		&f.OriginalName,
		&f.MimeType,
		&f.SizeBytes,

		&f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchOwnedFile(ctx context.Context, fileUUID uuid.UUID, ownerID user.ID) (*file.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectOwnedFile, fileUUID.String(), ownerID).Scan(
		&f.ID,
		&f.UUID,
		&f.UserID,

		&f.StoredName,
		&f.OriginalName,
		&f.MimeType,
		&f.SizeBytes,

		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) DeleteOwnedFile(ctx context.Context, fileUUID uuid.UUID, ownerID user.ID) (string, error) {
	var storedName string
	err := r.db.QueryRow(ctx, DeleteOwnedFile, fileUUID.String(), ownerID).Scan(&storedName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrFileNotFound
		}
		return "", err
	}

	return storedName, nil
}
