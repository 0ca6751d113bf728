package file

import (
	"file-vault-api/internal/domain/file"
)

func ToResponseFile(fDomain file.File) File {
	var f = File{
		UUID:         fDomain.UUID,
		OriginalName: fDomain.OriginalName,
		MimeType:     fDomain.MimeType,
		SizeBytes:    fDomain.SizeBytes,
		DownloadURL:  fDomain.DownloadURL,
		CreatedAt:    fDomain.CreatedAt,
	}

	return f
}

func ToResponseFiles(fsDomain file.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}
