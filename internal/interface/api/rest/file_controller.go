package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-vault-api/internal/application/ports"
	"file-vault-api/internal/infrastructure/blob"
	fileDB "file-vault-api/internal/infrastructure/db/postgres/file"
	"file-vault-api/internal/infrastructure/jwt"
	"file-vault-api/internal/interface/api/rest/dto/file"
	"file-vault-api/internal/interface/api/rest/middleware"
	"file-vault-api/internal/interface/api/rest/validator"
)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	auth := middleware.AuthMiddleware(jwtService)
	r.GET(RouteFiles, auth, fc.GetFilesHandler)
	r.POST(RouteFiles, auth, fc.UploadFileHandler)
	r.DELETE(RouteFile, auth, fc.DeleteFileHandler)

	return fc
}

func (fc *FileController) GetFilesHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}
	uuid, ok := principalUUID(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "missing principal"},
		)
		return
	}

	files, err := fc.fileService.FindFiles(c.Request.Context(), uuid, page)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, file.ResponseData{
		Data: file.ToResponseFiles(files),
	})
}

func (fc *FileController) UploadFileHandler(c *gin.Context) {
	uuid, ok := principalUUID(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "missing principal"},
		)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fc.fileService.UploadFile(c.Request.Context(), uuid, fh)
	if err != nil {
		switch {
		case errors.Is(err, blob.ErrUnsupportedType), errors.Is(err, blob.ErrFileTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to upload a file"},
			)
			fc.logger.Error("UploadFile() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusCreated, file.ToResponseFile(*f))
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	uuid, ok := principalUUID(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "missing principal"},
		)
		return
	}

	ok, fileUUID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	err := fc.fileService.DeleteFile(c.Request.Context(), uuid, fileUUID)
	if err != nil {
		if errors.Is(err, fileDB.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete file"},
		)
		fc.logger.Error("DeleteFile() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}
