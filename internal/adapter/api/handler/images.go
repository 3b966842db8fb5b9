package handler

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ewastehub/internal/domain/entity"
	"ewastehub/internal/domain/repository"
	"ewastehub/internal/domain/service"
	"ewastehub/pkg/errors"
	"ewastehub/pkg/logger"
)

// The API accepts at most 5 images per request; the data model itself is
// unbounded.
const maxImagesPerRequest = 5

type uploadedImage struct {
	URL        string
	ObjectName string
	Filename   string
	FileType   string
	Size       int64
}

// uploadListingImages converts the request's multipart image payloads into
// stored objects and returns their references. A non-multipart request
// simply has no images.
func uploadListingImages(c echo.Context, fileService service.FileUploadService, folder string) ([]uploadedImage, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.BadRequest("Invalid multipart form", err)
	}

	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > maxImagesPerRequest {
		return nil, errors.BadRequest("A maximum of 5 images is allowed", nil)
	}

	var uploads []uploadedImage
	for _, file := range files {
		upload, err := uploadOneImage(c, fileService, folder, file)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *upload)
	}

	return uploads, nil
}

func uploadOneImage(c echo.Context, fileService service.FileUploadService, folder string, file *multipart.FileHeader) (*uploadedImage, error) {
	fileType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(fileType, "image/") {
		return nil, errors.BadRequest("Only image uploads are allowed", nil)
	}

	src, err := file.Open()
	if err != nil {
		return nil, errors.Internal("Unable to read uploaded file", err)
	}
	defer src.Close()

	result, err := fileService.UploadFile(c.Request().Context(), src, fileType, file.Filename, folder)
	if err != nil {
		return nil, errors.Internal("Failed to store uploaded image", err)
	}

	return &uploadedImage{
		URL:        result.URL,
		ObjectName: result.ObjectName,
		Filename:   file.Filename,
		FileType:   fileType,
		Size:       result.Size,
	}, nil
}

// recordImageMetadata is best effort; a metadata write failure never fails
// the listing operation itself.
func recordImageMetadata(ctx context.Context, repo repository.FileMetadataRepository, uploads []uploadedImage, entityType, entityID, uploaderID string) {
	for _, upload := range uploads {
		metadata := &entity.FileMetadata{
			ID:         uuid.New().String(),
			URL:        upload.URL,
			ObjectName: upload.ObjectName,
			EntityType: entityType,
			EntityID:   entityID,
			UploadedBy: uploaderID,
			Filename:   upload.Filename,
			FileType:   upload.FileType,
			FileSize:   upload.Size,
			CreatedAt:  time.Now(),
		}
		if err := repo.Create(ctx, metadata); err != nil {
			logger.Warn("Failed to record image metadata for %s: %v", upload.ObjectName, err)
		}
	}
}

// deleteListingImages removes a deleted listing's stored objects, driven by
// the metadata records written at upload time. Best effort, like the writes.
func deleteListingImages(ctx context.Context, repo repository.FileMetadataRepository, fileService service.FileUploadService, entityType, entityID string) {
	if repo == nil || fileService == nil {
		return
	}

	records, err := repo.GetByEntity(ctx, entityType, entityID)
	if err != nil {
		logger.Warn("Failed to look up image metadata for %s %s: %v", entityType, entityID, err)
		return
	}

	for _, record := range records {
		if err := fileService.DeleteFile(ctx, record.ObjectName); err != nil {
			logger.Warn("Failed to delete stored image %s: %v", record.ObjectName, err)
		}
	}
}

func imageURLs(uploads []uploadedImage) []string {
	urls := make([]string, len(uploads))
	for i, upload := range uploads {
		urls[i] = upload.URL
	}
	return urls
}
