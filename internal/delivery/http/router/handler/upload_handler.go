package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// maxUploadBytes caps a single image upload at 5MB.
const maxUploadBytes = 5 << 20

// allowedImageTypes lists the accepted image MIME types.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	Storage service.ImageStorage
	Logger  *slog.Logger
}

// UploadHandler holds dependencies for image upload handlers
type UploadHandler struct {
	storage service.ImageStorage
	logger  *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// UploadImage handles a single multipart image upload
func (h *UploadHandler) UploadImage(c echo.Context) error {
	upload, ok := h.storeImage(c, "file")
	if !ok {
		return nil
	}

	return response.Success(c, http.StatusCreated, upload)
}

// UploadImages handles a multi-file multipart upload
func (h *UploadHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid multipart form")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return response.BadRequest(c, "NO_FILES", "No files provided")
	}

	folder := uploadFolder(c)
	uploads := make([]*service.Upload, 0, len(files))
	for _, fileHeader := range files {
		data, ok := readImageFile(c, fileHeader)
		if !ok {
			return nil
		}

		upload, err := h.storage.Store(c.Request().Context(), data, folder, fileHeader.Filename)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		uploads = append(uploads, upload)
	}

	return response.Success(c, http.StatusCreated, uploads)
}

// DeleteImage handles removing a stored image by its key
func (h *UploadHandler) DeleteImage(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return response.BadRequest(c, "MISSING_KEY", "Image key is required")
	}

	if err := h.storage.Delete(c.Request().Context(), key); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Image deleted successfully"})
}

// storeImage validates and stores one multipart file field. It writes the
// error response itself and reports false on failure.
func (h *UploadHandler) storeImage(c echo.Context, field string) (*service.Upload, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		_ = response.BadRequest(c, "NO_FILE", "No file provided")

		return nil, false
	}

	data, ok := readImageFile(c, fileHeader)
	if !ok {
		return nil, false
	}

	upload, err := h.storage.Store(c.Request().Context(), data, uploadFolder(c), fileHeader.Filename)
	if err != nil {
		_ = response.HandleAppError(c, err)

		return nil, false
	}

	return upload, true
}

// readImageFile enforces the size and MIME gates and reads the payload. It
// writes the error response itself and reports false on failure.
func readImageFile(c echo.Context, fileHeader *multipart.FileHeader) ([]byte, bool) {
	if fileHeader.Size > maxUploadBytes {
		_ = response.BadRequest(c, "FILE_TOO_LARGE", "Image must be 5MB or smaller")

		return nil, false
	}

	mimeType := strings.TrimSpace(strings.Split(fileHeader.Header.Get("Content-Type"), ";")[0])
	if !allowedImageTypes[mimeType] {
		_ = response.BadRequest(c, "INVALID_FILE_TYPE", "Only JPEG, PNG, GIF and WebP images are accepted")

		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = response.InternalServerError(c, "UPLOAD_FAILED", "Failed to read uploaded file")

		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		_ = response.InternalServerError(c, "UPLOAD_FAILED", "Failed to read uploaded file")

		return nil, false
	}
	if len(data) > maxUploadBytes {
		_ = response.BadRequest(c, "FILE_TOO_LARGE", "Image must be 5MB or smaller")

		return nil, false
	}

	return data, true
}

// uploadFolder picks the destination folder hint from the query, defaulting
// to a general bucket folder.
func uploadFolder(c echo.Context) string {
	folder := c.QueryParam("folder")
	switch folder {
	case "vendors", "goods", "locations", "avatars":
		return folder
	default:
		return "misc"
	}
}
