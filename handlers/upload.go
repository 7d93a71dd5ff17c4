package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Monika-Dangar/real-estate-management/config"
)

type UploadController struct {
	cfg *config.UploadConfig
}

func NewUploadController(cfg *config.UploadConfig) *UploadController {
	return &UploadController{cfg: cfg}
}

// UploadMedia saves a seller's media file under the uploads directory with
// a uuid-prefixed name and returns its relative path.
func (uc *UploadController) UploadMedia(c echo.Context) error {
	file, err := c.FormFile("media")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
	}

	if file.Size > uc.cfg.MaxSizeMB*1024*1024 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "File too large"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to read file"})
	}
	defer src.Close()

	if err := os.MkdirAll(uc.cfg.Dir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store file"})
	}

	storedName := uuid.NewString() + "-" + filepath.Base(file.Filename)
	dstPath := filepath.Join(uc.cfg.Dir, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store file"})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store file"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":  "File Uploaded",
		"filePath": "/" + filepath.ToSlash(dstPath),
	})
}
