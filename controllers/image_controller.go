package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/blogts/blogapi/config"
	"github.com/blogts/blogapi/models"
	"github.com/blogts/blogapi/store"
	"github.com/blogts/blogapi/utils"
)

// maxImageSize caps uploads at 10MB.
const maxImageSize = 10 * 1024 * 1024

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ImageController handles image uploads and metadata listing. Bytes go to
// the upload directory; only metadata is stored in the database.
type ImageController struct {
	images *store.ImageStore
}

// NewImageController creates a new ImageController instance.
func NewImageController(images *store.ImageStore) *ImageController {
	return &ImageController{images: images}
}

// ListImages returns metadata for every uploaded image.
func (i *ImageController) ListImages(ctx *gin.Context) {
	images, err := i.images.GetAll()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to list images")
		return
	}
	utils.Success(ctx, images)
}

// UploadImage validates, stores the file, and records its metadata.
func (i *ImageController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "missing file")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		utils.Error(ctx, http.StatusBadRequest, 40041, "unsupported file format")
		return
	}
	if file.Size > maxImageSize {
		utils.Error(ctx, http.StatusBadRequest, 40042, "file size cannot be more than 10MB")
		return
	}

	fileName := strings.TrimSpace(ctx.PostForm("file_name"))
	if fileName == "" {
		fileName = strings.TrimSuffix(file.Filename, ext)
	}
	title := strings.TrimSpace(ctx.PostForm("title"))

	cfg := config.Get()
	storedName := uuid.NewString() + ext
	if err := ctx.SaveUploadedFile(file, filepath.Join(cfg.UploadDir, storedName)); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to store file")
		return
	}

	image := models.BlogImage{
		FileName:      fileName,
		FileExtension: ext,
		Title:         title,
		URL:           cfg.UploadBaseURL + "/" + storedName,
	}
	created, err := i.images.Create(&image)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50042, "failed to record image")
		return
	}

	utils.Success(ctx, created)
}
