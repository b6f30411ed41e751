package handlers

import (
	"net/http"
	"path"

	"press_manager/internal/assets"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadHandler stores line-item reference photos ahead of order
// creation; the returned URL goes into the line item's image_url field.
type UploadHandler struct {
	assetStore assets.Store
}

func NewUploadHandler(assetStore assets.Store) *UploadHandler {
	return &UploadHandler{assetStore: assetStore}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload"})
		return
	}
	defer file.Close()

	assetPath := path.Join("orders", uuid.NewString())
	url, err := h.assetStore.Upload(c.Request.Context(), assetPath, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
