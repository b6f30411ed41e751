package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"press_manager/internal/models"
	"press_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// optionalImage opens the "image" part of a multipart form if one was
// sent. A nil reader means no new image was picked.
func optionalImage(c *gin.Context) (io.Reader, *multipart.FileHeader, error) {
	header, err := c.FormFile("image")
	if err == http.ErrMissingFile || err == http.ErrNotMultipart {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return file, header, nil
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	catalog, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": catalog})
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	image, _, err := optionalImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload"})
		return
	}
	if closer, ok := image.(io.Closer); ok {
		defer closer.Close()
	}

	service, err := h.catalogService.Add(
		c.Request.Context(),
		c.PostForm("name"),
		c.PostForm("price"),
		models.PricingMode(c.PostForm("pricing_mode")),
		image,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	image, _, err := optionalImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload"})
		return
	}
	if closer, ok := image.(io.Closer); ok {
		defer closer.Close()
	}

	service, err := h.catalogService.Update(
		c.Request.Context(),
		c.Param("id"),
		c.PostForm("name"),
		c.PostForm("price"),
		models.PricingMode(c.PostForm("pricing_mode")),
		image,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.catalogService.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
