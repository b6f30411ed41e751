package handlers

import (
	"net/http"

	"press_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type ArchiveHandler struct {
	archiveService services.ArchiveService
}

func NewArchiveHandler(archiveService services.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{archiveService: archiveService}
}

func (h *ArchiveHandler) ListDelivered(c *gin.Context) {
	views, err := h.archiveService.Delivered(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": views})
}

func (h *ArchiveHandler) ListDeleted(c *gin.Context) {
	views, err := h.archiveService.Deleted(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": views})
}

func (h *ArchiveHandler) PurgeOrder(c *gin.Context) {
	err := h.archiveService.Purge(c.Request.Context(), c.Param("collection"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
