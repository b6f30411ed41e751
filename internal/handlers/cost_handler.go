package handlers

import (
	"net/http"

	"press_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type CostHandler struct {
	costService services.CostService
}

func NewCostHandler(costService services.CostService) *CostHandler {
	return &CostHandler{costService: costService}
}

func (h *CostHandler) CreateCost(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Price       string `json:"price"`
		DeviceToken string `json:"device_token"`
		UserName    string `json:"user_name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cost, err := h.costService.Add(c.Request.Context(), req.Name, req.Price, req.DeviceToken, req.UserName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cost)
}

func (h *CostHandler) ListCosts(c *gin.Context) {
	costs, err := h.costService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"costs": costs})
}
