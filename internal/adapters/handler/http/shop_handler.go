package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcolombo/habit-garden/internal/core/services"
)

type ShopHandler struct {
	svc *services.ShopService
}

func NewShopHandler(svc *services.ShopService) *ShopHandler {
	return &ShopHandler{svc: svc}
}

type purchaseRequest struct {
	ItemID int64 `json:"item_id" binding:"required"`
}

func (h *ShopHandler) RegisterRoutes(router *gin.RouterGroup) {
	shop := router.Group("/shop")
	{
		shop.GET("/items", h.Items)
		shop.GET("/balance", h.Balance)
		shop.GET("/purchases", h.Purchases)
		shop.POST("/purchases", h.Purchase)
	}
}

func (h *ShopHandler) Items(c *gin.Context) {
	items, err := h.svc.Items(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respondData(c, http.StatusOK, items)
}

func (h *ShopHandler) Balance(c *gin.Context) {
	report, err := h.svc.Balance(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respondData(c, http.StatusOK, report)
}

func (h *ShopHandler) Purchases(c *gin.Context) {
	purchases, err := h.svc.Purchases(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respondData(c, http.StatusOK, purchases)
}

func (h *ShopHandler) Purchase(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	purchase, err := h.svc.Purchase(c.Request.Context(), req.ItemID)
	if err != nil {
		fail(c, err)
		return
	}

	respondData(c, http.StatusCreated, purchase)
}
