package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcolombo/habit-garden/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats", h.Summary)
}

func (h *StatsHandler) Summary(c *gin.Context) {
	stats, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respondData(c, http.StatusOK, stats)
}
