package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mcolombo/habit-garden/internal/core/domain"
	"github.com/mcolombo/habit-garden/internal/core/services"
)

type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler {
	return &HabitHandler{svc: svc}
}

type createHabitRequest struct {
	Name       string `json:"name" binding:"required"`
	Frequency  string `json:"frequency"`
	WeeklyMask string `json:"weekly_mask"`
	Difficulty string `json:"difficulty"`
}

// updateHabitRequest is a patch: absent fields stay untouched.
type updateHabitRequest struct {
	Name       *string `json:"name"`
	Frequency  *string `json:"frequency"`
	WeeklyMask *string `json:"weekly_mask"`
	Archived   *bool   `json:"archived"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.GET("", h.List)
		habits.POST("", h.Create)
		habits.GET("/:id", h.Get)
		habits.PATCH("/:id", h.Update)
	}
}

func habitID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, domain.ErrHabitNotFound)
		return 0, false
	}
	return id, true
}

func (h *HabitHandler) List(c *gin.Context) {
	habits, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respondData(c, http.StatusOK, habits)
}

func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	habit, err := h.svc.Create(c.Request.Context(), services.CreateHabitInput{
		Name:       req.Name,
		Frequency:  req.Frequency,
		WeeklyMask: req.WeeklyMask,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respondData(c, http.StatusCreated, habit)
}

func (h *HabitHandler) Get(c *gin.Context) {
	id, ok := habitID(c)
	if !ok {
		return
	}

	habit, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respondData(c, http.StatusOK, habit)
}

func (h *HabitHandler) Update(c *gin.Context) {
	id, ok := habitID(c)
	if !ok {
		return
	}

	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	habit, err := h.svc.Update(c.Request.Context(), services.UpdateHabitInput{
		ID:         id,
		Name:       req.Name,
		Frequency:  req.Frequency,
		WeeklyMask: req.WeeklyMask,
		Archived:   req.Archived,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respondData(c, http.StatusOK, habit)
}
