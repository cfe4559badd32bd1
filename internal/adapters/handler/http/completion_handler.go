package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mcolombo/habit-garden/internal/core/domain"
	"github.com/mcolombo/habit-garden/internal/core/services"
)

// defaultHistoryDays is how far back the completions listing reaches when the
// caller gives no explicit range.
const defaultHistoryDays = 30

type CompletionHandler struct {
	svc *services.CompletionService
}

func NewCompletionHandler(svc *services.CompletionService) *CompletionHandler {
	return &CompletionHandler{svc: svc}
}

func (h *CompletionHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits/:id")
	{
		habits.POST("/complete", h.Complete)
		habits.DELETE("/complete", h.Uncomplete)
		habits.GET("/completions", h.List)
	}
}

func (h *CompletionHandler) Complete(c *gin.Context) {
	id, ok := habitID(c)
	if !ok {
		return
	}

	completion, err := h.svc.Complete(c.Request.Context(), id, c.Query("date"))
	if err != nil {
		fail(c, err)
		return
	}

	respondData(c, http.StatusCreated, completion)
}

func (h *CompletionHandler) Uncomplete(c *gin.Context) {
	id, ok := habitID(c)
	if !ok {
		return
	}

	if err := h.svc.Uncomplete(c.Request.Context(), id, c.Query("date")); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CompletionHandler) List(c *gin.Context) {
	id, ok := habitID(c)
	if !ok {
		return
	}

	to := c.Query("to")
	if to == "" {
		to = domain.FormatDay(time.Now())
	}
	toDay, err := domain.ParseDay(to)
	if err != nil {
		fail(c, err)
		return
	}

	from := c.Query("from")
	if from == "" {
		end, _ := time.Parse("2006-01-02", toDay)
		from = domain.FormatDay(end.AddDate(0, 0, -defaultHistoryDays))
	}
	fromDay, err := domain.ParseDay(from)
	if err != nil {
		fail(c, err)
		return
	}
	if fromDay > toDay {
		respondError(c, http.StatusBadRequest, errors.New("'from' must not be after 'to'"))
		return
	}

	completions, err := h.svc.ListRange(c.Request.Context(), id, fromDay, toDay)
	if err != nil {
		fail(c, err)
		return
	}

	respondData(c, http.StatusOK, completions)
}
