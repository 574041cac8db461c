package signup

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"keiyaku/internal/selection"
	"keiyaku/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Render data for the product-selection step
// --------------------------------------------------
func (h *Handler) GetStep(c *gin.Context) {
	view, err := h.service.View(c.Request.Context(), c.GetString("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// One field edit
// --------------------------------------------------
func (h *Handler) ApplyEvent(c *gin.Context) {
	var ev selection.Event
	if err := c.BindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	switch ev.Kind {
	case selection.EventSetSimType,
		selection.EventSetSimCardType,
		selection.EventSetPlanCategory,
		selection.EventSetPlan,
		selection.EventSetCallingOption,
		selection.EventToggleAddOn:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown event kind"})
		return
	}

	view, err := h.service.ApplyEvent(c.Request.Context(), c.GetString("sessionID"), ev)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// Validated submit + navigation decision
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	result, err := h.service.Submit(c.Request.Context(), c.GetString("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}

	if len(result.FieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"field_errors": result.FieldErrors})
		return
	}

	c.JSON(http.StatusOK, gin.H{"next": result.Next})
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
