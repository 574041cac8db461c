package campaign

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// Currently running promotions (public)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	campaigns, err := h.repo.ListActive(c.Request.Context(), time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if campaigns == nil {
		campaigns = []Campaign{}
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}
