package session

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"keiyaku/internal/navigation"
	"keiyaku/internal/selection"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// Start a signup session
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		ContractType string `json:"contract_type"`
	}
	// body is optional; default to a new contract
	_ = c.ShouldBindJSON(&req)

	contractType := selection.ContractType(req.ContractType)
	switch contractType {
	case "":
		contractType = selection.ContractNew
	case selection.ContractNew, selection.ContractMNP:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown contract type"})
		return
	}

	sess := New(contractType)
	if err := h.repo.Save(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := GenerateToken(sess.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sess.ID,
		"token":      token,
	})
}

// --------------------------------------------------
// Current session snapshot
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	sess, err := h.repo.Find(c.Request.Context(), sessionID)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sess)
}

// --------------------------------------------------
// Browser back/forward reconciliation
// --------------------------------------------------
func (h *Handler) SetCurrentPath(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	var req struct {
		Path string `json:"path"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !navigation.Known(req.Path) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown step path"})
		return
	}

	store := NewStore(h.repo, sessionID)
	if err := store.Hydrate(c.Request.Context()); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := store.SetCurrentPath(c.Request.Context(), req.Path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"current_path": req.Path})
}
