package handlers

import (
	"net/http"
	"strconv"

	directoryRepo "smartmeet/database/repository/directory"
	"smartmeet/models"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler exposes read-only directory browsing.
type DirectoryHandler struct {
	Repo directoryRepo.Repository
}

func NewDirectoryHandler(repo directoryRepo.Repository) *DirectoryHandler {
	return &DirectoryHandler{Repo: repo}
}

// ListParticipants returns the full directory.
func (h *DirectoryHandler) ListParticipants(c *gin.Context) {
	participants, err := h.Repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list participants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"participants": participants})
}

// SearchParticipants runs a fuzzy directory search: ?q=<query>&limit=<n>.
func (h *DirectoryHandler) SearchParticipants(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}

	limit := models.MaxMatchCandidates
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	participants, err := h.Repo.Search(c.Request.Context(), query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "directory search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"participants": participants})
}
