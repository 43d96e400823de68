package apihandlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsdesk/internal/models"
)

// RecordReadHandler handles POST /articles/:id/read for the authenticated
// user.
func (h *APIHandler) RecordReadHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		Unauthorized(c, "authentication required")
		return
	}

	id, err := parseArticleID(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	entry, err := h.App.HistoryService.RecordRead(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			NotFound(c, fmt.Sprintf("Article not found with ID: %d", id))
			return
		}
		Internal(c, fmt.Sprintf("failed to record read: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// ListHistoryHandler handles GET /history for the authenticated user.
func (h *APIHandler) ListHistoryHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		Unauthorized(c, "authentication required")
		return
	}

	limit := 50
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 || parsed > 200 {
			BadRequest(c, "invalid limit: "+l)
			return
		}
		limit = parsed
	}

	items, err := h.App.HistoryService.ListHistory(c.Request.Context(), user.ID, limit)
	if err != nil {
		Internal(c, fmt.Sprintf("failed to list history: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": items})
}

// RecommendationsHandler handles GET /recommendations for the authenticated
// user.
func (h *APIHandler) RecommendationsHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		Unauthorized(c, "authentication required")
		return
	}

	limit := 0 // service applies its configured default
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 || parsed > 50 {
			BadRequest(c, "invalid limit: "+l)
			return
		}
		limit = parsed
	}

	recs, err := h.App.RecommendationService.Recommend(c.Request.Context(), user.ID, limit)
	if err != nil {
		Internal(c, fmt.Sprintf("failed to build recommendations: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
