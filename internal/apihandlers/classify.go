package apihandlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"newsdesk/pkg/classifier"
)

// ClassifyRequest is the JSON body for POST /classify.
type ClassifyRequest struct {
	Text string `json:"text"`
}

// ClassifyHandler runs the keyword classifier over arbitrary text and returns
// the full ranked category distribution.
func (h *APIHandler) ClassifyHandler(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	res, err := h.App.ClassificationService.Classify(req.Text)
	if err != nil {
		if errors.Is(err, classifier.ErrEmptyText) {
			BadRequest(c, "text must contain at least one word")
			return
		}
		Internal(c, fmt.Sprintf("classification failed: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":    res.Category,
		"confidence":  res.Confidence,
		"predictions": res.Predictions,
	})
}
