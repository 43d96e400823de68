package apihandlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsdesk/internal/app"
	"newsdesk/internal/models"
	"newsdesk/internal/services"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// ListArticlesHandler handles GET /articles with limit, offset and category
// query parameters.
func (h *APIHandler) ListArticlesHandler(c *gin.Context) {
	params, err := parseListArticlesParams(c)
	if err != nil {
		BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	articles, err := h.App.ArticleService.ListArticles(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			BadRequest(c, err.Error())
			return
		}
		Internal(c, fmt.Sprintf("failed to list articles: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articleListItems(articles)})
}

func parseListArticlesParams(c *gin.Context) (services.ListArticlesParams, error) {
	params := services.ListArticlesParams{
		Limit:    20,
		Category: c.Query("category"),
	}

	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 || parsed > 100 {
			return params, fmt.Errorf("invalid limit: %s", l)
		}
		params.Limit = parsed
	}
	if o := c.Query("offset"); o != "" {
		parsed, err := strconv.Atoi(o)
		if err != nil || parsed < 0 {
			return params, fmt.Errorf("invalid offset: %s", o)
		}
		params.Offset = parsed
	}
	return params, nil
}

// articleListItem is the list representation: the body is replaced by a short
// snippet.
type articleListItem struct {
	*models.Article
	Body    string `json:"body,omitempty"`
	Snippet string `json:"snippet"`
}

func articleListItems(articles []*models.Article) []articleListItem {
	items := make([]articleListItem, len(articles))
	for i, a := range articles {
		items[i] = articleListItem{Article: a, Snippet: services.Snippet(a.Body, 2)}
	}
	return items
}

// GetArticleHandler handles GET /articles/:id.
func (h *APIHandler) GetArticleHandler(c *gin.Context) {
	id, err := parseArticleID(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	article, err := h.App.ArticleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			NotFound(c, fmt.Sprintf("Article not found with ID: %d", id))
			return
		}
		Internal(c, fmt.Sprintf("failed to retrieve article: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// DeleteArticleHandler handles DELETE /articles/:id.
func (h *APIHandler) DeleteArticleHandler(c *gin.Context) {
	id, err := parseArticleID(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	if err := h.App.ArticleService.DeleteArticle(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			NotFound(c, fmt.Sprintf("Article not found with ID: %d", id))
			return
		}
		Internal(c, fmt.Sprintf("failed to delete article: %v", err))
		return
	}

	c.Status(http.StatusNoContent)
}

// FetchHandler handles POST /fetch: enqueues a background fetch job for the
// requested category (or all configured topics when empty).
func (h *APIHandler) FetchHandler(c *gin.Context) {
	var req struct {
		Category string `json:"category"`
	}
	// An empty body is allowed and means "all topics".
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	if err := h.App.JobClient.EnqueueFetchJob(c.Request.Context(), req.Category); err != nil {
		Internal(c, fmt.Sprintf("failed to enqueue fetch job: %v", err))
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "enqueued", "category": req.Category})
}

func parseArticleID(c *gin.Context) (int64, error) {
	idStr := c.Param("id")
	if idStr == "" {
		return 0, fmt.Errorf("missing article ID parameter")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid article ID format: %s", idStr)
	}
	return id, nil
}
