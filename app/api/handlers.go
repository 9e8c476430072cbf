package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"newslens/app/cfg"
	"newslens/app/database"
	"newslens/app/news"
)

// defaultKeyword is analyzed when the caller omits the keyword parameter.
const defaultKeyword = "default topic"

func NewHandler(userRepo database.UserRepository, fetcher NewsFetcher,
	aggregator AggregatorInterface, topicSource TopicSource) *Handler {
	return &Handler{
		userRepo:   userRepo,
		fetcher:    fetcher,
		aggregator: aggregator,
		topics:     topicSource,
	}
}

// AnalyzeTopic fetches news for a keyword and returns per-article sentiment
// and entity annotations. The query language follows the logged-in user's
// stored preference.
func (h *Handler) AnalyzeTopic(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}

	keyword := c.DefaultQuery("keyword", defaultKeyword)
	langCode := news.LanguageCode(user.Language)

	articles, err := h.fetcher.Search(c.Request.Context(), keyword, langCode)
	if err != nil {
		h.renderFetchError(c, err)
		return
	}

	analyzed := h.aggregator.Run(c.Request.Context(), articles)

	c.JSON(http.StatusOK, analyzed)
}

// LatestNews fetches and analyzes the most recently published articles,
// ignoring any keyword.
func (h *Handler) LatestNews(c *gin.Context) {
	if user := h.currentUser(c); user == nil {
		return
	}

	articles, err := h.fetcher.Latest(c.Request.Context())
	if err != nil {
		h.renderFetchError(c, err)
		return
	}

	analyzed := h.aggregator.Run(c.Request.Context(), articles)

	c.JSON(http.StatusOK, analyzed)
}

func (h *Handler) ListTopics(c *gin.Context) {
	c.JSON(http.StatusOK, h.topics.GetTopics())
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   cfg.GetVersion(),
	}

	if userCount, err := h.userRepo.GetUserCount(); err == nil {
		health["users"] = userCount
	}

	health["loaded_topics"] = h.topics.GetTopicCount()

	c.JSON(http.StatusOK, health)
}

// renderFetchError maps the fetcher's error taxonomy onto HTTP responses:
// upstream rejection carries the upstream message, transport failure is a
// 503, anything else is a generic 500. None of them is retried.
func (h *Handler) renderFetchError(c *gin.Context, err error) {
	var apiErr *news.APIError
	var unavailable *news.UnavailableError

	switch {
	case errors.As(err, &apiErr):
		slog.Error("News API rejected the request", "code", apiErr.Code, "message", apiErr.Message)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "News API Error: " + apiErr.Message,
		})
	case errors.As(err, &unavailable):
		slog.Error("News service unreachable", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Failed to connect to the news service",
		})
	default:
		slog.Error("News fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "An internal server error occurred",
		})
	}
}

// currentUser loads the user record for the session. Writes the error
// response and returns nil when the session does not resolve to a user.
func (h *Handler) currentUser(c *gin.Context) *database.User {
	userID, ok := c.Get(sessionUserKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil
	}

	id, ok := userID.(int64)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil
	}

	user, err := h.userRepo.GetByID(id)
	if err != nil {
		slog.Error("Database error", "operation", "get_user", "user_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred"})
		return nil
	}

	if user == nil {
		// Session outlived the account
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil
	}

	return user
}
