package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hackerrank-scraper/models"
)

// ProfileLookup resolves a username into its merged leaderboard standing.
type ProfileLookup interface {
	Lookup(ctx context.Context, username string) (*models.ScrapeResponse, error)
}

type Handler struct {
	profiles ProfileLookup
}

func NewHandler(profiles ProfileLookup) *Handler {
	return &Handler{profiles: profiles}
}

// Scrape serves GET /scrape?username=<name>.
func (h *Handler) Scrape(c *gin.Context) {
	username := c.Query("username")
	if strings.TrimSpace(username) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username required"})
		return
	}

	resp, err := h.profiles.Lookup(c.Request.Context(), username)
	if err != nil {
		switch status := HTTPStatusFromError(err); status {
		case http.StatusBadRequest:
			c.JSON(status, gin.H{"error": "Username required"})
		case http.StatusNotFound:
			c.JSON(status, gin.H{"error": "User not found on both tracks"})
		default:
			slog.ErrorContext(c.Request.Context(), "scraping failed", "username", username, "err", err)
			c.JSON(status, gin.H{"error": "Scraping failed", "message": PublicMessage(err)})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
