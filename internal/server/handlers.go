package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bnema/tempo/internal/application/port"
	"github.com/bnema/tempo/internal/application/usecase"
	"github.com/bnema/tempo/internal/messaging"
)

const maxMessageBytes = 1 << 20

type handlers struct {
	router      *messaging.Router
	bookmarksUC *usecase.ManageBookmarksUseCase
	favicons    port.FaviconResolver
	iconSize    func() int
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// message accepts a { action, requestId, ... } envelope. Protocol failures
// are reported in the body with success=false.
func (h *handlers) message(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxMessageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, messaging.NewErrorResponse("", err))
		return
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, messaging.NewErrorResponse("", errors.New("empty request body")))
		return
	}

	c.JSON(http.StatusOK, h.router.Dispatch(c.Request.Context(), body))
}

func (h *handlers) bookmarks(c *gin.Context) {
	c.JSON(http.StatusOK, h.bookmarksUC.List(c.Request.Context()))
}

func (h *handlers) favicon(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	size := 0
	if h.iconSize != nil {
		size = h.iconSize()
	}
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size must be a positive integer"})
			return
		}
		size = n
	}

	var icon string
	if smart, _ := strconv.ParseBool(c.Query("smart")); smart {
		icon = h.favicons.ResolveSmart(c.Request.Context(), target, size)
	} else {
		icon = h.favicons.Resolve(c.Request.Context(), target, size)
	}

	c.JSON(http.StatusOK, messaging.FaviconResult{URL: target, Favicon: icon})
}
