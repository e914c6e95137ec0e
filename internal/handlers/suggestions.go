package handlers

import (
	"errors"
	"net/http"

	"styleai/internal/logger"
	"styleai/internal/wardrobe"

	"github.com/gin-gonic/gin"
)

type suggestionRequest struct {
	Occasion string `json:"occasion"`
}

func handleGenerateSuggestions(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}

	if len(store.Items()) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Add some closet items before asking for suggestions"})
		return
	}

	var req suggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID := c.MustGet("user_id").(int)
	suggester := suggesterFor(userID, store)

	suggestions, err := suggester.Generate(c.Request.Context(), req.Occasion)
	if err != nil {
		if errors.Is(err, wardrobe.ErrSuperseded) {
			c.JSON(http.StatusConflict, gin.H{"error": "A newer suggestion request replaced this one"})
			return
		}
		logger.Error("Failed to generate suggestions", "user_id", userID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Suggestion service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
