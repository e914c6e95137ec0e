package handlers

import (
	"net/http"

	"styleai/internal/wardrobe"

	"github.com/gin-gonic/gin"
)

type profilePatchRequest struct {
	Name             *string `json:"name"`
	AvatarURL        *string `json:"avatar_url"`
	StylePreferences *string `json:"style_preferences"`
}

func handleGetProfile(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": store.Profile()})
}

func handleUpdateProfile(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}

	var req profilePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	patch := wardrobe.ProfilePatch{
		Name:             req.Name,
		AvatarURL:        req.AvatarURL,
		StylePreferences: req.StylePreferences,
	}
	if err := store.UpdateProfile(patch); err != nil {
		replyStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": store.Profile()})
}
