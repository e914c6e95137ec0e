package handlers

import (
	"net/http"
	"strconv"

	"styleai/internal/models"

	"github.com/gin-gonic/gin"
)

type outfitRequest struct {
	Name    string `json:"name"`
	ItemIDs []int  `json:"item_ids"`
}

func handleListOutfits(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"outfits": store.Outfits()})
}

// handleCreateOutfit stores a manually assembled outfit. Reasoning is never
// accepted here; only the suggestion flow sets it.
func handleCreateOutfit(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}

	var req outfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Outfit name is required"})
		return
	}

	id, err := store.AddOutfit(models.Outfit{Name: req.Name, ItemIDs: req.ItemIDs})
	if err != nil {
		replyStoreError(c, err)
		return
	}

	outfit, _ := store.OutfitByID(id)
	c.JSON(http.StatusCreated, gin.H{"outfit": outfit})
}

func handleGetOutfit(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid outfit id"})
		return
	}

	outfit, found := store.OutfitByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Outfit not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"outfit": outfit})
}
