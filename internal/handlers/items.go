package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"styleai/internal/models"
	"styleai/internal/wardrobe"

	"github.com/gin-gonic/gin"
)

type itemRequest struct {
	Name     string              `json:"name"`
	Category models.ItemCategory `json:"category"`
	Color    string              `json:"color"`
	Seasons  []models.ItemSeason `json:"seasons"`
	ImageURL string              `json:"image_url"`
}

// replyStoreError maps store sentinels onto HTTP statuses.
func replyStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wardrobe.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, wardrobe.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}

func handleListItems(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": store.Items()})
}

func handleCreateItem(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := store.AddItem(models.ClosetItem{
		Name:     req.Name,
		Category: req.Category,
		Color:    req.Color,
		Seasons:  req.Seasons,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		replyStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

func handleGetItem(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	item, found := store.ItemByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

type itemPatchRequest struct {
	Name     *string              `json:"name"`
	Category *models.ItemCategory `json:"category"`
	Color    *string              `json:"color"`
	Seasons  []models.ItemSeason  `json:"seasons"`
	ImageURL *string              `json:"image_url"`
}

func handleUpdateItem(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req itemPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	patch := wardrobe.ItemPatch{
		Name:     req.Name,
		Category: req.Category,
		Color:    req.Color,
		Seasons:  req.Seasons,
		ImageURL: req.ImageURL,
	}
	if err := store.UpdateItem(id, patch); err != nil {
		replyStoreError(c, err)
		return
	}

	item, _ := store.ItemByID(id)
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func handleDeleteItem(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	if err := store.DeleteItem(id); err != nil {
		replyStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

func handleItemStats(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   len(store.Items()),
		"counts":  store.CategoryCounts(),
		"filters": store.Filters(),
		"outfits": len(store.Outfits()),
		"events":  len(store.Events()),
	})
}
