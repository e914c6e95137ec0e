package handlers

import (
	"database/sql"
	"net/http"

	"styleai/internal/database"
	emailService "styleai/internal/email"
	"styleai/internal/logger"
	"styleai/internal/models"
	"styleai/internal/wardrobe"

	"github.com/gin-gonic/gin"
)

type eventRequest struct {
	Date       string   `json:"date"`
	Occasion   string   `json:"occasion"`
	OutfitID   int      `json:"outfit_id"`
	TimesOfDay []string `json:"times_of_day"`
}

type eventPatchRequest struct {
	Date       *string  `json:"date"`
	Occasion   *string  `json:"occasion"`
	OutfitID   *int     `json:"outfit_id"`
	TimesOfDay []string `json:"times_of_day"`
}

// handleListEvents returns all events, one day with ?date=, or a window with
// ?from=&to=.
func handleListEvents(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}

	if date := c.Query("date"); date != "" {
		c.JSON(http.StatusOK, gin.H{"events": store.EventsOn(date)})
		return
	}

	from, to := c.Query("from"), c.Query("to")
	if from != "" && to != "" {
		c.JSON(http.StatusOK, gin.H{"events": store.EventsBetween(from, to)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": store.Events()})
}

func handleCreateEvent(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	event, err := store.AddEvent(models.PlannedEvent{
		Date:       req.Date,
		Occasion:   req.Occasion,
		OutfitID:   req.OutfitID,
		TimesOfDay: req.TimesOfDay,
	})
	if err != nil {
		replyStoreError(c, err)
		return
	}

	sendEventReminder(c, store, event)
	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// sendEventReminder mails the user their planned outfit. Email failures are
// logged, never surfaced; the event is already committed.
func sendEventReminder(c *gin.Context, store *wardrobe.Store, event *models.PlannedEvent) {
	emailSvc, _ := c.Get("email_service")
	service, ok := emailSvc.(*emailService.Service)
	if !ok || !service.IsEnabled() {
		return
	}

	outfit, found := store.OutfitByID(event.OutfitID)
	if !found {
		return
	}

	db := c.MustGet("db").(*sql.DB)
	user, err := database.GetUserByID(db, event.UserID)
	if err != nil {
		logger.Warn("Failed to load user for reminder", "user_id", event.UserID, "error", err)
		return
	}

	if err := service.SendEventReminder(user, event, &outfit); err != nil {
		logger.Warn("Failed to send event reminder",
			"email", user.Email,
			"event_id", event.ID,
			"error", err)
	}
}

func handleGetEvent(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}

	event, found := store.EventByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

func handleUpdateEvent(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}

	var req eventPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id := c.Param("id")
	patch := wardrobe.EventPatch{
		Date:       req.Date,
		Occasion:   req.Occasion,
		OutfitID:   req.OutfitID,
		TimesOfDay: req.TimesOfDay,
	}
	if err := store.UpdateEvent(id, patch); err != nil {
		replyStoreError(c, err)
		return
	}

	event, _ := store.EventByID(id)
	c.JSON(http.StatusOK, gin.H{"event": event})
}

func handleDeleteEvent(c *gin.Context) {
	store, ok := userStore(c)
	if !ok {
		return
	}

	if err := store.DeleteEvent(c.Param("id")); err != nil {
		replyStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
