package handlers

import (
	"database/sql"
	"net/http"
	"sync"

	"styleai/internal/config"
	"styleai/internal/database"
	"styleai/internal/email"
	"styleai/internal/middleware"
	"styleai/internal/wardrobe"

	"github.com/gin-gonic/gin"
)

// storeCache keeps one hydrated wardrobe.Store per logged-in user. Stores
// write through to sqlite, so the cache is only ever ahead of the database by
// an in-flight request.
type storeCache struct {
	mu     sync.Mutex
	db     *sql.DB
	stores map[int]*wardrobe.Store
}

func newStoreCache(db *sql.DB) *storeCache {
	return &storeCache{db: db, stores: make(map[int]*wardrobe.Store)}
}

func (sc *storeCache) storeFor(userID int) (*wardrobe.Store, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if store, ok := sc.stores[userID]; ok {
		return store, nil
	}

	items, err := database.GetItems(sc.db, userID)
	if err != nil {
		return nil, err
	}
	outfits, err := database.GetOutfits(sc.db, userID)
	if err != nil {
		return nil, err
	}
	events, err := database.GetEvents(sc.db, userID)
	if err != nil {
		return nil, err
	}
	profile, err := database.GetProfile(sc.db, userID)
	if err != nil {
		return nil, err
	}

	store := wardrobe.New(userID, nil, &database.Remote{DB: sc.db})
	store.Hydrate(items, outfits, events, profile)
	sc.stores[userID] = store
	return store, nil
}

func (sc *storeCache) evict(userID int) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	delete(sc.stores, userID)
}

// userSuggester remembers which store a cached Suggester was built around, so
// the cache can tell a stale entry from a live one.
type userSuggester struct {
	store     *wardrobe.Store
	suggester *wardrobe.Suggester
}

var (
	stores        *storeCache
	suggesters    map[int]userSuggester
	suggestersMu  sync.Mutex
	suggestClient wardrobe.SuggestionClient
)

// suggesterFor returns the cached Suggester only while it is bound to the
// caller's current store. When the store was evicted and rehydrated, a
// Suggester built around the old instance would read from and write into a
// store nothing else sees, so the cache rebuilds instead.
func suggesterFor(userID int, store *wardrobe.Store) *wardrobe.Suggester {
	suggestersMu.Lock()
	defer suggestersMu.Unlock()
	if s, ok := suggesters[userID]; ok && s.store == store {
		return s.suggester
	}
	s := wardrobe.NewSuggester(store, suggestClient)
	suggesters[userID] = userSuggester{store: store, suggester: s}
	return s
}

func evictSuggester(userID int) {
	suggestersMu.Lock()
	defer suggestersMu.Unlock()
	delete(suggesters, userID)
}

func addEmailServiceContext(emailService *email.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("email_service", emailService)
		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *sql.DB, cfg *config.Config, emailService *email.Service, client wardrobe.SuggestionClient) {
	stores = newStoreCache(db)
	suggesters = make(map[int]userSuggester)
	suggestClient = client

	r.Use(middleware.LogRequests())
	r.Use(middleware.SecurityHeaders(cfg))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(cfg))
	r.Use(addEmailServiceContext(emailService))

	r.POST("/api/register", middleware.AuthRateLimit(cfg), handleRegister(db, cfg))
	r.POST("/api/login", middleware.AuthRateLimit(cfg), handleLogin(db, cfg))
	r.POST("/api/logout", middleware.AuthRequired(db, cfg), handleLogout(db))

	protected := r.Group("/api")
	protected.Use(middleware.AuthRequired(db, cfg))
	protected.Use(middleware.CSRF(cfg))
	{
		protected.GET("/csrf-token", handleCSRFToken)

		protected.GET("/items", handleListItems)
		protected.POST("/items", handleCreateItem)
		protected.GET("/items/stats", handleItemStats)
		protected.GET("/items/:id", handleGetItem)
		protected.PUT("/items/:id", handleUpdateItem)
		protected.DELETE("/items/:id", handleDeleteItem)

		protected.GET("/outfits", handleListOutfits)
		protected.POST("/outfits", handleCreateOutfit)
		protected.GET("/outfits/:id", handleGetOutfit)

		protected.GET("/events", handleListEvents)
		protected.POST("/events", handleCreateEvent)
		protected.GET("/events/:id", handleGetEvent)
		protected.PUT("/events/:id", handleUpdateEvent)
		protected.DELETE("/events/:id", handleDeleteEvent)

		protected.POST("/suggestions", middleware.SuggestionRateLimit(cfg), handleGenerateSuggestions)

		protected.GET("/profile", handleGetProfile)
		protected.PUT("/profile", handleUpdateProfile)
	}
}

func handleCSRFToken(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	userID := c.MustGet("user_id").(int)

	token, err := database.CreateCSRFToken(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create CSRF token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"csrf_token": token.Token})
}

// userStore resolves the caller's store, replying 500 itself on failure.
func userStore(c *gin.Context) (*wardrobe.Store, bool) {
	userID := c.MustGet("user_id").(int)
	store, err := stores.storeFor(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wardrobe"})
		return nil, false
	}
	return store, true
}
