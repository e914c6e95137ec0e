package handlers

import (
	"context"
	"database/sql"
	"testing"

	"styleai/internal/database"
	"styleai/internal/models"
	"styleai/internal/wardrobe"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestEnv(t *testing.T, client wardrobe.SuggestionClient) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal("Failed to open test database:", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatal("Failed to run migrations:", err)
	}

	stores = newStoreCache(db)
	suggesters = make(map[int]userSuggester)
	suggestClient = client

	return db
}

type echoSuggestionClient struct {
	itemIDs []int
}

func (c *echoSuggestionClient) GenerateOutfitSuggestions(ctx context.Context, req wardrobe.SuggestionRequest) (*wardrobe.SuggestionResponse, error) {
	return &wardrobe.SuggestionResponse{OutfitSuggestions: []wardrobe.OutfitSuggestion{{
		Outfit:    "Suggested",
		Occasion:  "casual",
		Reasoning: "Works for a relaxed day",
		ItemIDs:   c.itemIDs,
	}}}, nil
}

func TestSuggesterRebindsWhenStoreChanges(t *testing.T) {
	setupTestEnv(t, &echoSuggestionClient{})

	oldStore := wardrobe.New(1, nil, nil)
	first := suggesterFor(1, oldStore)
	if again := suggesterFor(1, oldStore); again != first {
		t.Error("Same store should reuse the cached suggester")
	}

	newStore := wardrobe.New(1, nil, nil)
	second := suggesterFor(1, newStore)
	if second == first {
		t.Error("A different store must not receive the suggester bound to the old one")
	}
}

func TestSuggestionsLandInLiveStoreAfterRelogin(t *testing.T) {
	client := &echoSuggestionClient{}
	db := setupTestEnv(t, client)

	user, err := database.CreateUser(db, "Avery", "avery@example.com", "password123")
	if err != nil {
		t.Fatal("Failed to create user:", err)
	}

	store, err := stores.storeFor(user.ID)
	if err != nil {
		t.Fatal("Failed to load store:", err)
	}
	item, err := store.AddItem(models.ClosetItem{
		Name:     "Shirt",
		Category: models.CategoryTops,
		Seasons:  []models.ItemSeason{models.SeasonAll},
	})
	if err != nil {
		t.Fatal("Failed to add item:", err)
	}
	client.itemIDs = []int{item.ID}

	if s := suggesterFor(user.ID, store); s == nil {
		t.Fatal("Expected a suggester")
	}

	// Logout drops both caches; the next request rehydrates from sqlite.
	stores.evict(user.ID)
	evictSuggester(user.ID)

	relogged, err := stores.storeFor(user.ID)
	if err != nil {
		t.Fatal("Failed to reload store:", err)
	}
	if relogged == store {
		t.Fatal("Eviction did not produce a fresh store")
	}

	suggester := suggesterFor(user.ID, relogged)
	results, err := suggester.Generate(context.Background(), "casual")
	if err != nil {
		t.Fatal("Failed to generate suggestions:", err)
	}
	if len(results) != 1 {
		t.Fatalf("Got %d suggestions, want 1", len(results))
	}

	// The store served to subsequent requests must see the stored outfit.
	if _, found := relogged.OutfitByID(results[0].Outfit.ID); !found {
		t.Error("Suggested outfit is missing from the live store")
	}
	outfits := relogged.Outfits()
	if len(outfits) != 1 || !outfits[0].Suggested() {
		t.Errorf("Live store outfits = %+v, want the one suggested outfit", outfits)
	}
}
