package wardrobe

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"styleai/internal/logger"
	"styleai/internal/models"
)

// ErrSuperseded is returned when a suggestion response arrives after a newer
// request has been issued; its results are discarded, never merged.
var ErrSuperseded = errors.New("superseded by a newer suggestion request")

// SuggestionItem is the closet item shape sent to the AI collaborator.
type SuggestionItem struct {
	ID       int                 `json:"id"`
	Name     string              `json:"name"`
	Category models.ItemCategory `json:"category"`
	Color    string              `json:"color"`
	Seasons  []models.ItemSeason `json:"season"`
	LastWorn *string             `json:"last_worn,omitempty"`
}

type SuggestionRequest struct {
	ClosetItems     []SuggestionItem `json:"closet_items"`
	UserPreferences string           `json:"user_preferences,omitempty"`
	Occasion        string           `json:"occasion,omitempty"`
}

type OutfitSuggestion struct {
	Outfit    string `json:"outfit"`
	Occasion  string `json:"occasion"`
	Reasoning string `json:"reasoning"`
	ItemIDs   []int  `json:"item_ids"`
}

type SuggestionResponse struct {
	OutfitSuggestions []OutfitSuggestion `json:"outfit_suggestions"`
}

// SuggestionClient is the external AI collaborator.
type SuggestionClient interface {
	GenerateOutfitSuggestions(ctx context.Context, req SuggestionRequest) (*SuggestionResponse, error)
}

// Suggestion pairs a stored outfit with the occasion label the collaborator
// attached to it.
type Suggestion struct {
	Outfit   models.Outfit `json:"outfit"`
	Occasion string        `json:"occasion"`
}

// Suggester turns closet state plus user intent into stored outfits. Only
// the most recent in-flight request may apply its results: each call takes a
// sequence number, and responses whose number is no longer current are
// dropped at apply time.
type Suggester struct {
	store  *Store
	client SuggestionClient

	mu  sync.Mutex
	seq uint64
}

func NewSuggester(store *Store, client SuggestionClient) *Suggester {
	return &Suggester{store: store, client: client}
}

func (g *Suggester) begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return g.seq
}

// Generate asks the collaborator for outfit suggestions and stores each
// accepted one as an outfit with reasoning set. Item ids the collaborator
// returns are external input: ids that are not in the closet are dropped,
// and a suggestion left with no valid ids is skipped entirely. Generating
// suggestions never schedules an event; that is the caller's move.
func (g *Suggester) Generate(ctx context.Context, occasion string) ([]Suggestion, error) {
	seq := g.begin()

	items := g.store.Items()
	closet := make([]SuggestionItem, 0, len(items))
	known := make(map[int]struct{}, len(items))
	for i := range items {
		closet = append(closet, SuggestionItem{
			ID:       items[i].ID,
			Name:     items[i].Name,
			Category: items[i].Category,
			Color:    items[i].Color,
			Seasons:  items[i].Seasons,
			LastWorn: items[i].LastWorn,
		})
		known[items[i].ID] = struct{}{}
	}

	req := SuggestionRequest{
		ClosetItems:     closet,
		UserPreferences: g.store.Profile().StylePreferences,
		Occasion:        occasion,
	}

	resp, err := g.client.GenerateOutfitSuggestions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("suggestion request: %w", err)
	}

	g.mu.Lock()
	if seq != g.seq {
		g.mu.Unlock()
		logger.Info("discarding stale suggestion response", "seq", seq)
		return nil, ErrSuperseded
	}
	defer g.mu.Unlock()

	var results []Suggestion
	for _, suggestion := range resp.OutfitSuggestions {
		itemIDs := make([]int, 0, len(suggestion.ItemIDs))
		for _, id := range suggestion.ItemIDs {
			if _, ok := known[id]; ok {
				itemIDs = append(itemIDs, id)
			} else {
				logger.Warn("suggestion referenced unknown closet item", "item_id", id)
			}
		}
		if len(suggestion.ItemIDs) > 0 && len(itemIDs) == 0 {
			logger.Warn("skipping suggestion with no valid closet items")
			continue
		}

		reasoning := suggestion.Reasoning
		outfit := models.Outfit{
			Name:      suggestion.Outfit,
			ItemIDs:   itemIDs,
			Reasoning: &reasoning,
		}
		outfitID, err := g.store.AddOutfit(outfit)
		if err != nil {
			return results, fmt.Errorf("store suggested outfit: %w", err)
		}
		stored, _ := g.store.OutfitByID(outfitID)
		results = append(results, Suggestion{Outfit: stored, Occasion: suggestion.Occasion})
	}

	return results, nil
}
