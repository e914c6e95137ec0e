package wardrobe

import (
	"errors"
	"fmt"
	"testing"

	"styleai/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(1, nil, nil)
}

func addTestItem(t *testing.T, s *Store, name string, category models.ItemCategory) *models.ClosetItem {
	t.Helper()
	item, err := s.AddItem(models.ClosetItem{
		Name:     name,
		Category: category,
		Color:    "Blue",
		Seasons:  []models.ItemSeason{models.SeasonSummer},
	})
	if err != nil {
		t.Fatalf("Failed to add item %s: %v", name, err)
	}
	return item
}

func addTestOutfit(t *testing.T, s *Store, name string, itemIDs ...int) int {
	t.Helper()
	id, err := s.AddOutfit(models.Outfit{Name: name, ItemIDs: itemIDs})
	if err != nil {
		t.Fatalf("Failed to add outfit %s: %v", name, err)
	}
	return id
}

func addTestEvent(t *testing.T, s *Store, date string, outfitID int) *models.PlannedEvent {
	t.Helper()
	event, err := s.AddEvent(models.PlannedEvent{Date: date, Occasion: "Dinner", OutfitID: outfitID})
	if err != nil {
		t.Fatalf("Failed to add event on %s: %v", date, err)
	}
	return event
}

func lastWorn(t *testing.T, s *Store, itemID int) *string {
	t.Helper()
	item, ok := s.ItemByID(itemID)
	if !ok {
		t.Fatalf("Item %d not found", itemID)
	}
	return item.LastWorn
}

func TestAddItemAssignsUniqueIDs(t *testing.T) {
	s := newTestStore(t)

	seen := make(map[int]bool)
	for i := 0; i < 10; i++ {
		item := addTestItem(t, s, fmt.Sprintf("Shirt %d", i), models.CategoryTops)
		if seen[item.ID] {
			t.Fatalf("Duplicate item id %d", item.ID)
		}
		seen[item.ID] = true
	}

	if err := s.DeleteItem(5); err != nil {
		t.Fatalf("Failed to delete item: %v", err)
	}
	item := addTestItem(t, s, "After delete", models.CategoryTops)
	if seen[item.ID] {
		t.Errorf("Id %d was reused after a delete", item.ID)
	}
}

func TestAddItemValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddItem(models.ClosetItem{Name: "Bad", Category: "Hats", Seasons: []models.ItemSeason{models.SeasonAll}})
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for unknown category, got %v", err)
	}

	_, err = s.AddItem(models.ClosetItem{Name: "Bad", Category: models.CategoryTops})
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for empty seasons, got %v", err)
	}

	_, err = s.AddItem(models.ClosetItem{Name: "Bad", Category: models.CategoryTops, Seasons: []models.ItemSeason{"Monsoon"}})
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for unknown season, got %v", err)
	}
}

func TestUpdateItemMergesPatch(t *testing.T) {
	s := newTestStore(t)
	item := addTestItem(t, s, "Linen Shirt", models.CategoryTops)

	name := "Linen Shirt (white)"
	color := "White"
	if err := s.UpdateItem(item.ID, ItemPatch{Name: &name, Color: &color}); err != nil {
		t.Fatalf("Failed to update item: %v", err)
	}

	got, _ := s.ItemByID(item.ID)
	if got.Name != name || got.Color != color {
		t.Errorf("Patch not applied: got %q/%q", got.Name, got.Color)
	}
	if got.Category != models.CategoryTops {
		t.Errorf("Unpatched field changed: category became %q", got.Category)
	}
}

func TestUpdateItemKeepsImageWhenPatchOmitsIt(t *testing.T) {
	s := newTestStore(t)
	item, err := s.AddItem(models.ClosetItem{
		Name:     "Coat",
		Category: models.CategoryOuterwear,
		Seasons:  []models.ItemSeason{models.SeasonWinter},
		ImageURL: "/uploads/coat.jpg",
	})
	if err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}

	name := "Wool Coat"
	empty := ""
	if err := s.UpdateItem(item.ID, ItemPatch{Name: &name, ImageURL: &empty}); err != nil {
		t.Fatalf("Failed to update item: %v", err)
	}

	got, _ := s.ItemByID(item.ID)
	if got.ImageURL != "/uploads/coat.jpg" {
		t.Errorf("Empty image patch cleared the stored image: got %q", got.ImageURL)
	}
}

func TestUpdateMissingRecordsReturnNotFound(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpdateItem(99, ItemPatch{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateItem on missing id: expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteItem(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteItem on missing id: expected ErrNotFound, got %v", err)
	}
	if err := s.UpdateEvent("nope", EventPatch{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateEvent on missing id: expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteEvent("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteEvent on missing id: expected ErrNotFound, got %v", err)
	}
}

func TestAddEventPropagatesLastWorn(t *testing.T) {
	s := newTestStore(t)
	shirt := addTestItem(t, s, "Shirt", models.CategoryTops)
	jeans := addTestItem(t, s, "Jeans", models.CategoryBottoms)
	shoes := addTestItem(t, s, "Sneakers", models.CategoryShoes)
	outfitID := addTestOutfit(t, s, "Casual", shirt.ID, jeans.ID)

	addTestEvent(t, s, "2024-05-01", outfitID)

	for _, id := range []int{shirt.ID, jeans.ID} {
		worn := lastWorn(t, s, id)
		if worn == nil || *worn != "2024-05-01" {
			t.Errorf("Item %d lastWorn = %v, want 2024-05-01", id, worn)
		}
	}
	if worn := lastWorn(t, s, shoes.ID); worn != nil {
		t.Errorf("Item outside the outfit got lastWorn %q", *worn)
	}
}

func TestAddEventRecordsPreviousLastWorn(t *testing.T) {
	s := newTestStore(t)
	shirt := addTestItem(t, s, "Shirt", models.CategoryTops)
	outfitID := addTestOutfit(t, s, "Casual", shirt.ID)

	addTestEvent(t, s, "2024-05-01", outfitID)
	addTestEvent(t, s, "2024-06-01", outfitID)

	item, _ := s.ItemByID(shirt.ID)
	if item.LastWorn == nil || *item.LastWorn != "2024-06-01" {
		t.Errorf("lastWorn = %v, want 2024-06-01", item.LastWorn)
	}
	if item.PreviousLastWorn == nil || *item.PreviousLastWorn != "2024-05-01" {
		t.Errorf("previousLastWorn = %v, want 2024-05-01", item.PreviousLastWorn)
	}
}

func TestAddEventRejectsBadDate(t *testing.T) {
	s := newTestStore(t)

	for _, date := range []string{"", "05/01/2024", "2024-5-1", "not a date"} {
		_, err := s.AddEvent(models.PlannedEvent{Date: date, OutfitID: 1})
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("Date %q: expected ErrInvalid, got %v", date, err)
		}
	}
}

func TestAddEventWithUnknownOutfitTouchesNothing(t *testing.T) {
	s := newTestStore(t)
	shirt := addTestItem(t, s, "Shirt", models.CategoryTops)

	event := addTestEvent(t, s, "2024-05-01", 42)
	if _, ok := s.EventByID(event.ID); !ok {
		t.Fatal("Event was not stored")
	}
	if worn := lastWorn(t, s, shirt.ID); worn != nil {
		t.Errorf("Item lastWorn changed to %q without a matching outfit", *worn)
	}
}

// Moving an event to a new date carries every outfit item's lastWorn along
// with it, and deleting the event afterwards restores the state before the
// event existed.
func TestUpdateEventMovesDateThenDeleteReverts(t *testing.T) {
	s := newTestStore(t)
	shirt := addTestItem(t, s, "Shirt", models.CategoryTops)
	outfitID := addTestOutfit(t, s, "Casual", shirt.ID)
	event := addTestEvent(t, s, "2024-05-01", outfitID)

	newDate := "2024-05-02"
	if err := s.UpdateEvent(event.ID, EventPatch{Date: &newDate}); err != nil {
		t.Fatalf("Failed to update event: %v", err)
	}
	if worn := lastWorn(t, s, shirt.ID); worn == nil || *worn != newDate {
		t.Fatalf("lastWorn after reschedule = %v, want %s", worn, newDate)
	}

	if err := s.DeleteEvent(event.ID); err != nil {
		t.Fatalf("Failed to delete event: %v", err)
	}
	item, _ := s.ItemByID(shirt.ID)
	if item.LastWorn != nil {
		t.Errorf("lastWorn after delete = %q, want nil", *item.LastWorn)
	}
	if item.PreviousLastWorn != nil {
		t.Errorf("previousLastWorn after delete = %q, want nil", *item.PreviousLastWorn)
	}
}

func TestUpdateEventSameOutfitSameDateIsNoOp(t *testing.T) {
	s := newTestStore(t)
	shirt := addTestItem(t, s, "Shirt", models.CategoryTops)
	outfitID := addTestOutfit(t, s, "Casual", shirt.ID)
	event := addTestEvent(t, s, "2024-05-01", outfitID)

	before, _ := s.ItemByID(shirt.ID)

	occasion := "Wedding"
	if err := s.UpdateEvent(event.ID, EventPatch{Occasion: &occasion}); err != nil {
		t.Fatalf("Failed to update event: %v", err)
	}

	after, _ := s.ItemByID(shirt.ID)
	if *after.LastWorn != *before.LastWorn {
		t.Errorf("lastWorn changed on an occasion-only edit: %q -> %q", *before.LastWorn, *after.LastWorn)
	}
	if (after.PreviousLastWorn == nil) != (before.PreviousLastWorn == nil) {
		t.Error("previousLastWorn changed on an occasion-only edit")
	}

	got, _ := s.EventByID(event.ID)
	if got.Occasion != occasion {
		t.Errorf("Occasion = %q, want %q", got.Occasion, occasion)
	}
}

func TestUpdateEventSwapsOutfit(t *testing.T) {
	s := newTestStore(t)
	shirt := addTestItem(t, s, "Shirt", models.CategoryTops)
	dress := addTestItem(t, s, "Dress", models.CategoryDresses)
	casual := addTestOutfit(t, s, "Casual", shirt.ID)
	formal := addTestOutfit(t, s, "Formal", dress.ID)
	event := addTestEvent(t, s, "2024-05-01", casual)

	if err := s.UpdateEvent(event.ID, EventPatch{OutfitID: &formal}); err != nil {
		t.Fatalf("Failed to update event: %v", err)
	}

	if worn := lastWorn(t, s, shirt.ID); worn != nil {
		t.Errorf("Removed item kept lastWorn %q", *worn)
	}
	if worn := lastWorn(t, s, dress.ID); worn == nil || *worn != "2024-05-01" {
		t.Errorf("Added item lastWorn = %v, want 2024-05-01", worn)
	}
}

// An item shared by two events keeps the newer event's date when the older
// event is edited or deleted. The revert only fires when the item's lastWorn
// still equals the edited event's date.
func TestEventOwnershipGuardsLastWorn(t *testing.T) {
	s := newTestStore(t)
	shirt := addTestItem(t, s, "Shirt", models.CategoryTops)
	outfitID := addTestOutfit(t, s, "Casual", shirt.ID)

	first := addTestEvent(t, s, "2024-05-01", outfitID)
	addTestEvent(t, s, "2024-06-01", outfitID)

	if err := s.DeleteEvent(first.ID); err != nil {
		t.Fatalf("Failed to delete event: %v", err)
	}
	if worn := lastWorn(t, s, shirt.ID); worn == nil || *worn != "2024-06-01" {
		t.Errorf("Deleting the older event clobbered lastWorn: got %v, want 2024-06-01", worn)
	}
}

func TestUpdateEventDoesNotClobberNewerWear(t *testing.T) {
	s := newTestStore(t)
	shirt := addTestItem(t, s, "Shirt", models.CategoryTops)
	outfitID := addTestOutfit(t, s, "Casual", shirt.ID)

	first := addTestEvent(t, s, "2024-05-01", outfitID)
	addTestEvent(t, s, "2024-06-01", outfitID)

	// Rescheduling the first event to an even earlier date must not pull
	// lastWorn back behind the second event... the first event no longer
	// owns the item's lastWorn, so only the forward half applies.
	newDate := "2024-04-01"
	if err := s.UpdateEvent(first.ID, EventPatch{Date: &newDate}); err != nil {
		t.Fatalf("Failed to update event: %v", err)
	}

	item, _ := s.ItemByID(shirt.ID)
	if item.LastWorn == nil || *item.LastWorn != newDate {
		t.Errorf("lastWorn = %v, want %s", item.LastWorn, newDate)
	}
	if item.PreviousLastWorn == nil || *item.PreviousLastWorn != "2024-06-01" {
		t.Errorf("previousLastWorn = %v, want 2024-06-01", item.PreviousLastWorn)
	}
}

func TestDeleteItemLeavesRefsUntilPruned(t *testing.T) {
	s := newTestStore(t)
	shirt := addTestItem(t, s, "Shirt", models.CategoryTops)
	jeans := addTestItem(t, s, "Jeans", models.CategoryBottoms)
	outfitID := addTestOutfit(t, s, "Casual", shirt.ID, jeans.ID)

	if err := s.DeleteItem(shirt.ID); err != nil {
		t.Fatalf("Failed to delete item: %v", err)
	}
	outfit, _ := s.OutfitByID(outfitID)
	if len(outfit.ItemIDs) != 2 {
		t.Fatalf("Delete cascaded into the outfit: %v", outfit.ItemIDs)
	}

	removed, err := s.PruneItemRefs()
	if err != nil {
		t.Fatalf("Failed to prune refs: %v", err)
	}
	if removed != 1 {
		t.Errorf("Pruned %d refs, want 1", removed)
	}
	outfit, _ = s.OutfitByID(outfitID)
	if len(outfit.ItemIDs) != 1 || outfit.ItemIDs[0] != jeans.ID {
		t.Errorf("Outfit refs after prune = %v, want [%d]", outfit.ItemIDs, jeans.ID)
	}
}

func TestOutfitDiscriminator(t *testing.T) {
	s := newTestStore(t)
	shirt := addTestItem(t, s, "Shirt", models.CategoryTops)

	manualID := addTestOutfit(t, s, "Manual", shirt.ID)
	manual, _ := s.OutfitByID(manualID)
	if manual.Suggested() {
		t.Error("Manual outfit reports as suggested")
	}

	reasoning := "Light layers for a warm evening"
	suggestedID, err := s.AddOutfit(models.Outfit{Name: "Suggested", ItemIDs: []int{shirt.ID}, Reasoning: &reasoning})
	if err != nil {
		t.Fatalf("Failed to add outfit: %v", err)
	}
	suggested, _ := s.OutfitByID(suggestedID)
	if !suggested.Suggested() {
		t.Error("Outfit with reasoning does not report as suggested")
	}
}

func TestSubscribeReceivesChanges(t *testing.T) {
	s := newTestStore(t)

	var changes []Change
	unsubscribe := s.Subscribe(func(c Change) {
		changes = append(changes, c)
	})

	shirt := addTestItem(t, s, "Shirt", models.CategoryTops)
	outfitID := addTestOutfit(t, s, "Casual", shirt.ID)
	addTestEvent(t, s, "2024-05-01", outfitID)

	// item add, outfit add, event add plus one item update from propagation
	if len(changes) != 4 {
		t.Fatalf("Got %d changes, want 4: %+v", len(changes), changes)
	}
	if changes[0].Collection != CollectionItems || changes[0].Op != OpAdd {
		t.Errorf("First change = %+v, want items/add", changes[0])
	}
	if changes[2].Collection != CollectionEvents || changes[2].Op != OpAdd {
		t.Errorf("Third change = %+v, want events/add", changes[2])
	}
	if changes[3].Collection != CollectionItems || changes[3].Op != OpUpdate {
		t.Errorf("Fourth change = %+v, want items/update", changes[3])
	}

	unsubscribe()
	addTestItem(t, s, "After unsubscribe", models.CategoryTops)
	if len(changes) != 4 {
		t.Errorf("Subscriber fired after unsubscribe: %d changes", len(changes))
	}
}

func TestSubscriberMayReadStore(t *testing.T) {
	s := newTestStore(t)

	var seen int
	s.Subscribe(func(c Change) {
		seen = len(s.Items())
	})

	addTestItem(t, s, "Shirt", models.CategoryTops)
	if seen != 1 {
		t.Errorf("Subscriber read %d items, want 1", seen)
	}
}

func TestSnapshotsAreStableBetweenMutations(t *testing.T) {
	s := newTestStore(t)
	addTestItem(t, s, "Shirt", models.CategoryTops)

	first := s.Items()
	second := s.Items()
	if &first[0] != &second[0] {
		t.Error("Items() rebuilt the snapshot without a mutation")
	}

	addTestItem(t, s, "Jeans", models.CategoryBottoms)
	third := s.Items()
	if len(third) != 2 {
		t.Fatalf("Snapshot has %d items, want 2", len(third))
	}
	if &first[0] == &third[0] {
		t.Error("Mutation did not invalidate the snapshot")
	}
}

func TestQueriesReturnCopies(t *testing.T) {
	s := newTestStore(t)
	shirt := addTestItem(t, s, "Shirt", models.CategoryTops)

	got, _ := s.ItemByID(shirt.ID)
	got.Name = "Mutated"
	again, _ := s.ItemByID(shirt.ID)
	if again.Name != "Shirt" {
		t.Error("ItemByID leaked internal state")
	}
}

func TestEventDateQueries(t *testing.T) {
	s := newTestStore(t)
	shirt := addTestItem(t, s, "Shirt", models.CategoryTops)
	outfitID := addTestOutfit(t, s, "Casual", shirt.ID)

	addTestEvent(t, s, "2024-05-01", outfitID)
	addTestEvent(t, s, "2024-05-15", outfitID)
	addTestEvent(t, s, "2024-06-01", outfitID)

	if got := s.EventsOn("2024-05-15"); len(got) != 1 {
		t.Errorf("EventsOn returned %d events, want 1", len(got))
	}
	if got := s.EventsBetween("2024-05-01", "2024-05-31"); len(got) != 2 {
		t.Errorf("EventsBetween returned %d events, want 2", len(got))
	}
	if got := s.EventsBetween("2024-07-01", "2024-07-31"); len(got) != 0 {
		t.Errorf("EventsBetween outside the range returned %d events", len(got))
	}
}

func TestCategoryCountsAndFilters(t *testing.T) {
	s := newTestStore(t)
	addTestItem(t, s, "Shirt", models.CategoryTops)
	addTestItem(t, s, "Tee", models.CategoryTops)
	addTestItem(t, s, "Jeans", models.CategoryBottoms)

	counts := s.CategoryCounts()
	if counts[models.CategoryTops] != 2 || counts[models.CategoryBottoms] != 1 {
		t.Errorf("Unexpected counts: %v", counts)
	}

	opts := s.Filters()
	if len(opts.Colors) != 1 || opts.Colors[0] != "Blue" {
		t.Errorf("Colors = %v, want [Blue]", opts.Colors)
	}
	if len(opts.Seasons) != 1 || opts.Seasons[0] != models.SeasonSummer {
		t.Errorf("Seasons = %v, want [Summer]", opts.Seasons)
	}
}

func TestUpdateProfileMerges(t *testing.T) {
	s := newTestStore(t)
	s.Hydrate(nil, nil, nil, &models.UserProfile{UserID: 1, Name: "Avery", Email: "avery@example.com"})

	prefs := "Minimalist, neutral tones"
	if err := s.UpdateProfile(ProfilePatch{StylePreferences: &prefs}); err != nil {
		t.Fatalf("Failed to update profile: %v", err)
	}

	got := s.Profile()
	if got.StylePreferences != prefs {
		t.Errorf("StylePreferences = %q, want %q", got.StylePreferences, prefs)
	}
	if got.Name != "Avery" || got.Email != "avery@example.com" {
		t.Errorf("Unpatched profile fields changed: %+v", got)
	}
}

func TestHydrateSeedsIDSource(t *testing.T) {
	s := newTestStore(t)
	s.Hydrate(
		[]models.ClosetItem{{ID: 7, Name: "Shirt", Category: models.CategoryTops, Seasons: []models.ItemSeason{models.SeasonAll}}},
		[]models.Outfit{{ID: 3, Name: "Casual", ItemIDs: []int{7}}},
		nil, nil,
	)

	item := addTestItem(t, s, "New", models.CategoryTops)
	if item.ID <= 7 {
		t.Errorf("New item id %d collides with hydrated ids", item.ID)
	}
	outfitID := addTestOutfit(t, s, "New", item.ID)
	if outfitID <= 3 {
		t.Errorf("New outfit id %d collides with hydrated ids", outfitID)
	}
}

// failingRemote rejects every write so tests can assert the store commits
// nothing on persistence failure.
type failingRemote struct{}

var errRemote = errors.New("remote unavailable")

func (failingRemote) CreateItem(models.ClosetItem) (*models.ClosetItem, error) { return nil, errRemote }
func (failingRemote) UpdateItem(models.ClosetItem) error                       { return errRemote }
func (failingRemote) DeleteItem(int, int) error                                { return errRemote }
func (failingRemote) CreateOutfit(models.Outfit) (*models.Outfit, error)       { return nil, errRemote }
func (failingRemote) UpdateOutfit(models.Outfit) error                         { return errRemote }
func (failingRemote) CreateEvent(models.PlannedEvent, []models.ClosetItem) error {
	return errRemote
}
func (failingRemote) UpdateEvent(models.PlannedEvent, []models.ClosetItem) error {
	return errRemote
}
func (failingRemote) DeleteEvent(int, string, []models.ClosetItem) error { return errRemote }
func (failingRemote) SaveProfile(models.UserProfile) error               { return errRemote }

func TestRemoteFailureCommitsNothing(t *testing.T) {
	s := New(1, nil, failingRemote{})

	_, err := s.AddItem(models.ClosetItem{
		Name:     "Shirt",
		Category: models.CategoryTops,
		Seasons:  []models.ItemSeason{models.SeasonAll},
	})
	if !errors.Is(err, errRemote) {
		t.Fatalf("Expected remote error, got %v", err)
	}
	if got := s.Items(); len(got) != 0 {
		t.Errorf("Item committed despite persistence failure: %v", got)
	}
}

func TestRemoteFailureLeavesItemsUntouchedOnEventUpdate(t *testing.T) {
	s := newTestStore(t)
	shirt := addTestItem(t, s, "Shirt", models.CategoryTops)
	outfitID := addTestOutfit(t, s, "Casual", shirt.ID)
	event := addTestEvent(t, s, "2024-05-01", outfitID)

	// Swap in a remote that rejects everything after the store has state.
	s.remote = failingRemote{}

	newDate := "2024-05-02"
	if err := s.UpdateEvent(event.ID, EventPatch{Date: &newDate}); !errors.Is(err, errRemote) {
		t.Fatalf("Expected remote error, got %v", err)
	}

	if worn := lastWorn(t, s, shirt.ID); worn == nil || *worn != "2024-05-01" {
		t.Errorf("lastWorn moved despite persistence failure: %v", worn)
	}
	got, _ := s.EventByID(event.ID)
	if got.Date != "2024-05-01" {
		t.Errorf("Event date moved despite persistence failure: %s", got.Date)
	}
}
