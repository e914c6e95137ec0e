package wardrobe

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"styleai/internal/models"
)

var (
	// ErrNotFound is returned when an operation references an id that is
	// absent from its collection.
	ErrNotFound = errors.New("not found")
	// ErrInvalid is returned when input is rejected before any mutation.
	ErrInvalid = errors.New("invalid input")
)

type Collection string

const (
	CollectionItems   Collection = "items"
	CollectionOutfits Collection = "outfits"
	CollectionEvents  Collection = "events"
	CollectionProfile Collection = "profile"
)

type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Change describes a committed mutation. ID is the decimal item/outfit id or
// the event id string; it is empty for profile changes.
type Change struct {
	Collection Collection `json:"collection"`
	Op         Op         `json:"op"`
	ID         string     `json:"id,omitempty"`
}

// Remote is the persistence collaborator. Create calls return the canonical
// record so the store can adopt server-assigned ids. Event calls carry the
// closet items touched by last-worn propagation so an implementation can
// commit them in one transaction. A nil Remote leaves the store purely
// in-memory.
type Remote interface {
	CreateItem(item models.ClosetItem) (*models.ClosetItem, error)
	UpdateItem(item models.ClosetItem) error
	DeleteItem(userID, id int) error
	CreateOutfit(outfit models.Outfit) (*models.Outfit, error)
	UpdateOutfit(outfit models.Outfit) error
	CreateEvent(event models.PlannedEvent, touched []models.ClosetItem) error
	UpdateEvent(event models.PlannedEvent, touched []models.ClosetItem) error
	DeleteEvent(userID int, id string, touched []models.ClosetItem) error
	SaveProfile(profile models.UserProfile) error
}

// ItemPatch carries a partial item update. Nil fields are left unchanged.
// ImageURL is applied only when provided and non-empty, so an edit that
// omits the image never clears it.
type ItemPatch struct {
	Name     *string
	Category *models.ItemCategory
	Color    *string
	Seasons  []models.ItemSeason
	ImageURL *string
}

// EventPatch carries a partial event update. Nil fields keep the old value.
type EventPatch struct {
	Date       *string
	Occasion   *string
	OutfitID   *int
	TimesOfDay []string
}

// ProfilePatch is shallow-merged into the profile. Email is read-only after
// account creation and cannot appear here.
type ProfilePatch struct {
	Name             *string
	AvatarURL        *string
	StylePreferences *string
}

// FilterOptions are the distinct values in use across the closet, for
// building browse filters.
type FilterOptions struct {
	Colors  []string            `json:"colors"`
	Seasons []models.ItemSeason `json:"seasons"`
}

// Store holds one user's wardrobe: closet items, outfits, planned events and
// the profile. A single mutex serializes every mutation, so propagation
// reads outfits and writes items without observing partial state. Construct
// it explicitly and pass it where needed; there is no package-level instance.
type Store struct {
	mu     sync.Mutex
	userID int
	ids    IDSource
	remote Remote

	items   map[int]*models.ClosetItem
	outfits map[int]*models.Outfit
	events  map[string]*models.PlannedEvent
	profile models.UserProfile

	itemOrder   []int
	outfitOrder []int
	eventOrder  []string

	itemSnap   []models.ClosetItem
	outfitSnap []models.Outfit
	eventSnap  []models.PlannedEvent

	subs    map[int]func(Change)
	nextSub int
}

// New creates an empty store for the given user. A nil ids falls back to the
// default counter source; a nil remote keeps the store in-memory only.
func New(userID int, ids IDSource, remote Remote) *Store {
	if ids == nil {
		ids = NewIDSource()
	}
	return &Store{
		userID:  userID,
		ids:     ids,
		remote:  remote,
		items:   make(map[int]*models.ClosetItem),
		outfits: make(map[int]*models.Outfit),
		events:  make(map[string]*models.PlannedEvent),
		subs:    make(map[int]func(Change)),
	}
}

// Hydrate replaces the collections with records loaded from persistence and
// seeds the id source past the highest ids seen.
func (s *Store) Hydrate(items []models.ClosetItem, outfits []models.Outfit, events []models.PlannedEvent, profile *models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[int]*models.ClosetItem, len(items))
	s.itemOrder = s.itemOrder[:0]
	itemMax := 0
	for i := range items {
		item := items[i]
		s.items[item.ID] = &item
		s.itemOrder = append(s.itemOrder, item.ID)
		if item.ID > itemMax {
			itemMax = item.ID
		}
	}

	s.outfits = make(map[int]*models.Outfit, len(outfits))
	s.outfitOrder = s.outfitOrder[:0]
	outfitMax := 0
	for i := range outfits {
		outfit := outfits[i]
		s.outfits[outfit.ID] = &outfit
		s.outfitOrder = append(s.outfitOrder, outfit.ID)
		if outfit.ID > outfitMax {
			outfitMax = outfit.ID
		}
	}

	s.events = make(map[string]*models.PlannedEvent, len(events))
	s.eventOrder = s.eventOrder[:0]
	for i := range events {
		event := events[i]
		s.events[event.ID] = &event
		s.eventOrder = append(s.eventOrder, event.ID)
	}

	if profile != nil {
		s.profile = *profile
	}

	s.ids.Seed(itemMax, outfitMax)
	s.invalidate()
}

// Subscribe registers a callback fired after every committed mutation. The
// returned function removes the subscription. Callbacks run outside the
// store lock, so they may call back into the store.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) invalidate() {
	s.itemSnap = nil
	s.outfitSnap = nil
	s.eventSnap = nil
}

// subscribers copies the callback list under the lock; the caller fires the
// changes after unlocking.
func (s *Store) subscribers() []func(Change) {
	fns := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	return fns
}

func emit(fns []func(Change), changes []Change) {
	for _, change := range changes {
		for _, fn := range fns {
			fn(change)
		}
	}
}

func validDate(date string) bool {
	_, err := time.Parse(models.DateLayout, date)
	return err == nil
}

func validateSeasons(seasons []models.ItemSeason) error {
	if len(seasons) == 0 {
		return fmt.Errorf("season set must not be empty: %w", ErrInvalid)
	}
	for _, season := range seasons {
		if !season.Valid() {
			return fmt.Errorf("unknown season %q: %w", season, ErrInvalid)
		}
	}
	return nil
}

func cloneItem(item *models.ClosetItem) models.ClosetItem {
	out := *item
	out.Seasons = append([]models.ItemSeason(nil), item.Seasons...)
	if item.LastWorn != nil {
		d := *item.LastWorn
		out.LastWorn = &d
	}
	if item.PreviousLastWorn != nil {
		d := *item.PreviousLastWorn
		out.PreviousLastWorn = &d
	}
	return out
}

func cloneOutfit(outfit *models.Outfit) models.Outfit {
	out := *outfit
	out.ItemIDs = append([]int(nil), outfit.ItemIDs...)
	if outfit.Reasoning != nil {
		r := *outfit.Reasoning
		out.Reasoning = &r
	}
	return out
}

func cloneEvent(event *models.PlannedEvent) models.PlannedEvent {
	out := *event
	out.TimesOfDay = append([]string(nil), event.TimesOfDay...)
	return out
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// AddItem assigns a fresh id and stores the item. LastWorn and
// PreviousLastWorn are kept only if the caller supplied them. With a remote
// configured, the record is persisted first and the server-assigned id is
// adopted; nothing is committed locally on failure.
func (s *Store) AddItem(item models.ClosetItem) (*models.ClosetItem, error) {
	if !item.Category.Valid() {
		return nil, fmt.Errorf("unknown category %q: %w", item.Category, ErrInvalid)
	}
	if err := validateSeasons(item.Seasons); err != nil {
		return nil, err
	}

	s.mu.Lock()
	item.ID = s.ids.NextItemID()
	item.UserID = s.userID
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if s.remote != nil {
		canonical, err := s.remote.CreateItem(item)
		if err != nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("persist item: %w", err)
		}
		item = *canonical
		s.ids.Seed(item.ID, 0)
	}

	stored := item
	s.items[stored.ID] = &stored
	s.itemOrder = append(s.itemOrder, stored.ID)
	s.invalidate()
	fns := s.subscribers()
	s.mu.Unlock()

	emit(fns, []Change{{Collection: CollectionItems, Op: OpAdd, ID: fmt.Sprint(stored.ID)}})
	result := cloneItem(&stored)
	return &result, nil
}

// UpdateItem merges the patch into an existing item. A missing id yields
// ErrNotFound so callers can distinguish "applied" from "nothing there".
func (s *Store) UpdateItem(id int, patch ItemPatch) error {
	if patch.Category != nil && !patch.Category.Valid() {
		return fmt.Errorf("unknown category %q: %w", *patch.Category, ErrInvalid)
	}
	if patch.Seasons != nil {
		if err := validateSeasons(patch.Seasons); err != nil {
			return err
		}
	}

	s.mu.Lock()
	current, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}

	updated := cloneItem(current)
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Category != nil {
		updated.Category = *patch.Category
	}
	if patch.Color != nil {
		updated.Color = *patch.Color
	}
	if patch.Seasons != nil {
		updated.Seasons = append([]models.ItemSeason(nil), patch.Seasons...)
	}
	if patch.ImageURL != nil && *patch.ImageURL != "" {
		updated.ImageURL = *patch.ImageURL
	}
	updated.UpdatedAt = time.Now()

	if s.remote != nil {
		if err := s.remote.UpdateItem(updated); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("persist item: %w", err)
		}
	}

	*current = updated
	s.invalidate()
	fns := s.subscribers()
	s.mu.Unlock()

	emit(fns, []Change{{Collection: CollectionItems, Op: OpUpdate, ID: fmt.Sprint(id)}})
	return nil
}

// DeleteItem removes the item. Outfits and events keep any references to it;
// PruneItemRefs cleans those up on demand.
func (s *Store) DeleteItem(id int) error {
	s.mu.Lock()
	if _, ok := s.items[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}

	if s.remote != nil {
		if err := s.remote.DeleteItem(s.userID, id); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("delete item: %w", err)
		}
	}

	delete(s.items, id)
	for i, v := range s.itemOrder {
		if v == id {
			s.itemOrder = append(s.itemOrder[:i], s.itemOrder[i+1:]...)
			break
		}
	}
	s.invalidate()
	fns := s.subscribers()
	s.mu.Unlock()

	emit(fns, []Change{{Collection: CollectionItems, Op: OpDelete, ID: fmt.Sprint(id)}})
	return nil
}

// PruneItemRefs is a maintenance pass that strips item ids with no backing
// closet item out of every outfit. It returns the number of references
// removed.
func (s *Store) PruneItemRefs() (int, error) {
	s.mu.Lock()
	removed := 0
	var changes []Change
	for _, outfitID := range s.outfitOrder {
		outfit := s.outfits[outfitID]
		kept := outfit.ItemIDs[:0:0]
		for _, itemID := range outfit.ItemIDs {
			if _, ok := s.items[itemID]; ok {
				kept = append(kept, itemID)
			}
		}
		if len(kept) == len(outfit.ItemIDs) {
			continue
		}

		updated := cloneOutfit(outfit)
		updated.ItemIDs = kept
		if s.remote != nil {
			if err := s.remote.UpdateOutfit(updated); err != nil {
				s.mu.Unlock()
				return removed, fmt.Errorf("persist outfit: %w", err)
			}
		}
		removed += len(outfit.ItemIDs) - len(kept)
		*outfit = updated
		changes = append(changes, Change{Collection: CollectionOutfits, Op: OpUpdate, ID: fmt.Sprint(outfitID)})
	}
	if len(changes) > 0 {
		s.invalidate()
	}
	fns := s.subscribers()
	s.mu.Unlock()

	emit(fns, changes)
	return removed, nil
}

// AddOutfit assigns a fresh id, stores the outfit and returns the id
// synchronously so the caller can attach it to an event without a read-back.
func (s *Store) AddOutfit(outfit models.Outfit) (int, error) {
	for _, itemID := range outfit.ItemIDs {
		if itemID <= 0 {
			return 0, fmt.Errorf("item id %d: %w", itemID, ErrInvalid)
		}
	}

	s.mu.Lock()
	outfit.ID = s.ids.NextOutfitID()
	outfit.UserID = s.userID
	outfit.CreatedAt = time.Now()

	if s.remote != nil {
		canonical, err := s.remote.CreateOutfit(outfit)
		if err != nil {
			s.mu.Unlock()
			return 0, fmt.Errorf("persist outfit: %w", err)
		}
		outfit = *canonical
		s.ids.Seed(0, outfit.ID)
	}

	stored := outfit
	s.outfits[stored.ID] = &stored
	s.outfitOrder = append(s.outfitOrder, stored.ID)
	s.invalidate()
	fns := s.subscribers()
	s.mu.Unlock()

	emit(fns, []Change{{Collection: CollectionOutfits, Op: OpAdd, ID: fmt.Sprint(stored.ID)}})
	return stored.ID, nil
}

// AddEvent assigns a fresh id, stores the event, then runs forward last-worn
// propagation: every closet item in the event's outfit records its previous
// wear date and takes the event's date. The outfit is read from the live
// collection, so an outfit added in the same call sequence is visible.
func (s *Store) AddEvent(event models.PlannedEvent) (*models.PlannedEvent, error) {
	if !validDate(event.Date) {
		return nil, fmt.Errorf("date %q is not YYYY-MM-DD: %w", event.Date, ErrInvalid)
	}

	s.mu.Lock()
	event.ID = s.ids.NextEventID()
	event.UserID = s.userID
	event.CreatedAt = time.Now()

	var touched []models.ClosetItem
	if outfit, ok := s.outfits[event.OutfitID]; ok {
		for _, id := range s.itemOrder {
			item := s.items[id]
			if !containsID(outfit.ItemIDs, item.ID) {
				continue
			}
			updated := cloneItem(item)
			updated.PreviousLastWorn = updated.LastWorn
			date := event.Date
			updated.LastWorn = &date
			updated.UpdatedAt = time.Now()
			touched = append(touched, updated)
		}
	}

	if s.remote != nil {
		if err := s.remote.CreateEvent(event, touched); err != nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("persist event: %w", err)
		}
	}

	stored := event
	s.events[stored.ID] = &stored
	s.eventOrder = append(s.eventOrder, stored.ID)
	changes := []Change{{Collection: CollectionEvents, Op: OpAdd, ID: stored.ID}}
	for i := range touched {
		*s.items[touched[i].ID] = touched[i]
		changes = append(changes, Change{Collection: CollectionItems, Op: OpUpdate, ID: fmt.Sprint(touched[i].ID)})
	}
	s.invalidate()
	fns := s.subscribers()
	s.mu.Unlock()

	emit(fns, changes)
	result := cloneEvent(&stored)
	return &result, nil
}

// UpdateEvent reschedules an event and reconciles last-worn bookkeeping.
// All item mutations are computed against the event as it existed before
// this call; the event record itself is overwritten last. The equality check
// between an item's lastWorn and the old event date is what keeps this from
// clobbering a date owned by a different event.
func (s *Store) UpdateEvent(id string, patch EventPatch) error {
	if patch.Date != nil && !validDate(*patch.Date) {
		return fmt.Errorf("date %q is not YYYY-MM-DD: %w", *patch.Date, ErrInvalid)
	}

	s.mu.Lock()
	oldEvent, ok := s.events[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("event %s: %w", id, ErrNotFound)
	}

	newOutfitID := oldEvent.OutfitID
	if patch.OutfitID != nil {
		newOutfitID = *patch.OutfitID
	}
	newDate := oldEvent.Date
	if patch.Date != nil {
		newDate = *patch.Date
	}
	oldOutfit := s.outfits[oldEvent.OutfitID]
	newOutfit := s.outfits[newOutfitID]

	var touched []models.ClosetItem
	for _, itemID := range s.itemOrder {
		item := s.items[itemID]
		wasInOldOutfit := oldOutfit != nil && containsID(oldOutfit.ItemIDs, item.ID) &&
			item.LastWorn != nil && *item.LastWorn == oldEvent.Date
		isInNewOutfit := newOutfit != nil && containsID(newOutfit.ItemIDs, item.ID)

		if wasInOldOutfit && isInNewOutfit && oldEvent.Date == newDate {
			// Item stays in the same event on the same date.
			continue
		}
		if !wasInOldOutfit && !isInNewOutfit {
			continue
		}

		updated := cloneItem(item)
		if wasInOldOutfit {
			updated.LastWorn = updated.PreviousLastWorn
			updated.PreviousLastWorn = nil
		}
		if isInNewOutfit {
			updated.PreviousLastWorn = updated.LastWorn
			date := newDate
			updated.LastWorn = &date
		}
		updated.UpdatedAt = time.Now()
		touched = append(touched, updated)
	}

	newEvent := cloneEvent(oldEvent)
	newEvent.Date = newDate
	newEvent.OutfitID = newOutfitID
	if patch.Occasion != nil {
		newEvent.Occasion = *patch.Occasion
	}
	if patch.TimesOfDay != nil {
		newEvent.TimesOfDay = append([]string(nil), patch.TimesOfDay...)
	}

	if s.remote != nil {
		if err := s.remote.UpdateEvent(newEvent, touched); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("persist event: %w", err)
		}
	}

	changes := make([]Change, 0, len(touched)+1)
	for i := range touched {
		*s.items[touched[i].ID] = touched[i]
		changes = append(changes, Change{Collection: CollectionItems, Op: OpUpdate, ID: fmt.Sprint(touched[i].ID)})
	}
	*oldEvent = newEvent
	changes = append(changes, Change{Collection: CollectionEvents, Op: OpUpdate, ID: id})
	s.invalidate()
	fns := s.subscribers()
	s.mu.Unlock()

	emit(fns, changes)
	return nil
}

// DeleteEvent unschedules an event. Items whose lastWorn still equals the
// event's date are reverted to their previous wear date. Items overwritten
// by a later event are left alone; the store never reverts a value the
// deleted event does not own.
func (s *Store) DeleteEvent(id string) error {
	s.mu.Lock()
	event, ok := s.events[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("event %s: %w", id, ErrNotFound)
	}

	var touched []models.ClosetItem
	if outfit, ok := s.outfits[event.OutfitID]; ok {
		for _, itemID := range s.itemOrder {
			item := s.items[itemID]
			if !containsID(outfit.ItemIDs, item.ID) {
				continue
			}
			if item.LastWorn == nil || *item.LastWorn != event.Date {
				continue
			}
			updated := cloneItem(item)
			updated.LastWorn = updated.PreviousLastWorn
			updated.PreviousLastWorn = nil
			updated.UpdatedAt = time.Now()
			touched = append(touched, updated)
		}
	}

	if s.remote != nil {
		if err := s.remote.DeleteEvent(s.userID, id, touched); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("delete event: %w", err)
		}
	}

	changes := make([]Change, 0, len(touched)+1)
	for i := range touched {
		*s.items[touched[i].ID] = touched[i]
		changes = append(changes, Change{Collection: CollectionItems, Op: OpUpdate, ID: fmt.Sprint(touched[i].ID)})
	}
	delete(s.events, id)
	for i, v := range s.eventOrder {
		if v == id {
			s.eventOrder = append(s.eventOrder[:i], s.eventOrder[i+1:]...)
			break
		}
	}
	changes = append(changes, Change{Collection: CollectionEvents, Op: OpDelete, ID: id})
	s.invalidate()
	fns := s.subscribers()
	s.mu.Unlock()

	emit(fns, changes)
	return nil
}

// UpdateProfile shallow-merges the patch into the profile singleton. Email
// is not part of the patch and stays whatever account creation set it to.
func (s *Store) UpdateProfile(patch ProfilePatch) error {
	s.mu.Lock()
	updated := s.profile
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.AvatarURL != nil {
		updated.AvatarURL = *patch.AvatarURL
	}
	if patch.StylePreferences != nil {
		updated.StylePreferences = *patch.StylePreferences
	}
	updated.UpdatedAt = time.Now()

	if s.remote != nil {
		if err := s.remote.SaveProfile(updated); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("persist profile: %w", err)
		}
	}

	s.profile = updated
	fns := s.subscribers()
	s.mu.Unlock()

	emit(fns, []Change{{Collection: CollectionProfile, Op: OpUpdate}})
	return nil
}

// ItemByID returns a copy of the item, or false when absent.
func (s *Store) ItemByID(id int) (models.ClosetItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return models.ClosetItem{}, false
	}
	return cloneItem(item), true
}

// OutfitByID returns a copy of the outfit, or false when absent.
func (s *Store) OutfitByID(id int) (models.Outfit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	outfit, ok := s.outfits[id]
	if !ok {
		return models.Outfit{}, false
	}
	return cloneOutfit(outfit), true
}

// EventByID returns a copy of the event, or false when absent.
func (s *Store) EventByID(id string) (models.PlannedEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	if !ok {
		return models.PlannedEvent{}, false
	}
	return cloneEvent(event), true
}

// Items returns the closet in insertion order. The slice is cached and
// reused until the next mutation, so consumers can compare slices by
// identity to skip redundant work.
func (s *Store) Items() []models.ClosetItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.itemSnap == nil {
		s.itemSnap = make([]models.ClosetItem, 0, len(s.itemOrder))
		for _, id := range s.itemOrder {
			s.itemSnap = append(s.itemSnap, cloneItem(s.items[id]))
		}
	}
	return s.itemSnap
}

// Outfits returns all outfits in insertion order, cached like Items.
func (s *Store) Outfits() []models.Outfit {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.outfitSnap == nil {
		s.outfitSnap = make([]models.Outfit, 0, len(s.outfitOrder))
		for _, id := range s.outfitOrder {
			s.outfitSnap = append(s.outfitSnap, cloneOutfit(s.outfits[id]))
		}
	}
	return s.outfitSnap
}

// Events returns all planned events in insertion order, cached like Items.
func (s *Store) Events() []models.PlannedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.eventSnap == nil {
		s.eventSnap = make([]models.PlannedEvent, 0, len(s.eventOrder))
		for _, id := range s.eventOrder {
			s.eventSnap = append(s.eventSnap, cloneEvent(s.events[id]))
		}
	}
	return s.eventSnap
}

// EventsOn returns the events scheduled on one calendar day.
func (s *Store) EventsOn(date string) []models.PlannedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.PlannedEvent
	for _, id := range s.eventOrder {
		if s.events[id].Date == date {
			out = append(out, cloneEvent(s.events[id]))
		}
	}
	return out
}

// EventsBetween returns events with from <= date <= to. ISO day strings
// order lexicographically, so plain string comparison is enough.
func (s *Store) EventsBetween(from, to string) []models.PlannedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.PlannedEvent
	for _, id := range s.eventOrder {
		date := s.events[id].Date
		if date >= from && date <= to {
			out = append(out, cloneEvent(s.events[id]))
		}
	}
	return out
}

// Profile returns the profile singleton.
func (s *Store) Profile() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// CategoryCounts builds the category histogram over all items. It is
// computed fresh on every call; the closet is small and correctness beats
// caching here.
func (s *Store) CategoryCounts() map[models.ItemCategory]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[models.ItemCategory]int, len(models.Categories))
	for _, item := range s.items {
		counts[item.Category]++
	}
	return counts
}

// Filters returns the distinct colors and seasons in use, sorted.
func (s *Store) Filters() FilterOptions {
	s.mu.Lock()
	defer s.mu.Unlock()

	colorSet := make(map[string]struct{})
	seasonSet := make(map[models.ItemSeason]struct{})
	for _, item := range s.items {
		if item.Color != "" {
			colorSet[item.Color] = struct{}{}
		}
		for _, season := range item.Seasons {
			seasonSet[season] = struct{}{}
		}
	}

	opts := FilterOptions{}
	for color := range colorSet {
		opts.Colors = append(opts.Colors, color)
	}
	sort.Strings(opts.Colors)
	for _, season := range []models.ItemSeason{models.SeasonSpring, models.SeasonSummer, models.SeasonAutumn, models.SeasonWinter, models.SeasonAll} {
		if _, ok := seasonSet[season]; ok {
			opts.Seasons = append(opts.Seasons, season)
		}
	}
	return opts
}
