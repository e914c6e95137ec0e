package models

import (
	"time"
)

// DateLayout is the calendar-day format used everywhere a wear date or
// event date appears (ISO "YYYY-MM-DD", no time component).
const DateLayout = "2006-01-02"

type ItemCategory string

const (
	CategoryTops        ItemCategory = "Tops"
	CategoryBottoms     ItemCategory = "Bottoms"
	CategoryDresses     ItemCategory = "Dresses"
	CategoryOuterwear   ItemCategory = "Outerwear"
	CategoryShoes       ItemCategory = "Shoes"
	CategoryAccessories ItemCategory = "Accessories"
)

func (c ItemCategory) Valid() bool {
	switch c {
	case CategoryTops, CategoryBottoms, CategoryDresses, CategoryOuterwear, CategoryShoes, CategoryAccessories:
		return true
	}
	return false
}

// Categories lists all item categories in display order.
var Categories = []ItemCategory{
	CategoryTops,
	CategoryBottoms,
	CategoryDresses,
	CategoryOuterwear,
	CategoryShoes,
	CategoryAccessories,
}

type ItemSeason string

const (
	SeasonSpring ItemSeason = "Spring"
	SeasonSummer ItemSeason = "Summer"
	SeasonAutumn ItemSeason = "Autumn"
	SeasonWinter ItemSeason = "Winter"
	SeasonAll    ItemSeason = "All"
)

func (s ItemSeason) Valid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter, SeasonAll:
		return true
	}
	return false
}

type User struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type ClosetItem struct {
	ID       int          `json:"id" db:"id"`
	UserID   int          `json:"user_id" db:"user_id"`
	Name     string       `json:"name" db:"name"`
	Category ItemCategory `json:"category" db:"category"`
	Color    string       `json:"color" db:"color"`
	Seasons  []ItemSeason `json:"seasons" db:"seasons"`
	ImageURL string       `json:"image_url" db:"image_url"`
	// LastWorn is the date of the most recent planned event whose outfit
	// contains this item. PreviousLastWorn holds the value to restore when
	// that event is edited away or deleted.
	LastWorn         *string   `json:"last_worn,omitempty" db:"last_worn"`
	PreviousLastWorn *string   `json:"previous_last_worn,omitempty" db:"previous_last_worn"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

type Outfit struct {
	ID     int    `json:"id" db:"id"`
	UserID int    `json:"user_id" db:"user_id"`
	Name   string `json:"name" db:"name"`
	// ItemIDs is ordered; manual outfits may reference no stored items.
	ItemIDs []int `json:"item_ids" db:"item_ids"`
	// Reasoning is present exactly when the outfit came from the AI
	// suggestion path; manual outfits never carry it.
	Reasoning *string   `json:"reasoning,omitempty" db:"reasoning"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Suggested reports whether the outfit originated from an AI suggestion.
func (o *Outfit) Suggested() bool {
	return o.Reasoning != nil
}

type PlannedEvent struct {
	ID       string `json:"id" db:"id"`
	UserID   int    `json:"user_id" db:"user_id"`
	Date     string `json:"date" db:"date"`
	Occasion string `json:"occasion" db:"occasion"`
	OutfitID int    `json:"outfit_id" db:"outfit_id"`
	// TimesOfDay is an optional set of labels like "Morning" or "Evening".
	// It is carried for display only and never affects wear bookkeeping.
	TimesOfDay []string  `json:"times_of_day,omitempty" db:"times_of_day"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type UserProfile struct {
	UserID           int       `json:"user_id" db:"user_id"`
	Name             string    `json:"name" db:"name"`
	Email            string    `json:"email" db:"email"`
	AvatarURL        string    `json:"avatar_url" db:"avatar_url"`
	StylePreferences string    `json:"style_preferences" db:"style_preferences"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

type Session struct {
	ID        string    `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CSRFToken struct {
	Token     string    `json:"token" db:"token"`
	UserID    int       `json:"user_id" db:"user_id"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
