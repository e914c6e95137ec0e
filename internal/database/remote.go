package database

import (
	"database/sql"

	"styleai/internal/models"
)

// Remote adapts the database package to the store's persistence interface.
// Every method routes through the package-level functions so handler code and
// the store share one set of queries.
type Remote struct {
	DB *sql.DB
}

func (r *Remote) CreateItem(item models.ClosetItem) (*models.ClosetItem, error) {
	return CreateItem(r.DB, item.UserID, item)
}

func (r *Remote) UpdateItem(item models.ClosetItem) error {
	return UpdateItem(r.DB, item)
}

func (r *Remote) DeleteItem(userID, id int) error {
	return DeleteItem(r.DB, userID, id)
}

func (r *Remote) CreateOutfit(outfit models.Outfit) (*models.Outfit, error) {
	return CreateOutfit(r.DB, outfit.UserID, outfit)
}

func (r *Remote) UpdateOutfit(outfit models.Outfit) error {
	return UpdateOutfit(r.DB, outfit)
}

func (r *Remote) CreateEvent(event models.PlannedEvent, touched []models.ClosetItem) error {
	return CreateEvent(r.DB, event, touched)
}

func (r *Remote) UpdateEvent(event models.PlannedEvent, touched []models.ClosetItem) error {
	return UpdateEvent(r.DB, event, touched)
}

func (r *Remote) DeleteEvent(userID int, id string, touched []models.ClosetItem) error {
	return DeleteEvent(r.DB, userID, id, touched)
}

func (r *Remote) SaveProfile(profile models.UserProfile) error {
	return SaveProfile(r.DB, profile)
}
