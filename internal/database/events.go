package database

import (
	"database/sql"
	"fmt"

	"styleai/internal/models"
)

// Event writes carry the closet items touched by last-worn propagation so
// the event and its item updates land in one transaction.

func CreateEvent(db *sql.DB, event models.PlannedEvent, touched []models.ClosetItem) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO events (id, user_id, date, occasion, outfit_id, times_of_day)
		VALUES (?, ?, ?, ?, ?, ?)
	`, event.ID, event.UserID, event.Date, event.Occasion, event.OutfitID, joinList(event.TimesOfDay))
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	for _, item := range touched {
		if err := updateItemExec(tx, item); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event: %w", err)
	}

	return nil
}

func GetEvents(db *sql.DB, userID int) ([]models.PlannedEvent, error) {
	query := `
		SELECT id, user_id, date, occasion, outfit_id, times_of_day, created_at
		FROM events
		WHERE user_id = ?
		ORDER BY rowid
	`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.PlannedEvent
	for rows.Next() {
		var event models.PlannedEvent
		var timesOfDay string
		err := rows.Scan(&event.ID, &event.UserID, &event.Date, &event.Occasion,
			&event.OutfitID, &timesOfDay, &event.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		event.TimesOfDay = splitList(timesOfDay)
		events = append(events, event)
	}

	return events, rows.Err()
}

func UpdateEvent(db *sql.DB, event models.PlannedEvent, touched []models.ClosetItem) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE events
		SET date = ?, occasion = ?, outfit_id = ?, times_of_day = ?
		WHERE user_id = ? AND id = ?
	`, event.Date, event.Occasion, event.OutfitID, joinList(event.TimesOfDay), event.UserID, event.ID)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("event not found")
	}

	for _, item := range touched {
		if err := updateItemExec(tx, item); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event: %w", err)
	}

	return nil
}

func DeleteEvent(db *sql.DB, userID int, eventID string, touched []models.ClosetItem) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec("DELETE FROM events WHERE user_id = ? AND id = ?", userID, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("event not found")
	}

	for _, item := range touched {
		if err := updateItemExec(tx, item); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event delete: %w", err)
	}

	return nil
}
