package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"styleai/internal/models"
)

// Seasons and times of day are stored as comma joined text. The values are
// enum words with no commas in them.
func joinList(values []string) string {
	return strings.Join(values, ",")
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

func joinSeasons(seasons []models.ItemSeason) string {
	values := make([]string, len(seasons))
	for i, s := range seasons {
		values[i] = string(s)
	}
	return joinList(values)
}

func splitSeasons(value string) []models.ItemSeason {
	parts := splitList(value)
	seasons := make([]models.ItemSeason, len(parts))
	for i, p := range parts {
		seasons[i] = models.ItemSeason(p)
	}
	return seasons
}

func CreateItem(db *sql.DB, userID int, item models.ClosetItem) (*models.ClosetItem, error) {
	query := `
		INSERT INTO items (user_id, name, category, color, seasons, image_url, last_worn, previous_last_worn)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := db.Exec(query, userID, item.Name, item.Category, item.Color,
		joinSeasons(item.Seasons), item.ImageURL, item.LastWorn, item.PreviousLastWorn)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get item ID: %w", err)
	}

	item.ID = int(id)
	item.UserID = userID
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	return &item, nil
}

func GetItems(db *sql.DB, userID int) ([]models.ClosetItem, error) {
	query := `
		SELECT id, user_id, name, category, color, seasons, image_url,
		       last_worn, previous_last_worn, created_at, updated_at
		FROM items
		WHERE user_id = ?
		ORDER BY id
	`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []models.ClosetItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return items, rows.Err()
}

func GetItem(db *sql.DB, userID, itemID int) (*models.ClosetItem, error) {
	query := `
		SELECT id, user_id, name, category, color, seasons, image_url,
		       last_worn, previous_last_worn, created_at, updated_at
		FROM items
		WHERE user_id = ? AND id = ?
	`

	row := db.QueryRow(query, userID, itemID)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item not found")
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*models.ClosetItem, error) {
	var item models.ClosetItem
	var seasons string
	var lastWorn, previousLastWorn sql.NullString

	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.Category,
		&item.Color,
		&seasons,
		&item.ImageURL,
		&lastWorn,
		&previousLastWorn,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan item: %w", err)
	}

	item.Seasons = splitSeasons(seasons)
	if lastWorn.Valid {
		item.LastWorn = &lastWorn.String
	}
	if previousLastWorn.Valid {
		item.PreviousLastWorn = &previousLastWorn.String
	}

	return &item, nil
}

func UpdateItem(db *sql.DB, item models.ClosetItem) error {
	return updateItemExec(db, item)
}

type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func updateItemExec(db execer, item models.ClosetItem) error {
	query := `
		UPDATE items
		SET name = ?, category = ?, color = ?, seasons = ?, image_url = ?,
		    last_worn = ?, previous_last_worn = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND id = ?
	`

	result, err := db.Exec(query, item.Name, item.Category, item.Color,
		joinSeasons(item.Seasons), item.ImageURL, item.LastWorn, item.PreviousLastWorn,
		item.UserID, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("item not found")
	}

	return nil
}

func DeleteItem(db *sql.DB, userID, itemID int) error {
	result, err := db.Exec("DELETE FROM items WHERE user_id = ? AND id = ?", userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("item not found")
	}

	return nil
}
