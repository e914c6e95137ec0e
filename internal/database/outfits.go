package database

import (
	"database/sql"
	"fmt"
	"time"

	"styleai/internal/models"
)

func CreateOutfit(db *sql.DB, userID int, outfit models.Outfit) (*models.Outfit, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec("INSERT INTO outfits (user_id, name, reasoning) VALUES (?, ?, ?)",
		userID, outfit.Name, outfit.Reasoning)
	if err != nil {
		return nil, fmt.Errorf("failed to create outfit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get outfit ID: %w", err)
	}

	for position, itemID := range outfit.ItemIDs {
		_, err := tx.Exec("INSERT INTO outfit_items (outfit_id, item_id, position) VALUES (?, ?, ?)",
			id, itemID, position)
		if err != nil {
			return nil, fmt.Errorf("failed to link outfit item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit outfit: %w", err)
	}

	outfit.ID = int(id)
	outfit.UserID = userID
	outfit.CreatedAt = time.Now()

	return &outfit, nil
}

func GetOutfits(db *sql.DB, userID int) ([]models.Outfit, error) {
	query := `
		SELECT id, user_id, name, reasoning, created_at
		FROM outfits
		WHERE user_id = ?
		ORDER BY id
	`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query outfits: %w", err)
	}
	defer rows.Close()

	var outfits []models.Outfit
	byID := make(map[int]int)
	for rows.Next() {
		var outfit models.Outfit
		var reasoning sql.NullString
		if err := rows.Scan(&outfit.ID, &outfit.UserID, &outfit.Name, &reasoning, &outfit.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan outfit: %w", err)
		}
		if reasoning.Valid {
			outfit.Reasoning = &reasoning.String
		}
		byID[outfit.ID] = len(outfits)
		outfits = append(outfits, outfit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read outfits: %w", err)
	}

	refQuery := `
		SELECT oi.outfit_id, oi.item_id
		FROM outfit_items oi
		JOIN outfits o ON o.id = oi.outfit_id
		WHERE o.user_id = ?
		ORDER BY oi.outfit_id, oi.position
	`

	refRows, err := db.Query(refQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query outfit items: %w", err)
	}
	defer refRows.Close()

	for refRows.Next() {
		var outfitID, itemID int
		if err := refRows.Scan(&outfitID, &itemID); err != nil {
			return nil, fmt.Errorf("failed to scan outfit item: %w", err)
		}
		if idx, ok := byID[outfitID]; ok {
			outfits[idx].ItemIDs = append(outfits[idx].ItemIDs, itemID)
		}
	}

	return outfits, refRows.Err()
}

func UpdateOutfit(db *sql.DB, outfit models.Outfit) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec("UPDATE outfits SET name = ?, reasoning = ? WHERE user_id = ? AND id = ?",
		outfit.Name, outfit.Reasoning, outfit.UserID, outfit.ID)
	if err != nil {
		return fmt.Errorf("failed to update outfit: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("outfit not found")
	}

	if _, err := tx.Exec("DELETE FROM outfit_items WHERE outfit_id = ?", outfit.ID); err != nil {
		return fmt.Errorf("failed to clear outfit items: %w", err)
	}
	for position, itemID := range outfit.ItemIDs {
		_, err := tx.Exec("INSERT INTO outfit_items (outfit_id, item_id, position) VALUES (?, ?, ?)",
			outfit.ID, itemID, position)
		if err != nil {
			return fmt.Errorf("failed to link outfit item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit outfit: %w", err)
	}

	return nil
}
