package database

import (
	"database/sql"
	"fmt"

	"styleai/internal/models"
)

func GetProfile(db *sql.DB, userID int) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	query := `
		SELECT p.user_id, p.name, u.email, p.avatar_url, p.style_preferences, p.updated_at
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = ?
	`

	err := db.QueryRow(query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Email,
		&profile.AvatarURL,
		&profile.StylePreferences,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("profile not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	return profile, nil
}

// SaveProfile upserts the profile row. Email lives on the users table and is
// not written here.
func SaveProfile(db *sql.DB, profile models.UserProfile) error {
	query := `
		INSERT INTO profiles (user_id, name, avatar_url, style_preferences, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			name = excluded.name,
			avatar_url = excluded.avatar_url,
			style_preferences = excluded.style_preferences,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := db.Exec(query, profile.UserID, profile.Name, profile.AvatarURL, profile.StylePreferences); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}
