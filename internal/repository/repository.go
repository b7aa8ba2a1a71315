package repository

import (
	"context"
	"database/sql"

	"github.com/lehmann314159/nexuscrm/internal/models"
)

// Repository persists the per-browser preference flags.
type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetPreferences loads the stored flags for a browser, falling back to
// the defaults for any key that was never written.
func (r *Repository) GetPreferences(ctx context.Context, browserID string) (models.Preferences, error) {
	prefs := models.DefaultPreferences()

	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM preferences WHERE browser_id = ?`, browserID)
	if err != nil {
		return prefs, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return prefs, err
		}
		switch key {
		case models.PrefTheme:
			prefs.Theme = value
		case models.PrefAccent:
			prefs.Accent = value
		case models.PrefViewMode:
			prefs.ViewMode = value
		}
	}
	return prefs, rows.Err()
}

func (r *Repository) SetPreference(ctx context.Context, browserID, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (browser_id, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(browser_id, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, browserID, key, value)
	return err
}

// ToggleTheme flips the stored theme in one statement and returns the
// new value. A missing or empty theme counts as dark.
func (r *Repository) ToggleTheme(ctx context.Context, browserID string) (string, error) {
	var next string
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO preferences (browser_id, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(browser_id, key) DO UPDATE SET
			value = CASE WHEN preferences.value IN (?, '') THEN ? ELSE ? END,
			updated_at = CURRENT_TIMESTAMP
		RETURNING value
	`, browserID, models.PrefTheme, models.ThemeLight,
		models.ThemeDark, models.ThemeLight, models.ThemeDark).Scan(&next)
	if err != nil {
		return "", err
	}
	return next, nil
}

func (r *Repository) SetAccent(ctx context.Context, browserID, color string) error {
	return r.SetPreference(ctx, browserID, models.PrefAccent, color)
}

func (r *Repository) SetViewMode(ctx context.Context, browserID, mode string) error {
	return r.SetPreference(ctx, browserID, models.PrefViewMode, mode)
}
