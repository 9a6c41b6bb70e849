package sqlstore

import (
	"fmt"

	"github.com/julianstephens/momentum/internal/models"
)

// GetSettings returns stored settings with defaults filled in.
func (q *Queries) GetSettings() (models.Settings, error) {
	rows, err := q.query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	data := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	settings := models.MapToSettings(data)
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

func (q *Queries) SaveSettings(settings models.Settings) error {
	tx, err := q.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(q.dialect.Rebind(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value"))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, value := range models.SettingsToMap(settings) {
		if _, err := stmt.Exec(key, value); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}
	return tx.Commit()
}
