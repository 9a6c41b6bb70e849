package sqlstore

import (
	"fmt"

	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/storage"
)

const habitCols = `id, owner_id, name, description, cadence, category, created_at`

func scanHabit(row scanner) (models.Habit, error) {
	var h models.Habit
	var cadence, category, createdAt string
	if err := row.Scan(&h.ID, &h.OwnerID, &h.Name, &h.Description, &cadence, &category, &createdAt); err != nil {
		return models.Habit{}, err
	}
	h.Cadence = models.Cadence(cadence)
	h.Category = models.Category(category)
	t, err := parseTime("created_at", createdAt)
	if err != nil {
		return models.Habit{}, err
	}
	h.CreatedAt = t
	return h, nil
}

func (q *Queries) AddHabit(h models.Habit) error {
	return q.insertUnique(fmt.Sprintf("habit %q", h.Name),
		`INSERT INTO habits (`+habitCols+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.OwnerID, h.Name, h.Description, string(h.Cadence), string(h.Category), formatTime(h.CreatedAt))
}

func (q *Queries) GetHabit(id string) (models.Habit, error) {
	h, err := scanHabit(q.queryRow(`SELECT `+habitCols+` FROM habits WHERE id = ?`, id))
	if err != nil {
		return models.Habit{}, notFound(err, "habit")
	}
	return h, nil
}

func (q *Queries) GetHabitByName(ownerID, name string) (models.Habit, error) {
	h, err := scanHabit(q.queryRow(`SELECT `+habitCols+` FROM habits WHERE owner_id = ? AND name = ?`, ownerID, name))
	if err != nil {
		return models.Habit{}, notFound(err, fmt.Sprintf("habit %q", name))
	}
	return h, nil
}

func (q *Queries) GetHabitsForOwner(ownerID string) ([]models.Habit, error) {
	rows, err := q.query(`SELECT `+habitCols+` FROM habits WHERE owner_id = ? ORDER BY created_at, name`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan habit: %w", err)
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// DeleteHabit removes the habit and its completions in one transaction.
func (q *Queries) DeleteHabit(id string) error {
	tx, err := q.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(q.dialect.Rebind(`DELETE FROM completions WHERE habit_id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete completions: %w", err)
	}
	res, err := tx.Exec(q.dialect.Rebind(`DELETE FROM habits WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("habit: %w", storage.ErrNotFound)
	}
	return tx.Commit()
}
