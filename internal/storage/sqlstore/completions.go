package sqlstore

import (
	"fmt"

	"github.com/julianstephens/momentum/internal/models"
)

const completionCols = `id, habit_id, day, created_at`

func scanCompletion(row scanner) (models.Completion, error) {
	var c models.Completion
	var createdAt string
	if err := row.Scan(&c.ID, &c.HabitID, &c.Day, &createdAt); err != nil {
		return models.Completion{}, err
	}
	t, err := parseTime("created_at", createdAt)
	if err != nil {
		return models.Completion{}, err
	}
	c.CreatedAt = t
	return c, nil
}

// AddCompletion inserts c unless (habit_id, day) already exists.
func (q *Queries) AddCompletion(c models.Completion) (bool, error) {
	created, err := q.insertIfAbsent(
		`INSERT INTO completions (`+completionCols+`) VALUES (?, ?, ?, ?) ON CONFLICT (habit_id, day) DO NOTHING`,
		c.ID, c.HabitID, c.Day, formatTime(c.CreatedAt))
	if err != nil {
		return false, fmt.Errorf("failed to insert completion: %w", err)
	}
	return created, nil
}

func (q *Queries) HasCompletion(habitID, startDay, endDay string) (bool, error) {
	var exists bool
	err := q.queryRow(
		`SELECT EXISTS (SELECT 1 FROM completions WHERE habit_id = ? AND day >= ? AND day <= ?)`,
		habitID, startDay, endDay).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check completion: %w", err)
	}
	return exists, nil
}

func (q *Queries) GetCompletionsForHabit(habitID string) ([]models.Completion, error) {
	return q.listCompletions(`SELECT `+completionCols+` FROM completions WHERE habit_id = ? ORDER BY day`, habitID)
}

func (q *Queries) GetCompletionsInRange(habitID, startDay, endDay string) ([]models.Completion, error) {
	return q.listCompletions(
		`SELECT `+completionCols+` FROM completions WHERE habit_id = ? AND day >= ? AND day <= ? ORDER BY day`,
		habitID, startDay, endDay)
}

func (q *Queries) listCompletions(query string, args ...any) ([]models.Completion, error) {
	rows, err := q.query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	defer rows.Close()

	var out []models.Completion
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (q *Queries) DeleteCompletionsInRange(habitID, startDay, endDay string) (int64, error) {
	res, err := q.exec(`DELETE FROM completions WHERE habit_id = ? AND day >= ? AND day <= ?`, habitID, startDay, endDay)
	if err != nil {
		return 0, fmt.Errorf("failed to delete completions: %w", err)
	}
	return res.RowsAffected()
}

func (q *Queries) CountCompletionsForOwner(ownerID string) (int, error) {
	n, err := q.count(
		`SELECT COUNT(*) FROM completions c JOIN habits h ON h.id = c.habit_id WHERE h.owner_id = ?`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to count completions: %w", err)
	}
	return n, nil
}

// CountDuplicateCompletions counts (habit_id, day) pairs stored more than once.
func (q *Queries) CountDuplicateCompletions() (int, error) {
	return q.count(`SELECT COUNT(*) FROM (
		SELECT habit_id, day FROM completions GROUP BY habit_id, day HAVING COUNT(*) > 1
	) dup`)
}

// CountOrphanCompletions counts completions whose habit no longer exists.
func (q *Queries) CountOrphanCompletions() (int, error) {
	return q.count(`SELECT COUNT(*) FROM completions c LEFT JOIN habits h ON h.id = c.habit_id WHERE h.id IS NULL`)
}
