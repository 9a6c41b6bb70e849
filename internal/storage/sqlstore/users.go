package sqlstore

import (
	"fmt"

	"github.com/julianstephens/momentum/internal/models"
)

const userCols = `id, username, created_at`

func scanUser(row scanner) (models.User, error) {
	var u models.User
	var createdAt string
	if err := row.Scan(&u.ID, &u.Username, &createdAt); err != nil {
		return models.User{}, err
	}
	t, err := parseTime("created_at", createdAt)
	if err != nil {
		return models.User{}, err
	}
	u.CreatedAt = t
	return u, nil
}

func (q *Queries) AddUser(u models.User) error {
	return q.insertUnique(fmt.Sprintf("user %q", u.Username),
		`INSERT INTO users (`+userCols+`) VALUES (?, ?, ?)`,
		u.ID, u.Username, formatTime(u.CreatedAt))
}

func (q *Queries) GetUser(id string) (models.User, error) {
	u, err := scanUser(q.queryRow(`SELECT `+userCols+` FROM users WHERE id = ?`, id))
	if err != nil {
		return models.User{}, notFound(err, "user")
	}
	return u, nil
}

func (q *Queries) GetUserByName(username string) (models.User, error) {
	u, err := scanUser(q.queryRow(`SELECT `+userCols+` FROM users WHERE username = ?`, username))
	if err != nil {
		return models.User{}, notFound(err, fmt.Sprintf("user %q", username))
	}
	return u, nil
}

func (q *Queries) GetAllUsers() ([]models.User, error) {
	rows, err := q.query(`SELECT ` + userCols + ` FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
