package sqlstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/momentum/internal/models"
)

const applicationCols = `id, owner_id, company, job_title, status, due, job_link, notes, created_at, updated_at`

func scanApplication(row scanner) (models.Application, error) {
	var a models.Application
	var status, createdAt, updatedAt string
	var due sql.NullString
	err := row.Scan(&a.ID, &a.OwnerID, &a.Company, &a.JobTitle, &status, &due, &a.JobLink, &a.Notes, &createdAt, &updatedAt)
	if err != nil {
		return models.Application{}, err
	}
	a.Status = models.ApplicationStatus(status)
	a.Due = due.String
	if a.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return models.Application{}, err
	}
	if a.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return models.Application{}, err
	}
	return a, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (q *Queries) AddApplication(a models.Application) error {
	_, err := q.exec(`INSERT INTO applications (`+applicationCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.OwnerID, a.Company, a.JobTitle, string(a.Status), nullable(a.Due), a.JobLink, a.Notes,
		formatTime(a.CreatedAt), formatTime(a.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert application: %w", err)
	}
	return nil
}

func (q *Queries) GetApplication(id string) (models.Application, error) {
	a, err := scanApplication(q.queryRow(`SELECT `+applicationCols+` FROM applications WHERE id = ?`, id))
	if err != nil {
		return models.Application{}, notFound(err, "application")
	}
	return a, nil
}

func (q *Queries) GetApplicationsForOwner(ownerID string) ([]models.Application, error) {
	rows, err := q.query(`SELECT `+applicationCols+` FROM applications WHERE owner_id = ? ORDER BY created_at, company`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (q *Queries) UpdateApplicationStatus(id string, status models.ApplicationStatus, at time.Time) error {
	return q.updateOne("application",
		`UPDATE applications SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), formatTime(at), id)
}

func (q *Queries) CountApplications(ownerID string, status models.ApplicationStatus) (int, error) {
	if status == "" {
		return q.count(`SELECT COUNT(*) FROM applications WHERE owner_id = ?`, ownerID)
	}
	return q.count(`SELECT COUNT(*) FROM applications WHERE owner_id = ? AND status = ?`, ownerID, string(status))
}

// CountApplicationsDueBefore counts applications in status whose due date is strictly before day.
func (q *Queries) CountApplicationsDueBefore(ownerID string, status models.ApplicationStatus, day string) (int, error) {
	return q.count(
		`SELECT COUNT(*) FROM applications WHERE owner_id = ? AND status = ? AND due IS NOT NULL AND due < ?`,
		ownerID, string(status), day)
}

const contactCols = `id, owner_id, name, email, company, created_at`

func (q *Queries) AddContact(c models.Contact) error {
	_, err := q.exec(`INSERT INTO contacts (`+contactCols+`) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.OwnerID, c.Name, c.Email, c.Company, formatTime(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}

func (q *Queries) GetContactsForOwner(ownerID string) ([]models.Contact, error) {
	rows, err := q.query(`SELECT `+contactCols+` FROM contacts WHERE owner_id = ? ORDER BY name`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		var createdAt string
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Company, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		if c.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (q *Queries) CountContacts(ownerID string) (int, error) {
	return q.count(`SELECT COUNT(*) FROM contacts WHERE owner_id = ?`, ownerID)
}
