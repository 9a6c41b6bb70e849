package models

import (
	"fmt"
	"strings"
	"time"
)

type ApplicationStatus string

const (
	StatusWishlist     ApplicationStatus = "wishlist"
	StatusApplied      ApplicationStatus = "applied"
	StatusInterviewing ApplicationStatus = "interviewing"
	StatusOffered      ApplicationStatus = "offered"
	StatusRejected     ApplicationStatus = "rejected"
)

var applicationStatuses = []ApplicationStatus{
	StatusWishlist, StatusApplied, StatusInterviewing, StatusOffered, StatusRejected,
}

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range applicationStatuses {
		if st == known {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid application status %q", s)
}

type Application struct {
	ID        string            `json:"id"`
	OwnerID   string            `json:"owner_id"`
	Company   string            `json:"company"`
	JobTitle  string            `json:"job_title"`
	Status    ApplicationStatus `json:"status"`
	Due       string            `json:"due,omitempty"` // YYYY-MM-DD format
	JobLink   string            `json:"job_link,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type Contact struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
