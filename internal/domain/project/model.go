package project

import (
	"time"

	"github.com/rpggio/projman/internal/domain/status"
)

// MaxDescriptionLength bounds Project.Description.
const MaxDescriptionLength = 100

// Project belongs to exactly one client and owns zero or more activities.
type Project struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"clientId"`
	Description string        `json:"description"`
	Status      status.Status `json:"status"`
	CreatedAt   time.Time     `json:"creationDate"`
	UpdatedAt   time.Time     `json:"updateDate"`
}
