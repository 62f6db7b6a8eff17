package activity

import (
	"time"

	"github.com/rpggio/projman/internal/domain/status"
)

// MaxDescriptionLength bounds Activity.Description.
const MaxDescriptionLength = 100

// Activity is a unit of work inside one project.
type Activity struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"projectId"`
	Description string        `json:"description"`
	Status      status.Status `json:"status"`
	CreatedAt   time.Time     `json:"creationDate"`
	UpdatedAt   time.Time     `json:"updateDate"`
}
