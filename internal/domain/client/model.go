package client

import "time"

// MaxNameLength bounds Client.Name.
const MaxNameLength = 50

// Client owns zero or more projects.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"creationDate"`
	UpdatedAt time.Time `json:"updateDate"`
}
