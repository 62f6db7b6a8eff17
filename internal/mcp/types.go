package mcp

// PageParams selects one page of a list result. Size 0 means the default.
type PageParams struct {
	Page int `json:"page,omitempty"`
	Size int `json:"size,omitempty"`
}

// IDParams is accepted by the get and delete tools.
type IDParams struct {
	ID string `json:"id"`
}

// CreateClientParams is the input of create_client.
type CreateClientParams struct {
	Name string `json:"name"`
}

// UpdateClientParams is the input of update_client.
type UpdateClientParams struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListByStatusParams is the input of list_projects_by_status.
type ListByStatusParams struct {
	PageParams
	Status string `json:"status"`
}

// ListClientProjectsParams is the input of list_client_projects.
type ListClientProjectsParams struct {
	PageParams
	ClientID string `json:"client_id"`
	Status   string `json:"status"`
}

// ListProjectActivitiesParams is the input of list_project_activities.
// An empty Status lists every activity of the project.
type ListProjectActivitiesParams struct {
	PageParams
	ProjectID string `json:"project_id"`
	Status    string `json:"status,omitempty"`
}

// AddProjectParams is the input of add_project.
type AddProjectParams struct {
	ClientID    string `json:"client_id"`
	Description string `json:"description"`
}

// AddActivityParams is the input of add_activity.
type AddActivityParams struct {
	ProjectID   string `json:"project_id"`
	Description string `json:"description"`
}

// UpdateDescriptionParams is the input of update_project and update_activity.
// An empty Status keeps the current one.
type UpdateDescriptionParams struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
}

// UpdateStatusParams is the input of the update_*_status tools.
type UpdateStatusParams struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// MessageResult carries a confirmation message.
type MessageResult struct {
	Message string `json:"message"`
}
