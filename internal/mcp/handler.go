package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/rpggio/projman/internal/domain/activity"
	"github.com/rpggio/projman/internal/domain/client"
	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/domain/project"
	"github.com/rpggio/projman/internal/domain/status"
)

const (
	msgClientNotFound   = "Client not found"
	msgClientDeleted    = "Client has been deleted"
	msgProjectNotFound  = "Project not found"
	msgProjectDeleted   = "Project has been deleted"
	msgActivityNotFound = "Activity not found"
	msgActivityDeleted  = "Activity has been deleted"
)

// Handler dispatches MCP tool calls to the domain services.
type Handler struct {
	clients    ClientService
	projects   ProjectService
	activities ActivityService
}

// NewHandler creates a new MCP handler.
func NewHandler(clients ClientService, projects ProjectService, activities ActivityService) *Handler {
	return &Handler{
		clients:    clients,
		projects:   projects,
		activities: activities,
	}
}

// Handle runs the tool named by method with its JSON arguments.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	// Clients
	case "get_client":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("id", req.ID); err != nil {
			return nil, err
		}
		return h.findClient(ctx, req.ID)
	case "list_clients":
		var req PageParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		pr, err := pageRequest(req)
		if err != nil {
			return nil, err
		}
		return mapResult(h.clients.FindAll(ctx, pr))
	case "create_client":
		var req CreateClientParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := client.ValidateName(req.Name); err != nil {
			return nil, invalidParams("%v", err)
		}
		return mapResult(h.clients.Save(ctx, &client.Client{Name: req.Name}))
	case "update_client":
		var req UpdateClientParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("id", req.ID); err != nil {
			return nil, err
		}
		if err := client.ValidateName(req.Name); err != nil {
			return nil, invalidParams("%v", err)
		}
		c, err := h.findClient(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		c.Name = req.Name
		return mapResult(h.clients.Save(ctx, c))
	case "delete_client":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("id", req.ID); err != nil {
			return nil, err
		}
		c, err := h.findClient(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if err := h.clients.Delete(ctx, c); err != nil {
			return nil, mapError(err)
		}
		return MessageResult{Message: msgClientDeleted}, nil

	// Projects
	case "get_project":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("id", req.ID); err != nil {
			return nil, err
		}
		return h.findProject(ctx, req.ID)
	case "list_projects":
		var req PageParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		pr, err := pageRequest(req)
		if err != nil {
			return nil, err
		}
		return mapResult(h.projects.FindAll(ctx, pr))
	case "list_projects_by_status":
		var req ListByStatusParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		pr, err := pageRequest(req.PageParams)
		if err != nil {
			return nil, err
		}
		st, err := parseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		return mapResult(h.projects.FindAllByStatus(ctx, pr, st))
	case "list_client_projects":
		var req ListClientProjectsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("client_id", req.ClientID); err != nil {
			return nil, err
		}
		pr, err := pageRequest(req.PageParams)
		if err != nil {
			return nil, err
		}
		st, err := parseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		return mapResult(h.projects.FindByClientIDAndStatus(ctx, pr, req.ClientID, st))
	case "add_project":
		var req AddProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("client_id", req.ClientID); err != nil {
			return nil, err
		}
		if err := project.ValidateDescription(req.Description); err != nil {
			return nil, invalidParams("%v", err)
		}
		return mapResult(h.projects.Add(ctx, req.ClientID, &project.Project{Description: req.Description}))
	case "update_project":
		var req UpdateDescriptionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("id", req.ID); err != nil {
			return nil, err
		}
		if err := project.ValidateDescription(req.Description); err != nil {
			return nil, invalidParams("%v", err)
		}
		st, err := optionalStatus(req.Status)
		if err != nil {
			return nil, err
		}
		proj, err := h.findProject(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		proj.Description = req.Description
		if st != "" {
			proj.Status = st
		}
		return mapResult(h.projects.Update(ctx, proj))
	case "update_project_status":
		var req UpdateStatusParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("id", req.ID); err != nil {
			return nil, err
		}
		st, err := parseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		if _, err := h.findProject(ctx, req.ID); err != nil {
			return nil, err
		}
		msg, err := h.projects.UpdateStatus(ctx, req.ID, st)
		if err != nil {
			return nil, mapError(err)
		}
		return MessageResult{Message: msg}, nil
	case "delete_project":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("id", req.ID); err != nil {
			return nil, err
		}
		proj, err := h.findProject(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if err := h.projects.Delete(ctx, proj); err != nil {
			return nil, mapError(err)
		}
		return MessageResult{Message: msgProjectDeleted}, nil

	// Activities
	case "get_activity":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("id", req.ID); err != nil {
			return nil, err
		}
		return h.findActivity(ctx, req.ID)
	case "list_project_activities":
		var req ListProjectActivitiesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("project_id", req.ProjectID); err != nil {
			return nil, err
		}
		pr, err := pageRequest(req.PageParams)
		if err != nil {
			return nil, err
		}
		if req.Status == "" {
			return mapResult(h.activities.FindByProjectID(ctx, pr, req.ProjectID))
		}
		st, err := parseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		return mapResult(h.activities.FindByProjectIDAndStatus(ctx, pr, req.ProjectID, st))
	case "add_activity":
		var req AddActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("project_id", req.ProjectID); err != nil {
			return nil, err
		}
		if err := activity.ValidateDescription(req.Description); err != nil {
			return nil, invalidParams("%v", err)
		}
		return mapResult(h.activities.Add(ctx, req.ProjectID, &activity.Activity{Description: req.Description}))
	case "update_activity":
		var req UpdateDescriptionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("id", req.ID); err != nil {
			return nil, err
		}
		if err := activity.ValidateDescription(req.Description); err != nil {
			return nil, invalidParams("%v", err)
		}
		st, err := optionalStatus(req.Status)
		if err != nil {
			return nil, err
		}
		act, err := h.findActivity(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		act.Description = req.Description
		if st != "" {
			act.Status = st
		}
		return mapResult(h.activities.Update(ctx, act))
	case "update_activity_status":
		var req UpdateStatusParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("id", req.ID); err != nil {
			return nil, err
		}
		st, err := parseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		if _, err := h.findActivity(ctx, req.ID); err != nil {
			return nil, err
		}
		msg, err := h.activities.UpdateStatus(ctx, req.ID, st)
		if err != nil {
			return nil, mapError(err)
		}
		return MessageResult{Message: msg}, nil
	case "delete_activity":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := requireID("id", req.ID); err != nil {
			return nil, err
		}
		act, err := h.findActivity(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if err := h.activities.Delete(ctx, act); err != nil {
			return nil, mapError(err)
		}
		return MessageResult{Message: msgActivityDeleted}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, method)
	}
}

func (h *Handler) findClient(ctx context.Context, id string) (*client.Client, error) {
	c, found, err := h.clients.FindByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if !found {
		return nil, notFound(msgClientNotFound)
	}
	return c, nil
}

func (h *Handler) findProject(ctx context.Context, id string) (*project.Project, error) {
	proj, found, err := h.projects.FindByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if !found {
		return nil, notFound(msgProjectNotFound)
	}
	return proj, nil
}

func (h *Handler) findActivity(ctx context.Context, id string) (*activity.Activity, error) {
	act, found, err := h.activities.FindByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if !found {
		return nil, notFound(msgActivityNotFound)
	}
	return act, nil
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return invalidParams("%v", err)
	}
	return nil
}

func requireID(field, value string) error {
	if value == "" {
		return invalidParams("%s is required", field)
	}
	if _, err := uuid.Parse(value); err != nil {
		return invalidParams("%s must be a UUID", field)
	}
	return nil
}

func pageRequest(p PageParams) (page.Request, error) {
	if p.Page < 0 {
		return page.Request{}, invalidParams("page must not be negative")
	}
	if p.Page > page.MaxPage {
		return page.Request{}, invalidParams("page must not exceed %d", page.MaxPage)
	}
	if p.Size < 0 {
		return page.Request{}, invalidParams("size must be positive")
	}
	return page.Request{Page: p.Page, Size: p.Size}.Normalize(), nil
}

func parseStatus(name string) (status.Status, error) {
	st, err := status.Parse(name)
	if err != nil {
		return "", invalidParams("%v", err)
	}
	return st, nil
}

func optionalStatus(name string) (status.Status, error) {
	if name == "" {
		return "", nil
	}
	return parseStatus(name)
}

// mapResult passes a service result through, translating its error.
func mapResult[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
