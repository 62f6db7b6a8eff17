package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// toolDefinition describes a callable tool.
type toolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProperty(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func uuidProperty(description string) map[string]any {
	return map[string]any{"type": "string", "format": "uuid", "description": description}
}

func statusProperty(description string) map[string]any {
	return map[string]any{"type": "string", "enum": []string{"OPEN", "FINISHED"}, "description": description}
}

// withPaging adds the page and size properties to a list tool's schema.
func withPaging(properties map[string]any) map[string]any {
	properties["page"] = map[string]any{"type": "integer", "minimum": 0, "description": "Zero-based page number (default 0)"}
	properties["size"] = map[string]any{"type": "integer", "minimum": 1, "description": "Page size (default 10)"}
	return properties
}

// buildToolCatalog returns all available MCP tools.
func buildToolCatalog() []toolDefinition {
	return []toolDefinition{
		// Clients
		{
			Name:        "get_client",
			Description: "Get a client by id",
			InputSchema: objectSchema(map[string]any{
				"id": uuidProperty("Client ID"),
			}, "id"),
		},
		{
			Name:        "list_clients",
			Description: "List clients one page at a time, oldest first",
			InputSchema: objectSchema(withPaging(map[string]any{})),
		},
		{
			Name:        "create_client",
			Description: "Create a client",
			InputSchema: objectSchema(map[string]any{
				"name": stringProperty("Client name, at most 50 characters"),
			}, "name"),
		},
		{
			Name:        "update_client",
			Description: "Rename a client",
			InputSchema: objectSchema(map[string]any{
				"id":   uuidProperty("Client ID"),
				"name": stringProperty("New client name, at most 50 characters"),
			}, "id", "name"),
		},
		{
			Name:        "delete_client",
			Description: "Delete a client together with its projects and their activities",
			InputSchema: objectSchema(map[string]any{
				"id": uuidProperty("Client ID"),
			}, "id"),
		},

		// Projects
		{
			Name:        "get_project",
			Description: "Get a project by id",
			InputSchema: objectSchema(map[string]any{
				"id": uuidProperty("Project ID"),
			}, "id"),
		},
		{
			Name:        "list_projects",
			Description: "List all projects one page at a time",
			InputSchema: objectSchema(withPaging(map[string]any{})),
		},
		{
			Name:        "list_projects_by_status",
			Description: "List projects in the given status across all clients",
			InputSchema: objectSchema(withPaging(map[string]any{
				"status": statusProperty("Project status"),
			}), "status"),
		},
		{
			Name:        "list_client_projects",
			Description: "List one client's projects in the given status",
			InputSchema: objectSchema(withPaging(map[string]any{
				"client_id": uuidProperty("Owning client ID"),
				"status":    statusProperty("Project status"),
			}), "client_id", "status"),
		},
		{
			Name:        "add_project",
			Description: "Add an OPEN project to a client. Descriptions are unique per client",
			InputSchema: objectSchema(map[string]any{
				"client_id":   uuidProperty("Owning client ID"),
				"description": stringProperty("Project description, at most 100 characters"),
			}, "client_id", "description"),
		},
		{
			Name:        "update_project",
			Description: "Change a project's description and optionally its status",
			InputSchema: objectSchema(map[string]any{
				"id":          uuidProperty("Project ID"),
				"description": stringProperty("New description, at most 100 characters"),
				"status":      statusProperty("New status (omit to keep the current one)"),
			}, "id", "description"),
		},
		{
			Name:        "update_project_status",
			Description: "Set a project's status",
			InputSchema: objectSchema(map[string]any{
				"id":     uuidProperty("Project ID"),
				"status": statusProperty("New status"),
			}, "id", "status"),
		},
		{
			Name:        "delete_project",
			Description: "Delete a project together with its activities",
			InputSchema: objectSchema(map[string]any{
				"id": uuidProperty("Project ID"),
			}, "id"),
		},

		// Activities
		{
			Name:        "get_activity",
			Description: "Get an activity by id",
			InputSchema: objectSchema(map[string]any{
				"id": uuidProperty("Activity ID"),
			}, "id"),
		},
		{
			Name:        "list_project_activities",
			Description: "List a project's activities, optionally only those in one status",
			InputSchema: objectSchema(withPaging(map[string]any{
				"project_id": uuidProperty("Owning project ID"),
				"status":     statusProperty("Activity status (omit for all)"),
			}), "project_id"),
		},
		{
			Name:        "add_activity",
			Description: "Add an OPEN activity to a project. Descriptions are unique per project",
			InputSchema: objectSchema(map[string]any{
				"project_id":  uuidProperty("Owning project ID"),
				"description": stringProperty("Activity description, at most 100 characters"),
			}, "project_id", "description"),
		},
		{
			Name:        "update_activity",
			Description: "Change an activity's description and optionally its status",
			InputSchema: objectSchema(map[string]any{
				"id":          uuidProperty("Activity ID"),
				"description": stringProperty("New description, at most 100 characters"),
				"status":      statusProperty("New status (omit to keep the current one)"),
			}, "id", "description"),
		},
		{
			Name:        "update_activity_status",
			Description: "Set an activity's status",
			InputSchema: objectSchema(map[string]any{
				"id":     uuidProperty("Activity ID"),
				"status": statusProperty("New status"),
			}, "id", "status"),
		},
		{
			Name:        "delete_activity",
			Description: "Delete an activity",
			InputSchema: objectSchema(map[string]any{
				"id": uuidProperty("Activity ID"),
			}, "id"),
		},
	}
}

// registerTools adds every catalog tool to server, dispatching through h.
// Failures are reported as tool results with IsError set so the caller can
// read the error code and recovery hint.
func registerTools(server *sdkmcp.Server, h *Handler, logger *slog.Logger) {
	for _, def := range buildToolCatalog() {
		name := def.Name
		server.AddTool(&sdkmcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			var args json.RawMessage
			if req != nil && req.Params != nil {
				args = req.Params.Arguments
			}
			result, err := h.Handle(ctx, name, args)
			if err != nil {
				apiErr := MapError(err)
				if apiErr == nil {
					logger.Error("tool call failed", "tool", name, "error", err)
					apiErr = &APIError{Code: "INTERNAL", Message: "internal error"}
				}
				return errorResult(apiErr), nil
			}
			return jsonResult(result)
		})
	}
}

func jsonResult(v any) (*sdkmcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil
}

func errorResult(apiErr *APIError) *sdkmcp.CallToolResult {
	data, err := json.Marshal(apiErr)
	if err != nil {
		data = []byte(apiErr.Error())
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
		IsError: true,
	}
}
