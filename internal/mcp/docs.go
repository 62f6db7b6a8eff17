package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `projman tracks work as Clients → Projects → Activities.

- Client: a named customer. Deleting it deletes its projects and their activities.
- Project: belongs to one client; its description is unique within that client.
- Activity: belongs to one project; its description is unique within that project.
- Projects and activities are OPEN or FINISHED. New ones always start OPEN.

Typical flow:
1) list_clients or create_client to get a client id.
2) add_project with that client_id, then add_activity with the project id.
3) update_*_status to mark work FINISHED.

List tools are paged (page is zero-based, size defaults to 10) and return
{actualPage, totalRecords, totalPages, itemList}. Failures come back as a tool
error whose text is {code, message, recovery_hint}.

Docs:
- projman://docs/model
- projman://docs/errors
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "projman://docs/model",
		Name:        "docs_model",
		Title:       "projman data model",
		Description: "Entities, ownership, uniqueness rules and statuses.",
		Content: `# projman data model

| Entity   | Owner   | Fields                                                  |
|----------|---------|---------------------------------------------------------|
| Client   | none    | id, name (1..50 chars), creationDate, updateDate        |
| Project  | Client  | id, clientId, description (1..100), status, dates       |
| Activity | Project | id, projectId, description (1..100), status, dates      |

- Ids are UUIDs assigned by the server.
- A project description is unique among the projects of the same client.
- An activity description is unique among the activities of the same project.
- status is OPEN or FINISHED. add_project and add_activity ignore any status
  and create the entity OPEN.
- Deleting a client removes its projects; deleting a project removes its
  activities.
- Lists are ordered oldest first.
`,
	},
	{
		URI:         "projman://docs/errors",
		Name:        "docs_errors",
		Title:       "projman error codes",
		Description: "Error codes returned by tools and how to recover.",
		Content: `# projman error codes

- NOT_FOUND: the id names nothing. List the collection to find a valid id.
- PARENT_NOT_FOUND: add_project or add_activity named a client or project
  that does not exist. Nothing was written.
- DUPLICATE_DESCRIPTION: the parent already has a child with that
  description. Nothing was written.
- INVALID_PARAMS: an argument is missing, is not a UUID, names an unknown
  status, or breaks a length limit.
- INVALID_STATUS_CODE: a stored status could not be read. Report it.
- UNKNOWN_TOOL: the tool name is not registered.
- INTERNAL: unexpected server failure. Details are in the server log.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
