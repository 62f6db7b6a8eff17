package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/domain/status"
)

// pathID reads a UUID path parameter, answering 400 when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		writeBadRequest(w, fmt.Sprintf("invalid %s %q", name, raw))
		return "", false
	}
	return id.String(), true
}

func pathStatus(w http.ResponseWriter, r *http.Request) (status.Status, bool) {
	st, err := status.Parse(chi.URLParam(r, "status"))
	if err != nil {
		writeBadRequest(w, err.Error())
		return "", false
	}
	return st, true
}

// pageRequest reads the page and size query parameters, defaulting to 0 and 10.
func pageRequest(w http.ResponseWriter, r *http.Request) (page.Request, bool) {
	req := page.DefaultRequest()
	q := r.URL.Query()

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > page.MaxPage {
			writeBadRequest(w, fmt.Sprintf("invalid page %q", v))
			return page.Request{}, false
		}
		req.Page = n
	}
	if v := q.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeBadRequest(w, fmt.Sprintf("invalid size %q", v))
			return page.Request{}, false
		}
		req.Size = n
	}
	return req.Normalize(), true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeBadRequest(w, "invalid request body")
		return false
	}
	return true
}

type clientRequest struct {
	Name string `json:"name"`
}

type descriptionRequest struct {
	Description string `json:"description"`
}

type updateRequest struct {
	Description string `json:"description"`
	Status      string `json:"status"`
}
