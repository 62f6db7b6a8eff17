package transport

import (
	"net/http"

	"github.com/rpggio/projman/internal/domain/client"
)

const (
	msgClientNotFound = "Client not found"
	msgClientDeleted  = "Client has been deleted"
)

func (s *Server) getClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	c, found, err := s.clients.FindByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !found {
		writeText(w, http.StatusNotFound, msgClientNotFound)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) listClients(w http.ResponseWriter, r *http.Request) {
	req, ok := pageRequest(w, r)
	if !ok {
		return
	}
	p, err := s.clients.FindAll(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) addClient(w http.ResponseWriter, r *http.Request) {
	var body clientRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if err := client.ValidateName(body.Name); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	c, err := s.clients.Save(r.Context(), &client.Client{Name: body.Name})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) updateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var body clientRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if err := client.ValidateName(body.Name); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	c, found, err := s.clients.FindByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !found {
		writeText(w, http.StatusNotFound, msgClientNotFound)
		return
	}

	c.Name = body.Name
	saved, err := s.clients.Save(r.Context(), c)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	c, found, err := s.clients.FindByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !found {
		writeText(w, http.StatusNotFound, msgClientNotFound)
		return
	}
	if err := s.clients.Delete(r.Context(), c); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeText(w, http.StatusOK, msgClientDeleted)
}
