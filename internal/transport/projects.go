package transport

import (
	"net/http"

	"github.com/rpggio/projman/internal/domain/project"
	"github.com/rpggio/projman/internal/domain/status"
)

const (
	msgProjectNotFound = "Project not found"
	msgProjectDeleted  = "Project has been deleted"
)

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	proj, found, err := s.projects.FindByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !found {
		writeText(w, http.StatusNotFound, msgProjectNotFound)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	req, ok := pageRequest(w, r)
	if !ok {
		return
	}
	p, err := s.projects.FindAll(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) listProjectsByStatus(w http.ResponseWriter, r *http.Request) {
	st, ok := pathStatus(w, r)
	if !ok {
		return
	}
	req, ok := pageRequest(w, r)
	if !ok {
		return
	}
	p, err := s.projects.FindAllByStatus(r.Context(), req, st)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) listClientProjects(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "clientid")
	if !ok {
		return
	}
	st, ok := pathStatus(w, r)
	if !ok {
		return
	}
	req, ok := pageRequest(w, r)
	if !ok {
		return
	}
	p, err := s.projects.FindByClientIDAndStatus(r.Context(), req, clientID, st)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) addProject(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "clientid")
	if !ok {
		return
	}
	var body descriptionRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if err := project.ValidateDescription(body.Description); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	proj, err := s.projects.Add(r.Context(), clientID, &project.Project{Description: body.Description})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, proj)
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var body updateRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if err := project.ValidateDescription(body.Description); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var st status.Status
	if body.Status != "" {
		parsed, err := status.Parse(body.Status)
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}
		st = parsed
	}

	proj, found, err := s.projects.FindByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !found {
		writeText(w, http.StatusNotFound, msgProjectNotFound)
		return
	}

	proj.Description = body.Description
	if st != "" {
		proj.Status = st
	}
	updated, err := s.projects.Update(r.Context(), proj)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) updateProjectStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	st, ok := pathStatus(w, r)
	if !ok {
		return
	}

	_, found, err := s.projects.FindByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !found {
		writeText(w, http.StatusNotFound, msgProjectNotFound)
		return
	}

	msg, err := s.projects.UpdateStatus(r.Context(), id, st)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeText(w, http.StatusOK, msg)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	proj, found, err := s.projects.FindByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !found {
		writeText(w, http.StatusNotFound, msgProjectNotFound)
		return
	}
	if err := s.projects.Delete(r.Context(), proj); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeText(w, http.StatusOK, msgProjectDeleted)
}
