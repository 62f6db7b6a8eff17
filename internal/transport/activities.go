package transport

import (
	"net/http"

	"github.com/rpggio/projman/internal/domain/activity"
	"github.com/rpggio/projman/internal/domain/status"
)

const (
	msgActivityNotFound = "Activity not found"
	msgActivityDeleted  = "Activity has been deleted"
)

func (s *Server) getActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	act, found, err := s.activities.FindByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !found {
		writeText(w, http.StatusNotFound, msgActivityNotFound)
		return
	}
	writeJSON(w, http.StatusOK, act)
}

func (s *Server) listProjectActivities(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectid")
	if !ok {
		return
	}
	req, ok := pageRequest(w, r)
	if !ok {
		return
	}
	p, err := s.activities.FindByProjectID(r.Context(), req, projectID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) listProjectActivitiesByStatus(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectid")
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
	p, err := s.activities.FindByProjectIDAndStatus(r.Context(), req, projectID, st)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) addActivity(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectid")
	if !ok {
		return
	}
	var body descriptionRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if err := activity.ValidateDescription(body.Description); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	act, err := s.activities.Add(r.Context(), projectID, &activity.Activity{Description: body.Description})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, act)
}

func (s *Server) updateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var body updateRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if err := activity.ValidateDescription(body.Description); err != nil {
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

	act, found, err := s.activities.FindByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !found {
		writeText(w, http.StatusNotFound, msgActivityNotFound)
		return
	}

	act.Description = body.Description
	if st != "" {
		act.Status = st
	}
	updated, err := s.activities.Update(r.Context(), act)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) updateActivityStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	st, ok := pathStatus(w, r)
	if !ok {
		return
	}

	_, found, err := s.activities.FindByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !found {
		writeText(w, http.StatusNotFound, msgActivityNotFound)
		return
	}

	msg, err := s.activities.UpdateStatus(r.Context(), id, st)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeText(w, http.StatusOK, msg)
}

func (s *Server) deleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	act, found, err := s.activities.FindByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !found {
		writeText(w, http.StatusNotFound, msgActivityNotFound)
		return
	}
	if err := s.activities.Delete(r.Context(), act); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeText(w, http.StatusOK, msgActivityDeleted)
}
