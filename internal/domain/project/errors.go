package project

import (
	"errors"

	"github.com/rpggio/projman/internal/domain/apperr"
)

var (
	// ErrClientNotFound indicates the owning client doesn't exist.
	ErrClientNotFound = apperr.New(apperr.KindParentNotFound, "Non existent client")
	// ErrProjectExists indicates the client already has a project with the description.
	ErrProjectExists = apperr.New(apperr.KindDuplicateDescription, "Project already exists for this client")
	// ErrInvalidDescription indicates a blank or oversized description.
	ErrInvalidDescription = errors.New("project description must be non-blank and at most 100 characters")
)

// StatusUpdatedMessage is the confirmation returned by UpdateStatus.
const StatusUpdatedMessage = "The project status was updated"
