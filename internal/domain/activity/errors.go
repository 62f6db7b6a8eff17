package activity

import (
	"errors"

	"github.com/rpggio/projman/internal/domain/apperr"
)

var (
	// ErrProjectNotFound indicates the owning project doesn't exist.
	ErrProjectNotFound = apperr.New(apperr.KindParentNotFound, "Non existent project")
	// ErrActivityExists indicates the project already has an activity with the description.
	ErrActivityExists = apperr.New(apperr.KindDuplicateDescription, "Activity already exists for this project")
	// ErrInvalidDescription indicates a blank or oversized description.
	ErrInvalidDescription = errors.New("activity description must be non-blank and at most 100 characters")
)

// StatusUpdatedMessage is the confirmation returned by UpdateStatus.
const StatusUpdatedMessage = "The activity status was updated"
