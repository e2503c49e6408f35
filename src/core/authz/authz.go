package authz

import (
	"github.com/EzIsEzzy/Continue/src/core/apperr"
	"github.com/google/uuid"
)

// Relation states which owning field of a resource the actor is checked
// against.
type Relation int

const (
	// Owner compares the actor against the resource's own owner column
	// (post author, job publisher, application candidate).
	Owner Relation = iota
	// PublisherOfParent compares the actor against the owner of a
	// referenced parent resource, e.g. the job publisher reviewing an
	// application to that job.
	PublisherOfParent
)

// Authorize is the single ownership check used by every mutating handler.
// It must pass before any write is attempted; on failure the caller returns
// without touching the store.
func Authorize(actor, owner uuid.UUID, rel Relation) error {
	if actor != owner {
		return apperr.ErrUnauthorized
	}
	return nil
}
