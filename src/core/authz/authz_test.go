package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EzIsEzzy/Continue/src/core/apperr"
)

func TestAuthorize(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	require.NoError(t, Authorize(owner, owner, Owner))
	require.NoError(t, Authorize(owner, owner, PublisherOfParent))

	err := Authorize(stranger, owner, Owner)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	err = Authorize(stranger, owner, PublisherOfParent)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}
