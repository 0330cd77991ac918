package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindConflict, KindOf(Conflict("duplicate")))
	assert.Equal(t, KindAuthentication, KindOf(Authentication("who are you")))
	assert.Equal(t, KindAuthorization, KindOf(Authorization("not allowed")))
	assert.Equal(t, KindStorage, KindOf(Storage(errors.New("boom"), "query failed")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "user not found", MessageOf(NotFound("user not found")))
	assert.Equal(t, "plain", MessageOf(errors.New("plain")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage(cause, "failed to save user")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "failed to save user", MessageOf(err))
	assert.True(t, IsKind(err, KindStorage))
}

func TestFormatting(t *testing.T) {
	err := Conflict("category with name %q already exists", "Travel")
	assert.Equal(t, `category with name "Travel" already exists`, MessageOf(err))
}
