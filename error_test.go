package dokimi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "", ErrorCode(nil))
	assert.Equal(t, ENOTFOUND, ErrorCode(NotFound("missing")))
	assert.Equal(t, EINTERNAL, ErrorCode(errors.New("plain error")))

	wrapped := fmt.Errorf("outer: %w", Invalid("bad input"))
	assert.Equal(t, EINVALID, ErrorCode(wrapped))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Retailer not found", ErrorMessage(NotFound("Retailer not found")))
	assert.Equal(t, "An internal error occurred.", ErrorMessage(errors.New("db: connection refused")))
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal("Failed to fetch report", cause)

	// The cause is present for logs but never in the client-safe message.
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "Failed to fetch report", ErrorMessage(err))
	assert.True(t, errors.Is(err, cause))
}

func TestIsErrorCode(t *testing.T) {
	assert.True(t, IsErrorCode(Conflict("duplicate"), ECONFLICT))
	assert.False(t, IsErrorCode(Conflict("duplicate"), ENOTFOUND))
}
