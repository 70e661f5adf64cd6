package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailableError_MessageOnly(t *testing.T) {
	err := &UnavailableError{Message: "API key is required"}
	assert.Equal(t, "generation unavailable: API key is required", err.Error())
}

func TestUnavailableError_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := &UnavailableError{Message: "request failed", Cause: cause}

	assert.Contains(t, err.Error(), "request failed")
	assert.ErrorIs(t, err, cause)
}

func TestIsUnavailable_DirectAndWrapped(t *testing.T) {
	err := &UnavailableError{Message: "service down"}
	assert.True(t, IsUnavailable(err))

	wrapped := fmt.Errorf("rewrite round 0: %w", err)
	assert.True(t, IsUnavailable(wrapped))
}

func TestIsUnavailable_OtherErrors(t *testing.T) {
	assert.False(t, IsUnavailable(errors.New("plain error")))
	assert.False(t, IsUnavailable(nil))
}
