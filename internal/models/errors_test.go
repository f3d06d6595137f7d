package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailableKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable("get account", cause)

	assert.True(t, errors.Is(err, ErrExternalUnavailable))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "get account")
}

func TestInvalid(t *testing.T) {
	err := Invalid("gold threshold %d", 10)
	assert.True(t, errors.Is(err, ErrConfigurationInvalid))
	assert.Equal(t, "configuration invalid: gold threshold 10", err.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, "", KindOf(nil))
	assert.Equal(t, "insufficient balance", KindOf(ErrInsufficientBalance))
	assert.Equal(t, "external service unavailable", KindOf(Unavailable("x", errors.New("down"))))
	assert.Equal(t, "internal", KindOf(errors.New("boom")))
}
