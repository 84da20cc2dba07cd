package cmdutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagErrorf(t *testing.T) {
	err := FlagErrorf("unknown flag: %s", "--bogus")

	var flagErr *FlagError
	assert.ErrorAs(t, err, &flagErr)
	assert.Equal(t, "unknown flag: --bogus", err.Error())
}

func TestFlagErrorWrap_PreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := FlagErrorWrap(cause)

	assert.ErrorIs(t, err, cause)
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 3}
	assert.Equal(t, "exit status 3", err.Error())
}
