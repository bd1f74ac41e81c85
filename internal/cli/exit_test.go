package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))

	boom := errors.New("boom")
	assert.Equal(t, ExitConnect, ExitCode(fail(ExitConnect, boom)))
	assert.Equal(t, ExitQuery, ExitCode(fail(ExitQuery, boom)))

	// uncoded errors come from argument parsing
	assert.Equal(t, ExitUsage, ExitCode(boom))
}

func TestExitCode_SurvivesWrapping(t *testing.T) {
	inner := fail(ExitProfile, errors.New("no such profile"))
	wrapped := fmt.Errorf("while starting: %w", inner)
	assert.Equal(t, ExitProfile, ExitCode(wrapped))
}

func TestExitError_UnwrapsToCause(t *testing.T) {
	cause := errors.New("cause")
	err := fail(ExitConfig, fmt.Errorf("read config: %w", cause))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "read config: cause", err.Error())
}
