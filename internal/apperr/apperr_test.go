package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverToCapturesPanic(t *testing.T) {
	fn := func() (err error) {
		defer RecoverTo(&err)
		panic("boom")
	}

	err := fn()
	require.Error(t, err)

	var de *DetailedError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "internal panic: boom", de.Error())
	assert.NotEmpty(t, de.Stack)
}

func TestRecoverToLeavesCleanReturn(t *testing.T) {
	fn := func() (err error) {
		defer RecoverTo(&err)
		return nil
	}
	assert.NoError(t, fn())
}

func TestRecoverToKeepsReturnedError(t *testing.T) {
	sentinel := errors.New("plain failure")
	fn := func() (err error) {
		defer RecoverTo(&err)
		return sentinel
	}
	err := fn()
	assert.ErrorIs(t, err, sentinel)

	var de *DetailedError
	assert.False(t, errors.As(err, &de))
}
