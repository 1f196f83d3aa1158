package cratedocs_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/cratedocs"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := cratedocs.Errorf(cratedocs.ENOTFOUND, "crate %q not found", "serde")

	assert.Equal(t, cratedocs.ENOTFOUND, cratedocs.ErrorCode(err))
	assert.Equal(t, "crate \"serde\" not found", cratedocs.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cratedocs.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cratedocs.EINTERNAL, cratedocs.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cratedocs.ErrorMessage(nil))
}
