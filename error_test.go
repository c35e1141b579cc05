package siterag_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/siterag"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := siterag.Errorf(siterag.ENOTFOUND, "page %q not found", "https://example.com/")

	assert.Equal(t, siterag.ENOTFOUND, siterag.ErrorCode(err))
	assert.Equal(t, "page \"https://example.com/\" not found", siterag.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, siterag.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, siterag.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("build index: %w", siterag.Errorf(siterag.EINVALID, "no content to index"))

	assert.Equal(t, siterag.EINVALID, siterag.ErrorCode(err))
	assert.Equal(t, "no content to index", siterag.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, siterag.EINTERNAL, siterag.ErrorCode(err))
	assert.Equal(t, "Internal error", siterag.ErrorMessage(err))
}
