package docubot_test

import (
	"errors"
	"testing"

	"github.com/docubot/docubot"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode_AppError(t *testing.T) {
	t.Parallel()
	err := docubot.Errorf(docubot.ENOTFOUND, "document not found")
	assert.Equal(t, docubot.ENOTFOUND, docubot.ErrorCode(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()
	assert.Empty(t, docubot.ErrorCode(nil))
}

func TestErrorCode_NonAppError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	assert.Equal(t, docubot.EINTERNAL, docubot.ErrorCode(err))
}

func TestErrorCode_WrappedAppError(t *testing.T) {
	t.Parallel()
	inner := docubot.Errorf(docubot.EINVALID, "bad input")
	wrapped := errors.Join(errors.New("context"), inner)
	assert.Equal(t, docubot.EINVALID, docubot.ErrorCode(wrapped))
}

func TestErrorMessage_AppError(t *testing.T) {
	t.Parallel()
	err := docubot.Errorf(docubot.EINVALID, "seed URL %q invalid", "foo")
	assert.Equal(t, `seed URL "foo" invalid`, docubot.ErrorMessage(err))
}

func TestErrorMessage_NonAppError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Internal error.", docubot.ErrorMessage(errors.New("boom")))
}

func TestFetchError_StatusFormatting(t *testing.T) {
	t.Parallel()
	err := &docubot.FetchError{
		URL:        "https://example.com/missing",
		Kind:       docubot.FetchErrStatus,
		StatusCode: 404,
	}
	assert.Equal(t, "HTTP 404 for https://example.com/missing", err.Error())
}

func TestFetchError_NetworkUnwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("dial tcp: connection refused")
	err := &docubot.FetchError{
		URL:  "https://example.com",
		Kind: docubot.FetchErrNetwork,
		Err:  cause,
	}
	assert.ErrorIs(t, err, cause)
}
