package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/jrazmi/taskapi/bridge/scaffolding/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_HTTPStatus(t *testing.T) {
	tests := map[errs.ErrCode]int{
		errs.InvalidArgument:  http.StatusBadRequest,
		errs.NotFound:         http.StatusNotFound,
		errs.MethodNotAllowed: http.StatusMethodNotAllowed,
		errs.Unprocessable:    http.StatusUnprocessableEntity,
		errs.Internal:         http.StatusInternalServerError,
		errs.InternalOnlyLog:  http.StatusInternalServerError,
		errs.Unavailable:      http.StatusServiceUnavailable,
		{}:                    http.StatusInternalServerError,
	}

	for code, want := range tests {
		assert.Equal(t, want, errs.Newf(code, "x").HTTPStatus(), code.String())
	}
}

func TestError_Encode(t *testing.T) {
	data, contentType, err := errs.Newf(errs.NotFound, "task %d not found", 3).Encode()
	require.NoError(t, err)
	assert.Equal(t, "application/json; charset=utf-8", contentType)
	assert.JSONEq(t, `{"code":"not_found","message":"task 3 not found"}`, string(data))

	data, _, err = errs.NewFieldErrors("validation failed", []errs.FieldError{
		{Field: "title", Err: "is required"},
		{Field: "priority", Err: "must be one of low medium high"},
	}).Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"unprocessable","message":"validation failed","fields":[
		{"field":"title","error":"is required"},
		{"field":"priority","error":"must be one of low medium high"}]}`, string(data))
}

func TestError_Source(t *testing.T) {
	e := errs.New(errs.Internal, errors.New("boom"))

	assert.Equal(t, "boom", e.Error())
	assert.True(t, strings.HasSuffix(e.FuncName, "TestError_Source"))
	assert.Contains(t, e.FileName, "errs_test.go:")
}

func TestGetError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", errs.Newf(errs.NotFound, "missing"))

	assert.True(t, errs.IsError(wrapped))
	got := errs.GetError(wrapped)
	require.NotNil(t, got)
	assert.True(t, got.Equal(errs.Newf(errs.NotFound, "missing")))

	assert.False(t, errs.IsError(errors.New("plain")))
	assert.Nil(t, errs.GetError(errors.New("plain")))
}
