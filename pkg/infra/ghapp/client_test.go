package ghapp

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestIsAlreadyExists(t *testing.T) {
	t.Run("422 from the contents API means the file is already there", func(t *testing.T) {
		err := &github.ErrorResponse{
			Response: &http.Response{StatusCode: http.StatusUnprocessableEntity},
		}
		gt.True(t, isAlreadyExists(err))
	})

	t.Run("detects 422 through wrapping", func(t *testing.T) {
		err := goerr.Wrap(&github.ErrorResponse{
			Response: &http.Response{StatusCode: http.StatusUnprocessableEntity},
		}, "failed to create file")
		gt.True(t, isAlreadyExists(err))
	})

	t.Run("other API errors are not already-exists", func(t *testing.T) {
		err := &github.ErrorResponse{
			Response: &http.Response{StatusCode: http.StatusNotFound},
		}
		gt.V(t, isAlreadyExists(err)).Equal(false)
	})

	t.Run("plain errors are not already-exists", func(t *testing.T) {
		gt.V(t, isAlreadyExists(errors.New("boom"))).Equal(false)
	})
}
