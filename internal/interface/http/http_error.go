package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/lookia/lookia/pkg/errors"
)

const internalErrorMessage = "Erro interno do servidor"

// HTTPError is the transport form of a failed request.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewHTTPError builds an HTTPError.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// domainStatus maps application error codes to a status and public code.
// Provider outages surface as 500 because clients treat any non-2xx the same.
var domainStatus = []struct {
	code   string
	status int
	public string
}{
	{apperrors.CodeInvalidInput, http.StatusBadRequest, "invalid_request"},
	{apperrors.CodeNotFound, http.StatusNotFound, apperrors.CodeNotFound},
	{apperrors.CodeUnconfigured, http.StatusInternalServerError, apperrors.CodeUnconfigured},
	{apperrors.CodeUpstream, http.StatusInternalServerError, apperrors.CodeUpstream},
}

// domainError converts a service error. Errors without a known code keep
// their details out of the response.
func domainError(err error, fallbackCode string) *HTTPError {
	for _, m := range domainStatus {
		if apperrors.IsCode(err, m.code) {
			return NewHTTPError(m.status, m.public, apperrors.MessageOf(err), err)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, fallbackCode, internalErrorMessage, err)
}

func asHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return domainError(err, "internal_error")
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
