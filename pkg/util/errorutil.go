package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Request error codes. Every backend-facing call resolves to exactly one of
// these, so calling views can render a user-facing state without inspecting
// transport internals.
const (
	CodeUnreachable  = "UNREACHABLE"
	CodeServerError  = "SERVER_ERROR"
	CodeAuthExpired  = "AUTH_EXPIRED"
	CodeForbidden    = "FORBIDDEN"
	CodeClientSetup  = "CLIENT_SETUP"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeBadResponse  = "UNEXPECTED_RESPONSE"
	CodeValidation   = "VALIDATION_FAILED"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

// Sentinel errors surfaced by the auth exchange. The remediation differs for
// each: re-enter credentials vs. pick another username vs. start the backend,
// so they must never collapse into one generic failure.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrUnexpectedResponse = errors.New("unexpected response from server")
)

// RequestError standardizes failures of calls to the travel backend.
// Code drives machine handling, Message is safe to show the user, and
// HTTPStatus is the status the web layer answers with.
type RequestError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewUnreachable reports that no response was received at all.
func NewUnreachable(err error) *RequestError {
	return &RequestError{
		Code:       CodeUnreachable,
		Message:    "unable to reach the backend server, please check that it is running",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewAuthExpired reports that the backend rejected the stored credential.
func NewAuthExpired() *RequestError {
	return &RequestError{
		Code:       CodeAuthExpired,
		Message:    "session expired, please log in again",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewForbidden reports a valid credential with insufficient privilege.
func NewForbidden() *RequestError {
	return &RequestError{
		Code:       CodeForbidden,
		Message:    "you do not have permission to perform this action",
		HTTPStatus: http.StatusForbidden,
	}
}

// NewServerError reports a reachable backend that answered a failure status.
// The message comes from the response body when it is structured.
func NewServerError(status int, message string) *RequestError {
	if message == "" {
		message = "the server rejected the request, please try again later"
	}
	return &RequestError{Code: CodeServerError, Message: message, HTTPStatus: status}
}

// NewUnauthorized is the side-effect-free 401 used on the public exchange
// endpoints, where a rejection means bad credentials rather than a stale
// session.
func NewUnauthorized(message string) *RequestError {
	if message == "" {
		message = "unauthorized"
	}
	return &RequestError{Code: CodeUnauthorized, Message: message, HTTPStatus: http.StatusUnauthorized}
}

// NewClientSetup reports a request that could not even be built or sent.
func NewClientSetup(err error) *RequestError {
	return &RequestError{
		Code:       CodeClientSetup,
		Message:    "failed to prepare the backend request",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewValidation reports locally rejected input.
func NewValidation(message string) *RequestError {
	return &RequestError{Code: CodeValidation, Message: message, HTTPStatus: http.StatusBadRequest}
}

// IsCode reports whether err is a RequestError carrying the given code.
func IsCode(err error, code string) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Code == code
}

// ToRequestError converts generic errors to RequestError for the HTTP edge.
func ToRequestError(err error) *RequestError {
	if err == nil {
		return nil
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr
	}
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return &RequestError{Code: CodeUnauthorized, Message: ErrInvalidCredentials.Error(), HTTPStatus: http.StatusUnauthorized, Err: err}
	case errors.Is(err, ErrUsernameTaken):
		return &RequestError{Code: CodeConflict, Message: ErrUsernameTaken.Error(), HTTPStatus: http.StatusConflict, Err: err}
	case errors.Is(err, ErrEmailTaken):
		return &RequestError{Code: CodeConflict, Message: ErrEmailTaken.Error(), HTTPStatus: http.StatusConflict, Err: err}
	case errors.Is(err, ErrUnexpectedResponse):
		return &RequestError{Code: CodeBadResponse, Message: ErrUnexpectedResponse.Error(), HTTPStatus: http.StatusBadGateway, Err: err}
	}
	return &RequestError{
		Code:       CodeInternal,
		Message:    "internal error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
