package pkg

import "net/http"

// AppError is the error body every HTTP handler renders.
type AppError struct {
	Code       string
	Message    string
	Details    map[string]any
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON shape of an AppError.
type HTTPError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy of e carrying extra context for the caller.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return NewDomainError(code, message, nil, status)
}
