package internal

import "net/http"

// AppError carries an HTTP status alongside a client-facing message.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

func WrapAppError(code int, msg string, err error) *AppError {
	return &AppError{Code: code, Message: msg, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func ErrNotFound(msg string) *AppError   { return NewAppError(http.StatusNotFound, msg) }
func ErrBadRequest(msg string) *AppError { return NewAppError(http.StatusBadRequest, msg) }
