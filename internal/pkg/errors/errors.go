package errors

import (
	stderrors "errors"
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

// WithDetails возвращает копию ошибки с деталями, общие переменные не меняются
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// Is - сравнение по коду, чтобы errors.Is работал и для копий из WithDetails
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// As - достаёт AppError из цепочки обёрток
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
