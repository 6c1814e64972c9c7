// Package apperrors содержит определения кодов ошибок.
package apperrors

import (
	"fmt"
	"net/http"
)

// Code - машинный код ошибки.
type Code string

// AppError представляет ошибку. Message - дружелюбная подсказка для отладки,
// Detail - текст исходной ошибки.
type AppError struct {
	Code    Code
	Message string
	Detail  string
}

// Error реализует error.
func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.Detail)
}

// HTTPStatus возвращает подходящий HTTP статус для кода ошибки.
func (e *AppError) HTTPStatus() int {
	if s, ok := statusByCode[e.Code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Коды ошибок
const (
	ErrForbidden     Code = "FORBIDDEN"
	ErrBadStatus     Code = "BAD_STATUS"
	ErrStoreFailure  Code = "STORE_FAILURE"
	ErrNotifyFailure Code = "NOTIFY_FAILURE"
	ErrInternalIssue Code = "INTERNAL_ISSUE"
)

// messages - человекочитаемые строки по коду.
var messages = map[Code]string{
	ErrForbidden:     "forbidden",
	ErrBadStatus:     "bad request",
	ErrStoreFailure:  "storage operation failed",
	ErrNotifyFailure: "fail to send telegram message",
	ErrInternalIssue: "internal server issue, please try again",
}

// statusByCode - HTTP-статусы по коду.
var statusByCode = map[Code]int{
	ErrForbidden:     http.StatusForbidden,
	ErrBadStatus:     http.StatusBadRequest,
	ErrStoreFailure:  http.StatusInternalServerError,
	ErrNotifyFailure: http.StatusInternalServerError,
	ErrInternalIssue: http.StatusInternalServerError,
}

// New создаёт AppError по коду с текстом исходной ошибки.
func New(code Code, detail string) *AppError {
	return &AppError{Code: code, Message: messageFor(code), Detail: detail}
}

// FromCode возвращает сообщение по коду (без создания AppError).
func FromCode(code Code) string { return messageFor(code) }

func messageFor(code Code) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return messages[ErrInternalIssue]
}
