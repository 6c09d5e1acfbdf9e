package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure independently of the message shown to the caller.
type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindInvalidState      Kind = "invalid_state"
	KindCommunityMismatch Kind = "community_mismatch"
	KindNotApproved       Kind = "not_approved"
	KindReportMismatch    Kind = "report_mismatch"
	KindProviderMismatch  Kind = "provider_mismatch"
	KindUnauthorized      Kind = "unauthorized"
	KindConflict          Kind = "conflict"
	KindInvalidInput      Kind = "invalid_input"
	KindInternal          Kind = "internal"
)

var (
	ErrNotFound          = errors.New("объект не найден")
	ErrInvalidState      = errors.New("недопустимое состояние")
	ErrCommunityMismatch = errors.New("объект принадлежит другому сообществу")
	ErrNotApproved       = errors.New("смета не утверждена")
	ErrReportMismatch    = errors.New("смета относится к другой заявке")
	ErrProviderMismatch  = errors.New("смета относится к другому исполнителю")
	ErrUnauthorized      = errors.New("недостаточно прав")
	ErrConflict          = errors.New("конфликт")
	ErrInvalidInput      = errors.New("некорректные данные")
	ErrInternal          = errors.New("внутренняя ошибка")
)

var sentinels = map[Kind]error{
	KindNotFound:          ErrNotFound,
	KindInvalidState:      ErrInvalidState,
	KindCommunityMismatch: ErrCommunityMismatch,
	KindNotApproved:       ErrNotApproved,
	KindReportMismatch:    ErrReportMismatch,
	KindProviderMismatch:  ErrProviderMismatch,
	KindUnauthorized:      ErrUnauthorized,
	KindConflict:          ErrConflict,
	KindInvalidInput:      ErrInvalidInput,
	KindInternal:          ErrInternal,
}

var statuses = map[Kind]int{
	KindNotFound:          http.StatusNotFound,
	KindInvalidState:      http.StatusUnprocessableEntity,
	KindCommunityMismatch: http.StatusForbidden,
	KindNotApproved:       http.StatusUnprocessableEntity,
	KindReportMismatch:    http.StatusUnprocessableEntity,
	KindProviderMismatch:  http.StatusUnprocessableEntity,
	KindUnauthorized:      http.StatusForbidden,
	KindConflict:          http.StatusConflict,
	KindInvalidInput:      http.StatusBadRequest,
	KindInternal:          http.StatusInternalServerError,
}

// AppError carries a Kind together with a user-facing message. errors.Is matches
// it against the sentinel of its kind.
type AppError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil && !errors.Is(e.Err, sentinels[e.Kind]) {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Is(target error) bool {
	return sentinels[e.Kind] == target
}

// Status returns the HTTP status code for the error kind.
func (e *AppError) Status() int {
	if s, ok := statuses[e.Kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func newError(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message, Err: sentinels[kind]}
}

func NotFound(resource string, id int64) *AppError {
	return newError(KindNotFound, fmt.Sprintf("%s с id %d не найден(а)", resource, id))
}

func InvalidState(message string) *AppError {
	return newError(KindInvalidState, message)
}

func CommunityMismatch(message string) *AppError {
	return newError(KindCommunityMismatch, message)
}

func NotApproved(message string) *AppError {
	return newError(KindNotApproved, message)
}

func ReportMismatch(message string) *AppError {
	return newError(KindReportMismatch, message)
}

func ProviderMismatch(message string) *AppError {
	return newError(KindProviderMismatch, message)
}

func Unauthorized(message string) *AppError {
	return newError(KindUnauthorized, message)
}

func Conflict(message string) *AppError {
	return newError(KindConflict, message)
}

func InvalidInput(message string) *AppError {
	return newError(KindInvalidInput, message)
}

// Internal hides the underlying error from the caller but keeps it for logging.
func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "внутренняя ошибка сервера", Err: err}
}

// KindOf returns the kind of err, or KindInternal for errors outside the taxonomy.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	for kind, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindInternal
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status()
	}
	if s, ok := statuses[KindOf(err)]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Message returns the user-facing message of err.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	kind := KindOf(err)
	if kind == KindInternal {
		return "внутренняя ошибка сервера"
	}
	return sentinels[kind].Error()
}
