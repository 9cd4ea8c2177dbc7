// Package errs classifies handler failures so each one maps to a single
// HTTP status and a message that is safe to show to the client.
package errs

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal      Kind = iota // 未预期的存储或库错误
	KindValidation                // 缺少字段或格式错误
	KindConflict                  // 邮箱或角色名重复
	KindConfiguration             // 引用的角色不存在
	KindAuth                      // 凭据错误，或令牌无效、过期
	KindForbidden                 // 账户停用或角色不符
	KindNotFound                  // 指定 id 不存在
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindConfiguration:
		return "configuration"
	case KindAuth:
		return "auth"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	default:
		return "internal"
	}
}

// StatusCode is the HTTP status for k. Credential failures at login answer
// 400; token failures use Unauthorized explicitly.
func (k Kind) StatusCode() int {
	switch k {
	case KindValidation, KindConflict, KindConfiguration, KindAuth:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string // 返回给客户端的文本
	Err     error  // 内部原因，只记录日志
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error    { return &Error{Kind: KindValidation, Message: msg} }
func Conflict(msg string) *Error      { return &Error{Kind: KindConflict, Message: msg} }
func Configuration(msg string) *Error { return &Error{Kind: KindConfiguration, Message: msg} }
func Auth(msg string) *Error          { return &Error{Kind: KindAuth, Message: msg} }
func Forbidden(msg string) *Error     { return &Error{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) *Error      { return &Error{Kind: KindNotFound, Message: msg} }

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf reports the kind of err; anything unclassified is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client-facing text of err. Unclassified errors never
// leak their text.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return http.StatusText(http.StatusInternalServerError)
}
